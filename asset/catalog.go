package asset

import (
	"image"
	_ "image/png" // PNG sprites
	"io"
	"path"

	"github.com/lixenwraith/monkey-runner/core"
)

// Sprite names and the paths tried for each, relative to the asset root
// Several layouts are accepted so a flat or nested asset directory both work

// PlayerSprite returns the sprite name for a pose; performing poses are per kind
func PlayerSprite(pose core.Pose, kind core.PowerKind) string {
	if pose == core.PosePerforming {
		return "player/" + kind.String()
	}
	return "player/" + pose.String()
}

// EnemySprite returns the sprite name for an enemy kind
func EnemySprite(kind core.EnemyKind) string {
	return "enemy/" + kind.String()
}

// FoodSprite returns the sprite name for a consumable kind
func FoodSprite(kind core.PowerKind) string {
	return "food/" + kind.String()
}

// Candidates lists the paths tried for a sprite name
func Candidates(name string) []string {
	dir, base := path.Split(name)
	return []string{
		name + ".png",
		path.Join("images", dir, base+".png"),
		path.Join("sprites", name+".png"),
		base + ".png",
	}
}

// DecodeImage decodes any registered image format
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	return img, err
}

// Sprites is the full sprite set the windowed frontend requests at startup
func Sprites() []string {
	names := []string{
		PlayerSprite(core.PoseIdle, 0),
		PlayerSprite(core.PoseRunning, 0),
	}
	for _, k := range core.AllPowerKinds() {
		names = append(names, PlayerSprite(core.PosePerforming, k), FoodSprite(k))
	}
	for _, k := range core.AllEnemyKinds() {
		names = append(names, EnemySprite(k))
	}
	return names
}

// LoadSprites requests every sprite in reg
func LoadSprites(reg *Registry[image.Image]) {
	for _, name := range Sprites() {
		reg.Load(name, Candidates(name)...)
	}
}
