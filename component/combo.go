package component

import "github.com/lixenwraith/monkey-runner/parameter"

// Combo tracks kills made by the latest activation and the banner countdown
type Combo struct {
	Count        int
	BannerFrames int
}

// Register records the kills of one activation; two or more show the banner
func (c *Combo) Register(kills, bannerFrames int) {
	c.Count = kills
	if kills >= parameter.ComboMinKills {
		c.BannerFrames = bannerFrames
	}
}

// Tick counts the banner down
func (c *Combo) Tick() {
	if c.BannerFrames > 0 {
		c.BannerFrames--
	}
}

// Visible reports whether the banner should be drawn
func (c *Combo) Visible() bool {
	return c.BannerFrames > 0
}
