package asset

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/monkey-runner/config"
	"github.com/lixenwraith/monkey-runner/core"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestRegistryCandidateFallback(t *testing.T) {
	fsys := fstest.MapFS{
		"images/food/cheese.png": {Data: pngBytes(t)},
	}
	reg := NewRegistry(fsys, DecodeImage, zerolog.Nop())

	name := FoodSprite(core.PowerCheese)
	if st := reg.Load(name, Candidates(name)...); st != StatePending {
		t.Errorf("first Load = %v, want pending", st)
	}
	reg.Wait()

	if st := reg.State(name); st != StateReady {
		t.Fatalf("state = %v, err = %v", st, reg.Err(name))
	}
	img, ok := reg.Get(name)
	if !ok || img.Bounds().Dx() != 2 || img.Bounds().Dy() != 3 {
		t.Errorf("Get = %v, %v", img, ok)
	}
	if reg.Path(name) != "images/food/cheese.png" {
		t.Errorf("path = %q", reg.Path(name))
	}
}

func TestRegistryFailureIsFinal(t *testing.T) {
	var calls atomic.Int32
	decode := func(r io.Reader) (string, error) {
		calls.Add(1)
		return "", errors.New("corrupt")
	}
	fsys := fstest.MapFS{"bad.png": {Data: []byte("x")}}
	reg := NewRegistry[string](fsys, decode, zerolog.Nop())

	reg.Load("bad", "missing.png", "bad.png")
	reg.Wait()

	if st := reg.State("bad"); st != StateFailed {
		t.Fatalf("state = %v, want failed", st)
	}
	err := reg.Err("bad")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want the missing candidate recorded", err)
	}
	if _, ok := reg.Get("bad"); ok {
		t.Error("Get returned a failed asset")
	}

	if st := reg.Load("bad", "bad.png"); st != StateFailed {
		t.Errorf("repeat Load = %v, want failed", st)
	}
	reg.Wait()
	if calls.Load() != 1 {
		t.Errorf("decode called %d times, want 1", calls.Load())
	}

	reg.Load("empty")
	reg.Wait()
	if reg.State("empty") != StateFailed || reg.Err("empty") == nil {
		t.Error("load without candidates did not fail")
	}
}

func TestRegistryPendingWhileLoading(t *testing.T) {
	release := make(chan struct{})
	decode := func(r io.Reader) (int, error) {
		<-release
		return 7, nil
	}
	reg := NewRegistry[int](fstest.MapFS{"a": {Data: []byte("a")}}, decode, zerolog.Nop())

	reg.Load("a", "a")
	if st := reg.State("a"); st != StatePending {
		t.Errorf("state = %v, want pending", st)
	}
	if _, ok := reg.Get("a"); ok {
		t.Error("Get succeeded while pending")
	}
	if reg.State("never") != StateUnknown {
		t.Error("unrequested asset not unknown")
	}

	close(release)
	reg.Wait()
	if v, ok := reg.Get("a"); !ok || v != 7 {
		t.Errorf("Get = %d, %v", v, ok)
	}
}

func TestSpriteCatalog(t *testing.T) {
	names := Sprites()
	if len(names) != 2+2*int(core.PowerKindCount)+int(core.EnemyKindCount) {
		t.Errorf("catalog has %d sprites", len(names))
	}
	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate sprite %q", n)
		}
		seen[n] = true
	}

	if got := PlayerSprite(core.PosePerforming, core.PowerAtomic); got != "player/atomic" {
		t.Errorf("performing sprite = %q", got)
	}
	c := Candidates("enemy/crab")
	if c[0] != "enemy/crab.png" || c[len(c)-1] != "crab.png" {
		t.Errorf("candidates = %v", c)
	}

	reg := NewRegistry(fstest.MapFS{"crab.png": {Data: pngBytes(t)}}, DecodeImage, zerolog.Nop())
	LoadSprites(reg)
	reg.Wait()
	if reg.State(EnemySprite(core.EnemyCrab)) != StateReady {
		t.Error("flat layout sprite not found")
	}
	if reg.State(EnemySprite(core.EnemyScorpion)) != StateFailed {
		t.Error("missing sprite not failed")
	}
}

func TestDefaultConfigMatchesBuiltins(t *testing.T) {
	cfg := config.Default()
	if err := cfg.MergeTOML(DefaultConfigTOML); err != nil {
		t.Fatalf("MergeTOML: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Tuning != config.DefaultTuning() {
		t.Errorf("written tuning differs from built-in defaults:\n%+v\n%+v", cfg.Tuning, config.DefaultTuning())
	}
	if cfg.Audio != config.DefaultAudio() {
		t.Errorf("written audio differs: %+v", cfg.Audio)
	}
}
