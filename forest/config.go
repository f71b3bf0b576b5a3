// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forest

import (
	"fmt"
	"time"

	"cogentcore.org/quoteforest/base/errors"
	"cogentcore.org/quoteforest/cli"
	"cogentcore.org/quoteforest/math32"
	"cogentcore.org/quoteforest/math32/minmax"
	"cogentcore.org/quoteforest/text3d"
	"github.com/jinzhu/copier"
)

// TextPolicy selects which text entities the generator creates.
type TextPolicy string

const (
	// QuoteBlocks places one random quote per block of
	// [Config.QuoteBlock] quotes of the corpus.
	QuoteBlocks TextPolicy = "quote-blocks"

	// EveryNthPillar places [Config.MarkerText] on every
	// [Config.MarkerEvery]th pillar.
	EveryNthPillar TextPolicy = "every-nth-pillar"
)

// Config has all the tunable parameters of a forest. Colors are
// 0xRRGGBB values.
type Config struct {

	// Includes are other config files read before this one.
	Includes []string

	// Seed seeds random placement; 0 uses the global random source.
	Seed int64 `default:"0"`

	// FontPath is the font used for text, either a file or builtin:name.
	FontPath string `default:"builtin:lmsans10"`

	// CorpusPath is the quote corpus; empty uses the embedded corpus.
	CorpusPath string

	// PillarCount is the number of pillars.
	PillarCount int `default:"100"`

	// PillarHeight is the range of pillar heights.
	PillarHeight minmax.F32 `default:"{'Min':10,'Max':90}"`

	// PillarWidth is the x and z size of every pillar.
	PillarWidth float32 `default:"20"`

	// PositionRange is the range of x and z positions of pillars and text.
	PositionRange minmax.F32 `default:"{'Min':-800,'Max':800}"`

	// MaxYaw is the upper bound of random rotations about y, in radians.
	MaxYaw float32 `default:"3"`

	PillarColor uint32 `default:"0xeeeeee"`

	// TextPolicy selects the text entities.
	TextPolicy TextPolicy `default:"quote-blocks"`

	// QuoteBlock is the number of corpus quotes per text entity
	// under [QuoteBlocks].
	QuoteBlock int `default:"100"`

	// MarkerEvery is the pillar index interval under [EveryNthPillar].
	MarkerEvery int `default:"10"`

	// MarkerText is the text placed under [EveryNthPillar].
	MarkerText string `default:"forest"`

	// TextScale is the uniform scale of text entities.
	TextScale float32 `default:"0.05"`

	TextColor uint32 `default:"0x8f1856"`

	// Text are the glyph extrusion parameters.
	Text text3d.TextOptions

	LightColor     uint32  `default:"0xff0000"`
	LightIntensity float32 `default:"1"`

	// LightDistance is the range of the point lights around text.
	LightDistance float32 `default:"100"`

	// LightOffsets are the positions of the point lights added around
	// each text entity, relative to it. One light is added per offset.
	LightOffsets []math32.Vector3 `default:"[{'X':-10,'Y':4,'Z':-10},{'X':10,'Y':4,'Z':-10},{'X':20,'Y':6,'Z':20},{'X':-20,'Y':6,'Z':-20}]"`

	// PositionDelay is the minimum time from scene initialization to
	// resting text on the ground, in seconds.
	PositionDelay float32 `default:"2.5"`

	// FOV is the vertical field of view of the camera, in degrees.
	FOV  float32 `default:"60"`
	Near float32 `default:"1"`
	Far  float32 `default:"1000"`

	// CameraStart is the first camera position, replaced by CameraPos
	// during bootstrap.
	CameraStart math32.Vector3 `default:"{'X':0,'Y':-200,'Z':-300}"`

	// CameraPos is the framing camera position.
	CameraPos math32.Vector3 `default:"{'X':5,'Y':2,'Z':8}"`

	// Target is the point the controls orbit around.
	Target math32.Vector3 `default:"{'X':0,'Y':0.5,'Z':0}"`

	Background uint32 `default:"0xcccccc"`
	FogColor   uint32 `default:"0xcccccc"`

	// FogDensity is the density of the exponential squared fog.
	FogDensity float32 `default:"0.002"`

	AmbientColor     uint32  `default:"0x8f1856"`
	AmbientIntensity float32 `default:"0.001"`
}

func (c *Config) IncludesPtr() *[]string { return &c.Includes }

// Defaults sets the default values of all fields.
func (c *Config) Defaults() {
	*c = Config{}
	cli.SetFromDefaults(c)
}

// NewConfig returns a config with default values.
func NewConfig() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Presets are the named variants of the forest.
var Presets = map[string]func(c *Config){
	"quotes": func(c *Config) {},
	"markers": func(c *Config) {
		c.PillarCount = 500
		c.TextPolicy = EveryNthPillar
		c.TextScale = 0.2
	},
}

// Preset returns the default config modified by the named preset.
func Preset(name string) (*Config, error) {
	set, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("forest: unknown preset %q", name)
	}
	c := NewConfig()
	set(c)
	return c, nil
}

// OpenConfig returns the named preset with the given TOML file, if
// any, read on top of it.
func OpenConfig(preset, file string) (*Config, error) {
	c, err := Preset(preset)
	if err != nil {
		return nil, err
	}
	if file == "" {
		return c, nil
	}
	if err := cli.Open(&cli.Options{KeepValues: true}, c, file); err != nil {
		return nil, err
	}
	return c, c.Validate()
}

// Clone returns a deep copy of the config. A failed copy is logged.
func (c *Config) Clone() *Config {
	cp := &Config{}
	errors.Log(copier.CopyWithOption(cp, c, copier.Option{DeepCopy: true}))
	return cp
}

// Validate returns an error for settings that cannot generate a forest.
func (c *Config) Validate() error {
	switch {
	case c.PillarCount < 0:
		return fmt.Errorf("forest: negative PillarCount %d", c.PillarCount)
	case c.PillarHeight.Min > c.PillarHeight.Max:
		return fmt.Errorf("forest: PillarHeight min %g > max %g", c.PillarHeight.Min, c.PillarHeight.Max)
	case c.PositionRange.Min > c.PositionRange.Max:
		return fmt.Errorf("forest: PositionRange min %g > max %g", c.PositionRange.Min, c.PositionRange.Max)
	case c.TextScale <= 0:
		return fmt.Errorf("forest: TextScale must be positive, not %g", c.TextScale)
	case c.Near <= 0 || c.Far <= c.Near:
		return fmt.Errorf("forest: invalid camera range [%g, %g]", c.Near, c.Far)
	}
	switch c.TextPolicy {
	case QuoteBlocks:
		if c.QuoteBlock <= 0 {
			return fmt.Errorf("forest: QuoteBlock must be positive, not %d", c.QuoteBlock)
		}
	case EveryNthPillar:
		if c.MarkerEvery <= 0 {
			return fmt.Errorf("forest: MarkerEvery must be positive, not %d", c.MarkerEvery)
		}
	default:
		return fmt.Errorf("forest: unknown TextPolicy %q", c.TextPolicy)
	}
	return nil
}

func (c *Config) positionDelay() time.Duration {
	return time.Duration(float64(c.PositionDelay) * float64(time.Second))
}
