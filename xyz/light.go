// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/quoteforest/colors"
	"cogentcore.org/quoteforest/math32"
)

// Light represents a light that illuminates a scene.
// These are stored on the [Scene] object and not within the tree.
type Light interface {

	// AsLightBase returns the [LightBase] for this Light,
	// which provides the core functionality of a light.
	AsLightBase() *LightBase
}

// LightBase provides the core implementation of the [Light] interface.
type LightBase struct {

	// Name is the name of the light.
	Name string

	// On is whether the light is turned on.
	On bool

	// Intensity is the brightness of the light.
	// It is just multiplied by the color.
	Intensity float32

	// Color is the color of the light at full intensity.
	Color color.RGBA
}

func (lb *LightBase) AsLightBase() *LightBase {
	return lb
}

// Radiance returns the linear color of the light at full strength,
// or black if it is off.
func (lb *LightBase) Radiance() colors.Linear {
	if !lb.On {
		return colors.Linear{}
	}
	return colors.ToLinear(lb.Color).Scale(lb.Intensity)
}

// AmbientLight provides diffuse uniform lighting; typically only one of these in a [Scene].
type AmbientLight struct {
	LightBase
}

// NewAmbientLight adds Ambient to given scene, with given name, color and intensity.
func NewAmbientLight(sc *Scene, name string, hex uint32, intensity float32) *AmbientLight {
	lt := &AmbientLight{}
	lt.Name = name
	lt.On = true
	lt.Color = colors.FromHex(hex)
	lt.Intensity = intensity
	sc.AddLight(lt)
	return lt
}

// PointLight is an omnidirectional light with a position
// and an attenuation that reaches zero at Distance.
type PointLight struct {
	LightBase

	// Pos is the position of light in world coordinates
	Pos math32.Vector3

	// Distance is the range of the light, beyond which it contributes
	// nothing. Zero means unlimited range.
	Distance float32

	// Decay is the exponent of the falloff toward Distance -- defaults to 2
	Decay float32
}

// NewPointLight adds point light to given scene, with given name, color,
// intensity and range, positioned at the origin -- set Pos to change.
func NewPointLight(sc *Scene, name string, hex uint32, intensity, distance float32) *PointLight {
	lt := &PointLight{}
	lt.Name = name
	lt.On = true
	lt.Color = colors.FromHex(hex)
	lt.Intensity = intensity
	lt.Distance = distance
	lt.Decay = 2
	sc.AddLight(lt)
	return lt
}

// Attenuation returns the fraction of the light's intensity that
// reaches the given distance from the light.
func (pl *PointLight) Attenuation(dist float32) float32 {
	if pl.Distance <= 0 {
		return 1
	}
	f := math32.Clamp(1-dist/pl.Distance, 0, 1)
	return math32.Pow(f, pl.Decay)
}

// AddLight adds given light to lights
// see NewX for convenience methods to add specific lights
func (sc *Scene) AddLight(lt Light) {
	sc.Lights = append(sc.Lights, lt)
}

// LightByName returns the first light with the given name, or nil.
func (sc *Scene) LightByName(name string) Light {
	for _, lt := range sc.Lights {
		if lt.AsLightBase().Name == name {
			return lt
		}
	}
	return nil
}
