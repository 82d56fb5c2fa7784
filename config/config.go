// Copyright (c) 2026, The CyberWatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the icon generator:
// where each artifact goes and which sizes it holds.
//
// The defaults produce the CyberWatch favicon set. A project can
// override them with a shieldicon.toml file at its root.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"github.com/cyberwatch/shieldicon/ico"
	"github.com/cyberwatch/shieldicon/icon"
	"github.com/pelletier/go-toml/v2"
)

// Filename is the name of the optional config file in the project root.
const Filename = "shieldicon.toml"

// Config is the main config struct for the icon generator.
type Config struct {

	// Root is the project root that relative paths are resolved against.
	Root string `toml:"-"`

	// Style is the rendition of the icon design.
	Style icon.Styles `toml:"style"`

	// ICO configures the multi-resolution favicon.
	ICO ICO `toml:"ico"`

	// PNG configures the individually sized favicons and app icons.
	PNG PNG `toml:"png"`

	// ICNS configures the optional macOS icon.
	ICNS ICNS `toml:"icns"`
}

// ICO is the configuration of the ICO container.
type ICO struct {

	// Path is the output file, relative to the root.
	Path string `toml:"path" default:"app/favicon.ico"`

	// Sizes are the edge lengths of the embedded images.
	Sizes []int `toml:"sizes"`
}

// PNG is the configuration of the PNG exports.
type PNG struct {

	// Dir is the output directory, relative to the root.
	Dir string `toml:"dir" default:"public"`

	// Targets are the files written into Dir.
	Targets []PNGTarget `toml:"targets"`
}

// PNGTarget is one PNG file of a given size.
type PNGTarget struct {
	Size int    `toml:"size"`
	Name string `toml:"name"`
}

// ICNS is the configuration of the macOS icon.
type ICNS struct {

	// Enabled turns on writing the icns file.
	Enabled bool `toml:"enabled"`

	// Path is the output file, relative to the root.
	Path string `toml:"path" default:"app/icon.icns"`

	// Size is the edge length the icon is rendered at before
	// the icns encoder derives the smaller sizes from it.
	Size int `toml:"size" default:"1024"`
}

// DefaultICOSizes are the resolutions embedded in the favicon.
var DefaultICOSizes = []int{16, 32, 48, 64, 128, 256}

// DefaultPNGTargets are the PNG icons written for browsers and devices.
var DefaultPNGTargets = []PNGTarget{
	{Size: 16, Name: "favicon-16x16.png"},
	{Size: 32, Name: "favicon-32x32.png"},
	{Size: 48, Name: "favicon-48x48.png"},
	{Size: 180, Name: "apple-touch-icon.png"},
	{Size: 192, Name: "icon-192.png"},
	{Size: 512, Name: "icon-512.png"},
}

// Default returns the default config for the given project root.
func Default(root string) *Config {
	c := &Config{Root: root}
	errors.Log(reflectx.SetFromDefaultTags(&c.ICO))
	errors.Log(reflectx.SetFromDefaultTags(&c.PNG))
	errors.Log(reflectx.SetFromDefaultTags(&c.ICNS))
	c.ICO.Sizes = append([]int(nil), DefaultICOSizes...)
	c.PNG.Targets = append([]PNGTarget(nil), DefaultPNGTargets...)
	return c
}

// Open returns the config for the given project root: the defaults,
// overlaid with the contents of [Filename] in root if it exists.
func Open(root string) (*Config, error) {
	c := Default(root)
	fn := filepath.Join(root, Filename)
	b, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return nil, err
	}
	// lists in the file replace the defaults instead of extending them
	c.ICO.Sizes, c.PNG.Targets = nil, nil
	if err := toml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", fn, err)
	}
	if c.ICO.Sizes == nil {
		c.ICO.Sizes = append([]int(nil), DefaultICOSizes...)
	}
	if c.PNG.Targets == nil {
		c.PNG.Targets = append([]PNGTarget(nil), DefaultPNGTargets...)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", fn, err)
	}
	return c, nil
}

// Validate returns an error if the config cannot produce valid artifacts.
func (c *Config) Validate() error {
	if c.Style < 0 || c.Style >= icon.StylesN {
		return fmt.Errorf("style %v is not valid", c.Style)
	}
	if c.ICO.Path == "" {
		return errors.New("ico path is empty")
	}
	if len(c.ICO.Sizes) == 0 {
		return errors.New("ico has no sizes")
	}
	for _, sz := range c.ICO.Sizes {
		if sz < 1 || sz > ico.MaxSize {
			return fmt.Errorf("ico size %d is outside 1..%d", sz, ico.MaxSize)
		}
	}
	for _, tg := range c.PNG.Targets {
		if tg.Size < 1 {
			return fmt.Errorf("png %q has non-positive size %d", tg.Name, tg.Size)
		}
		if tg.Name == "" || filepath.Base(tg.Name) != tg.Name {
			return fmt.Errorf("png target of size %d has invalid name %q", tg.Size, tg.Name)
		}
	}
	if c.ICNS.Enabled {
		if c.ICNS.Path == "" {
			return errors.New("icns path is empty")
		}
		if c.ICNS.Size < 1 {
			return fmt.Errorf("icns size %d is not positive", c.ICNS.Size)
		}
	}
	return nil
}

// Path resolves p against the root unless it is absolute.
func (c *Config) Path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}
