// Copyright (c) 2026, The CyberWatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export renders the icon at every configured size and
// writes the favicon, PNG icons and optional macOS icon to disk.
package export

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"cogentcore.org/core/base/iox/imagex"
	"github.com/cyberwatch/shieldicon/config"
	"github.com/cyberwatch/shieldicon/ico"
	"github.com/cyberwatch/shieldicon/icon"
	"github.com/cyberwatch/shieldicon/paint"
	"github.com/jackmordaunt/icns/v2"
)

// UnavailableHint is the remediation shown when drawing is unavailable.
const UnavailableHint = "Rebuild shieldicon from source, or open scripts/generate-icons.html in your browser to download the icons manually."

// Reporter receives the human-readable status of an export.
// [Printer] implements it for terminals.
type Reporter interface {
	Info(msg string)
	Success(msg string)
	Warn(msg, hint string)
}

// Exporter writes every artifact described by a [config.Config].
type Exporter struct {
	// Config describes the artifacts.
	Config *config.Config

	// Probe checks that drawing works before anything is rendered.
	// It defaults to [paint.Probe].
	Probe func() error

	// Reporter receives the status lines.
	Reporter Reporter
}

// New returns a new [Exporter] for the given config, reporting to r.
func New(c *config.Config, r Reporter) *Exporter {
	return &Exporter{Config: c, Probe: paint.Probe, Reporter: r}
}

// Artifacts returns the paths of the files [Exporter.Export] writes,
// in the order it writes them.
func (ex *Exporter) Artifacts() []string {
	c := ex.Config
	paths := []string{c.Path(c.ICO.Path)}
	for _, tg := range c.PNG.Targets {
		paths = append(paths, filepath.Join(c.Path(c.PNG.Dir), tg.Name))
	}
	if c.ICNS.Enabled {
		paths = append(paths, c.Path(c.ICNS.Path))
	}
	return paths
}

// Export writes all artifacts. If drawing is unavailable it reports a
// single warning and returns nil without writing anything. Any
// filesystem error ends the run and is returned.
func (ex *Exporter) Export() error {
	if err := ex.Probe(); err != nil {
		ex.Reporter.Warn(err.Error(), UnavailableHint)
		return nil
	}
	c := ex.Config
	if err := c.Validate(); err != nil {
		return err
	}
	ex.Reporter.Info("Generating CyberWatch icons...")
	if err := ex.writeICO(); err != nil {
		return err
	}
	if err := ex.writePNGs(); err != nil {
		return err
	}
	if c.ICNS.Enabled {
		if err := ex.writeICNS(); err != nil {
			return err
		}
	}
	ex.Reporter.Success("All icons generated successfully!")
	return nil
}

func (ex *Exporter) render(size int) *image.RGBA {
	slog.Debug("rendering icon", "size", size, "style", ex.Config.Style)
	return icon.RenderStyle(size, ex.Config.Style)
}

// writeICO writes the favicon with its images ordered from the smallest.
func (ex *Exporter) writeICO() error {
	c := ex.Config
	sizes := slices.Clone(c.ICO.Sizes)
	slices.Sort(sizes)
	sizes = slices.Compact(sizes)
	imgs := make([]image.Image, len(sizes))
	for i, sz := range sizes {
		imgs[i] = ex.render(sz)
	}
	buf := &bytes.Buffer{}
	if err := ico.Encode(buf, imgs...); err != nil {
		return err
	}
	fn := c.Path(c.ICO.Path)
	if err := os.MkdirAll(filepath.Dir(fn), 0777); err != nil {
		return fmt.Errorf("creating directory for %s: %w", fn, err)
	}
	if err := os.WriteFile(fn, buf.Bytes(), 0666); err != nil {
		return fmt.Errorf("writing %s: %w", fn, err)
	}
	ex.Reporter.Success(fmt.Sprintf("Generated %s with sizes: %v", filepath.Base(fn), sizes))
	return nil
}

func (ex *Exporter) writePNGs() error {
	c := ex.Config
	if len(c.PNG.Targets) == 0 {
		return nil
	}
	dir := c.Path(c.PNG.Dir)
	if err := os.MkdirAll(dir, 0777); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	for _, tg := range c.PNG.Targets {
		fn := filepath.Join(dir, tg.Name)
		if err := imagex.Save(ex.render(tg.Size), fn); err != nil {
			return fmt.Errorf("writing %s: %w", fn, err)
		}
		ex.Reporter.Success(fmt.Sprintf("Generated %s (%dx%d)", tg.Name, tg.Size, tg.Size))
	}
	return nil
}

// writeICNS writes the macOS icon; the encoder derives the
// smaller resolutions from the single rendered image.
func (ex *Exporter) writeICNS() error {
	c := ex.Config
	fn := c.Path(c.ICNS.Path)
	if err := os.MkdirAll(filepath.Dir(fn), 0777); err != nil {
		return fmt.Errorf("creating directory for %s: %w", fn, err)
	}
	buf := &bytes.Buffer{}
	if err := icns.Encode(buf, ex.render(c.ICNS.Size)); err != nil {
		return fmt.Errorf("encoding %s: %w", fn, err)
	}
	if err := os.WriteFile(fn, buf.Bytes(), 0666); err != nil {
		return fmt.Errorf("writing %s: %w", fn, err)
	}
	ex.Reporter.Success(fmt.Sprintf("Generated %s (%dx%d)", filepath.Base(fn), c.ICNS.Size, c.ICNS.Size))
	return nil
}
