// Copyright (c) 2026, The CyberWatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command shieldicon generates the CyberWatch favicon and app icons
// for the project in the current directory. It takes no arguments;
// the optional shieldicon.toml file adjusts the outputs.
package main

import (
	"os"

	"cogentcore.org/core/base/errors"
	"github.com/cyberwatch/shieldicon/config"
	"github.com/cyberwatch/shieldicon/export"
)

func main() {
	root, err := os.Getwd()
	if errors.Log(err) != nil {
		os.Exit(1)
	}
	c, err := config.Open(root)
	if errors.Log(err) != nil {
		os.Exit(1)
	}
	ex := export.New(c, export.NewPrinter(os.Stdout))
	if errors.Log(ex.Export()) != nil {
		os.Exit(1)
	}
}
