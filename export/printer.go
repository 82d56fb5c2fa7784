// Copyright (c) 2026, The CyberWatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/core/base/logx"
	"github.com/muesli/termenv"
)

// Printer is a [Reporter] that writes status lines to a terminal,
// coloring them when the output supports it. Like the logx print
// functions, it prints nothing below [logx.UserLevel].
type Printer struct {
	out *termenv.Output
}

// NewPrinter returns a new [Printer] writing to w. The color profile
// is detected from w unless overridden by the given options.
func NewPrinter(w io.Writer, opts ...termenv.OutputOption) *Printer {
	return &Printer{out: termenv.NewOutput(w, opts...)}
}

// Info prints a plain status line.
func (p *Printer) Info(msg string) {
	if logx.UserLevel > slog.LevelInfo {
		return
	}
	fmt.Fprintln(p.out, msg)
}

// Success prints a line reporting something that completed.
func (p *Printer) Success(msg string) {
	if logx.UserLevel > slog.LevelInfo {
		return
	}
	fmt.Fprintln(p.out, p.out.String("✅ "+msg).Foreground(p.out.Color("2")))
}

// Warn prints a warning followed by a hint on how to resolve it.
// The hint is omitted when empty.
func (p *Printer) Warn(msg, hint string) {
	if logx.UserLevel > slog.LevelWarn {
		return
	}
	fmt.Fprintln(p.out, p.out.String("⚠️  "+msg).Foreground(p.out.Color("3")).Bold())
	if hint != "" {
		fmt.Fprintln(p.out, "📝 "+hint)
	}
}
