// Copyright (c) 2026, The CyberWatch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icon

//go:generate core generate

// Styles are the available renditions of the icon design.
type Styles int32 //enums:enum -transform lower

const (
	// Classic is the flat design with a polygonal shield and square lock.
	Classic Styles = iota

	// Detailed has curved shield sides, an inner shield and a rounded lock.
	Detailed
)
