// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"cogentcore.org/rainbow/colors"
	"cogentcore.org/rainbow/colors/oklch"
	"github.com/muesli/termenv"
)

// swatch returns a cell of the given color labeled with the given number,
// with black or white text depending on the lightness of the color.
func swatch(o *termenv.Output, c colors.RGB, n int) string {
	fg := "#ffffff"
	if oklch.FromRGB(c).L > 0.6 {
		fg = "#000000"
	}
	return o.String(fmt.Sprintf("  %2d  ", n)).Foreground(o.Color(fg)).Background(o.Color(c.Hex())).String()
}

// block returns an unlabeled cell of the given color.
func block(o *termenv.Output, c colors.RGB) string {
	return o.String(strings.Repeat(" ", 6)).Background(o.Color(c.Hex())).String()
}

// renderGrid writes the colors as a square grid of numbered swatches,
// each two lines tall.
func renderGrid(w io.Writer, o *termenv.Output, cs []colors.RGB) {
	cols := int(math.Ceil(math.Sqrt(float64(len(cs)))))
	for row := 0; row*cols < len(cs); row++ {
		var top, bottom strings.Builder
		for i := row * cols; i < min((row+1)*cols, len(cs)); i++ {
			top.WriteString(block(o, cs[i]) + " ")
			bottom.WriteString(swatch(o, cs[i], i+1) + " ")
		}
		fmt.Fprintln(w, top.String())
		fmt.Fprintln(w, bottom.String())
		fmt.Fprintln(w)
	}
}
