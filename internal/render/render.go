// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package render translates an edit script plus the original row tokens into a single composite
// raster with removed and added rows tinted.
package render

import (
	"fmt"
	"image"

	"znkr.io/imgdiff/internal/config"
	"znkr.io/imgdiff/internal/lcs"
	"znkr.io/imgdiff/internal/rows"
)

// DecodeError reports a row token that could not be decoded back into pixel bytes. It is the only
// error the compositing pipeline can produce and aborts the diff of the affected image pair only.
type DecodeError struct {
	Y   int   // output row the token was composited into
	Err error // underlying encoding error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("imgdiff: decoding row %d: %v", e.Y, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Compose renders one output scanline per edit. The output is max(beforeW, afterW) pixels wide
// and len(edits) rows tall: Common rows pass through unmodified, Removed rows are blended with
// cfg.Removed and Added rows with cfg.Added, both at cfg.Rate.
func Compose(edits []lcs.Edit, before, after []rows.Token, beforeW, afterW int, cfg config.Config) (*image.RGBA, error) {
	width := max(beforeW, afterW)
	out := image.NewRGBA(image.Rect(0, 0, width, len(edits)))
	for y, e := range edits {
		var tok rows.Token
		var tint config.RGB
		var rate float32
		switch e.Op {
		case lcs.Common:
			// Zero rate and black tint keep the row byte-identical to its input.
			tok, tint, rate = before[e.Before], config.RGB{}, 0
		case lcs.Removed:
			tok, tint, rate = before[e.Before], cfg.Removed, cfg.Rate
		case lcs.Added:
			tok, tint, rate = after[e.After], cfg.Added, cfg.Rate
		default:
			panic(fmt.Sprintf("unknown op: %v", e.Op))
		}
		row, err := tok.Decode()
		if err != nil {
			return nil, &DecodeError{Y: y, Err: err}
		}
		putRow(out, y, row, tint, rate)
	}
	return out, nil
}

// putRow writes one output scanline. Columns beyond the source row's actual width are fully
// transparent, which pads the narrower image when the two inputs have different widths.
func putRow(out *image.RGBA, y int, row []byte, tint config.RGB, rate float32) {
	width := out.Rect.Dx()
	off := out.PixOffset(0, y)
	for x := 0; x < width; x++ {
		var r, g, b, a uint8
		if i := x * 4; i+4 <= len(row) {
			r, g, b, a = row[i], row[i+1], row[i+2], row[i+3]
		}
		out.Pix[off+0] = blend(r, tint.R, rate)
		out.Pix[off+1] = blend(g, tint.G, rate)
		out.Pix[off+2] = blend(b, tint.B, rate)
		out.Pix[off+3] = a // alpha passes through unmodified
		off += 4
	}
}

// blend mixes the highlight into a single channel. The result is truncated to an 8-bit integer,
// not rounded.
func blend(orig, tint uint8, rate float32) uint8 {
	return uint8(float32(orig)*(1-rate) + float32(tint)*rate)
}
