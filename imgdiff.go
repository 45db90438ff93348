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

package imgdiff

import (
	"image"
	"image/draw"

	"znkr.io/imgdiff/internal/config"
	"znkr.io/imgdiff/internal/lcs"
	"znkr.io/imgdiff/internal/render"
	"znkr.io/imgdiff/internal/rows"
)

// Op describes a row-level edit operation.
type Op = lcs.Op

const (
	Common  = lcs.Common  // The row exists in both images.
	Removed = lcs.Removed // The row only exists in the before image.
	Added   = lcs.Added   // The row only exists in the after image.
)

// Edit describes a single row of the comparison. Before and After are scanline indices into the
// before and after image respectively and are -1 when the edit doesn't touch that image.
type Edit = lcs.Edit

// DecodeError reports a row whose canonical encoding could not be decoded back into pixel bytes.
// It is the only error [Diff] returns; use [errors.As] to distinguish it from collaborator
// failures when deciding whether to retry or skip a pair.
type DecodeError = render.DecodeError

// Edits compares the scanlines of before and after and returns the edit script that transforms
// one into the other, one edit per output row.
//
// The output order is deterministic: when the alignment could equally skip a before-row or an
// after-row, the after-row wins and is emitted as Added first.
func Edits(before, after image.Image) []Edit {
	b, a := rgba(before), rgba(after)
	return lcs.Diff(tokens(b), tokens(a))
}

// Diff compares the scanlines of before and after and renders the comparison into a new image.
//
// The result is max(before width, after width) pixels wide with one row per edit: unchanged rows
// are copied through byte-identical, removed rows are blended with the removed highlight and
// added rows with the added highlight. Columns beyond the narrower image's width are fully
// transparent.
//
// The following options are supported: [Rate], [RemovedHighlight], [AddedHighlight]
func Diff(before, after image.Image, opts ...Option) (*image.RGBA, error) {
	cfg := config.FromOptions(opts, config.Rate|config.RemovedHighlight|config.AddedHighlight)
	b, a := rgba(before), rgba(after)
	btoks, atoks := tokens(b), tokens(a)
	edits := lcs.Diff(btoks, atoks)
	return render.Compose(edits, btoks, atoks, b.Rect.Dx(), a.Rect.Dx(), cfg)
}

// rgba returns img as a tightly packed RGBA image anchored at the origin, copying only when the
// input doesn't already have that shape.
func rgba(img image.Image) *image.RGBA {
	if p, ok := img.(*image.RGBA); ok && p.Rect.Min == (image.Point{}) && p.Stride == 4*p.Rect.Dx() {
		return p
	}
	b := img.Bounds()
	p := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(p, p.Rect, img, b.Min, draw.Src)
	return p
}

func tokens(img *image.RGBA) []rows.Token {
	return rows.Split(img.Pix, 4*img.Rect.Dx())
}
