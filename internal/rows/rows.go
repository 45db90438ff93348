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

// Package rows splits a raw pixel buffer into one comparable token per scanline.
package rows

import "encoding/base64"

// Token is the canonical encoding of one scanline's pixel bytes. Two tokens are equal iff the
// underlying scanline bytes are identical. Rows of images with different widths encode to tokens
// of different lengths, so their equality naturally fails.
type Token string

// Split slices pix into contiguous stride-sized chunks and encodes each chunk as a token. The
// stride is the row byte width, image width times bytes per pixel. A trailing chunk shorter than
// stride still becomes a token; well-formed images don't produce one, but a truncated buffer must
// not lose its last row.
func Split(pix []byte, stride int) []Token {
	if stride <= 0 || len(pix) == 0 {
		return nil
	}
	toks := make([]Token, 0, (len(pix)+stride-1)/stride)
	for len(pix) > 0 {
		n := min(stride, len(pix))
		toks = append(toks, Token(base64.StdEncoding.EncodeToString(pix[:n])))
		pix = pix[n:]
	}
	return toks
}

// Decode converts the token back into raw pixel bytes. It fails iff the token is not valid
// canonical encoding.
func (t Token) Decode() ([]byte, error) {
	return base64.StdEncoding.DecodeString(string(t))
}
