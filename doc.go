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

// Package imgdiff compares two raster images scanline by scanline and renders the comparison as a
// single composite image for visual regression testing.
//
// Each image is treated as an ordered sequence of rows. The rows are aligned with a
// longest-common-subsequence algorithm, so a block of rows inserted at the top of a screenshot is
// reported as an insertion instead of turning every following row into a difference the way a
// naive pixel overlay would.
//
// The main functions are [Edits], which returns the row-level edit script, and [Diff], which
// renders the script into an image: unchanged rows pass through unmodified, removed rows are
// tinted red and added rows are tinted green. Rows are compared by exact byte equality; there is
// no fuzzy or perceptual matching.
//
// Performance: alignment is O(N*M) time and space in the number of differing rows of the two
// images. Rows that are part of a common prefix or suffix are excluded before the quadratic part
// runs, so comparing two mostly-equal screenshots is cheap.
package imgdiff
