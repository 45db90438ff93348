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

package batch

import (
	"context"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/jcgregorio/logger"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"znkr.io/imgdiff"
)

// Result describes the outcome of one pair.
type Result struct {
	Pair    Pair
	Output  string        // where the rendered diff was written
	Rows    int           // output height in rows
	Added   int           // rows only present in the after image
	Removed int           // rows only present in the before image
	Elapsed time.Duration // zero when the pair failed
	Err     error
}

// Runner executes image pairs on a fixed-size worker pool. Pairs share no state; a failure in one
// pair is recorded in its Result and never stops the others.
type Runner struct {
	// Workers is the number of pairs processed concurrently. Values < 1 mean one worker.
	Workers int

	// Scale shrinks both inputs by this factor before diffing when it is in (0, 1). Alignment is
	// quadratic in the changed row region, so downscaling very large screenshots first trades
	// fidelity for time.
	Scale float64

	// Log receives per-pair progress and failures. May be nil.
	Log *logger.Logger

	// Opts are passed through to [imgdiff.Diff] for every pair.
	Opts []imgdiff.Option
}

// Run processes all pairs and returns one result per pair in input order. It blocks until every
// dispatched pair has finished. The returned error aggregates the per-pair failures and is nil
// iff every pair succeeded.
func (r *Runner) Run(ctx context.Context, pairs []Pair) ([]Result, error) {
	results := make([]Result, len(pairs))
	var g errgroup.Group
	g.SetLimit(max(1, r.Workers))
	for i, p := range pairs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Pair: p, Output: p.ResultPath(), Err: err}
				return nil
			}
			results[i] = r.one(p)
			return nil
		})
	}
	_ = g.Wait() // tasks record their errors in results

	var merr *multierror.Error
	for _, res := range results {
		if res.Err != nil {
			if r.Log != nil {
				r.Log.Errorf("%s vs %s: %v", res.Pair.Before, res.Pair.After, res.Err)
			}
			merr = multierror.Append(merr, res.Err)
		} else if r.Log != nil {
			r.Log.Infof("%s: %v", res.Output, res.Elapsed)
		}
	}
	return results, merr.ErrorOrNil()
}

func (r *Runner) one(p Pair) Result {
	start := time.Now()
	res := Result{Pair: p, Output: p.ResultPath()}

	before, err := load(p.Before)
	if err != nil {
		res.Err = err
		return res
	}
	after, err := load(p.After)
	if err != nil {
		res.Err = err
		return res
	}
	if r.Scale > 0 && r.Scale < 1 {
		before = shrink(before, r.Scale)
		after = shrink(after, r.Scale)
	}

	out, err := imgdiff.Diff(before, after, r.Opts...)
	if err != nil {
		res.Err = err
		return res
	}
	res.Rows = out.Rect.Dy()
	res.Added = res.Rows - before.Bounds().Dy()
	res.Removed = res.Rows - after.Bounds().Dy()

	if err := write(out, res.Output); err != nil {
		res.Err = err
		return res
	}
	res.Elapsed = time.Since(start)
	return res
}

func load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening image")
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	return img, nil
}

func write(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "creating result directory")
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating result image")
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "encoding %s", path)
	}
	return errors.Wrap(f.Close(), "writing result image")
}

func shrink(img image.Image, factor float64) image.Image {
	w := uint(math.Round(float64(img.Bounds().Dx()) * factor))
	if w < 1 {
		w = 1
	}
	return resize.Resize(w, 0, img, resize.Bilinear)
}
