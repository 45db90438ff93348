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

// imgdiff renders the row-level difference of two PNG screenshots into a single highlighted
// image. Rows are aligned with a longest-common-subsequence algorithm, so inserted or deleted
// blocks of content show up as green or red bands instead of offsetting every following row.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jcgregorio/logger"
	"github.com/spf13/cobra"

	"znkr.io/imgdiff"
	"znkr.io/imgdiff/internal/batch"
)

var (
	flagBefore string
	flagAfter  string
	flagDiff   string
	flagRate   float32
	flagScale  float64
)

var rootCmd = &cobra.Command{
	Use:   "imgdiff",
	Short: "Row-based visual diff for PNG screenshots",
	Long: `imgdiff compares two PNG images scanline by scanline and writes a single composite
image: unchanged rows pass through, rows removed from the before image are tinted red and rows
added in the after image are tinted green.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs := []batch.Pair{{Before: flagBefore, After: flagAfter, Result: flagDiff}}
		r := &batch.Runner{
			Workers: 1,
			Scale:   flagScale,
			Log:     newLog(),
			Opts:    []imgdiff.Option{imgdiff.Rate(flagRate)},
		}
		_, err := r.Run(context.Background(), pairs)
		return err
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagBefore, "before", "b", "", "path to the before png")
	rootCmd.Flags().StringVarP(&flagAfter, "after", "a", "", "path to the after png")
	rootCmd.Flags().StringVarP(&flagDiff, "diff", "d", "", "path to the diff result png (default: before path with _result suffix)")
	rootCmd.PersistentFlags().Float32Var(&flagRate, "rate", 0.25, "highlight blend rate in [0, 1]")
	rootCmd.PersistentFlags().Float64Var(&flagScale, "scale", 0, "downscale both inputs by this factor in (0, 1) before diffing")
	cobra.CheckErr(rootCmd.MarkFlagRequired("before"))
	cobra.CheckErr(rootCmd.MarkFlagRequired("after"))
}

func newLog() *logger.Logger {
	return logger.NewFromOptions(&logger.Options{
		SyncWriter: os.Stderr,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
