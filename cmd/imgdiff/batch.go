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

package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"znkr.io/imgdiff"
	"znkr.io/imgdiff/internal/batch"
)

var (
	flagManifest string
	flagWorkers  int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Diff many image pairs from a JSON or YAML manifest",
	Long: `batch reads a manifest listing before/after image pairs and diffs them concurrently on
a fixed-size worker pool. A failing pair is reported and doesn't stop the remaining pairs.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs, err := batch.Load(flagManifest)
		if err != nil {
			return err
		}
		r := &batch.Runner{
			Workers: flagWorkers,
			Scale:   flagScale,
			Log:     newLog(),
			Opts:    []imgdiff.Option{imgdiff.Rate(flagRate)},
		}
		results, err := r.Run(context.Background(), pairs)
		summarize(results)
		return err
	},
}

func init() {
	batchCmd.Flags().StringVarP(&flagManifest, "manifest", "j", "", "path to the batch manifest (json or yaml)")
	batchCmd.Flags().IntVarP(&flagWorkers, "workers", "w", runtime.NumCPU(), "number of pairs to process concurrently")
	cobra.CheckErr(batchCmd.MarkFlagRequired("manifest"))
	rootCmd.AddCommand(batchCmd)
}

func summarize(results []batch.Result) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Result", "Rows", "Added", "Removed", "Time", "Status"})
	for _, res := range results {
		status := "ok"
		if res.Err != nil {
			status = res.Err.Error()
		}
		table.Append([]string{
			res.Output,
			fmt.Sprint(res.Rows),
			fmt.Sprint(res.Added),
			fmt.Sprint(res.Removed),
			res.Elapsed.String(),
			status,
		})
	}
	table.Render()
}
