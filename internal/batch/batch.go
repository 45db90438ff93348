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

// Package batch runs many before/after image pairs through the diff pipeline on a fixed-size
// worker pool.
package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Pair identifies one unit of work: a before image, an after image and the location the rendered
// diff is written to. Result may be empty, in which case the output lands next to the before
// image with a "_result" suffix.
type Pair struct {
	Before string `json:"before" yaml:"before"`
	After  string `json:"after" yaml:"after"`
	Result string `json:"result,omitempty" yaml:"result,omitempty"`
}

// ResultPath returns the location the rendered diff is written to.
func (p Pair) ResultPath() string {
	if p.Result != "" {
		return p.Result
	}
	return strings.TrimSuffix(p.Before, filepath.Ext(p.Before)) + "_result.png"
}

// Load reads a batch manifest from path: a list of pairs, in YAML when the file ends in .yaml or
// .yml and JSON otherwise.
func Load(path string) ([]Pair, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading batch manifest")
	}
	var pairs []Pair
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &pairs); err != nil {
			return nil, errors.Wrapf(err, "parsing batch manifest %s", path)
		}
	default:
		if err := json.Unmarshal(raw, &pairs); err != nil {
			return nil, errors.Wrapf(err, "parsing batch manifest %s", path)
		}
	}
	for i, p := range pairs {
		if p.Before == "" || p.After == "" {
			return nil, errors.Errorf("pair %d: before and after are required", i)
		}
	}
	return pairs, nil
}
