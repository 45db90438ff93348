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

import "znkr.io/imgdiff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Rate sets the weight of the highlight tint blended into removed and added rows. It must be in
// [0, 1]; the default is 0.25. Unchanged rows always render at rate 0 and are unaffected.
func Rate(rate float32) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Rate = rate
		return config.Rate
	}
}

// RemovedHighlight sets the tint blended into rows that only exist in the before image. The
// default is a warm red (255, 119, 119).
func RemovedHighlight(r, g, b uint8) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Removed = config.RGB{R: r, G: g, B: b}
		return config.RemovedHighlight
	}
}

// AddedHighlight sets the tint blended into rows that only exist in the after image. The default
// is a green (99, 195, 99).
func AddedHighlight(r, g, b uint8) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Added = config.RGB{R: r, G: g, B: b}
		return config.AddedHighlight
	}
}
