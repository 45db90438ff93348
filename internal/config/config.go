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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// imgdiff.Option.
package config

// RGB is a highlight tint, one 8-bit value per channel.
type RGB struct {
	R, G, B uint8
}

// Config collects all configurable parameters for functions in this module.
type Config struct {
	// Rate is the weight of the highlight tint when blending changed rows, in [0, 1].
	Rate float32

	// Removed is the tint applied to rows that only exist in the before image.
	Removed RGB

	// Added is the tint applied to rows that only exist in the after image.
	Added RGB
}

// Default is the default configuration.
var Default = Config{
	Rate:    0.25,
	Removed: RGB{R: 255, G: 119, B: 119},
	Added:   RGB{R: 99, G: 195, B: 99},
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by an entry point.
type Flag int

const (
	Rate Flag = 1 << iota
	RemovedHighlight
	AddedHighlight
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	if cfg.Rate < 0 || cfg.Rate > 1 {
		panic("blend rate must be in [0, 1]")
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Rate:
		return "imgdiff.Rate"
	case RemovedHighlight:
		return "imgdiff.RemovedHighlight"
	case AddedHighlight:
		return "imgdiff.AddedHighlight"
	default:
		panic("never reached")
	}
}
