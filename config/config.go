/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"dirpx.dev/weasel/apis"
)

const (
	// DefaultSeparator represents the default for Separator.
	DefaultSeparator = ", "
	// DefaultIncludeZero represents the default for IncludeZero.
	// When false, zero-valued flag members are dropped from enumerations.
	DefaultIncludeZero = false
	// DefaultTagKey represents the default for TagKey.
	DefaultTagKey = "display"
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxUnwrap and TagKey are valid.
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	if cfg.TagKey == "" {
		cfg.TagKey = DefaultTagKey
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Separator:   DefaultSeparator,
		IncludeZero: DefaultIncludeZero,
		TagKey:      DefaultTagKey,
		MaxUnwrap:   DefaultMaxUnwrap,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithSeparator sets the Separator option. The separator is used verbatim,
// including any surrounding whitespace; an empty separator is allowed.
func WithSeparator(sep string) Option {
	return func(c *apis.Config) {
		c.Separator = sep
	}
}

// WithIncludeZero sets the IncludeZero option.
func WithIncludeZero(include bool) Option {
	return func(c *apis.Config) {
		c.IncludeZero = include
	}
}

// WithTagKey sets the TagKey option.
// An empty key resets to the default.
func WithTagKey(key string) Option {
	return func(c *apis.Config) {
		if key == "" {
			c.TagKey = DefaultTagKey
			return
		}
		c.TagKey = key
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}
