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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"dirpx.dev/weasel/apis"
)

// ErrUnknownFormat is returned when a config file extension is neither
// YAML nor TOML.
var ErrUnknownFormat = errors.New("weasel(config): unknown config file format")

// fileConfig mirrors apis.Config with optional fields so that keys absent
// from the file keep their defaults.
type fileConfig struct {
	Separator   *string `yaml:"separator" toml:"separator"`
	IncludeZero *bool   `yaml:"include_zero" toml:"include_zero"`
	TagKey      *string `yaml:"tag_key" toml:"tag_key"`
	MaxUnwrap   *int    `yaml:"max_unwrap" toml:"max_unwrap"`
}

// Load reads a YAML (.yaml, .yml) or TOML (.toml) file and returns the
// resulting configuration layered over the defaults. Extra opts are applied
// after the file, so they win.
func Load(path string, opts ...Option) (apis.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return apis.Config{}, fmt.Errorf("weasel(config): read %s: %w", path, err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	case ".toml":
		err = toml.Unmarshal(data, &fc)
	default:
		return apis.Config{}, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	if err != nil {
		return apis.Config{}, fmt.Errorf("weasel(config): parse %s: %w", path, err)
	}

	return NewConfig(append(fc.options(), opts...)...), nil
}

// options converts the fields present in the file into Options.
func (fc fileConfig) options() []Option {
	var out []Option
	if fc.Separator != nil {
		out = append(out, WithSeparator(*fc.Separator))
	}
	if fc.IncludeZero != nil {
		out = append(out, WithIncludeZero(*fc.IncludeZero))
	}
	if fc.TagKey != nil {
		out = append(out, WithTagKey(*fc.TagKey))
	}
	if fc.MaxUnwrap != nil {
		out = append(out, WithMaxUnwrap(*fc.MaxUnwrap))
	}
	return out
}
