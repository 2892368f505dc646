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

// Package catalog holds display labels kept outside the code, in YAML or
// TOML files, keyed by qualified names:
//
//	types:
//	  shop.Order: Заказ
//	members:
//	  shop.Status.Paid: Оплачен
//	properties:
//	  shop.Order.Total: Сумма
//
// A Catalog passed to the builder as the extension payload becomes a
// resolution strategy that overrides the registry and struct tags.
package catalog

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned when a catalog file extension is neither
// YAML nor TOML.
var ErrUnknownFormat = errors.New("weasel(catalog): unknown catalog file format")

// Section selects one of the catalog's label maps.
type Section string

const (
	Types      Section = "types"
	Members    Section = "members"
	Properties Section = "properties"
)

// File is the on-disk layout of a catalog.
type File struct {
	Types      map[string]string `yaml:"types" toml:"types"`
	Members    map[string]string `yaml:"members" toml:"members"`
	Properties map[string]string `yaml:"properties" toml:"properties"`
}

// Catalog is an immutable set of labels. It is safe for concurrent use.
type Catalog struct {
	sections map[Section]map[string]string
}

// New builds a Catalog from f. Empty labels are dropped.
func New(f File) *Catalog {
	c := &Catalog{sections: make(map[Section]map[string]string, 3)}
	c.sections[Types] = nonEmpty(f.Types)
	c.sections[Members] = nonEmpty(f.Members)
	c.sections[Properties] = nonEmpty(f.Properties)
	return c
}

// Load reads a catalog from a .yaml, .yml or .toml file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("weasel(catalog): read %s: %w", path, err)
	}

	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	case ".toml":
		err = toml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("weasel(catalog): parse %s: %w", path, err)
	}
	return New(f), nil
}

// Lookup returns the label stored under key in section s.
func (c *Catalog) Lookup(s Section, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	label, ok := c.sections[s][key]
	return label, ok
}

// Keys returns the sorted keys of section s.
func (c *Catalog) Keys(s Section) []string {
	if c == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(c.sections[s]))
}

// Len returns the total number of labels.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, m := range c.sections {
		n += len(m)
	}
	return n
}

func nonEmpty(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		if k != "" && v != "" {
			out[k] = v
		}
	}
	return out
}
