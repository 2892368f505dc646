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

package catalog

import (
	"reflect"

	"dirpx.dev/weasel/apis"
	uref "dirpx.dev/weasel/utils/reflect"
)

// NewStrategy creates an apis.Strategy backed by c.
func NewStrategy(c *Catalog) apis.Strategy {
	return &strategy{c: c}
}

type strategy struct {
	c *Catalog
}

var _ apis.Strategy = (*strategy)(nil)

// TryType looks up "pkg.Type" in the types section.
func (s *strategy) TryType(t reflect.Type, _ apis.Config) (string, bool) {
	if t == nil {
		return "", false
	}
	return s.c.Lookup(Types, uref.QualifiedName(t))
}

// TryMember looks up "pkg.Type.Member" in the members section.
func (s *strategy) TryMember(e apis.Enum, m apis.Member, _ apis.Config) (string, bool) {
	if e.Type == nil {
		return "", false
	}
	return s.c.Lookup(Members, uref.QualifiedName(e.Type)+"."+m.Name)
}

// TryProperty looks up "pkg.Type.Field" in the properties section.
func (s *strategy) TryProperty(t reflect.Type, f reflect.StructField, _ apis.Config) (string, bool) {
	if t == nil {
		return "", false
	}
	return s.c.Lookup(Properties, uref.QualifiedName(t)+"."+f.Name)
}
