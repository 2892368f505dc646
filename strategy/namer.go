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

package strategy

import (
	"reflect"

	"dirpx.dev/weasel/apis"
	"dirpx.dev/weasel/enum"
)

var (
	labelerType     = reflect.TypeFor[apis.Labeler]()
	typeLabelerType = reflect.TypeFor[apis.TypeLabeler]()
)

// NewNamerStrategy creates an apis.Strategy that uses apis.Labeler and
// apis.TypeLabeler implemented by the types themselves.
func NewNamerStrategy() apis.Strategy {
	return &namerStrategy{}
}

// namerStrategy is a zero-annotation fast path: if the type labels itself
// with a non-empty label, return that label and stop the chain.
type namerStrategy struct{}

// Ensure namerStrategy implements apis.Strategy.
var _ apis.Strategy = (*namerStrategy)(nil)

// TryType calls TypeDisplayName on the zero value of t (or of *t when the
// method has a pointer receiver). An empty label is not an answer.
func (*namerStrategy) TryType(t reflect.Type, _ apis.Config) (string, bool) {
	if t == nil {
		return "", false
	}
	v := reflect.New(t).Elem()
	if l, ok := as[apis.TypeLabeler](v, typeLabelerType); ok {
		if name := l.TypeDisplayName(); name != "" {
			return name, true
		}
	}
	return "", false
}

// TryMember calls DisplayName on the member value. An empty label passes
// the member on to the next strategy.
func (*namerStrategy) TryMember(e apis.Enum, m apis.Member, _ apis.Config) (string, bool) {
	v, err := enum.Value(e.Type, m.Bits)
	if err != nil {
		return "", false
	}
	if l, ok := as[apis.Labeler](v, labelerType); ok {
		if name := l.DisplayName(); name != "" {
			return name, true
		}
	}
	return "", false
}

// TryProperty always returns false: field labels are declarative only.
func (*namerStrategy) TryProperty(_ reflect.Type, _ reflect.StructField, _ apis.Config) (string, bool) {
	return "", false
}

// as converts the addressable value v to I, using its address when only the
// pointer type implements iface.
func as[I any](v reflect.Value, iface reflect.Type) (I, bool) {
	var zero I
	switch {
	case v.Type().Implements(iface):
		l, ok := v.Interface().(I)
		return l, ok
	case v.CanAddr() && reflect.PointerTo(v.Type()).Implements(iface):
		l, ok := v.Addr().Interface().(I)
		return l, ok
	default:
		return zero, false
	}
}
