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
)

// NewRegistryStrategy creates an apis.Strategy that uses an apis.Registry.
func NewRegistryStrategy(reg apis.Registry) apis.Strategy {
	return &registryStrategy{reg: reg}
}

// registryStrategy consults explicitly registered labels (reflection-free lookup).
type registryStrategy struct {
	reg apis.Registry
}

// Ensure registryStrategy implements apis.Strategy.
var _ apis.Strategy = (*registryStrategy)(nil)

// TryType looks up t in the registry.
func (s *registryStrategy) TryType(t reflect.Type, _ apis.Config) (string, bool) {
	if t == nil || s.reg == nil {
		return "", false
	}
	return s.reg.LookupType(t)
}

// TryMember returns the Display registered with the member.
func (s *registryStrategy) TryMember(_ apis.Enum, m apis.Member, _ apis.Config) (string, bool) {
	if m.Display == "" {
		return "", false
	}
	return m.Display, true
}

// TryProperty looks up the field label of t in the registry.
func (s *registryStrategy) TryProperty(t reflect.Type, f reflect.StructField, _ apis.Config) (string, bool) {
	if t == nil || s.reg == nil {
		return "", false
	}
	return s.reg.LookupProperty(t, f.Name)
}
