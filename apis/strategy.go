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

package apis

import (
	"reflect"
)

// Strategy is a pluggable annotation source. A Resolver chains multiple
// strategies in order (e.g., Labeler -> Catalog -> Registry -> Tag) and
// takes the first handled answer.
type Strategy interface {
	// TryType attempts to find the type-level display annotation of t.
	// It returns (label, true) if handled; otherwise ("", false) to fall through.
	TryType(t reflect.Type, cfg Config) (label string, handled bool)

	// TryMember attempts to find the display annotation of member m of e.
	TryMember(e Enum, m Member, cfg Config) (label string, handled bool)

	// TryProperty attempts to find the display annotation of field f of t.
	TryProperty(t reflect.Type, f reflect.StructField, cfg Config) (label string, handled bool)
}
