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

// Config carries read-only resolution knobs that influence strategies and the
// resolver. It is passed by value and should be treated as immutable by
// implementations.
type Config struct {
	// Separator joins the labels of flag components in enum display names.
	Separator string

	// IncludeZero controls whether zero-valued members of a flags enum are
	// kept when a value is split into its components.
	IncludeZero bool

	// TagKey is the struct tag key that carries display annotations for
	// fields and (via a blank "_" field) for the struct type itself.
	TagKey string

	// MaxUnwrap limits pointer unwrapping depth when looking for the named
	// type behind *T, **T, etc.
	MaxUnwrap int
}
