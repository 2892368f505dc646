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

// Labeler is implemented by enum types that compute member display names
// themselves. It is the zero-reflection fast path for member resolution:
// when an enum type implements Labeler, its DisplayName wins over catalog,
// registry and tag annotations.
//
// DisplayName must not call back into weasel for the same value; the
// resolver invokes it while computing that value's cache entry.
type Labeler interface {
	DisplayName() string
}

// TypeLabeler is implemented by types that carry a type-level display name.
// It is called on the zero value, so implementations must not depend on
// instance state.
type TypeLabeler interface {
	TypeDisplayName() string
}
