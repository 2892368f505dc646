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

import "reflect"

// Integer is the set of underlying kinds an enumerated type may have.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Member is a single declared constant of an enumerated type.
type Member struct {
	// Name is the Go identifier of the constant.
	Name string
	// Bits is the value widened to 64 bits. Signed values are sign-extended,
	// so int64(Bits) recovers the original number.
	Bits uint64
	// Display is the declared display annotation, or "" when absent.
	Display string
	// Groupings lists the groups the member belongs to, if any.
	Groupings []string
}

// Enum describes a registered enumerated type.
type Enum struct {
	// Type is the named integer type.
	Type reflect.Type
	// Flags marks the type as a bitmask type whose values combine via OR.
	Flags bool
	// Members are kept in declaration order.
	Members []Member
}

// Member returns the first declared member whose value equals bits.
func (e Enum) Member(bits uint64) (Member, bool) {
	for _, m := range e.Members {
		if m.Bits == bits {
			return m, true
		}
	}
	return Member{}, false
}
