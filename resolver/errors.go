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

package resolver

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrPropertyNotFound matches every *PropertyNotFoundError.
var ErrPropertyNotFound = errors.New("weasel(resolver): property not found")

// PropertyNotFoundError reports a property name absent from a type, both
// among its own fields and among promoted ones.
type PropertyNotFoundError struct {
	Type     string
	Property string
}

func (e *PropertyNotFoundError) Error() string {
	return fmt.Sprintf("weasel(resolver): property %q not found on type %s", e.Property, e.Type)
}

// Is reports whether target is ErrPropertyNotFound.
func (e *PropertyNotFoundError) Is(target error) bool {
	return target == ErrPropertyNotFound
}

func notFound(t reflect.Type, property string) error {
	name := "<nil>"
	if t != nil {
		name = t.String()
	}
	return &PropertyNotFoundError{Type: name, Property: property}
}
