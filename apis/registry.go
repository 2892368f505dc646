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

// Registry stores explicitly declared metadata: enum members, type labels
// and property labels. It is the Go stand-in for attributes attached at
// definition time, so entries are expected to be written during init and
// read for the rest of the process lifetime.
type Registry interface {
	// RegisterEnum declares an enumerated type with its members.
	// Re-registering an identical description is a no-op; a different one fails.
	RegisterEnum(e Enum) error
	// LookupEnum returns the description registered for t.
	LookupEnum(t reflect.Type) (Enum, bool)
	// RegisterType attaches a type-level display label to t.
	RegisterType(t reflect.Type, label string) error
	// LookupType returns the type-level label registered for t.
	LookupType(t reflect.Type) (label string, ok bool)
	// RegisterProperty attaches a display label to the field of t.
	RegisterProperty(t reflect.Type, field, label string) error
	// LookupProperty returns the label registered for the field of t.
	LookupProperty(t reflect.Type, field string) (label string, ok bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries. It is safe to call concurrently
	// with lookups. Resolvers built over the registry keep their memoized
	// answers; see weasel.ResetRegistry.
	Reset()
}

// EntryKind tells which Registry method produced an Entry.
type EntryKind int

const (
	// EntryEnum is an enum registration; Enum is set.
	EntryEnum EntryKind = iota
	// EntryType is a type label; Label is set.
	EntryType
	// EntryProperty is a property label; Field and Label are set.
	EntryProperty
)

// Entry is a single registration in a Registry snapshot.
type Entry struct {
	Kind  EntryKind
	Type  reflect.Type
	Field string
	Label string
	Enum  Enum
}
