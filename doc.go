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

// Package weasel turns enum values, types and struct fields into
// human-readable display names, and bundles a few small helpers that
// presentation code tends to need next to them.
//
// # Declaring metadata
//
// Go keeps no metadata about constants, so enumerated types are declared
// once, usually from init:
//
//	type Check uint8
//
//	const (
//	    One Check = 1 << iota
//	    Two
//	    Three
//	)
//
//	func init() {
//	    _ = weasel.RegisterEnum([]weasel.EnumMember[Check]{
//	        {Value: One, Name: "One", Display: "CHECK 1"},
//	        {Value: Two, Name: "Two", Display: "CHECK 2"},
//	        {Value: Three, Name: "Three", Display: "CHECK 3"},
//	    }, weasel.AsFlags())
//	}
//
//	weasel.EnumDisplayName(One | Two | Three)                  // "CHECK 1, CHECK 2, CHECK 3"
//	weasel.EnumDisplayNameWith(One|Two|Three, " ABOBA ", false) // "CHECK 1 ABOBA CHECK 2 ABOBA CHECK 3"
//
// Type and field labels come from struct tags, from the registry or from
// a catalog file:
//
//	type Order struct {
//	    _     struct{} `display:"Заказ"`
//	    Total int      `display:"Сумма"`
//	}
//
//	weasel.TypeDisplayNameOf[Order]()          // "Заказ", true
//	weasel.PropertyDisplayNameOf[Order]("Total") // "Сумма", true, nil
//
// # Resolution order
//
// Every label is looked up through a chain of strategies; the first one
// that answers wins:
//
//  1. apis.Labeler / apis.TypeLabeler implemented by the type itself;
//  2. a catalog.Catalog passed with SetExt;
//  3. the registry (RegisterEnum, RegisterType, RegisterProperty);
//  4. struct tags (key "display", see config.WithTagKey).
//
// An enum member without a label resolves to its identifier. A type
// without a label resolves to nothing: there is no fallback to the Go
// type name.
//
// # Global state
//
// The package holds an immutable snapshot of Config, Registry, Resolver,
// Builder and an opaque extension payload behind an atomic pointer.
// Lookups load the snapshot and never lock. Writers (SetConfig, SetExt,
// SetBuilder, SetRegistry, SetResolver, SetAll and the Register functions)
// serialize on a build mutex, derive a new snapshot and swap it in.
//
// Resolvers memoize every answer and never evict. Registrations therefore
// rebuild the resolver, so a lookup made before a registration cannot
// shadow it. SetRegistry and SetResolver pin their layer: a pinned layer
// is not rebuilt until UnpinRegistry or UnpinResolver is called.
//
// # Helpers
//
// Package stringx trims, crops and capitalizes strings rune-wise; boolx
// renders *bool as yes/no/unset; numx checks powers of two and picks the
// Russian plural form for a number; session encodes booleans, integers and
// timestamps for byte-oriented session stores.
package weasel
