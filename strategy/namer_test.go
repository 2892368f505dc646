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

package strategy_test

import (
	"reflect"
	"testing"

	"dirpx.dev/weasel/apis"
	"dirpx.dev/weasel/strategy"
)

type labeledType struct{}

func (labeledType) TypeDisplayName() string { return "custom.Label" } // implements apis.TypeLabeler

type ptrLabeledType struct{}

func (*ptrLabeledType) TypeDisplayName() string { return "ptr.Label" }

type blankType struct{}

func (blankType) TypeDisplayName() string { return "" }

// level labels only some of its values.
type level uint8

func (l level) DisplayName() string {
	if l == 1 {
		return "Высокий"
	}
	return ""
}

type color int8

const (
	red color = iota - 1
	green
)

// signed returns the 64-bit pattern of a negative member value.
func signed(i int64) uint64 { return uint64(i) }

func (c color) DisplayName() string {
	if c == red {
		return "Красный"
	}
	return "Зелёный"
}

func TestNamerStrategy_TryType(t *testing.T) {
	s := strategy.NewNamerStrategy()
	conf := apis.Config{} // config is irrelevant for NamerStrategy

	got, ok := s.TryType(reflect.TypeOf(labeledType{}), conf)
	if !ok || got != "custom.Label" {
		t.Fatalf("TryType: got (%q,%v), want (custom.Label,true)", got, ok)
	}

	// Pointer receiver -> resolved through the address of the zero value.
	got, ok = s.TryType(reflect.TypeOf(ptrLabeledType{}), conf)
	if !ok || got != "ptr.Label" {
		t.Fatalf("TryType(ptr receiver): got (%q,%v), want (ptr.Label,true)", got, ok)
	}

	got, ok = s.TryType(reflect.TypeOf(struct{}{}), conf)
	if ok || got != "" {
		t.Fatalf("TryType(non-labeler): got (%q,%v), want ('',false)", got, ok)
	}
}

func TestNamerStrategy_TryMember(t *testing.T) {
	s := strategy.NewNamerStrategy()
	e := apis.Enum{Type: reflect.TypeOf(color(0))}

	got, ok := s.TryMember(e, apis.Member{Name: "red", Bits: signed(-1)}, apis.Config{})
	if !ok || got != "Красный" {
		t.Fatalf("TryMember(red): got (%q,%v)", got, ok)
	}
	got, ok = s.TryMember(e, apis.Member{Name: "green", Bits: 0}, apis.Config{})
	if !ok || got != "Зелёный" {
		t.Fatalf("TryMember(green): got (%q,%v)", got, ok)
	}

	plain := apis.Enum{Type: reflect.TypeOf(uint8(0))}
	if got, ok := s.TryMember(plain, apis.Member{Name: "x"}, apis.Config{}); ok || got != "" {
		t.Fatalf("TryMember(non-labeler): got (%q,%v), want ('',false)", got, ok)
	}
}

func TestNamerStrategy_EmptyLabelIsNotAnAnswer(t *testing.T) {
	s := strategy.NewNamerStrategy()

	if got, ok := s.TryType(reflect.TypeOf(blankType{}), apis.Config{}); ok || got != "" {
		t.Fatalf("TryType(empty label): got (%q,%v), want ('',false)", got, ok)
	}

	e := apis.Enum{Type: reflect.TypeOf(level(0))}
	if got, ok := s.TryMember(e, apis.Member{Name: "Low", Bits: 0}, apis.Config{}); ok || got != "" {
		t.Fatalf("TryMember(empty label): got (%q,%v), want ('',false)", got, ok)
	}
	if got, ok := s.TryMember(e, apis.Member{Name: "High", Bits: 1}, apis.Config{}); !ok || got != "Высокий" {
		t.Fatalf("TryMember(High): got (%q,%v)", got, ok)
	}
}

func TestNamerStrategy_TryProperty(t *testing.T) {
	s := strategy.NewNamerStrategy()
	typ := reflect.TypeOf(A{})
	if got, ok := s.TryProperty(typ, field(t, typ, "Name"), apis.Config{}); ok || got != "" {
		t.Fatalf("TryProperty: got (%q,%v), want ('',false)", got, ok)
	}
}

// Ensure the local types actually satisfy the labeler contracts (compile-time).
var (
	_ apis.TypeLabeler = labeledType{}
	_ apis.TypeLabeler = (*ptrLabeledType)(nil)
	_ apis.Labeler     = green
)
