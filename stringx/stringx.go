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

// Package stringx holds string helpers for display code. Lengths are
// counted in runes, never in bytes.
package stringx

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultEllipsis is appended by CropDefault.
const DefaultEllipsis = "..."

var multiSpace = regexp.MustCompile(`[ ]{2,}`)

// Shorten cuts s to at most max runes. It returns ("", false) for an empty s.
func Shorten(s string, max int) (string, bool) {
	if s == "" {
		return "", false
	}
	return prefix(s, max), true
}

// EnsureFirstUpper upper-cases the first rune of s.
func EnsureFirstUpper(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	// A Caser is stateful; one per call.
	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}

// EmptyToNil returns nil for an empty s and a pointer to a copy otherwise.
func EmptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// TrimSpaces collapses runs of two or more spaces into one and trims
// surrounding whitespace.
func TrimSpaces(s string) string {
	return strings.TrimSpace(multiSpace.ReplaceAllString(s, " "))
}

// ClearSpaces is TrimSpaces.
func ClearSpaces(s string) string {
	return TrimSpaces(s)
}

// ClearTypeName drops everything up to and including the last dot:
// "shop.Order" becomes "Order". A name without a dot, or ending with one,
// is returned unchanged.
func ClearTypeName(name string) string {
	i := strings.LastIndexByte(name, '.') + 1
	if i == 0 || i >= len(name) {
		return name
	}
	return name[i:]
}

// Crop limits s to n runes including ellipsis. A string of at most n runes
// is returned unchanged; otherwise its first n-len(ellipsis) runes are kept
// and ellipsis is appended.
func Crop(s string, n int, ellipsis string) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return prefix(s, n-utf8.RuneCountInString(ellipsis)) + ellipsis
}

// CropDefault is Crop with DefaultEllipsis.
func CropDefault(s string, n int) string {
	return Crop(s, n, DefaultEllipsis)
}

// prefix returns the first n runes of s. A negative n is treated as zero.
func prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}
