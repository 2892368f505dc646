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

// Package boolx renders optional booleans for people.
package boolx

const (
	DefaultYes  = "Да"
	DefaultNo   = "Нет"
	DefaultNull = "Не указано"
)

type labels struct {
	yes, no, null string
	hasNull       bool
}

// Option overrides one of the labels.
type Option func(*labels)

// WithYes sets the label for true.
func WithYes(s string) Option {
	return func(l *labels) { l.yes = s }
}

// WithNo sets the label for false.
func WithNo(s string) Option {
	return func(l *labels) { l.no = s }
}

// WithNull sets the label for nil.
func WithNull(s string) Option {
	return func(l *labels) { l.null, l.hasNull = s, true }
}

// WithoutNull makes nil resolve to ("", false).
func WithoutNull() Option {
	return func(l *labels) { l.null, l.hasNull = "", false }
}

// YesNo returns the label for b: DefaultYes, DefaultNo or, for nil,
// DefaultNull. ok is false only for nil under WithoutNull.
func YesNo(b *bool, opts ...Option) (string, bool) {
	l := labels{yes: DefaultYes, no: DefaultNo, null: DefaultNull, hasNull: true}
	for _, opt := range opts {
		opt(&l)
	}
	switch {
	case b == nil:
		return l.null, l.hasNull
	case *b:
		return l.yes, true
	default:
		return l.no, true
	}
}
