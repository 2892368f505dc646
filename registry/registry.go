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

package registry

import (
	"errors"
	"reflect"
	"slices"
	"sync"

	"go.uber.org/zap"

	"dirpx.dev/weasel/apis"
	"dirpx.dev/weasel/config"
	uref "dirpx.dev/weasel/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("weasel(registry): nil reflect.Type provided")
	// ErrEmptyName is returned when an empty member, field or label name is provided.
	ErrEmptyName = errors.New("weasel(registry): empty name provided")
	// ErrNotEnum is returned when an enum is registered for a non-integer type.
	ErrNotEnum = errors.New("weasel(registry): enum type must have an integer kind")
	// ErrDuplicateMember is returned when two enum members share an identifier.
	ErrDuplicateMember = errors.New("weasel(registry): duplicate enum member name")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type, member set or field with different metadata.
	ErrConflictingRegistration = errors.New("weasel(registry): conflicting registration")
)

// Option configures a registry.
type Option func(*registry)

// WithLogger sets the logger used to trace registrations.
func WithLogger(l *zap.Logger) Option {
	return func(r *registry) {
		if l != nil {
			r.log = l
		}
	}
}

// New constructs a Registry that normalizes types according to cfg.
// Only MaxUnwrap is used here.
func New(cfg apis.Config, opts ...Option) apis.Registry {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	r := &registry{cfg: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// propKey identifies a field of a named type.
type propKey struct {
	t     reflect.Type
	field string
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// cfg is the configuration used for type normalization.
	cfg apis.Config
	// log traces registrations.
	log *zap.Logger
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// enums maps reflect.Type to apis.Enum.
	enums sync.Map
	// types maps reflect.Type to a type-level label.
	types sync.Map
	// props maps propKey to a field label.
	props sync.Map
	// count tracks the number of registered entries.
	count int
}

// RegisterEnum stores e. It is idempotent for an identical description.
func (r *registry) RegisterEnum(e apis.Enum) error {
	// Validate inputs early.
	if e.Type == nil {
		return ErrNilType
	}
	if !uref.IsInteger(e.Type.Kind()) || e.Type.Name() == "" {
		return ErrNotEnum
	}
	seen := make(map[string]struct{}, len(e.Members))
	for _, m := range e.Members {
		if m.Name == "" {
			return ErrEmptyName
		}
		if _, dup := seen[m.Name]; dup {
			return ErrDuplicateMember
		}
		seen[m.Name] = struct{}{}
	}
	e = cloneEnum(e)

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.enums.Load(e.Type); ok {
		if reflect.DeepEqual(old.(apis.Enum), e) {
			return nil // idempotent re-registration
		}
		return ErrConflictingRegistration
	}
	r.enums.Store(e.Type, e)
	r.count++
	r.log.Debug("weasel: enum registered",
		zap.Stringer("type", e.Type),
		zap.Bool("flags", e.Flags),
		zap.Int("members", len(e.Members)))
	return nil
}

// LookupEnum returns the description registered for t.
func (r *registry) LookupEnum(t reflect.Type) (apis.Enum, bool) {
	if t == nil {
		return apis.Enum{}, false
	}
	if v, ok := r.enums.Load(t); ok {
		return v.(apis.Enum), true
	}
	return apis.Enum{}, false
}

// RegisterType associates the nearest named type of t with label.
// It is idempotent for the same (type,label) pair.
func (r *registry) RegisterType(t reflect.Type, label string) error {
	if t == nil {
		return ErrNilType
	}
	if label == "" {
		return ErrEmptyName
	}
	b, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return err
	}
	if err := r.store(&r.types, b, label); err != nil {
		return err
	}
	r.log.Debug("weasel: type label registered", zap.Stringer("type", b), zap.String("label", label))
	return nil
}

// LookupType returns the label registered for the nearest named type of t.
func (r *registry) LookupType(t reflect.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	nt, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return "", false
	}
	if v, ok := r.types.Load(nt); ok {
		return v.(string), true
	}
	return "", false
}

// RegisterProperty associates the field of the nearest named type of t with label.
// The field is not required to exist; the resolver checks existence.
func (r *registry) RegisterProperty(t reflect.Type, field, label string) error {
	if t == nil {
		return ErrNilType
	}
	if field == "" || label == "" {
		return ErrEmptyName
	}
	b, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return err
	}
	if err := r.store(&r.props, propKey{t: b, field: field}, label); err != nil {
		return err
	}
	r.log.Debug("weasel: property label registered",
		zap.Stringer("type", b), zap.String("field", field), zap.String("label", label))
	return nil
}

// LookupProperty returns the label registered for the field of t.
func (r *registry) LookupProperty(t reflect.Type, field string) (string, bool) {
	if t == nil {
		return "", false
	}
	nt, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return "", false
	}
	if v, ok := r.props.Load(propKey{t: nt, field: field}); ok {
		return v.(string), true
	}
	return "", false
}

// store puts a label into m with idempotency and conflict checks.
func (r *registry) store(m *sync.Map, key any, label string) error {
	// Fast read path: idempotency / conflict check without locking.
	if old, ok := m.Load(key); ok {
		if old.(string) == label {
			return nil // idempotent re-registration
		}
		return ErrConflictingRegistration
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := m.Load(key); ok {
		if old.(string) == label {
			return nil
		}
		return ErrConflictingRegistration
	}

	m.Store(key, label)
	r.count++
	return nil
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.enums.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Kind: apis.EntryEnum,
			Type: key.(reflect.Type),
			Enum: cloneEnum(value.(apis.Enum)),
		})
		return true
	})
	r.types.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Kind:  apis.EntryType,
			Type:  key.(reflect.Type),
			Label: value.(string),
		})
		return true
	})
	r.props.Range(func(key, value any) bool {
		k := key.(propKey)
		entries = append(entries, apis.Entry{
			Kind:  apis.EntryProperty,
			Type:  k.t,
			Field: k.field,
			Label: value.(string),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries. Concurrent lookups observe either
// the old entry or none.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enums.Clear()
	r.types.Clear()
	r.props.Clear()
	r.count = 0
}

// cloneEnum deep-copies e so callers cannot mutate registered metadata.
func cloneEnum(e apis.Enum) apis.Enum {
	members := make([]apis.Member, len(e.Members))
	for i, m := range e.Members {
		m.Groupings = slices.Clone(m.Groupings)
		members[i] = m
	}
	e.Members = members
	return e
}
