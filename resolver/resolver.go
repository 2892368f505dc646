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
	"reflect"
	"slices"
	"strings"

	"go.uber.org/zap"

	"dirpx.dev/weasel/apis"
	"dirpx.dev/weasel/cache"
	"dirpx.dev/weasel/enum"
	uref "dirpx.dev/weasel/utils/reflect"
)

// Option configures a resolver.
type Option func(*chain)

// WithLogger sets the logger used to trace unregistered enums and failed
// property lookups.
func WithLogger(l *zap.Logger) Option {
	return func(c *chain) {
		if l != nil {
			c.log = l
		}
	}
}

// New constructs an apis.Resolver that reads enum metadata from reg and asks
// the given strategies in order for labels. Nil strategies are ignored. The
// returned resolver is safe for concurrent use provided strategies themselves
// are safe for concurrent calls.
func New(cfg apis.Config, reg apis.Registry, strategies []apis.Strategy, opts ...Option) apis.Resolver {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	c := &chain{cfg: cfg, reg: reg, strats: out, log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// valueKey identifies an enum value.
type valueKey struct {
	t    reflect.Type
	bits uint64
}

// propKey identifies a field of a named type.
type propKey struct {
	t    reflect.Type
	name string
}

// label is a memoized (name, ok) pair.
type label struct {
	name string
	ok   bool
}

// chain is an order-preserving resolver over a set of strategies.
// Caches are owned by the chain; a new chain starts cold.
type chain struct {
	cfg    apis.Config
	reg    apis.Registry
	strats []apis.Strategy
	log    *zap.Logger

	flags     cache.Map[reflect.Type, bool]
	values    cache.Map[valueKey, label]
	groupings cache.Map[valueKey, []string]
	types     cache.Map[reflect.Type, label]
	props     cache.Map[propKey, label]
}

// Ensure chain implements apis.Resolver.
var _ apis.Resolver = (*chain)(nil)

// Stats holds the hit/miss counters of each resolver cache.
type Stats struct {
	Flags      cache.Stats
	Values     cache.Stats
	Groupings  cache.Stats
	Types      cache.Stats
	Properties cache.Stats
}

// StatsOf returns the cache counters of r. It reports false for resolvers
// not built by New.
func StatsOf(r apis.Resolver) (Stats, bool) {
	c, ok := r.(*chain)
	if !ok {
		return Stats{}, false
	}
	return Stats{
		Flags:      c.flags.Stats(),
		Values:     c.values.Stats(),
		Groupings:  c.groupings.Stats(),
		Types:      c.types.Stats(),
		Properties: c.props.Stats(),
	}, true
}

// enumOf returns the registered description of the nearest named type of t.
func (c *chain) enumOf(t reflect.Type) (apis.Enum, bool) {
	if c.reg == nil {
		return apis.Enum{}, false
	}
	nt, err := uref.Normalize(t, c.cfg)
	if err != nil {
		return apis.Enum{}, false
	}
	return c.reg.LookupEnum(nt)
}

// IsFlags reports whether t was registered as a flags enum.
func (c *chain) IsFlags(t reflect.Type) bool {
	if t == nil {
		return false
	}
	return c.flags.GetOrCompute(t, func(t reflect.Type) bool {
		e, ok := c.enumOf(t)
		return ok && e.Flags
	})
}

// Flags splits bits into the members of t it contains. Unregistered types
// behave like non-flag enums.
func (c *chain) Flags(t reflect.Type, bits uint64, includeZero bool) []uint64 {
	e, ok := c.enumOf(t)
	if !ok {
		return []uint64{bits}
	}
	return enum.Enumerate(e, bits, includeZero)
}

// ValueName returns the label of the first declared member equal to bits.
func (c *chain) ValueName(t reflect.Type, bits uint64) (string, bool) {
	if t == nil {
		return "", false
	}
	l := c.values.GetOrCompute(valueKey{t: t, bits: bits}, func(k valueKey) label {
		e, ok := c.enumOf(k.t)
		if !ok {
			c.log.Debug("weasel: enum not registered", zap.Stringer("type", k.t))
			return label{}
		}
		m, ok := e.Member(k.bits)
		if !ok {
			return label{}
		}
		for _, s := range c.strats {
			if name, ok := s.TryMember(e, m, c.cfg); ok {
				return label{name: name, ok: true}
			}
		}
		return label{name: m.Name, ok: true}
	})
	return l.name, l.ok
}

// EnumName joins the labels of the flag components of bits with sep.
// Components without a member contribute an empty string.
func (c *chain) EnumName(t reflect.Type, bits uint64, sep string, includeZero bool) string {
	comps := c.Flags(t, bits, includeZero)
	names := make([]string, len(comps))
	for i, b := range comps {
		names[i], _ = c.ValueName(t, b)
	}
	return strings.Join(names, sep)
}

// Groupings returns a copy of the groupings declared on the member equal to bits.
func (c *chain) Groupings(t reflect.Type, bits uint64) []string {
	if t == nil {
		return nil
	}
	g := c.groupings.GetOrCompute(valueKey{t: t, bits: bits}, func(k valueKey) []string {
		e, ok := c.enumOf(k.t)
		if !ok {
			return nil
		}
		m, ok := e.Member(k.bits)
		if !ok || len(m.Groupings) == 0 {
			return nil
		}
		return slices.Clone(m.Groupings)
	})
	return slices.Clone(g)
}

// TypeName asks the strategies for a type-level label of the nearest named
// type of t. There is no fallback to the type identifier.
func (c *chain) TypeName(t reflect.Type) (string, bool) {
	nt, err := uref.Normalize(t, c.cfg)
	if err != nil {
		return "", false
	}
	l := c.types.GetOrCompute(nt, func(t reflect.Type) label {
		for _, s := range c.strats {
			if name, ok := s.TryType(t, c.cfg); ok {
				return label{name: name, ok: true}
			}
		}
		return label{}
	})
	return l.name, l.ok
}

// PropertyName asks the strategies for the label of the named field of t.
// A missing field yields a *PropertyNotFoundError, which is not memoized.
func (c *chain) PropertyName(t reflect.Type, property string) (string, bool, error) {
	nt, err := uref.Normalize(t, c.cfg)
	if err != nil {
		return "", false, notFound(t, property)
	}
	l, err := c.props.GetOrTry(propKey{t: nt, name: property}, func(k propKey) (label, error) {
		f, ok := uref.FindField(k.t, k.name)
		if !ok {
			return label{}, notFound(k.t, k.name)
		}
		for _, s := range c.strats {
			if name, ok := s.TryProperty(k.t, f, c.cfg); ok {
				return label{name: name, ok: true}, nil
			}
		}
		return label{}, nil
	})
	if err != nil {
		c.log.Debug("weasel: property lookup failed", zap.Error(err))
		return "", false, err
	}
	return l.name, l.ok, nil
}
