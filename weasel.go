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

package weasel

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/weasel/apis"
	"dirpx.dev/weasel/builder"
	"dirpx.dev/weasel/config"
)

// init publishes the default snapshot.
func init() {
	s := &state{cfg: config.DefaultConfig(), bld: builder.New()}
	st.Store(s.rebuild(true))
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("weasel: builder returned nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("weasel: builder returned nil resolver")
)

// buildMu serializes writers (reconfigurations, swaps and registrations)
// so we never publish partially-built snapshots.
var buildMu sync.Mutex

// st is the global weasel state.
var st atomic.Pointer[state]

// state is the global weasel state snapshot.
// Immutable once published via st.Store; writers copy, modify and swap.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// ext is the extension payload handed to the builder.
	ext any
	// reg holds registered enums, type and property labels.
	reg apis.Registry
	// res answers display-name lookups.
	res apis.Resolver
	// bld constructs reg and res.
	bld apis.Builder
	// preg indicates whether reg is pinned.
	preg bool
	// pres indicates whether res is pinned.
	pres bool
}

// rebuild rebuilds the unpinned layers of the unpublished snapshot s.
// The registry is left alone unless withRegistry is set.
func (s *state) rebuild(withRegistry bool) *state {
	if withRegistry && !s.preg {
		s.reg = s.bld.BuildRegistry(s.cfg, s.reg, s.ext)
	}
	if !s.pres {
		s.res = s.bld.BuildResolver(s.cfg, s.reg, s.res, s.ext)
	}
	if s.reg == nil {
		panic(ErrNilRegistry)
	}
	if s.res == nil {
		panic(ErrNilResolver)
	}
	return s
}

// update publishes the snapshot fn derives from a copy of the current one.
func update(fn func(next *state) *state) {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	st.Store(fn(&next))
}

// register applies fn to the current registry and republishes the resolver
// so that no memoized answer predates the registration. A pinned resolver
// is kept as is and may keep serving stale answers.
func register(fn func(apis.Registry) error) error {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	if err := fn(next.reg); err != nil {
		return err
	}
	st.Store(next.rebuild(false))
	return nil
}

// SetAll explicitly sets all global state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced. A non-nil reg or res is pinned;
// a nil one is rebuilt and unpinned.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	update(func(s *state) *state {
		if cfg != nil {
			s.cfg = *cfg
		}
		if bld != nil {
			s.bld = bld
		}
		s.ext = ext
		s.preg, s.pres = false, false
		if reg != nil {
			s.reg, s.preg = reg, true
		}
		if res != nil {
			s.res, s.pres = res, true
		}
		return s.rebuild(true)
	})
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration and rebuilds unpinned layers.
func SetConfig(cfg apis.Config) {
	update(func(s *state) *state {
		s.cfg = cfg
		return s.rebuild(true)
	})
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry pins reg as the global registry and rebuilds the resolver
// unless it is pinned. A nil reg is ignored.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}
	update(func(s *state) *state {
		s.reg, s.preg = reg, true
		return s.rebuild(false)
	})
}

// ResetRegistry clears the global registry and republishes the resolver
// unless it is pinned.
func ResetRegistry() {
	_ = register(func(reg apis.Registry) error {
		reg.Reset()
		return nil
	})
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver pins res as the global resolver. A nil res is ignored.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}
	update(func(s *state) *state {
		s.res, s.pres = res, true
		return s
	})
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder replaces the builder and rebuilds unpinned layers with it.
// A nil b is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	update(func(s *state) *state {
		s.bld = b
		return s.rebuild(true)
	})
}

// SetExt replaces the extension payload and rebuilds unpinned layers.
// The default builder understands a *catalog.Catalog or apis.Strategy here.
func SetExt[T any](ext T) {
	update(func(s *state) *state {
		s.ext = ext
		return s.rebuild(true)
	})
}

// ExtAs returns the extension payload as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned returns whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry stops the global registry from being rebuilt.
func PinRegistry() {
	update(func(s *state) *state {
		s.preg = true
		return s
	})
}

// UnpinRegistry lets the global registry be rebuilt again.
func UnpinRegistry() {
	update(func(s *state) *state {
		s.preg = false
		return s
	})
}

// IsResolverPinned returns whether the global resolver is pinned.
func IsResolverPinned() bool {
	return st.Load().pres
}

// PinResolver stops the global resolver from being rebuilt.
func PinResolver() {
	update(func(s *state) *state {
		s.pres = true
		return s
	})
}

// UnpinResolver lets the global resolver be rebuilt again.
func UnpinResolver() {
	update(func(s *state) *state {
		s.pres = false
		return s
	})
}
