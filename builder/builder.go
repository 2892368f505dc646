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

package builder

import (
	"go.uber.org/zap"

	"dirpx.dev/weasel/apis"
	"dirpx.dev/weasel/catalog"
	"dirpx.dev/weasel/registry"
	"dirpx.dev/weasel/resolver"
	"dirpx.dev/weasel/strategy"
)

// Option configures a builder.
type Option func(*builder)

// WithLogger sets the logger handed to every registry and resolver the
// builder constructs.
func WithLogger(l *zap.Logger) Option {
	return func(b *builder) {
		if l != nil {
			b.log = l
		}
	}
}

// New creates and returns a new instance of an apis.Builder.
//
// The ext payload understood by the builder is one of:
//   - *catalog.Catalog: labels are looked up in the catalog after the
//     types' own Labeler methods and before the registry;
//   - apis.Strategy or []apis.Strategy: inserted at the same position.
//
// Any other ext is ignored.
func New(opts ...Option) apis.Builder {
	b := &builder{log: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

type builder struct {
	log *zap.Logger
}

// BuildRegistry builds and returns a new apis.Registry based on the provided configuration
// and pre-existing registry. If a pre-existing registry is provided, its entries are copied
// into the new registry.
func (b *builder) BuildRegistry(cfg apis.Config, preg apis.Registry, _ any) apis.Registry {
	nreg := registry.New(cfg, registry.WithLogger(b.log))
	if preg == nil {
		return nreg
	}
	for _, e := range preg.Entries() {
		var err error
		switch e.Kind {
		case apis.EntryEnum:
			err = nreg.RegisterEnum(e.Enum)
		case apis.EntryType:
			err = nreg.RegisterType(e.Type, e.Label)
		case apis.EntryProperty:
			err = nreg.RegisterProperty(e.Type, e.Field, e.Label)
		}
		if err != nil {
			b.log.Warn("weasel: registry entry not migrated",
				zap.Stringer("type", e.Type), zap.String("field", e.Field), zap.Error(err))
		}
	}
	return nreg
}

// BuildResolver builds and returns a new apis.Resolver based on the provided configuration
// and registry. The previous resolver is not reused: its caches may hold answers that the
// new configuration or registry would not produce.
func (b *builder) BuildResolver(cfg apis.Config, reg apis.Registry, _ apis.Resolver, ext any) apis.Resolver {
	strats := []apis.Strategy{strategy.NewNamerStrategy()}
	strats = append(strats, extStrategies(ext)...)
	strats = append(strats,
		strategy.NewRegistryStrategy(reg),
		strategy.NewTagStrategy(),
	)
	return resolver.New(cfg, reg, strats, resolver.WithLogger(b.log))
}

// extStrategies turns the extension payload into strategies.
func extStrategies(ext any) []apis.Strategy {
	switch x := ext.(type) {
	case *catalog.Catalog:
		if x == nil {
			return nil
		}
		return []apis.Strategy{catalog.NewStrategy(x)}
	case apis.Strategy:
		return []apis.Strategy{x}
	case []apis.Strategy:
		return x
	default:
		return nil
	}
}
