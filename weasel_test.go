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
	"reflect"
	"runtime"
	"strconv"
	"sync"
	"testing"
	"time"

	"dirpx.dev/weasel/apis"
	"dirpx.dev/weasel/config"
	"dirpx.dev/weasel/registry"
	"dirpx.dev/weasel/resolver"
	"dirpx.dev/weasel/strategy"
)

// Reset to a clean snapshot using the given builder.
// Pins are reset because we pass nil reg/res.
func resetWithBuilder(tb testing.TB, b apis.Builder, cfg apis.Config, ext any) {
	tb.Helper()
	SetAll(&cfg, ext, nil, nil, b)
}

// ---------------------- Test doubles ----------------------

// mockRegistry is a real registry tagged with an id.
type mockRegistry struct {
	apis.Registry
	id string
}

// mockResolver is a real resolver tagged with an id.
type mockResolver struct {
	apis.Resolver
	id string
}

type mockBuilder struct {
	mu            sync.Mutex
	lastCfg       apis.Config
	lastExt       any
	lastPrevRegID string
	regCounter    int
	resCounter    int
}

func (b *mockBuilder) BuildRegistry(cfg apis.Config, prev apis.Registry, ext any) apis.Registry {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastCfg, b.lastExt = cfg, ext
	if mr, ok := prev.(*mockRegistry); ok {
		b.lastPrevRegID = mr.id
	}
	b.regCounter++
	return &mockRegistry{Registry: registry.New(cfg), id: "reg#" + strconv.Itoa(b.regCounter)}
}

func (b *mockBuilder) BuildResolver(cfg apis.Config, reg apis.Registry, _ apis.Resolver, ext any) apis.Resolver {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastCfg, b.lastExt = cfg, ext
	b.resCounter++
	strats := []apis.Strategy{strategy.NewRegistryStrategy(reg), strategy.NewTagStrategy()}
	return &mockResolver{Resolver: resolver.New(cfg, reg, strats), id: "res#" + strconv.Itoa(b.resCounter)}
}

func (b *mockBuilder) counters() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.regCounter, b.resCounter
}

// ---------------------- Lifecycle ----------------------

func TestSetConfig_Rebuilds_Unpinned(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, config.DefaultConfig(), nil)

	s1Reg := Registry()
	s1Res := Resolver()

	SetConfig(config.NewConfig(config.WithSeparator(" | "), config.WithMaxUnwrap(4)))

	if Registry() == s1Reg {
		t.Fatalf("registry was not rebuilt on SetConfig (unpinned)")
	}
	if Resolver() == s1Res {
		t.Fatalf("resolver was not rebuilt on SetConfig (unpinned)")
	}

	b.mu.Lock()
	gotCfg, prevID := b.lastCfg, b.lastPrevRegID
	b.mu.Unlock()
	if gotCfg.MaxUnwrap != 4 || gotCfg.Separator != " | " {
		t.Fatalf("builder received wrong cfg: %+v", gotCfg)
	}
	if prevID != s1Reg.(*mockRegistry).id {
		t.Fatalf("builder got previous registry %q, want %q", prevID, s1Reg.(*mockRegistry).id)
	}
	if Config().Separator != " | " {
		t.Fatalf("Config() not updated: %+v", Config())
	}
}

func TestSetRegistry_PinsRegistry_and_RebuildsResolverIfUnpinned(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, config.DefaultConfig(), nil)

	customReg := &mockRegistry{Registry: registry.New(config.DefaultConfig()), id: "custom"}
	SetRegistry(customReg)
	if !IsRegistryPinned() {
		t.Fatalf("SetRegistry must pin the registry")
	}

	beforeRes := Resolver()
	SetConfig(config.NewConfig(config.WithIncludeZero(true)))

	if Registry() != customReg {
		t.Fatalf("pinned registry was rebuilt unexpectedly")
	}
	if Resolver() == beforeRes {
		t.Fatalf("resolver was not rebuilt when cfg changed and res not pinned")
	}
}

func TestSetResolver_PinsResolver(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, config.DefaultConfig(), nil)

	customRes := &mockResolver{Resolver: resolver.New(config.DefaultConfig(), nil, nil), id: "custom"}
	SetResolver(customRes)
	if !IsResolverPinned() {
		t.Fatalf("SetResolver must pin the resolver")
	}

	regBefore := Registry()
	SetConfig(config.NewConfig(config.WithIncludeZero(true)))

	if Resolver() != customRes {
		t.Fatalf("pinned resolver was rebuilt unexpectedly")
	}
	if Registry() == regBefore {
		t.Fatalf("registry was not rebuilt on SetConfig when resolver is pinned")
	}
}

func TestSetBuilder_Rebuilds_Only_Unpinned(t *testing.T) {
	a := &mockBuilder{}
	resetWithBuilder(t, a, config.DefaultConfig(), nil)

	PinResolver()
	regBefore := Registry()
	resBefore := Resolver()

	b := &mockBuilder{}
	SetBuilder(b)

	if Builder() != b {
		t.Fatalf("builder not replaced")
	}
	if Registry() == regBefore {
		t.Fatalf("registry did not rebuild after SetBuilder (unpinned)")
	}
	if Resolver() != resBefore {
		t.Fatalf("pinned resolver was rebuilt after SetBuilder")
	}
	if reg, res := b.counters(); reg != 1 || res != 0 {
		t.Fatalf("new builder counters = (%d,%d), want (1,0)", reg, res)
	}
}

func TestSetExt_Rebuilds_Unpinned_and_PassesValue(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, config.DefaultConfig(), nil)

	type extCfg struct{ X int }
	SetExt(extCfg{X: 42})

	b.mu.Lock()
	got := b.lastExt
	b.mu.Unlock()
	if ec, ok := got.(extCfg); !ok || ec.X != 42 {
		t.Fatalf("builder did not receive ext properly: %#v", got)
	}
	if ec, ok := ExtAs[extCfg](); !ok || ec.X != 42 {
		t.Fatalf("ExtAs = (%#v,%v)", ec, ok)
	}

	// Pin both and ensure no rebuild on SetExt.
	PinRegistry()
	PinResolver()
	rBefore, sBefore := b.counters()
	SetExt(extCfg{X: 7})
	rAfter, sAfter := b.counters()
	if rAfter != rBefore || sAfter != sBefore {
		t.Fatalf("SetExt should not rebuild when both layers are pinned")
	}
}

func TestUnpin_Allows_Rebuild_After(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, config.DefaultConfig(), nil)

	SetRegistry(Registry())
	SetResolver(Resolver())

	reg1 := Registry()
	res1 := Resolver()
	SetConfig(config.NewConfig(config.WithMaxUnwrap(4)))
	if Registry() != reg1 || Resolver() != res1 {
		t.Fatalf("pinned layers should not rebuild on SetConfig")
	}

	UnpinRegistry()
	UnpinResolver()
	SetConfig(config.NewConfig(config.WithMaxUnwrap(6)))
	if Registry() == reg1 {
		t.Fatalf("registry should rebuild after UnpinRegistry+SetConfig")
	}
	if Resolver() == res1 {
		t.Fatalf("resolver should rebuild after UnpinResolver+SetConfig")
	}
}

func TestRegister_RepublishesResolver(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, config.DefaultConfig(), nil)

	type late struct{}
	if _, ok := TypeDisplayNameOf[late](); ok {
		t.Fatalf("unexpected label before registration")
	}
	regBefore := Registry()
	resBefore := Resolver()

	if err := RegisterType(reflect.TypeFor[late](), "Поздний"); err != nil {
		t.Fatalf("RegisterType: %v", err)
	}
	if Registry() != regBefore {
		t.Fatalf("registration must not replace the registry")
	}
	if Resolver() == resBefore {
		t.Fatalf("registration must republish the resolver")
	}
	if got, ok := TypeDisplayNameOf[late](); !ok || got != "Поздний" {
		t.Fatalf("TypeDisplayNameOf after registration = (%q,%v)", got, ok)
	}
}

func TestResetRegistry_DropsMemoizedLabels(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, config.DefaultConfig(), nil)

	type gone struct{}
	if err := RegisterType(reflect.TypeFor[gone](), "Удалённый"); err != nil {
		t.Fatalf("RegisterType: %v", err)
	}
	if got, ok := TypeDisplayNameOf[gone](); !ok || got != "Удалённый" {
		t.Fatalf("TypeDisplayNameOf before reset = (%q,%v)", got, ok)
	}
	regBefore := Registry()
	resBefore := Resolver()

	ResetRegistry()

	if Registry() != regBefore {
		t.Fatalf("ResetRegistry must clear the registry in place")
	}
	if Registry().Count() != 0 {
		t.Fatalf("registry count after reset = %d", Registry().Count())
	}
	if Resolver() == resBefore {
		t.Fatalf("ResetRegistry must republish the resolver")
	}
	if got, ok := TypeDisplayNameOf[gone](); ok {
		t.Fatalf("TypeDisplayNameOf after reset = (%q,%v), want no label", got, ok)
	}
}

func TestDisplayName_Concurrent_With_SetConfig(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, config.DefaultConfig(), nil)

	type token struct {
		Name string `display:"Имя"`
	}
	done := make(chan struct{})
	var wg sync.WaitGroup

	readers := runtime.GOMAXPROCS(0) * 4
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				_, _ = TypeDisplayNameOf[token]()
				if got, _, err := PropertyDisplayNameOf[token]("Name"); err != nil || got != "Имя" {
					t.Errorf("PropertyDisplayNameOf = (%q,%v)", got, err)
					return
				}
			}
		}()
	}

	go func() {
		for i := 0; i < 20; i++ {
			SetConfig(config.NewConfig(
				config.WithIncludeZero(i%2 == 0),
				config.WithMaxUnwrap(4+(i%5)),
			))
			time.Sleep(time.Millisecond)
		}
		close(done)
	}()

	wg.Wait()
	<-done
}
