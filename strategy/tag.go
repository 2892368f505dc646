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

package strategy

import (
	"reflect"

	"dirpx.dev/weasel/apis"
	"dirpx.dev/weasel/config"
)

// NewTagStrategy creates an apis.Strategy that reads display annotations
// from struct tags.
//
// Field labels come from the field's own tag:
//
//	type Order struct {
//	    Total int `display:"Сумма"`
//	}
//
// The type label comes from a blank marker field:
//
//	type Order struct {
//	    _ struct{} `display:"Заказ"`
//	}
func NewTagStrategy() apis.Strategy {
	return tagStrategy{}
}

// tagStrategy is the last link of the chain. Enum members have no tags, so
// it never handles them.
type tagStrategy struct{}

// Ensure tagStrategy implements apis.Strategy.
var _ apis.Strategy = (*tagStrategy)(nil)

// TryType reads the tag of the first blank field carrying cfg.TagKey.
func (tagStrategy) TryType(t reflect.Type, cfg apis.Config) (string, bool) {
	if t == nil || t.Kind() != reflect.Struct {
		return "", false
	}
	key := tagKey(cfg)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Name != "_" {
			continue
		}
		if label, ok := f.Tag.Lookup(key); ok && label != "" {
			return label, true
		}
	}
	return "", false
}

// TryMember always returns false.
func (tagStrategy) TryMember(_ apis.Enum, _ apis.Member, _ apis.Config) (string, bool) {
	return "", false
}

// TryProperty reads cfg.TagKey from the field tag.
func (tagStrategy) TryProperty(_ reflect.Type, f reflect.StructField, cfg apis.Config) (string, bool) {
	if label, ok := f.Tag.Lookup(tagKey(cfg)); ok && label != "" {
		return label, true
	}
	return "", false
}

func tagKey(cfg apis.Config) string {
	if cfg.TagKey == "" {
		return config.DefaultTagKey
	}
	return cfg.TagKey
}
