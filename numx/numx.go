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

// Package numx has small integer helpers.
package numx

import "dirpx.dev/weasel/apis"

// IsPowerOfTwo reports whether x has exactly one bit set. For signed types
// the minimum value (sign bit only) counts as well.
func IsPowerOfTwo[T apis.Integer](x T) bool {
	return x != 0 && x&(x-1) == 0
}

// Inflect picks the Russian plural form of a word for n:
//
//	Inflect(1, "дней", "день", "дня")  // "день"
//	Inflect(3, "дней", "день", "дня")  // "дня"
//	Inflect(11, "дней", "день", "дня") // "дней"
//
// many is used for 0, 5-20 and their tens, one for 1, 21, 31..., few for
// 2-4, 22-24 and so on. Negative numbers are inflected by absolute value.
func Inflect[T apis.Integer](n T, many, one, few string) string {
	u := abs(n)
	if u%10 == 0 || (u%100 >= 11 && u%100 <= 19) {
		return many
	}
	switch u % 10 {
	case 1:
		return one
	case 2, 3, 4:
		return few
	default:
		return many
	}
}

// abs widens n to its absolute value. It does not overflow for the
// minimum value of a signed type.
func abs[T apis.Integer](n T) uint64 {
	if n < 0 {
		return -uint64(n)
	}
	return uint64(n)
}
