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

// Package session stores typed values in byte-oriented session storage.
//
// Wire format:
//   - bool: one byte, 0x01 or 0x00; any nonzero byte decodes as true;
//   - int64: eight bytes, big-endian two's complement; extra bytes are
//     ignored and fewer than eight decode as absent;
//   - time.Time: the output of time.Time.MarshalBinary, whose length
//     depends on the location.
package session

import (
	"encoding/binary"
	"fmt"
	"time"
)

// EncodeBool encodes v as a single byte.
func EncodeBool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

// DecodeBool decodes the first byte of b. ok is false for empty b.
func DecodeBool(b []byte) (v, ok bool) {
	if len(b) == 0 {
		return false, false
	}
	return b[0] != 0, true
}

// EncodeInt64 encodes v as eight big-endian bytes.
func EncodeInt64(v int64) []byte {
	return binary.BigEndian.AppendUint64(make([]byte, 0, 8), uint64(v))
}

// DecodeInt64 decodes the first eight bytes of b. ok is false when b is
// shorter than eight bytes.
func DecodeInt64(b []byte) (int64, bool) {
	if len(b) < 8 {
		return 0, false
	}
	return int64(binary.BigEndian.Uint64(b[:8])), true
}

// EncodeTime encodes t with its location offset.
func EncodeTime(t time.Time) ([]byte, error) {
	b, err := t.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("weasel(session): encode time: %w", err)
	}
	return b, nil
}

// DecodeTime decodes b produced by EncodeTime. ok is false for empty b;
// corrupt input is an error.
func DecodeTime(b []byte) (t time.Time, ok bool, err error) {
	if len(b) == 0 {
		return time.Time{}, false, nil
	}
	if err := t.UnmarshalBinary(b); err != nil {
		return time.Time{}, false, fmt.Errorf("weasel(session): decode time: %w", err)
	}
	return t, true, nil
}
