// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cbor_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/txbuilder/cbor"
)

type encodeTestDefinition struct {
	CborHex string
	Object  interface{}
}

var encodeTests = []encodeTestDefinition{
	// Simple list of numbers
	{
		CborHex: "83010203",
		Object:  []interface{}{1, 2, 3},
	},
	// Map with unordered keys encodes with deterministic key order
	{
		CborHex: "a201010202",
		Object:  map[uint]uint{2: 2, 1: 1},
	},
}

func TestEncode(t *testing.T) {
	for _, test := range encodeTests {
		cborData, err := cbor.Encode(test.Object)
		if err != nil {
			t.Fatalf("failed to encode object to CBOR: %s", err)
		}
		cborHex := hex.EncodeToString(cborData)
		if cborHex != test.CborHex {
			t.Fatalf(
				"object did not encode to expected CBOR\n  got: %s\n  wanted: %s",
				cborHex,
				test.CborHex,
			)
		}
	}
}

func TestByteStringMarshalRoundTrip(t *testing.T) {
	origBytes := []byte{0xde, 0xad, 0xbe, 0xef}
	bs := cbor.NewByteString(origBytes)
	cborData, err := cbor.Encode(bs)
	if err != nil {
		t.Fatalf("failed to encode ByteString to CBOR: %s", err)
	}
	expectedHex := "44deadbeef"
	if hex.EncodeToString(cborData) != expectedHex {
		t.Fatalf(
			"ByteString did not encode to expected CBOR\n  got: %s\n  wanted: %s",
			hex.EncodeToString(cborData),
			expectedHex,
		)
	}
	var bs2 cbor.ByteString
	if _, err := cbor.Decode(cborData, &bs2); err != nil {
		t.Fatalf("failed to decode ByteString from CBOR: %s", err)
	}
	if bs2.String() != bs.String() {
		t.Fatalf(
			"ByteString did not round-trip\n  got: %s\n  wanted: %s",
			bs2.String(),
			bs.String(),
		)
	}
}

func TestListLength(t *testing.T) {
	testData, _ := hex.DecodeString("83010203")
	length, err := cbor.ListLength(testData)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if length != 3 {
		t.Fatalf("did not get expected list length, got %d, wanted %d", length, 3)
	}
}

func TestDecodeIdFromList(t *testing.T) {
	testData, _ := hex.DecodeString("820506")
	id, err := cbor.DecodeIdFromList(testData)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if id != 5 {
		t.Fatalf("did not get expected ID, got %d, wanted %d", id, 5)
	}
}
