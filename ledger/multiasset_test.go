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

package ledger

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/txbuilder/cbor"
)

func TestMultiAssetPoliciesSorted(t *testing.T) {
	policyHigh := NewBlake2b224(
		mustDecodeHex(t, "ffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
	)
	policyLow := NewBlake2b224(
		mustDecodeHex(t, "00000000000000000000000000000000000000000000000000000000"),
	)
	policyMid := NewBlake2b224(
		mustDecodeHex(t, "29a8fb8318718bd756124f0c144f56d4b4579dc5edf2dd42d669ac61"),
	)
	asset := NewMultiAsset(
		map[Blake2b224]map[cbor.ByteString]MultiAssetTypeMint{
			policyHigh: {cbor.NewByteString([]byte("a")): 1},
			policyLow:  {cbor.NewByteString([]byte("b")): 2},
			policyMid:  {cbor.NewByteString([]byte("c")): 3},
		},
	)
	policies := asset.Policies()
	expected := []Blake2b224{policyLow, policyMid, policyHigh}
	if len(policies) != len(expected) {
		t.Fatalf("did not get expected policy count: %d", len(policies))
	}
	for idx := range expected {
		if policies[idx] != expected[idx] {
			t.Fatalf(
				"did not get expected policy order at %d: %s",
				idx,
				policies[idx].String(),
			)
		}
	}
}

func TestMultiAssetEncodeDeterministic(t *testing.T) {
	// Map keys must come out in ascending byte order regardless of
	// insertion order
	expectedHex := "a2581c00000000000000000000000000000000000000000000000000000000a141620a581cffffffffffffffffffffffffffffffffffffffffffffffffffffffffa2414101414202"
	policyHigh := NewBlake2b224(
		mustDecodeHex(t, "ffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
	)
	policyLow := NewBlake2b224(
		mustDecodeHex(t, "00000000000000000000000000000000000000000000000000000000"),
	)
	asset := NewMultiAsset(
		map[Blake2b224]map[cbor.ByteString]MultiAssetTypeOutput{
			policyHigh: {
				cbor.NewByteString([]byte("B")): 2,
				cbor.NewByteString([]byte("A")): 1,
			},
			policyLow: {cbor.NewByteString([]byte("b")): 10},
		},
	)
	cborData, err := cbor.Encode(&asset)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if hex.EncodeToString(cborData) != expectedHex {
		t.Fatalf(
			"did not get expected CBOR\n  got:    %s\n  wanted: %s",
			hex.EncodeToString(cborData),
			expectedHex,
		)
	}
}

func TestMultiAssetRoundTrip(t *testing.T) {
	policyId := NewBlake2b224(
		mustDecodeHex(t, "29a8fb8318718bd756124f0c144f56d4b4579dc5edf2dd42d669ac61"),
	)
	asset := NewMultiAsset(
		map[Blake2b224]map[cbor.ByteString]MultiAssetTypeMint{
			policyId: {cbor.NewByteString([]byte("Token")): -42},
		},
	)
	cborData, err := cbor.Encode(&asset)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	var tmpAsset MultiAsset[MultiAssetTypeMint]
	if _, err := cbor.Decode(cborData, &tmpAsset); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !asset.Compare(&tmpAsset) {
		t.Fatalf("did not get expected asset after round trip")
	}
	if amount := tmpAsset.Asset(policyId, []byte("Token")); amount != -42 {
		t.Fatalf("did not get expected amount: %d", amount)
	}
}

func mustDecodeHex(t *testing.T, hexData string) []byte {
	t.Helper()
	data, err := hex.DecodeString(hexData)
	if err != nil {
		t.Fatalf("failed to decode hex: %s", err)
	}
	return data
}
