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

func TestTransactionOutputEncode(t *testing.T) {
	// Post-Alonzo outputs encode as a map with an empty address encoding as
	// an empty byte string
	expectedHex := "a20040011a000f4240"
	output := NewTransactionOutput(Address{}, 1_000_000, nil)
	cborData, err := cbor.Encode(&output)
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

func TestTransactionOutputEncodeWithAssets(t *testing.T) {
	expectedHex := "a2004001821a000f4240a1581c00000000000000000000000000000000000000000000000000000000a1474d7941737365741a000f4240"
	policyId := NewBlake2b224(
		mustDecodeHex(
			t,
			"00000000000000000000000000000000000000000000000000000000",
		),
	)
	assets := NewMultiAsset(
		map[Blake2b224]map[cbor.ByteString]MultiAssetTypeOutput{
			policyId: {cbor.NewByteString([]byte("MyAsset")): 1_000_000},
		},
	)
	output := NewTransactionOutput(Address{}, 1_000_000, &assets)
	cborData, err := cbor.Encode(&output)
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

func TestTransactionOutputDecodeLegacy(t *testing.T) {
	// Pre-Alonzo outputs are 2-element arrays
	cborData := mustDecodeHex(t, "82401a000f4240")
	var output TransactionOutput
	if _, err := cbor.Decode(cborData, &output); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if output.Amount() != 1_000_000 {
		t.Fatalf("did not get expected amount: %d", output.Amount())
	}
	// The legacy form is preserved on re-encode
	tmpCbor, err := cbor.Encode(&output)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if hex.EncodeToString(tmpCbor) != "82401a000f4240" {
		t.Fatalf(
			"did not get expected CBOR: %s",
			hex.EncodeToString(tmpCbor),
		)
	}
}

func TestTransactionOutputDecodeLegacyDatumHash(t *testing.T) {
	cborHex := "83401a000f42405820ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"
	cborData := mustDecodeHex(t, cborHex)
	var output TransactionOutput
	if _, err := cbor.Decode(cborData, &output); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if output.Amount() != 1_000_000 {
		t.Fatalf("did not get expected amount: %d", output.Amount())
	}
	datumHash := output.DatumHash()
	if datumHash == nil {
		t.Fatalf("did not get expected datum hash")
	}
	expectedHash := "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"
	if datumHash.String() != expectedHash {
		t.Fatalf("did not get expected datum hash: %s", datumHash.String())
	}
}

func TestTransactionOutputDecodeMap(t *testing.T) {
	cborData := mustDecodeHex(t, "a20040011a000f4240")
	var output TransactionOutput
	if _, err := cbor.Decode(cborData, &output); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if output.Amount() != 1_000_000 {
		t.Fatalf("did not get expected amount: %d", output.Amount())
	}
	if len(output.Address().Bytes()) != 0 {
		t.Fatalf(
			"did not get expected address: %s",
			output.Address().String(),
		)
	}
}

func TestTransactionOutputDecodeScriptRef(t *testing.T) {
	// {0: h'', 1: 1000000, 3: 24_0(<<[2, h'0102']>>)}
	cborData := mustDecodeHex(t, "a30040011a000f424003d818458202420102")
	var output TransactionOutput
	if _, err := cbor.Decode(cborData, &output); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	script := output.ScriptRef()
	if script == nil {
		t.Fatalf("did not get expected script ref")
	}
	if _, ok := script.(*PlutusV2Script); !ok {
		t.Fatalf("did not get expected script type: %T", script)
	}
	if hex.EncodeToString(script.RawScriptBytes()) != "0102" {
		t.Fatalf(
			"did not get expected script bytes: %x",
			script.RawScriptBytes(),
		)
	}
	// Re-encoding must reproduce the original bytes
	reencoded, err := cbor.Encode(&output)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if hex.EncodeToString(reencoded) != hex.EncodeToString(cborData) {
		t.Fatalf(
			"did not get expected CBOR\n  got:    %s\n  wanted: %s",
			hex.EncodeToString(reencoded),
			hex.EncodeToString(cborData),
		)
	}
}
