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

package txbuilder

import (
	"crypto/ed25519"
	"errors"
	"testing"

	"github.com/blinklabs-io/txbuilder/ledger"
)

func TestSign(t *testing.T) {
	input := ledger.NewTransactionInput(testZeroTxIdHex, 0)
	tx, err := NewTransactionBuilder(NetworkMainnet).
		Input(input, nil).
		Output(testAdaOnlyOutput(1_000_000)).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	seed := make([]byte, ed25519.SeedSize)
	if err := Sign(tx, seed); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	witnesses := tx.Witnesses().Vkey()
	if len(witnesses) != 1 {
		t.Fatalf("did not get expected witness count: %d", len(witnesses))
	}
	bodyHash, err := tx.Body.Hash()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !ed25519.Verify(
		ed25519.PublicKey(witnesses[0].Vkey),
		bodyHash.Bytes(),
		witnesses[0].Signature,
	) {
		t.Fatalf("witness signature did not verify against body hash")
	}
}

func TestSignExpandedKey(t *testing.T) {
	input := ledger.NewTransactionInput(testZeroTxIdHex, 0)
	tx, err := NewTransactionBuilder(NetworkMainnet).
		Input(input, nil).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	privKey := ed25519.NewKeyFromSeed(make([]byte, ed25519.SeedSize))
	if err := Sign(tx, privKey); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(tx.Witnesses().Vkey()) != 1 {
		t.Fatalf("did not get expected witness count")
	}
}

func TestSignMalformedKey(t *testing.T) {
	input := ledger.NewTransactionInput(testZeroTxIdHex, 0)
	tx, err := NewTransactionBuilder(NetworkMainnet).
		Input(input, nil).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	err = Sign(tx, []byte{0x01, 0x02, 0x03})
	var expectedErr MalformedPrivateKeyError
	if !errors.As(err, &expectedErr) {
		t.Fatalf("did not get expected error, got: %v", err)
	}
	if expectedErr.Length != 3 {
		t.Fatalf("did not get expected length in error: %d", expectedErr.Length)
	}
}
