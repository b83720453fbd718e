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
	"errors"
	"testing"
)

func TestNewTransactionFromCborHex(t *testing.T) {
	txHex := "83a300818258200000000000000000000000000000000000000000000000000000000000000000000181a20040011a000f4240021a000271d8a0f5"
	tx, err := NewTransactionFromCborHex(txHex)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(tx.Body.Inputs()) != 1 {
		t.Fatalf("did not get expected input count: %d", len(tx.Body.Inputs()))
	}
	if tx.Body.Fee() != 160216 {
		t.Fatalf("did not get expected fee: %d", tx.Body.Fee())
	}
	if !tx.IsValid() {
		t.Fatalf("did not get expected validity flag")
	}
}

func TestNewTransactionFromCborCorrupted(t *testing.T) {
	_, err := NewTransactionFromCbor([]byte{0x83, 0xff, 0x00})
	var expectedErr CorruptedTxBytesError
	if !errors.As(err, &expectedErr) {
		t.Fatalf("did not get expected error, got: %v", err)
	}
}

func TestNewTransactionFromCborHexInvalidHex(t *testing.T) {
	_, err := NewTransactionFromCborHex("not hex")
	var expectedErr CorruptedTxBytesError
	if !errors.As(err, &expectedErr) {
		t.Fatalf("did not get expected error, got: %v", err)
	}
}
