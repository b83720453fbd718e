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

	"github.com/blinklabs-io/plutigo/data"
	"github.com/blinklabs-io/txbuilder/cbor"
)

func TestTransactionWitnessSetEncodeEmpty(t *testing.T) {
	// A witness set with nothing in it must encode as an empty map. If any
	// field leaks through as a zero-length value, every encoded transaction
	// grows and computed fees shift with it
	testWitnessSet := TransactionWitnessSet{}
	cborData, err := cbor.Encode(&testWitnessSet)
	if err != nil {
		t.Fatalf("unexpected error encoding witness set: %s", err)
	}
	expectedCborHex := "a0"
	if hex.EncodeToString(cborData) != expectedCborHex {
		t.Fatalf(
			"did not get expected witness set CBOR\n  got:    %s\n  wanted: %s",
			hex.EncodeToString(cborData),
			expectedCborHex,
		)
	}
}

func TestTransactionWitnessSetEncodeRedeemers(t *testing.T) {
	testWitnessSet := TransactionWitnessSet{
		WsRedeemers: Redeemers{
			{
				Tag:     RedeemerTagSpend,
				Index:   0,
				Data:    NewDatum(data.NewConstr(0)),
				ExUnits: ExUnits{Memory: 1, Steps: 2},
			},
		},
	}
	cborData, err := cbor.Encode(&testWitnessSet)
	if err != nil {
		t.Fatalf("unexpected error encoding witness set: %s", err)
	}
	// {5: [[0, 0, 121([]), [1, 2]]]}
	expectedCborHex := "a10581840000d87980820102"
	if hex.EncodeToString(cborData) != expectedCborHex {
		t.Fatalf(
			"did not get expected witness set CBOR\n  got:    %s\n  wanted: %s",
			hex.EncodeToString(cborData),
			expectedCborHex,
		)
	}
}
