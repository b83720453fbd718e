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
	"encoding/hex"

	"github.com/blinklabs-io/txbuilder/ledger"
)

// NewTransactionFromCbor decodes a transaction from its wire encoding
func NewTransactionFromCbor(data []byte) (*ledger.Transaction, error) {
	tx, err := ledger.NewTransactionFromCbor(data)
	if err != nil {
		return nil, CorruptedTxBytesError{Err: err}
	}
	return tx, nil
}

// NewTransactionFromCborHex decodes a transaction from a hex-encoded wire
// encoding
func NewTransactionFromCborHex(cborHex string) (*ledger.Transaction, error) {
	data, err := hex.DecodeString(cborHex)
	if err != nil {
		return nil, CorruptedTxBytesError{Err: err}
	}
	return NewTransactionFromCbor(data)
}
