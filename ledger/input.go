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
	"bytes"
	"encoding/hex"
	"fmt"
	"math"

	"github.com/blinklabs-io/txbuilder/cbor"
	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

type TransactionInput struct {
	cbor.StructAsArray
	TxId        Blake2b256
	OutputIndex uint32
}

func NewTransactionInput(hash string, idx int) TransactionInput {
	tmpHash, err := hex.DecodeString(hash)
	if err != nil {
		panic(fmt.Sprintf("failed to decode transaction hash: %s", err))
	}
	if idx < 0 || idx > math.MaxUint32 {
		panic("index out of range")
	}
	return TransactionInput{
		TxId:        NewBlake2b256(tmpHash),
		OutputIndex: uint32(idx),
	}
}

func (i TransactionInput) Id() Blake2b256 {
	return i.TxId
}

func (i TransactionInput) Index() uint32 {
	return i.OutputIndex
}

// Compare orders inputs by transaction ID bytes, then by output index
func (i TransactionInput) Compare(other TransactionInput) int {
	if c := bytes.Compare(i.TxId.Bytes(), other.TxId.Bytes()); c != 0 {
		return c
	}
	switch {
	case i.OutputIndex < other.OutputIndex:
		return -1
	case i.OutputIndex > other.OutputIndex:
		return 1
	default:
		return 0
	}
}

func (i TransactionInput) Utxorpc() *utxorpc.TxInput {
	return &utxorpc.TxInput{
		TxHash:      i.TxId.Bytes(),
		OutputIndex: i.OutputIndex,
	}
}

func (i TransactionInput) String() string {
	return fmt.Sprintf("%s#%d", i.TxId, i.OutputIndex)
}

func (i TransactionInput) MarshalJSON() ([]byte, error) {
	return []byte("\"" + i.String() + "\""), nil
}

type TransactionInputSet struct {
	items []TransactionInput
}

func NewTransactionInputSet(
	items []TransactionInput,
) TransactionInputSet {
	s := TransactionInputSet{
		items: items,
	}
	return s
}

func (s *TransactionInputSet) UnmarshalCBOR(data []byte) error {
	// Accept a tag-wrapped set for compatibility with Conway-era encodings
	var tmpTag cbor.RawTag
	if _, err := cbor.Decode(data, &tmpTag); err == nil {
		if tmpTag.Number != cbor.CborTagSet {
			return fmt.Errorf("unexpected CBOR tag: %d", tmpTag.Number)
		}
		data = []byte(tmpTag.Content)
	}
	var tmpData []TransactionInput
	if _, err := cbor.Decode(data, &tmpData); err != nil {
		return err
	}
	s.items = tmpData
	return nil
}

func (s TransactionInputSet) MarshalCBOR() ([]byte, error) {
	// Encode as a plain definite-length array, Babbage style
	items := s.items
	if items == nil {
		items = []TransactionInput{}
	}
	return cbor.Encode(items)
}

func (s *TransactionInputSet) Items() []TransactionInput {
	return s.items
}

func (s *TransactionInputSet) SetItems(items []TransactionInput) {
	s.items = make([]TransactionInput, len(items))
	copy(s.items, items)
}
