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
	"github.com/blinklabs-io/plutigo/data"
	"github.com/blinklabs-io/txbuilder/cbor"
)

type DatumHash = Blake2b256

// Datum represents a Plutus datum
type Datum struct {
	cbor.DecodeStoreCbor
	Data data.PlutusData `json:"data"`
}

// NewDatum creates a Datum from the provided PlutusData
func NewDatum(pd data.PlutusData) Datum {
	return Datum{Data: pd}
}

func (d *Datum) UnmarshalCBOR(cborData []byte) error {
	d.SetCbor(cborData)
	tmpData, err := data.Decode(cborData)
	if err != nil {
		return err
	}
	d.Data = tmpData
	return nil
}

func (d *Datum) MarshalCBOR() ([]byte, error) {
	if cborData := d.Cbor(); cborData != nil {
		return cborData, nil
	}
	return data.Encode(d.Data)
}

func (d *Datum) Hash() DatumHash {
	cborData := d.Cbor()
	if cborData == nil {
		tmpCbor, err := data.Encode(d.Data)
		if err != nil {
			return DatumHash{}
		}
		cborData = tmpCbor
	}
	return Blake2b256Hash(cborData)
}
