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
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blinklabs-io/txbuilder/cbor"
	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

// TransactionOutputValue is the output amount with optional multi-asset bundle.
// It encodes as a plain coin value when there are no assets
type TransactionOutputValue struct {
	cbor.StructAsArray
	Amount uint64
	// We use a pointer here to allow it to be nil
	Assets *MultiAsset[MultiAssetTypeOutput]
}

func (v *TransactionOutputValue) UnmarshalCBOR(data []byte) error {
	if _, err := cbor.Decode(data, &(v.Amount)); err == nil {
		return nil
	}
	if err := cbor.DecodeGeneric(data, v); err != nil {
		return err
	}
	return nil
}

func (v *TransactionOutputValue) MarshalCBOR() ([]byte, error) {
	if v.Assets == nil {
		return cbor.Encode(v.Amount)
	} else {
		return cbor.EncodeGeneric(v)
	}
}

const (
	DatumOptionTypeHash = 0
	DatumOptionTypeData = 1
)

type DatumOption struct {
	hash *Blake2b256
	data *Datum
}

func NewDatumOptionHash(hash Blake2b256) DatumOption {
	return DatumOption{hash: &hash}
}

func NewDatumOptionData(datum Datum) DatumOption {
	return DatumOption{data: &datum}
}

func (d DatumOption) Hash() *Blake2b256 {
	return d.hash
}

func (d DatumOption) Datum() *Datum {
	return d.data
}

func (d *DatumOption) UnmarshalCBOR(data []byte) error {
	datumOptionType, err := cbor.DecodeIdFromList(data)
	if err != nil {
		return err
	}
	switch datumOptionType {
	case DatumOptionTypeHash:
		var tmpDatumHash struct {
			cbor.StructAsArray
			Type int
			Hash Blake2b256
		}
		if _, err := cbor.Decode(data, &tmpDatumHash); err != nil {
			return err
		}
		d.hash = &(tmpDatumHash.Hash)
	case DatumOptionTypeData:
		var tmpDatumData struct {
			cbor.StructAsArray
			Type     int
			DataCbor []byte
		}
		if _, err := cbor.Decode(data, &tmpDatumData); err != nil {
			return err
		}
		var tmpDatum Datum
		if _, err := cbor.Decode(tmpDatumData.DataCbor, &tmpDatum); err != nil {
			return err
		}
		d.data = &(tmpDatum)
	default:
		return fmt.Errorf("unsupported datum option type: %d", datumOptionType)
	}
	return nil
}

func (d *DatumOption) MarshalCBOR() ([]byte, error) {
	var tmpObj []interface{}
	if d.hash != nil {
		tmpObj = []interface{}{DatumOptionTypeHash, d.hash}
	} else if d.data != nil {
		datumCbor, err := d.data.MarshalCBOR()
		if err != nil {
			return nil, err
		}
		tmpObj = []interface{}{
			DatumOptionTypeData,
			cbor.Tag{Number: cbor.CborTagCbor, Content: datumCbor},
		}
	} else {
		return nil, errors.New("unknown datum option type")
	}
	return cbor.Encode(&tmpObj)
}

// NewTransactionOutput creates a post-Alonzo output with the specified
// address, base-currency amount, and optional assets
func NewTransactionOutput(
	address Address,
	amount uint64,
	assets *MultiAsset[MultiAssetTypeOutput],
) TransactionOutput {
	return TransactionOutput{
		OutputAddress: address,
		OutputAmount: TransactionOutputValue{
			Amount: amount,
			Assets: assets,
		},
	}
}

type TransactionOutput struct {
	cbor.DecodeStoreCbor
	OutputAddress Address                `cbor:"0,keyasint"`
	OutputAmount  TransactionOutputValue `cbor:"1,keyasint"`
	TxDatumOption *DatumOption           `cbor:"2,keyasint,omitempty"`
	TxScriptRef   *ScriptRef             `cbor:"3,keyasint,omitempty"`
	legacyOutput  bool
}

func (o *TransactionOutput) UnmarshalCBOR(cborData []byte) error {
	// Save original CBOR
	o.SetCbor(cborData)
	// Try to parse as pre-Alonzo legacy output first
	var tmpLegacy struct {
		cbor.StructAsArray
		OutputAddress Address
		OutputAmount  TransactionOutputValue
	}
	if _, err := cbor.Decode(cborData, &tmpLegacy); err == nil {
		o.OutputAddress = tmpLegacy.OutputAddress
		o.OutputAmount = tmpLegacy.OutputAmount
		o.legacyOutput = true
		return nil
	}
	// Try the Alonzo legacy form with a trailing datum hash
	var tmpLegacyDatum struct {
		cbor.StructAsArray
		OutputAddress Address
		OutputAmount  TransactionOutputValue
		TxDatumHash   Blake2b256
	}
	if _, err := cbor.Decode(cborData, &tmpLegacyDatum); err == nil {
		o.OutputAddress = tmpLegacyDatum.OutputAddress
		o.OutputAmount = tmpLegacyDatum.OutputAmount
		tmpDatumOption := NewDatumOptionHash(tmpLegacyDatum.TxDatumHash)
		o.TxDatumOption = &tmpDatumOption
		o.legacyOutput = true
		return nil
	}
	return cbor.DecodeGeneric(cborData, o)
}

func (o *TransactionOutput) MarshalCBOR() ([]byte, error) {
	if o.legacyOutput {
		tmpOutput := []any{
			o.OutputAddress,
			o.OutputAmount,
		}
		if o.TxDatumOption != nil && o.TxDatumOption.hash != nil {
			tmpOutput = append(tmpOutput, o.TxDatumOption.hash)
		}
		return cbor.Encode(tmpOutput)
	}
	return cbor.EncodeGeneric(o)
}

func (o TransactionOutput) MarshalJSON() ([]byte, error) {
	tmpObj := struct {
		Address   Address                           `json:"address"`
		Amount    uint64                            `json:"amount"`
		Assets    *MultiAsset[MultiAssetTypeOutput] `json:"assets,omitempty"`
		Datum     *Datum                            `json:"datum,omitempty"`
		DatumHash string                            `json:"datumHash,omitempty"`
	}{
		Address: o.OutputAddress,
		Amount:  o.OutputAmount.Amount,
		Assets:  o.OutputAmount.Assets,
	}
	if o.TxDatumOption != nil {
		if o.TxDatumOption.hash != nil {
			tmpObj.DatumHash = o.TxDatumOption.hash.String()
		}
		if o.TxDatumOption.data != nil {
			tmpObj.Datum = o.TxDatumOption.data
		}
	}
	return json.Marshal(&tmpObj)
}

func (o TransactionOutput) Address() Address {
	return o.OutputAddress
}

func (o TransactionOutput) Amount() uint64 {
	return o.OutputAmount.Amount
}

func (o TransactionOutput) Assets() *MultiAsset[MultiAssetTypeOutput] {
	return o.OutputAmount.Assets
}

func (o TransactionOutput) DatumHash() *Blake2b256 {
	if o.TxDatumOption != nil {
		return o.TxDatumOption.hash
	}
	return nil
}

func (o TransactionOutput) Datum() *Datum {
	if o.TxDatumOption != nil {
		return o.TxDatumOption.data
	}
	return nil
}

// ScriptRef returns the script embedded in the output, if any
func (o TransactionOutput) ScriptRef() Script {
	if o.TxScriptRef == nil {
		return nil
	}
	return o.TxScriptRef.Script
}

func (o TransactionOutput) Utxorpc() *utxorpc.TxOutput {
	var address []byte
	if o.OutputAddress.Bytes() == nil {
		address = []byte{}
	} else {
		address = o.OutputAddress.Bytes()
	}

	var assets []*utxorpc.Multiasset
	if o.Assets() != nil {
		tmpAssets := o.Assets()
		for _, policyId := range tmpAssets.Policies() {
			ma := &utxorpc.Multiasset{
				PolicyId: policyId.Bytes(),
			}
			for _, assetName := range tmpAssets.Assets(policyId) {
				amount := tmpAssets.Asset(policyId, assetName)
				asset := &utxorpc.Asset{
					Name:       assetName,
					OutputCoin: amount,
				}
				ma.Assets = append(ma.Assets, asset)
			}
			assets = append(assets, ma)
		}
	}

	ret := &utxorpc.TxOutput{
		Address: address,
		Coin:    o.Amount(),
		Assets:  assets,
	}
	if o.DatumHash() != nil {
		ret.Datum = &utxorpc.Datum{
			Hash: o.DatumHash().Bytes(),
		}
	}
	return ret
}
