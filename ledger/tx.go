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
	"errors"
	"fmt"

	"github.com/blinklabs-io/txbuilder/cbor"
	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

// TransactionBody is a Babbage-era transaction body. Fields map to the
// int-keyed CBOR map keys from the era CDDL
type TransactionBody struct {
	cbor.DecodeStoreCbor
	TxInputs                TransactionInputSet               `cbor:"0,keyasint"`
	TxOutputs               []TransactionOutput               `cbor:"1,keyasint"`
	TxFee                   uint64                            `cbor:"2,keyasint"`
	Ttl                     uint64                            `cbor:"3,keyasint,omitempty"`
	TxCertificates          []CertificateWrapper              `cbor:"4,keyasint,omitempty"`
	TxWithdrawals           map[*Address]uint64               `cbor:"5,keyasint,omitempty"`
	Update                  cbor.RawMessage                   `cbor:"6,keyasint,omitempty"`
	TxAuxDataHash           *Blake2b256                       `cbor:"7,keyasint,omitempty"`
	TxValidityIntervalStart uint64                            `cbor:"8,keyasint,omitempty"`
	TxMint                  *MultiAsset[MultiAssetTypeMint]   `cbor:"9,keyasint,omitempty"`
	TxScriptDataHash        *Blake2b256                       `cbor:"11,keyasint,omitempty"`
	TxCollateral            []TransactionInput                `cbor:"13,keyasint,omitempty"`
	TxRequiredSigners       []Blake2b224                      `cbor:"14,keyasint,omitempty"`
	TxNetworkId             *uint8                            `cbor:"15,keyasint,omitempty"`
	TxCollateralReturn      *TransactionOutput                `cbor:"16,keyasint,omitempty"`
	TxTotalCollateral       uint64                            `cbor:"17,keyasint,omitempty"`
	TxReferenceInputs       []TransactionInput                `cbor:"18,keyasint,omitempty"`
}

func (b *TransactionBody) UnmarshalCBOR(cborData []byte) error {
	return b.UnmarshalCbor(cborData, b)
}

func (b *TransactionBody) MarshalCBOR() ([]byte, error) {
	// Outputs always encode, even when empty
	if b.TxOutputs == nil {
		b.TxOutputs = []TransactionOutput{}
	}
	return cbor.EncodeGeneric(b)
}

// Hash returns the Blake2b-256 hash of the encoded transaction body. This is
// the transaction ID
func (b *TransactionBody) Hash() (Blake2b256, error) {
	cborData := b.Cbor()
	if cborData == nil {
		tmpCbor, err := cbor.Encode(b)
		if err != nil {
			return Blake2b256{}, err
		}
		cborData = tmpCbor
	}
	return Blake2b256Hash(cborData), nil
}

func (b *TransactionBody) Inputs() []TransactionInput {
	return b.TxInputs.Items()
}

func (b *TransactionBody) Outputs() []TransactionOutput {
	return b.TxOutputs
}

func (b *TransactionBody) Fee() uint64 {
	return b.TxFee
}

func (b *TransactionBody) TTL() uint64 {
	return b.Ttl
}

func (b *TransactionBody) ValidityIntervalStart() uint64 {
	return b.TxValidityIntervalStart
}

func (b *TransactionBody) Certificates() []Certificate {
	ret := make([]Certificate, len(b.TxCertificates))
	for i, cert := range b.TxCertificates {
		ret[i] = cert.Certificate
	}
	return ret
}

func (b *TransactionBody) Withdrawals() map[*Address]uint64 {
	return b.TxWithdrawals
}

func (b *TransactionBody) AuxDataHash() *Blake2b256 {
	return b.TxAuxDataHash
}

func (b *TransactionBody) AssetMint() *MultiAsset[MultiAssetTypeMint] {
	return b.TxMint
}

func (b *TransactionBody) Collateral() []TransactionInput {
	return b.TxCollateral
}

func (b *TransactionBody) RequiredSigners() []Blake2b224 {
	return b.TxRequiredSigners
}

func (b *TransactionBody) ScriptDataHash() *Blake2b256 {
	return b.TxScriptDataHash
}

func (b *TransactionBody) NetworkId() *uint8 {
	return b.TxNetworkId
}

func (b *TransactionBody) CollateralReturn() *TransactionOutput {
	return b.TxCollateralReturn
}

func (b *TransactionBody) TotalCollateral() uint64 {
	return b.TxTotalCollateral
}

func (b *TransactionBody) ReferenceInputs() []TransactionInput {
	return b.TxReferenceInputs
}

func (b *TransactionBody) Utxorpc() (*utxorpc.Tx, error) {
	txi := []*utxorpc.TxInput{}
	txo := []*utxorpc.TxOutput{}
	for _, i := range b.Inputs() {
		txi = append(txi, i.Utxorpc())
	}
	for _, o := range b.Outputs() {
		txo = append(txo, o.Utxorpc())
	}
	txHash, err := b.Hash()
	if err != nil {
		return nil, err
	}
	tx := &utxorpc.Tx{
		Inputs:  txi,
		Outputs: txo,
		Fee:     b.Fee(),
		Hash:    txHash.Bytes(),
	}
	if b.Ttl != 0 || b.TxValidityIntervalStart != 0 {
		tx.Validity = &utxorpc.TxValidity{
			Start: b.TxValidityIntervalStart,
			Ttl:   b.Ttl,
		}
	}
	if b.TxMint != nil {
		for _, policyId := range b.TxMint.Policies() {
			ma := &utxorpc.Multiasset{
				PolicyId: policyId.Bytes(),
			}
			for _, assetName := range b.TxMint.Assets(policyId) {
				amount := b.TxMint.Asset(policyId, assetName)
				ma.Assets = append(ma.Assets, &utxorpc.Asset{
					Name:     assetName,
					MintCoin: amount,
				})
			}
			tx.Mint = append(tx.Mint, ma)
		}
	}
	return tx, nil
}

// AuxiliaryData is the transaction metadata blob. The builder treats it as an
// opaque CBOR payload and only hashes it
type AuxiliaryData struct {
	cbor.DecodeStoreCbor
}

func NewAuxiliaryData(cborData []byte) AuxiliaryData {
	a := AuxiliaryData{}
	a.SetCbor(cborData)
	return a
}

func (a *AuxiliaryData) UnmarshalCBOR(cborData []byte) error {
	// Sanity check that we were given valid CBOR
	var tmpData cbor.RawMessage
	if _, err := cbor.Decode(cborData, &tmpData); err != nil {
		return err
	}
	a.SetCbor(cborData)
	return nil
}

func (a AuxiliaryData) MarshalCBOR() ([]byte, error) {
	if a.Cbor() == nil {
		return nil, errors.New("auxiliary data has no CBOR")
	}
	return a.Cbor(), nil
}

func (a AuxiliaryData) Hash() Blake2b256 {
	return Blake2b256Hash(a.Cbor())
}

type Transaction struct {
	cbor.DecodeStoreCbor
	Body       TransactionBody
	WitnessSet TransactionWitnessSet
	TxIsValid  bool
	TxAuxData  *AuxiliaryData
}

func (t *Transaction) UnmarshalCBOR(cborData []byte) error {
	var tmpItems []cbor.RawMessage
	if _, err := cbor.Decode(cborData, &tmpItems); err != nil {
		return err
	}
	if len(tmpItems) != 3 && len(tmpItems) != 4 {
		return fmt.Errorf("unexpected transaction element count: %d", len(tmpItems))
	}
	if _, err := cbor.Decode(tmpItems[0], &(t.Body)); err != nil {
		return fmt.Errorf("decode transaction body: %w", err)
	}
	if _, err := cbor.Decode(tmpItems[1], &(t.WitnessSet)); err != nil {
		return fmt.Errorf("decode witness set: %w", err)
	}
	if _, err := cbor.Decode(tmpItems[2], &(t.TxIsValid)); err != nil {
		return fmt.Errorf("decode isValid flag: %w", err)
	}
	if len(tmpItems) == 4 {
		// A nil auxiliary data element is allowed
		var tmpNil any
		if _, err := cbor.Decode(tmpItems[3], &tmpNil); err == nil && tmpNil == nil {
			t.TxAuxData = nil
		} else {
			var tmpAuxData AuxiliaryData
			if _, err := cbor.Decode(tmpItems[3], &tmpAuxData); err != nil {
				return fmt.Errorf("decode auxiliary data: %w", err)
			}
			t.TxAuxData = &tmpAuxData
		}
	}
	t.SetCbor(cborData)
	return nil
}

func (t *Transaction) MarshalCBOR() ([]byte, error) {
	bodyCbor, err := cbor.Encode(&t.Body)
	if err != nil {
		return nil, err
	}
	witnessCbor, err := cbor.Encode(&t.WitnessSet)
	if err != nil {
		return nil, err
	}
	tmpObj := []any{
		cbor.RawMessage(bodyCbor),
		cbor.RawMessage(witnessCbor),
		t.TxIsValid,
	}
	// The auxiliary data element is only present when set
	if t.TxAuxData != nil {
		tmpObj = append(tmpObj, cbor.RawMessage(t.TxAuxData.Cbor()))
	}
	return cbor.Encode(&tmpObj)
}

func (t *Transaction) Hash() (Blake2b256, error) {
	return t.Body.Hash()
}

func (t *Transaction) IsValid() bool {
	return t.TxIsValid
}

func (t *Transaction) Witnesses() TransactionWitnessSet {
	return t.WitnessSet
}

func (t *Transaction) AuxData() *AuxiliaryData {
	return t.TxAuxData
}

func (t *Transaction) Cbor() ([]byte, error) {
	// Return stored CBOR if we have any
	cborData := t.DecodeStoreCbor.Cbor()
	if cborData != nil {
		return cborData[:], nil
	}
	// Generate our own CBOR
	return cbor.Encode(t)
}

func (t *Transaction) Utxorpc() (*utxorpc.Tx, error) {
	tx, err := t.Body.Utxorpc()
	if err != nil {
		return nil, err
	}
	tx.Successful = t.TxIsValid
	return tx, nil
}

// NewTransactionFromCbor parses a complete transaction from CBOR
func NewTransactionFromCbor(data []byte) (*Transaction, error) {
	var tx Transaction
	if _, err := cbor.Decode(data, &tx); err != nil {
		return nil, fmt.Errorf("transaction decode error: %w", err)
	}
	return &tx, nil
}
