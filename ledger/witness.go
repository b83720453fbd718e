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
	"github.com/blinklabs-io/txbuilder/cbor"
)

type VkeyWitness struct {
	cbor.StructAsArray
	Vkey      []byte
	Signature []byte
}

type BootstrapWitness struct {
	cbor.StructAsArray
	PublicKey  []byte
	Signature  []byte
	ChainCode  []byte
	Attributes []byte
}

// TransactionWitnessSet holds the witnesses attached to a transaction. An empty
// witness set encodes as an empty CBOR map
type TransactionWitnessSet struct {
	cbor.DecodeStoreCbor
	VkeyWitnesses      []VkeyWitness      `cbor:"0,keyasint,omitempty"`
	WsNativeScripts    []NativeScript     `cbor:"1,keyasint,omitempty"`
	BootstrapWitnesses []BootstrapWitness `cbor:"2,keyasint,omitempty"`
	WsPlutusV1Scripts  [][]byte           `cbor:"3,keyasint,omitempty"`
	WsPlutusData       []Datum            `cbor:"4,keyasint,omitempty"`
	WsRedeemers        Redeemers          `cbor:"5,keyasint,omitempty"`
	WsPlutusV2Scripts  [][]byte           `cbor:"6,keyasint,omitempty"`
}

func (w *TransactionWitnessSet) UnmarshalCBOR(cborData []byte) error {
	return w.UnmarshalCbor(cborData, w)
}

func (w TransactionWitnessSet) Vkey() []VkeyWitness {
	return w.VkeyWitnesses
}

func (w TransactionWitnessSet) Bootstrap() []BootstrapWitness {
	return w.BootstrapWitnesses
}

func (w TransactionWitnessSet) NativeScripts() []NativeScript {
	return w.WsNativeScripts
}

func (w TransactionWitnessSet) PlutusV1Scripts() [][]byte {
	return w.WsPlutusV1Scripts
}

func (w TransactionWitnessSet) PlutusV2Scripts() [][]byte {
	return w.WsPlutusV2Scripts
}

func (w TransactionWitnessSet) PlutusData() []Datum {
	return w.WsPlutusData
}

func (w TransactionWitnessSet) Redeemers() Redeemers {
	return w.WsRedeemers
}
