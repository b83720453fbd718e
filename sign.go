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

	"github.com/blinklabs-io/txbuilder/ledger"
)

// Sign signs the transaction body hash with the provided Ed25519 private key
// and appends the resulting vkey witness to the transaction's witness set.
// The key may be either a 32-byte seed or a 64-byte expanded private key
func Sign(tx *ledger.Transaction, privKey []byte) error {
	var signKey ed25519.PrivateKey
	switch len(privKey) {
	case ed25519.SeedSize:
		signKey = ed25519.NewKeyFromSeed(privKey)
	case ed25519.PrivateKeySize:
		signKey = ed25519.PrivateKey(privKey)
	default:
		return MalformedPrivateKeyError{Length: len(privKey)}
	}
	bodyHash, err := tx.Body.Hash()
	if err != nil {
		return err
	}
	signature := ed25519.Sign(signKey, bodyHash.Bytes())
	pubKey, ok := signKey.Public().(ed25519.PublicKey)
	if !ok {
		return MalformedPrivateKeyError{Length: len(privKey)}
	}
	tx.WitnessSet.VkeyWitnesses = append(
		tx.WitnessSet.VkeyWitnesses,
		ledger.VkeyWitness{
			Vkey:      []byte(pubKey),
			Signature: signature,
		},
	)
	// Invalidate any stored encoding so the new witness is included
	tx.SetCbor(nil)
	tx.WitnessSet.SetCbor(nil)
	return nil
}
