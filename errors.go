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
	"fmt"

	"github.com/blinklabs-io/txbuilder/ledger"
)

// InvalidAssetNameError is returned when adding an asset with a name longer
// than 32 bytes
type InvalidAssetNameError struct {
	Name []byte
}

func (e InvalidAssetNameError) Error() string {
	return fmt.Sprintf(
		"invalid asset name: length %d exceeds maximum of 32 bytes",
		len(e.Name),
	)
}

// NoInputsError is returned when building a transaction with no inputs
type NoInputsError struct{}

func (e NoInputsError) Error() string {
	return "transaction has no inputs"
}

// InvalidCollateralInputError is returned when a collateral input's resolved
// output carries a multi-asset value
type InvalidCollateralInputError struct {
	Input ledger.TransactionInput
}

func (e InvalidCollateralInputError) Error() string {
	return "invalid collateral input: " + e.Input.String()
}

// InvalidCollateralReturnError is returned when the collateral-return output
// carries a multi-asset value
type InvalidCollateralReturnError struct{}

func (e InvalidCollateralReturnError) Error() string {
	return "invalid collateral return output"
}

// InvalidTimestampError is returned when a validity-window timestamp cannot be
// converted to a slot on the configured network
type InvalidTimestampError struct {
	Timestamp uint64
}

func (e InvalidTimestampError) Error() string {
	return fmt.Sprintf("invalid timestamp: %d", e.Timestamp)
}

// RedeemerPurposeMissingError is returned when a redeemer purpose cannot be
// resolved against the canonical input or mint-policy order, or when the
// purpose is recognized but unsupported
type RedeemerPurposeMissingError struct {
	Purpose RedeemerPurpose
}

func (e RedeemerPurposeMissingError) Error() string {
	return "redeemer target is missing: " + e.Purpose.String()
}

// InvalidNetworkIdError is returned when an explicit network ID is neither
// testnet (0) nor mainnet (1)
type InvalidNetworkIdError struct {
	NetworkId uint8
}

func (e InvalidNetworkIdError) Error() string {
	return fmt.Sprintf("invalid network id: %d", e.NetworkId)
}

// MalformedDatumHashError is returned for datum hashes that are not exactly
// 32 bytes
type MalformedDatumHashError struct {
	Length int
}

func (e MalformedDatumHashError) Error() string {
	return fmt.Sprintf(
		"malformed datum hash: length %d, expected %d",
		e.Length,
		ledger.Blake2b256Size,
	)
}

// MalformedPrivateKeyError is returned when signing with a private key of the
// wrong length
type MalformedPrivateKeyError struct {
	Length int
}

func (e MalformedPrivateKeyError) Error() string {
	return fmt.Sprintf("malformed private key: length %d", e.Length)
}

// CorruptedTxBytesError is returned when transaction bytes cannot be decoded
type CorruptedTxBytesError struct {
	Err error
}

func (e CorruptedTxBytesError) Error() string {
	return "corrupted transaction bytes: " + e.Err.Error()
}

func (e CorruptedTxBytesError) Unwrap() error {
	return e.Err
}

// BuilderConsumedError is returned when a builder is used after Build() has
// been called on it
type BuilderConsumedError struct{}

func (e BuilderConsumedError) Error() string {
	return "transaction builder has already been consumed"
}

// AssetsConsumedError is returned when a staging asset container is used
// after Build() has been called on it
type AssetsConsumedError struct{}

func (e AssetsConsumedError) Error() string {
	return "staging asset container has already been consumed"
}
