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
	"fmt"

	"github.com/blinklabs-io/txbuilder/cbor"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	AddressHeaderTypeMask    = 0xf0
	AddressHeaderNetworkMask = 0x0f

	AddressTypeNoneKey    = 0b1110
	AddressTypeNoneScript = 0b1111

	AddressNetworkTestnet = 0
	AddressNetworkMainnet = 1
)

// Address represents a Cardano address as opaque bytes. The transaction builder
// treats addresses as raw payloads and doesn't interpret the payment/staking parts
type Address struct {
	data []byte
}

// NewAddress returns an Address based on the provided bech32 address string
func NewAddress(addr string) (Address, error) {
	_, data, err := bech32.DecodeNoLimit(addr)
	if err != nil {
		return Address{}, err
	}
	decoded, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return Address{}, err
	}
	return NewAddressFromBytes(decoded), nil
}

// NewAddressFromBytes returns an Address based on the raw bytes provided
func NewAddressFromBytes(addrBytes []byte) Address {
	a := Address{}
	if addrBytes != nil {
		a.data = make([]byte, len(addrBytes))
		copy(a.data, addrBytes)
	}
	return a
}

// Bytes returns the underlying bytes for the address
func (a Address) Bytes() []byte {
	return a.data
}

func (a Address) NetworkId() uint {
	if len(a.data) == 0 {
		return AddressNetworkMainnet
	}
	return uint(a.data[0] & AddressHeaderNetworkMask)
}

func (a Address) Type() uint8 {
	if len(a.data) == 0 {
		return 0
	}
	return (a.data[0] & AddressHeaderTypeMask) >> 4
}

func (a *Address) UnmarshalCBOR(data []byte) error {
	tmpData := []byte{}
	if _, err := cbor.Decode(data, &tmpData); err != nil {
		return err
	}
	a.data = tmpData
	return nil
}

func (a Address) MarshalCBOR() ([]byte, error) {
	if a.data == nil {
		return cbor.Encode([]byte{})
	}
	return cbor.Encode(a.data)
}

func (a Address) generateHRP() string {
	var ret string
	if a.Type() == AddressTypeNoneKey ||
		a.Type() == AddressTypeNoneScript {
		ret = "stake"
	} else {
		ret = "addr"
	}
	// Add test_ suffix if not mainnet
	if a.NetworkId() != AddressNetworkMainnet {
		ret += "_test"
	}
	return ret
}

// String returns the bech32-encoded version of the address. Addresses without
// any payload are returned as a hex string
func (a Address) String() string {
	if len(a.data) == 0 {
		return hex.EncodeToString(a.data)
	}
	// Convert data to base32 and encode as bech32
	convData, err := bech32.ConvertBits(a.data, 8, 5, true)
	if err != nil {
		panic(
			fmt.Sprintf("unexpected error converting data to base32: %s", err),
		)
	}
	encoded, err := bech32.Encode(a.generateHRP(), convData)
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding data as bech32: %s", err))
	}
	return encoded
}

func (a Address) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}
