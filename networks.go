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
	"github.com/blinklabs-io/txbuilder/ledger"
)

// Network definitions
var (
	NetworkTestnet = Network{
		Id:           ledger.AddressNetworkTestnet,
		Name:         "testnet",
		NetworkMagic: 1097911063,
		// Shelley genesis for the legacy public testnet
		ShelleyKnownSlot: 0,
		ShelleyKnownTime: 1595967616,
		SlotLength:       1,
	}
	NetworkMainnet = Network{
		Id:               ledger.AddressNetworkMainnet,
		Name:             "mainnet",
		NetworkMagic:     764824073,
		ShelleyKnownSlot: 0,
		ShelleyKnownTime: 1596059091,
		SlotLength:       1,
	}
	NetworkPreprod = Network{
		Id:               ledger.AddressNetworkTestnet,
		Name:             "preprod",
		NetworkMagic:     1,
		ShelleyKnownSlot: 86400,
		ShelleyKnownTime: 1655769600,
		SlotLength:       1,
	}
	NetworkPreview = Network{
		Id:               ledger.AddressNetworkTestnet,
		Name:             "preview",
		NetworkMagic:     2,
		ShelleyKnownSlot: 0,
		ShelleyKnownTime: 1666656000,
		SlotLength:       1,
	}

	NetworkInvalid = Network{
		Id:           0,
		Name:         "invalid",
		NetworkMagic: 0,
	} // NetworkInvalid is used as a return value for lookup functions when a network isn't found
)

// List of valid networks for use in lookup functions
var networks = []Network{
	NetworkTestnet,
	NetworkMainnet,
	NetworkPreprod,
	NetworkPreview,
}

// NetworkByName returns a predefined network by name
func NetworkByName(name string) Network {
	for _, network := range networks {
		if network.Name == name {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkByNetworkMagic returns a predefined network by network magic
func NetworkByNetworkMagic(networkMagic uint32) Network {
	for _, network := range networks {
		if network.NetworkMagic == networkMagic {
			return network
		}
	}
	return NetworkInvalid
}

// Network represents a Cardano network
type Network struct {
	Id           uint8 // network ID used for addresses
	Name         string
	NetworkMagic uint32
	// Shelley-era slot arithmetic reference point
	ShelleyKnownSlot uint64
	ShelleyKnownTime uint64 // unix seconds
	SlotLength       uint64 // seconds
}

func (n Network) String() string {
	return n.Name
}

// TimestampToSlot converts a unix timestamp (seconds) to the corresponding
// slot number. Returns false for timestamps before the known reference time
func (n Network) TimestampToSlot(timestamp uint64) (uint64, bool) {
	if n.SlotLength == 0 {
		return 0, false
	}
	if timestamp < n.ShelleyKnownTime {
		return 0, false
	}
	return n.ShelleyKnownSlot + ((timestamp - n.ShelleyKnownTime) / n.SlotLength), true
}

// SlotToTimestamp converts a slot number to the unix timestamp (seconds) of
// the start of that slot
func (n Network) SlotToTimestamp(slot uint64) (uint64, bool) {
	if slot < n.ShelleyKnownSlot {
		return 0, false
	}
	return n.ShelleyKnownTime + ((slot - n.ShelleyKnownSlot) * n.SlotLength), true
}
