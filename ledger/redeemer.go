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
	"slices"

	"github.com/blinklabs-io/txbuilder/cbor"
)

type RedeemerTag uint8

const (
	RedeemerTagSpend  RedeemerTag = 0
	RedeemerTagMint   RedeemerTag = 1
	RedeemerTagCert   RedeemerTag = 2
	RedeemerTagReward RedeemerTag = 3
)

func (t RedeemerTag) String() string {
	switch t {
	case RedeemerTagSpend:
		return "spend"
	case RedeemerTagMint:
		return "mint"
	case RedeemerTagCert:
		return "cert"
	case RedeemerTagReward:
		return "reward"
	default:
		return "unknown"
	}
}

type Redeemer struct {
	cbor.StructAsArray
	Tag     RedeemerTag
	Index   uint32
	Data    Datum
	ExUnits ExUnits
}

type Redeemers []Redeemer

// Sorted returns the redeemers ordered by tag, then index
func (r Redeemers) Sorted() Redeemers {
	sorted := make(Redeemers, len(r))
	copy(sorted, r)
	slices.SortFunc(
		sorted,
		func(a, b Redeemer) int {
			if a.Tag < b.Tag || (a.Tag == b.Tag && a.Index < b.Index) {
				return -1
			}
			if a.Tag > b.Tag || (a.Tag == b.Tag && a.Index > b.Index) {
				return 1
			}
			return 0
		},
	)
	return sorted
}

// Indexes returns the indexes of the redeemers carrying the given tag
func (r Redeemers) Indexes(tag RedeemerTag) []uint {
	ret := []uint{}
	for _, redeemer := range r {
		if redeemer.Tag == tag {
			ret = append(ret, uint(redeemer.Index))
		}
	}
	return ret
}
