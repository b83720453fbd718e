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

// RedeemerPurpose identifies what a redeemer attaches to. Only spend and mint
// purposes can be resolved to an index; cert and reward purposes are
// recognized but unsupported and fail at build time
type RedeemerPurpose interface {
	isRedeemerPurpose()
	Tag() ledger.RedeemerTag
	String() string
}

// SpendPurpose attaches a redeemer to a transaction input
type SpendPurpose struct {
	Input ledger.TransactionInput
}

func (SpendPurpose) isRedeemerPurpose() {}

func (p SpendPurpose) Tag() ledger.RedeemerTag {
	return ledger.RedeemerTagSpend
}

func (p SpendPurpose) String() string {
	return "spend " + p.Input.String()
}

// MintPurpose attaches a redeemer to a minting policy
type MintPurpose struct {
	Policy ledger.PolicyId
}

func (MintPurpose) isRedeemerPurpose() {}

func (p MintPurpose) Tag() ledger.RedeemerTag {
	return ledger.RedeemerTagMint
}

func (p MintPurpose) String() string {
	return "mint " + p.Policy.String()
}

// CertPurpose attaches a redeemer to a certificate. Unsupported
type CertPurpose struct {
	Index uint32
}

func (CertPurpose) isRedeemerPurpose() {}

func (p CertPurpose) Tag() ledger.RedeemerTag {
	return ledger.RedeemerTagCert
}

func (p CertPurpose) String() string {
	return fmt.Sprintf("cert %d", p.Index)
}

// RewardPurpose attaches a redeemer to a reward-account withdrawal. Unsupported
type RewardPurpose struct {
	Account string
}

func (RewardPurpose) isRedeemerPurpose() {}

func (p RewardPurpose) Tag() ledger.RedeemerTag {
	return ledger.RedeemerTagReward
}

func (p RewardPurpose) String() string {
	return "reward " + p.Account
}
