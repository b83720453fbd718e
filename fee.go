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

// FeePolicy computes the fee for a transaction from its encoded size. The
// size passed in is the length of the hex rendering of the transaction with
// the fee field set to zero
type FeePolicy interface {
	CalculateMinFee(txSize uint64) uint64
}

// Fee policy values are scaled by 10^9 to allow fractional per-byte rates
// without floating point
const feePolicyDivisor = 1_000_000_000

// LinearFeePolicy computes fee = ceiling((summand + multiplier*size) / 10^9)
type LinearFeePolicy struct {
	Summand    uint64
	Multiplier uint64
}

// DefaultFeePolicy returns the linear fee policy with mainnet values:
// base fee 155381 lovelace, 43.946 lovelace per unit of size
func DefaultFeePolicy() LinearFeePolicy {
	return LinearFeePolicy{
		Summand:    155381000000000,
		Multiplier: 43946000000,
	}
}

func (p LinearFeePolicy) CalculateMinFee(txSize uint64) uint64 {
	return (p.Summand + p.Multiplier*txSize + feePolicyDivisor - 1) / feePolicyDivisor
}
