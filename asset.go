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
	"github.com/blinklabs-io/txbuilder/cbor"
	"github.com/blinklabs-io/txbuilder/ledger"
)

// MaxAssetNameLength is the protocol limit on asset name length
const MaxAssetNameLength = 32

// MultiAsset is the staging container for multi-asset values. Add returns an
// updated container and never mutates the receiver, so an earlier snapshot
// stays valid. Build flattens into the wire container and consumes the
// staging value
type MultiAsset[T int64 | uint64] struct {
	data     map[ledger.PolicyId]map[cbor.ByteString]T
	consumed bool
}

// NewMultiAsset creates an empty staging container
func NewMultiAsset[T int64 | uint64]() *MultiAsset[T] {
	return &MultiAsset[T]{
		data: make(map[ledger.PolicyId]map[cbor.ByteString]T),
	}
}

// Add inserts or overwrites the (policy, name) entry and returns the updated
// container. Names longer than 32 bytes fail with InvalidAssetNameError and
// leave the container unchanged
func (m *MultiAsset[T]) Add(
	policy ledger.PolicyId,
	name []byte,
	amount T,
) (*MultiAsset[T], error) {
	if m.consumed {
		return nil, AssetsConsumedError{}
	}
	if len(name) > MaxAssetNameLength {
		return nil, InvalidAssetNameError{Name: name}
	}
	ret := &MultiAsset[T]{
		data: make(map[ledger.PolicyId]map[cbor.ByteString]T, len(m.data)+1),
	}
	for tmpPolicy, tmpAssets := range m.data {
		ret.data[tmpPolicy] = make(map[cbor.ByteString]T, len(tmpAssets))
		for tmpName, tmpAmount := range tmpAssets {
			ret.data[tmpPolicy][tmpName] = tmpAmount
		}
	}
	if _, ok := ret.data[policy]; !ok {
		ret.data[policy] = make(map[cbor.ByteString]T)
	}
	ret.data[policy][cbor.NewByteString(name)] = amount
	return ret, nil
}

// Build flattens the staging container into the wire container. The staging
// container is consumed and cannot be used again
func (m *MultiAsset[T]) Build() (*ledger.MultiAsset[T], error) {
	if m.consumed {
		return nil, AssetsConsumedError{}
	}
	m.consumed = true
	ret := ledger.NewMultiAsset(m.data)
	m.data = nil
	return &ret, nil
}
