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

// ResolutionStrategy supplies resolved outputs for inputs the caller didn't
// attach one to. Returning a nil output (and nil error) defers resolution to
// an external UTXO index at submission time
type ResolutionStrategy interface {
	ResolveInput(
		input ledger.TransactionInput,
	) (*ledger.TransactionOutput, error)
}

// ManualResolution is the default strategy: it performs no lookups of its
// own, so inputs carry exactly the outputs the caller attached and anything
// else stays deferred
type ManualResolution struct{}

func (ManualResolution) ResolveInput(
	input ledger.TransactionInput,
) (*ledger.TransactionOutput, error) {
	return nil, nil
}
