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
	"encoding/hex"
	"slices"

	"github.com/blinklabs-io/txbuilder/cbor"
	"github.com/blinklabs-io/txbuilder/ledger"
)

// inputRef pairs an input with its optional pre-resolved output. A nil output
// means resolution is deferred to an external UTXO index at submission time
type inputRef struct {
	input  ledger.TransactionInput
	output *ledger.TransactionOutput
}

// redeemerEntry pairs a purpose with its datum and execution budget
type redeemerEntry struct {
	purpose RedeemerPurpose
	data    ledger.Datum
	exUnits ledger.ExUnits
}

// withdrawalEntry pairs a reward account with its withdrawal amount
type withdrawalEntry struct {
	account []byte
	amount  uint64
}

// TransactionBuilder accumulates transaction components and assembles them
// into an immutable transaction via Build. A builder is single-use: Build
// consumes it, and any use after that fails with BuilderConsumedError
type TransactionBuilder struct {
	network   Network
	feePolicy FeePolicy
	strategy  ResolutionStrategy

	inputs           []inputRef
	referenceInputs  []inputRef
	collateralInputs []inputRef
	outputs          []ledger.TransactionOutput
	collateralReturn *ledger.TransactionOutput
	mint             *ledger.MultiAsset[ledger.MultiAssetTypeMint]
	validAfter       *uint64
	validUntil       *uint64
	withdrawals      []withdrawalEntry
	certificates     []ledger.CertificateWrapper
	nativeScripts    []ledger.NativeScript
	plutusV1Scripts  [][]byte
	plutusV2Scripts  [][]byte
	plutusData       []ledger.Datum
	redeemers        []redeemerEntry
	auxData          *ledger.AuxiliaryData
	scriptDataHash   *ledger.Blake2b256
	requiredSigners  []ledger.Blake2b224
	networkId        *uint8
	explicitFee      *uint64

	consumed bool
	err      error
}

type TransactionBuilderOptionFunc func(*TransactionBuilder)

// WithFeePolicy specifies the fee policy used when no explicit fee is set
func WithFeePolicy(feePolicy FeePolicy) TransactionBuilderOptionFunc {
	return func(b *TransactionBuilder) {
		b.feePolicy = feePolicy
	}
}

// WithResolutionStrategy specifies the strategy for resolving inputs that
// the caller didn't attach an output to
func WithResolutionStrategy(
	strategy ResolutionStrategy,
) TransactionBuilderOptionFunc {
	return func(b *TransactionBuilder) {
		b.strategy = strategy
	}
}

// NewTransactionBuilder creates a builder for the specified network
func NewTransactionBuilder(
	network Network,
	opts ...TransactionBuilderOptionFunc,
) *TransactionBuilder {
	b := &TransactionBuilder{
		network:   network,
		feePolicy: DefaultFeePolicy(),
		strategy:  ManualResolution{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// check records a sticky error for use after consumption. The error is
// reported by the next Build call
func (b *TransactionBuilder) check() bool {
	if b.consumed {
		if b.err == nil {
			b.err = BuilderConsumedError{}
		}
		return false
	}
	return true
}

// Input adds a transaction input with an optional resolved output. Adding
// the same input again replaces its resolved output without changing its
// position
func (b *TransactionBuilder) Input(
	input ledger.TransactionInput,
	resolved *ledger.TransactionOutput,
) *TransactionBuilder {
	if !b.check() {
		return b
	}
	b.inputs = upsertInputRef(b.inputs, input, resolved)
	return b
}

// ReferenceInput adds a reference input
func (b *TransactionBuilder) ReferenceInput(
	input ledger.TransactionInput,
) *TransactionBuilder {
	if !b.check() {
		return b
	}
	b.referenceInputs = upsertInputRef(b.referenceInputs, input, nil)
	return b
}

// CollateralInput adds a collateral input with an optional resolved output.
// Collateral must carry only base-currency value; this is validated at build
// time against the resolved output
func (b *TransactionBuilder) CollateralInput(
	input ledger.TransactionInput,
	resolved *ledger.TransactionOutput,
) *TransactionBuilder {
	if !b.check() {
		return b
	}
	b.collateralInputs = upsertInputRef(b.collateralInputs, input, resolved)
	return b
}

func upsertInputRef(
	refs []inputRef,
	input ledger.TransactionInput,
	output *ledger.TransactionOutput,
) []inputRef {
	for idx, ref := range refs {
		if ref.input == input {
			refs[idx].output = output
			return refs
		}
	}
	return append(refs, inputRef{input: input, output: output})
}

// Output appends a transaction output. Outputs keep their configuration order
func (b *TransactionBuilder) Output(
	output ledger.TransactionOutput,
) *TransactionBuilder {
	if !b.check() {
		return b
	}
	b.outputs = append(b.outputs, output)
	return b
}

// CollateralReturn sets the collateral-return output
func (b *TransactionBuilder) CollateralReturn(
	output ledger.TransactionOutput,
) *TransactionBuilder {
	if !b.check() {
		return b
	}
	b.collateralReturn = &output
	return b
}

// Mint sets the mint map. The staging container must be built first
func (b *TransactionBuilder) Mint(
	assets *ledger.MultiAsset[ledger.MultiAssetTypeMint],
) *TransactionBuilder {
	if !b.check() {
		return b
	}
	b.mint = assets
	return b
}

// ValidAfter sets the start of the validity window from a unix timestamp
// (seconds). The timestamp is converted to a slot at build time
func (b *TransactionBuilder) ValidAfter(timestamp uint64) *TransactionBuilder {
	if !b.check() {
		return b
	}
	b.validAfter = &timestamp
	return b
}

// ValidUntil sets the end of the validity window from a unix timestamp
// (seconds). The timestamp is converted to a slot at build time
func (b *TransactionBuilder) ValidUntil(timestamp uint64) *TransactionBuilder {
	if !b.check() {
		return b
	}
	b.validUntil = &timestamp
	return b
}

// Withdrawal records a reward-account withdrawal. Withdrawals are stored but
// not currently emitted into the transaction body
func (b *TransactionBuilder) Withdrawal(
	account []byte,
	amount uint64,
) *TransactionBuilder {
	if !b.check() {
		return b
	}
	for idx, entry := range b.withdrawals {
		if string(entry.account) == string(account) {
			b.withdrawals[idx].amount = amount
			return b
		}
	}
	b.withdrawals = append(
		b.withdrawals,
		withdrawalEntry{account: account, amount: amount},
	)
	return b
}

// Certificate appends a certificate
func (b *TransactionBuilder) Certificate(
	cert ledger.Certificate,
) *TransactionBuilder {
	if !b.check() {
		return b
	}
	b.certificates = append(
		b.certificates,
		ledger.CertificateWrapper{
			Type:        cert.Type(),
			Certificate: cert,
		},
	)
	return b
}

// NativeScript appends a native script to the witness set
func (b *TransactionBuilder) NativeScript(
	script ledger.NativeScript,
) *TransactionBuilder {
	if !b.check() {
		return b
	}
	b.nativeScripts = append(b.nativeScripts, script)
	return b
}

// PlutusV1Script appends a Plutus v1 script to the witness set
func (b *TransactionBuilder) PlutusV1Script(script []byte) *TransactionBuilder {
	if !b.check() {
		return b
	}
	b.plutusV1Scripts = append(b.plutusV1Scripts, script)
	return b
}

// PlutusV2Script appends a Plutus v2 script to the witness set
func (b *TransactionBuilder) PlutusV2Script(script []byte) *TransactionBuilder {
	if !b.check() {
		return b
	}
	b.plutusV2Scripts = append(b.plutusV2Scripts, script)
	return b
}

// PlutusData appends a Plutus datum to the witness set
func (b *TransactionBuilder) PlutusData(datum ledger.Datum) *TransactionBuilder {
	if !b.check() {
		return b
	}
	b.plutusData = append(b.plutusData, datum)
	return b
}

// Redeemer registers a redeemer for the specified purpose. Registering the
// same purpose again replaces its datum and budget. The purpose is resolved
// to an index at build time
func (b *TransactionBuilder) Redeemer(
	purpose RedeemerPurpose,
	data ledger.Datum,
	exUnits ledger.ExUnits,
) *TransactionBuilder {
	if !b.check() {
		return b
	}
	for idx, entry := range b.redeemers {
		if entry.purpose == purpose {
			b.redeemers[idx].data = data
			b.redeemers[idx].exUnits = exUnits
			return b
		}
	}
	b.redeemers = append(
		b.redeemers,
		redeemerEntry{purpose: purpose, data: data, exUnits: exUnits},
	)
	return b
}

// AuxiliaryData attaches auxiliary data (metadata) as raw CBOR. Its hash is
// written into the body and the payload becomes the transaction's fourth
// element
func (b *TransactionBuilder) AuxiliaryData(cborData []byte) *TransactionBuilder {
	if !b.check() {
		return b
	}
	tmpAuxData := ledger.NewAuxiliaryData(cborData)
	b.auxData = &tmpAuxData
	return b
}

// ScriptDataHash sets an explicit script-data hash. The hash must be exactly
// 32 bytes
func (b *TransactionBuilder) ScriptDataHash(hash []byte) *TransactionBuilder {
	if !b.check() {
		return b
	}
	if len(hash) != ledger.Blake2b256Size {
		b.err = MalformedDatumHashError{Length: len(hash)}
		return b
	}
	tmpHash := ledger.NewBlake2b256(hash)
	b.scriptDataHash = &tmpHash
	return b
}

// RequiredSigner appends a required signer key hash
func (b *TransactionBuilder) RequiredSigner(
	keyHash ledger.Blake2b224,
) *TransactionBuilder {
	if !b.check() {
		return b
	}
	b.requiredSigners = append(b.requiredSigners, keyHash)
	return b
}

// NetworkId requests an explicit network ID in the transaction body. Without
// this the field is omitted from the wire encoding
func (b *TransactionBuilder) NetworkId(id uint8) *TransactionBuilder {
	if !b.check() {
		return b
	}
	b.networkId = &id
	return b
}

// Fee sets an explicit fee, bypassing the fee policy
func (b *TransactionBuilder) Fee(amount uint64) *TransactionBuilder {
	if !b.check() {
		return b
	}
	b.explicitFee = &amount
	return b
}

// outputIsMultiAsset reports whether an output value carries any
// non-base-currency asset
func outputIsMultiAsset(output *ledger.TransactionOutput) bool {
	if output == nil {
		return false
	}
	assets := output.Assets()
	if assets == nil {
		return false
	}
	return len(assets.Policies()) > 0
}

// Build validates the configuration, canonicalizes orderings, resolves
// redeemer indices, computes the fee, and returns the assembled transaction.
// The builder is consumed whether or not Build succeeds
func (b *TransactionBuilder) Build() (*ledger.Transaction, error) {
	if b.consumed {
		return nil, BuilderConsumedError{}
	}
	b.consumed = true
	// Report any error recorded by an earlier setter
	if b.err != nil {
		return nil, b.err
	}
	// Validation pipeline, first failure wins
	if len(b.inputs) == 0 {
		return nil, NoInputsError{}
	}
	// Resolve inputs that have no caller-supplied output
	for idx, ref := range b.inputs {
		if ref.output != nil {
			continue
		}
		resolved, err := b.strategy.ResolveInput(ref.input)
		if err != nil {
			return nil, err
		}
		b.inputs[idx].output = resolved
	}
	for _, ref := range b.collateralInputs {
		if outputIsMultiAsset(ref.output) {
			return nil, InvalidCollateralInputError{Input: ref.input}
		}
	}
	if outputIsMultiAsset(b.collateralReturn) {
		return nil, InvalidCollateralReturnError{}
	}
	var ttlSlot, validFromSlot uint64
	if b.validUntil != nil {
		slot, ok := b.network.TimestampToSlot(*b.validUntil)
		if !ok {
			return nil, InvalidTimestampError{Timestamp: *b.validUntil}
		}
		ttlSlot = slot
	}
	if b.validAfter != nil {
		slot, ok := b.network.TimestampToSlot(*b.validAfter)
		if !ok {
			return nil, InvalidTimestampError{Timestamp: *b.validAfter}
		}
		validFromSlot = slot
	}
	// Canonical input order, shared between the wire encoding and Spend
	// redeemer resolution
	sortedInputs := make([]ledger.TransactionInput, 0, len(b.inputs))
	for _, ref := range b.inputs {
		sortedInputs = append(sortedInputs, ref.input)
	}
	slices.SortFunc(
		sortedInputs,
		func(a, c ledger.TransactionInput) int { return a.Compare(c) },
	)
	// Canonical mint-policy order. MultiAsset.Policies returns policy IDs in
	// ascending byte order, which matches the deterministic CBOR map key sort
	var mintPolicies []ledger.PolicyId
	if b.mint != nil {
		mintPolicies = b.mint.Policies()
	}
	redeemers, err := b.resolveRedeemers(sortedInputs, mintPolicies)
	if err != nil {
		return nil, err
	}
	if b.networkId != nil {
		if *b.networkId != ledger.AddressNetworkTestnet &&
			*b.networkId != ledger.AddressNetworkMainnet {
			return nil, InvalidNetworkIdError{NetworkId: *b.networkId}
		}
	}
	// Assemble the body with fee 0 for the sizing pass
	outputs := b.outputs
	if outputs == nil {
		outputs = []ledger.TransactionOutput{}
	}
	body := ledger.TransactionBody{
		TxInputs:                ledger.NewTransactionInputSet(sortedInputs),
		TxOutputs:               outputs,
		Ttl:                     ttlSlot,
		TxValidityIntervalStart: validFromSlot,
		TxCertificates:          b.certificates,
		TxMint:                  b.mint,
		TxScriptDataHash:        b.scriptDataHash,
		TxCollateral:            sortedInputRefs(b.collateralInputs),
		TxRequiredSigners:       b.requiredSigners,
		TxNetworkId:             b.networkId,
		TxCollateralReturn:      b.collateralReturn,
		TxReferenceInputs:       sortedInputRefs(b.referenceInputs),
	}
	if b.auxData != nil {
		tmpHash := b.auxData.Hash()
		body.TxAuxDataHash = &tmpHash
	}
	witnessSet := ledger.TransactionWitnessSet{
		WsNativeScripts:   b.nativeScripts,
		WsPlutusV1Scripts: b.plutusV1Scripts,
		WsPlutusV2Scripts: b.plutusV2Scripts,
		WsPlutusData:      b.plutusData,
		WsRedeemers:       redeemers,
	}
	tx := &ledger.Transaction{
		Body:       body,
		WitnessSet: witnessSet,
		TxIsValid:  true,
		TxAuxData:  b.auxData,
	}
	// Compute the fee from a single encoding pass of the zero-fee
	// transaction, then patch it into the body. An explicit fee bypasses the
	// policy entirely
	if b.explicitFee != nil {
		tx.Body.TxFee = *b.explicitFee
	} else {
		txCbor, err := cbor.Encode(tx)
		if err != nil {
			return nil, err
		}
		txSize := uint64(len(hex.EncodeToString(txCbor)))
		tx.Body.TxFee = b.feePolicy.CalculateMinFee(txSize)
	}
	return tx, nil
}

func sortedInputRefs(refs []inputRef) []ledger.TransactionInput {
	if len(refs) == 0 {
		return nil
	}
	ret := make([]ledger.TransactionInput, 0, len(refs))
	for _, ref := range refs {
		ret = append(ret, ref.input)
	}
	slices.SortFunc(
		ret,
		func(a, c ledger.TransactionInput) int { return a.Compare(c) },
	)
	return ret
}

// resolveRedeemers maps each registered purpose to its index in the relevant
// canonical order. Registration order is preserved for resolution, and the
// emitted sequence is sorted by (tag, index) for reproducible output
func (b *TransactionBuilder) resolveRedeemers(
	sortedInputs []ledger.TransactionInput,
	mintPolicies []ledger.PolicyId,
) (ledger.Redeemers, error) {
	if len(b.redeemers) == 0 {
		return nil, nil
	}
	ret := make(ledger.Redeemers, 0, len(b.redeemers))
	for _, entry := range b.redeemers {
		var index int
		switch purpose := entry.purpose.(type) {
		case SpendPurpose:
			index = slices.Index(sortedInputs, purpose.Input)
		case MintPurpose:
			index = slices.Index(mintPolicies, purpose.Policy)
		default:
			// Cert and reward purposes are recognized but unsupported
			index = -1
		}
		if index < 0 {
			return nil, RedeemerPurposeMissingError{Purpose: entry.purpose}
		}
		ret = append(ret, ledger.Redeemer{
			Tag:     entry.purpose.Tag(),
			Index:   uint32(index), // #nosec G115
			Data:    entry.data,
			ExUnits: entry.exUnits,
		})
	}
	return ret.Sorted(), nil
}
