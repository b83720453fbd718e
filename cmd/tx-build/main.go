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

package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	txbuilder "github.com/blinklabs-io/txbuilder"
	"github.com/blinklabs-io/txbuilder/ledger"
)

type txBuildFlags struct {
	flagset *flag.FlagSet
	file    string
	network string
	sign    string
}

// txDesc is the declarative transaction description read from the input file
type txDesc struct {
	Inputs           []txDescInput  `json:"inputs"`
	Outputs          []txDescOutput `json:"outputs"`
	CollateralInputs []txDescInput  `json:"collateralInputs"`
	CollateralReturn *txDescOutput  `json:"collateralReturn"`
	Mint             []txDescAsset  `json:"mint"`
	ValidAfter       *uint64        `json:"validAfter"`
	ValidUntil       *uint64        `json:"validUntil"`
	Fee              *uint64        `json:"fee"`
	NetworkId        *uint8         `json:"networkId"`
	Metadata         string         `json:"metadata"`
}

type txDescInput struct {
	TxId  string `json:"txId"`
	Index int    `json:"index"`
}

type txDescOutput struct {
	Address string        `json:"address"`
	Amount  uint64        `json:"amount"`
	Assets  []txDescAsset `json:"assets"`
}

type txDescAsset struct {
	PolicyId string `json:"policyId"`
	Name     string `json:"name"`
	Amount   int64  `json:"amount"`
}

func main() {
	f := txBuildFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.file,
		"file",
		"",
		"path to JSON transaction description (defaults to stdin)",
	)
	f.flagset.StringVar(
		&f.network,
		"network",
		"mainnet",
		"named network to build for",
	)
	f.flagset.StringVar(
		&f.sign,
		"sign",
		"",
		"hex-encoded Ed25519 private key to sign with",
	)
	if err := f.flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse commandline: %s\n", err)
		os.Exit(1)
	}

	descData, err := readDesc(f.file)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	var desc txDesc
	if err := json.Unmarshal(descData, &desc); err != nil {
		fmt.Printf("ERROR: failed to parse transaction description: %s\n", err)
		os.Exit(1)
	}

	network := txbuilder.NetworkByName(f.network)
	if network == txbuilder.NetworkInvalid {
		fmt.Printf("ERROR: unknown network: %s\n", f.network)
		os.Exit(1)
	}

	tx, err := buildTx(network, &desc)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}

	if f.sign != "" {
		privKey, err := hex.DecodeString(f.sign)
		if err != nil {
			fmt.Printf("ERROR: invalid signing key: %s\n", err)
			os.Exit(1)
		}
		if err := txbuilder.Sign(tx, privKey); err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
	}

	txCbor, err := tx.Cbor()
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s\n", hex.EncodeToString(txCbor))
}

func readDesc(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func buildTx(
	network txbuilder.Network,
	desc *txDesc,
) (*ledger.Transaction, error) {
	builder := txbuilder.NewTransactionBuilder(network)
	for _, input := range desc.Inputs {
		builder = builder.Input(
			ledger.NewTransactionInput(input.TxId, input.Index),
			nil,
		)
	}
	for _, output := range desc.Outputs {
		tmpOutput, err := buildOutput(output)
		if err != nil {
			return nil, err
		}
		builder = builder.Output(tmpOutput)
	}
	for _, input := range desc.CollateralInputs {
		builder = builder.CollateralInput(
			ledger.NewTransactionInput(input.TxId, input.Index),
			nil,
		)
	}
	if desc.CollateralReturn != nil {
		tmpOutput, err := buildOutput(*desc.CollateralReturn)
		if err != nil {
			return nil, err
		}
		builder = builder.CollateralReturn(tmpOutput)
	}
	if len(desc.Mint) > 0 {
		mint := txbuilder.NewMultiAsset[ledger.MultiAssetTypeMint]()
		for _, asset := range desc.Mint {
			policyId, err := ledger.NewPolicyIdFromHex(asset.PolicyId)
			if err != nil {
				return nil, err
			}
			mint, err = mint.Add(policyId, []byte(asset.Name), asset.Amount)
			if err != nil {
				return nil, err
			}
		}
		mintAssets, err := mint.Build()
		if err != nil {
			return nil, err
		}
		builder = builder.Mint(mintAssets)
	}
	if desc.ValidAfter != nil {
		builder = builder.ValidAfter(*desc.ValidAfter)
	}
	if desc.ValidUntil != nil {
		builder = builder.ValidUntil(*desc.ValidUntil)
	}
	if desc.Fee != nil {
		builder = builder.Fee(*desc.Fee)
	}
	if desc.NetworkId != nil {
		builder = builder.NetworkId(*desc.NetworkId)
	}
	if desc.Metadata != "" {
		metadata, err := hex.DecodeString(desc.Metadata)
		if err != nil {
			return nil, fmt.Errorf("invalid metadata: %w", err)
		}
		builder = builder.AuxiliaryData(metadata)
	}
	return builder.Build()
}

func buildOutput(desc txDescOutput) (ledger.TransactionOutput, error) {
	var addr ledger.Address
	if desc.Address != "" {
		tmpAddr, err := ledger.NewAddress(desc.Address)
		if err != nil {
			return ledger.TransactionOutput{}, err
		}
		addr = tmpAddr
	}
	var assets *ledger.MultiAsset[ledger.MultiAssetTypeOutput]
	if len(desc.Assets) > 0 {
		staging := txbuilder.NewMultiAsset[ledger.MultiAssetTypeOutput]()
		for _, asset := range desc.Assets {
			policyId, err := ledger.NewPolicyIdFromHex(asset.PolicyId)
			if err != nil {
				return ledger.TransactionOutput{}, err
			}
			if asset.Amount < 0 {
				return ledger.TransactionOutput{}, fmt.Errorf(
					"output asset amount cannot be negative: %d",
					asset.Amount,
				)
			}
			staging, err = staging.Add(
				policyId,
				[]byte(asset.Name),
				uint64(asset.Amount),
			)
			if err != nil {
				return ledger.TransactionOutput{}, err
			}
		}
		tmpAssets, err := staging.Build()
		if err != nil {
			return ledger.TransactionOutput{}, err
		}
		assets = tmpAssets
	}
	return ledger.NewTransactionOutput(addr, desc.Amount, assets), nil
}
