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
	"testing"

	"github.com/blinklabs-io/txbuilder/cbor"
	"github.com/stretchr/testify/require"
)

func TestStakeRegistrationCertificateEncode(t *testing.T) {
	expectedHex := "82008200581c29a8fb8318718bd756124f0c144f56d4b4579dc5edf2dd42d669ac61"
	cert := NewStakeRegistrationCertificate(
		StakeCredential{
			CredType: StakeCredentialTypeAddrKeyHash,
			Credential: mustDecodeHex(
				t,
				"29a8fb8318718bd756124f0c144f56d4b4579dc5edf2dd42d669ac61",
			),
		},
	)
	cborData, err := cbor.Encode(&cert)
	require.NoError(t, err)
	require.Equal(t, expectedHex, hex.EncodeToString(cborData))
}

func TestCertificateWrapperDecode(t *testing.T) {
	cborData := mustDecodeHex(
		t,
		"82008200581c29a8fb8318718bd756124f0c144f56d4b4579dc5edf2dd42d669ac61",
	)
	var wrapper CertificateWrapper
	_, err := cbor.Decode(cborData, &wrapper)
	require.NoError(t, err)
	require.Equal(t, uint(CertificateTypeStakeRegistration), wrapper.Type)
	cert, ok := wrapper.Certificate.(*StakeRegistrationCertificate)
	require.True(t, ok)
	require.Equal(
		t,
		"29a8fb8318718bd756124f0c144f56d4b4579dc5edf2dd42d669ac61",
		hex.EncodeToString(cert.StakeCredential.Credential),
	)
	// The wrapper re-encodes to the original bytes
	tmpCbor, err := cbor.Encode(&wrapper)
	require.NoError(t, err)
	require.Equal(t, cborData, tmpCbor)
}

func TestCertificateWrapperDecodeDelegation(t *testing.T) {
	cborData := mustDecodeHex(
		t,
		"8302"+
			"8200581c29a8fb8318718bd756124f0c144f56d4b4579dc5edf2dd42d669ac61"+
			"581ceaf8042c1d8203b1c585822f54ec32c4c1bb4d3914603e2cca20bbd5",
	)
	var wrapper CertificateWrapper
	_, err := cbor.Decode(cborData, &wrapper)
	require.NoError(t, err)
	require.Equal(t, uint(CertificateTypeStakeDelegation), wrapper.Type)
	cert, ok := wrapper.Certificate.(*StakeDelegationCertificate)
	require.True(t, ok)
	require.Equal(
		t,
		"eaf8042c1d8203b1c585822f54ec32c4c1bb4d3914603e2cca20bbd5",
		cert.PoolKeyHash.String(),
	)
}

func TestCertificateWrapperDecodeUnknownType(t *testing.T) {
	// Certificate type 99 is not supported
	cborData := mustDecodeHex(t, "821863a0")
	var wrapper CertificateWrapper
	_, err := cbor.Decode(cborData, &wrapper)
	require.ErrorContains(t, err, "unknown certificate type")
}
