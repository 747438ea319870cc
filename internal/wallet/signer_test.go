package wallet

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Well-known test vector key (never fund this account).
const testKey = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

func TestConsentMessage(t *testing.T) {
	got := ConsentMessage("Research Study Participation", "P-001")
	assert.Equal(t, "I consent to: Research Study Participation for patient: P-001", got)
}

func TestNewKeySigner_Address(t *testing.T) {
	s, err := NewKeySigner(testKey)
	require.NoError(t, err)
	assert.Equal(t, "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23", s.Address())
}

func TestNewKeySigner_InvalidKey(t *testing.T) {
	_, err := NewKeySigner("not-hex")
	require.Error(t, err)
}

func TestSignMessage_RecoversSigner(t *testing.T) {
	s, err := NewKeySigner(testKey)
	require.NoError(t, err)

	msg := ConsentMessage("Data Sharing", "P-042")
	sigHex, err := s.SignMessage(context.Background(), msg)
	require.NoError(t, err)

	sig, err := hexutil.Decode(sigHex)
	require.NoError(t, err)
	require.Len(t, sig, crypto.SignatureLength)

	// Undo the eth_sign offset and recover the public key.
	sig[crypto.RecoveryIDOffset] -= 27
	pub, err := crypto.SigToPub(accounts.TextHash([]byte(msg)), sig)
	require.NoError(t, err)
	assert.Equal(t, s.Address(), crypto.PubkeyToAddress(*pub).Hex())
}

func TestSignMessage_CancelledContext(t *testing.T) {
	s, err := NewKeySigner(testKey)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.SignMessage(ctx, "anything")
	require.Error(t, err)
}
