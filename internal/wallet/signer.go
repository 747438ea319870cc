// Package wallet provides the signing capability views depend on.
// Signing may block awaiting approval in an external application, so every
// implementation takes a context and honors cancellation.
package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// ErrRejected is returned when the user declines to sign.
var ErrRejected = errors.New("signing rejected")

// Signer produces wallet signatures over human-readable messages.
type Signer interface {
	// Address returns the 0x-prefixed account address.
	Address() string
	// SignMessage signs msg and returns the hex-encoded signature.
	SignMessage(ctx context.Context, msg string) (string, error)
}

// ConsentMessage builds the canonical message a patient signs when granting
// consent. The backend verifies the signature against this exact string, so
// the format must not change.
func ConsentMessage(purpose, patientID string) string {
	return fmt.Sprintf("I consent to: %s for patient: %s", purpose, patientID)
}

// KeySigner signs with a local secp256k1 key using the EIP-191 personal
// message scheme, matching what browser wallets produce.
type KeySigner struct {
	key     *ecdsa.PrivateKey
	address string
}

var _ Signer = (*KeySigner)(nil)

// NewKeySigner creates a signer from a hex-encoded private key.
func NewKeySigner(hexKey string) (*KeySigner, error) {
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("parse wallet key: %w", err)
	}
	return &KeySigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey).Hex(),
	}, nil
}

// Address implements Signer.
func (s *KeySigner) Address() string {
	return s.address
}

// SignMessage implements Signer. The recovery byte is offset by 27 to match
// the eth_sign wire convention.
func (s *KeySigner) SignMessage(ctx context.Context, msg string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	sig, err := crypto.Sign(accounts.TextHash([]byte(msg)), s.key)
	if err != nil {
		return "", fmt.Errorf("sign message: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return hexutil.Encode(sig), nil
}
