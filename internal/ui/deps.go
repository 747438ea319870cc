package ui

import (
	"time"

	"consentdash/internal/api"
	"consentdash/internal/wallet"
)

// Deps holds the external collaborators views depend on. The signer may be
// nil (read-only mode): create-consent is blocked by validation and the
// mine-only transaction filter is unavailable.
type Deps struct {
	Client *api.Client
	Signer wallet.Signer
	Now    func() time.Time // nil means time.Now; injected in tests
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// WalletConnected reports whether a signing identity is available.
func (d Deps) WalletConnected() bool {
	return d.Signer != nil
}

// WalletAddress returns the connected account address, or "".
func (d Deps) WalletAddress() string {
	if d.Signer == nil {
		return ""
	}
	return d.Signer.Address()
}
