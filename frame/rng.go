// Package frame
// Author: momentics <momentics@gmail.com>
//
// RNG: the cryptographic default masking-key source.

package frame

import "crypto/rand"

// CryptoRNG is the process-wide cryptographic default for masking-key
// generation (spec §9 "Global RNG"). It is stateless and safe for
// concurrent use — crypto/rand.Read already synchronizes internally.
type CryptoRNG struct{}

// Fill implements api.RNG using crypto/rand.
func (CryptoRNG) Fill(dst []byte) {
	// crypto/rand.Read only returns an error on an unreadable system
	// entropy source, which this codec treats as unrecoverable: a
	// connection that cannot mint a masking key cannot proceed.
	if _, err := rand.Read(dst); err != nil {
		panic("frame: crypto/rand unavailable: " + err.Error())
	}
}

// DefaultRNG is the package-wide default passed to New when no RNG is
// supplied explicitly.
var DefaultRNG CryptoRNG
