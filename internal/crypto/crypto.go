// Package crypto holds the digest helpers that turn identifier material into
// a fingerprint.
package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/awnumar/memguard"
)

// SHA256Hex returns the lowercase SHA-256 hex digest of data.
func SHA256Hex(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// SHA256HexUpper returns the uppercase SHA-256 hex digest of data.
func SHA256HexUpper(data []byte) string {
	return strings.ToUpper(SHA256Hex(data))
}

// SealedSHA256HexUpper moves data into a memguard LockedBuffer, hashes it and
// destroys the buffer, so the plaintext never sits in swappable memory and is
// wiped afterwards. On success data has been zeroed.
//
// memguard panics when it cannot lock memory (for example under a tight
// RLIMIT_MEMLOCK); that panic is returned as an error and data is left intact
// so the caller can fall back to SHA256HexUpper.
func SealedSHA256HexUpper(data []byte) (digest string, err error) {
	if len(data) == 0 {
		return SHA256HexUpper(data), nil
	}
	defer func() {
		if r := recover(); r != nil {
			digest, err = "", fmt.Errorf("allocate locked buffer: %v", r)
		}
	}()

	buf := memguard.NewBufferFromBytes(data)
	defer buf.Destroy()
	return SHA256HexUpper(buf.Bytes()), nil
}
