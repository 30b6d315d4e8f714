package common

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
)

// RandReader is the entropy source for every token, salt and account number.
var RandReader io.Reader = rand.Reader

// MakeRandHexString generates size random bytes and returns them hex-encoded,
// so the resulting string is 2*size characters long.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := io.ReadFull(RandReader, b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateRandByteArray returns size random bytes, or nil if the entropy
// source fails.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := io.ReadFull(RandReader, b); err != nil {
		return nil
	}
	return b
}

// MakeRandDigits returns a string of n uniformly distributed decimal digits.
func MakeRandDigits(n int) (string, error) {
	out := make([]byte, n)
	ten := big.NewInt(10)
	for i := range out {
		d, err := rand.Int(RandReader, ten)
		if err != nil {
			return "", fmt.Errorf("read random digit: %w", err)
		}
		out[i] = byte('0' + d.Int64())
	}
	return string(out), nil
}

// WipeByteArray zeroes the buffer in place.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
