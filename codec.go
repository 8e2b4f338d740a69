package sdes

import (
	"strings"

	"github.com/codahale/sdes/internal/mem"
)

// Encrypt encrypts each byte of plaintext independently, appends the ciphertext to dst, and returns the resulting
// slice. On error, dst is returned unextended.
//
// Each byte is its own block, with no chaining or padding. Equal plaintext bytes always produce equal ciphertext bytes.
//
// To reuse plaintext's storage for the encrypted output, use plaintext[:0] as dst. Otherwise, the remaining capacity of
// dst must not overlap plaintext.
func (c *Cipher) Encrypt(dst, plaintext []byte) ([]byte, error) {
	return c.cryptBytes(dst, plaintext, c.EncryptByte)
}

// Decrypt decrypts each byte of ciphertext independently, appends the plaintext to dst, and returns the resulting
// slice. On error, dst is returned unextended.
//
// To reuse ciphertext's storage for the decrypted output, use ciphertext[:0] as dst. Otherwise, the remaining capacity
// of dst must not overlap ciphertext.
func (c *Cipher) Decrypt(dst, ciphertext []byte) ([]byte, error) {
	return c.cryptBytes(dst, ciphertext, c.DecryptByte)
}

// EncryptString encrypts msg one character at a time. Each character's code point is truncated to a single byte, so
// characters outside of Latin-1 do not survive a round trip.
func (c *Cipher) EncryptString(msg string) ([]byte, error) {
	runes := []rune(msg)
	plaintext := make([]byte, len(runes))
	for i, r := range runes {
		plaintext[i] = byte(r) //nolint:gosec // truncation is intended
	}
	return c.Encrypt(plaintext[:0], plaintext)
}

// DecryptString decrypts ciphertext and returns the plaintext bytes as a string of Latin-1 characters.
func (c *Cipher) DecryptString(ciphertext []byte) (string, error) {
	plaintext, err := c.Decrypt(nil, ciphertext)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(plaintext))
	for _, b := range plaintext {
		sb.WriteRune(rune(b))
	}
	return sb.String(), nil
}

func (c *Cipher) cryptBytes(dst, src []byte, f func(byte) (byte, error)) ([]byte, error) {
	if !c.keyed {
		return dst, ErrKeyNotSet
	}

	ret, out := mem.SliceForAppend(dst, len(src))
	for i, b := range src {
		o, err := f(b)
		if err != nil {
			return dst, err
		}
		out[i] = o
	}
	return ret, nil
}
