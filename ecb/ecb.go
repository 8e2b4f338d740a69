// Package ecb implements electronic codebook mode: each block is enciphered independently of every other block.
//
// ECB provides no diffusion across blocks. Identical plaintext blocks under one key always produce identical
// ciphertext blocks.
package ecb

import "crypto/cipher"

// NewEncrypter returns a cipher.BlockMode which encrypts each block of its input with b.
func NewEncrypter(b cipher.Block) cipher.BlockMode {
	return &mode{b: b, crypt: b.Encrypt}
}

// NewDecrypter returns a cipher.BlockMode which decrypts each block of its input with b.
func NewDecrypter(b cipher.Block) cipher.BlockMode {
	return &mode{b: b, crypt: b.Decrypt}
}

type mode struct {
	b     cipher.Block
	crypt func(dst, src []byte)
}

func (m *mode) BlockSize() int {
	return m.b.BlockSize()
}

func (m *mode) CryptBlocks(dst, src []byte) {
	n := m.b.BlockSize()
	if len(src)%n != 0 {
		panic("ecb: input not full blocks")
	}

	if len(dst) < len(src) {
		panic("ecb: output smaller than input")
	}

	for len(src) > 0 {
		m.crypt(dst[:n], src[:n])
		src = src[n:]
		dst = dst[n:]
	}
}

var _ cipher.BlockMode = (*mode)(nil)
