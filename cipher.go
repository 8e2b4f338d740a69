package sdes

import (
	"crypto/cipher"

	"github.com/codahale/sdes/internal/bitvec"
)

// A Cipher enciphers single bytes under a fixed key. The subkeys are derived once, when the Cipher is created, and
// never change, so a Cipher is safe for concurrent use.
//
// The zero Cipher has no key. Every operation on it fails with ErrKeyNotSet.
type Cipher struct {
	k1, k2 bitvec.Vector
	keyed  bool
}

// NewCipher returns a Cipher using the given key.
func NewCipher(key Key) (*Cipher, error) {
	k1, k2, err := key.schedule()
	if err != nil {
		return nil, err
	}
	return &Cipher{k1: k1, k2: k2, keyed: true}, nil
}

// New parses the given key string and returns a Cipher using it. If the key is invalid, no Cipher is returned.
func New(key string) (*Cipher, error) {
	k, err := ParseKey(key)
	if err != nil {
		return nil, err
	}
	return NewCipher(k)
}

// EncryptByte encrypts a single block.
func (c *Cipher) EncryptByte(b byte) (byte, error) {
	if !c.keyed {
		return 0, ErrKeyNotSet
	}
	return crypt(b, c.k1, c.k2)
}

// DecryptByte decrypts a single block.
func (c *Cipher) DecryptByte(b byte) (byte, error) {
	if !c.keyed {
		return 0, ErrKeyNotSet
	}
	return crypt(b, c.k2, c.k1)
}

// Block returns c as a cipher.Block with a block size of one byte. The returned block panics if c has no key.
func (c *Cipher) Block() cipher.Block {
	return block{c: c}
}

// crypt runs the block pipeline: IP, a round under first, a half swap, a round under second, and IP⁻¹. Decryption is
// encryption with the subkeys in reverse order.
func crypt(b byte, first, second bitvec.Vector) (byte, error) {
	t, err := ip.Apply(bitvec.FromByte(b, 8))
	if err != nil {
		return 0, err
	}

	if t, err = round(t, first); err != nil {
		return 0, err
	}

	if t, err = round(swap(t), second); err != nil {
		return 0, err
	}

	if t, err = ipInverse.Apply(t); err != nil {
		return 0, err
	}

	return bitvec.ToByte(t)
}

type block struct {
	c *Cipher
}

func (b block) BlockSize() int {
	return BlockSize
}

func (b block) Encrypt(dst, src []byte) {
	b.crypt(dst, src, b.c.EncryptByte)
}

func (b block) Decrypt(dst, src []byte) {
	b.crypt(dst, src, b.c.DecryptByte)
}

func (b block) crypt(dst, src []byte, f func(byte) (byte, error)) {
	if len(src) < BlockSize {
		panic("sdes: input not full block")
	}

	if len(dst) < BlockSize {
		panic("sdes: output not full block")
	}

	out, err := f(src[0])
	if err != nil {
		panic(err)
	}
	dst[0] = out
}

var _ cipher.Block = block{}
