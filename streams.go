package sdes

import (
	"errors"
	"io"

	"github.com/codahale/sdes/ecb"
)

// EncryptWriter returns an io.Writer which encrypts whatever data is written to it and writes the ciphertext to w.
//
// To avoid encrypting the written slices in-place, the writer copies the data before encrypting. As such, it is
// slightly slower than its EncryptReader counterpart.
func (c *Cipher) EncryptWriter(w io.Writer) io.Writer {
	return &cryptWriter{c: c, f: ecb.NewEncrypter(c.Block()).CryptBlocks, w: w}
}

// EncryptReader returns an io.Reader which encrypts whatever data is read from r.
func (c *Cipher) EncryptReader(r io.Reader) io.Reader {
	return &cryptReader{c: c, f: ecb.NewEncrypter(c.Block()).CryptBlocks, r: r}
}

// DecryptWriter returns an io.Writer which decrypts whatever data is written to it and writes the plaintext to w.
func (c *Cipher) DecryptWriter(w io.Writer) io.Writer {
	return &cryptWriter{c: c, f: ecb.NewDecrypter(c.Block()).CryptBlocks, w: w}
}

// DecryptReader returns an io.Reader which decrypts whatever data is read from r.
func (c *Cipher) DecryptReader(r io.Reader) io.Reader {
	return &cryptReader{c: c, f: ecb.NewDecrypter(c.Block()).CryptBlocks, r: r}
}

type cryptWriter struct {
	c   *Cipher
	f   func(dst, src []byte)
	w   io.Writer
	buf []byte
}

func (c *cryptWriter) Write(p []byte) (n int, err error) {
	if !c.c.keyed {
		return 0, ErrKeyNotSet
	}

	c.buf = append(c.buf[:0], p...)
	c.f(c.buf, c.buf)
	for n < len(c.buf) {
		nn, err := c.w.Write(c.buf[n:])
		n += nn
		if err != nil && !errors.Is(err, io.ErrShortWrite) {
			return n, err
		}
	}
	return n, nil
}

type cryptReader struct {
	c *Cipher
	f func(dst, src []byte)
	r io.Reader
}

func (c *cryptReader) Read(p []byte) (n int, err error) {
	if !c.c.keyed {
		return 0, ErrKeyNotSet
	}

	n, err = c.r.Read(p)
	c.f(p[:n], p[:n])
	return n, err
}

var (
	_ io.Writer = (*cryptWriter)(nil)
	_ io.Reader = (*cryptReader)(nil)
)
