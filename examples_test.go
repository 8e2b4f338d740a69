package sdes_test

import (
	"fmt"

	"github.com/codahale/sdes"
)

func ExampleCipher_EncryptByte() {
	c, err := sdes.New("1010000010")
	if err != nil {
		panic(err)
	}

	ct, err := c.EncryptByte(0x00)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%#02x\n", ct)

	pt, err := c.DecryptByte(ct)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%#02x\n", pt)
	// Output:
	// 0xce
	// 0x00
}

func ExampleCipher_EncryptString() {
	c, err := sdes.New("1010000010")
	if err != nil {
		panic(err)
	}

	ciphertext, err := c.EncryptString("hello world")
	if err != nil {
		panic(err)
	}
	fmt.Printf("%x\n", ciphertext)

	plaintext, err := c.DecryptString(ciphertext)
	if err != nil {
		panic(err)
	}
	fmt.Println(plaintext)
	// Output:
	// 4cf80d0d2f62a62f770db7
	// hello world
}

func ExampleKey_Subkeys() {
	k, err := sdes.ParseKey("1010000010")
	if err != nil {
		panic(err)
	}

	k1, k2, err := k.Subkeys()
	if err != nil {
		panic(err)
	}
	fmt.Printf("%08b %08b\n", k1, k2)
	// Output: 10100100 01000011
}
