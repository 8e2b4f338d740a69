package main

import (
	"context"
	"encoding/hex"
	"io"
	"log/slog"
	"net"
	"testing"

	"github.com/codahale/sdes"
)

func TestRelay(t *testing.T) {
	c, err := sdes.New("1010000010")
	if err != nil {
		t.Fatal(err)
	}

	client, plain := net.Pipe()
	enciphered, server := net.Pipe()
	t.Cleanup(func() {
		for _, conn := range []net.Conn{client, plain, enciphered, server} {
			_ = conn.Close()
		}
	})

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	done := make(chan struct{})
	go func() {
		relay(context.Background(), log, c, plain, enciphered)
		close(done)
	}()

	errs := make(chan error, 1)
	go func() {
		_, err := client.Write([]byte("hello world"))
		errs <- err
	}()

	ciphertext := make([]byte, 11)
	if _, err := io.ReadFull(server, ciphertext); err != nil {
		t.Fatal(err)
	}

	if err := <-errs; err != nil {
		t.Fatal(err)
	}

	if got, want := hex.EncodeToString(ciphertext), "4cf80d0d2f62a62f770db7"; got != want {
		t.Errorf("upstream read %s, want = %s", got, want)
	}

	go func() {
		_, err := server.Write(ciphertext)
		errs <- err
	}()

	plaintext := make([]byte, 11)
	if _, err := io.ReadFull(client, plaintext); err != nil {
		t.Fatal(err)
	}

	if err := <-errs; err != nil {
		t.Fatal(err)
	}

	if got, want := string(plaintext), "hello world"; got != want {
		t.Errorf("client read %q, want = %q", got, want)
	}

	_ = client.Close()
	<-done
}
