// Command sdes_proxy is an S-DES proxy. In forward mode it accepts plaintext connections and makes connections which
// carry ciphertext; in reverse mode it accepts ciphertext connections and makes plaintext ones.
//
// Each byte is enciphered independently, so the proxy adds no framing and no authentication.
package main

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net"
	"os"

	"github.com/codahale/sdes"
	"github.com/nadoo/conflag"
)

func main() {
	var (
		listen, connect, key string
		reverse              bool
	)

	flag := conflag.New()
	flag.StringVar(&listen, "listen", "127.0.0.1:6060", "the address to listen on")
	flag.StringVar(&connect, "connect", "127.0.0.1:5050", "the address to connect to")
	flag.StringVar(&key, "key", "", "10-bit key, e.g. 1010000010")
	flag.BoolVar(&reverse, "reverse", false, "accept ciphertext connections and make plaintext ones")

	log := slog.New(slog.Default().Handler())

	// Without arguments, conflag looks for an optional sdes_proxy.conf next to the binary.
	if err := flag.Parse(); err != nil && (len(os.Args) > 1 || !errors.Is(err, fs.ErrNotExist)) {
		log.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	c, err := sdes.New(key)
	if err != nil {
		log.Error("invalid key", "err", err)
		os.Exit(1)
	}

	listenConfig := new(net.ListenConfig)
	listener, err := listenConfig.Listen(context.Background(), "tcp", listen)
	if err != nil {
		panic(err)
	}
	log.Info("listening", "addr", listener.Addr(), "reverse", reverse)

	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Error("failed to accept connection", "err", err)
			continue
		}

		go func() {
			log.Info("accepted new connection", "addr", conn.RemoteAddr())
			defer func() {
				_ = conn.Close()
				log.Info("closed connection", "addr", conn.RemoteAddr())
			}()

			log.Info("connecting", "addr", connect)
			dialer := new(net.Dialer)
			upstream, err := dialer.DialContext(context.Background(), "tcp", connect)
			if err != nil {
				log.Error("error connecting", "err", err)
				return
			}
			defer func() {
				_ = upstream.Close()
			}()

			plain, enciphered := io.ReadWriter(conn), io.ReadWriter(upstream)
			if reverse {
				plain, enciphered = enciphered, plain
			}
			relay(context.Background(), log, c, plain, enciphered)
		}()
	}
}

// relay encrypts everything read from plain and writes it to enciphered, and decrypts everything read from enciphered
// and writes it to plain. It returns when either direction stops.
func relay(ctx context.Context, log *slog.Logger, c *sdes.Cipher, plain, enciphered io.ReadWriter) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		if _, err := io.Copy(c.EncryptWriter(enciphered), plain); err != nil && !errors.Is(err, net.ErrClosed) {
			log.ErrorContext(ctx, "error encrypting", "err", err)
		}
		cancel()
	}()
	go func() {
		if _, err := io.Copy(plain, c.DecryptReader(enciphered)); err != nil && !errors.Is(err, net.ErrClosed) {
			log.ErrorContext(ctx, "error decrypting", "err", err)
		}
		cancel()
	}()
	<-ctx.Done()
}
