// Command sdes encrypts and decrypts messages with Simplified DES.
//
// Flags may also be given in a config file of flag=value lines, passed with -config.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/codahale/sdes"
	"github.com/nadoo/conflag"
)

// The challenge ciphertexts from the original S-DES demo program.
var challenge = []string{ //nolint:gochecknoglobals // constant
	"-115 -17 -47 -113 -43 -47 15 84 -43 -113 -17 84 -43 79 58 15 64 -113 -43 65 -47 127 84 64 -43 -61 79 -43 93 " +
		"-61 -14 15 -43 -113 84 -47 127 -43 127 84 127 10 84 15 64 43",
	"-126 58 -86 -86 62 -43 76 58 127 62 -43 40 -33 -61 -113 -113",
}

type config struct {
	Key     string
	Decrypt bool
	Format  string
	Secret  bool
	Verbose bool
}

func main() {
	if err := run(os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var conf config

	flag := conflag.New(args...)
	flag.StringVar(&conf.Key, "key", "", "10-bit key, e.g. 1010000010")
	flag.BoolVar(&conf.Decrypt, "d", false, "decrypt instead of encrypt")
	flag.StringVar(&conf.Format, "format", formatDecimal, "ciphertext format: decimal, hex, bits, or raw")
	flag.BoolVar(&conf.Secret, "secret", false, "decrypt the challenge messages from the original demo")
	flag.BoolVar(&conf.Verbose, "v", false, "verbose mode")
	flag.SetOutput(stderr)

	if err := flag.Parse(); err != nil {
		// Without arguments, conflag looks for an optional <app>.conf next to the binary.
		if len(args) > 1 || !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	level := slog.LevelInfo
	if conf.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	in := bufio.NewReader(stdin)

	if conf.Key == "" {
		if f, ok := stdin.(*os.File); !ok || !isTerminal(f.Fd()) {
			return errors.New("no key given")
		}

		_, _ = fmt.Fprint(stderr, "Please enter a 10-bit key: ")
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		conf.Key = strings.TrimSpace(line)
	}

	key, err := sdes.ParseKey(conf.Key)
	if err != nil {
		return err
	}

	c, err := sdes.NewCipher(key)
	if err != nil {
		return err
	}

	if k1, k2, err := key.Subkeys(); err == nil {
		log.Debug("derived subkeys", "key", key, "k1", fmt.Sprintf("%08b", k1), "k2", fmt.Sprintf("%08b", k2))
	}

	if conf.Secret {
		return revealChallenge(log, c, stdout)
	}

	if conf.Format == formatRaw {
		return stream(log, c, conf.Decrypt, flag.Args(), in, stdout)
	}

	input := strings.Join(flag.Args(), " ")
	if flag.NArg() == 0 {
		b, err := io.ReadAll(in)
		if err != nil {
			return err
		}
		input = strings.TrimRight(string(b), "\r\n")
	}

	if conf.Decrypt {
		ciphertext, err := parseBytes(conf.Format, input)
		if err != nil {
			return err
		}

		plaintext, err := c.DecryptString(ciphertext)
		if err != nil {
			return err
		}
		log.Debug("decrypted", "bytes", len(ciphertext))

		_, err = fmt.Fprintln(stdout, plaintext)
		return err
	}

	ciphertext, err := c.EncryptString(input)
	if err != nil {
		return err
	}
	log.Debug("encrypted", "bytes", len(ciphertext))

	out, err := formatBytes(conf.Format, ciphertext)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, out)
	return err
}

func revealChallenge(log *slog.Logger, c *sdes.Cipher, stdout io.Writer) error {
	for i, s := range challenge {
		ciphertext, err := parseBytes(formatDecimal, s)
		if err != nil {
			return err
		}

		plaintext, err := c.DecryptString(ciphertext)
		if err != nil {
			return err
		}
		log.Debug("decrypted challenge", "message", i, "bytes", len(ciphertext))

		if _, err := fmt.Fprintln(stdout, plaintext); err != nil {
			return err
		}
	}
	return nil
}

func stream(log *slog.Logger, c *sdes.Cipher, decrypt bool, args []string, in io.Reader, stdout io.Writer) error {
	if len(args) > 0 {
		in = strings.NewReader(strings.Join(args, " "))
	}

	var (
		n   int64
		err error
	)
	if decrypt {
		n, err = io.Copy(stdout, c.DecryptReader(in))
	} else {
		n, err = io.Copy(c.EncryptWriter(stdout), in)
	}
	if err != nil {
		return err
	}

	log.Debug("streamed", "decrypt", decrypt, "bytes", n)
	return nil
}
