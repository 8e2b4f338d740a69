package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/codahale/sdes/internal/bitvec"
)

const (
	formatDecimal = "decimal"
	formatHex     = "hex"
	formatBits    = "bits"
	formatRaw     = "raw"
)

// formatBytes renders b in the named format. Decimal renders each byte as a signed integer, the way the original
// demo printed its ciphertexts.
func formatBytes(format string, b []byte) (string, error) {
	switch format {
	case formatDecimal:
		fields := make([]string, len(b))
		for i, v := range b {
			fields[i] = strconv.Itoa(int(int8(v))) //nolint:gosec // signed rendering is intended
		}
		return strings.Join(fields, " "), nil
	case formatHex:
		return hex.EncodeToString(b), nil
	case formatBits:
		fields := make([]string, len(b))
		for i, v := range b {
			fields[i] = bitvec.FromByte(v, 8).String()
		}
		return strings.Join(fields, " "), nil
	default:
		return "", fmt.Errorf("unknown format: %q", format)
	}
}

// parseBytes parses s in the named format. Decimal accepts both signed (-128..127) and unsigned (0..255) bytes.
func parseBytes(format, s string) ([]byte, error) {
	switch format {
	case formatDecimal:
		fields := strings.Fields(s)
		out := make([]byte, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseInt(f, 10, 16)
			if err != nil {
				return nil, err
			}

			if v < -128 || v > 255 {
				return nil, fmt.Errorf("byte out of range: %d", v)
			}
			out[i] = byte(v) //nolint:gosec // range checked above
		}
		return out, nil
	case formatHex:
		return hex.DecodeString(strings.Join(strings.Fields(s), ""))
	case formatBits:
		fields := strings.Fields(s)
		out := make([]byte, len(fields))
		for i, f := range fields {
			if len(f) != 8 || strings.Trim(f, "01") != "" {
				return nil, fmt.Errorf("invalid bit pattern: %q", f)
			}

			v := make(bitvec.Vector, len(f))
			for j := range f {
				v[j] = f[j] == '1'
			}

			b, err := bitvec.ToByte(v)
			if err != nil {
				return nil, err
			}
			out[i] = b
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown format: %q", format)
	}
}
