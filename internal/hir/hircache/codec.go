// Package hircache serializes whole crates with msgpack and keeps encoded
// crates in an on-disk cache keyed by their blake3 fingerprint.
package hircache

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zeebo/blake3"

	"oxbow/internal/hir"
)

// SchemaVersion is written in front of every encoded crate. Bump it whenever
// the layout of any node changes.
const SchemaVersion uint16 = 1

// ErrSchemaMismatch is returned when decoding data written by a different
// schema version.
var ErrSchemaMismatch = errors.New("hircache: schema mismatch")

// Fingerprint is the blake3 digest of a crate's encoding.
type Fingerprint [32]byte

// Sum fingerprints already encoded crate bytes.
func Sum(data []byte) Fingerprint { return blake3.Sum256(data) }

func (fp Fingerprint) String() string { return hex.EncodeToString(fp[:]) }

// Short is the first 12 hex digits, enough for log lines.
func (fp Fingerprint) Short() string { return fp.String()[:12] }

// ParseFingerprint reads the String form back.
func ParseFingerprint(s string) (Fingerprint, error) {
	var fp Fingerprint
	b, err := hex.DecodeString(s)
	if err != nil {
		return fp, fmt.Errorf("parse fingerprint: %w", err)
	}
	if len(b) != len(fp) {
		return fp, fmt.Errorf("parse fingerprint: got %d bytes, want %d", len(b), len(fp))
	}
	copy(fp[:], b)
	return fp, nil
}

// Write encodes c as [schema, crate].
func Write(w io.Writer, c *hir.Crate) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeUint16(SchemaVersion); err != nil {
		return err
	}
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode crate: %w", err)
	}
	return nil
}

// Read decodes a crate written by Write.
func Read(r io.Reader) (*hir.Crate, error) {
	dec := msgpack.NewDecoder(r)
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, fmt.Errorf("decode crate header: %w", err)
	}
	if n != 2 {
		return nil, fmt.Errorf("decode crate header: got %d fields, want 2", n)
	}
	schema, err := dec.DecodeUint16()
	if err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}
	if schema != SchemaVersion {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrSchemaMismatch, schema, SchemaVersion)
	}
	c := new(hir.Crate)
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("decode crate: %w", err)
	}
	return c, nil
}

// Encode returns the encoding of c together with its fingerprint.
func Encode(c *hir.Crate) ([]byte, Fingerprint, error) {
	var buf bytes.Buffer
	if err := Write(&buf, c); err != nil {
		return nil, Fingerprint{}, err
	}
	data := buf.Bytes()
	return data, Sum(data), nil
}

// Decode is Read over a byte slice.
func Decode(data []byte) (*hir.Crate, error) {
	return Read(bytes.NewReader(data))
}

// LoadFile reads an encoded crate from path.
func LoadFile(path string) (*hir.Crate, Fingerprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Fingerprint{}, err
	}
	c, err := Decode(data)
	if err != nil {
		return nil, Fingerprint{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, Sum(data), nil
}

// SaveFile writes c to path.
func SaveFile(path string, c *hir.Crate) (Fingerprint, error) {
	data, fp, err := Encode(c)
	if err != nil {
		return Fingerprint{}, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Fingerprint{}, err
	}
	return fp, nil
}
