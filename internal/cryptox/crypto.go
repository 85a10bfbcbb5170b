// Package cryptox implements the email field cipher: a symmetric key type and
// a codec that turns plaintext strings into authenticated, self-describing
// tokens and back.
//
// Tokens are Fernet tokens (github.com/fernet/fernet-go), so values written
// by earlier deployments of the tool remain readable.
package cryptox

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/dmitrijs2005/piiguard/internal/common"
)

const (
	// KeySize is the length of raw key material: 16 bytes signing key
	// followed by 16 bytes encryption key.
	KeySize = 32

	tokenVersion byte = 0x80
	// minTokenLen is version, timestamp, IV, one cipher block and the MAC.
	minTokenLen = 1 + 8 + 16 + 16 + 32
)

var (
	// ErrInvalidKeySize is returned when raw key material is not KeySize bytes.
	ErrInvalidKeySize = errors.New("invalid key size")
	// ErrInvalidKey is returned when a textual key cannot be decoded.
	ErrInvalidKey = errors.New("invalid key")
	// ErrEmptyPlaintext is returned by Encrypt for an empty string, which
	// fernet-go cannot tell apart from a failed verification on the way back.
	ErrEmptyPlaintext = errors.New("empty plaintext")
)

// tokenEncoding is strict so that flipping unused trailing bits of the last
// character is rejected instead of decoding to the same bytes.
var tokenEncoding = base64.URLEncoding.Strict()

// Key is raw key material. It is immutable once constructed.
type Key struct {
	k fernet.Key
}

// NewKey copies raw into a Key.
func NewKey(raw []byte) (Key, error) {
	var k Key
	if len(raw) != KeySize {
		return k, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidKeySize, KeySize, len(raw))
	}
	copy(k.k[:], raw)
	return k, nil
}

// GenerateKey returns fresh random key material.
func GenerateKey() Key {
	var k Key
	if err := k.k.Generate(); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(fmt.Sprintf("generate key: %v", err))
	}
	return k
}

// ParseKey decodes the textual key form produced by Key.String.
// Leading and trailing whitespace is ignored.
func ParseKey(s string) (Key, error) {
	fk, err := fernet.DecodeKey(strings.TrimSpace(s))
	if err != nil {
		return Key{}, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return Key{k: *fk}, nil
}

// String returns the key as URL-safe base64 with padding (44 characters).
// This is the on-disk form.
func (k Key) String() string {
	return k.k.Encode()
}

// Bytes returns a copy of the raw key material.
func (k Key) Bytes() []byte {
	out := make([]byte, KeySize)
	copy(out, k.k[:])
	return out
}

// Codec encrypts and decrypts string fields under a single Key.
// It holds no mutable state and is safe to share.
type Codec struct {
	keys []*fernet.Key
}

// NewCodec builds a Codec from key material.
func NewCodec(key Key) (*Codec, error) {
	fk := key.k
	return &Codec{keys: []*fernet.Key{&fk}}, nil
}

// Encrypt seals plaintext into a token.
//
// A new random IV is generated for every call, so encrypting the same
// plaintext twice yields different tokens. Encrypting a value that is already
// a token is allowed and produces a nested token; decrypting it once returns
// the inner token.
//
// Example:
//
//	codec, _ := cryptox.NewCodec(cryptox.GenerateKey())
//	token, err := codec.Encrypt("anna@test.se")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(token) // gAAAAAB...==
func (c *Codec) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPlaintext
	}
	tok, err := fernet.EncryptAndSign([]byte(plaintext), c.keys[0])
	if err != nil {
		return "", fmt.Errorf("failed to encrypt: %w", err)
	}
	return string(tok), nil
}

// Decrypt verifies token and returns the plaintext it carries.
// Every failure wraps common.ErrDecryption.
func (c *Codec) Decrypt(token string) (string, error) {
	pt, _, err := c.DecryptWithTime(token)
	return pt, err
}

// DecryptWithTime verifies token once and returns both the plaintext and the
// encryption time embedded in it.
//
// Every failure wraps common.ErrDecryption: malformed encoding, truncated
// data, an unknown version byte, a MAC mismatch (wrong key, corruption or
// input that was never a token) and bad padding. Plaintext is returned only
// after the MAC has verified.
func (c *Codec) DecryptWithTime(token string) (string, time.Time, error) {
	data, err := tokenEncoding.DecodeString(token)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: token is not url-safe base64", common.ErrDecryption)
	}
	if len(data) < minTokenLen {
		return "", time.Time{}, fmt.Errorf("%w: token has invalid length %d", common.ErrDecryption, len(data))
	}
	if data[0] != tokenVersion {
		return "", time.Time{}, fmt.Errorf("%w: unknown token version 0x%02x", common.ErrDecryption, data[0])
	}

	// ttl 0 disables expiry; stored emails never expire.
	pt := fernet.VerifyAndDecrypt([]byte(token), 0, c.keys)
	if pt == nil {
		return "", time.Time{}, fmt.Errorf("%w: integrity check failed", common.ErrDecryption)
	}

	ts := time.Unix(int64(binary.BigEndian.Uint64(data[1:9])), 0).UTC()
	return string(pt), ts, nil
}

// Timestamp returns the encryption time embedded in token, after verifying it.
func (c *Codec) Timestamp(token string) (time.Time, error) {
	_, ts, err := c.DecryptWithTime(token)
	return ts, err
}

// LooksLikeToken reports whether value has the surface shape of a token:
// no "@" and at least one "=". It is a heuristic for diagnostics only and must
// not be used to decide whether a value needs encrypting.
//
// A token carries "=" padding only when its byte length is not a multiple of
// three. Plaintexts of 32 to 47 bytes (and every further 48-byte step) encrypt
// to tokens without padding, so LooksLikeToken reports false for them even
// though they are valid tokens.
func LooksLikeToken(value string) bool {
	return !strings.Contains(value, "@") && strings.Contains(value, "=")
}
