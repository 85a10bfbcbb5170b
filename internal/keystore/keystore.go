// Package keystore provisions the process-wide symmetric key.
//
// The key lives in a single file holding its textual form (see cryptox.Key).
// The first call for a location creates the file; every later call, in this
// or any other process, returns the same bytes. Losing the file makes every
// token written under it unreadable, so errors here are fatal to callers and
// never replaced with an in-memory key.
package keystore

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/piiguard/internal/common"
	"github.com/dmitrijs2005/piiguard/internal/cryptox"
	"github.com/dmitrijs2005/piiguard/internal/filex"
)

const (
	dirPerm  os.FileMode = 0o700
	filePerm os.FileMode = 0o600
)

// Obtain returns the key stored at path, creating it on first use.
//
// Errors wrap common.ErrKeyRead when an existing file cannot be read or does
// not hold a valid key, and common.ErrKeyWrite when the parent directory or
// the new file cannot be created.
func Obtain(path string) (cryptox.Key, error) {
	exists, err := filex.Exists(path)
	if err != nil {
		return cryptox.Key{}, fmt.Errorf("%w: stat %s: %w", common.ErrKeyRead, path, err)
	}
	if exists {
		return load(path)
	}

	key, err := create(path)
	if errors.Is(err, os.ErrExist) {
		// Lost a creation race; the winner's key is the one to use.
		return load(path)
	}
	return key, err
}

func load(path string) (cryptox.Key, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cryptox.Key{}, fmt.Errorf("%w: %w", common.ErrKeyRead, err)
	}
	defer common.WipeByteArray(data)

	key, err := cryptox.ParseKey(string(data))
	if err != nil {
		return cryptox.Key{}, fmt.Errorf("%w: %s: %w", common.ErrKeyRead, path, err)
	}
	return key, nil
}

func create(path string) (cryptox.Key, error) {
	if err := filex.EnsureParentDir(path, dirPerm); err != nil {
		return cryptox.Key{}, fmt.Errorf("%w: %w", common.ErrKeyWrite, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return cryptox.Key{}, err
		}
		return cryptox.Key{}, fmt.Errorf("%w: %w", common.ErrKeyWrite, err)
	}

	key := cryptox.GenerateKey()
	if _, err := f.WriteString(key.String()); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return cryptox.Key{}, fmt.Errorf("%w: write %s: %w", common.ErrKeyWrite, path, err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return cryptox.Key{}, fmt.Errorf("%w: sync %s: %w", common.ErrKeyWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return cryptox.Key{}, fmt.Errorf("%w: close %s: %w", common.ErrKeyWrite, path, err)
	}

	return key, nil
}

// Fingerprint returns the first 8 bytes of SHA-256 over the key, hex encoded.
// It identifies a key in logs without revealing it.
func Fingerprint(key cryptox.Key) string {
	sum := sha256.Sum256(key.Bytes())
	return hex.EncodeToString(sum[:8])
}
