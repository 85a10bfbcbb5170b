package common

import (
	"errors"
	"fmt"
	"testing"
)

// ---------- WipeByteArray ----------

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

// ---------- sentinels ----------

func TestSentinels_MatchThroughWrapping(t *testing.T) {
	for _, sentinel := range []error{ErrKeyRead, ErrKeyWrite, ErrDecryption, ErrStore, ErrorNotFound} {
		wrapped := fmt.Errorf("%w: extra context", sentinel)
		if !errors.Is(wrapped, sentinel) {
			t.Fatalf("errors.Is failed for %v", sentinel)
		}
	}
	if errors.Is(ErrKeyRead, ErrKeyWrite) {
		t.Fatalf("key read and key write errors must be distinct")
	}
}

func TestSeedUsers_ReferenceRows(t *testing.T) {
	if len(SeedUsers) != 2 {
		t.Fatalf("expected exactly two seed users, got %d", len(SeedUsers))
	}
	if SeedUsers[0].Email != "anna@test.se" || SeedUsers[1].Email != "bo@test.se" {
		t.Fatalf("unexpected seed emails: %+v", SeedUsers)
	}
}
