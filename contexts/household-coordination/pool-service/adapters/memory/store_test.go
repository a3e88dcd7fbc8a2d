package memory

import (
	"context"
	"strings"
	"testing"
)

func TestNewInviteCodeFormat(t *testing.T) {
	store := NewStore()

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		code, err := store.NewInviteCode(context.Background())
		if err != nil {
			t.Fatalf("NewInviteCode returned error: %v", err)
		}
		if len(code) != 9 || code[4] != '-' {
			t.Fatalf("expected XXXX-XXXX shape, got %q", code)
		}
		for _, r := range strings.ReplaceAll(code, "-", "") {
			if !strings.ContainsRune(inviteAlphabet, r) {
				t.Fatalf("code %q uses character outside the alphabet", code)
			}
		}
		seen[code] = struct{}{}
	}
	// 32^8 possibilities make a collision across 50 draws vanishingly unlikely.
	if len(seen) < 49 {
		t.Fatalf("codes look non-random, only %d distinct of 50", len(seen))
	}
}
