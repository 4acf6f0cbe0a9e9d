package service

import (
	"errors"
	"testing"
)

func TestAdminService_Authenticate(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewAdminService(gdb)

	created, err := svc.EnsureAdmin("office", "s3cret-pass")
	if err != nil || !created {
		t.Fatalf("expected admin to be created, got created=%v err=%v", created, err)
	}
	created, err = svc.EnsureAdmin("office", "other-pass")
	if err != nil || created {
		t.Fatalf("second EnsureAdmin must be a no-op, got created=%v err=%v", created, err)
	}

	user, err := svc.Authenticate(" office ", "s3cret-pass")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.Username != "office" {
		t.Fatalf("unexpected user %q", user.Username)
	}

	for _, tc := range []struct{ user, pass string }{
		{"office", "other-pass"},
		{"nobody", "s3cret-pass"},
		{"", ""},
	} {
		if _, err := svc.Authenticate(tc.user, tc.pass); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("Authenticate(%q) expected ErrInvalidCredentials, got %v", tc.user, err)
		}
	}
}
