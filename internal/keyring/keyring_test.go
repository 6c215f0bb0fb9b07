package keyring

import (
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGetSecret(t *testing.T) {
	gokeyring.MockInit()

	testSecret := "a1b2c3d4e5f6"

	if err := SetSecret(testSecret); err != nil {
		t.Fatalf("SetSecret() failed: %v", err)
	}

	retrieved, err := GetSecret()
	if err != nil {
		t.Fatalf("GetSecret() failed: %v", err)
	}
	if retrieved != testSecret {
		t.Errorf("GetSecret() = %q, want %q", retrieved, testSecret)
	}
}

func TestSetSecretEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := SetSecret(""); err == nil {
		t.Error("SetSecret(\"\") should return an error")
	}
}

func TestGetSecretNotFound(t *testing.T) {
	gokeyring.MockInit()

	// Ensure nothing is stored
	_ = DeleteSecret()

	if _, err := GetSecret(); err != ErrNotFound {
		t.Errorf("GetSecret() error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeleteSecret(t *testing.T) {
	gokeyring.MockInit()

	if err := SetSecret("to-be-deleted"); err != nil {
		t.Fatalf("SetSecret() failed: %v", err)
	}

	if err := DeleteSecret(); err != nil {
		t.Fatalf("DeleteSecret() failed: %v", err)
	}

	if _, err := GetSecret(); err != ErrNotFound {
		t.Errorf("After DeleteSecret(), GetSecret() error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeleteSecretNotFound(t *testing.T) {
	gokeyring.MockInit()

	_ = DeleteSecret()

	if err := DeleteSecret(); err != ErrNotFound {
		t.Errorf("DeleteSecret() error = %v, want %v", err, ErrNotFound)
	}
}

func TestIsAvailable(t *testing.T) {
	gokeyring.MockInit()

	// In mock mode, keyring should be available
	if !IsAvailable() {
		t.Error("IsAvailable() = false, want true in mock mode")
	}
}
