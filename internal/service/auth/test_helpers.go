package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// mustHash bcrypt-hashes a password at min cost for test fixtures.
func mustHash(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}
	return string(hashed)
}
