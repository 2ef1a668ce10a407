package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when a username does not exist, so that
// login latency does not reveal which usernames are registered.
var dummyHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("memograph-timing-pad"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to precompute dummy hash: %v", err))
	}
	return h
}()

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(h), nil
}

// CheckPassword reports whether the password matches the stored hash.
// An empty hash still burns a full bcrypt comparison.
func CheckPassword(hash, password string) bool {
	h := []byte(hash)
	if hash == "" {
		h = dummyHash
	}
	return bcrypt.CompareHashAndPassword(h, []byte(password)) == nil && hash != ""
}
