// Package password is the credential store: bcrypt hashing and verification.
// Plaintext passwords never travel past this package boundary — repositories
// only ever see the resulting hash.
package password

import "golang.org/x/crypto/bcrypt"

const cost = 12

// Hash applies bcrypt with a fresh salt; two calls with the same input
// produce different, independently verifiable hashes.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plain matches hash. It never returns an error for a
// simple mismatch; comparison is constant-time inside bcrypt.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
