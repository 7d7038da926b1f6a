package api

import "golang.org/x/crypto/bcrypt"

// HashAdminKey derives a storable hash for a raw admin API key, so
// operators never need to keep the plaintext key in config after rotation.
func HashAdminKey(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// verifyAdminKey reports whether raw matches hash, produced by HashAdminKey.
func verifyAdminKey(hash, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
