package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher is the hashing capability boundary, shared by passwords
// and security answers.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

// BcryptHasher hashes with bcrypt at the default cost.
type BcryptHasher struct{}

func (BcryptHasher) Hash(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

func (BcryptHasher) Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
