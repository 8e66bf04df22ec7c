package user

import "golang.org/x/crypto/bcrypt"

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// storedCredential produces the value persisted for a password. Customer
// passwords are bcrypt-hashed; merchant passwords are stored as given.
// The merchant branch is a known security defect kept for behavioural
// parity with existing accounts (see DESIGN.md).
func storedCredential(role Role, password string) (string, error) {
	if role == RoleMerchant {
		return password, nil
	}
	return HashPassword(password)
}

// verifyCredential checks a presented password against the stored value
// using the same per-role strategy.
func verifyCredential(role Role, password, stored string) bool {
	if role == RoleMerchant {
		return password == stored
	}
	return CheckPasswordHash(password, stored)
}
