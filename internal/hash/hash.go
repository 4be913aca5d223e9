package hash

import "golang.org/x/crypto/bcrypt"

// Cost is the bcrypt work factor for every stored password.
const Cost = 10

func HashPassword(password string) (string, error) {
	hashbytes, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", err
	}

	return string(hashbytes), nil
}

// CheckPassword never errors: a malformed hash is just a mismatch.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
