package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt ile şifre hash'i üretir. Admin hash'ini üretmek için
// yardımcı araçlardan çağrılır.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func verifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
