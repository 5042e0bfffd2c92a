package authorization

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/nabin00012/codecommons-sub000/internal/errdefs"
)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return errdefs.ErrAuthentication
	}
	return nil
}
