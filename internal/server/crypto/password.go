// Хэширование паролей (bcrypt)
package crypto

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost — cost по умолчанию (10 раундов).
const DefaultBcryptCost = 10

// MaxPasswordBytes — bcrypt учитывает не больше 72 байт пароля.
const MaxPasswordBytes = 72

// ErrPasswordTooLong — пароль длиннее MaxPasswordBytes.
var ErrPasswordTooLong = errors.New("password is longer than 72 bytes")

// HashPassword возвращает bcrypt-хэш пароля. Соль случайная для каждого вызова
// и хранится внутри самого хэша.
func HashPassword(password string, cost int) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("empty password")
	}
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	if cost == 0 {
		cost = DefaultBcryptCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword сравнивает пароль с хэшем.
//
// Несовпадение пароля — это (false, nil); ошибка возвращается только
// если сам хэш испорчен.
func VerifyPassword(password, hash string) (bool, error) {
	// такой пароль не мог быть захэширован
	if len(password) > MaxPasswordBytes {
		return false, nil
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
