package auth

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 8

// Password policy violations.
var (
	ErrPasswordTooShort = errors.New("password too short")
	ErrPasswordNumeric  = errors.New("password entirely numeric")
	ErrPasswordCommon   = errors.New("password too common")
	ErrPasswordLikeUser = errors.New("password too similar to username")
)

var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password123": {}, "12345678": {}, "123456789": {},
	"1234567890": {}, "qwertyuiop": {}, "qwerty123": {}, "iloveyou": {}, "sunshine": {},
	"princess": {}, "football": {}, "baseball": {}, "welcome1": {}, "abc12345": {},
	"contraseña": {}, "contrasena": {}, "superman": {}, "trustno1": {}, "letmein1": {},
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// ValidatePassword applies the account password policy and returns every
// violated rule.
func ValidatePassword(password, username string) []error {
	var errs []error

	lowered := strings.ToLower(password)
	if username != "" && len(username) >= 3 && strings.Contains(lowered, strings.ToLower(username)) {
		errs = append(errs, ErrPasswordLikeUser)
	}
	if len([]rune(password)) < MinPasswordLength {
		errs = append(errs, ErrPasswordTooShort)
	}
	if _, ok := commonPasswords[lowered]; ok {
		errs = append(errs, ErrPasswordCommon)
	}
	if password != "" && strings.IndexFunc(password, func(r rune) bool { return !unicode.IsDigit(r) }) == -1 {
		errs = append(errs, ErrPasswordNumeric)
	}
	return errs
}
