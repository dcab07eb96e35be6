// Package password hashea y verifica contraseñas. Los hashes nuevos son bcrypt;
// también se aceptan hashes pbkdf2-sha256 en formato passlib importados del
// sistema anterior ("$pbkdf2-sha256$<rounds>$<salt>$<checksum>").
package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

const pbkdf2Prefix = "$pbkdf2-sha256$"

var (
	// ErrMismatch indica que la contraseña no corresponde al hash.
	ErrMismatch = errors.New("password: no coincide")
	// ErrUnknownFormat indica un hash que no es bcrypt ni pbkdf2-sha256.
	ErrUnknownFormat = errors.New("password: formato de hash desconocido")
)

// Hash genera un hash bcrypt con el costo por defecto.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(h), nil
}

// Verify compara plain con hash. Devuelve ErrMismatch si no coinciden.
func Verify(hash, plain string) error {
	switch {
	case strings.HasPrefix(hash, pbkdf2Prefix):
		return verifyPBKDF2(hash, plain)
	case strings.HasPrefix(hash, "$2"):
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
			if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
				return ErrMismatch
			}
			return err
		}
		return nil
	default:
		return ErrUnknownFormat
	}
}

// NeedsRehash indica si el hash debería migrarse a bcrypt tras un login correcto.
func NeedsRehash(hash string) bool {
	return strings.HasPrefix(hash, pbkdf2Prefix)
}

func verifyPBKDF2(hash, plain string) error {
	parts := strings.Split(strings.TrimPrefix(hash, pbkdf2Prefix), "$")
	if len(parts) != 3 {
		return ErrUnknownFormat
	}
	rounds, err := strconv.Atoi(parts[0])
	if err != nil || rounds <= 0 {
		return ErrUnknownFormat
	}
	salt, err := decodeAB64(parts[1])
	if err != nil {
		return ErrUnknownFormat
	}
	want, err := decodeAB64(parts[2])
	if err != nil || len(want) == 0 {
		return ErrUnknownFormat
	}
	got := pbkdf2.Key([]byte(plain), salt, rounds, len(want), sha256.New)
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return ErrMismatch
	}
	return nil
}

// decodeAB64 decodifica la base64 "adaptada" de passlib: '.' en lugar de '+' y sin relleno.
func decodeAB64(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.ReplaceAll(s, ".", "+"))
}
