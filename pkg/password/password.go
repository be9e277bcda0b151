// Package password hashea y verifica contraseñas de usuarios.
//
// Los hashes nuevos usan bcrypt. Verify también acepta los formatos heredados de la
// base de datos original (werkzeug): "pbkdf2:<alg>[:iter]$salt$hex" y "scrypt[:N:r:p]$salt$hex",
// para que los usuarios ya provisionados puedan seguir entrando sin reset de contraseña.
package password

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

const (
	defaultPBKDF2Iterations = 600000
	defaultScryptN          = 1 << 15
	defaultScryptR          = 8
	defaultScryptP          = 1
	scryptKeyLen            = 64
)

// ErrUnsupportedHash el hash almacenado no tiene un formato reconocido.
var ErrUnsupportedHash = errors.New("formato de hash no soportado")

// Hash genera un hash bcrypt con el costo por defecto.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", errors.New("senha vazia")
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(h), nil
}

// Verify compara plain contra el hash almacenado en tiempo constante.
// Devuelve false ante cualquier formato desconocido o malformado.
func Verify(stored, plain string) bool {
	ok, err := verify(stored, plain)
	return err == nil && ok
}

func verify(stored, plain string) (bool, error) {
	switch {
	case strings.HasPrefix(stored, "$2a$"), strings.HasPrefix(stored, "$2b$"), strings.HasPrefix(stored, "$2y$"):
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil, nil
	case strings.HasPrefix(stored, "pbkdf2:"), strings.HasPrefix(stored, "scrypt"):
		return verifyWerkzeug(stored, plain)
	default:
		return false, ErrUnsupportedHash
	}
}

// DummyCompare ejecuta una comparación bcrypt descartable; se usa cuando el email no existe
// para que el tiempo de respuesta no revele qué cuentas existen.
func DummyCompare(plain string) {
	dummyOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("sistema-estoque/dummy"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(plain))
}

var (
	dummyOnce sync.Once
	dummyHash []byte
)

func verifyWerkzeug(stored, plain string) (bool, error) {
	parts := strings.SplitN(stored, "$", 3)
	if len(parts) != 3 {
		return false, ErrUnsupportedHash
	}
	method, salt, expectedHex := parts[0], parts[1], parts[2]
	expected, err := hex.DecodeString(expectedHex)
	if err != nil {
		return false, ErrUnsupportedHash
	}

	var got []byte
	args := strings.Split(method, ":")
	switch args[0] {
	case "pbkdf2":
		got, err = pbkdf2Key(args[1:], salt, plain)
	case "scrypt":
		got, err = scryptKey(args[1:], salt, plain)
	default:
		return false, ErrUnsupportedHash
	}
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(got, expected) == 1, nil
}

func pbkdf2Key(args []string, salt, plain string) ([]byte, error) {
	if len(args) == 0 {
		return nil, ErrUnsupportedHash
	}
	var h func() hash.Hash
	switch args[0] {
	case "sha1":
		h = sha1.New
	case "sha256":
		h = sha256.New
	case "sha512":
		h = sha512.New
	default:
		return nil, ErrUnsupportedHash
	}
	iterations := defaultPBKDF2Iterations
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			return nil, ErrUnsupportedHash
		}
		iterations = n
	}
	return pbkdf2.Key([]byte(plain), []byte(salt), iterations, h().Size(), h), nil
}

func scryptKey(args []string, salt, plain string) ([]byte, error) {
	n, r, p := defaultScryptN, defaultScryptR, defaultScryptP
	if len(args) == 3 {
		var err error
		if n, err = strconv.Atoi(args[0]); err != nil {
			return nil, ErrUnsupportedHash
		}
		if r, err = strconv.Atoi(args[1]); err != nil {
			return nil, ErrUnsupportedHash
		}
		if p, err = strconv.Atoi(args[2]); err != nil {
			return nil, ErrUnsupportedHash
		}
	} else if len(args) != 0 {
		return nil, ErrUnsupportedHash
	}
	key, err := scrypt.Key([]byte(plain), []byte(salt), n, r, p, scryptKeyLen)
	if err != nil {
		return nil, ErrUnsupportedHash
	}
	return key, nil
}
