package linkkeep

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"golang.org/x/crypto/argon2"
)

// argon2id parameters; hashing is deliberately memory-expensive.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	argonSaltLen = 16
)

// ErrMismatchedHashAndPassword is the verification failure signal; the
// auth flow translates it before it reaches a client.
var ErrMismatchedHashAndPassword = goerrors.New("hash and password mismatch", goerrors.CategoryAuth).
	WithCode(goerrors.CodeForbidden)

// HashPassword will generate an argon2id hash with a fresh random salt.
// The salt and parameters are embedded in the output, so the hash is
// self-contained.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrNoEmptyString
	}

	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "failed to generate salt")
	}

	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// ComparePasswordAndHash will validate the given cleartext password
// against an encoded argon2id hash. The comparison is constant time.
func ComparePasswordAndHash(password, hash string) error {
	salt, key, memory, time, threads, err := decodeArgonHash(hash)
	if err != nil {
		return err
	}

	derived := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(key)))

	if subtle.ConstantTimeCompare(key, derived) != 1 {
		return ErrMismatchedHashAndPassword
	}
	return nil
}

func decodeArgonHash(hash string) (salt, key []byte, memory, time uint32, threads uint8, err error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, goerrors.New("malformed password hash", goerrors.CategoryInternal)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, 0, 0, 0, goerrors.Wrap(err, goerrors.CategoryInternal, "malformed password hash version")
	}
	if version != argon2.Version {
		return nil, nil, 0, 0, 0, goerrors.New("unsupported argon2 version", goerrors.CategoryInternal)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return nil, nil, 0, 0, 0, goerrors.Wrap(err, goerrors.CategoryInternal, "malformed password hash parameters")
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, goerrors.Wrap(err, goerrors.CategoryInternal, "malformed password hash salt")
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, 0, 0, 0, goerrors.Wrap(err, goerrors.CategoryInternal, "malformed password hash key")
	}

	return salt, key, memory, time, threads, nil
}
