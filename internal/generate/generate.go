// Package generate produces random passwords from selectable character
// pools. Output characters are drawn independently and uniformly with a
// cryptographically secure source; generated values are secrets, so a
// general-purpose PRNG is not acceptable here.
package generate

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Character pools
const (
	UpperPool  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowerPool  = "abcdefghijklmnopqrstuvwxyz"
	DigitPool  = "0123456789"
	SymbolPool = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Classes selects which pools make up the working alphabet
type Classes struct {
	Upper   bool
	Lower   bool
	Digits  bool
	Symbols bool
}

// AllClasses enables every pool
func AllClasses() Classes {
	return Classes{Upper: true, Lower: true, Digits: true, Symbols: true}
}

// alphabet assembles the working alphabet. With no class selected it
// falls back to the lowercase pool rather than an empty alphabet.
func (c Classes) alphabet() string {
	var charset string
	if c.Upper {
		charset += UpperPool
	}
	if c.Lower {
		charset += LowerPool
	}
	if c.Digits {
		charset += DigitPool
	}
	if c.Symbols {
		charset += SymbolPool
	}
	if charset == "" {
		charset = LowerPool
	}
	return charset
}

// Password generates a random password of the given length. Sampling is
// with replacement: repeats are allowed and selected classes are not
// guaranteed to all appear. Length bounds are the caller's concern.
func Password(length int, classes Classes) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("negative length %d", length)
	}

	charset := classes.alphabet()
	poolSize := big.NewInt(int64(len(charset)))

	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(rand.Reader, poolSize)
		if err != nil {
			return "", fmt.Errorf("failed to draw random index: %w", err)
		}
		password[i] = charset[n.Int64()]
	}

	return string(password), nil
}
