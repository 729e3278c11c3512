package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
)

//
// ===========================================================
//  ENV UTILITIES
// ===========================================================
//

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

//
// ===========================================================
//  ACCESS PIN
// ===========================================================
//

// PINLength is the number of digits in a guest access PIN.
const PINLength = 4

// GenerateAccessPIN returns an n-digit numeric PIN, e.g. "4829".
// Uses crypto/rand + rand.Int (math/big) to avoid modulo bias.
func GenerateAccessPIN(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid pin length")
	}
	var sb strings.Builder
	for i := 0; i < n; i++ {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		sb.WriteString(fmt.Sprintf("%d", d.Int64()))
	}
	return sb.String(), nil
}

//
// ===========================================================
//  GSTIN
// ===========================================================
//

// ValidateGSTIN accepts an empty GSTIN (not configured) or exactly 15
// characters.
func ValidateGSTIN(gstin string) error {
	g := strings.TrimSpace(gstin)
	if g == "" {
		return nil
	}
	if len(g) != 15 {
		return errors.New("gstin must be exactly 15 characters")
	}
	return nil
}
