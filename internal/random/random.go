package random

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

var allowedLetters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

// Letters returns n random ASCII letters. It's used for naming throwaway in-memory databases.
func Letters(n uint) (string, error) {
	letters := make([]rune, n)
	for i := range letters {
		letterIndex, err := rand.Int(rand.Reader, big.NewInt(int64(len(allowedLetters))))
		if err != nil {
			return "", err //nolint:wrapcheck // crypto/rand errors are fatal anyway
		}
		letters[i] = allowedLetters[letterIndex.Int64()]
	}
	return string(letters), nil
}

const caseNumberSpace = 1_000_000

// CaseID returns a human-readable FIR case identifier of the form CASE-<year>-<6 digits>.
func CaseID(now time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(caseNumberSpace))
	if err != nil {
		return "", err //nolint:wrapcheck // crypto/rand errors are fatal anyway
	}
	return fmt.Sprintf("CASE-%d-%06d", now.Year(), n.Int64()), nil
}
