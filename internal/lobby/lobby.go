// Package lobby parses the user-facing session command arguments: a region
// token and a 6-letter lobby code.
package lobby

import (
	"strings"

	"github.com/crewcord/crewcord/internal/models"
)

// CodeLength is the exact length of a lobby code.
const CodeLength = 6

// codeAlphabet is the restricted set of letters the game draws lobby codes
// from. Codes never contain letters outside it.
const codeAlphabet = "QWXRTYLPESDFGHUJKZOCVBINMA"

// ParseError is a user-visible parse failure
type ParseError string

// Error implements the error interface
func (e ParseError) Error() string {
	return string(e)
}

const (
	ErrUnknownRegion ParseError = "unknown region; try eu, na or asia"
	ErrBadCodeLength ParseError = "lobby codes are exactly 6 letters"
	ErrBadCodeSymbol ParseError = "that doesn't look like a lobby code; check it for typos"
)

// regionTokens maps every accepted region spelling to its region.
var regionTokens = map[string]models.Region{
	"eu":            models.RegionEurope,
	"europe":        models.RegionEurope,
	"na":            models.RegionNorthAmerica,
	"us":            models.RegionNorthAmerica,
	"usa":           models.RegionNorthAmerica,
	"america":       models.RegionNorthAmerica,
	"north america": models.RegionNorthAmerica,
	"as":            models.RegionAsia,
	"asia":          models.RegionAsia,
}

// ParseRegion matches token case-insensitively against the accepted region
// vocabulary.
func ParseRegion(token string) (models.Region, error) {
	region, ok := regionTokens[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return "", ErrUnknownRegion
	}
	return region, nil
}

// NormalizeCode validates a lobby code and returns it upper-cased.
func NormalizeCode(code string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if len(normalized) != CodeLength {
		return "", ErrBadCodeLength
	}
	for _, r := range normalized {
		if !strings.ContainsRune(codeAlphabet, r) {
			return "", ErrBadCodeSymbol
		}
	}
	return normalized, nil
}
