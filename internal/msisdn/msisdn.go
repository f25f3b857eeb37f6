package msisdn

import (
	"regexp"
	"strings"

	"github.com/kelvinjuma/airtime-recharge-service/internal/domain"
)

// A subscriber number is 9 digits starting with 7, 8 or 9, optionally
// preceded by one of the "0", "254" or "+254" prefixes.
var phoneRegex = regexp.MustCompile(`^(?:254|\+254|0)?([7-9]\d{8})$`)

const countryPrefix = "254"

// IsValid checks the raw input against the subscriber-number shape.
// Validation runs on the raw string, before any normalization.
func IsValid(raw string) bool {
	return phoneRegex.MatchString(raw)
}

// Normalize canonicalizes a raw phone number to the 254XXXXXXXXX wire
// format. Returns ErrInvalidFormat when the raw input does not match the
// subscriber-number shape.
func Normalize(raw string) (string, error) {
	if !IsValid(raw) {
		return "", domain.ErrInvalidFormat
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)

	if strings.HasPrefix(digits, countryPrefix) {
		digits = strings.TrimPrefix(digits, countryPrefix)
	} else {
		digits = strings.TrimPrefix(digits, "0")
	}

	return countryPrefix + digits, nil
}
