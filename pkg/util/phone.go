package util

import (
	"regexp"
	"strings"
)

// Algerian numbers: local 0XXXXXXXXX (mobile 05/06/07, landline 02/03/04)
// or international +213XXXXXXXXX
var algerianPhonePattern = regexp.MustCompile(`^0[2-7][0-9]{8}$`)

// NormalizePhone strips spaces, dots and dashes and rewrites the +213 prefix
// to the local 0 form
func NormalizePhone(phone string) string {
	cleaned := strings.NewReplacer(" ", "", "-", "", ".", "").Replace(strings.TrimSpace(phone))
	if strings.HasPrefix(cleaned, "+213") {
		cleaned = "0" + cleaned[4:]
	} else if strings.HasPrefix(cleaned, "00213") {
		cleaned = "0" + cleaned[5:]
	}
	return cleaned
}

// IsValidAlgerianPhone reports whether phone is a valid Algerian number
// after normalization
func IsValidAlgerianPhone(phone string) bool {
	return algerianPhonePattern.MatchString(NormalizePhone(phone))
}
