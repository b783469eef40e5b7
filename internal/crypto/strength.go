package crypto

import "strings"

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// MinPasswordLength is the minimum accepted length for new passwords.
	MinPasswordLength = 8

	// MinStrengthScore is the lowest score accepted when changing a password.
	MinStrengthScore = 3
)

// Strength summarizes how strong a candidate password is. Score ranges
// from 0 to 5: one point each for sufficient length, a lowercase letter,
// an uppercase letter, a digit, and a symbol.
type Strength struct {
	Score    int
	Feedback []string
}

// CheckStrength scores a candidate password.
func CheckStrength(password string) Strength {
	var s Strength

	checks := []struct {
		ok   bool
		hint string
	}{
		{len(password) >= MinPasswordLength, "at least 8 characters"},
		{strings.ContainsAny(password, lowercaseChars), "a lowercase letter"},
		{strings.ContainsAny(password, uppercaseChars), "an uppercase letter"},
		{strings.ContainsAny(password, numberChars), "a number"},
		{strings.ContainsAny(password, symbolChars), "a special character"},
	}

	for _, c := range checks {
		if c.ok {
			s.Score++
		} else {
			s.Feedback = append(s.Feedback, c.hint)
		}
	}

	return s
}
