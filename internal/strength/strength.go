// Package strength scores passwords and estimates their entropy.
//
// Scoring is additive over length thresholds and observed character
// classes; the entropy estimate is length * log2(charset) where the
// charset size is summed from the classes actually present. It is an
// approximation from observed classes, not true information entropy.
package strength

import (
	"math"
)

// Strength is the human-readable bucket for a score
type Strength string

const (
	Weak       Strength = "Weak"
	Fair       Strength = "Fair"
	Good       Strength = "Good"
	Strong     Strength = "Strong"
	VeryStrong Strength = "Very Strong"
)

// Result describes a single password analysis
type Result struct {
	Score    int
	Strength Strength
	Entropy  float64  // approximate bits
	Feedback []string // ordered suggestions, or one affirmative line
}

// Per-class charset sizes used for the entropy estimate
const (
	upperSetSize  = 26
	lowerSetSize  = 26
	digitSetSize  = 10
	symbolSetSize = 32
)

// Analyze scores a password. Deterministic, no I/O.
func Analyze(password string) Result {
	length := len(password)
	var hasUpper, hasLower, hasDigit, hasSymbol bool

	for _, c := range password {
		switch {
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= '0' && c <= '9':
			hasDigit = true
		case isSymbol(c):
			hasSymbol = true
		}
	}

	score := 0
	if length >= 8 {
		score += 20
	}
	if length >= 12 {
		score += 15
	}
	if length >= 16 {
		score += 15
	}
	if hasUpper {
		score += 15
	}
	if hasLower {
		score += 15
	}
	if hasDigit {
		score += 10
	}
	if hasSymbol {
		score += 10
	}

	charset := 0
	if hasUpper {
		charset += upperSetSize
	}
	if hasLower {
		charset += lowerSetSize
	}
	if hasDigit {
		charset += digitSetSize
	}
	if hasSymbol {
		charset += symbolSetSize
	}

	entropy := 0.0
	if charset > 0 {
		entropy = float64(length) * math.Log2(float64(charset))
	}

	var feedback []string
	if length < 8 {
		feedback = append(feedback, "Use at least 8 characters")
	}
	if length < 12 {
		feedback = append(feedback, "Consider using 12 or more characters")
	}
	if !hasUpper {
		feedback = append(feedback, "Add uppercase letters")
	}
	if !hasLower {
		feedback = append(feedback, "Add lowercase letters")
	}
	if !hasDigit {
		feedback = append(feedback, "Add digits")
	}
	if !hasSymbol {
		feedback = append(feedback, "Add symbols")
	}
	if len(feedback) == 0 {
		feedback = append(feedback, "Excellent password")
	}

	return Result{
		Score:    score,
		Strength: bucket(score),
		Entropy:  entropy,
		Feedback: feedback,
	}
}

func bucket(score int) Strength {
	switch {
	case score < 40:
		return Weak
	case score < 60:
		return Fair
	case score < 75:
		return Good
	case score < 90:
		return Strong
	default:
		return VeryStrong
	}
}

// isSymbol reports whether c is ASCII punctuation, matching the 32
// characters the symbolSetSize estimate assumes.
func isSymbol(c rune) bool {
	switch {
	case c >= '!' && c <= '/':
		return true
	case c >= ':' && c <= '@':
		return true
	case c >= '[' && c <= '`':
		return true
	case c >= '{' && c <= '~':
		return true
	}
	return false
}
