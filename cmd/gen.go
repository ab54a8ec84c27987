package cmd

import (
	"fmt"
	"os"

	"github.com/live-labs/passvault/internal/generate"
	"github.com/live-labs/passvault/internal/strength"
)

const (
	// MinGenLength and MaxGenLength bound generated password lengths
	MinGenLength = 8
	MaxGenLength = 32
)

// ClampGenLength bounds a requested length to [MinGenLength, MaxGenLength]
func ClampGenLength(length int) int {
	if length < MinGenLength {
		return MinGenLength
	}
	if length > MaxGenLength {
		return MaxGenLength
	}
	return length
}

// Gen generates a random password and prints it along with its
// strength assessment.
func Gen(length int, classes generate.Classes) {
	password, err := generate.Password(ClampGenLength(length), classes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	fmt.Println(password)
	result := strength.Analyze(password)
	fmt.Fprintf(os.Stderr, "Strength: %s (%d/100), entropy %.1f bits\n",
		result.Strength, result.Score, result.Entropy)
}
