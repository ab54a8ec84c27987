package cmd

import (
	"fmt"
)

// Health prints the aggregate vault health report
func Health(path string) {
	s := UnlockOrExit(path)
	defer s.Lock()

	report, err := s.HealthReport()
	if err != nil {
		HandleError(err)
	}

	fmt.Printf("Entries:         %d\n", report.Total)
	fmt.Printf("Weak passwords:  %d\n", report.Weak)
	fmt.Printf("Reused:          %d\n", report.Reused)
	fmt.Printf("Old (>180 days): %d\n", report.Old)
	fmt.Printf("Security score:  %d/100\n", report.Score)
}
