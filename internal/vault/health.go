package vault

import (
	"time"

	"github.com/live-labs/passvault/internal/strength"
)

// WeakScoreCutoff marks an entry's password as weak when its strength
// score falls below it.
const WeakScoreCutoff = 60

// OldAfter marks an entry as old when its last modification is further
// in the past. Six calendar months, approximated as 180 days.
const OldAfter = 180 * 24 * time.Hour

// Report aggregates credential health over the full entry set.
type Report struct {
	Total  int
	Weak   int // entries scoring below WeakScoreCutoff
	Reused int // sum of occurrence counts over passwords used more than once
	Old    int // entries not modified within OldAfter
	Score  int // overall security score, 0-100
}

// HealthReport computes the aggregate report. It goes through the same
// auto-lock gate as every other read: the counts alone leak information
// about a locked vault's contents.
func (s *Store) HealthReport() (Report, error) {
	if err := s.gate(); err != nil {
		return Report{}, err
	}

	report := Report{Total: len(s.entries)}
	passwordCount := make(map[string]int)
	now := time.Now()

	for _, e := range s.entries {
		if strength.Analyze(e.Password).Score < WeakScoreCutoff {
			report.Weak++
		}
		passwordCount[e.Password]++
		if now.Sub(e.LastModified) > OldAfter {
			report.Old++
		}
	}

	// A password used n>1 times contributes n, not n-1.
	for _, n := range passwordCount {
		if n > 1 {
			report.Reused += n
		}
	}

	report.Score = securityScore(report)
	return report, nil
}

// securityScore is the dashboard score: start from 100 and charge for
// weak, reused and old entries in proportion to the vault size.
func securityScore(r Report) int {
	if r.Total == 0 {
		return 100
	}
	score := 100
	score -= r.Weak * 30 / r.Total
	score -= r.Reused * 30 / r.Total
	score -= r.Old * 20 / r.Total
	if score < 0 {
		score = 0
	}
	return score
}
