package vault

import (
	"testing"
	"time"
)

func TestHealthReportEmpty(t *testing.T) {
	s := newTestStore(t)

	report, err := s.HealthReport()
	if err != nil {
		t.Fatalf("HealthReport failed: %v", err)
	}
	if report.Total != 0 || report.Weak != 0 || report.Reused != 0 || report.Old != 0 {
		t.Errorf("empty vault report = %+v", report)
	}
	if report.Score != 100 {
		t.Errorf("empty vault score = %d, want 100", report.Score)
	}
}

func TestHealthReportCounts(t *testing.T) {
	s := newTestStore(t)

	// Two weak duplicates and one strong unique password
	for _, pw := range []string{"abc123", "abc123", "Tr0ub4dor&9!XyZ"} {
		if _, err := s.Add(Draft{Website: "site", Password: pw}); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	report, err := s.HealthReport()
	if err != nil {
		t.Fatalf("HealthReport failed: %v", err)
	}

	if report.Total != 3 {
		t.Errorf("Total = %d, want 3", report.Total)
	}
	if report.Weak != 2 {
		t.Errorf("Weak = %d, want 2", report.Weak)
	}
	// A password appearing twice contributes 2, not 1
	if report.Reused != 2 {
		t.Errorf("Reused = %d, want 2", report.Reused)
	}
	if report.Old != 0 {
		t.Errorf("Old = %d, want 0", report.Old)
	}
	// 100 - 2*30/3 - 2*30/3 - 0
	if report.Score != 60 {
		t.Errorf("Score = %d, want 60", report.Score)
	}
}

func TestHealthReportOld(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Add(Draft{Website: "stale.example", Password: "Aa1!Aa1!Aa1!Aa1!"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := s.Add(Draft{Website: "fresh.example", Password: "Bb2@Bb2@Bb2@Bb2@"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Age the first entry past the 180-day cutoff
	s.entries[0].LastModified = time.Now().Add(-200 * 24 * time.Hour)

	report, err := s.HealthReport()
	if err != nil {
		t.Fatalf("HealthReport failed: %v", err)
	}
	if report.Old != 1 {
		t.Errorf("Old = %d, want 1", report.Old)
	}
}

func TestHealthReportWorstCase(t *testing.T) {
	s := newTestStore(t)

	// Every entry weak, reused and old: full deduction on all rules
	for i := 0; i < 4; i++ {
		if _, err := s.Add(Draft{Website: "site", Password: "weak"}); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	for i := range s.entries {
		s.entries[i].LastModified = time.Now().Add(-365 * 24 * time.Hour)
	}

	report, err := s.HealthReport()
	if err != nil {
		t.Fatalf("HealthReport failed: %v", err)
	}
	if report.Weak != 4 || report.Reused != 4 || report.Old != 4 {
		t.Fatalf("report = %+v", report)
	}
	// 100 - 30 - 30 - 20
	if report.Score != 20 {
		t.Errorf("Score = %d, want 20", report.Score)
	}
}
