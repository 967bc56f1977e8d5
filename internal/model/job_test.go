package model

import (
	"testing"
	"time"
)

func TestConversionJob_Elapsed(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	job := ConversionJob{StartedAt: start, FinishedAt: start.Add(90 * time.Second)}

	if job.Elapsed() != 90*time.Second {
		t.Errorf("Elapsed() = %v, expected 1m30s", job.Elapsed())
	}

	if (ConversionJob{}).Elapsed() != 0 {
		t.Error("Elapsed() of an unstarted job should be zero")
	}
}
