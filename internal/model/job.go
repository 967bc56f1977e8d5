package model

import "time"

// ConversionJob is a point-in-time view of one transcoder invocation
type ConversionJob struct {
	ID         string
	SourcePath string
	Format     Format
	TargetPath string
	Status     JobStatus
	Percent    int    // 0 to 100, as last reported by the transcoder
	LastError  string // error detail for failed jobs
	StartedAt  time.Time
	FinishedAt time.Time
}

// Elapsed returns how long the job ran, or has been running so far
func (j ConversionJob) Elapsed() time.Duration {
	if j.StartedAt.IsZero() {
		return 0
	}
	if j.FinishedAt.IsZero() {
		return time.Since(j.StartedAt)
	}
	return j.FinishedAt.Sub(j.StartedAt)
}
