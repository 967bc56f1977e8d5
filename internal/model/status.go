package model

// JobStatus represents the lifecycle state of a conversion job
type JobStatus string

const (
	// JobStatusPending means the job was created but the transcoder is not running yet
	JobStatusPending JobStatus = "Pending"

	// JobStatusRunning means the transcoder process is running
	JobStatusRunning JobStatus = "Running"

	// JobStatusCancelling means a cancel was requested and the process has not exited yet
	JobStatusCancelling JobStatus = "Cancelling"

	// JobStatusCompleted means the transcoder exited successfully
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusFailed means the transcoder reported an error without a cancel request
	JobStatusFailed JobStatus = "Failed"

	// JobStatusCancelled means the job was terminated at the user's request
	JobStatusCancelled JobStatus = "Cancelled"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true while the transcoder process may still be alive
func (js JobStatus) IsActive() bool {
	return js == JobStatusPending || js == JobStatusRunning || js == JobStatusCancelling
}

// IsFinished returns true for the three terminal states
func (js JobStatus) IsFinished() bool {
	return js == JobStatusCompleted || js == JobStatusFailed || js == JobStatusCancelled
}
