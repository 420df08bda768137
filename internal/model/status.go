package model

// BatchState represents the lifecycle phase of a download batch
type BatchState string

const (
	// BatchStateIdle means no batch is being validated or running
	BatchStateIdle BatchState = "Idle"

	// BatchStateDispatching means the inputs are being validated and jobs built
	BatchStateDispatching BatchState = "Dispatching"

	// BatchStateRunning means at least one worker of the batch is in flight
	BatchStateRunning BatchState = "Running"

	// BatchStateComplete means every job of the batch has recorded a result
	BatchStateComplete BatchState = "Complete"
)

// String returns the string representation of BatchState
func (bs BatchState) String() string {
	return string(bs)
}

// IsActive returns true if the batch is in an active state
func (bs BatchState) IsActive() bool {
	return bs == BatchStateDispatching || bs == BatchStateRunning
}

// IsFinished returns true if the batch has produced its summary
func (bs BatchState) IsFinished() bool {
	return bs == BatchStateComplete
}

// ResultStatus is the terminal outcome of a single job
type ResultStatus string

const (
	ResultSuccess ResultStatus = "Success"
	ResultFailed  ResultStatus = "Failed"
)

// String returns the string representation of ResultStatus
func (rs ResultStatus) String() string {
	return string(rs)
}
