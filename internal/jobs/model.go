package jobs

import "time"

// Job status values.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Job is a posted job listing.
type Job struct {
	ID          string
	Title       string
	Company     string
	Location    string
	Description string
	Status      string
	CreatedAt   time.Time
}

// Application records a user applying to a job with one of their resumes.
type Application struct {
	ID        string
	JobID     string
	UserID    string
	ResumeID  string
	CreatedAt time.Time
}
