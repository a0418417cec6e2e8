package jobs

import "time"

// JobResponse is the outward-facing representation of a job listing.
type JobResponse struct {
	JobID       string    `json:"jobId"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	PostedAt    time.Time `json:"postedAt"`
}

// ApplicationResponse is the outward-facing representation of an application.
type ApplicationResponse struct {
	ApplicationID string    `json:"applicationId"`
	JobID         string    `json:"jobId"`
	ResumeID      string    `json:"resumeId"`
	AppliedAt     time.Time `json:"appliedAt"`
}

func toJobResponse(job Job) JobResponse {
	return JobResponse{
		JobID:       job.ID,
		Title:       job.Title,
		Company:     job.Company,
		Location:    job.Location,
		Description: job.Description,
		Status:      job.Status,
		PostedAt:    job.CreatedAt,
	}
}

func toApplicationResponse(application Application) ApplicationResponse {
	return ApplicationResponse{
		ApplicationID: application.ID,
		JobID:         application.JobID,
		ResumeID:      application.ResumeID,
		AppliedAt:     application.CreatedAt,
	}
}
