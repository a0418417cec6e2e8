package jobs

import "context"

// JobsRepo defines persistence operations for job listings.
type JobsRepo interface {
	Create(ctx context.Context, job Job) error
	GetByID(ctx context.Context, jobID string) (Job, error)
	ListOpen(ctx context.Context, limit, offset int) ([]Job, error)
}

// ApplicationsRepo defines persistence operations for job applications.
type ApplicationsRepo interface {
	Create(ctx context.Context, application Application) error
	Exists(ctx context.Context, jobID, userID string) (bool, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Application, error)
}
