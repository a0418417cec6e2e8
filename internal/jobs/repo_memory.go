package jobs

import (
	"context"
	"sort"
	"sync"
)

// MemoryJobsRepo stores jobs in memory and is safe for concurrent use.
type MemoryJobsRepo struct {
	mu   sync.RWMutex
	byID map[string]Job
}

// NewMemoryJobsRepo constructs a MemoryJobsRepo.
func NewMemoryJobsRepo() *MemoryJobsRepo {
	return &MemoryJobsRepo{byID: make(map[string]Job)}
}

// Create stores the job.
func (r *MemoryJobsRepo) Create(ctx context.Context, job Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[job.ID] = job
	return nil
}

// GetByID returns a job by ID.
func (r *MemoryJobsRepo) GetByID(ctx context.Context, jobID string) (Job, error) {
	if err := ctx.Err(); err != nil {
		return Job{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.byID[jobID]
	if !ok {
		return Job{}, ErrNotFound
	}
	return job, nil
}

// ListOpen returns open jobs, newest first, with limit/offset.
func (r *MemoryJobsRepo) ListOpen(ctx context.Context, limit, offset int) ([]Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	open := make([]Job, 0, len(r.byID))
	for _, job := range r.byID {
		if job.Status == StatusOpen {
			open = append(open, job)
		}
	}
	r.mu.RUnlock()

	sort.Slice(open, func(i, j int) bool {
		return open[i].CreatedAt.After(open[j].CreatedAt)
	})

	if offset >= len(open) {
		return []Job{}, nil
	}
	end := len(open)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return open[offset:end], nil
}

// MemoryApplicationsRepo stores applications in memory and is safe for
// concurrent use.
type MemoryApplicationsRepo struct {
	mu     sync.RWMutex
	byID   map[string]Application
	byUser map[string][]Application
}

// NewMemoryApplicationsRepo constructs a MemoryApplicationsRepo.
func NewMemoryApplicationsRepo() *MemoryApplicationsRepo {
	return &MemoryApplicationsRepo{
		byID:   make(map[string]Application),
		byUser: make(map[string][]Application),
	}
}

// Create stores the application.
func (r *MemoryApplicationsRepo) Create(ctx context.Context, application Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[application.ID] = application
	r.byUser[application.UserID] = append(r.byUser[application.UserID], application)
	return nil
}

// Exists reports whether the user already applied to the job.
func (r *MemoryApplicationsRepo) Exists(ctx context.Context, jobID, userID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, application := range r.byUser[userID] {
		if application.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

// ListByUser returns a user's applications, newest first, with limit/offset.
func (r *MemoryApplicationsRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	userApplications := r.byUser[userID]
	r.mu.RUnlock()

	if len(userApplications) == 0 || offset >= len(userApplications) {
		return []Application{}, nil
	}

	applications := make([]Application, len(userApplications))
	copy(applications, userApplications)
	sort.Slice(applications, func(i, j int) bool {
		return applications[i].CreatedAt.After(applications[j].CreatedAt)
	})

	end := len(applications)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return applications[offset:end], nil
}

var (
	_ JobsRepo         = (*MemoryJobsRepo)(nil)
	_ ApplicationsRepo = (*MemoryApplicationsRepo)(nil)
)
