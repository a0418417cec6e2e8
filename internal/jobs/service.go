package jobs

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobboard-backend/internal/resumes"
)

// Service contains business logic for job listings and applications.
type Service struct {
	Jobs         JobsRepo
	Applications ApplicationsRepo
	Resumes      resumes.Repo
}

// ListOpen returns open job listings newest-first.
func (s *Service) ListOpen(ctx context.Context, limit, offset int) ([]Job, error) {
	return s.Jobs.ListOpen(ctx, limit, offset)
}

// Get returns a job by ID.
func (s *Service) Get(ctx context.Context, jobID string) (Job, error) {
	if jobID == "" {
		return Job{}, ErrInvalidInput
	}
	return s.Jobs.GetByID(ctx, jobID)
}

// Post creates an open job listing.
func (s *Service) Post(ctx context.Context, title, company, location, description string) (Job, error) {
	title = strings.TrimSpace(title)
	company = strings.TrimSpace(company)
	if title == "" || company == "" {
		return Job{}, ErrInvalidInput
	}

	job := Job{
		ID:          uuid.NewString(),
		Title:       title,
		Company:     company,
		Location:    strings.TrimSpace(location),
		Description: strings.TrimSpace(description),
		Status:      StatusOpen,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Jobs.Create(ctx, job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// Apply records a user's application to an open job using one of their
// stored resumes.
func (s *Service) Apply(ctx context.Context, userID, jobID, resumeID string) (Application, error) {
	if userID == "" || jobID == "" || resumeID == "" {
		return Application{}, ErrInvalidInput
	}

	job, err := s.Jobs.GetByID(ctx, jobID)
	if err != nil {
		return Application{}, err
	}
	if job.Status != StatusOpen {
		return Application{}, ErrJobClosed
	}

	// The resume must exist and belong to the applicant.
	if _, err := s.Resumes.GetByID(ctx, userID, resumeID); err != nil {
		if errors.Is(err, resumes.ErrNotFound) || errors.Is(err, resumes.ErrForbidden) {
			return Application{}, ErrInvalidInput
		}
		return Application{}, err
	}

	applied, err := s.Applications.Exists(ctx, jobID, userID)
	if err != nil {
		return Application{}, err
	}
	if applied {
		return Application{}, ErrAlreadyApplied
	}

	application := Application{
		ID:        uuid.NewString(),
		JobID:     jobID,
		UserID:    userID,
		ResumeID:  resumeID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Applications.Create(ctx, application); err != nil {
		return Application{}, err
	}
	return application, nil
}

// ListApplications returns a user's applications newest-first.
func (s *Service) ListApplications(ctx context.Context, userID string, limit, offset int) ([]Application, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Applications.ListByUser(ctx, userID, limit, offset)
}
