package jobs

import (
	"context"
	"database/sql"
	"errors"
)

// PGJobsRepo implements JobsRepo using Postgres.
type PGJobsRepo struct {
	DB *sql.DB
}

// Create inserts a job listing.
func (r *PGJobsRepo) Create(ctx context.Context, job Job) error {
	const query = `
INSERT INTO jobs (id, title, company, location, description, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		job.ID,
		job.Title,
		job.Company,
		job.Location,
		job.Description,
		job.Status,
		job.CreatedAt,
	)
	return err
}

// GetByID returns a job by ID.
func (r *PGJobsRepo) GetByID(ctx context.Context, jobID string) (Job, error) {
	const query = `
SELECT id, title, company, location, description, status, created_at
FROM jobs
WHERE id = $1
LIMIT 1`
	var job Job
	err := r.DB.QueryRowContext(ctx, query, jobID).Scan(
		&job.ID,
		&job.Title,
		&job.Company,
		&job.Location,
		&job.Description,
		&job.Status,
		&job.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	return job, nil
}

// ListOpen lists open jobs newest-first.
func (r *PGJobsRepo) ListOpen(ctx context.Context, limit, offset int) ([]Job, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, title, company, location, description, status, created_at
FROM jobs
WHERE status = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, StatusOpen, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Job
	for rows.Next() {
		var job Job
		if err := rows.Scan(
			&job.ID,
			&job.Title,
			&job.Company,
			&job.Location,
			&job.Description,
			&job.Status,
			&job.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

// PGApplicationsRepo implements ApplicationsRepo using Postgres.
type PGApplicationsRepo struct {
	DB *sql.DB
}

// Create inserts an application.
func (r *PGApplicationsRepo) Create(ctx context.Context, application Application) error {
	const query = `
INSERT INTO applications (id, job_id, user_id, resume_id, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(ctx, query,
		application.ID,
		application.JobID,
		application.UserID,
		application.ResumeID,
		application.CreatedAt,
	)
	return err
}

// Exists reports whether the user already applied to the job.
func (r *PGApplicationsRepo) Exists(ctx context.Context, jobID, userID string) (bool, error) {
	const query = `SELECT 1 FROM applications WHERE job_id = $1 AND user_id = $2 LIMIT 1`
	var one int
	err := r.DB.QueryRowContext(ctx, query, jobID, userID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListByUser lists a user's applications newest-first.
func (r *PGApplicationsRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Application, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, job_id, user_id, resume_id, created_at
FROM applications
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Application
	for rows.Next() {
		var application Application
		if err := rows.Scan(
			&application.ID,
			&application.JobID,
			&application.UserID,
			&application.ResumeID,
			&application.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, application)
	}
	return out, rows.Err()
}

var (
	_ JobsRepo         = (*PGJobsRepo)(nil)
	_ ApplicationsRepo = (*PGApplicationsRepo)(nil)
)
