package resumes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateJoinsSkills(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	resume := Resume{
		ID:         "resume-1",
		UserID:     "user-1",
		FileName:   "resume.pdf",
		Source:     SourceUpload,
		Content:    "Jane Doe\npython and sql",
		AtsScore:   42,
		Skills:     []string{"python", "sql"},
		StorageKey: "abc/resume.pdf",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(
			resume.ID,
			resume.UserID,
			resume.FileName,
			resume.Source,
			resume.Content,
			resume.AtsScore,
			"python, sql",
			resume.StorageKey,
			resume.CreatedAt,
			resume.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), resume); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCreateEmptyStorageKeyIsNull(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	resume := Resume{
		ID:        "resume-2",
		UserID:    "user-1",
		FileName:  "Resume_user-1_20260831.docx",
		Source:    SourceBuilder,
		Content:   "Jane Doe",
		AtsScore:  10,
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(
			resume.ID,
			resume.UserID,
			resume.FileName,
			resume.Source,
			resume.Content,
			resume.AtsScore,
			"",
			nil,
			resume.CreatedAt,
			resume.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), resume); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDEnforcesOwnership(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	columns := []string{"id", "user_id", "file_name", "source", "content", "ats_score", "skills", "storage_key", "created_at", "updated_at"}

	mock.ExpectQuery("SELECT (.+) FROM resumes").
		WithArgs("resume-1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("resume-1", "owner", "resume.pdf", SourceUpload, "text", 50, "python, sql", "key", now, now))

	if _, err := repo.GetByID(context.Background(), "intruder", "resume-1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDSplitsSkills(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	columns := []string{"id", "user_id", "file_name", "source", "content", "ats_score", "skills", "storage_key", "created_at", "updated_at"}

	mock.ExpectQuery("SELECT (.+) FROM resumes").
		WithArgs("resume-1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("resume-1", "owner", "resume.pdf", SourceUpload, "text", 50, "machine learning, python", nil, now, now))

	resume, err := repo.GetByID(context.Background(), "owner", "resume-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(resume.Skills) != 2 || resume.Skills[0] != "machine learning" || resume.Skills[1] != "python" {
		t.Fatalf("unexpected skills %v", resume.Skills)
	}
	if resume.StorageKey != "" {
		t.Fatalf("null storage key must map to empty string, got %q", resume.StorageKey)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	columns := []string{"id", "user_id", "file_name", "source", "content", "ats_score", "skills", "storage_key", "created_at", "updated_at"}

	mock.ExpectQuery("SELECT (.+) FROM resumes").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(columns))

	if _, err := repo.GetByID(context.Background(), "owner", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListByUserClampsLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	columns := []string{"id", "user_id", "file_name", "source", "content", "ats_score", "skills", "storage_key", "created_at", "updated_at"}

	mock.ExpectQuery("SELECT (.+) FROM resumes").
		WithArgs("owner", 100, 0).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("resume-1", "owner", "resume.pdf", SourceUpload, "text", 50, "", nil, now, now))

	items, err := repo.ListByUser(context.Background(), "owner", 500, -3)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Skills != nil {
		t.Fatalf("empty skills column must yield nil slice, got %v", items[0].Skills)
	}
}
