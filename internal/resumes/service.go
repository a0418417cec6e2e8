package resumes

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobboard-backend/internal/extract"
	"jobboard-backend/internal/shared/metrics"
	"jobboard-backend/internal/shared/storage/object"
	"jobboard-backend/internal/shared/telemetry"
	"jobboard-backend/internal/shared/util"
	"jobboard-backend/resume/assemble"
	"jobboard-backend/resume/model"
	"jobboard-backend/resume/render"
	"jobboard-backend/resume/score"
	"jobboard-backend/resume/skills"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Service contains business logic for resumes.
type Service struct {
	Repo  Repo
	Store object.ObjectStore
}

// Upload stores the original file, extracts its text, and records the
// scored resume. The returned slice holds ATS feedback messages.
func (s *Service) Upload(ctx context.Context, userID, fileName string, r io.Reader) (Resume, []string, error) {
	if userID == "" || strings.TrimSpace(fileName) == "" {
		return Resume{}, nil, ErrInvalidInput
	}

	ext := util.FileExtension(fileName)
	if !extract.Allowed(ext) {
		return Resume{}, nil, ErrUnsupportedFormat
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Resume{}, nil, err
	}

	storageKey, _, _, err := s.Store.Save(ctx, userID, fileName, bytes.NewReader(data))
	if err != nil {
		return Resume{}, nil, err
	}

	text, err := extract.ResumeText(data, ext)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			return Resume{}, nil, ErrUnsupportedFormat
		}
		metrics.IncExtractionFailed()
		return Resume{}, nil, ErrExtractionFailed
	}
	if !extract.Usable(text) {
		metrics.IncExtractionFailed()
		telemetry.Warn("resumes.extraction.unusable", map[string]any{
			"file_name": fileName,
			"ext":       ext,
			"length":    len(strings.TrimSpace(text)),
		})
		return Resume{}, nil, ErrExtractionFailed
	}

	atsScore, feedback := score.Score(text)
	now := time.Now().UTC()
	resume := Resume{
		ID:         uuid.NewString(),
		UserID:     userID,
		FileName:   fileName,
		Source:     SourceUpload,
		Content:    text,
		AtsScore:   atsScore,
		Skills:     skills.Extract(text),
		StorageKey: storageKey,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, nil, err
	}

	metrics.IncResumeUploaded()
	metrics.ObserveAtsScore(atsScore)
	return resume, feedback, nil
}

// BuildFromForm assembles canonical resume text from builder form input,
// scores it, and records the resume.
func (s *Service) BuildFromForm(ctx context.Context, userID string, form model.ResumeForm) (Resume, []string, error) {
	if userID == "" {
		return Resume{}, nil, ErrInvalidInput
	}
	if strings.TrimSpace(form.FullName) == "" {
		return Resume{}, nil, ErrInvalidInput
	}

	content := assemble.Build(form)
	atsScore, feedback := score.Score(content)

	now := time.Now().UTC()
	resume := Resume{
		ID:        uuid.NewString(),
		UserID:    userID,
		FileName:  render.FileName(userID, now),
		Source:    SourceBuilder,
		Content:   content,
		AtsScore:  atsScore,
		Skills:    skills.Extract(content),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, nil, err
	}

	metrics.IncResumeBuilt()
	metrics.ObserveAtsScore(atsScore)
	return resume, feedback, nil
}

// Get returns a resume by ID for a user.
func (s *Service) Get(ctx context.Context, userID, resumeID string) (Resume, error) {
	if userID == "" || resumeID == "" {
		return Resume{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, resumeID)
}

// List returns a user's resumes ordered newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Resume, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Download renders the resume's stored content as a DOCX document and
// returns the generated file name with the document bytes.
func (s *Service) Download(ctx context.Context, userID, resumeID string) (string, []byte, error) {
	resume, err := s.Get(ctx, userID, resumeID)
	if err != nil {
		return "", nil, err
	}

	docBytes, err := render.BuildDocx(resume.Content)
	if err != nil {
		return "", nil, err
	}
	metrics.IncResumeRendered()

	fileName := render.FileName(userID, time.Now().UTC())

	// Best-effort cache of the rendered artifact; the download proceeds
	// even if the store write fails.
	cacheKey := path.Join(util.HashUserKey(userID), "generated", fileName)
	if _, err := s.Store.SaveWithKey(ctx, cacheKey, docxContentType, bytes.NewReader(docBytes)); err != nil {
		telemetry.Warn("resumes.render.cache_failed", map[string]any{
			"resume_id":   resumeID,
			"storage_key": cacheKey,
			"err":         err.Error(),
		})
	}

	return fileName, docBytes, nil
}
