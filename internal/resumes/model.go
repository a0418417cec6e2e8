package resumes

import "time"

// Source identifies how a resume entered the system.
const (
	SourceUpload  = "upload"
	SourceBuilder = "builder"
)

// Resume is a stored resume with its extracted text and ATS evaluation.
type Resume struct {
	ID         string
	UserID     string
	FileName   string
	Source     string
	Content    string
	AtsScore   int
	Skills     []string
	StorageKey string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
