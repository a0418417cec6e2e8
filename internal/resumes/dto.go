package resumes

import "time"

// ResumeResponse is the outward-facing representation of a resume.
type ResumeResponse struct {
	ResumeID  string    `json:"resumeId"`
	FileName  string    `json:"fileName"`
	Source    string    `json:"source"`
	AtsScore  int       `json:"atsScore"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"createdAt"`
}

// ScoredResumeResponse adds the ATS feedback produced at scoring time.
type ScoredResumeResponse struct {
	ResumeResponse
	Feedback []string `json:"feedback"`
}

// ResumeDetailResponse adds the canonical plain-text content.
type ResumeDetailResponse struct {
	ResumeResponse
	Content string `json:"content"`
}

func toResponse(resume Resume) ResumeResponse {
	skills := resume.Skills
	if skills == nil {
		skills = []string{}
	}
	return ResumeResponse{
		ResumeID:  resume.ID,
		FileName:  resume.FileName,
		Source:    resume.Source,
		AtsScore:  resume.AtsScore,
		Skills:    skills,
		CreatedAt: resume.CreatedAt,
	}
}

func toScoredResponse(resume Resume, feedback []string) ScoredResumeResponse {
	if feedback == nil {
		feedback = []string{}
	}
	return ScoredResumeResponse{
		ResumeResponse: toResponse(resume),
		Feedback:       feedback,
	}
}

func toDetailResponse(resume Resume) ResumeDetailResponse {
	return ResumeDetailResponse{
		ResumeResponse: toResponse(resume),
		Content:        resume.Content,
	}
}
