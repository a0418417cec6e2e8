package resumes

import "jobboard-backend/resume/model"

func testForm(name string) model.ResumeForm {
	return model.ResumeForm{
		FullName:        name,
		Location:        "Austin, TX",
		Phone:           "555-123-4567",
		Email:           "jane.doe@example.com",
		Summary:         "Backend engineer focused on data plumbing.",
		SkillsLanguages: "Python, Go, SQL",
		Experiences: []model.Experience{
			{
				Title:       "Software Engineer",
				Company:     "Acme",
				Duration:    "2021 - Present",
				Description: "Built ingestion services.\nImproved latency by 30%.",
			},
		},
		Educations: []model.Education{
			{Degree: "B.S. Computer Science", Institution: "State University", Duration: "2017 - 2021"},
		},
	}
}
