// Package model defines the structured resume form payload and the
// boundary parser that shapes it from flat request values.
package model

import (
	"net/url"
	"strconv"
	"strings"
)

// ResumeForm is the structured applicant-supplied resume content.
type ResumeForm struct {
	FullName  string
	Location  string
	Phone     string
	Email     string
	LinkedIn  string
	GitHub    string
	Portfolio string
	Summary   string

	SkillsLanguages string
	SkillsFrontend  string
	SkillsBackend   string
	SkillsDatabase  string
	SkillsTools     string

	Educations     []Education
	Projects       []Project
	Experiences    []Experience
	Certifications []Certification
}

// Education is a single education entry.
type Education struct {
	Degree      string
	Institution string
	Duration    string
	Details     string
}

// Renderable reports whether the entry carries enough data to appear
// in the assembled resume.
func (e Education) Renderable() bool {
	return e.Degree != "" && e.Institution != ""
}

// Project is a single project entry.
type Project struct {
	Name        string
	Date        string
	GitHub      string
	Live        string
	Description string
	Tech        string
}

// Renderable reports whether the entry appears in the assembled resume.
func (p Project) Renderable() bool {
	return p.Name != ""
}

// Experience is a single work-experience entry.
type Experience struct {
	Title       string
	Company     string
	Location    string
	Duration    string
	Description string
}

// Renderable reports whether the entry appears in the assembled resume.
func (e Experience) Renderable() bool {
	return e.Title != "" && e.Company != ""
}

// Certification is a single certification entry.
type Certification struct {
	Name        string
	Org         string
	Date        string
	Credential  string
	Description string
}

// Renderable reports whether the entry appears in the assembled resume.
func (c Certification) Renderable() bool {
	return c.Name != "" && c.Org != ""
}

// ParseForm shapes a flat form payload into a ResumeForm. Repeated
// sections use a `<section>_count` field plus `<prefix>_<field>_<i>`
// keys for i in [0, count); a missing key yields an empty string, so
// gaps in the index range produce empty (non-renderable) entries.
func ParseForm(values url.Values) ResumeForm {
	form := ResumeForm{
		FullName:  values.Get("full_name"),
		Location:  values.Get("location"),
		Phone:     values.Get("phone"),
		Email:     values.Get("email"),
		LinkedIn:  values.Get("linkedin"),
		GitHub:    values.Get("github"),
		Portfolio: values.Get("portfolio"),
		Summary:   values.Get("summary"),

		SkillsLanguages: values.Get("skills_languages"),
		SkillsFrontend:  values.Get("skills_frontend"),
		SkillsBackend:   values.Get("skills_backend"),
		SkillsDatabase:  values.Get("skills_database"),
		SkillsTools:     values.Get("skills_tools"),
	}

	for i := 0; i < countField(values, "education_count"); i++ {
		form.Educations = append(form.Educations, Education{
			Degree:      indexed(values, "edu_degree", i),
			Institution: indexed(values, "edu_institution", i),
			Duration:    indexed(values, "edu_duration", i),
			Details:     indexed(values, "edu_details", i),
		})
	}

	for i := 0; i < countField(values, "projects_count"); i++ {
		form.Projects = append(form.Projects, Project{
			Name:        indexed(values, "project_name", i),
			Date:        indexed(values, "project_date", i),
			GitHub:      indexed(values, "project_github", i),
			Live:        indexed(values, "project_live", i),
			Description: indexed(values, "project_description", i),
			Tech:        indexed(values, "project_tech", i),
		})
	}

	for i := 0; i < countField(values, "experience_count"); i++ {
		form.Experiences = append(form.Experiences, Experience{
			Title:       indexed(values, "exp_title", i),
			Company:     indexed(values, "exp_company", i),
			Location:    indexed(values, "exp_location", i),
			Duration:    indexed(values, "exp_duration", i),
			Description: indexed(values, "exp_description", i),
		})
	}

	for i := 0; i < countField(values, "certifications_count"); i++ {
		form.Certifications = append(form.Certifications, Certification{
			Name:        indexed(values, "cert_name", i),
			Org:         indexed(values, "cert_org", i),
			Date:        indexed(values, "cert_date", i),
			Credential:  indexed(values, "cert_credential", i),
			Description: indexed(values, "cert_description", i),
		})
	}

	return form
}

func countField(values url.Values, key string) int {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return 0
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count < 0 {
		return 0
	}
	return count
}

func indexed(values url.Values, prefix string, i int) string {
	return values.Get(prefix + "_" + strconv.Itoa(i))
}
