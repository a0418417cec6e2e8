// Package assemble renders a structured resume form into the canonical
// plain-text layout consumed by scoring, skill extraction and document
// rendering.
package assemble

import (
	"strings"

	"jobboard-backend/resume/model"
)

// Section header strings of the canonical layout, in emission order.
const (
	HeaderSummary        = "Professional Summary"
	HeaderEducation      = "Education"
	HeaderSkills         = "Technical Skills"
	HeaderProjects       = "Projects"
	HeaderExperience     = "Professional Experience"
	HeaderCertifications = "Certifications"
)

// SectionHeaders lists every canonical section header. The renderer
// uses it to recognize header lines by exact content.
var SectionHeaders = []string{
	HeaderSummary,
	HeaderEducation,
	HeaderSkills,
	HeaderProjects,
	HeaderExperience,
	HeaderCertifications,
}

// Build produces the canonical resume text for a form. It is a pure
// string-building function: output depends only on field presence.
func Build(form model.ResumeForm) string {
	var b strings.Builder

	b.WriteString(form.FullName)
	b.WriteString("\n")

	b.WriteString(form.Location + " | " + form.Phone + " | " + form.Email)
	if links := contactLinks(form); len(links) > 0 {
		b.WriteString(" | " + strings.Join(links, " | "))
	}
	b.WriteString("\n\n")

	if form.Summary != "" {
		b.WriteString(HeaderSummary + "\n")
		b.WriteString(form.Summary + "\n\n")
	}

	if len(form.Educations) > 0 {
		b.WriteString(HeaderEducation + "\n")
		for _, edu := range form.Educations {
			if !edu.Renderable() {
				continue
			}
			b.WriteString(edu.Degree + "\n")
			b.WriteString(edu.Institution)
			if edu.Duration != "" {
				b.WriteString(" | " + edu.Duration)
			}
			b.WriteString("\n")
			if edu.Details != "" {
				b.WriteString(edu.Details + "\n")
			}
			b.WriteString("\n")
		}
	}

	// The skills header is always emitted, even with no populated
	// category. Kept for compatibility with documents already rendered
	// from this layout.
	b.WriteString(HeaderSkills + "\n")
	writeSkillLine(&b, "Languages", form.SkillsLanguages)
	writeSkillLine(&b, "Frontend", form.SkillsFrontend)
	writeSkillLine(&b, "Backend", form.SkillsBackend)
	writeSkillLine(&b, "Database", form.SkillsDatabase)
	writeSkillLine(&b, "Tools", form.SkillsTools)
	b.WriteString("\n")

	if len(form.Projects) > 0 {
		b.WriteString(HeaderProjects + "\n")
		for _, proj := range form.Projects {
			if !proj.Renderable() {
				continue
			}
			b.WriteString(proj.Name)
			if links := projectLinks(proj); len(links) > 0 {
				b.WriteString(" | " + strings.Join(links, " | "))
			}
			if proj.Date != "" {
				b.WriteString(" | " + proj.Date)
			}
			b.WriteString("\n")
			if proj.Description != "" {
				b.WriteString(proj.Description + "\n")
			}
			if proj.Tech != "" {
				b.WriteString("Tech Stack: " + proj.Tech + "\n")
			}
			b.WriteString("\n")
		}
	}

	if len(form.Experiences) > 0 {
		b.WriteString(HeaderExperience + "\n")
		for _, exp := range form.Experiences {
			if !exp.Renderable() {
				continue
			}
			b.WriteString(exp.Title + " | " + exp.Company)
			if exp.Location != "" {
				b.WriteString(" | " + exp.Location)
			}
			b.WriteString("\n")
			if exp.Duration != "" {
				b.WriteString(exp.Duration + "\n")
			}
			if exp.Description != "" {
				b.WriteString(exp.Description + "\n")
			}
			b.WriteString("\n")
		}
	}

	if len(form.Certifications) > 0 {
		b.WriteString(HeaderCertifications + "\n")
		for _, cert := range form.Certifications {
			if !cert.Renderable() {
				continue
			}
			b.WriteString(cert.Name + " – " + cert.Org)
			if cert.Date != "" {
				b.WriteString(" | " + cert.Date)
			}
			b.WriteString("\n")
			if cert.Description != "" {
				b.WriteString(cert.Description + "\n")
			}
			if cert.Credential != "" {
				b.WriteString("Credential: " + cert.Credential + "\n")
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func contactLinks(form model.ResumeForm) []string {
	links := make([]string, 0, 3)
	if form.LinkedIn != "" {
		links = append(links, "LinkedIn: "+form.LinkedIn)
	}
	if form.GitHub != "" {
		links = append(links, "GitHub: "+form.GitHub)
	}
	if form.Portfolio != "" {
		links = append(links, "Portfolio: "+form.Portfolio)
	}
	return links
}

func projectLinks(proj model.Project) []string {
	links := make([]string, 0, 2)
	if proj.GitHub != "" {
		links = append(links, "GitHub: "+proj.GitHub)
	}
	if proj.Live != "" {
		links = append(links, "Live: "+proj.Live)
	}
	return links
}

func writeSkillLine(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(label + ": " + value + "\n")
}
