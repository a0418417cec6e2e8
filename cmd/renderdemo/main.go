package main

import (
	"archive/zip"
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"jobboard-backend/resume/assemble"
	"jobboard-backend/resume/model"
	"jobboard-backend/resume/render"
)

func main() {
	outPath := flag.String("out", "./out/sample_resume.docx", "output path for generated DOCX")
	flag.Parse()

	form := sampleForm()
	content := assemble.Build(form)

	docxBytes, err := render.BuildDocx(content)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}

	if err := writeOutputs(*outPath, content, docxBytes); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	if err := validateRenderedDocx(*outPath); err != nil {
		fmt.Fprintf(os.Stderr, "render validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: wrote %s\n", *outPath)
}

func writeOutputs(outPath, content string, docxBytes []byte) error {
	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	if err := os.WriteFile(outPath, docxBytes, 0o644); err != nil {
		return err
	}

	textPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".txt"
	return os.WriteFile(textPath, []byte(content), 0o644)
}

func validateRenderedDocx(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("not a zip container: %w", err)
	}

	var document string
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return err
		}
		document = string(raw)
	}
	if document == "" {
		return fmt.Errorf("word/document.xml missing or empty")
	}
	for _, want := range []string{"Jane Doe", "PROFESSIONAL EXPERIENCE", "TECHNICAL SKILLS"} {
		if !strings.Contains(document, want) {
			return fmt.Errorf("document.xml missing %q", want)
		}
	}
	return nil
}

func sampleForm() model.ResumeForm {
	return model.ResumeForm{
		FullName: "Jane Doe",
		Location: "Austin, TX",
		Phone:    "555-123-4567",
		Email:    "jane.doe@example.com",
		LinkedIn: "linkedin.com/in/janedoe",
		GitHub:   "github.com/janedoe",
		Summary:  "Backend engineer with five years of experience building data-heavy services.",

		SkillsLanguages: "Python, Go, SQL",
		SkillsBackend:   "Flask, Django",
		SkillsDatabase:  "PostgreSQL",
		Educations: []model.Education{
			{
				Degree:      "B.S. Computer Science",
				Institution: "State University",
				Duration:    "2017 - 2021",
				Details:     "Graduated with honors.",
			},
		},
		Projects: []model.Project{
			{
				Name:        "Job Matcher",
				Date:        "2024",
				GitHub:      "github.com/janedoe/job-matcher",
				Description: "Matches resumes to job descriptions.\nRanked results by skill overlap.",
				Tech:        "Go, PostgreSQL",
			},
		},
		Experiences: []model.Experience{
			{
				Title:       "Software Engineer",
				Company:     "Acme",
				Location:    "Remote",
				Duration:    "2021 - Present",
				Description: "Built ingestion services handling 2M events per day.\nImproved p99 latency by 30%.",
			},
		},
		Certifications: []model.Certification{
			{
				Name:       "AWS Solutions Architect Associate",
				Org:        "Amazon Web Services",
				Date:       "2023",
				Credential: "aws.amazon.com/verification",
			},
		},
	}
}
