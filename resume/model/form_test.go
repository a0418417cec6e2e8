package model

import (
	"net/url"
	"reflect"
	"testing"
)

func TestParseFormScalarFields(t *testing.T) {
	values := url.Values{}
	values.Set("full_name", "Jane Doe")
	values.Set("location", "Austin, TX")
	values.Set("phone", "555-123-4567")
	values.Set("email", "jane@example.com")
	values.Set("linkedin", "https://linkedin.com/in/janedoe")
	values.Set("summary", "Backend engineer.")
	values.Set("skills_languages", "Go, Python")

	form := ParseForm(values)
	if form.FullName != "Jane Doe" || form.Location != "Austin, TX" {
		t.Fatalf("unexpected scalar fields: %+v", form)
	}
	if form.LinkedIn != "https://linkedin.com/in/janedoe" {
		t.Fatalf("unexpected linkedin: %q", form.LinkedIn)
	}
	if form.GitHub != "" || form.Portfolio != "" {
		t.Fatalf("missing optional fields must be empty, got %+v", form)
	}
	if form.SkillsLanguages != "Go, Python" || form.SkillsFrontend != "" {
		t.Fatalf("unexpected skills fields: %+v", form)
	}
}

func TestParseFormIndexedSections(t *testing.T) {
	values := url.Values{}
	values.Set("education_count", "2")
	values.Set("edu_degree_0", "BS Computer Science")
	values.Set("edu_institution_0", "MIT")
	values.Set("edu_duration_0", "2016-2020")
	values.Set("edu_degree_1", "MS Computer Science")
	values.Set("edu_institution_1", "Stanford")

	form := ParseForm(values)
	want := []Education{
		{Degree: "BS Computer Science", Institution: "MIT", Duration: "2016-2020"},
		{Degree: "MS Computer Science", Institution: "Stanford"},
	}
	if !reflect.DeepEqual(form.Educations, want) {
		t.Fatalf("expected %+v, got %+v", want, form.Educations)
	}
}

func TestParseFormIndexGapYieldsEmptyEntry(t *testing.T) {
	values := url.Values{}
	values.Set("experience_count", "2")
	values.Set("exp_title_0", "Engineer")
	values.Set("exp_company_0", "Acme")
	// Index 1 is absent entirely.

	form := ParseForm(values)
	if len(form.Experiences) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(form.Experiences))
	}
	if form.Experiences[1] != (Experience{}) {
		t.Fatalf("gap entry must be empty, got %+v", form.Experiences[1])
	}
	if form.Experiences[1].Renderable() {
		t.Fatal("empty entry must not be renderable")
	}
}

func TestParseFormBadCountsAreZero(t *testing.T) {
	values := url.Values{}
	values.Set("projects_count", "not-a-number")
	values.Set("certifications_count", "-3")

	form := ParseForm(values)
	if len(form.Projects) != 0 || len(form.Certifications) != 0 {
		t.Fatalf("expected no entries for invalid counts, got %+v", form)
	}
}

func TestRenderablePredicates(t *testing.T) {
	cases := []struct {
		name string
		got  bool
		want bool
	}{
		{"education needs degree and institution", Education{Degree: "BS"}.Renderable(), false},
		{"education complete", Education{Degree: "BS", Institution: "MIT"}.Renderable(), true},
		{"project needs name", Project{Description: "x"}.Renderable(), false},
		{"project complete", Project{Name: "CLI"}.Renderable(), true},
		{"experience needs title and company", Experience{Title: "Dev"}.Renderable(), false},
		{"experience complete", Experience{Title: "Dev", Company: "Acme"}.Renderable(), true},
		{"certification needs name and org", Certification{Name: "CKA"}.Renderable(), false},
		{"certification complete", Certification{Name: "CKA", Org: "CNCF"}.Renderable(), true},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("%s: expected %v", tc.name, tc.want)
		}
	}
}
