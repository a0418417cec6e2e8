package score

import "regexp"

// Rule weights. They sum to 100 by construction; the final clamp in
// Score only matters if a rule is added without rebalancing.
const (
	emailPoints   = 8
	phonePoints   = 7
	sectionPoints = 6
	redFlagPoints = 5
	maxScore      = 100
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	// Counted against the lowercased text.
	achievementPattern = regexp.MustCompile(`\d+%|\d+\+|increased|decreased|improved|reduced|generated|\$\d+`)
)

// sectionRule detects a resume section by any of its keywords.
type sectionRule struct {
	Name     string
	Keywords []string
}

// Evaluated in order; each section scores independently.
var sectionRules = []sectionRule{
	{Name: "experience", Keywords: []string{"experience", "work history", "employment", "professional experience"}},
	{Name: "education", Keywords: []string{"education", "academic", "degree", "university", "college"}},
	{Name: "skills", Keywords: []string{"skills", "technical skills", "competencies", "expertise"}},
	{Name: "summary", Keywords: []string{"summary", "objective", "profile", "about"}},
}

var commonSkills = []string{
	"python", "java", "javascript", "c++", "sql", "react", "node.js", "django",
	"machine learning", "data analysis", "communication", "leadership", "teamwork",
	"project management", "agile", "scrum", "git", "aws", "docker", "kubernetes",
}

var actionVerbs = []string{
	"achieved", "managed", "led", "developed", "created", "implemented",
	"designed", "built", "improved", "increased", "reduced", "organized",
	"coordinated", "executed", "launched", "delivered",
}

// Words whose literal presence suggests ATS-hostile layout elements.
var redFlagWords = []string{"table", "image", "graphic"}

// countTier maps a minimum match count to awarded points. Tiers are
// checked highest-first, so a count in two bands takes the higher one.
type countTier struct {
	Min    int
	Points int
}

var skillDensityTiers = []countTier{
	{Min: 10, Points: 20},
	{Min: 5, Points: 15},
	{Min: 3, Points: 10},
}

var achievementTiers = []countTier{
	{Min: 5, Points: 15},
	{Min: 3, Points: 10},
	{Min: 1, Points: 5},
}

var actionVerbTiers = []countTier{
	{Min: 5, Points: 10},
	{Min: 3, Points: 7},
	{Min: 1, Points: 4},
}

// wordCountBand awards points for a word-count range.
type wordCountBand struct {
	Min    int
	Max    int
	Points int
}

var lengthBands = []wordCountBand{
	{Min: 300, Max: 800, Points: 10},
	{Min: 200, Max: 1000, Points: 7},
}
