// Package score implements the rule-based ATS scoring engine. The score
// is a pure function of the resume text: seven independent rules
// accumulate points and emit feedback for anything not fully met.
package score

import (
	"fmt"
	"strings"
)

// Score evaluates resume text and returns a 0-100 score plus feedback
// lines ordered by rule evaluation: contact, sections, skills,
// achievements, length, verbs, formatting.
func Score(text string) (int, []string) {
	total := 0
	feedback := make([]string, 0, 8)
	lower := strings.ToLower(text)

	// 1. Contact information.
	if emailPattern.MatchString(text) {
		total += emailPoints
	} else {
		feedback = append(feedback, "Add email address")
	}
	if phonePattern.MatchString(text) {
		total += phonePoints
	} else {
		feedback = append(feedback, "Add phone number")
	}

	// 2. Key sections, each scored on its own.
	for _, rule := range sectionRules {
		if containsAny(lower, rule.Keywords) {
			total += sectionPoints
		} else {
			feedback = append(feedback, fmt.Sprintf("Add %s section", rule.Name))
		}
	}

	// 3. Skills density.
	skillsFound := countSubstrings(lower, commonSkills)
	if points, ok := tierPoints(skillDensityTiers, skillsFound); ok {
		total += points
	} else {
		total += 5
		feedback = append(feedback, "Add more relevant skills")
	}

	// 4. Quantifiable achievements.
	achievements := len(achievementPattern.FindAllString(lower, -1))
	if points, ok := tierPoints(achievementTiers, achievements); ok {
		total += points
	} else {
		feedback = append(feedback, "Add quantifiable achievements (numbers, percentages)")
	}

	// 5. Length.
	wordCount := len(strings.Fields(text))
	if points, ok := bandPoints(lengthBands, wordCount); ok {
		total += points
	} else {
		feedback = append(feedback, "Optimize resume length (300-800 words recommended)")
	}

	// 6. Action verbs.
	verbsFound := countSubstrings(lower, actionVerbs)
	if points, ok := tierPoints(actionVerbTiers, verbsFound); ok {
		total += points
	} else {
		feedback = append(feedback, "Use more action verbs")
	}

	// 7. No ATS red flags. Silent when violated.
	if !containsAny(lower, redFlagWords) {
		total += redFlagPoints
	}

	if total > maxScore {
		total = maxScore
	}
	return total, feedback
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func countSubstrings(text string, terms []string) int {
	found := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			found++
		}
	}
	return found
}

func tierPoints(tiers []countTier, count int) (int, bool) {
	for _, tier := range tiers {
		if count >= tier.Min {
			return tier.Points, true
		}
	}
	return 0, false
}

func bandPoints(bands []wordCountBand, count int) (int, bool) {
	for _, band := range bands {
		if count >= band.Min && count <= band.Max {
			return band.Points, true
		}
	}
	return 0, false
}
