// Package suggest produces advisory text from heuristic resume checks.
//
// Every function here is pure: absent or empty input degrades to generic
// advice or to no advice at all, never to an error. Suggestions are never
// blocking; callers display them as-is.
package suggest

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"resume-builder/resume/model"
)

const (
	summaryMinLen = 50
	summaryMaxLen = 300

	minAchievementsPerRole = 3
	minAchievementLen      = 20
	achievementPreviewLen  = 30

	minCoreSkills = 5
	maxCoreSkills = 20
)

var digitRe = regexp.MustCompile(`\d`)

// weakPhrases are matched case-insensitively anywhere in the summary.
var weakPhrases = [...]string{"responsible for", "worked on", "helped with", "duties included"}

// Analyze runs all three analyses in fixed order: summary, work experience,
// then skills.
func Analyze(r model.Resume) []string {
	out := AnalyzeSummary(r.ProfessionalSummary)
	out = append(out, AnalyzeWorkExperience(r.WorkExperience)...)
	out = append(out, AnalyzeSkills(r.Skills)...)
	return out
}

// AnalyzeSummary checks the professional summary for length, quantification,
// and weak phrasing. The checks are independent; several may fire at once.
func AnalyzeSummary(summary string) []string {
	var suggestions []string

	if utf8.RuneCountInString(summary) < summaryMinLen {
		suggestions = append(suggestions, "Professional summary is too short. Aim for 3-4 compelling sentences that highlight your key achievements and value proposition.")
	}
	if utf8.RuneCountInString(summary) > summaryMaxLen {
		suggestions = append(suggestions, "Professional summary is too long. Keep it concise and impactful (150-250 words).")
	}
	if !digitRe.MatchString(summary) {
		suggestions = append(suggestions, `Add quantifiable metrics to your summary (e.g., "increased sales by 30%").`)
	}

	lowered := strings.ToLower(summary)
	var found []string
	for _, phrase := range weakPhrases {
		if strings.Contains(lowered, phrase) {
			found = append(found, phrase)
		}
	}
	if len(found) > 0 {
		suggestions = append(suggestions, fmt.Sprintf("Replace weak phrases like %q with strong action verbs.", strings.Join(found, `", "`)))
	}

	return suggestions
}

// AnalyzeWorkExperience checks each entry and each achievement in order.
// For every achievement the three checks run in a fixed sequence: brevity,
// quantification, then action-verb opening.
func AnalyzeWorkExperience(entries []model.WorkExperience) []string {
	var suggestions []string

	for _, job := range entries {
		if len(job.Achievements) < minAchievementsPerRole {
			suggestions = append(suggestions, fmt.Sprintf("Add more bullet points to %s at %s (aim for 3-5 achievements per role).", job.Position, job.Company))
		}

		for _, achievement := range job.Achievements {
			preview := runePrefix(achievement, achievementPreviewLen)

			if utf8.RuneCountInString(achievement) < minAchievementLen {
				suggestions = append(suggestions, fmt.Sprintf("Bullet point %q in %s is too brief. Add more details and context.", preview+"...", job.Position))
			}
			if !digitRe.MatchString(achievement) {
				suggestions = append(suggestions, fmt.Sprintf("Add quantifiable results to %q (e.g., percentages, dollar amounts, time saved).", preview+"..."))
			}
			if !startsWithActionVerb(achievement) {
				examples := strings.Join(actionVerbs[:5], ", ")
				suggestions = append(suggestions, fmt.Sprintf("Start %q with a strong action verb (%s, etc.).", preview+"...", examples))
			}
		}
	}

	return suggestions
}

// AnalyzeSkills checks the skill lists. Only technical skills and tools count
// toward the total; soft skills and languages are excluded on purpose.
func AnalyzeSkills(skills model.Skills) []string {
	var suggestions []string

	total := len(skills.Technical) + len(skills.Tools)
	if total < minCoreSkills {
		suggestions = append(suggestions, "Add more technical skills and tools relevant to your target role.")
	}
	if total > maxCoreSkills {
		suggestions = append(suggestions, "Too many skills listed. Focus on the most relevant 10-15 skills for your target role.")
	}
	if len(skills.Soft) == 0 {
		suggestions = append(suggestions, "Consider adding 3-4 key soft skills (e.g., Leadership, Communication, Problem-solving).")
	}

	return suggestions
}

func startsWithActionVerb(achievement string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(achievement))
	for _, verb := range actionVerbs {
		if strings.HasPrefix(trimmed, strings.ToLower(verb)) {
			return true
		}
	}
	return false
}

func runePrefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
