// Package model defines the canonical resume document and its sub-records.
//
// The document is a plain value: every edit produces a new Resume via Clone
// rather than mutating in place. That whole-value replacement is what keeps
// the debounced autosave safe without locks.
package model

import (
	"fmt"
	"strings"
	"time"
)

// TemplateStyle selects one of the three visual template variants.
type TemplateStyle string

const (
	StyleProfessional TemplateStyle = "professional"
	StyleModern       TemplateStyle = "modern"
	StyleMinimal      TemplateStyle = "minimal"
)

// ParseTemplateStyle validates a raw style selector. Empty input falls back
// to the professional default; anything else unknown is rejected.
func ParseTemplateStyle(raw string) (TemplateStyle, error) {
	switch TemplateStyle(strings.ToLower(strings.TrimSpace(raw))) {
	case StyleProfessional:
		return StyleProfessional, nil
	case StyleModern:
		return StyleModern, nil
	case StyleMinimal:
		return StyleMinimal, nil
	case "":
		return StyleProfessional, nil
	default:
		return "", fmt.Errorf("unknown template style %q", raw)
	}
}

// Valid reports whether the style is one of the three known variants.
func (s TemplateStyle) Valid() bool {
	return s == StyleProfessional || s == StyleModern || s == StyleMinimal
}

// PersonalInfo captures top-of-resume contact details. The model enforces no
// format rules; validation, where it exists, lives at the edges.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// WorkExperience is one work history entry. Dates are free text, not parsed.
type WorkExperience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Achievements []string `json:"achievements"`
}

// EndLabel returns the end-date label for rendering and export. When the
// entry is marked current the stored EndDate is ignored entirely.
func (w WorkExperience) EndLabel() string {
	if w.Current {
		return "Present"
	}
	return w.EndDate
}

// Education is one education entry.
type Education struct {
	ID             string `json:"id"`
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	Location       string `json:"location"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa,omitempty"`
}

// Skills groups skill names by category. A nil list and an empty list mean
// the same thing to every consumer: nothing to render.
type Skills struct {
	Technical []string `json:"technical,omitempty"`
	Soft      []string `json:"soft,omitempty"`
	Languages []string `json:"languages,omitempty"`
	Tools     []string `json:"tools,omitempty"`
}

// Empty reports whether no skill category has any entries.
func (s Skills) Empty() bool {
	return len(s.Technical) == 0 && len(s.Soft) == 0 && len(s.Languages) == 0 && len(s.Tools) == 0
}

// Certification is one certification entry.
type Certification struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Issuer     string `json:"issuer"`
	Date       string `json:"date"`
	ExpiryDate string `json:"expiryDate,omitempty"`
}

// Project is one project entry.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
	Highlights   []string `json:"highlights"`
}

// Resume is the root aggregate.
type Resume struct {
	ID                  string           `json:"id,omitempty"`
	UserID              string           `json:"userId,omitempty"`
	Title               string           `json:"title"`
	TemplateStyle       TemplateStyle    `json:"templateStyle"`
	TargetRole          string           `json:"targetRole"`
	PersonalInfo        PersonalInfo     `json:"personalInfo"`
	ProfessionalSummary string           `json:"professionalSummary"`
	WorkExperience      []WorkExperience `json:"workExperience"`
	Education           []Education      `json:"education"`
	Skills              Skills           `json:"skills"`
	Certifications      []Certification  `json:"certifications"`
	Projects            []Project        `json:"projects"`
	CreatedAt           *time.Time       `json:"createdAt,omitempty"`
	UpdatedAt           *time.Time       `json:"updatedAt,omitempty"`
}

// Empty returns a fresh document: blank scalars, empty collections, and the
// professional template selected.
func Empty() Resume {
	return Resume{
		Title:          "My Resume",
		TemplateStyle:  StyleProfessional,
		WorkExperience: []WorkExperience{},
		Education:      []Education{},
		Certifications: []Certification{},
		Projects:       []Project{},
	}
}

// Normalize coerces an out-of-range template style back to the professional
// default. An unknown style is never rendered silently.
func (r Resume) Normalize() Resume {
	if !r.TemplateStyle.Valid() {
		r.TemplateStyle = StyleProfessional
	}
	return r
}

// Clone returns a deep copy. Mutating the copy never affects the original,
// which is the contract the editing session depends on.
func (r Resume) Clone() Resume {
	out := r
	out.WorkExperience = make([]WorkExperience, len(r.WorkExperience))
	for i, exp := range r.WorkExperience {
		exp.Achievements = cloneStrings(exp.Achievements)
		out.WorkExperience[i] = exp
	}
	out.Education = append([]Education(nil), r.Education...)
	out.Skills = Skills{
		Technical: cloneStrings(r.Skills.Technical),
		Soft:      cloneStrings(r.Skills.Soft),
		Languages: cloneStrings(r.Skills.Languages),
		Tools:     cloneStrings(r.Skills.Tools),
	}
	out.Certifications = append([]Certification(nil), r.Certifications...)
	out.Projects = make([]Project, len(r.Projects))
	for i, p := range r.Projects {
		p.Technologies = cloneStrings(p.Technologies)
		p.Highlights = cloneStrings(p.Highlights)
		out.Projects[i] = p
	}
	if r.CreatedAt != nil {
		t := *r.CreatedAt
		out.CreatedAt = &t
	}
	if r.UpdatedAt != nil {
		t := *r.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
