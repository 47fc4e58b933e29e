// Package render maps a resume document plus a template style to a
// structured visual document used for on-screen preview and as the capture
// source for PDF export.
//
// The three variants share section ordering and section presence; they only
// differ in typography and separator glyphs. Which sections appear is decided
// by the data alone, never by the chosen style.
package render

import (
	"strings"

	"resume-builder/resume/model"
)

// Section identifiers, in their fixed rendering order.
const (
	SectionContact        = "contact"
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
)

// Document is a rendered resume: an ordered list of sections for one style.
type Document struct {
	Style    model.TemplateStyle
	Sections []Section
}

// Section is one titled block of the rendered document.
type Section struct {
	ID      string
	Title   string
	Entries []Entry
}

// Entry is one item inside a section. Unused fields stay empty; the
// presentation layer skips them.
type Entry struct {
	Heading    string
	Subheading string
	Meta       string
	Body       string
	Bullets    []string
}

// SectionIDs returns the ordered identifiers of the document's sections.
func (d Document) SectionIDs() []string {
	ids := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		ids[i] = s.ID
	}
	return ids
}

// variant captures the presentation-only differences between styles.
type variant struct {
	summaryTitle  string
	experience    string
	education     string
	skills        string
	projects      string
	certs         string
	contactSep    string // between contact fields
	companySep    string // between company and location
	skillSep      string // between skill names
	projectTech   bool   // show technologies line
	projectLink   bool   // show link line
	certExpiry    bool   // show expiry on the issuer line
	certSep       string // between issuer and date
	skillLanguage bool   // include the languages category
}

var variants = map[model.TemplateStyle]variant{
	model.StyleProfessional: {
		summaryTitle: "Professional Summary",
		experience: "Work Experience",
		education: "Education",
		skills: "Skills",
		projects: "Projects",
		certs: "Certifications",
		contactSep: " • ",
		companySep: " | ",
		skillSep: ", ",
		projectTech: true,
		projectLink: true,
		certExpiry: true,
		certSep: " | ",
		skillLanguage: true,
	},
	model.StyleModern: {
		summaryTitle: "PROFESSIONAL SUMMARY",
		experience: "EXPERIENCE",
		education: "EDUCATION",
		skills: "SKILLS",
		projects: "PROJECTS",
		certs: "CERTIFICATIONS",
		contactSep: " | ",
		companySep: " • ",
		skillSep: " • ",
		projectTech: true,
		certSep: " • ",
		skillLanguage: true,
	},
	model.StyleMinimal: {
		summaryTitle: "Summary",
		experience: "Experience",
		education: "Education",
		skills: "Skills",
		projects: "Projects",
		certs: "Certifications",
		contactSep: " • ",
		companySep: ", ",
		skillSep: ", ",
		certSep: ", ",
	},
}

// Render produces the visual document for a resume and style. An unknown
// style is normalized to the professional default first.
func Render(r model.Resume, style model.TemplateStyle) Document {
	if !style.Valid() {
		style = model.StyleProfessional
	}
	v := variants[style]

	doc := Document{Style: style}
	doc.Sections = append(doc.Sections, contactSection(r.PersonalInfo, v))

	if r.ProfessionalSummary != "" {
		doc.Sections = append(doc.Sections, Section{
			ID:      SectionSummary,
			Title:   v.summaryTitle,
			Entries: []Entry{{Body: r.ProfessionalSummary}},
		})
	}

	if len(r.WorkExperience) > 0 {
		sec := Section{ID: SectionExperience, Title: v.experience}
		for _, exp := range r.WorkExperience {
			sec.Entries = append(sec.Entries, Entry{
				Heading:    exp.Position,
				Subheading: exp.Company + v.companySep + exp.Location,
				Meta:       exp.StartDate + " - " + exp.EndLabel(),
				Bullets:    filterBlank(exp.Achievements),
			})
		}
		doc.Sections = append(doc.Sections, sec)
	}

	if len(r.Education) > 0 {
		sec := Section{ID: SectionEducation, Title: v.education}
		for _, edu := range r.Education {
			entry := Entry{
				Heading:    edu.Degree + " in " + edu.Field,
				Subheading: edu.Institution + v.companySep + edu.Location,
				Meta:       edu.GraduationDate,
			}
			if edu.GPA != "" {
				entry.Body = "GPA: " + edu.GPA
			}
			sec.Entries = append(sec.Entries, entry)
		}
		doc.Sections = append(doc.Sections, sec)
	}

	if !r.Skills.Empty() {
		sec := Section{ID: SectionSkills, Title: v.skills}
		appendSkillEntry(&sec, "Technical", r.Skills.Technical, v.skillSep)
		appendSkillEntry(&sec, "Tools", r.Skills.Tools, v.skillSep)
		appendSkillEntry(&sec, "Soft Skills", r.Skills.Soft, v.skillSep)
		if v.skillLanguage {
			appendSkillEntry(&sec, "Languages", r.Skills.Languages, v.skillSep)
		}
		doc.Sections = append(doc.Sections, sec)
	}

	if len(r.Projects) > 0 {
		sec := Section{ID: SectionProjects, Title: v.projects}
		for _, project := range r.Projects {
			entry := Entry{Heading: project.Name, Body: project.Description}
			if v.projectTech && len(project.Technologies) > 0 {
				entry.Subheading = "Technologies: " + strings.Join(project.Technologies, v.skillSep)
			}
			if v.projectLink && project.Link != "" {
				entry.Meta = project.Link
			}
			entry.Bullets = filterBlank(project.Highlights)
			sec.Entries = append(sec.Entries, entry)
		}
		doc.Sections = append(doc.Sections, sec)
	}

	if len(r.Certifications) > 0 {
		sec := Section{ID: SectionCertifications, Title: v.certs}
		for _, cert := range r.Certifications {
			line := cert.Issuer + v.certSep + cert.Date
			if v.certExpiry && cert.ExpiryDate != "" {
				line += v.certSep + "Expires: " + cert.ExpiryDate
			}
			sec.Entries = append(sec.Entries, Entry{Heading: cert.Name, Subheading: line})
		}
		doc.Sections = append(doc.Sections, sec)
	}

	return doc
}

func contactSection(info model.PersonalInfo, v variant) Section {
	name := info.FullName
	if name == "" {
		name = "Your Name"
	}
	var fields []string
	for _, f := range []string{info.Email, info.Phone, info.Location, info.LinkedIn, info.Website} {
		if f != "" {
			fields = append(fields, f)
		}
	}
	return Section{
		ID:    SectionContact,
		Title: name,
		Entries: []Entry{{
			Body: strings.Join(fields, v.contactSep),
		}},
	}
}

func appendSkillEntry(sec *Section, label string, items []string, sep string) {
	if len(items) == 0 {
		return
	}
	sec.Entries = append(sec.Entries, Entry{
		Heading: label,
		Body:    strings.Join(items, sep),
	})
}

// filterBlank drops blank and whitespace-only entries before rendering.
// The text exporter intentionally keeps whitespace-only entries; see
// export.ToText.
func filterBlank(items []string) []string {
	var out []string
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			out = append(out, item)
		}
	}
	return out
}
