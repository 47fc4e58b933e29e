// Package export serializes a resume document into downloadable artifacts:
// a flat plain-text rendering and an A4 PDF assembled from a raster capture
// of the rendered preview.
package export

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"resume-builder/resume/model"
)

const bullet = "  • "

// ToText serializes a resume to plain text. Section order is fixed: contact
// header, summary, work experience, education, skills, projects,
// certifications. A section with no backing data is omitted entirely.
//
// Achievements and highlights are written as-is; only exact empty strings
// are skipped. The template renderer trims whitespace-only entries and this
// exporter deliberately does not — keep the two in sync with care.
func ToText(r model.Resume) string {
	var b strings.Builder

	writeContact(&b, r.PersonalInfo)

	if r.ProfessionalSummary != "" {
		writeHeader(&b, "PROFESSIONAL SUMMARY")
		b.WriteString(r.ProfessionalSummary)
		b.WriteString("\n\n")
	}

	if len(r.WorkExperience) > 0 {
		writeHeader(&b, "WORK EXPERIENCE")
		for _, exp := range r.WorkExperience {
			fmt.Fprintf(&b, "%s\n", exp.Position)
			fmt.Fprintf(&b, "%s | %s\n", exp.Company, exp.Location)
			fmt.Fprintf(&b, "%s - %s\n", exp.StartDate, exp.EndLabel())
			for _, achievement := range exp.Achievements {
				if achievement == "" {
					continue
				}
				b.WriteString(bullet)
				b.WriteString(achievement)
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	if len(r.Education) > 0 {
		writeHeader(&b, "EDUCATION")
		for _, edu := range r.Education {
			fmt.Fprintf(&b, "%s in %s\n", edu.Degree, edu.Field)
			fmt.Fprintf(&b, "%s | %s\n", edu.Institution, edu.Location)
			fmt.Fprintf(&b, "%s\n", edu.GraduationDate)
			if edu.GPA != "" {
				fmt.Fprintf(&b, "GPA: %s\n", edu.GPA)
			}
			b.WriteString("\n")
		}
	}

	if !r.Skills.Empty() {
		writeHeader(&b, "SKILLS")
		writeSkillLine(&b, "Technical", r.Skills.Technical)
		writeSkillLine(&b, "Tools", r.Skills.Tools)
		writeSkillLine(&b, "Soft Skills", r.Skills.Soft)
		writeSkillLine(&b, "Languages", r.Skills.Languages)
		b.WriteString("\n")
	}

	if len(r.Projects) > 0 {
		writeHeader(&b, "PROJECTS")
		for _, project := range r.Projects {
			fmt.Fprintf(&b, "%s\n", project.Name)
			fmt.Fprintf(&b, "%s\n", project.Description)
			if len(project.Technologies) > 0 {
				fmt.Fprintf(&b, "Technologies: %s\n", strings.Join(project.Technologies, ", "))
			}
			if project.Link != "" {
				fmt.Fprintf(&b, "Link: %s\n", project.Link)
			}
			for _, highlight := range project.Highlights {
				if highlight == "" {
					continue
				}
				b.WriteString(bullet)
				b.WriteString(highlight)
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	if len(r.Certifications) > 0 {
		writeHeader(&b, "CERTIFICATIONS")
		for _, cert := range r.Certifications {
			fmt.Fprintf(&b, "%s\n", cert.Name)
			line := fmt.Sprintf("%s | %s", cert.Issuer, cert.Date)
			if cert.ExpiryDate != "" {
				line += fmt.Sprintf(" | Expires: %s", cert.ExpiryDate)
			}
			b.WriteString(line)
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

// writeContact emits the name in upper case with a matching '=' underline,
// then one line per present contact field, then a blank separator line.
func writeContact(b *strings.Builder, info model.PersonalInfo) {
	if info.FullName == "" && info.Email == "" && info.Phone == "" &&
		info.Location == "" && info.LinkedIn == "" && info.Website == "" {
		return
	}

	if info.FullName != "" {
		b.WriteString(strings.ToUpper(info.FullName))
		b.WriteString("\n")
		b.WriteString(strings.Repeat("=", utf8.RuneCountInString(info.FullName)))
		b.WriteString("\n")
	}
	for _, line := range []string{info.Email, info.Phone, info.Location, info.LinkedIn, info.Website} {
		if line != "" {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
}

func writeHeader(b *strings.Builder, title string) {
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", utf8.RuneCountInString(title)))
	b.WriteString("\n")
}

func writeSkillLine(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, strings.Join(items, ", "))
}
