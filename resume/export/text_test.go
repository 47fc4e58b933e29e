package export

import (
	"strings"
	"testing"

	"resume-builder/resume/model"
)

func TestToTextNameOnly(t *testing.T) {
	r := model.Resume{}
	r.PersonalInfo.FullName = "Jane Q. Public"

	got := ToText(r)
	want := "JANE Q. PUBLIC\n==============\n\n"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestToTextEmptyResumeIsEmpty(t *testing.T) {
	if got := ToText(model.Resume{}); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestToTextIsDeterministic(t *testing.T) {
	r := model.Demo()
	first := ToText(r)
	second := ToText(r)
	if first != second {
		t.Fatalf("expected byte-identical output on repeat export")
	}
}

func TestToTextSectionOrder(t *testing.T) {
	got := ToText(model.Demo())

	headers := []string{
		"AVERY JOHNSON",
		"PROFESSIONAL SUMMARY",
		"WORK EXPERIENCE",
		"EDUCATION",
		"SKILLS",
		"PROJECTS",
		"CERTIFICATIONS",
	}
	last := -1
	for _, h := range headers {
		idx := strings.Index(got, h)
		if idx < 0 {
			t.Fatalf("missing section %q in output", h)
		}
		if idx < last {
			t.Fatalf("section %q out of order", h)
		}
		last = idx
	}
}

func TestToTextOmitsEmptySections(t *testing.T) {
	r := model.Resume{}
	r.PersonalInfo.FullName = "Jane Q. Public"
	r.ProfessionalSummary = "A short summary."

	got := ToText(r)
	for _, header := range []string{"WORK EXPERIENCE", "EDUCATION", "SKILLS", "PROJECTS", "CERTIFICATIONS"} {
		if strings.Contains(got, header) {
			t.Fatalf("expected %q to be omitted, output:\n%s", header, got)
		}
	}
	if !strings.Contains(got, "PROFESSIONAL SUMMARY") {
		t.Fatalf("expected summary section present")
	}
}

func TestToTextCurrentRoleShowsPresent(t *testing.T) {
	r := model.Resume{}
	r.WorkExperience = []model.WorkExperience{{
		Position:  "Engineer",
		Company:   "Acme",
		Location:  "Remote",
		StartDate: "2020",
		EndDate:   "2024",
		Current:   true,
	}}

	got := ToText(r)
	if !strings.Contains(got, "2020 - Present") {
		t.Fatalf("expected Present label, got:\n%s", got)
	}
	if strings.Contains(got, "2024") {
		t.Fatalf("stored end date must be ignored when current, got:\n%s", got)
	}
}

func TestToTextKeepsWhitespaceOnlyAchievements(t *testing.T) {
	// The exporter skips only exact empty strings; whitespace-only entries
	// survive. The renderer trims them. The asymmetry is intentional.
	r := model.Resume{}
	r.WorkExperience = []model.WorkExperience{{
		Position:     "Engineer",
		Company:      "Acme",
		Achievements: []string{"Did a thing", "   ", ""},
	}}

	got := ToText(r)
	if strings.Count(got, "  • ") != 2 {
		t.Fatalf("expected 2 bullets (whitespace-only kept, empty dropped), got:\n%q", got)
	}
}

func TestToTextSkillsOrderAndJoin(t *testing.T) {
	r := model.Resume{}
	r.Skills = model.Skills{
		Technical: []string{"Go", "SQL"},
		Soft:      []string{"Mentoring"},
		Languages: []string{"English"},
		Tools:     []string{"Docker"},
	}

	got := ToText(r)
	idx := func(s string) int { return strings.Index(got, s) }
	if !(idx("Technical: Go, SQL") >= 0 &&
		idx("Technical:") < idx("Tools: Docker") &&
		idx("Tools:") < idx("Soft Skills: Mentoring") &&
		idx("Soft Skills:") < idx("Languages: English")) {
		t.Fatalf("skills lines missing or out of order:\n%s", got)
	}
}

func TestToTextCertificationExpiry(t *testing.T) {
	r := model.Resume{}
	r.Certifications = []model.Certification{
		{Name: "Cert A", Issuer: "Org", Date: "2023", ExpiryDate: "2026"},
		{Name: "Cert B", Issuer: "Org", Date: "2022"},
	}

	got := ToText(r)
	if !strings.Contains(got, "Org | 2023 | Expires: 2026") {
		t.Fatalf("expected expiry suffix, got:\n%s", got)
	}
	if !strings.Contains(got, "Org | 2022\n") || strings.Contains(got, "2022 | Expires") {
		t.Fatalf("unexpected expiry on Cert B:\n%s", got)
	}
}

func TestFilename(t *testing.T) {
	cases := []struct {
		name string
		in   string
		ext  string
		want string
	}{
		{name: "spaces_to_underscores", in: "Jane Q. Public", ext: "txt", want: "Jane_Q._Public.txt"},
		{name: "collapses_runs", in: "Jane   Public", ext: "pdf", want: "Jane_Public.pdf"},
		{name: "blank_defaults", in: "", ext: "pdf", want: "resume.pdf"},
		{name: "tabs_and_newlines", in: "Jane\tQ\nPublic", ext: "txt", want: "Jane_Q_Public.txt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Filename(tc.in, tc.ext); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
