package model

// Demo returns a fully populated sample document used by the CLI and tests.
func Demo() Resume {
	return Resume{
		Title:         "Senior Frontend Engineer",
		TemplateStyle: StyleModern,
		TargetRole:    "Frontend Engineer",
		PersonalInfo: PersonalInfo{
			FullName: "Avery Johnson",
			Email:    "avery.johnson@example.com",
			Phone:    "+1 (555) 213-8899",
			Location: "Seattle, WA",
			LinkedIn: "linkedin.com/in/averyjohnson",
			Website:  "avery.dev",
		},
		ProfessionalSummary: "Frontend engineer with 7+ years building fast, accessible web apps. " +
			"Led design system adoption, improved Lighthouse scores by 30%, and shipped AI-powered " +
			"resume tooling used by 50k+ users.",
		WorkExperience: []WorkExperience{
			{
				ID:        "exp-1",
				Company:   "Nimbus Labs",
				Position:  "Senior Frontend Engineer",
				Location:  "Remote",
				StartDate: "2021",
				EndDate:   "Present",
				Current:   true,
				Achievements: []string{
					"Redesigned resume builder UI, increasing conversion by 18% and reducing time-to-first-export by 35%",
					"Implemented component library with Storybook and Vite, cutting new feature delivery time by 25%",
				},
			},
			{
				ID:        "exp-2",
				Company:   "Brightview",
				Position:  "Frontend Engineer",
				Location:  "Seattle, WA",
				StartDate: "2018",
				EndDate:   "2021",
				Achievements: []string{
					"Built collaborative document editor with CRDT-based syncing for 10k monthly active users",
					"Optimized critical user journeys, improving Core Web Vitals (LCP) from 3.1s to 1.5s",
				},
			},
		},
		Education: []Education{
			{
				ID:             "edu-1",
				Institution:    "University of Washington",
				Degree:         "B.S.",
				Field:          "Computer Science",
				Location:       "Seattle, WA",
				GraduationDate: "2018",
				GPA:            "3.7",
			},
		},
		Skills: Skills{
			Technical: []string{"React", "TypeScript", "Node.js", "GraphQL", "Tailwind", "Playwright"},
			Tools:     []string{"Vite", "Storybook", "Jest", "GitHub Actions"},
			Languages: []string{"English", "Spanish"},
			Soft:      []string{"Product thinking", "Mentoring", "System design"},
		},
		Certifications: []Certification{
			{
				ID:         "cert-1",
				Name:       "AWS Certified Cloud Practitioner",
				Issuer:     "Amazon Web Services",
				Date:       "2023",
				ExpiryDate: "2026",
			},
		},
		Projects: []Project{
			{
				ID:           "proj-1",
				Name:         "AI Resume Builder",
				Description:  "Full-stack resume builder with AI suggestions, PDF export, and template switching.",
				Technologies: []string{"React", "TypeScript", "Vite", "Node.js", "MySQL"},
				Link:         "https://github.com/avery/resume-builder",
				Highlights: []string{
					"Designed scalable component architecture with reusable UI primitives",
					"Integrated AI-based resume critique delivering 25% faster editing",
				},
			},
		},
	}
}
