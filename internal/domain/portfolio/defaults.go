package portfolio

// Default returns the canonical complete model: every top-level field set and
// every collection present as an empty sequence. The merge rule enumerates
// this shape, so it is the single source of truth for what "complete" means.
func Default() *PortfolioModel {
	return &PortfolioModel{
		Name:      "Sameer",
		Tagline:   "Software Developer",
		About:     "I build things for the web.",
		ResumeURL: "",
		HeroImage: "",
		Socials: Socials{
			Github:   "https://github.com",
			Linkedin: "https://linkedin.com",
			Twitter:  "https://twitter.com",
			Email:    "mailto:hello@example.com",
		},
		Experiences:  []Experience{},
		Education:    []Education{},
		Projects:     []Project{},
		Certificates: []Certificate{},
		Skills:       []SkillCategory{},
	}
}

// Freshly added records start from placeholder values the owner then edits
// field by field.

func NewExperience(id int64) Experience {
	return Experience{ID: id, Role: "New Role", Company: "Company", Period: "2024 - Present"}
}

func NewEducation(id int64) Education {
	return Education{ID: id, Degree: "New Degree", Institution: "Institution", Period: "2024"}
}

func NewProject(id int64) Project {
	return Project{ID: id, Title: "New Project", Tags: []string{}}
}

func NewCertificate(id int64) Certificate {
	return Certificate{ID: id, Title: "New Certificate", Issuer: "Issuer"}
}
