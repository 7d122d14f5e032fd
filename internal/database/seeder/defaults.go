package seeder

import "career-compass/internal/domain/career"

// Defaults returns the seeders a fresh deployment runs: the career
// catalogue the dashboard and resume defaulting depend on.
func Defaults() []Seeder {
	return []Seeder{
		CareersSeeder{Careers: defaultCareers()},
	}
}

func defaultCareers() []career.Career {
	return []career.Career{
		career.Default(),
		{
			Title:            "Data Analyst",
			Description:      "Turns raw data into reports and decisions.",
			Scope:            "Dashboards, ad-hoc analysis, and metric definitions",
			EarningPotential: "$55,000 - $110,000",
			Skills:           []string{"SQL", "Statistics", "Data Visualization", "Spreadsheets"},
			DemandLevel:      career.DemandHigh,
			Category:         "Technology",
		},
		{
			Title:            "UX Designer",
			Description:      "Designs the flows and interfaces people use.",
			Scope:            "Research, wireframes, prototypes, and usability testing",
			EarningPotential: "$60,000 - $125,000",
			Skills:           []string{"User Research", "Prototyping", "Interaction Design", "Accessibility"},
			DemandLevel:      career.DemandMedium,
			Category:         "Design",
		},
		{
			Title:            "DevOps Engineer",
			Description:      "Keeps build, deploy, and runtime infrastructure healthy.",
			Scope:            "CI/CD pipelines, infrastructure as code, and observability",
			EarningPotential: "$80,000 - $170,000",
			Skills:           []string{"Linux", "Containers", "CI/CD", "Cloud Infrastructure"},
			DemandLevel:      career.DemandHigh,
			Category:         "Technology",
		},
		{
			Title:            "Product Manager",
			Description:      "Owns what gets built and why.",
			Scope:            "Roadmaps, prioritization, and cross-team delivery",
			EarningPotential: "$85,000 - $165,000",
			Skills:           []string{"Prioritization", "Communication", "Market Analysis", "Roadmapping"},
			DemandLevel:      career.DemandMedium,
			Category:         "Business",
		},
	}
}
