package career

import (
	"time"

	"github.com/google/uuid"
)

type DemandLevel string

const (
	DemandHigh   DemandLevel = "HIGH"
	DemandMedium DemandLevel = "MEDIUM"
	DemandLow    DemandLevel = "LOW"
)

type Career struct {
	ID               uuid.UUID
	Title            string
	Description      string
	Scope            string
	EarningPotential string
	Skills           []string
	DemandLevel      DemandLevel
	Category         string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Default is the fallback career a resume is attached to when the caller
// names none and the store holds none. Created at most once; keyed by the
// unique title.
func Default() Career {
	return Career{
		Title:            "Software Developer",
		Description:      "Designs, builds, and maintains software systems.",
		Scope:            "Full-stack application and systems development",
		EarningPotential: "$70,000 - $160,000",
		Skills:           []string{"Programming", "Problem Solving", "Version Control", "Testing"},
		DemandLevel:      DemandHigh,
		Category:         "Technology",
	}
}
