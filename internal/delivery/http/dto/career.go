package dto

import (
	"career-compass/internal/domain/career"

	"github.com/google/uuid"
)

type CareerResponse struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Scope            string    `json:"scope"`
	EarningPotential string    `json:"earningPotential"`
	Skills           []string  `json:"skills"`
	DemandLevel      string    `json:"demandLevel"`
	Category         string    `json:"category"`
}

func NewCareerResponse(c career.Career) CareerResponse {
	return CareerResponse{
		ID:               c.ID,
		Title:            c.Title,
		Description:      c.Description,
		Scope:            c.Scope,
		EarningPotential: c.EarningPotential,
		Skills:           c.Skills,
		DemandLevel:      string(c.DemandLevel),
		Category:         c.Category,
	}
}

func NewCareerResponses(in []career.Career) []CareerResponse {
	out := make([]CareerResponse, 0, len(in))
	for _, c := range in {
		out = append(out, NewCareerResponse(c))
	}
	return out
}
