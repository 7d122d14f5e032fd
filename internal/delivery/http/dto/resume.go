package dto

import (
	"encoding/json"
	"time"

	"career-compass/internal/domain/resume"

	"github.com/google/uuid"
)

// ResumeUpsertRequest mirrors the PUT body. Education and Certifications
// are kept raw because clients send either a list or a single object.
type ResumeUpsertRequest struct {
	Title        *string           `json:"title"`
	Summary      *string           `json:"summary"`
	PersonalInfo json.RawMessage   `json:"personalInfo"`
	Skills       []string          `json:"skills"`
	Experience   []json.RawMessage `json:"experience"`
	Projects     []json.RawMessage `json:"projects"`

	Education      json.RawMessage `json:"education"`
	Certifications json.RawMessage `json:"certifications"`

	Feedback     *string  `json:"feedback"`
	Score        *int     `json:"score"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`

	CareerID *uuid.UUID `json:"careerId"`
}

type ResumeResponse struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	UserID   uuid.UUID `json:"userId"`
	CareerID uuid.UUID `json:"careerId"`
	Summary  string    `json:"summary"`

	PersonalInfo   json.RawMessage   `json:"personalInfo"`
	Skills         []string          `json:"skills"`
	Experience     []json.RawMessage `json:"experience"`
	Projects       []json.RawMessage `json:"projects"`
	Education      []json.RawMessage `json:"education"`
	Certifications []json.RawMessage `json:"certifications"`

	Feedback     string   `json:"feedback,omitempty"`
	Score        int      `json:"score,omitempty"`
	Strengths    []string `json:"strengths,omitempty"`
	Improvements []string `json:"improvements,omitempty"`

	Version   int       `json:"version"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewResumeResponse(rs resume.Resume) ResumeResponse {
	return ResumeResponse{
		ID:       rs.ID,
		Title:    rs.Title,
		UserID:   rs.UserID,
		CareerID: rs.CareerID,
		Summary:  rs.Summary,

		PersonalInfo:   rs.PersonalInfo,
		Skills:         rs.Skills,
		Experience:     rs.Experiences,
		Projects:       rs.Projects,
		Education:      rs.Education,
		Certifications: rs.Certifications,

		Feedback:     rs.Feedback,
		Score:        rs.Score,
		Strengths:    rs.Strengths,
		Improvements: rs.Improvements,

		Version:   rs.Version,
		IsActive:  rs.IsActive,
		CreatedAt: rs.CreatedAt,
		UpdatedAt: rs.UpdatedAt,
	}
}
