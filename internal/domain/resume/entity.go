package resume

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Resume identifiers are caller-supplied strings; the same id written twice
// updates in place. Section blobs (personal info, experiences, projects,
// education, certifications) are stored as raw JSON so callers keep their
// own shapes.
type Resume struct {
	ID       string
	Title    string
	UserID   uuid.UUID
	CareerID uuid.UUID
	Summary  string

	PersonalInfo   json.RawMessage
	Skills         []string
	Experiences    []json.RawMessage
	Projects       []json.RawMessage
	Education      []json.RawMessage
	Certifications []json.RawMessage

	Feedback     string
	Score        int
	Strengths    []string
	Improvements []string

	Version   int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
