package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"career-compass/internal/domain/career"
	"career-compass/internal/domain/resume"
	"career-compass/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrNoOwner      = errors.New("no owning user available")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// ResumeUpsertInput carries the partial payload of a PUT. Every field is
// optional; absent fields fall back to type-appropriate empty values.
// Education and Certifications stay raw because callers may send either a
// sequence or a bare object.
type ResumeUpsertInput struct {
	Title        *string
	Summary      *string
	PersonalInfo json.RawMessage
	Skills       []string
	Experiences  []json.RawMessage
	Projects     []json.RawMessage

	Education      json.RawMessage
	Certifications json.RawMessage

	Feedback     *string
	Score        *int
	Strengths    []string
	Improvements []string

	CareerID *uuid.UUID
}

type ResumeUsecase interface {
	Upsert(ctx context.Context, id string, ownerID uuid.UUID, in ResumeUpsertInput) (resume.Resume, bool, error)
	Get(ctx context.Context, id string) (resume.Resume, error)
	Delete(ctx context.Context, id string) error
}

type Resume struct {
	resumes resume.Repository
	users   user.Repository
	careers career.Repository
	cache   ResumeCache

	now func() time.Time
}

func NewResumeUsecase(resumes resume.Repository, users user.Repository, careers career.Repository, cache ResumeCache) *Resume {
	return &Resume{
		resumes: resumes,
		users:   users,
		careers: careers,
		cache:   cache,
		now:     time.Now,
	}
}

// Upsert creates the resume on first write of an id and updates it in place
// afterwards. The owner comes from the caller's validated session; the
// career comes from the payload or falls back to the lazily created default.
// Update never touches owner, career, version, or the active flag.
func (u *Resume) Upsert(ctx context.Context, id string, ownerID uuid.UUID, in ResumeUpsertInput) (resume.Resume, bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return resume.Resume{}, false, ErrInvalidInput
	}
	if ownerID == uuid.Nil {
		return resume.Resume{}, false, ErrNoOwner
	}

	owner, err := u.users.GetUserByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return resume.Resume{}, false, ErrNoOwner
		}
		return resume.Resume{}, false, storeErr(err)
	}

	fields, err := defaultedFields(in)
	if err != nil {
		return resume.Resume{}, false, err
	}

	existing, err := u.resumes.GetByID(ctx, id)
	switch {
	case err == nil:
		fields.apply(&existing)
		existing.UpdatedAt = u.now().UTC()
		if err := u.resumes.Update(ctx, existing); err != nil {
			return resume.Resume{}, false, storeErr(err)
		}
		u.invalidate(ctx, id)
		return existing, false, nil

	case errors.Is(err, resume.ErrNotFound):
		c, err := u.resolveCareer(ctx, in.CareerID)
		if err != nil {
			return resume.Resume{}, false, err
		}

		now := u.now().UTC()
		rs := resume.Resume{
			ID:        id,
			UserID:    owner.ID,
			CareerID:  c.ID,
			Version:   1,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		fields.apply(&rs)

		if err := u.resumes.Create(ctx, rs); err != nil {
			if errors.Is(err, resume.ErrConflict) {
				return resume.Resume{}, false, err
			}
			return resume.Resume{}, false, storeErr(err)
		}
		u.invalidate(ctx, id)
		return rs, true, nil

	default:
		return resume.Resume{}, false, storeErr(err)
	}
}

func (u *Resume) Get(ctx context.Context, id string) (resume.Resume, error) {
	key := resumeCacheKey(id)

	if u.cache != nil {
		var cached resume.Resume
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	rs, err := u.resumes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return resume.Resume{}, err
		}
		return resume.Resume{}, storeErr(err)
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, rs, 0)
	}
	return rs, nil
}

func (u *Resume) Delete(ctx context.Context, id string) error {
	if err := u.resumes.Delete(ctx, id); err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return err
		}
		return storeErr(err)
	}
	u.invalidate(ctx, id)
	return nil
}

func (u *Resume) resolveCareer(ctx context.Context, careerID *uuid.UUID) (career.Career, error) {
	if careerID != nil {
		c, err := u.careers.GetByID(ctx, *careerID)
		if err != nil {
			if errors.Is(err, career.ErrNotFound) {
				return career.Career{}, fmt.Errorf("%w: unknown career", ErrInvalidInput)
			}
			return career.Career{}, storeErr(err)
		}
		return c, nil
	}

	c, err := u.careers.Ensure(ctx, career.Default())
	if err != nil {
		return career.Career{}, storeErr(err)
	}
	return c, nil
}

func (u *Resume) invalidate(ctx context.Context, id string) {
	if u.cache == nil {
		return
	}
	_ = u.cache.Delete(ctx, resumeCacheKey(id))
}

type resumeFields struct {
	title          string
	summary        string
	personalInfo   json.RawMessage
	skills         []string
	experiences    []json.RawMessage
	projects       []json.RawMessage
	education      []json.RawMessage
	certifications []json.RawMessage
	feedback       string
	score          int
	strengths      []string
	improvements   []string
}

func (f resumeFields) apply(rs *resume.Resume) {
	rs.Title = f.title
	rs.Summary = f.summary
	rs.PersonalInfo = f.personalInfo
	rs.Skills = f.skills
	rs.Experiences = f.experiences
	rs.Projects = f.projects
	rs.Education = f.education
	rs.Certifications = f.certifications
	rs.Feedback = f.feedback
	rs.Score = f.score
	rs.Strengths = f.strengths
	rs.Improvements = f.improvements
}

func defaultedFields(in ResumeUpsertInput) (resumeFields, error) {
	education, err := normalizeSection(in.Education)
	if err != nil {
		return resumeFields{}, err
	}
	certifications, err := normalizeSection(in.Certifications)
	if err != nil {
		return resumeFields{}, err
	}

	f := resumeFields{
		title:          strValue(in.Title),
		summary:        strValue(in.Summary),
		personalInfo:   in.PersonalInfo,
		skills:         emptyIfNilStrings(in.Skills),
		experiences:    emptyIfNilRaw(in.Experiences),
		projects:       emptyIfNilRaw(in.Projects),
		education:      education,
		certifications: certifications,
		feedback:       strValue(in.Feedback),
		strengths:      emptyIfNilStrings(in.Strengths),
		improvements:   emptyIfNilStrings(in.Improvements),
	}
	if len(f.personalInfo) == 0 {
		f.personalInfo = json.RawMessage(`{}`)
	}
	if in.Score != nil {
		f.score = *in.Score
	}
	return f, nil
}

// normalizeSection coerces a raw education/certifications value into a
// sequence: absent or null becomes empty, a sequence stays as-is, and a bare
// object is wrapped as a single element.
func normalizeSection(raw json.RawMessage) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []json.RawMessage{}, nil
	}

	if trimmed[0] == '[' {
		var seq []json.RawMessage
		if err := json.Unmarshal(trimmed, &seq); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if seq == nil {
			seq = []json.RawMessage{}
		}
		return seq, nil
	}

	var single json.RawMessage
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return []json.RawMessage{single}, nil
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrInternal, err)
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func emptyIfNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func emptyIfNilRaw(in []json.RawMessage) []json.RawMessage {
	if in == nil {
		return []json.RawMessage{}
	}
	return in
}
