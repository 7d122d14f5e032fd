package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"career-compass/internal/domain/career"
	"career-compass/internal/domain/resume"
	"career-compass/internal/domain/user"

	"github.com/google/uuid"
)

type mockResumeRepo struct {
	store map[string]resume.Resume

	createErr error
	updateErr error
}

func newMockResumeRepo() *mockResumeRepo {
	return &mockResumeRepo{store: map[string]resume.Resume{}}
}

func (m *mockResumeRepo) GetByID(_ context.Context, id string) (resume.Resume, error) {
	rs, ok := m.store[id]
	if !ok {
		return resume.Resume{}, resume.ErrNotFound
	}
	return rs, nil
}

func (m *mockResumeRepo) Create(_ context.Context, r resume.Resume) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.store[r.ID]; ok {
		return resume.ErrConflict
	}
	m.store[r.ID] = r
	return nil
}

func (m *mockResumeRepo) Update(_ context.Context, r resume.Resume) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.store[r.ID]; !ok {
		return resume.ErrNotFound
	}
	m.store[r.ID] = r
	return nil
}

func (m *mockResumeRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.store[id]; !ok {
		return resume.ErrNotFound
	}
	delete(m.store, id)
	return nil
}

type mockUserRepo struct {
	users map[uuid.UUID]user.User
}

func (m mockUserRepo) CreateUser(context.Context, user.User) error { return nil }
func (m mockUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}
func (m mockUserRepo) GetUserByEmail(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrNotFound
}
func (m mockUserRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }

type mockCareerRepo struct {
	byID    map[uuid.UUID]career.Career
	byTitle map[string]career.Career

	ensureCalls int
}

func newMockCareerRepo() *mockCareerRepo {
	return &mockCareerRepo{
		byID:    map[uuid.UUID]career.Career{},
		byTitle: map[string]career.Career{},
	}
}

func (m *mockCareerRepo) GetByID(_ context.Context, id uuid.UUID) (career.Career, error) {
	c, ok := m.byID[id]
	if !ok {
		return career.Career{}, career.ErrNotFound
	}
	return c, nil
}

func (m *mockCareerRepo) Ensure(_ context.Context, c career.Career) (career.Career, error) {
	m.ensureCalls++
	if existing, ok := m.byTitle[c.Title]; ok {
		return existing, nil
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	m.byID[c.ID] = c
	m.byTitle[c.Title] = c
	return c, nil
}

func (m *mockCareerRepo) List(context.Context) ([]career.Career, error) {
	out := make([]career.Career, 0, len(m.byID))
	for _, c := range m.byID {
		out = append(out, c)
	}
	return out, nil
}

func newTestResumeUsecase(owner uuid.UUID) (*Resume, *mockResumeRepo, *mockCareerRepo) {
	resumes := newMockResumeRepo()
	careers := newMockCareerRepo()
	users := mockUserRepo{users: map[uuid.UUID]user.User{
		owner: {ID: owner, Email: "u1@example.com"},
	}}
	return NewResumeUsecase(resumes, users, careers, nil), resumes, careers
}

func strPtr(s string) *string { return &s }

func TestResumeUpsert_CreatesWithDefaultCareer(t *testing.T) {
	owner := uuid.New()
	uc, resumes, careers := newTestResumeUsecase(owner)

	rs, created, err := uc.Upsert(context.Background(), "r1", owner, ResumeUpsertInput{
		Title: strPtr("X"),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true")
	}
	if rs.Title != "X" {
		t.Fatalf("unexpected title %q", rs.Title)
	}
	if rs.UserID != owner {
		t.Fatalf("owner not attached")
	}
	if rs.Version != 1 || !rs.IsActive {
		t.Fatalf("expected version=1 active=true, got version=%d active=%v", rs.Version, rs.IsActive)
	}

	def, ok := careers.byTitle[career.Default().Title]
	if !ok {
		t.Fatalf("default career not created")
	}
	if rs.CareerID != def.ID {
		t.Fatalf("resume not attached to default career")
	}
	if rs.Skills == nil || rs.Education == nil || rs.Certifications == nil {
		t.Fatalf("absent sequences must default to empty, not nil")
	}
	if string(rs.PersonalInfo) != "{}" {
		t.Fatalf("absent personal info must default to {}, got %s", rs.PersonalInfo)
	}
	if _, ok := resumes.store["r1"]; !ok {
		t.Fatalf("resume not persisted")
	}
}

func TestResumeUpsert_DefaultCareerCreatedOnce(t *testing.T) {
	owner := uuid.New()
	uc, _, careers := newTestResumeUsecase(owner)

	for _, id := range []string{"r1", "r2", "r3"} {
		if _, _, err := uc.Upsert(context.Background(), id, owner, ResumeUpsertInput{}); err != nil {
			t.Fatalf("upsert %s: %v", id, err)
		}
	}

	if len(careers.byTitle) != 1 {
		t.Fatalf("expected exactly one career, got %d", len(careers.byTitle))
	}
}

func TestResumeUpsert_UpdatePreservesOwnerCareerVersion(t *testing.T) {
	owner := uuid.New()
	uc, _, _ := newTestResumeUsecase(owner)

	first, _, err := uc.Upsert(context.Background(), "r1", owner, ResumeUpsertInput{
		Title:  strPtr("first"),
		Skills: []string{"Go"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	second, created, err := uc.Upsert(context.Background(), "r1", owner, ResumeUpsertInput{
		Title: strPtr("second"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if created {
		t.Fatalf("expected created=false on second put")
	}
	if second.Title != "second" {
		t.Fatalf("title not replaced")
	}
	if len(second.Skills) != 0 {
		t.Fatalf("absent skills must reset to empty on update, got %v", second.Skills)
	}
	if second.UserID != first.UserID || second.CareerID != first.CareerID {
		t.Fatalf("update must not touch owner or career")
	}
	if second.Version != first.Version || second.IsActive != first.IsActive {
		t.Fatalf("update must not touch version or active flag")
	}
	if second.CreatedAt != first.CreatedAt {
		t.Fatalf("update must not touch created timestamp")
	}
}

func TestResumeUpsert_ExplicitCareer(t *testing.T) {
	owner := uuid.New()
	uc, _, careers := newTestResumeUsecase(owner)

	c, _ := careers.Ensure(context.Background(), career.Career{Title: "Data Analyst"})
	careers.ensureCalls = 0

	rs, _, err := uc.Upsert(context.Background(), "r1", owner, ResumeUpsertInput{CareerID: &c.ID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rs.CareerID != c.ID {
		t.Fatalf("explicit career ignored")
	}
	if careers.ensureCalls != 0 {
		t.Fatalf("default career must not be ensured when one is named")
	}
}

func TestResumeUpsert_UnknownCareer(t *testing.T) {
	owner := uuid.New()
	uc, _, _ := newTestResumeUsecase(owner)

	unknown := uuid.New()
	_, _, err := uc.Upsert(context.Background(), "r1", owner, ResumeUpsertInput{CareerID: &unknown})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestResumeUpsert_NoOwner(t *testing.T) {
	owner := uuid.New()
	uc, _, _ := newTestResumeUsecase(owner)

	if _, _, err := uc.Upsert(context.Background(), "r1", uuid.Nil, ResumeUpsertInput{}); !errors.Is(err, ErrNoOwner) {
		t.Fatalf("expected ErrNoOwner for nil owner, got %v", err)
	}
	if _, _, err := uc.Upsert(context.Background(), "r1", uuid.New(), ResumeUpsertInput{}); !errors.Is(err, ErrNoOwner) {
		t.Fatalf("expected ErrNoOwner for unknown owner, got %v", err)
	}
}

func TestResumeUpsert_EmptyID(t *testing.T) {
	owner := uuid.New()
	uc, _, _ := newTestResumeUsecase(owner)

	if _, _, err := uc.Upsert(context.Background(), "   ", owner, ResumeUpsertInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestResumeUpsert_ConflictPassthrough(t *testing.T) {
	owner := uuid.New()
	uc, resumes, _ := newTestResumeUsecase(owner)
	resumes.createErr = resume.ErrConflict

	_, _, err := uc.Upsert(context.Background(), "r1", owner, ResumeUpsertInput{})
	if !errors.Is(err, resume.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestResumeDelete(t *testing.T) {
	owner := uuid.New()
	uc, _, _ := newTestResumeUsecase(owner)

	if _, _, err := uc.Upsert(context.Background(), "r1", owner, ResumeUpsertInput{}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := uc.Delete(context.Background(), "r1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := uc.Delete(context.Background(), "r1"); !errors.Is(err, resume.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if _, err := uc.Get(context.Background(), "r1"); !errors.Is(err, resume.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestNormalizeSection(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int
	}{
		{"absent", "", 0},
		{"null", "null", 0},
		{"empty array", "[]", 0},
		{"array", `[{"school":"A"},{"school":"B"}]`, 2},
		{"bare object", `{"school":"A"}`, 1},
		{"scalar", `"A"`, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := normalizeSection(json.RawMessage(tc.in))
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if out == nil {
				t.Fatalf("result must never be nil")
			}
			if len(out) != tc.want {
				t.Fatalf("expected %d elements, got %d", tc.want, len(out))
			}
		})
	}
}

func TestNormalizeSection_Malformed(t *testing.T) {
	if _, err := normalizeSection(json.RawMessage(`[{"broken"`)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
