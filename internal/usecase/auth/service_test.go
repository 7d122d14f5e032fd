package auth

import (
	"context"
	"errors"
	"testing"

	"career-compass/internal/domain/user"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byID:    map[uuid.UUID]user.User{},
		byEmail: map[string]user.User{},
	}
}

func (m *mockUserRepo) CreateUser(_ context.Context, u user.User) error {
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func TestRegister_NormalizesEmailAndHashesPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{
		Email:    "  User@Example.COM ",
		Password: "secret-password",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Email != "user@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash must not leave the service")
	}

	stored := repo.byEmail["user@example.com"]
	if stored.PasswordHash == "" || stored.PasswordHash == "secret-password" {
		t.Fatalf("stored password must be hashed")
	}
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	svc := NewService(newMockUserRepo())
	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "short"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	in := RegisterInput{Email: "a@b.c", Password: "secret-password"}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "secret-password"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	u, err := svc.Login(context.Background(), LoginInput{Email: "A@B.C", Password: "secret-password"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash must not leave the service")
	}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "a@b.c", Password: "wrong-password"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Login(context.Background(), LoginInput{Email: "nobody@b.c", Password: "secret-password"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
