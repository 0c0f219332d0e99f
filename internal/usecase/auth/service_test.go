package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/ami-meeting-svc/errors"
	"github.com/johnquangdev/ami-meeting-svc/internal/domain/entities"
	"github.com/johnquangdev/ami-meeting-svc/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entities.User
}

func newFakeUserRepo(users ...*entities.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entities.User)}
	for _, u := range users {
		r.users[u.Username] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entities.User) error {
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func seedUser(t *testing.T, username, password string) *entities.User {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return &entities.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@test.local",
		PasswordHash: hash,
	}
}

func newTestService(repo *fakeUserRepo) *AuthService {
	mgr := jwt.NewManager("test-secret", 30*time.Minute)
	return NewAuthService(repo, mgr, zap.NewNop())
}

func TestLogin_Success(t *testing.T) {
	user := seedUser(t, "alice", "correct horse")
	svc := newTestService(newFakeUserRepo(user))

	got, token, err := svc.Login(context.Background(), "alice", "correct horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != user.ID {
		t.Fatal("wrong user returned")
	}
	if token == "" {
		t.Fatal("expected a session token")
	}

	// The issued token must round-trip through session validation
	validated, err := svc.ValidateSession(context.Background(), token)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if validated.ID != user.ID {
		t.Fatal("token resolved to the wrong user")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(newFakeUserRepo(seedUser(t, "alice", "correct horse")))

	_, _, err := svc.Login(context.Background(), "alice", "battery staple")
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_AUTH_INVALID_CREDENTIALS {
		t.Fatalf("expected AUTH_INVALID_CREDENTIALS, got %v", err)
	}
}

func TestLogin_UnknownUserSameError(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, _, err := svc.Login(context.Background(), "mallory", "anything")
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_AUTH_INVALID_CREDENTIALS {
		t.Fatalf("unknown user must look like bad credentials, got %v", err)
	}
}

func TestValidateSession_GarbageToken(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.ValidateSession(context.Background(), "not-a-jwt")
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_AUTH_INVALID_TOKEN {
		t.Fatalf("expected AUTH_INVALID_TOKEN, got %v", err)
	}
}
