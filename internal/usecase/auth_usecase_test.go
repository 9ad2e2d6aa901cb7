package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"med-ready/internal/domain/user"
	"med-ready/internal/pkg/jwt"
	ucauth "med-ready/internal/usecase/auth"

	"github.com/google/uuid"
)

type memUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byID:    map[uuid.UUID]user.User{},
		byEmail: map[string]user.User{},
	}
}

func (r *memUserRepo) CreateUser(_ context.Context, u user.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return errors.New("duplicate email")
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *memUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *memUserRepo) UpdateUser(_ context.Context, u user.User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return user.ErrNotFound
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func newAuthUsecase() (*Auth, *memUserRepo) {
	repo := newMemUserRepo()
	jwtSvc := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	return NewAuthUsecase(repo, jwtSvc), repo
}

func TestAuthRegisterLoginRefresh(t *testing.T) {
	uc, _ := newAuthUsecase()
	ctx := context.Background()

	usr, access, refresh, err := uc.Register(ctx, ucauth.RegisterInput{
		Name:     "Sarah Johnson",
		Email:    "Sarah@Demo.com",
		Password: "superseekrit",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if usr.Email != "sarah@demo.com" {
		t.Errorf("email not normalized: %q", usr.Email)
	}
	if usr.PasswordHash != "" {
		t.Error("password hash leaked in register response")
	}
	if access == "" || refresh == "" {
		t.Fatal("expected both tokens after register")
	}

	logged, _, _, err := uc.Login(ctx, ucauth.LoginInput{Email: "sarah@demo.com", Password: "superseekrit"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if logged.ID != usr.ID {
		t.Errorf("login returned wrong user: %s != %s", logged.ID, usr.ID)
	}

	newAccess, newRefresh, err := uc.Refresh(ctx, refresh)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if newAccess == "" || newRefresh == "" {
		t.Fatal("expected rotated tokens after refresh")
	}
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	uc, _ := newAuthUsecase()
	ctx := context.Background()

	in := ucauth.RegisterInput{Name: "A", Email: "dup@demo.com", Password: "superseekrit"}
	if _, _, _, err := uc.Register(ctx, in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, _, _, err := uc.Register(ctx, in)
	if !errors.Is(err, ucauth.ErrEmailAlreadyRegistered) {
		t.Fatalf("want ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestAuthLoginWrongPassword(t *testing.T) {
	uc, _ := newAuthUsecase()
	ctx := context.Background()

	in := ucauth.RegisterInput{Name: "A", Email: "a@demo.com", Password: "superseekrit"}
	if _, _, _, err := uc.Register(ctx, in); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, _, err := uc.Login(ctx, ucauth.LoginInput{Email: "a@demo.com", Password: "wrong-password"})
	if !errors.Is(err, ucauth.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}

	_, _, _, err = uc.Login(ctx, ucauth.LoginInput{Email: "nobody@demo.com", Password: "superseekrit"})
	if !errors.Is(err, ucauth.ErrInvalidCredentials) {
		t.Fatalf("unknown email: want ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthRegisterShortPassword(t *testing.T) {
	uc, _ := newAuthUsecase()

	_, _, _, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Name:     "A",
		Email:    "a@demo.com",
		Password: "short",
	})
	if !errors.Is(err, ucauth.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestAuthRefreshRejectsAccessToken(t *testing.T) {
	uc, _ := newAuthUsecase()
	ctx := context.Background()

	_, access, _, err := uc.Register(ctx, ucauth.RegisterInput{
		Name:     "A",
		Email:    "a@demo.com",
		Password: "superseekrit",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := uc.Refresh(ctx, access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("want ErrInvalidRefreshToken, got %v", err)
	}
	if _, _, err := uc.Refresh(ctx, ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("empty token: want ErrUnauthorized, got %v", err)
	}
	if _, _, err := uc.Refresh(ctx, "not-a-jwt"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("garbage token: want ErrInvalidRefreshToken, got %v", err)
	}
}
