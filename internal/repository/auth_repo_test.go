package repository_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"hvac_reward/internal/repository"
)

func TestUserSQLite_CreateAndLookup(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	first, err := repo.Auth.Create(ctx, "alice", "h1")
	if err != nil {
		t.Fatalf("Create alice: %v", err)
	}
	second, err := repo.Auth.Create(ctx, "bob", "h2")
	if err != nil {
		t.Fatalf("Create bob: %v", err)
	}
	if first <= 0 || second == first {
		t.Fatalf("ids not distinct: %d %d", first, second)
	}

	u, err := repo.Auth.GetByUsername(ctx, "bob")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if u == nil || u.ID != second || u.PasswordHash != "h2" {
		t.Fatalf("unexpected user: %+v", u)
	}

	u, err = repo.Auth.GetByUsername(ctx, "carol")
	if err != nil || u != nil {
		t.Fatalf("expected (nil, nil) for unknown user, got (%+v, %v)", u, err)
	}
}

func TestUserSQLite_DuplicateUsername(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	if _, err := repo.Auth.Create(ctx, "alice", "h1"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	id, err := repo.Auth.Create(ctx, "alice", "h2")
	if !errors.Is(err, repository.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if id != 0 {
		t.Fatalf("expected id 0 on conflict, got %d", id)
	}

	u, err := repo.Auth.GetByUsername(ctx, "alice")
	if err != nil || u == nil || u.PasswordHash != "h1" {
		t.Fatalf("original user changed: (%+v, %v)", u, err)
	}
}

func TestUserSQLite_DriverErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()
	repo := repository.NewUserSQLite(db)
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO users").
		WithArgs("bob", "h").
		WillReturnError(errors.New("disk full"))
	_, err = repo.Create(ctx, "bob", "h")
	if err == nil || errors.Is(err, repository.ErrUsernameTaken) || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected plain insert error, got %v", err)
	}

	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewErrorResult(errors.New("no rowid")))
	if _, err = repo.Create(ctx, "carol", "h"); err == nil || !strings.Contains(err.Error(), "no rowid") {
		t.Fatalf("expected last insert id error, got %v", err)
	}

	mock.ExpectQuery("SELECT id, username, password_hash FROM users").
		WithArgs("dave").
		WillReturnError(errors.New("db query failed"))
	if u, err := repo.GetByUsername(ctx, "dave"); err == nil || u != nil {
		t.Fatalf("expected query error, got (%+v, %v)", u, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}
