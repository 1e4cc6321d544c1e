package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/homenav/nav-server/internal/logger"
	"github.com/homenav/nav-server/models"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	db := &DB{
		DB:                conn,
		builder:           sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		isUniqueViolation: postgresUniqueViolation,
		logger:            logger.NewLogger("test"),
	}
	return db, mock, conn
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, conn := newTestDB(t)
	repo := &userRepository{
		db:     db,
		logger: db.logger,
	}
	return repo, mock, conn
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(id int64, username, passwordHash string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.
		NewRows(userColumns).
		AddRow(id, username, passwordHash, "", "", "", "", now, now)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, conn := newTestUserRepo(t)
	defer conn.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("john", "hash", "avatar.png").
		WillReturnRows(userRows(1, "john", "hash"))

	created, err := repo.CreateUser(ctx, "john", "hash", "avatar.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.Username != "john" {
		t.Errorf("expected username john, got %s", created.Username)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, conn := newTestUserRepo(t)
	defer conn.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, "john", "hash", "")
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, conn := newTestUserRepo(t)
	defer conn.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, "john", "hash", "")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock, conn := newTestUserRepo(t)
	defer conn.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("john").
		WillReturnRows(userRows(7, "john", "hash"))

	found, err := repo.FindUserByUsername(ctx, "john")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != 7 {
		t.Errorf("expected ID=7, got %d", found.ID)
	}
	if found.PasswordHash != "hash" {
		t.Errorf("expected password hash to round-trip, got %q", found.PasswordHash)
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock, conn := newTestUserRepo(t)
	defer conn.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByUsername(ctx, "ghost")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, conn := newTestUserRepo(t)
	defer conn.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(ctx, 404)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestUpdateUser_NoFields(t *testing.T) {
	repo, mock, conn := newTestUserRepo(t)
	defer conn.Close()

	ctx := context.Background()

	_, err := repo.UpdateUser(ctx, 1, models.UserUpdate{})
	if !errors.Is(err, ErrNoFieldsToUpdate) {
		t.Fatalf("expected ErrNoFieldsToUpdate, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no statement should have been executed: %v", err)
	}
}

func TestUpdateUser_Success(t *testing.T) {
	repo, mock, conn := newTestUserRepo(t)
	defer conn.Close()

	ctx := context.Background()
	avatar := "new.png"

	mock.ExpectQuery("UPDATE users").
		WithArgs(avatar, int64(1)).
		WillReturnRows(userRows(1, "john", "hash"))

	updated, err := repo.UpdateUser(ctx, 1, models.UserUpdate{Avatar: &avatar})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != 1 {
		t.Errorf("expected ID=1, got %d", updated.ID)
	}
}

func TestUpdateUser_SerializesContainerConfig(t *testing.T) {
	repo, mock, conn := newTestUserRepo(t)
	defer conn.Close()

	ctx := context.Background()
	cfg := models.ContainerConfig{ShowWeather: false, ShowHotSearch: true, ShowBookmark: true}

	mock.ExpectQuery("UPDATE users").
		WithArgs(`{"showWeather":false,"showHotSearch":true,"showBookmark":true}`, int64(1)).
		WillReturnRows(userRows(1, "john", "hash"))

	if _, err := repo.UpdateUser(ctx, 1, models.UserUpdate{ContainerConfig: &cfg}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo, mock, conn := newTestUserRepo(t)
	defer conn.Close()

	ctx := context.Background()
	avatar := "new.png"

	mock.ExpectQuery("UPDATE users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateUser(ctx, 404, models.UserUpdate{Avatar: &avatar})
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}
