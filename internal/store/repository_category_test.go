package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/homenav/nav-server/models"
)

func newTestCategoryRepo(t *testing.T) (*categoryRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, conn := newTestDB(t)
	repo := &categoryRepository{
		db:     db,
		logger: db.logger,
	}
	return repo, mock, conn
}

func categoryRows(id int64, name string, ownerID int64) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.
		NewRows(categoryColumns).
		AddRow(id, name, "", int64(0), ownerID, now, now)
}

func TestListCategories_Success(t *testing.T) {
	repo, mock, conn := newTestCategoryRepo(t)
	defer conn.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(categoryColumns).
		AddRow(int64(1), "dev", "", int64(0), int64(10), now, now).
		AddRow(int64(2), "news", "", int64(1), int64(10), now, now)

	mock.ExpectQuery("SELECT (.+) FROM bookmark_categories").
		WithArgs(int64(10)).
		WillReturnRows(rows)

	categories, err := repo.ListCategories(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if categories[0].Name != "dev" || categories[1].Name != "news" {
		t.Errorf("unexpected category order: %v", categories)
	}
}

func TestCreateCategory_Success(t *testing.T) {
	repo, mock, conn := newTestCategoryRepo(t)
	defer conn.Close()

	ctx := context.Background()
	category := models.BookmarkCategory{Name: "dev", UserID: 10}

	mock.ExpectQuery("INSERT INTO bookmark_categories").
		WithArgs("dev", "", int64(0), int64(10)).
		WillReturnRows(categoryRows(1, "dev", 10))

	created, err := repo.CreateCategory(ctx, category)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
}

func TestUpdateCategory_NoFields(t *testing.T) {
	repo, mock, conn := newTestCategoryRepo(t)
	defer conn.Close()

	ctx := context.Background()

	_, err := repo.UpdateCategory(ctx, 1, models.CategoryUpdate{}, 10)
	if !errors.Is(err, ErrNoFieldsToUpdate) {
		t.Fatalf("expected ErrNoFieldsToUpdate, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no statement should have been executed: %v", err)
	}
}

func TestUpdateCategory_NotFoundOrUnauthorized(t *testing.T) {
	repo, mock, conn := newTestCategoryRepo(t)
	defer conn.Close()

	ctx := context.Background()
	name := "renamed"

	mock.ExpectQuery("UPDATE bookmark_categories").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateCategory(ctx, 1, models.CategoryUpdate{Name: &name}, 99)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDeleteCategory_Success(t *testing.T) {
	repo, mock, conn := newTestCategoryRepo(t)
	defer conn.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM bookmark_categories").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteCategory(ctx, 1, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteCategory_StillHasBookmarks(t *testing.T) {
	repo, mock, conn := newTestCategoryRepo(t)
	defer conn.Close()

	ctx := context.Background()

	// guarded DELETE touches nothing, but the category itself exists
	mock.ExpectExec("DELETE FROM bookmark_categories").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1 FROM bookmark_categories").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	err := repo.DeleteCategory(ctx, 1, 10)
	if !errors.Is(err, ErrCategoryNotEmpty) {
		t.Fatalf("expected ErrCategoryNotEmpty, got %v", err)
	}
}

func TestDeleteCategory_NotFoundOrUnauthorized(t *testing.T) {
	repo, mock, conn := newTestCategoryRepo(t)
	defer conn.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM bookmark_categories").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1 FROM bookmark_categories").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(sql.ErrNoRows)

	err := repo.DeleteCategory(ctx, 1, 10)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
