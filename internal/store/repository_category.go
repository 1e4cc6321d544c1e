package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/homenav/nav-server/internal/logger"
	"github.com/homenav/nav-server/models"
)

var categoryColumns = []string{
	"id", "name", "icon", "sort_order", "user_id", "created_at", "updated_at",
}

// categoryRepository is the SQL-backed implementation of [CategoryRepository].
// Every statement is scoped by the owner's user_id so records of other users
// stay structurally invisible.
type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCategoryRepository constructs a [CategoryRepository] backed by the
// provided database connection and logger.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

func scanCategory(row sq.RowScanner) (models.BookmarkCategory, error) {
	var c models.BookmarkCategory
	err := row.Scan(&c.ID, &c.Name, &c.Icon, &c.SortOrder, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// ListCategories returns all bookmark categories of the given owner, ordered
// by sort key ascending with newest-first creation time as tiebreak.
func (r *categoryRepository) ListCategories(ctx context.Context, ownerID int64) ([]models.BookmarkCategory, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Select(categoryColumns...).
		From("bookmark_categories").
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy(orderBySortKey, orderByCreatedAt)

	rows, err := query.RunWith(r.db.DB).QueryContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Int64("user_id", ownerID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.BookmarkCategory, 0, 16)
	for rows.Next() {
		category, scanErr := scanCategory(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*categoryRepository.ListCategories").Int64("user_id", ownerID).Msg("failed to scan category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		categories = append(categories, category)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*categoryRepository.ListCategories").Int64("user_id", ownerID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return categories, nil
}

// CreateCategory inserts one category row owned by category.UserID and
// returns the persisted row including the generated id and timestamps.
func (r *categoryRepository) CreateCategory(ctx context.Context, category models.BookmarkCategory) (models.BookmarkCategory, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Insert("bookmark_categories").
		Columns("name", "icon", "sort_order", "user_id").
		Values(category.Name, category.Icon, category.SortOrder, category.UserID).
		Suffix(returning(categoryColumns))

	created, err := scanCategory(query.RunWith(r.db.DB).QueryRowContext(ctx))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BookmarkCategory{}, ErrNothingCreated
		}

		log.Err(err).Str("func", "*categoryRepository.CreateCategory").Int64("user_id", category.UserID).Msg("error creating category")
		return models.BookmarkCategory{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// UpdateCategory applies a partial update to one owner-scoped category row.
// Only the non-nil fields of update are written, plus updated_at. The
// owner-scoped WHERE clause is the sole authorization check: a row owned by
// someone else fails with [ErrRecordNotFound] exactly like a missing row.
func (r *categoryRepository) UpdateCategory(ctx context.Context, id int64, update models.CategoryUpdate, ownerID int64) (models.BookmarkCategory, error) {
	log := logger.FromContext(ctx)

	setMap := sq.Eq{}
	if update.Name != nil {
		setMap["name"] = *update.Name
	}
	if update.Icon != nil {
		setMap["icon"] = *update.Icon
	}
	if update.SortOrder != nil {
		setMap["sort_order"] = *update.SortOrder
	}

	if len(setMap) == 0 {
		return models.BookmarkCategory{}, ErrNoFieldsToUpdate
	}

	query := r.db.builder.
		Update("bookmark_categories").
		SetMap(setMap).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		Suffix(returning(categoryColumns))

	updated, err := scanCategory(query.RunWith(r.db.DB).QueryRowContext(ctx))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BookmarkCategory{}, ErrRecordNotFound
		}

		log.Err(err).Str("func", "*categoryRepository.UpdateCategory").Int64("category_id", id).Int64("user_id", ownerID).Msg("error updating category")
		return models.BookmarkCategory{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteCategory removes one owner-scoped category row, guarded by an
// anti-join on bookmarks: a category that still has bookmarks is never
// deleted, and the guard runs inside the DELETE itself so no concurrent
// bookmark insert can slip between a check and the delete.
//
// When zero rows are affected the category either does not exist for this
// owner ([ErrRecordNotFound]) or still has bookmarks ([ErrCategoryNotEmpty]);
// a follow-up existence probe tells the two apart.
func (r *categoryRepository) DeleteCategory(ctx context.Context, id, ownerID int64) error {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Delete("bookmark_categories").
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		Where(sq.Expr(
			"NOT EXISTS (SELECT 1 FROM bookmarks WHERE category_id = ? AND user_id = ?)",
			id, ownerID,
		))

	result, err := query.RunWith(r.db.DB).ExecContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.DeleteCategory").Int64("category_id", id).Int64("user_id", ownerID).Msg("error deleting category")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected > 0 {
		return nil
	}

	// Zero rows: distinguish a guarded (non-empty) category from a missing one.
	exists := r.db.builder.
		Select("1").
		From("bookmark_categories").
		Where(sq.Eq{"id": id, "user_id": ownerID})

	var one int
	if scanErr := exists.RunWith(r.db.DB).QueryRowContext(ctx).Scan(&one); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return ErrRecordNotFound
		}

		log.Err(scanErr).Str("func", "*categoryRepository.DeleteCategory").Int64("category_id", id).Msg("error probing category existence")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return ErrCategoryNotEmpty
}
