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

var bookmarkColumns = []string{
	"id", "name", "category_id", "icon", "remark",
	"internal_url", "external_url", "sort_order", "user_id",
	"created_at", "updated_at",
}

// bookmarkRepository is the SQL-backed implementation of [BookmarkRepository].
type bookmarkRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookmarkRepository constructs a [BookmarkRepository] backed by the
// provided database connection and logger.
func NewBookmarkRepository(db *DB, logger *logger.Logger) BookmarkRepository {
	logger.Debug().Msg("creating bookmark repository")
	return &bookmarkRepository{
		db:     db,
		logger: logger,
	}
}

func scanBookmark(row sq.RowScanner) (models.Bookmark, error) {
	var b models.Bookmark
	err := row.Scan(
		&b.ID, &b.Name, &b.CategoryID, &b.Icon, &b.Remark,
		&b.InternalURL, &b.ExternalURL, &b.SortOrder, &b.UserID,
		&b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

// ListBookmarks returns all bookmarks of the given owner, ordered by sort key
// ascending with newest-first creation time as tiebreak.
func (r *bookmarkRepository) ListBookmarks(ctx context.Context, ownerID int64) ([]models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Select(bookmarkColumns...).
		From("bookmarks").
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy(orderBySortKey, orderByCreatedAt)

	rows, err := query.RunWith(r.db.DB).QueryContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.ListBookmarks").Int64("user_id", ownerID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bookmarks := make([]models.Bookmark, 0, 32)
	for rows.Next() {
		bookmark, scanErr := scanBookmark(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*bookmarkRepository.ListBookmarks").Int64("user_id", ownerID).Msg("failed to scan bookmark row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		bookmarks = append(bookmarks, bookmark)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*bookmarkRepository.ListBookmarks").Int64("user_id", ownerID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return bookmarks, nil
}

// CreateBookmark inserts one bookmark row owned by bookmark.UserID and
// returns the persisted row including the generated id and timestamps.
func (r *bookmarkRepository) CreateBookmark(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Insert("bookmarks").
		Columns("name", "category_id", "icon", "remark", "internal_url", "external_url", "sort_order", "user_id").
		Values(
			bookmark.Name, bookmark.CategoryID, bookmark.Icon, bookmark.Remark,
			bookmark.InternalURL, bookmark.ExternalURL, bookmark.SortOrder, bookmark.UserID,
		).
		Suffix(returning(bookmarkColumns))

	created, err := scanBookmark(query.RunWith(r.db.DB).QueryRowContext(ctx))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Bookmark{}, ErrNothingCreated
		}

		log.Err(err).Str("func", "*bookmarkRepository.CreateBookmark").Int64("user_id", bookmark.UserID).Msg("error creating bookmark")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// UpdateBookmark applies a partial update to one owner-scoped bookmark row.
// Only the non-nil fields of update are written, plus updated_at.
func (r *bookmarkRepository) UpdateBookmark(ctx context.Context, id int64, update models.BookmarkUpdate, ownerID int64) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	setMap := sq.Eq{}
	if update.Name != nil {
		setMap["name"] = *update.Name
	}
	if update.CategoryID != nil {
		setMap["category_id"] = *update.CategoryID
	}
	if update.InternalURL != nil {
		setMap["internal_url"] = *update.InternalURL
	}
	if update.ExternalURL != nil {
		setMap["external_url"] = *update.ExternalURL
	}
	if update.Icon != nil {
		setMap["icon"] = *update.Icon
	}
	if update.Remark != nil {
		setMap["remark"] = *update.Remark
	}
	if update.SortOrder != nil {
		setMap["sort_order"] = *update.SortOrder
	}

	if len(setMap) == 0 {
		return models.Bookmark{}, ErrNoFieldsToUpdate
	}

	query := r.db.builder.
		Update("bookmarks").
		SetMap(setMap).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		Suffix(returning(bookmarkColumns))

	updated, err := scanBookmark(query.RunWith(r.db.DB).QueryRowContext(ctx))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Bookmark{}, ErrRecordNotFound
		}

		log.Err(err).Str("func", "*bookmarkRepository.UpdateBookmark").Int64("bookmark_id", id).Int64("user_id", ownerID).Msg("error updating bookmark")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteBookmark removes one owner-scoped bookmark row. Zero affected rows
// maps to [ErrRecordNotFound].
func (r *bookmarkRepository) DeleteBookmark(ctx context.Context, id, ownerID int64) error {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Delete("bookmarks").
		Where(sq.Eq{"id": id, "user_id": ownerID})

	result, err := query.RunWith(r.db.DB).ExecContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.DeleteBookmark").Int64("bookmark_id", id).Int64("user_id", ownerID).Msg("error deleting bookmark")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
