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

var hotSourceColumns = []string{
	"id", "name", "url", "icon", "type", "enable_preview", "sort_order",
	"user_id", "created_at", "updated_at",
}

// hotSourceRepository is the SQL-backed implementation of
// [HotSourceRepository].
type hotSourceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewHotSourceRepository constructs a [HotSourceRepository] backed by the
// provided database connection and logger.
func NewHotSourceRepository(db *DB, logger *logger.Logger) HotSourceRepository {
	logger.Debug().Msg("creating hot source repository")
	return &hotSourceRepository{
		db:     db,
		logger: logger,
	}
}

func scanHotSource(row sq.RowScanner) (models.HotSource, error) {
	var h models.HotSource
	err := row.Scan(
		&h.ID, &h.Name, &h.URL, &h.Icon, &h.Type, &h.EnablePreview, &h.SortOrder,
		&h.UserID, &h.CreatedAt, &h.UpdatedAt,
	)
	return h, err
}

// ListSources returns all hot search sources of the given owner, ordered
// by sort key ascending with newest-first creation time as tiebreak.
func (r *hotSourceRepository) ListSources(ctx context.Context, ownerID int64) ([]models.HotSource, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Select(hotSourceColumns...).
		From("hot_sources").
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy(orderBySortKey, orderByCreatedAt)

	rows, err := query.RunWith(r.db.DB).QueryContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "*hotSourceRepository.ListSources").Int64("user_id", ownerID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	sources := make([]models.HotSource, 0, 8)
	for rows.Next() {
		source, scanErr := scanHotSource(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*hotSourceRepository.ListSources").Int64("user_id", ownerID).Msg("failed to scan hot source row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		sources = append(sources, source)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*hotSourceRepository.ListSources").Int64("user_id", ownerID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return sources, nil
}

// CreateSource inserts one hot source row owned by source.UserID and
// returns the persisted row including the generated id and timestamps.
func (r *hotSourceRepository) CreateSource(ctx context.Context, source models.HotSource) (models.HotSource, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Insert("hot_sources").
		Columns("name", "url", "icon", "type", "enable_preview", "sort_order", "user_id").
		Values(source.Name, source.URL, source.Icon, source.Type, source.EnablePreview, source.SortOrder, source.UserID).
		Suffix(returning(hotSourceColumns))

	created, err := scanHotSource(query.RunWith(r.db.DB).QueryRowContext(ctx))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HotSource{}, ErrNothingCreated
		}

		log.Err(err).Str("func", "*hotSourceRepository.CreateSource").Int64("user_id", source.UserID).Msg("error creating hot source")
		return models.HotSource{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// UpdateSource applies a partial update to one owner-scoped hot source
// row. Only the non-nil fields of update are written, plus updated_at.
func (r *hotSourceRepository) UpdateSource(ctx context.Context, id int64, update models.HotSourceUpdate, ownerID int64) (models.HotSource, error) {
	log := logger.FromContext(ctx)

	setMap := sq.Eq{}
	if update.Name != nil {
		setMap["name"] = *update.Name
	}
	if update.Icon != nil {
		setMap["icon"] = *update.Icon
	}
	if update.URL != nil {
		setMap["url"] = *update.URL
	}
	if update.Type != nil {
		setMap["type"] = *update.Type
	}
	if update.SortOrder != nil {
		setMap["sort_order"] = *update.SortOrder
	}
	if update.EnablePreview != nil {
		setMap["enable_preview"] = *update.EnablePreview
	}

	if len(setMap) == 0 {
		return models.HotSource{}, ErrNoFieldsToUpdate
	}

	query := r.db.builder.
		Update("hot_sources").
		SetMap(setMap).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		Suffix(returning(hotSourceColumns))

	updated, err := scanHotSource(query.RunWith(r.db.DB).QueryRowContext(ctx))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HotSource{}, ErrRecordNotFound
		}

		log.Err(err).Str("func", "*hotSourceRepository.UpdateSource").Int64("hot_source_id", id).Int64("user_id", ownerID).Msg("error updating hot source")
		return models.HotSource{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteSource removes one owner-scoped hot source row. Zero affected
// rows maps to [ErrRecordNotFound].
func (r *hotSourceRepository) DeleteSource(ctx context.Context, id, ownerID int64) error {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Delete("hot_sources").
		Where(sq.Eq{"id": id, "user_id": ownerID})

	result, err := query.RunWith(r.db.DB).ExecContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "*hotSourceRepository.DeleteSource").Int64("hot_source_id", id).Int64("user_id", ownerID).Msg("error deleting hot source")
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
