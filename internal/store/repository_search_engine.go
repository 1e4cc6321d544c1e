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

var searchEngineColumns = []string{
	"id", "name", "url", "search_url", "icon", "sort_order", "quick_command",
	"user_id", "created_at", "updated_at",
}

// searchEngineRepository is the SQL-backed implementation of
// [SearchEngineRepository].
type searchEngineRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSearchEngineRepository constructs a [SearchEngineRepository] backed by
// the provided database connection and logger.
func NewSearchEngineRepository(db *DB, logger *logger.Logger) SearchEngineRepository {
	logger.Debug().Msg("creating search engine repository")
	return &searchEngineRepository{
		db:     db,
		logger: logger,
	}
}

func scanSearchEngine(row sq.RowScanner) (models.SearchEngine, error) {
	var e models.SearchEngine
	err := row.Scan(
		&e.ID, &e.Name, &e.URL, &e.SearchURL, &e.Icon, &e.SortOrder, &e.QuickCommand,
		&e.UserID, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// ListEngines returns all search engines of the given owner, ordered by sort
// key ascending with newest-first creation time as tiebreak.
func (r *searchEngineRepository) ListEngines(ctx context.Context, ownerID int64) ([]models.SearchEngine, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Select(searchEngineColumns...).
		From("search_engines").
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy(orderBySortKey, orderByCreatedAt)

	rows, err := query.RunWith(r.db.DB).QueryContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "*searchEngineRepository.ListEngines").Int64("user_id", ownerID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	engines := make([]models.SearchEngine, 0, 8)
	for rows.Next() {
		engine, scanErr := scanSearchEngine(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*searchEngineRepository.ListEngines").Int64("user_id", ownerID).Msg("failed to scan search engine row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		engines = append(engines, engine)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*searchEngineRepository.ListEngines").Int64("user_id", ownerID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return engines, nil
}

// FindEngineByQuickCommand looks up an owner's engine holding the given quick
// command, matched case-insensitively. excludeID skips one engine id from the
// match, which lets updates keep their own command; pass 0 to exclude none.
// A nil engine with a nil error means the command is free.
func (r *searchEngineRepository) FindEngineByQuickCommand(ctx context.Context, quickCommand string, ownerID, excludeID int64) (*models.SearchEngine, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Select(searchEngineColumns...).
		From("search_engines").
		Where(sq.Eq{"user_id": ownerID}).
		Where(sq.Expr("LOWER(quick_command) = LOWER(?)", quickCommand))
	if excludeID != 0 {
		query = query.Where(sq.NotEq{"id": excludeID})
	}

	engine, err := scanSearchEngine(query.RunWith(r.db.DB).QueryRowContext(ctx))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		log.Err(err).Str("func", "*searchEngineRepository.FindEngineByQuickCommand").Int64("user_id", ownerID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return &engine, nil
}

// CreateEngine inserts one search engine row owned by engine.UserID and
// returns the persisted row including the generated id and timestamps.
func (r *searchEngineRepository) CreateEngine(ctx context.Context, engine models.SearchEngine) (models.SearchEngine, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Insert("search_engines").
		Columns("name", "url", "search_url", "icon", "sort_order", "quick_command", "user_id").
		Values(engine.Name, engine.URL, engine.SearchURL, engine.Icon, engine.SortOrder, engine.QuickCommand, engine.UserID).
		Suffix(returning(searchEngineColumns))

	created, err := scanSearchEngine(query.RunWith(r.db.DB).QueryRowContext(ctx))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SearchEngine{}, ErrNothingCreated
		}

		log.Err(err).Str("func", "*searchEngineRepository.CreateEngine").Int64("user_id", engine.UserID).Msg("error creating search engine")
		return models.SearchEngine{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// UpdateEngine applies a partial update to one owner-scoped search engine
// row. Only the non-nil fields of update are written, plus updated_at.
func (r *searchEngineRepository) UpdateEngine(ctx context.Context, id int64, update models.SearchEngineUpdate, ownerID int64) (models.SearchEngine, error) {
	log := logger.FromContext(ctx)

	setMap := sq.Eq{}
	if update.Name != nil {
		setMap["name"] = *update.Name
	}
	if update.URL != nil {
		setMap["url"] = *update.URL
	}
	if update.SearchURL != nil {
		setMap["search_url"] = *update.SearchURL
	}
	if update.Icon != nil {
		setMap["icon"] = *update.Icon
	}
	if update.SortOrder != nil {
		setMap["sort_order"] = *update.SortOrder
	}
	if update.QuickCommand != nil {
		setMap["quick_command"] = *update.QuickCommand
	}

	if len(setMap) == 0 {
		return models.SearchEngine{}, ErrNoFieldsToUpdate
	}

	query := r.db.builder.
		Update("search_engines").
		SetMap(setMap).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		Suffix(returning(searchEngineColumns))

	updated, err := scanSearchEngine(query.RunWith(r.db.DB).QueryRowContext(ctx))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SearchEngine{}, ErrRecordNotFound
		}

		log.Err(err).Str("func", "*searchEngineRepository.UpdateEngine").Int64("engine_id", id).Int64("user_id", ownerID).Msg("error updating search engine")
		return models.SearchEngine{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteEngine removes one owner-scoped search engine row. Zero affected
// rows maps to [ErrRecordNotFound].
func (r *searchEngineRepository) DeleteEngine(ctx context.Context, id, ownerID int64) error {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Delete("search_engines").
		Where(sq.Eq{"id": id, "user_id": ownerID})

	result, err := query.RunWith(r.db.DB).ExecContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "*searchEngineRepository.DeleteEngine").Int64("engine_id", id).Int64("user_id", ownerID).Msg("error deleting search engine")
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
