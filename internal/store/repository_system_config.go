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

var systemConfigColumns = []string{
	"id", "site_title", "icp_record", "user_id", "created_at", "updated_at",
}

// systemConfigRepository is the SQL-backed implementation of
// [SystemConfigRepository].
type systemConfigRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSystemConfigRepository constructs a [SystemConfigRepository] backed by
// the provided database connection and logger.
func NewSystemConfigRepository(db *DB, logger *logger.Logger) SystemConfigRepository {
	logger.Debug().Msg("creating system config repository")
	return &systemConfigRepository{
		db:     db,
		logger: logger,
	}
}

func scanSystemConfig(row sq.RowScanner) (models.SystemConfig, error) {
	var c models.SystemConfig
	err := row.Scan(&c.ID, &c.SiteTitle, &c.ICPRecord, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// GetConfig returns the system config row of the given owner, or
// [ErrRecordNotFound] when no row has been created yet.
func (r *systemConfigRepository) GetConfig(ctx context.Context, ownerID int64) (models.SystemConfig, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Select(systemConfigColumns...).
		From("system_configs").
		Where(sq.Eq{"user_id": ownerID})

	config, err := scanSystemConfig(query.RunWith(r.db.DB).QueryRowContext(ctx))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SystemConfig{}, ErrRecordNotFound
		}

		log.Err(err).Str("func", "*systemConfigRepository.GetConfig").Int64("user_id", ownerID).Msg("failed to execute query")
		return models.SystemConfig{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return config, nil
}

// UpsertConfig applies a partial update to the owner's config row, creating
// the row first when it does not exist. A missing site title on the lazily
// created row falls back to [models.DefaultSiteTitle].
func (r *systemConfigRepository) UpsertConfig(ctx context.Context, ownerID int64, update models.SystemConfigUpdate) (models.SystemConfig, error) {
	log := logger.FromContext(ctx)

	setMap := sq.Eq{}
	if update.SiteTitle != nil {
		setMap["site_title"] = *update.SiteTitle
	}
	if update.ICPRecord != nil {
		setMap["icp_record"] = *update.ICPRecord
	}

	if len(setMap) == 0 {
		return models.SystemConfig{}, ErrNoFieldsToUpdate
	}

	query := r.db.builder.
		Update("system_configs").
		SetMap(setMap).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"user_id": ownerID}).
		Suffix(returning(systemConfigColumns))

	updated, err := scanSystemConfig(query.RunWith(r.db.DB).QueryRowContext(ctx))
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Str("func", "*systemConfigRepository.UpsertConfig").Int64("user_id", ownerID).Msg("error updating system config")
		return models.SystemConfig{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	// No row yet: create it with the submitted fields over the defaults.
	siteTitle := models.DefaultSiteTitle
	if update.SiteTitle != nil {
		siteTitle = *update.SiteTitle
	}
	icpRecord := ""
	if update.ICPRecord != nil {
		icpRecord = *update.ICPRecord
	}

	insert := r.db.builder.
		Insert("system_configs").
		Columns("site_title", "icp_record", "user_id").
		Values(siteTitle, icpRecord, ownerID).
		Suffix(returning(systemConfigColumns))

	created, err := scanSystemConfig(insert.RunWith(r.db.DB).QueryRowContext(ctx))
	if err != nil {
		log.Err(err).Str("func", "*systemConfigRepository.UpsertConfig").Int64("user_id", ownerID).Msg("error creating system config")
		return models.SystemConfig{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}
