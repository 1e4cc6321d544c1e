package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/homenav/nav-server/internal/logger"
	"github.com/homenav/nav-server/models"
)

// userColumns is the canonical column order for scanning users rows.
var userColumns = []string{
	"id", "username", "password", "avatar",
	"weather_adcode", "weather_key", "container_config",
	"created_at", "updated_at",
}

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, lookup, and partial profile updates against
// the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func scanUser(row sq.RowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Avatar,
		&u.WeatherAdcode, &u.WeatherKey, &u.ContainerConfig,
		&u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// CreateUser persists a new user account and returns the fully populated
// [models.User] with server-assigned fields (ID, timestamps).
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the newly created
// account.
//
// Error handling:
//   - driver-level unique violation on username → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, username, passwordHash, avatar string) (models.User, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Insert("users").
		Columns("username", "password", "avatar").
		Values(username, passwordHash, avatar).
		Suffix(returning(userColumns))

	user, err := scanUser(query.RunWith(r.db.DB).QueryRowContext(ctx))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", username).Msg("error creating user")

		if r.db.isUniqueViolation(err) {
			return models.User{}, ErrUsernameAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByUsername retrieves the user record whose username matches exactly.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other failure → wrapped as [ErrExecutingQuery].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"username": username})

	user, err := scanUser(query.RunWith(r.db.DB).QueryRowContext(ctx))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Str("username", username).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// FindUserByID retrieves the user record with the given primary key.
// Returns [ErrNoUserWasFound] when no such user exists.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query := r.db.builder.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id})

	user, err := scanUser(query.RunWith(r.db.DB).QueryRowContext(ctx))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByID").Int64("user_id", id).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// UpdateUser applies a partial profile update: only the non-nil fields of
// update are written, plus updated_at. ContainerConfig is serialized to its
// JSON text form before storage.
//
// Error handling:
//   - Empty update → [ErrNoFieldsToUpdate], nothing is executed.
//   - No matching row → [ErrNoUserWasFound].
func (r *userRepository) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	setMap := sq.Eq{}
	if update.Avatar != nil {
		setMap["avatar"] = *update.Avatar
	}
	if update.WeatherAdcode != nil {
		setMap["weather_adcode"] = *update.WeatherAdcode
	}
	if update.WeatherKey != nil {
		setMap["weather_key"] = *update.WeatherKey
	}
	if update.ContainerConfig != nil {
		serialized, err := json.Marshal(update.ContainerConfig)
		if err != nil {
			return models.User{}, fmt.Errorf("error serializing container config: %w", err)
		}
		setMap["container_config"] = string(serialized)
	}

	if len(setMap) == 0 {
		return models.User{}, ErrNoFieldsToUpdate
	}

	query := r.db.builder.
		Update("users").
		SetMap(setMap).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		Suffix(returning(userColumns))

	user, err := scanUser(query.RunWith(r.db.DB).QueryRowContext(ctx))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", id).Msg("error updating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}
