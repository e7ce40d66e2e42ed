package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"playground/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrGameNotFound error = errors.New("game not found")
var ErrDuplicateUsername error = errors.New("username already taken")

type GameRepository struct {
	db Storage
}

func NewGameRepository(db Storage) *GameRepository {
	return &GameRepository{
		db: db,
	}
}

func (r *GameRepository) MigrateTables(tables ...any) error {
	err := r.db.MigrateTable(tables...)
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *GameRepository) CreateUser(ctx context.Context, username, passwordHash string) (User, error) {
	user := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
	}

	err := r.db.Insert(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrDuplicateUsername
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

func (r *GameRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *GameRepository) GetUserByID(ctx context.Context, id string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "id", id, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

func (r *GameRepository) GetUsersByID(ctx context.Context, ids []string) ([]User, error) {
	users := []User{}

	if len(ids) == 0 {
		return users, nil
	}

	err := r.db.GetAllIn(ctx, "id", ids, &users)
	if err != nil {
		return nil, fmt.Errorf("get users by id: %w", err)
	}

	return users, nil
}

func (r *GameRepository) CreateGame(ctx context.Context, game Game) (Game, error) {
	game.ID = uuid.NewString()

	err := r.db.Insert(ctx, &game)
	if err != nil {
		return Game{}, fmt.Errorf("insert game: %w", err)
	}

	return game, nil
}

func (r *GameRepository) GetGameByID(ctx context.Context, id string) (Game, error) {
	var game Game

	err := r.db.GetOneBy(ctx, "id", id, &game)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Game{}, ErrGameNotFound
		}
		return Game{}, fmt.Errorf("get game by id: %w", err)
	}

	return game, nil
}

func (r *GameRepository) ListPublishedGames(ctx context.Context) ([]Game, error) {
	games := []Game{}

	err := r.db.GetAllBy(ctx, "published", true, &games)
	if err != nil {
		return nil, fmt.Errorf("get published games: %w", err)
	}

	return games, nil
}

func (r *GameRepository) UpdateGame(ctx context.Context, game Game) error {
	err := r.db.Save(ctx, &game)
	if err != nil {
		return fmt.Errorf("save game: %w", err)
	}

	return nil
}

func (r *GameRepository) DeleteGameByID(ctx context.Context, id string) error {
	err := r.db.DeleteBy(ctx, "id", id, &Game{})
	if err != nil {
		return fmt.Errorf("delete game by id: %w", err)
	}

	return nil
}
