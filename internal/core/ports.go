package core

import (
	"context"

	"github.com/golang-jwt/jwt"

	"playground/internal/repository"
	tokenIssuer "playground/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, username, passwordHash string) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	GetUserByID(ctx context.Context, id string) (repository.User, error)
	GetUsersByID(ctx context.Context, ids []string) ([]repository.User, error)
	CreateGame(ctx context.Context, game repository.Game) (repository.Game, error)
	GetGameByID(ctx context.Context, id string) (repository.Game, error)
	ListPublishedGames(ctx context.Context) ([]repository.Game, error)
	UpdateGame(ctx context.Context, game repository.Game) error
	DeleteGameByID(ctx context.Context, id string) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
