package handler

import (
	"context"
	"net/http"

	"playground/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name GameService . GameService
type GameService interface {
	Register(ctx context.Context, msg core.CredentialsMessage) error
	Login(ctx context.Context, msg core.CredentialsMessage) (string, error)
	Verify(token string) (core.Identity, error)
	ListPublished(ctx context.Context) ([]core.GameRecord, error)
	GetGame(ctx context.Context, id string) (core.GameRecord, error)
	CreateGame(ctx context.Context, identity core.Identity, msg core.NewGameMessage) (core.GameRecord, error)
	UpdateGame(ctx context.Context, identity core.Identity, id string, msg core.GameUpdateMessage) (core.GameRecord, error)
	DeleteGame(ctx context.Context, identity core.Identity, id string) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
