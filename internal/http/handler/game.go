package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"playground/internal/core"
	"playground/internal/http/handler/middleware"
	"playground/internal/http/payload"
)

var (
	Register   = "POST /api/register"
	Login      = "POST /api/login"
	ListGames  = "GET /api/games"
	GetGame    = "GET /api/games/{id}"
	CreateGame = "POST /api/games"
	UpdateGame = "PUT /api/games/{id}"
	DeleteGame = "DELETE /api/games/{id}"
)

type GameHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	games            GameService
}

func NewGameHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, gameService GameService) *GameHandler {
	return &GameHandler{
		logs:             logger,
		requestValidator: requestValidator,
		games:            gameService,
	}
}

func (h *GameHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.CredentialsRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not register",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	if err := h.games.Register(r.Context(), req.ToMessage()); err != nil {
		resp := Response{
			Message: "Registration failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUsernameTaken) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]bool{"success": true}, http.StatusOK, requestId)
}

func (h *GameHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.CredentialsRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	token, err := h.games.Login(r.Context(), req.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidCredentials) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *GameHandler) HandleListGames(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	games, err := h.games.ListPublished(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve games",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to list published games",
			"error", err,
			"handler", ListGames,
			"request_id", requestId)
		return
	}

	h.respond(w, games, http.StatusOK, requestId)
}

func (h *GameHandler) HandleGetGame(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	game, err := h.games.GetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		resp := Response{
			Message: "Could not retrieve game",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrGameNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to get game",
			"error", err,
			"handler", GetGame,
			"request_id", requestId)
		return
	}

	h.respond(w, game, http.StatusOK, requestId)
}

func (h *GameHandler) HandleCreateGame(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	identity, ok := h.authenticate(w, r, CreateGame, requestId)
	if !ok {
		return
	}

	var req payload.CreateGameRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not create game",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateGame,
			"request_id", requestId)
		return
	}

	game, err := h.games.CreateGame(r.Context(), identity, req.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Could not create game",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidToken) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to create game",
			"error", err,
			"handler", CreateGame,
			"request_id", requestId)
		return
	}

	h.respond(w, game, http.StatusOK, requestId)
}

func (h *GameHandler) HandleUpdateGame(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	identity, ok := h.authenticate(w, r, UpdateGame, requestId)
	if !ok {
		return
	}

	var req payload.UpdateGameRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not update game",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateGame,
			"request_id", requestId)
		return
	}

	game, err := h.games.UpdateGame(r.Context(), identity, r.PathValue("id"), req.ToMessage())
	if err != nil {
		h.respondGameMutationError(w, err, "Could not update game", UpdateGame, requestId)
		return
	}

	h.respond(w, game, http.StatusOK, requestId)
}

func (h *GameHandler) HandleDeleteGame(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	identity, ok := h.authenticate(w, r, DeleteGame, requestId)
	if !ok {
		return
	}

	if err := h.games.DeleteGame(r.Context(), identity, r.PathValue("id")); err != nil {
		h.respondGameMutationError(w, err, "Could not delete game", DeleteGame, requestId)
		return
	}

	h.respond(w, map[string]bool{"success": true}, http.StatusOK, requestId)
}

// authenticate extracts the bearer token and verifies it before any game
// mutation runs. The server-side check is authoritative regardless of what the
// client UI allows.
func (h *GameHandler) authenticate(w http.ResponseWriter, r *http.Request, route, requestId string) (core.Identity, bool) {
	token, ok := bearerToken(r)
	if !ok {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "bearer token is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing bearer token", "handler", route, "request_id", requestId)
		return core.Identity{}, false
	}

	identity, err := h.games.Verify(token)
	if err != nil {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   core.ErrInvalidToken.Error(),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("token verification failed",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return core.Identity{}, false
	}

	return identity, true
}

func (h *GameHandler) respondGameMutationError(w http.ResponseWriter, err error, message, route, requestId string) {
	resp := Response{
		Message: message,
	}
	httpCode := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrGameNotFound):
		httpCode = http.StatusNotFound
		resp.Error = err.Error()
	case errors.Is(err, core.ErrNotOwner):
		httpCode = http.StatusForbidden
		resp.Error = err.Error()
	default:
		resp.Error = "unexpected error occurred"
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw("game mutation failed",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *GameHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func bearerToken(r *http.Request) (string, bool) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

func requestID(r *http.Request) string {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}
