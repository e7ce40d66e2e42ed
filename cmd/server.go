package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"
	"go.uber.org/zap/zapcore"

	"playground/internal/config"
	"playground/internal/core"
	"playground/internal/db"
	"playground/internal/http/handler"
	"playground/internal/http/handler/middleware"
	"playground/internal/http/payload"
	"playground/internal/http/server"
	"playground/internal/repository"
	"playground/pkg/jwt"
	"playground/pkg/log"
	"playground/web"
)

func Start() error {
	logger := log.NewZapLogger("playground", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewGameRepository(dbConn)

	err = repo.MigrateTables(
		&repository.User{},
		&repository.Game{})
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// playground
	playground := core.NewPlayground(
		logger,
		repo,
		jwtService)

	// handler
	gameHlr := handler.NewGameHandler(
		logger,
		payload.Decoder{},
		playground)

	client, err := web.Client()
	if err != nil {
		logger.Errorw("failed to load embedded client", "error", err)
		return err
	}

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
	hdlr = cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(hdlr)

	// register routes
	mux.HandleFunc(handler.Register, gameHlr.HandleRegister)
	mux.HandleFunc(handler.Login, gameHlr.HandleLogin)
	mux.HandleFunc(handler.ListGames, gameHlr.HandleListGames)
	mux.HandleFunc(handler.GetGame, gameHlr.HandleGetGame)
	mux.HandleFunc(handler.CreateGame, gameHlr.HandleCreateGame)
	mux.HandleFunc(handler.UpdateGame, gameHlr.HandleUpdateGame)
	mux.HandleFunc(handler.DeleteGame, gameHlr.HandleDeleteGame)
	mux.Handle("/", http.FileServer(http.FS(client)))

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
