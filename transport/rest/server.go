package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-bot/internal/bot"
	"github.com/rocketscienceinc/tictactoe-bot/internal/game"
)

type gameUseCase interface {
	CreateGame(ctx context.Context, mode game.Mode, difficulty bot.Difficulty) (*game.Game, error)
	GetGame(ctx context.Context, id string) (*game.Game, error)
	MakeTurn(ctx context.Context, id string, cell int) (*game.Game, error)
	ResetGame(ctx context.Context, id string) (*game.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

type Server struct {
	logger *slog.Logger
	games  gameUseCase
	srv    *http.Server
}

func New(logger *slog.Logger, games gameUseCase, port string) *Server {
	server := &Server{
		logger: logger.With("component", "rest"),
		games:  games,
	}

	server.srv = &http.Server{
		Addr:         ":" + port,
		Handler:      server.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	return server
}

// Handler - routes of the game API.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", pingHandler)

	mux.HandleFunc("POST /games", that.handleCreateGame)
	mux.HandleFunc("GET /games/{id}", that.handleGetGame)
	mux.HandleFunc("POST /games/{id}/turn", that.handleTurn)
	mux.HandleFunc("POST /games/{id}/reset", that.handleReset)
	mux.HandleFunc("DELETE /games/{id}", that.handleDelete)

	return mux
}

// Start blocks until the server stops. A graceful Shutdown is not reported as an error.
func (that *Server) Start() error {
	if err := that.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	if err := that.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
