package client

import (
	"golang.org/x/exp/slog"

	"healthsync/internal/app/client/config"
	"healthsync/internal/domain/snapshot"
	"healthsync/internal/domain/tips"
	"healthsync/internal/domain/user"
	"healthsync/internal/storage"
)

// App wires the client's services over one local store. Everything the CLI
// does goes through here.
type App struct {
	config    *config.Config
	log       *slog.Logger
	store     storage.Store
	assembler *snapshot.Assembler
	users     user.Servicer
	tips      tips.Servicer
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	var store storage.Store
	sqliteStore, err := storage.NewSQLiteStore(cfg.DataPath)
	if err != nil {
		log.Warn("failed to open sqlite store, falling back to memory", "error", err)
		store = storage.NewMemoryStore()
	} else {
		store = sqliteStore
	}

	return newWithStore(cfg, log, store), nil
}

// NewWithStore builds an app over a caller-supplied store. Tests use it with
// an in-memory store.
func NewWithStore(cfg *config.Config, log *slog.Logger, store storage.Store) *App {
	return newWithStore(cfg, log, store)
}

func newWithStore(cfg *config.Config, log *slog.Logger, store storage.Store) *App {
	userRepo := user.NewStoreRepository(store)

	return &App{
		config:    cfg,
		log:       log,
		store:     store,
		assembler: snapshot.NewAssembler(store, log),
		users:     user.NewService(userRepo, user.NewInputValidator(), log),
		tips:      tips.NewService(log),
	}
}

func (a *App) Users() user.Servicer {
	return a.users
}

func (a *App) Tips() tips.Servicer {
	return a.tips
}

func (a *App) Config() *config.Config {
	return a.config
}

func (a *App) Close() error {
	return a.store.Close()
}
