// Package wire provides dependency injection for the fleet application.
// It builds one interactive session, owning its registry, from a Config.
package wire

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cliadapter "github.com/example/fleet/internal/adapters/cli"
	"github.com/example/fleet/internal/adapters/memory"
	"github.com/example/fleet/internal/adapters/sqlite"
	"github.com/example/fleet/internal/app"
	"github.com/example/fleet/internal/clock"
	"github.com/example/fleet/internal/config"
	"github.com/example/fleet/internal/db"
	"github.com/example/fleet/internal/ports/secondary"
	"github.com/example/fleet/internal/shell"
)

// Session is a wired shell plus the resources it owns.
type Session struct {
	Shell *shell.Shell

	closeFn func() error
}

// Close releases the session's store.
func (s *Session) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

// NewSession wires a shell reading from in and writing to out.
func NewSession(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, logger *slog.Logger) (*Session, error) {
	return newSession(ctx, cfg, clock.RealClock{}, in, out, logger)
}

func newSession(ctx context.Context, cfg *config.Config, clk clock.Clock, in io.Reader, out io.Writer, logger *slog.Logger) (*Session, error) {
	// Create repository adapter (secondary port)
	fleetRepo, closeFn, err := newFleetRepository(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}

	// Create service (primary port implementation) and its CLI adapter
	fleetService := app.NewFleetService(fleetRepo, clk, logger)
	fleetAdapter := cliadapter.NewFleetAdapter(fleetService, out)

	logger.DebugContext(ctx, "session wired", "store", cfg.Store)

	return &Session{
		Shell:   shell.New(fleetAdapter, in, out),
		closeFn: closeFn,
	}, nil
}

func newFleetRepository(ctx context.Context, store string) (secondary.FleetRepository, func() error, error) {
	switch store {
	case config.StoreMemory:
		return memory.NewFleetRepository(), nil, nil
	case config.StoreSQLite:
		database, err := db.OpenMemory(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return sqlite.NewFleetRepository(database), database.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", store)
	}
}

// NewLogger returns a text logger writing to w at the configured level.
func NewLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})), nil
}
