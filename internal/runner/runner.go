// Package runner drives one session from the remote game's phase feed. It
// owns the reconnect policy and guarantees that phase changes for a session
// are applied strictly one at a time.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/crewcord/crewcord/internal/models"
	sessionService "github.com/crewcord/crewcord/internal/services/session"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/crewcord/crewcord/internal/runner Client

// Event is a single phase notification from the remote game
type Event struct {
	Phase sessionService.GamePhase
}

// Client streams phase events for one remote lobby
type Client interface {
	// Connect starts streaming events for the given lobby. The returned
	// channel closes when the connection drops.
	Connect(ctx context.Context, region models.Region, code string) (<-chan Event, error)
}

// Define errors
var (
	ErrNilConfig  = errors.New("config cannot be nil")
	ErrNilService = errors.New("session service cannot be nil")
	ErrNilClient  = errors.New("game client cannot be nil")
)

// Config holds the configuration for a Runner
type Config struct {
	// Session service
	Service sessionService.Service

	// Remote game client
	Client Client

	// MaxReconnects bounds reconnection attempts after a dropped connection;
	// defaults to 3
	MaxReconnects int

	// ReconnectDelay is the pause between attempts; defaults to 5s
	ReconnectDelay time.Duration
}

// Runner consumes a session's phase feed and applies it to the service
type Runner struct {
	service        sessionService.Service
	client         Client
	maxReconnects  int
	reconnectDelay time.Duration
}

// New creates a new Runner
func New(cfg *Config) (*Runner, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Service == nil {
		return nil, ErrNilService
	}

	if cfg.Client == nil {
		return nil, ErrNilClient
	}

	maxReconnects := cfg.MaxReconnects
	if maxReconnects == 0 {
		maxReconnects = 3
	}

	reconnectDelay := cfg.ReconnectDelay
	if reconnectDelay == 0 {
		reconnectDelay = 5 * time.Second
	}

	return &Runner{
		service:        cfg.Service,
		client:         cfg.Client,
		maxReconnects:  maxReconnects,
		reconnectDelay: reconnectDelay,
	}, nil
}

// Run drives the session until the remote lobby ends or the connection is
// given up on. It blocks; callers run it in its own goroutine, one per
// session.
func (r *Runner) Run(ctx context.Context, session *models.Session) error {
	attempts := 0

	for {
		events, err := r.client.Connect(ctx, session.Region, session.LobbyCode)
		if err != nil {
			attempts++
			if attempts > r.maxReconnects {
				return r.giveUp(ctx, session, err)
			}

			log.Printf("connection attempt %d for session %s failed: %v", attempts, session.ID, err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(r.reconnectDelay):
			}
			continue
		}
		attempts = 0

		dropped := false
		for event := range events {
			switch event.Phase {
			case sessionService.PhaseEnded:
				// Clean end: the lobby closed
				_, err := r.service.EndSession(ctx, &sessionService.EndSessionInput{
					SessionID: session.ID,
					Reason:    sessionService.EndReasonClosed,
				})
				return err
			case sessionService.PhaseConnectionError:
				dropped = true
			default:
				_, err := r.service.HandlePhaseChange(ctx, &sessionService.HandlePhaseChangeInput{
					SessionID: session.ID,
					Phase:     event.Phase,
				})
				if err != nil {
					log.Printf("failed to apply phase %s to session %s: %v", event.Phase, session.ID, err)
				}
			}
			if dropped {
				break
			}
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
		// The feed closed without a clean end; try to reconnect
	}
}

// giveUp tears the session down as stale after exhausting reconnects.
func (r *Runner) giveUp(ctx context.Context, session *models.Session, cause error) error {
	_, err := r.service.EndSession(ctx, &sessionService.EndSessionInput{
		SessionID: session.ID,
		Reason:    sessionService.EndReasonStale,
	})
	if err != nil {
		log.Printf("failed to end session %s after losing the game connection: %v", session.ID, err)
	}
	return fmt.Errorf("gave up after %d connection attempts: %w", r.maxReconnects+1, cause)
}
