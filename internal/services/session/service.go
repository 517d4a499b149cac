package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/crewcord/crewcord/internal/admin"
	"github.com/crewcord/crewcord/internal/common/clock"
	"github.com/crewcord/crewcord/internal/common/uuid"
	"github.com/crewcord/crewcord/internal/models"
	"github.com/crewcord/crewcord/internal/platform"
	sessionRepo "github.com/crewcord/crewcord/internal/repositories/session"
	"github.com/crewcord/crewcord/internal/voiceindex"
)

// Config holds the dependencies for the session service
type Config struct {
	// Session repository
	Repo sessionRepo.Repository

	// Chat platform client
	Platform platform.Client

	// Voice channel occupancy index
	Index *voiceindex.Index

	// Administrator predicate
	Admins admin.Checker

	// Clock, defaults to the system clock
	Clock clock.Clock

	// UUID generator, defaults to random UUIDs
	UUID uuid.Generator
}

// service implements the Service interface
type service struct {
	repo     sessionRepo.Repository
	platform platform.Client
	index    *voiceindex.Index
	admins   admin.Checker
	clock    clock.Clock
	uuid     uuid.Generator

	// locks serializes transitions and teardown per session, so a late
	// reconciliation can never interleave with the next one
	locks sync.Map
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repo == nil {
		return nil, ErrNilRepository
	}

	if cfg.Platform == nil {
		return nil, ErrNilPlatform
	}

	if cfg.Index == nil {
		return nil, ErrNilIndex
	}

	if cfg.Admins == nil {
		return nil, ErrNilAdminChecker
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.NewSystem()
	}

	gen := cfg.UUID
	if gen == nil {
		gen = uuid.NewRandom()
	}

	return &service{
		repo:     cfg.Repo,
		platform: cfg.Platform,
		index:    cfg.Index,
		admins:   cfg.Admins,
		clock:    clk,
		uuid:     gen,
	}, nil
}

// lock returns the mutex serializing operations on one session.
func (s *service) lock(sessionID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(sessionID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// CreateSession records a new lobby session and posts its status message.
// Voice channels do not exist yet at this point; SetupChannels creates them.
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	now := s.clock.Now()
	session := &models.Session{
		ID:            s.uuid.NewID(),
		GuildID:       input.GuildID,
		TextChannelID: input.TextChannelID,
		OwnerName:     input.OwnerName,
		State:         models.SessionStateLobby,
		Region:        input.Region,
		LobbyCode:     input.LobbyCode,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	out, err := s.platform.SendStatusMessage(ctx, &platform.SendStatusMessageInput{
		ChannelID: input.TextChannelID,
		Embed:     renderStatus(session),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to post status message: %w", err)
	}
	session.StatusMessageID = out.MessageID

	err = s.repo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	})
	if err != nil {
		return nil, err
	}

	return &CreateSessionOutput{
		Session: session,
	}, nil
}

// HandlePhaseChange applies a remote game phase to the session. In order: the
// new state is persisted, membership is reconciled, and only then is the
// status message rewritten, so the message never shows a phase the channels
// do not yet reflect.
func (s *service) HandlePhaseChange(ctx context.Context, input *HandlePhaseChangeInput) (*HandlePhaseChangeOutput, error) {
	mu := s.lock(input.SessionID)
	mu.Lock()
	defer mu.Unlock()

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	// Phase changes only make sense once the voice channels exist
	if session.Channel(models.ChannelTypeTalking) == nil {
		return nil, ErrChannelsNotReady
	}

	var state models.SessionState
	switch input.Phase {
	case PhaseLobby:
		state = models.SessionStateLobby
	case PhasePlaying:
		state = models.SessionStatePlaying
	case PhaseDiscussing:
		state = models.SessionStateDiscussing
	default:
		return nil, ErrUnknownPhase
	}

	session.State = state
	session.UpdatedAt = s.clock.Now()
	err = s.repo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	})
	if err != nil {
		return nil, err
	}

	// Task and discussion phases share the in-game layout; a transition
	// between them moves nobody. Members return to talking only on the lobby
	// transition.
	if state.InGame() {
		s.reconcileToSilence(ctx, session)
	} else {
		s.reconcileToTalking(ctx, session)
	}

	s.updateStatus(ctx, session)

	return &HandlePhaseChangeOutput{
		Session: session,
	}, nil
}

// EndSession tears the session down.
func (s *service) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	mu := s.lock(input.SessionID)
	mu.Lock()
	defer mu.Unlock()

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if err := s.teardown(ctx, session, input.Reason); err != nil {
		return nil, err
	}

	return &EndSessionOutput{}, nil
}

// teardown deletes the session's channels, rewrites the status message to the
// terminal variant for reason, and removes the record. Channel deletion and
// the status rewrite are best effort; removing the record is not.
func (s *service) teardown(ctx context.Context, session *models.Session, reason EndReason) error {
	s.deleteChannels(ctx, session)

	err := s.platform.EditStatusMessage(ctx, &platform.EditStatusMessageInput{
		ChannelID: session.TextChannelID,
		MessageID: session.StatusMessageID,
		Embed:     renderEnded(session, reason),
	})
	if err != nil {
		log.Printf("failed to rewrite status message for session %s: %v", session.ID, err)
	}

	err = s.repo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
		SessionID: session.ID,
	})
	if err != nil {
		return err
	}

	s.locks.Delete(session.ID)
	return nil
}

// CleanupStaleSessions unconditionally tears down every persisted session.
// After a restart the voice index is empty, so no surviving session's channel
// occupancy can be corroborated; all of them are treated as stale.
func (s *service) CleanupStaleSessions(ctx context.Context, input *CleanupStaleSessionsInput) (*CleanupStaleSessionsOutput, error) {
	out, err := s.repo.GetActiveSessions(ctx, &sessionRepo.GetActiveSessionsInput{})
	if err != nil {
		return nil, err
	}

	cleaned := 0
	for _, session := range out.Sessions {
		if err := s.teardown(ctx, session, EndReasonStale); err != nil {
			log.Printf("failed to clean up stale session %s: %v", session.ID, err)
			continue
		}
		cleaned++
	}

	return &CleanupStaleSessionsOutput{
		Cleaned: cleaned,
	}, nil
}

// HandleVoiceJoin records a member joining a voice channel. A member joining
// the open channel while a round's task phase is running is immediately
// pulled into the session's silence channel.
func (s *service) HandleVoiceJoin(ctx context.Context, input *HandleVoiceJoinInput) (*HandleVoiceJoinOutput, error) {
	s.index.Join(input.ChannelID, input.MemberID)

	session, err := s.repo.GetSessionByChannel(ctx, &sessionRepo.GetSessionByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			// Not a session channel
			return &HandleVoiceJoinOutput{}, nil
		}
		return nil, err
	}

	talking := session.Channel(models.ChannelTypeTalking)
	if talking == nil || talking.ChannelID != input.ChannelID || session.State != models.SessionStatePlaying {
		return &HandleVoiceJoinOutput{}, nil
	}

	silence := session.Channel(models.ChannelTypeSilence)
	if silence == nil {
		return &HandleVoiceJoinOutput{}, nil
	}

	err = s.platform.MoveMember(ctx, &platform.MoveMemberInput{
		GuildID:   session.GuildID,
		MemberID:  input.MemberID,
		ChannelID: silence.ChannelID,
	})
	if err != nil {
		// The member may already have left again
		log.Printf("failed to redirect member %s out of channel %s: %v", input.MemberID, input.ChannelID, err)
		return &HandleVoiceJoinOutput{}, nil
	}
	s.index.Move(input.MemberID, talking.ChannelID, silence.ChannelID)

	return &HandleVoiceJoinOutput{
		Redirected: true,
	}, nil
}

// HandleVoiceLeave records a member leaving a voice channel.
func (s *service) HandleVoiceLeave(ctx context.Context, input *HandleVoiceLeaveInput) (*HandleVoiceLeaveOutput, error) {
	s.index.Leave(input.ChannelID, input.MemberID)
	return &HandleVoiceLeaveOutput{}, nil
}

// HandleVoiceMove records a member switching voice channels, leave first so
// the join-side redirect sees a consistent index.
func (s *service) HandleVoiceMove(ctx context.Context, input *HandleVoiceMoveInput) (*HandleVoiceMoveOutput, error) {
	s.index.Leave(input.FromChannelID, input.MemberID)

	joinOut, err := s.HandleVoiceJoin(ctx, &HandleVoiceJoinInput{
		GuildID:   input.GuildID,
		ChannelID: input.ToChannelID,
		MemberID:  input.MemberID,
	})
	if err != nil {
		return nil, err
	}

	return &HandleVoiceMoveOutput{
		Redirected: joinOut.Redirected,
	}, nil
}

// getSession fetches a session, mapping the repository's not-found error to
// the service's.
func (s *service) getSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.repo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// updateStatus rewrites the session's status message. Failures are logged,
// not propagated: a stale embed is recoverable, a blocked transition is not.
func (s *service) updateStatus(ctx context.Context, session *models.Session) {
	err := s.platform.EditStatusMessage(ctx, &platform.EditStatusMessageInput{
		ChannelID: session.TextChannelID,
		MessageID: session.StatusMessageID,
		Embed:     renderStatus(session),
	})
	if err != nil {
		log.Printf("failed to update status message for session %s: %v", session.ID, err)
	}
}
