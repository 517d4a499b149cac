package session

import (
	"context"
	"fmt"
	"log"

	"github.com/crewcord/crewcord/internal/models"
	"github.com/crewcord/crewcord/internal/platform"
	sessionRepo "github.com/crewcord/crewcord/internal/repositories/session"
)

// SetupChannels creates the session's category, talking and silence channels
// and an invite for the talking channel. Admin silence channels are not
// created here; they are allocated lazily when an administrator needs one.
func (s *service) SetupChannels(ctx context.Context, input *SetupChannelsInput) (*SetupChannelsOutput, error) {
	mu := s.lock(input.SessionID)
	mu.Lock()
	defer mu.Unlock()

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if session.Channel(models.ChannelTypeCategory) != nil {
		return nil, ErrChannelsExist
	}

	category, err := s.platform.CreateCategory(ctx, &platform.CreateCategoryInput{
		GuildID: session.GuildID,
		Name:    fmt.Sprintf("Lobby %s", session.LobbyCode),
	})
	if err != nil {
		s.failSetup(ctx, session)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	talking, err := s.platform.CreateVoiceChannel(ctx, &platform.CreateVoiceChannelInput{
		GuildID:  session.GuildID,
		Name:     "Talking",
		ParentID: category.ChannelID,
	})
	if err != nil {
		s.failSetup(ctx, session)
		return nil, fmt.Errorf("failed to create talking channel: %w", err)
	}

	silence, err := s.platform.CreateVoiceChannel(ctx, &platform.CreateVoiceChannelInput{
		GuildID:   session.GuildID,
		Name:      "Silence",
		ParentID:  category.ChannelID,
		DenySpeak: true,
	})
	if err != nil {
		s.failSetup(ctx, session)
		return nil, fmt.Errorf("failed to create silence channel: %w", err)
	}

	// The talking channel is the only one joinable from outside
	inviteCode := ""
	invite, err := s.platform.CreateInvite(ctx, &platform.CreateInviteInput{
		ChannelID: talking.ChannelID,
	})
	if err != nil {
		log.Printf("failed to create invite for session %s: %v", session.ID, err)
	} else {
		inviteCode = invite.Code
	}

	session.Channels = []*models.SessionChannel{
		{ChannelID: category.ChannelID, Type: models.ChannelTypeCategory},
		{ChannelID: talking.ChannelID, Type: models.ChannelTypeTalking, InviteCode: inviteCode},
		{ChannelID: silence.ChannelID, Type: models.ChannelTypeSilence},
	}
	session.UpdatedAt = s.clock.Now()

	err = s.repo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	})
	if err != nil {
		return nil, err
	}

	// The lobby status now carries the invite link
	s.updateStatus(ctx, session)

	return &SetupChannelsOutput{
		Session: session,
	}, nil
}

// failSetup surfaces a channel-creation failure on the status message. The
// record is kept; the user can retry and startup cleanup will remove it
// eventually.
func (s *service) failSetup(ctx context.Context, session *models.Session) {
	err := s.platform.EditStatusMessage(ctx, &platform.EditStatusMessageInput{
		ChannelID: session.TextChannelID,
		MessageID: session.StatusMessageID,
		Embed:     renderEnded(session, EndReasonSetupFailed),
	})
	if err != nil {
		log.Printf("failed to surface setup failure for session %s: %v", session.ID, err)
	}
}

// allocateAdminChannel finds an empty admin silence channel or creates a new
// one under the session's category. Channels claimed earlier in the same
// reconciliation pass are skipped even though the index still shows them
// empty. Callers must hold the session lock.
func (s *service) allocateAdminChannel(ctx context.Context, session *models.Session, claimed map[string]bool) (*models.SessionChannel, error) {
	for _, ch := range session.ChannelsOfType(models.ChannelTypeAdminSilence) {
		if !claimed[ch.ChannelID] && len(s.index.Members(ch.ChannelID)) == 0 {
			return ch, nil
		}
	}

	parentID := ""
	if category := session.Channel(models.ChannelTypeCategory); category != nil {
		parentID = category.ChannelID
	}

	created, err := s.platform.CreateVoiceChannel(ctx, &platform.CreateVoiceChannelInput{
		GuildID:   session.GuildID,
		Name:      fmt.Sprintf("Admin Silence %d", len(session.ChannelsOfType(models.ChannelTypeAdminSilence))+1),
		ParentID:  parentID,
		DenySpeak: true,
		DenyView:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create admin silence channel: %w", err)
	}

	channel := &models.SessionChannel{
		ChannelID: created.ChannelID,
		Type:      models.ChannelTypeAdminSilence,
	}
	session.Channels = append(session.Channels, channel)
	session.UpdatedAt = s.clock.Now()

	err = s.repo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	})
	if err != nil {
		return nil, err
	}

	err = s.platform.SendNotice(ctx, &platform.SendNoticeInput{
		ChannelID: session.TextChannelID,
		Content:   "An administrator is playing, so they got their own muted channel. Admins can't be server muted like everyone else.",
	})
	if err != nil {
		log.Printf("failed to send admin channel notice for session %s: %v", session.ID, err)
	}

	return channel, nil
}

// deleteChannels removes every voice channel owned by the session. Individual
// deletions may fail (the channel may already be gone); those are logged and
// skipped.
func (s *service) deleteChannels(ctx context.Context, session *models.Session) {
	for _, ch := range session.Channels {
		err := s.platform.DeleteChannel(ctx, &platform.DeleteChannelInput{
			ChannelID: ch.ChannelID,
		})
		if err != nil {
			log.Printf("failed to delete channel %s of session %s: %v", ch.ChannelID, session.ID, err)
		}
		s.index.Forget(ch.ChannelID)
	}
}
