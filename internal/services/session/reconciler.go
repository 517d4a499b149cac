package session

import (
	"context"
	"log"
	"sync"

	"github.com/crewcord/crewcord/internal/models"
	"github.com/crewcord/crewcord/internal/platform"
)

// reconcileToTalking moves every member parked in a silence channel (shared
// or admin) back into the talking channel. Moves run concurrently; a failed
// move for one member never blocks the others.
func (s *service) reconcileToTalking(ctx context.Context, session *models.Session) {
	talking := session.Channel(models.ChannelTypeTalking)
	if talking == nil {
		return
	}

	var wg sync.WaitGroup
	for _, channelID := range session.SilenceChannelIDs() {
		for _, memberID := range s.index.Members(channelID) {
			wg.Add(1)
			go func(memberID, fromID string) {
				defer wg.Done()
				s.moveMember(ctx, session, memberID, fromID, talking.ChannelID)
			}(memberID, channelID)
		}
	}
	wg.Wait()
}

// reconcileToSilence empties the talking channel for a round: regular members
// share the silence channel, administrators are isolated one per admin
// channel. Admin channel claims are made sequentially so two administrators
// never take the same free channel, but the moves themselves are issued
// without waiting on each other.
func (s *service) reconcileToSilence(ctx context.Context, session *models.Session) {
	talking := session.Channel(models.ChannelTypeTalking)
	silence := session.Channel(models.ChannelTypeSilence)
	if talking == nil || silence == nil {
		return
	}

	var admins []string
	var wg sync.WaitGroup
	for _, memberID := range s.index.Members(talking.ChannelID) {
		if s.admins.IsAdmin(memberID) {
			admins = append(admins, memberID)
			continue
		}

		wg.Add(1)
		go func(memberID string) {
			defer wg.Done()
			s.moveMember(ctx, session, memberID, talking.ChannelID, silence.ChannelID)
		}(memberID)
	}

	claimed := make(map[string]bool)
	for _, memberID := range admins {
		channel, err := s.allocateAdminChannel(ctx, session, claimed)
		if err != nil {
			log.Printf("failed to allocate admin channel for member %s in session %s: %v", memberID, session.ID, err)
			continue
		}
		claimed[channel.ChannelID] = true

		wg.Add(1)
		go func(memberID, toID string) {
			defer wg.Done()
			s.moveMember(ctx, session, memberID, talking.ChannelID, toID)
		}(memberID, channel.ChannelID)
	}

	wg.Wait()
}

// moveMember issues a platform move and mirrors it into the index. Failures
// are reported, not propagated; the member may have left concurrently and the
// gateway echo will correct the index either way.
func (s *service) moveMember(ctx context.Context, session *models.Session, memberID, fromID, toID string) {
	err := s.platform.MoveMember(ctx, &platform.MoveMemberInput{
		GuildID:   session.GuildID,
		MemberID:  memberID,
		ChannelID: toID,
	})
	if err != nil {
		log.Printf("failed to move member %s in session %s: %v", memberID, session.ID, err)
		return
	}
	s.index.Move(memberID, fromID, toID)
}
