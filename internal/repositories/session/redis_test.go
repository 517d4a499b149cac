package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/crewcord/crewcord/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 8, 2, 21, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testSession() *models.Session {
	return &models.Session{
		ID:              "test-session-id",
		GuildID:         "test-guild-id",
		TextChannelID:   "test-text-channel-id",
		StatusMessageID: "test-message-id",
		OwnerName:       "Test Owner",
		State:           models.SessionStateLobby,
		Region:          models.RegionEurope,
		LobbyCode:       "ABCDEF",
		Channels: []*models.SessionChannel{
			{ChannelID: "cat-1", Type: models.ChannelTypeCategory},
			{ChannelID: "talk-1", Type: models.ChannelTypeTalking, InviteCode: "inv123"},
			{ChannelID: "mute-1", Type: models.ChannelTypeSilence},
		},
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSession() {
	session := s.testSession()

	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: session,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-session-id", retrieved.ID)
	s.Equal("test-guild-id", retrieved.GuildID)
	s.Equal(models.SessionStateLobby, retrieved.State)
	s.Equal(models.RegionEurope, retrieved.Region)
	s.Equal("ABCDEF", retrieved.LobbyCode)
	s.Len(retrieved.Channels, 3)
	s.Equal("inv123", retrieved.Channel(models.ChannelTypeTalking).InviteCode)
}

func (s *RedisRepositoryTestSuite) TestGetSessionNotFound() {
	_, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "missing",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetSessionByChannel() {
	session := s.testSession()

	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: session,
	})
	s.Require().NoError(err)

	// Every owned channel resolves back to the session
	for _, channelID := range []string{"cat-1", "talk-1", "mute-1"} {
		retrieved, err := s.repo.GetSessionByChannel(context.Background(), &GetSessionByChannelInput{
			ChannelID: channelID,
		})
		s.Require().NoError(err)
		s.Equal("test-session-id", retrieved.ID)
	}
}

func (s *RedisRepositoryTestSuite) TestGetSessionByChannelNotFound() {
	_, err := s.repo.GetSessionByChannel(context.Background(), &GetSessionByChannelInput{
		ChannelID: "unrelated-channel",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveSessionUpdatesChannelMappings() {
	session := s.testSession()

	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: session,
	})
	s.Require().NoError(err)

	// A lazily created admin channel gets a mapping on the next save
	session.Channels = append(session.Channels, &models.SessionChannel{
		ChannelID: "admin-1",
		Type:      models.ChannelTypeAdminSilence,
	})
	err = s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: session,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSessionByChannel(context.Background(), &GetSessionByChannelInput{
		ChannelID: "admin-1",
	})
	s.Require().NoError(err)
	s.Equal("test-session-id", retrieved.ID)
}

func (s *RedisRepositoryTestSuite) TestGetActiveSessions() {
	first := s.testSession()
	second := s.testSession()
	second.ID = "test-session-id-2"
	second.Channels = []*models.SessionChannel{
		{ChannelID: "cat-2", Type: models.ChannelTypeCategory},
	}

	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: first}))
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: second}))

	out, err := s.repo.GetActiveSessions(context.Background(), &GetActiveSessionsInput{})
	s.Require().NoError(err)
	s.Len(out.Sessions, 2)
}

func (s *RedisRepositoryTestSuite) TestGetActiveSessionsEmpty() {
	out, err := s.repo.GetActiveSessions(context.Background(), &GetActiveSessionsInput{})
	s.Require().NoError(err)
	s.Empty(out.Sessions)
}

func (s *RedisRepositoryTestSuite) TestDeleteSession() {
	session := s.testSession()

	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: session}))

	err := s.repo.DeleteSession(context.Background(), &DeleteSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)

	// Channel mappings are gone too
	_, err = s.repo.GetSessionByChannel(context.Background(), &GetSessionByChannelInput{
		ChannelID: "talk-1",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)

	out, err := s.repo.GetActiveSessions(context.Background(), &GetActiveSessionsInput{})
	s.Require().NoError(err)
	s.Empty(out.Sessions)
}

func (s *RedisRepositoryTestSuite) TestDeleteSessionNotFound() {
	err := s.repo.DeleteSession(context.Background(), &DeleteSessionInput{
		SessionID: "missing",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}
