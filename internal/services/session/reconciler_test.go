package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/crewcord/crewcord/internal/admin"
	clockMocks "github.com/crewcord/crewcord/internal/common/clock/mocks"
	"github.com/crewcord/crewcord/internal/models"
	"github.com/crewcord/crewcord/internal/platform"
	platformMocks "github.com/crewcord/crewcord/internal/platform/mocks"
	repoMocks "github.com/crewcord/crewcord/internal/repositories/session/mocks"
	"github.com/crewcord/crewcord/internal/voiceindex"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ReconcilerTestSuite drives reconciliation through phase changes against a
// real index, recording where each member ends up.
type ReconcilerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockRepo     *repoMocks.MockRepository
	mockPlatform *platformMocks.MockClient
	index        *voiceindex.Index
	service      Service
	ctx          context.Context

	session *models.Session

	mu    sync.Mutex
	moves map[string]string // member ID → channel they were last moved to
}

func (s *ReconcilerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = repoMocks.NewMockRepository(s.mockCtrl)
	s.mockPlatform = platformMocks.NewMockClient(s.mockCtrl)
	s.index = voiceindex.New()
	s.ctx = context.Background()
	s.moves = make(map[string]string)

	mockClock := clockMocks.NewMockClock(s.mockCtrl)
	mockClock.EXPECT().Now().Return(time.Date(2025, 8, 2, 21, 0, 0, 0, time.UTC)).AnyTimes()

	svc, err := New(&Config{
		Repo:     s.mockRepo,
		Platform: s.mockPlatform,
		Index:    s.index,
		Admins:   admin.NewStatic([]string{"admin-1", "admin-2"}),
		Clock:    mockClock,
	})
	s.Require().NoError(err)
	s.service = svc

	s.session = &models.Session{
		ID:              "test-session-id",
		GuildID:         "test-guild-id",
		TextChannelID:   "test-text-channel-id",
		StatusMessageID: "test-message-id",
		OwnerName:       "Test Owner",
		State:           models.SessionStateLobby,
		Region:          models.RegionNorthAmerica,
		LobbyCode:       "QWXRTY",
		Channels: []*models.SessionChannel{
			{ChannelID: "cat-1", Type: models.ChannelTypeCategory},
			{ChannelID: "talk-1", Type: models.ChannelTypeTalking},
			{ChannelID: "mute-1", Type: models.ChannelTypeSilence},
		},
	}

	// Phase changes always read, persist and re-render the session
	s.mockRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.session, nil).AnyTimes()
	s.mockRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).Return(nil).AnyTimes()
	s.mockPlatform.EXPECT().EditStatusMessage(s.ctx, gomock.Any()).Return(nil).AnyTimes()
}

func (s *ReconcilerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReconcilerTestSuite(t *testing.T) {
	suite.Run(t, new(ReconcilerTestSuite))
}

// expectMoves accepts any member move, tracking the destination per member.
func (s *ReconcilerTestSuite) expectMoves(times int) {
	s.mockPlatform.EXPECT().
		MoveMember(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *platform.MoveMemberInput) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.moves[input.MemberID] = input.ChannelID
			return nil
		}).
		Times(times)
}

func (s *ReconcilerTestSuite) movedTo(memberID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.moves[memberID]
}

func (s *ReconcilerTestSuite) TestSilenceThenTalkingRoundTrip() {
	s.index.Join("talk-1", "alice")
	s.index.Join("talk-1", "bob")
	s.index.Join("talk-1", "carol")

	s.expectMoves(6)

	_, err := s.service.HandlePhaseChange(s.ctx, &HandlePhaseChangeInput{
		SessionID: "test-session-id",
		Phase:     PhasePlaying,
	})
	s.Require().NoError(err)

	s.Empty(s.index.Members("talk-1"))
	s.ElementsMatch([]string{"alice", "bob", "carol"}, s.index.Members("mute-1"))

	_, err = s.service.HandlePhaseChange(s.ctx, &HandlePhaseChangeInput{
		SessionID: "test-session-id",
		Phase:     PhaseLobby,
	})
	s.Require().NoError(err)

	// Everyone is back where they started
	s.ElementsMatch([]string{"alice", "bob", "carol"}, s.index.Members("talk-1"))
	s.Empty(s.index.Members("mute-1"))
}

func (s *ReconcilerTestSuite) TestDiscussionKeepsMembersParked() {
	// Mid-match discussion pause: members stay exactly where the task phase
	// put them. No MoveMember expectation is registered, so any move fails
	// the test.
	s.session.State = models.SessionStatePlaying
	s.index.Join("mute-1", "alice")
	s.index.Join("mute-1", "bob")

	_, err := s.service.HandlePhaseChange(s.ctx, &HandlePhaseChangeInput{
		SessionID: "test-session-id",
		Phase:     PhaseDiscussing,
	})
	s.Require().NoError(err)

	s.ElementsMatch([]string{"alice", "bob"}, s.index.Members("mute-1"))
	s.Empty(s.index.Members("talk-1"))
}

func (s *ReconcilerTestSuite) TestDiscussionKeepsAdminsParked() {
	s.session.State = models.SessionStatePlaying
	s.session.Channels = append(s.session.Channels, &models.SessionChannel{
		ChannelID: "admin-old",
		Type:      models.ChannelTypeAdminSilence,
	})
	s.index.Join("admin-old", "admin-1")

	_, err := s.service.HandlePhaseChange(s.ctx, &HandlePhaseChangeInput{
		SessionID: "test-session-id",
		Phase:     PhaseDiscussing,
	})
	s.Require().NoError(err)

	s.ElementsMatch([]string{"admin-1"}, s.index.Members("admin-old"))
}

func (s *ReconcilerTestSuite) TestAdminsAreIsolated() {
	s.index.Join("talk-1", "alice")
	s.index.Join("talk-1", "admin-1")
	s.index.Join("talk-1", "admin-2")

	// Two admins and no free admin channels: exactly two are created
	s.mockPlatform.EXPECT().
		CreateVoiceChannel(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *platform.CreateVoiceChannelInput) (*platform.CreateVoiceChannelOutput, error) {
			s.True(input.DenySpeak)
			s.True(input.DenyView)
			s.Equal("cat-1", input.ParentID)
			return &platform.CreateVoiceChannelOutput{ChannelID: "admin-ch-" + input.Name}, nil
		}).
		Times(2)
	s.mockPlatform.EXPECT().SendNotice(s.ctx, gomock.Any()).Return(nil).Times(2)

	s.expectMoves(3)

	_, err := s.service.HandlePhaseChange(s.ctx, &HandlePhaseChangeInput{
		SessionID: "test-session-id",
		Phase:     PhasePlaying,
	})
	s.Require().NoError(err)

	s.Equal("mute-1", s.movedTo("alice"))

	// Each admin sits alone in some admin channel, never in the shared one
	first := s.movedTo("admin-1")
	second := s.movedTo("admin-2")
	s.NotEqual("mute-1", first)
	s.NotEqual("mute-1", second)
	s.NotEqual(first, second)
	s.ElementsMatch([]string{"admin-1"}, s.index.Members(first))
	s.ElementsMatch([]string{"admin-2"}, s.index.Members(second))
	s.Len(s.session.ChannelsOfType(models.ChannelTypeAdminSilence), 2)
}

func (s *ReconcilerTestSuite) TestFreedAdminChannelIsReused() {
	// A channel left over from an earlier round, currently empty
	s.session.Channels = append(s.session.Channels, &models.SessionChannel{
		ChannelID: "admin-old",
		Type:      models.ChannelTypeAdminSilence,
	})
	s.index.Join("talk-1", "admin-1")

	// No channel creation expected
	s.expectMoves(1)

	_, err := s.service.HandlePhaseChange(s.ctx, &HandlePhaseChangeInput{
		SessionID: "test-session-id",
		Phase:     PhasePlaying,
	})
	s.Require().NoError(err)

	s.Equal("admin-old", s.movedTo("admin-1"))
	s.Len(s.session.ChannelsOfType(models.ChannelTypeAdminSilence), 1)
}

func (s *ReconcilerTestSuite) TestOccupiedAdminChannelIsNotReused() {
	s.session.Channels = append(s.session.Channels, &models.SessionChannel{
		ChannelID: "admin-old",
		Type:      models.ChannelTypeAdminSilence,
	})
	// Someone is still parked in it
	s.index.Join("admin-old", "admin-2")
	s.index.Join("talk-1", "admin-1")

	s.mockPlatform.EXPECT().
		CreateVoiceChannel(s.ctx, gomock.Any()).
		Return(&platform.CreateVoiceChannelOutput{ChannelID: "admin-new"}, nil)
	s.mockPlatform.EXPECT().SendNotice(s.ctx, gomock.Any()).Return(nil)

	s.expectMoves(1)

	_, err := s.service.HandlePhaseChange(s.ctx, &HandlePhaseChangeInput{
		SessionID: "test-session-id",
		Phase:     PhasePlaying,
	})
	s.Require().NoError(err)

	s.Equal("admin-new", s.movedTo("admin-1"))
}

func (s *ReconcilerTestSuite) TestFailedMoveDoesNotAbortBatch() {
	s.index.Join("talk-1", "alice")
	s.index.Join("talk-1", "bob")
	s.index.Join("talk-1", "carol")

	// bob left concurrently; his move is rejected
	s.mockPlatform.EXPECT().
		MoveMember(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *platform.MoveMemberInput) error {
			if input.MemberID == "bob" {
				return errors.New("member not in voice")
			}
			s.mu.Lock()
			defer s.mu.Unlock()
			s.moves[input.MemberID] = input.ChannelID
			return nil
		}).
		Times(3)

	_, err := s.service.HandlePhaseChange(s.ctx, &HandlePhaseChangeInput{
		SessionID: "test-session-id",
		Phase:     PhasePlaying,
	})
	s.Require().NoError(err)

	s.Equal("mute-1", s.movedTo("alice"))
	s.Equal("mute-1", s.movedTo("carol"))
	s.ElementsMatch([]string{"alice", "carol"}, s.index.Members("mute-1"))
	// bob stays counted where he was until his leave event arrives
	s.ElementsMatch([]string{"bob"}, s.index.Members("talk-1"))
}

func (s *ReconcilerTestSuite) TestTalkingReconcileSweepsAdminChannels() {
	s.session.State = models.SessionStatePlaying
	s.session.Channels = append(s.session.Channels, &models.SessionChannel{
		ChannelID: "admin-old",
		Type:      models.ChannelTypeAdminSilence,
	})
	s.index.Join("mute-1", "alice")
	s.index.Join("admin-old", "admin-1")

	s.expectMoves(2)

	_, err := s.service.HandlePhaseChange(s.ctx, &HandlePhaseChangeInput{
		SessionID: "test-session-id",
		Phase:     PhaseLobby,
	})
	s.Require().NoError(err)

	s.Equal("talk-1", s.movedTo("alice"))
	s.Equal("talk-1", s.movedTo("admin-1"))
	s.ElementsMatch([]string{"alice", "admin-1"}, s.index.Members("talk-1"))
	s.Empty(s.index.Members("mute-1"))
	s.Empty(s.index.Members("admin-old"))
}
