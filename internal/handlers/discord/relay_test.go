package discord

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/KirkDiggler/announcer/internal/handlers/discord/mocks"
	"github.com/KirkDiggler/announcer/internal/models"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RelayTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockSender *mocks.MockSender
	relay      *Relay
	ctx        context.Context

	announcement *models.Announcement
}

func (s *RelayTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSender = mocks.NewMockSender(s.mockCtrl)
	s.ctx = context.Background()

	relay, err := New(&Config{
		ChannelID: "test-channel-id",
		Sender:    s.mockSender,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	s.Require().NoError(err)
	s.relay = relay

	s.announcement = &models.Announcement{
		ID:        "test-request-id",
		Player:    models.PlayerState{Name: "Alice", Kills: 9},
		Previous:  models.PlayerState{Name: "Alice", Kills: 6},
		Cue:       models.CueGodlike,
		Message:   "Godlike! Alice has ascended. 9 kills and counting!",
		CreatedAt: time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC),
	}
}

func (s *RelayTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRelayTestSuite(t *testing.T) {
	suite.Run(t, new(RelayTestSuite))
}

func (s *RelayTestSuite) TestNotifyPostsEmbed() {
	s.mockSender.EXPECT().
		ChannelMessageSendEmbed("test-channel-id", gomock.Any(), gomock.Any()).
		DoAndReturn(func(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
			s.Equal("Godlike", embed.Title)
			s.Equal(s.announcement.Message, embed.Description)
			s.Equal(colorHighest, embed.Color)
			s.Equal("2025-04-19T12:00:00Z", embed.Timestamp)
			s.Require().NotNil(embed.Footer)
			s.Equal("request test-request-id", embed.Footer.Text)
			s.Require().Len(embed.Fields, 3)
			s.Equal("Alice", embed.Fields[0].Value)
			s.Equal("9", embed.Fields[1].Value)
			s.Equal("+3", embed.Fields[2].Value)
			return &discordgo.Message{ID: "message-id"}, nil
		})

	s.NoError(s.relay.Notify(s.ctx, s.announcement))
}

func (s *RelayTestSuite) TestNotifyWrapsSendError() {
	sendErr := errors.New("429 too many requests")
	s.mockSender.EXPECT().
		ChannelMessageSendEmbed("test-channel-id", gomock.Any(), gomock.Any()).
		Return(nil, sendErr)

	err := s.relay.Notify(s.ctx, s.announcement)
	s.ErrorIs(err, sendErr)
	s.ErrorContains(err, "test-channel-id")
}

func (s *RelayTestSuite) TestNotifyNilAnnouncement() {
	s.Error(s.relay.Notify(s.ctx, nil))
}

func (s *RelayTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{Token: "token"})
	s.ErrorContains(err, "channel ID")

	_, err = New(&Config{ChannelID: "test-channel-id"})
	s.ErrorContains(err, "token")

	relay, err := New(&Config{Token: "token", ChannelID: "test-channel-id"})
	s.Require().NoError(err)
	s.IsType(&discordgo.Session{}, relay.sender)
}

func (s *RelayTestSuite) TestRenderSingleKillOmitsDelta() {
	embed := renderAnnouncement(&models.Announcement{
		Player:   models.PlayerState{Name: "Bob", Kills: 3},
		Previous: models.PlayerState{Name: "Bob", Kills: 2},
		Cue:      models.CueKillingSpree,
		Message:  "Killing Spree! Bob is on fire with 3 kills!",
	})

	s.Equal("Killing Spree", embed.Title)
	s.Equal(colorLow, embed.Color)
	s.Len(embed.Fields, 2)
	s.Empty(embed.Timestamp)
	s.Nil(embed.Footer)
}

func (s *RelayTestSuite) TestRenderPlayerChangeOmitsDelta() {
	embed := renderAnnouncement(&models.Announcement{
		Player:   models.PlayerState{Name: "Bob", Kills: 5},
		Previous: models.PlayerState{Name: "Alice", Kills: 0},
		Cue:      models.CueSessionStart,
		Message:  "Bob has entered the arena.",
	})

	s.Len(embed.Fields, 2)
	for _, field := range embed.Fields {
		s.NotEqual("This update", field.Name)
	}
}

func (s *RelayTestSuite) TestTierColors() {
	s.Equal(colorLow, tierColor(models.CueDoubleKill))
	s.Equal(colorMid, tierColor(models.CueDominating))
	s.Equal(colorMid, tierColor(models.CueUltraKill))
	s.Equal(colorHigh, tierColor(models.CueRampage))
	s.Equal(colorHighest, tierColor(models.CueBeyondGodlike))
}

func (s *RelayTestSuite) TestCueLabel() {
	s.Equal("Beyond Godlike", cueLabel(models.CueBeyondGodlike))
	s.Equal("Wicked Sick", cueLabel(models.CueWickedSick))
}
