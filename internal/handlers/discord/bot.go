// Package discord wires Discord gateway traffic to the session service: the
// lobby command spawns sessions and voice state updates keep the membership
// index current.
package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/crewcord/crewcord/internal/lobby"
	"github.com/crewcord/crewcord/internal/runner"
	sessionService "github.com/crewcord/crewcord/internal/services/session"
)

// DefaultCommandPrefix triggers session creation when a message starts with it
const DefaultCommandPrefix = "!crew"

// Define errors
var (
	ErrNilConfig         = errors.New("config cannot be nil")
	ErrNilSession        = errors.New("discord session cannot be nil")
	ErrNilSessionService = errors.New("session service cannot be nil")
	ErrNilRunner         = errors.New("runner cannot be nil")
)

// Bot represents the Discord bot instance
type Bot struct {
	session        *discordgo.Session
	commandPrefix  string
	sessionService sessionService.Service
	runner         *runner.Runner

	// ctx is the parent of every runner goroutine; Stop cancels it. Handlers
	// run on separate goroutines, so the bot holds one immutable context
	// rather than per-session state.
	ctx    context.Context
	cancel context.CancelFunc
}

// Config holds the configuration for the bot
type Config struct {
	// Connected discordgo session
	Session *discordgo.Session

	// CommandPrefix overrides the default "!crew" trigger
	CommandPrefix string

	// Session service
	SessionService sessionService.Service

	// Runner driving sessions from the remote game feed
	Runner *runner.Runner
}

// NewSession creates a discordgo session with the gateway intents the bot
// needs. It does not open the connection.
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentMessageContent

	return session, nil
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Session == nil {
		return nil, ErrNilSession
	}

	if cfg.SessionService == nil {
		return nil, ErrNilSessionService
	}

	if cfg.Runner == nil {
		return nil, ErrNilRunner
	}

	commandPrefix := cfg.CommandPrefix
	if commandPrefix == "" {
		commandPrefix = DefaultCommandPrefix
	}

	ctx, cancel := context.WithCancel(context.Background())
	bot := &Bot{
		session:        cfg.Session,
		commandPrefix:  commandPrefix,
		sessionService: cfg.SessionService,
		runner:         cfg.Runner,
		ctx:            ctx,
		cancel:         cancel,
	}

	cfg.Session.AddHandler(bot.handleMessageCreate)
	cfg.Session.AddHandler(bot.handleVoiceStateUpdate)

	return bot, nil
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop cancels running sessions and closes the gateway connection
func (b *Bot) Stop() error {
	b.cancel()
	return b.session.Close()
}

// handleMessageCreate watches for the lobby command:
//
//	!crew <region> <code>
//
// where region may span multiple words ("north america").
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	fields := strings.Fields(m.Content)
	if len(fields) < 3 || !strings.EqualFold(fields[0], b.commandPrefix) {
		return
	}

	// Everything between the prefix and the trailing code is the region
	regionToken := strings.Join(fields[1:len(fields)-1], " ")
	codeToken := fields[len(fields)-1]

	region, err := lobby.ParseRegion(regionToken)
	if err != nil {
		b.reply(m.ChannelID, err.Error())
		return
	}

	code, err := lobby.NormalizeCode(codeToken)
	if err != nil {
		b.reply(m.ChannelID, err.Error())
		return
	}

	ownerName := m.Author.Username
	if m.Member != nil && m.Member.Nick != "" {
		ownerName = m.Member.Nick
	}

	ctx := context.Background()

	createOutput, err := b.sessionService.CreateSession(ctx, &sessionService.CreateSessionInput{
		GuildID:       m.GuildID,
		TextChannelID: m.ChannelID,
		OwnerName:     ownerName,
		Region:        region,
		LobbyCode:     code,
	})
	if err != nil {
		log.Printf("Error creating session: %v", err)
		b.reply(m.ChannelID, "Something went wrong creating the session, please try again.")
		return
	}

	_, err = b.sessionService.SetupChannels(ctx, &sessionService.SetupChannelsInput{
		SessionID: createOutput.Session.ID,
	})
	if err != nil {
		log.Printf("Error setting up channels for session %s: %v", createOutput.Session.ID, err)
		return
	}

	// Each session gets its own goroutine following the game feed, tied to
	// the bot's lifetime
	go func() {
		if err := b.runner.Run(b.ctx, createOutput.Session); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("Session %s stopped: %v", createOutput.Session.ID, err)
		}
	}()
}

// handleVoiceStateUpdate keeps the membership index in step with the gateway
func (b *Bot) handleVoiceStateUpdate(s *discordgo.Session, v *discordgo.VoiceStateUpdate) {
	ctx := context.Background()

	var previousChannelID string
	if v.BeforeUpdate != nil {
		previousChannelID = v.BeforeUpdate.ChannelID
	}

	switch {
	case v.ChannelID == "" && previousChannelID != "":
		_, err := b.sessionService.HandleVoiceLeave(ctx, &sessionService.HandleVoiceLeaveInput{
			ChannelID: previousChannelID,
			MemberID:  v.UserID,
		})
		if err != nil {
			log.Printf("Error handling voice leave for %s: %v", v.UserID, err)
		}
	case previousChannelID == "" && v.ChannelID != "":
		_, err := b.sessionService.HandleVoiceJoin(ctx, &sessionService.HandleVoiceJoinInput{
			GuildID:   v.GuildID,
			ChannelID: v.ChannelID,
			MemberID:  v.UserID,
		})
		if err != nil {
			log.Printf("Error handling voice join for %s: %v", v.UserID, err)
		}
	case previousChannelID != "" && v.ChannelID != previousChannelID:
		_, err := b.sessionService.HandleVoiceMove(ctx, &sessionService.HandleVoiceMoveInput{
			GuildID:       v.GuildID,
			FromChannelID: previousChannelID,
			ToChannelID:   v.ChannelID,
			MemberID:      v.UserID,
		})
		if err != nil {
			log.Printf("Error handling voice move for %s: %v", v.UserID, err)
		}
	default:
		// Mute or deafen toggle within the same channel; nothing to track
	}
}

func (b *Bot) reply(channelID, content string) {
	if _, err := b.session.ChannelMessageSend(channelID, content); err != nil {
		log.Printf("Error sending reply: %v", err)
	}
}
