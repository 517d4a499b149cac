package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/crewcord/crewcord/internal/platform"
)

// Platform implements the chat-platform contract over a discordgo session.
type Platform struct {
	session *discordgo.Session
}

// NewPlatform creates a new Platform
func NewPlatform(session *discordgo.Session) (*Platform, error) {
	if session == nil {
		return nil, ErrNilSession
	}

	return &Platform{session: session}, nil
}

func toMessageEmbed(embed *platform.StatusEmbed) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color:       embed.Color,
		Title:       embed.Title,
		Description: embed.Description,
		Footer: &discordgo.MessageEmbedFooter{
			Text: embed.Footer,
		},
	}
}

// SendStatusMessage posts a new embed status message and returns its ID
func (p *Platform) SendStatusMessage(ctx context.Context, input *platform.SendStatusMessageInput) (*platform.SendStatusMessageOutput, error) {
	msg, err := p.session.ChannelMessageSendEmbed(input.ChannelID, toMessageEmbed(input.Embed), discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	return &platform.SendStatusMessageOutput{
		MessageID: msg.ID,
	}, nil
}

// EditStatusMessage rewrites an existing status message embed
func (p *Platform) EditStatusMessage(ctx context.Context, input *platform.EditStatusMessageInput) error {
	_, err := p.session.ChannelMessageEditEmbed(input.ChannelID, input.MessageID, toMessageEmbed(input.Embed), discordgo.WithContext(ctx))
	return err
}

// SendNotice sends a plain text message to a channel
func (p *Platform) SendNotice(ctx context.Context, input *platform.SendNoticeInput) error {
	_, err := p.session.ChannelMessageSend(input.ChannelID, input.Content, discordgo.WithContext(ctx))
	return err
}

// CreateCategory creates a category channel to group a session's voice channels
func (p *Platform) CreateCategory(ctx context.Context, input *platform.CreateCategoryInput) (*platform.CreateCategoryOutput, error) {
	ch, err := p.session.GuildChannelCreateComplex(input.GuildID, discordgo.GuildChannelCreateData{
		Name: input.Name,
		Type: discordgo.ChannelTypeGuildCategory,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	return &platform.CreateCategoryOutput{
		ChannelID: ch.ID,
	}, nil
}

// CreateVoiceChannel creates a voice channel, optionally denying the guild's
// base role speak or view permissions. The base role shares the guild's ID.
func (p *Platform) CreateVoiceChannel(ctx context.Context, input *platform.CreateVoiceChannelInput) (*platform.CreateVoiceChannelOutput, error) {
	var deny int64
	if input.DenySpeak {
		deny |= discordgo.PermissionVoiceSpeak
	}
	if input.DenyView {
		deny |= discordgo.PermissionViewChannel
	}

	var overwrites []*discordgo.PermissionOverwrite
	if deny != 0 {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID:   input.GuildID,
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: deny,
		})
	}

	ch, err := p.session.GuildChannelCreateComplex(input.GuildID, discordgo.GuildChannelCreateData{
		Name:                 input.Name,
		Type:                 discordgo.ChannelTypeGuildVoice,
		ParentID:             input.ParentID,
		PermissionOverwrites: overwrites,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	return &platform.CreateVoiceChannelOutput{
		ChannelID: ch.ID,
	}, nil
}

// CreateInvite creates an invite for a channel and returns its code
func (p *Platform) CreateInvite(ctx context.Context, input *platform.CreateInviteInput) (*platform.CreateInviteOutput, error) {
	invite, err := p.session.ChannelInviteCreate(input.ChannelID, discordgo.Invite{
		MaxAge: 0,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	return &platform.CreateInviteOutput{
		Code: invite.Code,
	}, nil
}

// DeleteChannel deletes a channel
func (p *Platform) DeleteChannel(ctx context.Context, input *platform.DeleteChannelInput) error {
	_, err := p.session.ChannelDelete(input.ChannelID, discordgo.WithContext(ctx))
	return err
}

// MoveMember moves a guild member into a voice channel
func (p *Platform) MoveMember(ctx context.Context, input *platform.MoveMemberInput) error {
	return p.session.GuildMemberMove(input.GuildID, input.MemberID, &input.ChannelID, discordgo.WithContext(ctx))
}
