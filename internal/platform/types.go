package platform

// StatusEmbed is the rendered content of a session status message
type StatusEmbed struct {
	Color       int
	Title       string
	Description string
	Footer      string
}

type SendStatusMessageInput struct {
	ChannelID string
	Embed     *StatusEmbed
}

type SendStatusMessageOutput struct {
	MessageID string
}

type EditStatusMessageInput struct {
	ChannelID string
	MessageID string
	Embed     *StatusEmbed
}

type SendNoticeInput struct {
	ChannelID string
	Content   string
}

type CreateCategoryInput struct {
	GuildID string
	Name    string
}

type CreateCategoryOutput struct {
	ChannelID string
}

type CreateVoiceChannelInput struct {
	GuildID  string
	Name     string
	ParentID string

	// DenySpeak suppresses the speak permission for the guild's base role
	DenySpeak bool

	// DenyView hides the channel from the guild's base role
	DenyView bool
}

type CreateVoiceChannelOutput struct {
	ChannelID string
}

type CreateInviteInput struct {
	ChannelID string
}

type CreateInviteOutput struct {
	Code string
}

type DeleteChannelInput struct {
	ChannelID string
}

type MoveMemberInput struct {
	GuildID   string
	MemberID  string
	ChannelID string
}
