package session

import (
	"fmt"
	"strings"

	"github.com/crewcord/crewcord/internal/models"
	"github.com/crewcord/crewcord/internal/platform"
)

// Embed colors per status variant
const (
	colorLobby  = 0x2ecc71
	colorInGame = 0xe67e22
	colorClosed = 0x95a5a6
	colorError  = 0xe74c3c
)

// renderStatus renders a live session into its status embed. It is a pure
// function of the session, so re-rendering the same state always yields the
// same content.
func renderStatus(session *models.Session) *platform.StatusEmbed {
	if session.State.InGame() {
		return &platform.StatusEmbed{
			Color:       colorInGame,
			Title:       statusTitle(session),
			Description: "A round is in progress and the voice channels are locked down. They reopen when the lobby returns.",
			Footer:      statusFooter(session),
		}
	}

	return &platform.StatusEmbed{
		Color:       colorLobby,
		Title:       statusTitle(session),
		Description: lobbyDescription(session),
		Footer:      statusFooter(session),
	}
}

// renderEnded renders the terminal embed variant for an ended session.
func renderEnded(session *models.Session, reason EndReason) *platform.StatusEmbed {
	switch reason {
	case EndReasonStale:
		return &platform.StatusEmbed{
			Color:       colorError,
			Title:       "Session over",
			Description: "The connection to the game was lost, so this session was cleaned up. Start a new one whenever you're ready.",
			Footer:      statusFooter(session),
		}
	case EndReasonSetupFailed:
		return &platform.StatusEmbed{
			Color:       colorError,
			Title:       "Something went wrong",
			Description: "The voice channels for this session couldn't be created. Check the bot's permissions and try again.",
			Footer:      statusFooter(session),
		}
	default:
		return &platform.StatusEmbed{
			Color:       colorClosed,
			Title:       "Session over",
			Description: "The lobby closed. Thanks for playing!",
			Footer:      statusFooter(session),
		}
	}
}

func statusTitle(session *models.Session) string {
	return fmt.Sprintf("Lobby %s · %s", session.LobbyCode, regionName(session.Region))
}

func statusFooter(session *models.Session) string {
	return fmt.Sprintf("Hosted by %s", session.OwnerName)
}

func lobbyDescription(session *models.Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The lobby is open. Enter code **%s** (%s) in game and hop into the talking channel.",
		session.LobbyCode, regionName(session.Region))

	if talking := session.Channel(models.ChannelTypeTalking); talking != nil && talking.InviteCode != "" {
		fmt.Fprintf(&b, "\nVoice: https://discord.gg/%s", talking.InviteCode)
	}

	return b.String()
}

func regionName(region models.Region) string {
	switch region {
	case models.RegionEurope:
		return "Europe"
	case models.RegionNorthAmerica:
		return "North America"
	case models.RegionAsia:
		return "Asia"
	default:
		return string(region)
	}
}
