// Read-only lookups against the Discord gateway state cache
package directory

import (
	"github.com/bwmarrin/discordgo"

	"github.com/voice-herald/voice-herald/internal/announcer"
)

// Directory answers the classifier's channel, roster, and identity reads
// from the discordgo state cache, falling back to the REST API for entities
// the cache has not seen. Every lookup degrades to "absent" instead of
// returning an error.
type Directory struct {
	session        *discordgo.Session
	observedUserID string
}

func New(session *discordgo.Session, observedUserID string) *Directory {
	return &Directory{session: session, observedUserID: observedUserID}
}

func (d *Directory) Channel(id string) (announcer.Channel, bool) {
	if id == "" {
		return announcer.Channel{}, false
	}

	channel, err := d.session.State.Channel(id)
	if err != nil {
		channel, err = d.session.Channel(id)
		if err != nil {
			return announcer.Channel{}, false
		}
	}

	return announcer.Channel{ID: channel.ID, Name: channel.Name, Private: isPrivate(channel)}, true
}

// Roster reads the live member list of a voice channel from the guild's
// cached voice states. Empty or unknown channels yield an empty roster.
func (d *Directory) Roster(channelID string) announcer.Snapshot {
	if channelID == "" {
		return nil
	}

	channel, err := d.session.State.Channel(channelID)
	if err != nil {
		return nil
	}

	guild, err := d.session.State.Guild(channel.GuildID)
	if err != nil {
		return nil
	}

	var roster announcer.Snapshot
	for _, vs := range guild.VoiceStates {
		if vs.ChannelID == channelID {
			roster = append(roster, announcer.ParticipantState{UserID: vs.UserID, ChannelID: vs.ChannelID})
		}
	}
	return roster
}

func (d *Directory) Username(id string) (string, bool) {
	for _, guild := range d.session.State.Guilds {
		if member, err := d.session.State.Member(guild.ID, id); err == nil {
			return member.User.Username, true
		}
	}

	if user, err := d.session.User(id); err == nil {
		return user.Username, true
	}

	return "", false
}

// CurrentVoiceChannelID scans the cached voice states for the observed
// user's current channel.
func (d *Directory) CurrentVoiceChannelID() string {
	for _, guild := range d.session.State.Guilds {
		for _, vs := range guild.VoiceStates {
			if vs.UserID == d.observedUserID {
				return vs.ChannelID
			}
		}
	}
	return ""
}

// Discord type codes 1 (DM) and 3 (group DM) name private calls; everything
// else is announced under its real title.
func isPrivate(channel *discordgo.Channel) bool {
	return channel.Type == discordgo.ChannelTypeDM || channel.Type == discordgo.ChannelTypeGroupDM
}
