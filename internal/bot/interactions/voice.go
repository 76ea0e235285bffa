package interactions

import (
	"github.com/bwmarrin/discordgo"

	"github.com/voice-herald/voice-herald/internal/db"
	"github.com/voice-herald/voice-herald/internal/speech"
)

func HandleVoice(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	settings db.DatabasePool,
	voiceCatalogue []speech.Voice,
	opts optionMap,
) {
	voiceOpt, hasVoice := opts["voice"]
	if !hasVoice {
		respond(s, i, "Please pick a voice.")
		return
	}

	requested := voiceOpt.StringValue()
	for _, voice := range voiceCatalogue {
		if voice.ID == requested {
			settings.SetSetting(db.KeyVoice, voice.ID)
			respond(s, i, "Announcements will now be spoken in "+voice.Name+".")
			return
		}
	}

	respond(s, i, "That voice is not available; keeping the current one.")
}
