package interactions

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/voice-herald/voice-herald/internal/db"
)

func HandleMessages(s *discordgo.Session, i *discordgo.InteractionCreate, settings db.DatabasePool) {
	builder := new(strings.Builder)
	builder.WriteString("Current announcement messages:")
	for _, key := range db.TemplateKeys {
		builder.WriteString("\n- `" + key + "`: " + settings.GetSetting(key))
	}

	if voice := settings.GetSetting(db.KeyVoice); voice == "" {
		builder.WriteString("\n\nVoice: engine default")
	} else {
		builder.WriteString("\n\nVoice: `" + voice + "`")
	}

	respond(s, i, builder.String())
}
