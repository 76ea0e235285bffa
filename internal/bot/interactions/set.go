package interactions

import (
	"slices"

	"github.com/bwmarrin/discordgo"

	"github.com/voice-herald/voice-herald/internal/db"
)

func HandleSet(s *discordgo.Session, i *discordgo.InteractionCreate, settings db.DatabasePool, opts optionMap) {
	fieldOpt, hasField := opts["field"]
	valueOpt, hasValue := opts["value"]
	if !hasField || !hasValue {
		respond(s, i, "Please provide both a field and a value.")
		return
	}

	field := fieldOpt.StringValue()
	if !slices.Contains(db.TemplateKeys, field) {
		respond(s, i, "Unknown message field `"+field+"`.")
		return
	}

	settings.SetSetting(field, valueOpt.StringValue())
	respond(s, i, "Updated `"+field+"` to: "+valueOpt.StringValue())
}
