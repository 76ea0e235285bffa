package interactions

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/voice-herald/voice-herald/internal/db"
	"github.com/voice-herald/voice-herald/internal/speech"
)

const (
	MESSAGES_COMMAND = "messages"
	SET_COMMAND      = "set"
	VOICE_COMMAND    = "voice"
)

func InteractionList(voiceCatalogue []speech.Voice) []*discordgo.ApplicationCommand {
	fieldChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(db.TemplateKeys))
	for _, key := range db.TemplateKeys {
		fieldChoices = append(fieldChoices, &discordgo.ApplicationCommandOptionChoice{Name: key, Value: key})
	}

	voiceChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(voiceCatalogue))
	for _, voice := range voiceCatalogue {
		voiceChoices = append(voiceChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%s [%s]", voice.Name, voice.Locale),
			Value: voice.ID,
		})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        MESSAGES_COMMAND,
			Description: "Show the current announcement messages",
		}, {
			Name:        SET_COMMAND,
			Description: "Change an announcement message ($user and $channel get substituted)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "field",
					Description: "Which message to change",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
					Choices:     fieldChoices,
				},
				{
					Name:        "value",
					Description: "The new message text",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
				},
			},
		}, {
			Name:        VOICE_COMMAND,
			Description: "Pick the voice announcements are spoken with",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "voice",
					Description: "One of the voices the speech engine offers",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
					Choices:     voiceChoices,
				},
			},
		},
	}
}

type optionMap = map[string]*discordgo.ApplicationCommandInteractionDataOption

func ParseOptions(options []*discordgo.ApplicationCommandInteractionDataOption) optionMap {
	om := make(optionMap)
	for _, opt := range options {
		om[opt.Name] = opt
	}
	return om
}

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("could not respond to interaction: %s", err)
	}
}
