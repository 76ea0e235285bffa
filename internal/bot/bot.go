package bot

import (
	"fmt"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/voice-herald/voice-herald/internal/announcer"
	"github.com/voice-herald/voice-herald/internal/bot/interactions"
	"github.com/voice-herald/voice-herald/internal/db"
	"github.com/voice-herald/voice-herald/internal/directory"
	"github.com/voice-herald/voice-herald/internal/speech"
)

type Config struct {
	BotToken      string
	AppID         string
	ObserveUserID string // defaults to the bot's own user when empty
	Settings      db.DatabasePool
	Speaker       *speech.Speaker

	session *discordgo.Session
	dir     *directory.Directory
	tracker *announcer.Tracker

	mu            sync.RWMutex
	observedID    string
	lastAnnounced string
}

// Status is the snapshot of tracking state served by the status endpoint.
type Status struct {
	ObservedUserID string   `json:"observed_user_id"`
	ChannelID      string   `json:"channel_id,omitempty"`
	Channel        string   `json:"channel,omitempty"`
	Roster         []string `json:"roster,omitempty"`
	LastAnnounced  string   `json:"last_announced,omitempty"`
}

func Run(bc *Config) error {
	var err error
	bc.session, err = discordgo.New("Bot " + bc.BotToken)
	if err != nil {
		return fmt.Errorf("invalid bot parameters: %w", err)
	}

	// Voice events are classified against the remembered snapshot, so they
	// have to be handled one at a time in gateway order.
	bc.session.SyncEvents = true
	bc.session.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildVoiceStates |
		discordgo.IntentGuildMembers

	bc.session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}

		data := i.ApplicationCommandData()
		switch data.Name {
		case interactions.MESSAGES_COMMAND:
			interactions.HandleMessages(s, i, bc.Settings)
		case interactions.SET_COMMAND:
			interactions.HandleSet(s, i, bc.Settings, interactions.ParseOptions(data.Options))
		case interactions.VOICE_COMMAND:
			interactions.HandleVoice(s, i, bc.Settings, bc.Speaker.Voices(), interactions.ParseOptions(data.Options))
		}
	})

	bc.session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		log.Println("Logged in as", r.User.String())
		bc.startTracking(r.User.ID)
	})

	bc.session.AddHandler(func(_ *discordgo.Session, v *discordgo.VoiceStateUpdate) {
		bc.handleVoiceState(v)
	})

	_, err = bc.session.ApplicationCommandBulkOverwrite(bc.AppID, "", interactions.InteractionList(bc.Speaker.Voices()))
	if err != nil {
		return fmt.Errorf("could not register bot commands: %w", err)
	}

	err = bc.session.Open()
	if err != nil {
		return fmt.Errorf("could not open bot session: %w", err)
	}

	if err = bc.session.UpdateCustomStatus("Announcing voice channel comings and goings"); err != nil {
		log.Printf("could not set custom status: %s", err)
	}

	return nil
}

func Stop(bc *Config) error {
	if bc.session == nil {
		return nil
	}

	fmt.Print("Bot shutting down...")

	bc.mu.RLock()
	tracker := bc.tracker
	bc.mu.RUnlock()
	if tracker != nil {
		tracker.Clear()
	}

	// Stop event delivery before shutting the speaker down; anything
	// already queued keeps playing, nothing new gets in
	err := bc.session.Close()
	bc.Speaker.Close()
	if err != nil {
		return fmt.Errorf("could not close session gracefully: %w", err)
	}

	fmt.Print("Done!\n")
	return nil
}

// Resolves who to follow and seeds the snapshot from their current channel
func (bc *Config) startTracking(botUserID string) {
	observed := bc.ObserveUserID
	if observed == "" {
		observed = botUserID
	}

	dir := directory.New(bc.session, observed)
	tracker := announcer.NewTracker(dir, observed)
	tracker.Seed()

	bc.mu.Lock()
	bc.observedID = observed
	bc.dir = dir
	bc.tracker = tracker
	bc.mu.Unlock()

	log.Println("Tracking voice presence of user", observed)
}

func (bc *Config) handleVoiceState(v *discordgo.VoiceStateUpdate) {
	bc.mu.RLock()
	tracker := bc.tracker
	bc.mu.RUnlock()
	if tracker == nil {
		return
	}

	transition := tracker.Handle(
		announcer.Event{UserID: v.UserID, ChannelID: v.ChannelID},
		bc.Settings.GetSetting(db.KeyPrivateCall),
	)
	if transition.Kind == announcer.None {
		return
	}

	template := bc.Settings.GetSetting(templateKey(transition.Kind))
	message := announcer.Render(template, transition.User, transition.Channel)
	bc.Speaker.Announce(message, bc.Settings.GetSetting(db.KeyVoice))

	bc.mu.Lock()
	bc.lastAnnounced = message
	bc.mu.Unlock()

	log.Printf("%s: %s", transition.Kind, message)
}

func (bc *Config) Status() Status {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	status := Status{ObservedUserID: bc.observedID, LastAnnounced: bc.lastAnnounced}
	if bc.tracker == nil {
		return status
	}

	status.ChannelID = bc.dir.CurrentVoiceChannelID()
	if channel, found := bc.dir.Channel(status.ChannelID); found {
		status.Channel = channel.Name
	}
	for _, participant := range bc.tracker.Roster() {
		status.Roster = append(status.Roster, participant.UserID)
	}

	return status
}

// Which message template announces a given transition
func templateKey(kind announcer.Kind) string {
	switch kind {
	case announcer.SelfJoin:
		return db.KeyJoinSelf
	case announcer.SelfMove:
		return db.KeyMoveSelf
	case announcer.SelfLeave:
		return db.KeyLeaveSelf
	case announcer.OtherJoin:
		return db.KeyJoin
	default:
		return db.KeyLeave
	}
}
