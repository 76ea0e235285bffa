package announcer

// ParticipantState records one user's voice membership as of the last event touching them.
// An empty ChannelID means the user is not in any voice channel.
type ParticipantState struct {
	UserID    string
	ChannelID string
}

// Snapshot is the last-known roster of the tracked channel, one entry per user.
// It is always rebuilt from a live directory read, never patched with a delta.
type Snapshot []ParticipantState

// Whether the given user appears in the snapshot
func (s Snapshot) Contains(userID string) bool {
	for _, p := range s {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

// Event is a single voice-state update from the gateway.
// An empty ChannelID means the user left all voice channels.
type Event struct {
	UserID    string
	ChannelID string
}

// Kind tags the six possible presence transitions
type Kind int

const (
	None Kind = iota
	SelfJoin
	SelfMove
	SelfLeave
	OtherJoin
	OtherLeave
)

func (k Kind) String() string {
	switch k {
	case SelfJoin:
		return "selfJoin"
	case SelfMove:
		return "selfMove"
	case SelfLeave:
		return "selfLeave"
	case OtherJoin:
		return "otherJoin"
	case OtherLeave:
		return "otherLeave"
	default:
		return "none"
	}
}

// Transition is the classified outcome of one event, carrying the display
// names ready for template substitution. User and Channel are empty when
// Kind is None.
type Transition struct {
	Kind    Kind
	User    string
	Channel string
}

// Channel is the directory's view of one channel. Private marks 1:1 and
// group DM channels, which are announced under a placeholder name instead
// of their real title.
type Channel struct {
	ID      string
	Name    string
	Private bool
}

// Directory is the narrow read surface the classifier needs from the host
// platform. Lookups never fail hard; an unresolvable reference reports
// absence and the caller degrades to a skipped announcement.
type Directory interface {
	// Channel resolves a channel id, reporting whether it exists.
	Channel(id string) (Channel, bool)
	// Roster returns the live member list of a channel, empty for an
	// empty or unresolvable id.
	Roster(channelID string) Snapshot
	// Username resolves a user id to a display name.
	Username(id string) (string, bool)
	// CurrentVoiceChannelID is the channel the observed user is in right
	// now, or empty if they are not in voice.
	CurrentVoiceChannelID() string
}
