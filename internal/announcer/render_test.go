package announcer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderReplacesBothPlaceholders(t *testing.T) {
	assert.Equal(t, "Alice joined General", Render("$user joined $channel", "Alice", "General"))
	assert.Equal(t, "General welcomes Alice", Render("$channel welcomes $user", "Alice", "General"))
}

func TestRenderReplacesEveryOccurrence(t *testing.T) {
	assert.Equal(t, "Bob, Bob left Lobby", Render("$user, $user left $channel", "Bob", "Lobby"))
}

func TestRenderMissingPlaceholdersLeaveTemplateAlone(t *testing.T) {
	assert.Equal(t, "Someone did something", Render("Someone did something", "Alice", "General"))
}

func TestRenderDoesNotGuardAgainstResubstitution(t *testing.T) {
	// $user is substituted before $channel, so a username containing the
	// literal text $channel is hit by the second pass. Pinned on purpose,
	// not a bug to fix.
	assert.Equal(t, "General joined General", Render("$user joined $channel", "$channel", "General"))
}
