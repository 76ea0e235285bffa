package speech

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	voices []Voice
	spoken []utterance
	mu     sync.Mutex
}

func (e *fakeEngine) Voices() []Voice {
	return e.voices
}

func (e *fakeEngine) Speak(text string, voice Voice) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.spoken = append(e.spoken, utterance{text: text, voice: voice})
	return nil
}

func (e *fakeEngine) spokenTexts() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	texts := make([]string, len(e.spoken))
	for i, u := range e.spoken {
		texts[i] = u.text
	}
	return texts
}

func waitFor(t *testing.T, condition func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition never met")
}

func TestAnnounceSpeaksInSubmissionOrder(t *testing.T) {
	engine := &fakeEngine{}
	speaker := NewSpeaker(engine)
	defer speaker.Close()

	speaker.Announce("Alice joined General", "")
	speaker.Announce("Bob left General", "")
	speaker.Announce("You left General", "")

	waitFor(t, func() bool { return len(engine.spokenTexts()) == 3 })
	assert.Equal(t, []string{"Alice joined General", "Bob left General", "You left General"}, engine.spokenTexts())
}

func TestAnnounceUsesSelectedVoice(t *testing.T) {
	engine := &fakeEngine{voices: []Voice{
		{ID: "en", Name: "English", Locale: "en"},
		{ID: "de", Name: "German", Locale: "de"},
	}}
	speaker := NewSpeaker(engine)
	defer speaker.Close()

	speaker.Announce("Hallo", "de")

	waitFor(t, func() bool { return len(engine.spokenTexts()) == 1 })
	engine.mu.Lock()
	defer engine.mu.Unlock()
	assert.Equal(t, "de", engine.spoken[0].voice.ID)
}

func TestAnnounceFallsBackToEngineDefaultForUnknownVoice(t *testing.T) {
	engine := &fakeEngine{voices: []Voice{{ID: "en", Name: "English", Locale: "en"}}}
	speaker := NewSpeaker(engine)
	defer speaker.Close()

	speaker.Announce("Hello", "missing-voice")

	waitFor(t, func() bool { return len(engine.spokenTexts()) == 1 })
	engine.mu.Lock()
	defer engine.mu.Unlock()
	assert.Equal(t, Voice{}, engine.spoken[0].voice)
}

func TestCloseIsIdempotent(t *testing.T) {
	speaker := NewSpeaker(&fakeEngine{})
	speaker.Close()
	speaker.Close()
}

func TestAnnounceAfterCloseIsDroppedSilently(t *testing.T) {
	// A voice event can still arrive while shutdown is underway; the late
	// announcement is dropped, never a panic on the closed queue.
	engine := &fakeEngine{}
	speaker := NewSpeaker(engine)
	speaker.Close()

	speaker.Announce("You left General", "")

	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, engine.spokenTexts())
}

func TestHtgoEngineCatalogue(t *testing.T) {
	engine := NewHtgoEngine(t.TempDir())

	catalogue := engine.Voices()
	require.NotEmpty(t, catalogue)
	for _, voice := range catalogue {
		assert.NotEmpty(t, voice.ID)
		assert.NotEmpty(t, voice.Name)
	}
}
