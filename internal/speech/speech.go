// Text-to-speech output: a serialized, fire-and-forget playback queue in
// front of a pluggable synthesis engine
package speech

import (
	"log"
	"sync"
)

// Voice identifies one synthesized voice the engine offers.
type Voice struct {
	ID     string
	Name   string
	Locale string
}

// Engine is the narrow surface required from a speech backend. A zero
// Voice asks for the engine's default.
type Engine interface {
	Voices() []Voice
	Speak(text string, voice Voice) error
}

type utterance struct {
	text  string
	voice Voice
}

// Speaker queues rendered announcements for playback. A single worker
// drains the queue so utterances are spoken one after another; Announce
// never blocks the event path and completion is never awaited or
// cancelled. Closing the speaker leaves anything already queued playing.
type Speaker struct {
	engine Engine
	queue  chan utterance

	mu     sync.RWMutex
	closed bool
}

func NewSpeaker(engine Engine) *Speaker {
	s := &Speaker{
		engine: engine,
		queue:  make(chan utterance, 16),
	}
	go s.play()
	return s
}

// Announce submits text for spoken playback with the voice identified by
// voiceID, or the engine default when no offered voice matches. After
// Close, submissions are dropped rather than panicking on the closed
// queue; a late event during shutdown must never take the process down.
func (s *Speaker) Announce(text string, voiceID string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return
	}

	select {
	case s.queue <- utterance{text: text, voice: s.lookupVoice(voiceID)}:
	default:
		log.Println("speech queue full, dropping announcement:", text)
	}
}

// Voices lists the engine's catalogue.
func (s *Speaker) Voices() []Voice {
	return s.engine.Voices()
}

func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.queue)
}

func (s *Speaker) lookupVoice(voiceID string) Voice {
	if voiceID == "" {
		return Voice{}
	}
	for _, voice := range s.engine.Voices() {
		if voice.ID == voiceID {
			return voice
		}
	}
	// Requested voice is gone from the catalogue; engine default
	return Voice{}
}

func (s *Speaker) play() {
	for u := range s.queue {
		if err := s.engine.Speak(u.text, u.voice); err != nil {
			log.Printf("could not speak announcement: %s", err)
		}
	}
}
