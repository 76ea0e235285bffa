package speech

import (
	htgotts "github.com/hegedustibor/htgo-tts"
	"github.com/hegedustibor/htgo-tts/handlers"
	"github.com/hegedustibor/htgo-tts/voices"
)

// The voices htgo-tts can synthesize, one per supported language.
var htgoVoices = []Voice{
	{ID: voices.English, Name: "English", Locale: voices.English},
	{ID: voices.German, Name: "German", Locale: voices.German},
	{ID: voices.Spanish, Name: "Spanish", Locale: voices.Spanish},
	{ID: voices.French, Name: "French", Locale: voices.French},
	{ID: voices.Italian, Name: "Italian", Locale: voices.Italian},
	{ID: voices.Dutch, Name: "Dutch", Locale: voices.Dutch},
	{ID: voices.Portuguese, Name: "Portuguese", Locale: voices.Portuguese},
	{ID: voices.Russian, Name: "Russian", Locale: voices.Russian},
	{ID: voices.Japanese, Name: "Japanese", Locale: voices.Japanese},
	{ID: voices.Korean, Name: "Korean", Locale: voices.Korean},
}

// HtgoEngine synthesizes speech through htgo-tts and plays it with the
// native audio handler. Synthesized clips are cached under folder.
type HtgoEngine struct {
	folder string
}

func NewHtgoEngine(cacheFolder string) *HtgoEngine {
	return &HtgoEngine{folder: cacheFolder}
}

func (e *HtgoEngine) Voices() []Voice {
	catalogue := make([]Voice, len(htgoVoices))
	copy(catalogue, htgoVoices)
	return catalogue
}

func (e *HtgoEngine) Speak(text string, voice Voice) error {
	language := voice.ID
	if language == "" {
		language = voices.English
	}

	speech := htgotts.Speech{
		Folder:   e.folder,
		Language: language,
		Handler:  &handlers.Native{},
	}
	return speech.Speak(text)
}
