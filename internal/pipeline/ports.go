package pipeline

import (
	"context"
	"io"

	"github.com/Vovarama1992/audio_dubber/internal/speech"
)

// === Интерфейсы этапов ===

type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}

type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

type Synthesizer interface {
	Synthesize(ctx context.Context, text string, voice speech.VoiceProfile, outPath string) (int64, error)
}

type Player interface {
	Play(ctx context.Context, path string) error
}
