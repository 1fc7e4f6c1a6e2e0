package pipeline

import "fmt"

// Kind — закрытый набор фатальных ошибок пайплайна, по одной на этап.
// Сбой проигрывания сюда не входит: он не прерывает прогон.
type Kind int

const (
	KindInputNotFound Kind = iota + 1
	KindTranscriptionFailed
	KindTranslationFailed
	KindSynthesisFailed
)

func (k Kind) String() string {
	switch k {
	case KindInputNotFound:
		return "input not found"
	case KindTranscriptionFailed:
		return "transcription failed"
	case KindTranslationFailed:
		return "translation failed"
	case KindSynthesisFailed:
		return "synthesis failed"
	default:
		return "unknown pipeline error"
	}
}

type Error struct {
	Kind  Kind
	Cause error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

func newError(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Cause: cause}
}
