package transcribe

import (
	"context"
	"io"
)

type Client interface {
	// Transcribe распознаёт речь из аудиопотока. filename нужен сервису,
	// чтобы определить формат по расширению.
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}
