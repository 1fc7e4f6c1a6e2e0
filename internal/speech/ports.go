package speech

import "context"

type Client interface {
	// Synthesize озвучивает текст и пишет аудио в файл outPath.
	// Возвращает количество записанных байт.
	Synthesize(ctx context.Context, text string, voice VoiceProfile, outPath string) (int64, error)
}
