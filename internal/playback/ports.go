package playback

import "context"

type Player interface {
	// Play проигрывает файл локально. Ошибка не фатальна для пайплайна —
	// оркестратор превращает её в предупреждение.
	Play(ctx context.Context, path string) error
}
