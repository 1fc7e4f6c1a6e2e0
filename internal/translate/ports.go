package translate

import "context"

type Client interface {
	// Translate переводит текст на targetLang. Исходный язык сервис
	// определяет сам.
	Translate(ctx context.Context, text, targetLang string) (string, error)
}
