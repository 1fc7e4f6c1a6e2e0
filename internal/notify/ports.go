package notify

import "context"

type Notifier interface {
	// Notify — сообщает админу о сбое пайплайна.
	Notify(ctx context.Context, err error, details string) error
}
