package playback

import (
	"context"
	"fmt"
	"os/exec"
)

// Кандидаты в порядке предпочтения; берём первый найденный в PATH.
var candidates = []struct {
	name string
	args []string
}{
	{"ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "error"}},
	{"mpg123", []string{"-q"}},
	{"afplay", nil},
	{"aplay", []string{"-q"}},
}

type LocalPlayer struct {
	lookPath func(name string) (string, error)
	run      func(ctx context.Context, name string, args ...string) error
}

func NewLocalPlayer() *LocalPlayer {
	return &LocalPlayer{
		lookPath: exec.LookPath,
		run: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
	}
}

// newLocalPlayerForTests — с подменёнными lookPath и run.
func newLocalPlayerForTests(
	lookPath func(string) (string, error),
	run func(context.Context, string, ...string) error,
) *LocalPlayer {
	return &LocalPlayer{lookPath: lookPath, run: run}
}

func (p *LocalPlayer) Play(ctx context.Context, path string) error {
	for _, c := range candidates {
		bin, err := p.lookPath(c.name)
		if err != nil {
			continue
		}

		args := append(append([]string{}, c.args...), path)
		if err := p.run(ctx, bin, args...); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
		return nil
	}

	return fmt.Errorf("no local audio player found (tried ffplay, mpg123, afplay, aplay)")
}
