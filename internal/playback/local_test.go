package playback

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestPlayUsesFirstAvailablePlayer(t *testing.T) {
	var ranName string
	var ranArgs []string

	p := newLocalPlayerForTests(
		func(name string) (string, error) {
			if name == "mpg123" {
				return "/usr/bin/mpg123", nil
			}
			return "", errors.New("not found")
		},
		func(_ context.Context, name string, args ...string) error {
			ranName = name
			ranArgs = append([]string{}, args...)
			return nil
		},
	)

	if err := p.Play(context.Background(), "/tmp/out.mp3"); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if ranName != "/usr/bin/mpg123" {
		t.Errorf("ran = %q", ranName)
	}
	if len(ranArgs) == 0 || ranArgs[len(ranArgs)-1] != "/tmp/out.mp3" {
		t.Errorf("args = %v, want path last", ranArgs)
	}
}

func TestPlayNoPlayerFound(t *testing.T) {
	p := newLocalPlayerForTests(
		func(string) (string, error) { return "", errors.New("not found") },
		func(context.Context, string, ...string) error {
			t.Fatal("run called with no player available")
			return nil
		},
	)

	err := p.Play(context.Background(), "/tmp/out.mp3")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "no local audio player") {
		t.Errorf("err = %v", err)
	}
}

func TestPlayCommandFailure(t *testing.T) {
	p := newLocalPlayerForTests(
		func(name string) (string, error) {
			if name == "ffplay" {
				return "/usr/bin/ffplay", nil
			}
			return "", errors.New("not found")
		},
		func(context.Context, string, ...string) error {
			return errors.New("exit status 1")
		},
	)

	err := p.Play(context.Background(), "/tmp/out.mp3")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "ffplay") {
		t.Errorf("err = %v, want player name in cause", err)
	}
}
