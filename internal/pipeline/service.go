package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/dustin/go-humanize"

	"github.com/Vovarama1992/audio_dubber/internal/speech"
)

const DefaultTargetLang = "es"

// Request — параметры одного прогона. Пустые поля получают дефолты.
type Request struct {
	InputPath  string
	TargetLang string
	Voice      speech.VoiceProfile
	Play       bool
}

// Result собирается один раз при успешном завершении.
// PlaybackWarning не пустой, если озвучка получилась, но проиграть её
// локально не удалось.
type Result struct {
	OriginalText    string
	TranslatedText  string
	OutputAudioPath string
	PlaybackWarning string
}

type Service struct {
	stt       Transcriber
	mt        Translator
	tts       Synthesizer
	player    Player
	outputDir string
	log       *logger.ZapLogger
}

// NewService создаёт оркестратор. outputDir создаётся идемпотентно;
// между прогонами он общий, имена файлов по языку перезаписываются.
func NewService(
	stt Transcriber,
	mt Translator,
	tts Synthesizer,
	player Player,
	outputDir string,
	log *logger.ZapLogger,
) (*Service, error) {
	if outputDir == "" {
		outputDir = "temp_audio"
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	return &Service{
		stt:       stt,
		mt:        mt,
		tts:       tts,
		player:    player,
		outputDir: outputDir,
		log:       log,
	}, nil
}

func (s *Service) OutputDir() string { return s.outputDir }

// Run гонит аудио через четыре этапа строго по порядку:
// вход → текст → перевод → озвучка → (опционально) проигрывание.
// Первый сбой этапов 1–4 прерывает прогон с типизированной ошибкой.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	if req.TargetLang == "" {
		req.TargetLang = DefaultTargetLang
	}
	if req.Voice.VoiceID == "" {
		req.Voice = speech.DefaultVoiceProfile()
	}

	s.step("[1/4] resolving input: " + req.InputPath)

	fi, err := os.Stat(req.InputPath)
	if err != nil {
		return nil, newError(KindInputNotFound, err)
	}
	if fi.IsDir() {
		return nil, newError(KindInputNotFound, fmt.Errorf("%s is a directory", req.InputPath))
	}

	in, err := os.Open(req.InputPath)
	if err != nil {
		return nil, newError(KindInputNotFound, err)
	}
	defer in.Close()

	s.step("[2/4] transcribing " + filepath.Base(req.InputPath))

	original, err := s.stt.Transcribe(ctx, in, filepath.Base(req.InputPath))
	if err != nil {
		return nil, newError(KindTranscriptionFailed, err)
	}
	s.step(fmt.Sprintf("transcribed: %q", original))

	s.step("[3/4] translating to " + req.TargetLang)

	translated, err := s.mt.Translate(ctx, original, req.TargetLang)
	if err != nil {
		return nil, newError(KindTranslationFailed, err)
	}
	s.step(fmt.Sprintf("translated: %q", translated))

	outPath := filepath.Join(s.outputDir, "translated_"+req.TargetLang+".mp3")

	s.step("[4/4] synthesizing with voice " + req.Voice.VoiceID)

	written, err := s.tts.Synthesize(ctx, translated, req.Voice, outPath)
	if err != nil {
		return nil, newError(KindSynthesisFailed, err)
	}
	s.step(fmt.Sprintf("saved %s -> %s", humanize.Bytes(uint64(written)), outPath))

	res := &Result{
		OriginalText:    original,
		TranslatedText:  translated,
		OutputAudioPath: outPath,
	}

	if req.Play && s.player != nil {
		s.step("playing " + outPath)
		if perr := s.player.Play(ctx, outPath); perr != nil {
			res.PlaybackWarning = fmt.Sprintf(
				"could not play audio automatically (%v); the file is available at %s",
				perr, outPath,
			)
			s.warn(res.PlaybackWarning)
		}
	}

	return res, nil
}

func (s *Service) step(msg string) {
	if s.log == nil {
		return
	}
	s.log.Log(logger.LogEntry{Level: "info", Message: msg, Service: "pipeline"})
}

func (s *Service) warn(msg string) {
	if s.log == nil {
		return
	}
	s.log.Log(logger.LogEntry{Level: "warn", Message: msg, Service: "pipeline"})
}
