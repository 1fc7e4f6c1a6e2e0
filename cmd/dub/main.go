package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/Vovarama1992/audio_dubber/internal/config"
	"github.com/Vovarama1992/audio_dubber/internal/pipeline"
	"github.com/Vovarama1992/audio_dubber/internal/playback"
	"github.com/Vovarama1992/audio_dubber/internal/speech"
	"github.com/Vovarama1992/audio_dubber/internal/transcribe"
	"github.com/Vovarama1992/audio_dubber/internal/translate"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		inPath          = flag.String("in", "", "input audio file (wav, mp3, ogg, ...)")
		targetLang      = flag.String("lang", pipeline.DefaultTargetLang, "target language code (es, fr, de, ja, zh-CN, ...)")
		voiceID         = flag.String("voice", speech.DefaultVoiceID, "ElevenLabs voice id")
		stability       = flag.Float64("stability", 0.5, "voice stability (0.0-1.0)")
		similarityBoost = flag.Float64("similarity-boost", 0.75, "voice similarity boost (0.0-1.0)")
		style           = flag.Float64("style", 0.0, "voice style strength (0.0-1.0)")
		speakerBoost    = flag.Bool("speaker-boost", true, "enable speaker boost")
		outputDir       = flag.String("out", "", "output directory (default $OUTPUT_DIR or temp_audio)")
		noPlay          = flag.Bool("no-play", false, "skip local playback")
	)
	flag.Parse()

	cfg := config.Load()
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	banner("AUDIO TRANSLATION & RE-DUBBING PIPELINE")

	// Отчёт по ключам: внятный yes/no на каждый.
	fmt.Println("[Environment Check]")
	for _, s := range config.CheckCredentials() {
		if s.Present {
			fmt.Printf("✓ %s is set\n", s.Name)
		} else {
			fmt.Printf("✗ %s is missing\n", s.Name)
		}
	}
	if missing := config.MissingCredentials(); len(missing) > 0 {
		fmt.Printf("\n⚠ Missing API keys: %s\n", strings.Join(missing, ", "))
		return 1
	}

	if *inPath == "" {
		fmt.Println("\nUsage: dub -in <audio file> [-lang es] [-voice <id>] [-no-play]")
		return 2
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	svc, err := pipeline.NewService(
		transcribe.NewOpenAIClient(cfg.OpenAIKey),
		translate.NewGoogleClient(),
		speech.NewElevenLabsClient(cfg.ElevenLabsKey),
		playback.NewLocalPlayer(),
		cfg.OutputDir,
		zl,
	)
	if err != nil {
		fmt.Printf("✗ %v\n", err)
		return 1
	}

	ctx := context.Background()
	res, err := svc.Run(ctx, pipeline.Request{
		InputPath:  *inPath,
		TargetLang: *targetLang,
		Voice: speech.VoiceProfile{
			VoiceID:         *voiceID,
			Stability:       *stability,
			SimilarityBoost: *similarityBoost,
			Style:           *style,
			SpeakerBoost:    *speakerBoost,
		},
		Play: !*noPlay,
	})
	if err != nil {
		banner("PIPELINE FAILED")
		fmt.Printf("✗ %v\n", err)
		return 1
	}

	banner("PIPELINE COMPLETED SUCCESSFULLY")
	fmt.Printf("Original:   %s\n", res.OriginalText)
	fmt.Printf("Translated: %s\n", res.TranslatedText)
	fmt.Printf("Audio:      %s", res.OutputAudioPath)
	if fi, statErr := os.Stat(res.OutputAudioPath); statErr == nil {
		fmt.Printf(" (%s", humanize.Bytes(uint64(fi.Size())))
		if dur, derr := speech.AudioDuration(ctx, res.OutputAudioPath); derr == nil {
			fmt.Printf(", %.1fs", dur)
		}
		fmt.Print(")")
	}
	fmt.Println()

	if res.PlaybackWarning != "" {
		fmt.Printf("⚠ %s\n", res.PlaybackWarning)
	}
	return 0
}

func banner(title string) {
	line := strings.Repeat("=", 70)
	fmt.Println(line)
	fmt.Println(title)
	fmt.Println(line)
}
