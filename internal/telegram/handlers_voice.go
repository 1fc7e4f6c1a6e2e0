package telegram

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Vovarama1992/audio_dubber/internal/pipeline"
)

func (app *BotApp) handleVoice(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	fileID := ""
	ext := ".oga"
	switch {
	case msg.Voice != nil:
		fileID = msg.Voice.FileID
	case msg.Audio != nil:
		fileID = msg.Audio.FileID
		ext = ".mp3"
	}

	lang := app.langFor(chatID)
	log.Printf("[dub-bot] voice start chatID=%d fileID=%s lang=%q", chatID, fileID, lang)

	file, err := app.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		log.Printf("[dub-bot] get file fail chatID=%d err=%v", chatID, err)
		app.reply(chatID, "⚠️ Could not fetch your audio, try again.")
		return
	}

	resp, err := http.Get(file.Link(app.bot.Token))
	if err != nil {
		log.Printf("[dub-bot] download fail chatID=%d err=%v", chatID, err)
		app.reply(chatID, "⚠️ Could not download your audio.")
		return
	}
	defer resp.Body.Close()

	path := fmt.Sprintf("/tmp/dub_%s%s", fileID, ext)
	out, err := os.Create(path)
	if err != nil {
		log.Printf("[dub-bot] create tmp fail chatID=%d err=%v", chatID, err)
		app.reply(chatID, "⚠️ Could not process your audio.")
		return
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		log.Printf("[dub-bot] save tmp fail chatID=%d err=%v", chatID, err)
		app.reply(chatID, "⚠️ Could not save your audio.")
		return
	}
	out.Close()
	defer os.Remove(path)

	app.reply(chatID, "🎧 Got it, dubbing...")

	res, err := app.Pipeline.Run(ctx, pipeline.Request{
		InputPath:  path,
		TargetLang: lang,
		Play:       false,
	})
	if err != nil {
		log.Printf("[dub-bot] pipeline fail chatID=%d err=%v", chatID, err)
		_ = app.ErrorNotify.Notify(ctx, err, fmt.Sprintf("telegram chat %d, file %s", chatID, fileID))
		app.reply(chatID, "⚠️ Dubbing failed: "+err.Error())
		return
	}

	voice := tgbotapi.NewVoice(chatID, tgbotapi.FilePath(res.OutputAudioPath))
	voice.Caption = res.TranslatedText
	if _, err := app.bot.Send(voice); err != nil {
		log.Printf("[dub-bot] send voice fail chatID=%d err=%v", chatID, err)
		app.reply(chatID, "Translated: "+res.TranslatedText)
		return
	}

	app.reply(chatID, "Original: "+res.OriginalText)
	log.Printf("[dub-bot] done chatID=%d", chatID)
}
