package telegram

import (
	"context"
	"log"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Vovarama1992/audio_dubber/internal/notify"
	"github.com/Vovarama1992/audio_dubber/internal/pipeline"
)

type PipelineRunner interface {
	Run(ctx context.Context, req pipeline.Request) (*pipeline.Result, error)
}

type BotApp struct {
	Pipeline    PipelineRunner
	ErrorNotify notify.Notifier

	bot *tgbotapi.BotAPI

	mu        sync.Mutex
	chatLangs map[int64]string // выбранный язык на чат
}

func NewBotApp(token string, p PipelineRunner, n notify.Notifier) (*BotApp, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("[dub-bot] ready: @%s", bot.Self.UserName)

	return &BotApp{
		Pipeline:    p,
		ErrorNotify: n,
		bot:         bot,
		chatLangs:   make(map[int64]string),
	}, nil
}

func (app *BotApp) Bot() *tgbotapi.BotAPI { return app.bot }

// Run крутит long-poll цикл; каждое обновление обрабатывается в своей горутине.
func (app *BotApp) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := app.bot.GetUpdatesChan(u)

	for update := range updates {
		go app.routeUpdate(context.Background(), update)
	}
}

func (app *BotApp) routeUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}

	msg := upd.Message
	switch {
	case msg.IsCommand():
		app.handleCommand(ctx, msg)
	case msg.Voice != nil || msg.Audio != nil:
		app.handleVoice(ctx, msg)
	default:
		app.reply(msg.Chat.ID, "Send me a voice message or an audio file and I will re-dub it. Pick a language with /lang <code> (default: es).")
	}
}

func (app *BotApp) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		app.reply(msg.Chat.ID,
			"🎙 Send a voice message or audio file and get it back re-dubbed in another language.\n"+
				"Target language: /lang es (fr, de, it, pt, ru, ja, zh-CN, ...)")
	case "lang":
		tag := msg.CommandArguments()
		if tag == "" {
			app.reply(msg.Chat.ID, "Usage: /lang <code>, e.g. /lang fr")
			return
		}
		app.setLang(msg.Chat.ID, tag)
		app.reply(msg.Chat.ID, "Target language set to "+tag)
	default:
		app.reply(msg.Chat.ID, "Unknown command. Try /lang <code> or just send a voice message.")
	}
}

func (app *BotApp) setLang(chatID int64, tag string) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.chatLangs[chatID] = tag
}

func (app *BotApp) langFor(chatID int64) string {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.chatLangs[chatID] // пусто -> дефолт пайплайна
}

func (app *BotApp) reply(chatID int64, text string) {
	if _, err := app.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("[dub-bot] send fail: %v", err)
	}
}
