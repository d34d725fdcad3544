package handler

import (
	"time"

	"lexibot/internal/scheduler"
	"lexibot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// DefaultNextWordDelay is the pause between an add/skip acknowledgment and the next word
const DefaultNextWordDelay = 300 * time.Millisecond

// Handler maps Telegram updates to trainer calls
type Handler struct {
	bot       *tele.Bot
	trainer   *service.TrainerService
	scheduler *scheduler.Scheduler
	nextDelay time.Duration
	logger    *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	trainer *service.TrainerService,
	sched *scheduler.Scheduler,
	nextDelay time.Duration,
	logger *zap.Logger,
) *Handler {
	if nextDelay < 0 {
		nextDelay = DefaultNextWordDelay
	}
	return &Handler{
		bot:       bot,
		trainer:   trainer,
		scheduler: sched,
		nextDelay: nextDelay,
		logger:    logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/dictionary", h.handleDictionaryCommand)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Inline buttons carry raw action identifiers, so every press lands here
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Commands returns the command menu published to Telegram
func Commands() []tele.Command {
	return []tele.Command{
		{Text: "start", Description: "Выбрать уровень"},
		{Text: "dictionary", Description: "Мой словарь"},
	}
}

// sendOptions converts a reply into telebot send options
func sendOptions(r service.Reply) *tele.SendOptions {
	opts := &tele.SendOptions{}
	if r.Markdown {
		opts.ParseMode = tele.ModeMarkdown
	}
	if len(r.Keyboard) > 0 {
		opts.ReplyMarkup = inlineMarkup(r.Keyboard)
	}
	return opts
}

// inlineMarkup builds an inline keyboard whose callback data is the raw action identifier
func inlineMarkup(rows [][]service.Button) *tele.ReplyMarkup {
	keyboard := make([][]tele.InlineButton, len(rows))
	for i, row := range rows {
		buttons := make([]tele.InlineButton, len(row))
		for j, btn := range row {
			buttons[j] = tele.InlineButton{
				Text: btn.Label,
				Data: btn.Action.Data(),
			}
		}
		keyboard[i] = buttons
	}
	return &tele.ReplyMarkup{InlineKeyboard: keyboard}
}
