package handler

import (
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	sender := c.Sender()

	h.logger.Info("User started bot",
		zap.Int64("user_id", sender.ID),
		zap.String("username", sender.Username),
	)

	reply := h.trainer.Start(sender.FirstName)
	return c.Send(reply.Text, sendOptions(reply))
}

// handleDictionaryCommand handles /dictionary command
func (h *Handler) handleDictionaryCommand(c tele.Context) error {
	reply := h.trainer.Dictionary(c.Sender().ID)
	return c.Send(reply.Text, sendOptions(reply))
}

// handleText answers free text with a hint
func (h *Handler) handleText(c tele.Context) error {
	// Unknown commands are ignored
	if strings.HasPrefix(strings.TrimSpace(c.Text()), "/") {
		return nil
	}
	return c.Send("Нажми /start, чтобы выбрать уровень.")
}
