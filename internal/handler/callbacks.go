package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"lexibot/internal/domain"
	"lexibot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	textUnknownLevel = "Неизвестный уровень"
	textTryAgain     = "Ошибка, попробуй ещё раз"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Message was already edited by an earlier press of the same button
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		h.respond(c)
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	h.respond(c)
	return err
}

// respond acknowledges the callback, logging failures
func (h *Handler) respond(c tele.Context, resp ...*tele.CallbackResponse) {
	if err := c.Respond(resp...); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
}

// editReply replaces the pressed message with reply, falling back to a new message
func (h *Handler) editReply(c tele.Context, reply service.Reply) error {
	if err := c.Edit(reply.Text, sendOptions(reply)); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil
		}
		return c.Send(reply.Text, sendOptions(reply))
	}
	h.respond(c)
	return nil
}

// handleCallback decodes the action identifier once and dispatches on its kind
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	action, err := domain.ParseAction(data)
	if err != nil {
		h.logger.Warn("Unhandled callback",
			zap.String("data", data),
			zap.Int64("user_id", c.Sender().ID),
			zap.Error(err),
		)
		if errors.Is(err, domain.ErrUnknownLevel) {
			h.respond(c, &tele.CallbackResponse{Text: textUnknownLevel})
			return nil
		}
		h.respond(c)
		return nil
	}

	switch action.Kind {
	case domain.ActionLevel:
		return h.handleLevel(c, domain.Level(action.Param))
	case domain.ActionAdd:
		return h.handleAdd(c, action.Param)
	case domain.ActionSkip:
		return h.handleSkip(c)
	case domain.ActionShowDictionary:
		return h.handleShowDictionary(c)
	}

	h.respond(c)
	return nil
}

// handleLevel stores the chosen level, acknowledges it and then presents the first word
func (h *Handler) handleLevel(c tele.Context, level domain.Level) error {
	userID := c.Sender().ID

	ack, err := h.trainer.ChooseLevel(userID, level)
	if err != nil {
		h.logger.Error("Failed to choose level",
			zap.Int64("user_id", userID),
			zap.String("level", level.String()),
			zap.Error(err),
		)
		text := textTryAgain
		if errors.Is(err, domain.ErrUnknownLevel) {
			text = textUnknownLevel
		}
		h.respond(c, &tele.CallbackResponse{Text: text})
		return nil
	}

	if err := h.editReply(c, ack); err != nil {
		return err
	}

	card, err := h.trainer.PresentWord(context.Background(), level)
	if err != nil {
		return fmt.Errorf("present first word: %w", err)
	}
	return c.Send(card.Text, sendOptions(card.Reply))
}

// handleAdd saves the word and schedules the next one
func (h *Handler) handleAdd(c tele.Context, term string) error {
	userID := c.Sender().ID
	reply := h.trainer.AddWord(userID, term)

	err := h.editReply(c, reply)
	h.scheduleNextWord(c, userID)
	return err
}

// handleSkip acknowledges and schedules the next word
func (h *Handler) handleSkip(c tele.Context) error {
	userID := c.Sender().ID
	reply := h.trainer.Skip(userID)

	err := h.editReply(c, reply)
	h.scheduleNextWord(c, userID)
	return err
}

// handleShowDictionary sends the saved words as a new message
func (h *Handler) handleShowDictionary(c tele.Context) error {
	reply := h.trainer.Dictionary(c.Sender().ID)
	h.respond(c)
	return c.Send(reply.Text, sendOptions(reply))
}

// scheduleNextWord sends a fresh word to the same chat after the pacing delay
func (h *Handler) scheduleNextWord(c tele.Context, userID int64) {
	to := c.Recipient()
	scheduled := h.scheduler.After(h.nextDelay, func(ctx context.Context) {
		card, ok := h.trainer.NextWord(ctx, userID)
		if !ok {
			return
		}
		if _, err := h.bot.Send(to, card.Text, sendOptions(card.Reply)); err != nil {
			h.logger.Error("Failed to send next word",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
		}
	})
	if !scheduled {
		h.logger.Debug("Scheduler stopped, next word dropped", zap.Int64("user_id", userID))
	}
}
