package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// UpdateLogger creates middleware that logs every incoming update before handling it
func UpdateLogger(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			fields := make([]zap.Field, 0, 3)

			if sender := c.Sender(); sender != nil {
				fields = append(fields, zap.Int64("user_id", sender.ID))
			}

			// Callbacks carry the action identifier, messages carry text
			if cb := c.Callback(); cb != nil {
				fields = append(fields, zap.String("callback", cb.Data))
			} else if text := c.Text(); text != "" {
				fields = append(fields, zap.String("text", text))
			}

			logger.Debug("Update received", fields...)

			if err := next(c); err != nil {
				logger.Error("Handler failed", append(fields, zap.Error(err))...)
				return err
			}
			return nil
		}
	}
}
