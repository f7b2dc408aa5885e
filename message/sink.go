package message

import (
	"go.uber.org/zap"

	"github.com/nweston/openfx-runner/handle"
	"github.com/nweston/openfx-runner/suite"
)

// LogSink delivers messages to a structured logger, mapping the OpenFX
// message type to a log level. Question messages have no interactive surface
// here, so they are logged and answered with the default reply.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a LogSink over logger
func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Deliver logs the message and reports the delivery status
func (s *LogSink) Deliver(h handle.Handle, messageType, messageID string, body []byte) suite.Status {
	fields := []zap.Field{
		zap.Stringer("handle", h),
		zap.String("messageId", messageID),
	}
	text := ""
	if body != nil {
		text = string(body)
	}

	switch messageType {
	case suite.MessageFatal, suite.MessageError:
		s.logger.Error(text, fields...)
	case suite.MessageWarning:
		s.logger.Warn(text, fields...)
	case suite.MessageMessage, suite.MessageLog:
		s.logger.Info(text, fields...)
	case suite.MessageQuestion:
		s.logger.Info(text, fields...)
		return suite.StatusReplyDefault
	default:
		s.logger.Warn("unknown message type",
			append(fields, zap.String("messageType", messageType), zap.String("body", text))...)
		return suite.StatusFailed
	}

	return suite.StatusOK
}
