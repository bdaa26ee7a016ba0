package assistant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ErrEmptyCompletion marks a provider response with no choices in it.
var ErrEmptyCompletion = errors.New("assistant returned no completion")

const completionTimeout = 10 * time.Second

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

//go:generate mockgen -source=assistant_service.go -destination=mock/assistant_service_mock.go -package=mock
type Service interface {
	Chat(ctx context.Context, message string) ChatResponse
}

type service struct {
	completer Completer
	logger    *zap.Logger
}

func NewService(completer Completer, logger ...*zap.Logger) Service {
	l := zap.L().Named("assistant.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assistant.service")
	}
	return &service{completer: completer, logger: l}
}

// Chat never fails the request; when the provider is down the reply
// degrades to an unavailability notice.
func (s *service) Chat(ctx context.Context, message string) ChatResponse {
	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	reply, err := s.completer.Complete(ctx, message)
	if err != nil {
		s.logger.Warn("assistant completion failed", zap.Error(err))
		return ChatResponse{Reply: fmt.Sprintf("AI service unavailable: %v", err)}
	}
	return ChatResponse{Reply: reply}
}
