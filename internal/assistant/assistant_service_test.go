package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeCompleter struct {
	completeFn func(ctx context.Context, message string) (string, error)
}

func (f *fakeCompleter) Complete(ctx context.Context, message string) (string, error) {
	return f.completeFn(ctx, message)
}

func TestService_Chat(t *testing.T) {
	ctx := context.Background()

	t.Run("relays the completion", func(t *testing.T) {
		completer := &fakeCompleter{
			completeFn: func(ctx context.Context, message string) (string, error) {
				assert.Equal(t, "how do I request leave?", message)
				return "Use the leave form.", nil
			},
		}

		svc := NewService(completer)
		resp := svc.Chat(ctx, "how do I request leave?")
		assert.Equal(t, "Use the leave form.", resp.Reply)
	})

	t.Run("degrades instead of failing", func(t *testing.T) {
		completer := &fakeCompleter{
			completeFn: func(ctx context.Context, message string) (string, error) {
				return "", errors.New("connection refused")
			},
		}

		svc := NewService(completer)
		resp := svc.Chat(ctx, "hello")
		assert.Equal(t, "AI service unavailable: connection refused", resp.Reply)
	})

	t.Run("caps completion time", func(t *testing.T) {
		completer := &fakeCompleter{
			completeFn: func(ctx context.Context, message string) (string, error) {
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				return "ok", nil
			},
		}

		svc := NewService(completer)
		resp := svc.Chat(ctx, "hello")
		assert.Equal(t, "ok", resp.Reply)
	})
}
