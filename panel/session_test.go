package panel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-playground/logger"
)

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestSessionSendSimulatedReply(t *testing.T) {
	s := NewSession(DefaultConfig(), SimulatedDispatcher{Latency: 10 * time.Millisecond}, logger.Nop())
	defer s.Close()

	view := s.Snapshot()
	require.Len(t, view.Messages, 1)
	assert.Equal(t, RoleSystem, view.Messages[0].Role)
	assert.Equal(t, welcomeMessage, view.Messages[0].Content)

	task, err := s.Send("  find weather tools ")
	require.NoError(t, err)
	assert.Equal(t, TaskPending, task.Status)

	view = s.Snapshot()
	assert.True(t, view.Processing)
	require.Len(t, view.Messages, 2)
	assert.Equal(t, RoleUser, view.Messages[1].Role)
	assert.Equal(t, "find weather tools", view.Messages[1].Content)

	_, err = s.Send("another")
	assert.ErrorIs(t, err, ErrBusy)

	done, err := s.Wait(waitCtx(t), task.ID)
	require.NoError(t, err)
	assert.Equal(t, TaskSucceeded, done.Status)
	assert.Equal(t, 1, done.Attempts)
	assert.NotNil(t, done.CompletedAt)

	view = s.Snapshot()
	assert.False(t, view.Processing)
	require.Len(t, view.Messages, 3)
	reply := view.Messages[2]
	assert.Equal(t, RoleAssistant, reply.Role)
	assert.Equal(t, done.ReplyID, reply.ID)
	assert.Equal(t, `I've processed your request: "find weather tools". Here are the results from the connected MCP servers.`, reply.Content)
	require.Len(t, reply.ToolCalls, 2)
	assert.Equal(t, ToolCall{Tool: "search", Server: "exa", Duration: "1.2s", Status: "success"}, reply.ToolCalls[0])
	assert.Equal(t, "fetch_docs", reply.ToolCalls[1].Tool)
}

func TestSessionRejectsEmptyMessage(t *testing.T) {
	s := NewSession(DefaultConfig(), SimulatedDispatcher{}, logger.Nop())
	defer s.Close()

	_, err := s.Send("   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Len(t, s.Snapshot().Messages, 1)
}

func TestSessionRetriesFailedAttempts(t *testing.T) {
	var calls atomic.Int32
	d := DispatcherFunc(func(ctx context.Context, prompt string) (Reply, error) {
		if calls.Add(1) < 3 {
			return Reply{}, errors.New("server unavailable")
		}
		return Reply{Content: "ok"}, nil
	})

	cfg := DefaultConfig()
	cfg.ToolCallRetries = 2
	s := NewSession(cfg, d, logger.Nop())
	defer s.Close()

	task, err := s.Send("hello")
	require.NoError(t, err)

	done, err := s.Wait(waitCtx(t), task.ID)
	require.NoError(t, err)
	assert.Equal(t, TaskSucceeded, done.Status)
	assert.Equal(t, 3, done.Attempts)
	assert.Equal(t, int32(3), calls.Load())
}

func TestSessionFailsAfterRetriesExhausted(t *testing.T) {
	var calls atomic.Int32
	d := DispatcherFunc(func(ctx context.Context, prompt string) (Reply, error) {
		calls.Add(1)
		return Reply{}, errors.New("boom")
	})

	cfg := DefaultConfig()
	cfg.ToolCallRetries = 1
	s := NewSession(cfg, d, logger.Nop())
	defer s.Close()

	task, err := s.Send("hello")
	require.NoError(t, err)

	done, err := s.Wait(waitCtx(t), task.ID)
	require.NoError(t, err)
	assert.Equal(t, TaskFailed, done.Status)
	assert.Equal(t, 2, done.Attempts)
	assert.Equal(t, "boom", done.Error)
	assert.Equal(t, int32(2), calls.Load())

	view := s.Snapshot()
	last := view.Messages[len(view.Messages)-1]
	assert.Equal(t, RoleSystem, last.Role)
	assert.Equal(t, "Task failed: boom", last.Content)
	assert.False(t, view.Processing)
}

func TestSessionToolExecutionTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ToolExecutionTimeout = 10 * time.Millisecond
	cfg.ToolCallRetries = 0
	s := NewSession(cfg, SimulatedDispatcher{Latency: time.Minute}, logger.Nop())
	defer s.Close()

	task, err := s.Send("slow")
	require.NoError(t, err)

	done, err := s.Wait(waitCtx(t), task.ID)
	require.NoError(t, err)
	assert.Equal(t, TaskFailed, done.Status)
	assert.Equal(t, context.DeadlineExceeded.Error(), done.Error)
}

func TestSessionCloseCancelsTask(t *testing.T) {
	s := NewSession(DefaultConfig(), SimulatedDispatcher{Latency: time.Hour}, logger.Nop())

	task, err := s.Send("never finishes")
	require.NoError(t, err)
	s.Close()

	done, err := s.Wait(waitCtx(t), task.ID)
	require.NoError(t, err)
	assert.Equal(t, TaskFailed, done.Status)
	assert.Equal(t, 1, done.Attempts)

	_, err = s.Send("again")
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestSessionUnknownTask(t *testing.T) {
	s := NewSession(DefaultConfig(), SimulatedDispatcher{}, logger.Nop())
	defer s.Close()

	_, err := s.Task("nope")
	assert.ErrorIs(t, err, ErrTaskNotFound)
	_, err = s.Wait(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestSessionStore(t *testing.T) {
	store := NewSessionStore(time.Hour, DefaultConfig(), SimulatedDispatcher{Latency: time.Hour}, logger.Nop())

	s := store.Create()
	assert.Equal(t, 1, store.Len())

	got, err := store.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = store.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	store.Delete(s.ID())
	assert.Equal(t, 0, store.Len())
	_, err = s.Send("hi")
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestSessionStoreDropsClosedSession(t *testing.T) {
	store := NewSessionStore(time.Hour, DefaultConfig(), SimulatedDispatcher{Latency: time.Hour}, logger.Nop())

	s := store.Create()
	s.Close()

	_, err := store.Get(s.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestSessionStoreExpiryClosesSession(t *testing.T) {
	store := NewSessionStore(50*time.Millisecond, DefaultConfig(), SimulatedDispatcher{Latency: time.Hour}, logger.Nop())

	s := store.Create()
	assert.Eventually(t, s.Closed, 2*time.Second, 10*time.Millisecond)

	_, err := store.Get(s.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestConfigView(t *testing.T) {
	view := DefaultConfig().View()
	assert.Equal(t, ConfigView{
		ConnectionTimeoutMS:     5000,
		ToolExecutionTimeoutMS:  60000,
		ListOperationsTimeoutMS: 10000,
		HealthCheckTimeoutMS:    5000,
		ConnectionRetries:       3,
		ToolCallRetries:         2,
		ListOperationRetries:    2,
	}, view)
	assert.Equal(t, DefaultConfig(), view.Config())
}

func TestStarterPrompts(t *testing.T) {
	prompts := StarterPrompts()
	require.Len(t, prompts, 3)
	assert.Equal(t, "Get smithery/sdk docs", prompts[0].Title)
	assert.Equal(t, "Connect to @upstash/context7-mcp", prompts[0].Prompt)
}
