package panel

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const welcomeMessage = "MCP Playground initialized. Connected to 3 servers. Try the starter prompts below or give the agent a task."

var (
	ErrBusy          = errors.New("a message is already being processed")
	ErrEmptyMessage  = errors.New("message must not be empty")
	ErrSessionClosed = errors.New("session closed")
	ErrTaskNotFound  = errors.New("task not found")
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

type Message struct {
	ID        string     `json:"id"`
	Role      Role       `json:"role"`
	Content   string     `json:"content"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskSucceeded TaskStatus = "succeeded"
	TaskFailed    TaskStatus = "failed"
)

// Task tracks the dispatch of one user message.
type Task struct {
	ID          string     `json:"id"`
	MessageID   string     `json:"message_id"`
	Status      TaskStatus `json:"status"`
	Attempts    int        `json:"attempts"`
	ReplyID     string     `json:"reply_id,omitempty"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type taskState struct {
	task Task
	done chan struct{}
}

// SessionView is a point-in-time copy of a session.
type SessionView struct {
	ID         string     `json:"id"`
	Messages   []Message  `json:"messages"`
	Processing bool       `json:"processing"`
	Config     ConfigView `json:"config"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Session is one playground chat. Messages are append-only and at most one
// task runs at a time.
type Session struct {
	id         string
	createdAt  time.Time
	dispatcher Dispatcher
	logger     *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	cfg        Config
	messages   []Message
	processing bool
	tasks      map[string]*taskState
	closed     bool
}

func NewSession(cfg Config, dispatcher Dispatcher, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		id:         uuid.NewString(),
		createdAt:  time.Now().UTC(),
		dispatcher: dispatcher,
		ctx:        ctx,
		cancel:     cancel,
		cfg:        cfg,
		tasks:      make(map[string]*taskState),
	}
	s.logger = logger.With("session_id", s.id)
	s.messages = append(s.messages, newMessage(RoleSystem, welcomeMessage, nil))
	return s
}

func (s *Session) ID() string { return s.id }

func newMessage(role Role, content string, calls []ToolCall) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		ToolCalls: calls,
		Timestamp: time.Now().UTC(),
	}
}

// Send appends the user message and starts dispatching it in the
// background. It fails with ErrBusy while an earlier task is pending.
func (s *Session) Send(content string) (Task, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Task{}, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Task{}, ErrSessionClosed
	}
	if s.processing {
		return Task{}, ErrBusy
	}

	msg := newMessage(RoleUser, content, nil)
	s.messages = append(s.messages, msg)
	s.processing = true

	ts := &taskState{
		task: Task{
			ID:        uuid.NewString(),
			MessageID: msg.ID,
			Status:    TaskPending,
			CreatedAt: msg.Timestamp,
		},
		done: make(chan struct{}),
	}
	s.tasks[ts.task.ID] = ts

	go s.run(ts, content, s.cfg)

	return ts.task, nil
}

// run dispatches with a per-attempt timeout and retries failed attempts up to
// ToolCallRetries times.
func (s *Session) run(ts *taskState, prompt string, cfg Config) {
	attempts := max(cfg.ToolCallRetries, 0) + 1

	var (
		reply Reply
		err   error
		n     int
	)
	for n = 1; n <= attempts; n++ {
		reply, err = s.attempt(prompt, cfg.ToolExecutionTimeout)
		if err == nil || s.ctx.Err() != nil {
			break
		}
		s.logger.Warn("dispatch attempt failed", "task_id", ts.task.ID, "attempt", n, "error", err)
	}
	n = min(n, attempts)

	s.mu.Lock()
	defer s.mu.Unlock()

	completed := time.Now().UTC()
	ts.task.Attempts = n
	ts.task.CompletedAt = &completed

	if err != nil {
		ts.task.Status = TaskFailed
		ts.task.Error = err.Error()
		s.messages = append(s.messages, newMessage(RoleSystem, "Task failed: "+err.Error(), nil))
	} else {
		msg := newMessage(RoleAssistant, reply.Content, reply.ToolCalls)
		s.messages = append(s.messages, msg)
		ts.task.Status = TaskSucceeded
		ts.task.ReplyID = msg.ID
	}

	s.processing = false
	close(ts.done)
}

func (s *Session) attempt(prompt string, timeout time.Duration) (Reply, error) {
	ctx := s.ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return s.dispatcher.Dispatch(ctx, prompt)
}

func (s *Session) Snapshot() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := make([]Message, len(s.messages))
	copy(msgs, s.messages)
	return SessionView{
		ID:         s.id,
		Messages:   msgs,
		Processing: s.processing,
		Config:     s.cfg.View(),
		CreatedAt:  s.createdAt,
	}
}

func (s *Session) Task(id string) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts, ok := s.tasks[id]
	if !ok {
		return Task{}, ErrTaskNotFound
	}
	return ts.task, nil
}

// Wait blocks until the task completes or ctx is done.
func (s *Session) Wait(ctx context.Context, id string) (Task, error) {
	s.mu.Lock()
	ts, ok := s.tasks[id]
	s.mu.Unlock()
	if !ok {
		return Task{}, ErrTaskNotFound
	}

	select {
	case <-ts.done:
		return s.Task(id)
	case <-ctx.Done():
		return Task{}, ctx.Err()
	}
}

// SetConfig replaces the limits used by subsequent sends.
func (s *Session) SetConfig(cfg Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
}

// Close cancels any running task and rejects further sends.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cancel()
}

func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
