package services

import (
	"context"
	"errors"

	"mcp-playground/models"
	"mcp-playground/panel"
	"mcp-playground/validation"
)

type PlaygroundService interface {
	CreateSession(ctx context.Context) (panel.SessionView, error)
	GetSession(ctx context.Context, id string) (panel.SessionView, error)
	SendMessage(ctx context.Context, id string, req models.SendPlaygroundMessageRequest) (panel.Task, error)
	GetTask(ctx context.Context, sessionID, taskID string) (panel.Task, error)
	UpdateConfig(ctx context.Context, id string, view panel.ConfigView) (panel.SessionView, error)
}

type playgroundService struct {
	sessions *panel.SessionStore
}

func NewPlaygroundService(sessions *panel.SessionStore) PlaygroundService {
	return &playgroundService{sessions: sessions}
}

func (s *playgroundService) CreateSession(_ context.Context) (panel.SessionView, error) {
	return s.sessions.Create().Snapshot(), nil
}

func (s *playgroundService) GetSession(_ context.Context, id string) (panel.SessionView, error) {
	session, err := s.session(id)
	if err != nil {
		return panel.SessionView{}, err
	}
	return session.Snapshot(), nil
}

// SendMessage queues the message; the reply arrives asynchronously and is
// tracked by the returned task.
func (s *playgroundService) SendMessage(_ context.Context, id string, req models.SendPlaygroundMessageRequest) (panel.Task, error) {
	if err := validation.Validate(req); err != nil {
		return panel.Task{}, err
	}

	session, err := s.session(id)
	if err != nil {
		return panel.Task{}, err
	}

	task, err := session.Send(req.Content)
	switch {
	case errors.Is(err, panel.ErrBusy):
		return panel.Task{}, models.ErrorConflict{Message: "A message is already being processed"}
	case errors.Is(err, panel.ErrEmptyMessage):
		return panel.Task{}, models.ErrorValidation{Message: "Missing required fields: content", Field: "content", Rule: "required"}
	case errors.Is(err, panel.ErrSessionClosed):
		return panel.Task{}, models.ErrorNotFound{Resource: "Playground session"}
	}
	return task, err
}

func (s *playgroundService) GetTask(_ context.Context, sessionID, taskID string) (panel.Task, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return panel.Task{}, err
	}
	task, err := session.Task(taskID)
	if errors.Is(err, panel.ErrTaskNotFound) {
		return panel.Task{}, models.ErrorNotFound{Resource: "Task"}
	}
	return task, err
}

func (s *playgroundService) UpdateConfig(_ context.Context, id string, view panel.ConfigView) (panel.SessionView, error) {
	if err := validation.Validate(view); err != nil {
		return panel.SessionView{}, err
	}

	session, err := s.session(id)
	if err != nil {
		return panel.SessionView{}, err
	}
	session.SetConfig(view.Config())
	return session.Snapshot(), nil
}

func (s *playgroundService) session(id string) (*panel.Session, error) {
	session, err := s.sessions.Get(id)
	if errors.Is(err, panel.ErrSessionNotFound) {
		return nil, models.ErrorNotFound{Resource: "Playground session"}
	}
	return session, err
}
