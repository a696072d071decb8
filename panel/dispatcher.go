package panel

import (
	"context"
	"fmt"
	"time"
)

// DefaultLatency is how long SimulatedDispatcher takes to answer.
const DefaultLatency = 2 * time.Second

type ToolCall struct {
	Tool     string `json:"tool"`
	Server   string `json:"server"`
	Duration string `json:"duration"`
	Status   string `json:"status"`
}

// Reply is what a dispatcher produced for one user message.
type Reply struct {
	Content   string
	ToolCalls []ToolCall
}

// Dispatcher executes a user's task against the connected servers. Dispatch
// must return promptly once ctx is done.
type Dispatcher interface {
	Dispatch(ctx context.Context, prompt string) (Reply, error)
}

// SimulatedDispatcher answers every prompt with a canned reply after a fixed
// delay. It stands in until real server connections exist.
type SimulatedDispatcher struct {
	Latency time.Duration
}

func (d SimulatedDispatcher) Dispatch(ctx context.Context, prompt string) (Reply, error) {
	timer := time.NewTimer(d.Latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Reply{}, ctx.Err()
	case <-timer.C:
	}

	return Reply{
		Content: fmt.Sprintf("I've processed your request: \"%s\". Here are the results from the connected MCP servers.", prompt),
		ToolCalls: []ToolCall{
			{Tool: "search", Server: "exa", Duration: "1.2s", Status: "success"},
			{Tool: "fetch_docs", Server: "docs", Duration: "0.8s", Status: "success"},
		},
	}, nil
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(ctx context.Context, prompt string) (Reply, error)

func (f DispatcherFunc) Dispatch(ctx context.Context, prompt string) (Reply, error) {
	return f(ctx, prompt)
}
