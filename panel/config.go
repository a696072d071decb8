// Package panel holds the client-side interaction state: the contact form,
// playground chat sessions and the tool search box.
package panel

import "time"

// Config holds the playground's connection and execution limits.
type Config struct {
	ConnectionTimeout     time.Duration
	ToolExecutionTimeout  time.Duration
	ListOperationsTimeout time.Duration
	HealthCheckTimeout    time.Duration
	ConnectionRetries     int
	ToolCallRetries       int
	ListOperationRetries  int
}

func DefaultConfig() Config {
	return Config{
		ConnectionTimeout:     5 * time.Second,
		ToolExecutionTimeout:  60 * time.Second,
		ListOperationsTimeout: 10 * time.Second,
		HealthCheckTimeout:    5 * time.Second,
		ConnectionRetries:     3,
		ToolCallRetries:       2,
		ListOperationRetries:  2,
	}
}

// ConfigView is the wire form of Config, with durations in milliseconds.
// Timeouts are capped at one day.
type ConfigView struct {
	ConnectionTimeoutMS     int64 `json:"connection_timeout_ms" validate:"gte=0,lte=86400000"`
	ToolExecutionTimeoutMS  int64 `json:"tool_execution_timeout_ms" validate:"gte=0,lte=86400000"`
	ListOperationsTimeoutMS int64 `json:"list_operations_timeout_ms" validate:"gte=0,lte=86400000"`
	HealthCheckTimeoutMS    int64 `json:"health_check_timeout_ms" validate:"gte=0,lte=86400000"`
	ConnectionRetries       int   `json:"connection_retries" validate:"gte=0,lte=10"`
	ToolCallRetries         int   `json:"tool_call_retries" validate:"gte=0,lte=10"`
	ListOperationRetries    int   `json:"list_operation_retries" validate:"gte=0,lte=10"`
}

func (c Config) View() ConfigView {
	return ConfigView{
		ConnectionTimeoutMS:     c.ConnectionTimeout.Milliseconds(),
		ToolExecutionTimeoutMS:  c.ToolExecutionTimeout.Milliseconds(),
		ListOperationsTimeoutMS: c.ListOperationsTimeout.Milliseconds(),
		HealthCheckTimeoutMS:    c.HealthCheckTimeout.Milliseconds(),
		ConnectionRetries:       c.ConnectionRetries,
		ToolCallRetries:         c.ToolCallRetries,
		ListOperationRetries:    c.ListOperationRetries,
	}
}

func (v ConfigView) Config() Config {
	return Config{
		ConnectionTimeout:     time.Duration(v.ConnectionTimeoutMS) * time.Millisecond,
		ToolExecutionTimeout:  time.Duration(v.ToolExecutionTimeoutMS) * time.Millisecond,
		ListOperationsTimeout: time.Duration(v.ListOperationsTimeoutMS) * time.Millisecond,
		HealthCheckTimeout:    time.Duration(v.HealthCheckTimeoutMS) * time.Millisecond,
		ConnectionRetries:     v.ConnectionRetries,
		ToolCallRetries:       v.ToolCallRetries,
		ListOperationRetries:  v.ListOperationRetries,
	}
}

// StarterPrompt is a suggested first task shown in an empty playground.
type StarterPrompt struct {
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
}

func StarterPrompts() []StarterPrompt {
	return []StarterPrompt{
		{Title: "Get smithery/sdk docs", Prompt: "Connect to @upstash/context7-mcp"},
		{Title: "Research MCP servers", Prompt: "Connect to exa and find recent articles and research"},
		{Title: "Get weather forecast", Prompt: "Connect to @smithery-ai/national-weather-service"},
	}
}
