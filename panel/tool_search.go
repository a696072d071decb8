package panel

import (
	"context"
	"sync"

	"mcp-playground/client"
	"mcp-playground/models"
)

type ToolLister interface {
	List(ctx context.Context, f client.ToolFilter) (*client.Envelope[[]models.Tool], error)
}

// SearchResults is what the tool browser renders.
type SearchResults struct {
	Filter  client.ToolFilter
	Tools   []models.Tool
	Total   int
	Error   string
	Loading bool
}

// ToolSearch runs tool searches where only the newest one may update the
// results. Starting a search cancels the one in flight.
type ToolSearch struct {
	api ToolLister
	seq client.Sequencer

	mu      sync.Mutex
	results SearchResults
}

func NewToolSearch(api ToolLister) *ToolSearch {
	return &ToolSearch{api: api}
}

// Search runs f and reports whether its response was applied. A response that
// arrives after a newer search began is discarded.
func (s *ToolSearch) Search(ctx context.Context, f client.ToolFilter) bool {
	ctx, ticket := s.seq.Begin(ctx)
	defer ticket.Done()

	s.mu.Lock()
	if !ticket.Current() {
		s.mu.Unlock()
		return false
	}
	s.results.Filter = f
	s.results.Loading = true
	s.mu.Unlock()

	env, err := s.api.List(ctx, f)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !ticket.Current() {
		return false
	}

	s.results.Loading = false
	switch {
	case err != nil:
		s.results.Error = "Unable to load tools. Please try again."
	case !env.Success:
		s.results.Error = env.Error
	default:
		s.results.Error = ""
		s.results.Tools = env.Data
		s.results.Total = len(env.Data)
		if env.Meta != nil {
			s.results.Total = env.Meta.Total
		}
	}
	return true
}

func (s *ToolSearch) Results() SearchResults {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}
