package panel

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-playground/client"
	"mcp-playground/models"
)

// slowFirstLister blocks the "slow" query until its context is cancelled and
// answers everything else immediately.
type slowFirstLister struct {
	slowStarted chan struct{}
}

func (l *slowFirstLister) List(ctx context.Context, f client.ToolFilter) (*client.Envelope[[]models.Tool], error) {
	if f.Q == "slow" {
		close(l.slowStarted)
		<-ctx.Done()
		return &client.Envelope[[]models.Tool]{
			Success: true,
			Data:    []models.Tool{{ID: "stale"}},
		}, nil
	}
	return &client.Envelope[[]models.Tool]{
		Success: true,
		Data:    []models.Tool{{ID: "fresh"}},
		Meta:    &client.Meta{Total: 7, Page: 1, Limit: 10},
	}, nil
}

func TestToolSearchLatestRequestWins(t *testing.T) {
	lister := &slowFirstLister{slowStarted: make(chan struct{})}
	search := NewToolSearch(lister)

	applied := make(chan bool, 1)
	go func() { applied <- search.Search(context.Background(), client.ToolFilter{Q: "slow"}) }()
	<-lister.slowStarted

	assert.True(t, search.Search(context.Background(), client.ToolFilter{Q: "fast"}))
	assert.False(t, <-applied)

	res := search.Results()
	assert.False(t, res.Loading)
	assert.Equal(t, "fast", res.Filter.Q)
	require.Len(t, res.Tools, 1)
	assert.Equal(t, "fresh", res.Tools[0].ID)
	assert.Equal(t, 7, res.Total)
}

type failingLister struct{ env *client.Envelope[[]models.Tool] }

func (l failingLister) List(context.Context, client.ToolFilter) (*client.Envelope[[]models.Tool], error) {
	return l.env, nil
}

func TestToolSearchFailureEnvelope(t *testing.T) {
	search := NewToolSearch(failingLister{env: &client.Envelope[[]models.Tool]{Error: "Failed to fetch tools"}})
	assert.True(t, search.Search(context.Background(), client.ToolFilter{}))
	assert.Equal(t, "Failed to fetch tools", search.Results().Error)
}

type countingLister struct{ calls atomic.Int32 }

func (l *countingLister) List(context.Context, client.ToolFilter) (*client.Envelope[[]models.Tool], error) {
	l.calls.Add(1)
	return &client.Envelope[[]models.Tool]{Success: true}, nil
}

func TestToolSearchSupersededBeforeStartLeavesResults(t *testing.T) {
	lister := &countingLister{}
	search := NewToolSearch(lister)

	earlier, _ := search.seq.Begin(context.Background())

	search.mu.Lock()
	applied := make(chan bool, 1)
	go func() { applied <- search.Search(context.Background(), client.ToolFilter{Q: "old"}) }()

	// the search has taken its ticket once the earlier request is cancelled
	<-earlier.Done()
	_, newer := search.seq.Begin(context.Background())
	search.results.Filter = client.ToolFilter{Q: "new"}
	search.mu.Unlock()

	assert.False(t, <-applied)
	assert.Equal(t, "new", search.Results().Filter.Q)
	assert.False(t, search.Results().Loading)
	assert.Equal(t, int32(0), lister.calls.Load())
	newer.Done()
}
