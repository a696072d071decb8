package query

import (
	"cmp"
	"slices"

	"mcp-playground/models"
)

type ToolQuery struct {
	Term     string
	Category string
	Tags     []string
	Sort     models.ToolSort
	Window   Window
}

// Tools matches the term against name and description. Store order is kept
// unless a rating or downloads sort is requested.
func Tools(tools []models.Tool, q ToolQuery) Result[models.Tool] {
	matched := Filter(tools, func(t models.Tool) bool {
		if q.Term != "" && !ContainsFold(t.Name, q.Term) && !ContainsFold(t.Description, q.Term) {
			return false
		}
		return MatchCategory(t.Category, q.Category) && AnyTagContains(t.Tags, q.Tags)
	})

	switch q.Sort {
	case models.ToolSortRating:
		slices.SortStableFunc(matched, func(a, b models.Tool) int { return cmp.Compare(b.Rating, a.Rating) })
	case models.ToolSortDownloads:
		slices.SortStableFunc(matched, func(a, b models.Tool) int { return cmp.Compare(b.Downloads, a.Downloads) })
	}

	return Paginate(matched, q.Window)
}

type BlogQuery struct {
	PublishedOnly bool
	Tag           string
	Window        Window
}

// BlogPosts returns newest posts first.
func BlogPosts(posts []models.BlogPost, q BlogQuery) Result[models.BlogPost] {
	var tags []string
	if q.Tag != "" {
		tags = []string{q.Tag}
	}
	matched := Filter(posts, func(p models.BlogPost) bool {
		if q.PublishedOnly && !p.Published {
			return false
		}
		return AnyTagContains(p.Tags, tags)
	})
	slices.SortStableFunc(matched, func(a, b models.BlogPost) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return Paginate(matched, q.Window)
}

type ContactQuery struct {
	// Status is ignored unless it is a valid ContactStatus.
	Status models.ContactStatus
	Window Window
}

// ContactMessages returns newest messages first.
func ContactMessages(messages []models.ContactMessage, q ContactQuery) Result[models.ContactMessage] {
	matched := Filter(messages, func(m models.ContactMessage) bool {
		return !q.Status.Valid() || m.Status == q.Status
	})
	slices.SortStableFunc(matched, func(a, b models.ContactMessage) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return Paginate(matched, q.Window)
}

type DocumentationQuery struct {
	Category string
	// Window is nil when the caller wants every matching section.
	Window *Window
}

// Documentation sorts sections by their assigned order.
func Documentation(docs []models.DocumentationSection, q DocumentationQuery) Result[models.DocumentationSection] {
	matched := Filter(docs, func(d models.DocumentationSection) bool {
		return MatchCategory(d.Category, q.Category)
	})
	slices.SortStableFunc(matched, func(a, b models.DocumentationSection) int { return cmp.Compare(a.Order, b.Order) })

	w := Window{Limit: len(matched)}
	if q.Window != nil {
		w = *q.Window
	}
	return Paginate(matched, w)
}

// Categories lists distinct categories in first-seen order.
func Categories(docs []models.DocumentationSection) []string {
	seen := make(map[string]struct{}, len(docs))
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		if _, ok := seen[d.Category]; ok {
			continue
		}
		seen[d.Category] = struct{}{}
		out = append(out, d.Category)
	}
	return out
}
