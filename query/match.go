package query

import "strings"

// Filter keeps the items for which keep returns true, preserving order.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// MatchCategory is a case-insensitive equality check. An empty category
// matches everything.
func MatchCategory(category, want string) bool {
	if want == "" {
		return true
	}
	return strings.EqualFold(category, want)
}

// AnyTagContains reports whether any of tags contains any of want as a
// case-insensitive substring. An empty want matches everything.
func AnyTagContains(tags, want []string) bool {
	if len(want) == 0 {
		return true
	}
	for _, w := range want {
		for _, tag := range tags {
			if ContainsFold(tag, w) {
				return true
			}
		}
	}
	return false
}

// SplitList flattens one-or-many query values. Repeated parameters and comma
// separated values are both accepted; blanks are dropped.
func SplitList(values ...string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
