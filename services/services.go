// Package services holds the per-resource business rules behind the HTTP
// handlers: validation, defaults, merging and list caching.
package services

import (
	"time"
)

// now is swapped in tests.
var now = func() time.Time { return time.Now().UTC() }

// emptyIfNil keeps JSON arrays from rendering as null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
