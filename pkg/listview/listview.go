// Package listview provides the in-memory sorting and pagination used by the
// admin list endpoints. Lists are materialized in full and sorted/paged in
// memory; volumes are modest enough that server-side pagination is not needed.
package listview

import (
	"sort"
	"strings"
	"time"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortKey extracts the comparable cell for a row. Exactly one of the fields
// should be set; the first non-zero one wins, in the order Str, Num, Time.
type SortKey struct {
	Str  *string
	Num  *float64
	Time *time.Time
}

func StringKey(s string) SortKey  { return SortKey{Str: &s} }
func NumberKey(f float64) SortKey { return SortKey{Num: &f} }
func TimeKey(t time.Time) SortKey { return SortKey{Time: &t} }

// less compares two keys of the same kind. Mixed kinds compare equal, which
// keeps the sort stable instead of guessing an ordering.
func (a SortKey) less(b SortKey) bool {
	switch {
	case a.Str != nil && b.Str != nil:
		return strings.Compare(strings.ToLower(*a.Str), strings.ToLower(*b.Str)) < 0
	case a.Num != nil && b.Num != nil:
		return *a.Num < *b.Num
	case a.Time != nil && b.Time != nil:
		return a.Time.Before(*b.Time)
	}
	return false
}

// Sort orders rows in place by the key extracted from each row. Equal keys
// keep their original relative order.
func Sort[T any](rows []T, dir Direction, key func(T) SortKey) {
	sort.SliceStable(rows, func(i, j int) bool {
		if dir == Desc {
			return key(rows[j]).less(key(rows[i]))
		}
		return key(rows[i]).less(key(rows[j]))
	})
}

// Page returns the slice for a zero-based page index and page size. Out of
// range pages yield an empty (non-nil) slice.
func Page[T any](rows []T, page, size int) []T {
	if size <= 0 || page < 0 {
		return []T{}
	}
	start := page * size
	if start >= len(rows) {
		return []T{}
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// TotalPages reports how many pages of the given size cover n rows.
func TotalPages(n, size int) int {
	if size <= 0 || n <= 0 {
		return 0
	}
	return (n + size - 1) / size
}
