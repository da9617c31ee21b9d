package repository

import (
	"sort"
	"time"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/entity"
)

// sortByTime orders items ascending by the time returned from at. Rows come out
// of a table ordered by id, so ties keep insertion order.
func sortByTime[T any](items []T, at func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return at(items[i]).Before(at(items[j]))
	})
}

func sortMoodsNewestFirst(entries []entity.MoodEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}
