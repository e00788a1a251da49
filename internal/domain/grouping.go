package domain

import (
	"sort"
	"time"

	"github.com/daonlab/crm-calendar-backend/internal/calendar"
)

// GroupByDay buckets campaigns by calendar-day key for the given grid days.
// Each bucket is sorted ascending by send time; campaigns with equal send
// times keep their input order. Days without campaigns are absent from the
// map — callers default to an empty bucket on lookup.
//
// Pure function of its two inputs, safe to recompute on every change and to
// memoize keyed on the grid's year/month.
func GroupByDay(campaigns []Campaign, days []time.Time) map[string][]Campaign {
	inGrid := make(map[string]struct{}, len(days))
	for _, d := range days {
		inGrid[calendar.FormatDateKey(d)] = struct{}{}
	}

	buckets := make(map[string][]Campaign)
	for i := range campaigns {
		key := calendar.ExtractDatePart(campaigns[i].SendAt)
		if _, ok := inGrid[key]; ok {
			buckets[key] = append(buckets[key], campaigns[i])
		}
	}

	for key := range buckets {
		bucket := buckets[key]
		sort.SliceStable(bucket, func(i, j int) bool {
			return calendar.AsLocalMoment(bucket[i].SendAt).Before(calendar.AsLocalMoment(bucket[j].SendAt))
		})
	}

	return buckets
}
