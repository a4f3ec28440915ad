package availability

import "sort"

// MergeSlots collapses overlapping or touching time ranges into the
// minimal covering set, sorted by start time. The input is not modified.
// Slots that fail to parse are dropped; validated data never contains any,
// but persisted documents are not trusted.
//
// MergeSlots is idempotent and order-independent, never increases the
// range count, and never changes the total covered duration.
func MergeSlots(slots []string) []string {
	if len(slots) == 0 {
		return []string{}
	}
	if len(slots) == 1 {
		return append([]string{}, slots...)
	}

	intervals := make([]TimeRange, 0, len(slots))
	for _, slot := range slots {
		r, err := ParseRange(slot)
		if err != nil {
			continue
		}
		intervals = append(intervals, r)
	}
	if len(intervals) == 0 {
		return []string{}
	}

	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].Start < intervals[j].Start
	})

	merged := make([]TimeRange, 0, len(intervals))
	current := intervals[0]
	for _, next := range intervals[1:] {
		// Touching ranges (e.g. 09:00-10:00 and 10:00-11:00) merge too.
		if next.Start <= current.End {
			if next.End > current.End {
				current.End = next.End
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	merged = append(merged, current)

	out := make([]string, len(merged))
	for i, r := range merged {
		out[i] = r.String()
	}
	return out
}
