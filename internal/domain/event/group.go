package event

import "sort"

// AgeGroup is one accordion section of the timeline view: every event that
// happened at the same age, oldest date first.
type AgeGroup struct {
	Age    int
	Events []Event
}

// GroupByAge buckets events by age and orders the result the way the
// timeline renders it: groups by descending age, events within a group by
// ascending date. The sort is stable so same-day events keep entry order.
func GroupByAge(events []Event) []AgeGroup {
	byAge := make(map[int][]Event)
	for _, e := range events {
		byAge[e.Age] = append(byAge[e.Age], e)
	}

	groups := make([]AgeGroup, 0, len(byAge))
	for age, ageEvents := range byAge {
		sort.SliceStable(ageEvents, func(i, j int) bool {
			return ageEvents[i].ParsedDate().Before(ageEvents[j].ParsedDate())
		})
		groups = append(groups, AgeGroup{Age: age, Events: ageEvents})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Age > groups[j].Age
	})

	return groups
}

// FilterByType returns the events of one category, preserving order. The
// shared view uses it to split the timeline into sections.
func FilterByType(events []Event, t Type) []Event {
	var out []Event
	for _, e := range events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
