package frequency

import "sort"

// Entry value with the amount of times it was counted
type Entry[K comparable] struct {
	Value K   `json:"value"`
	Count int `json:"count"`
}

// Counter counts how many times each value appears. The order in which values are seen for
// the first time is kept, so ties are always resolved in favour of the first value counted.
type Counter[K comparable] struct {
	counts map[K]int
	order  []K
}

func NewCounter[K comparable]() *Counter[K] {
	return &Counter[K]{
		counts: make(map[K]int),
	}
}

// Add counts one more appearance of value
func (c *Counter[K]) Add(value K) {
	if _, ok := c.counts[value]; !ok {
		c.order = append(c.order, value)
	}
	c.counts[value] += 1
}

// Mode returns the most frequent value. Among ties, the first one counted wins.
// The boolean is false if nothing was counted.
func (c *Counter[K]) Mode() (K, int, bool) {
	var mode K
	maxCount := 0
	for _, value := range c.order {
		if c.counts[value] > maxCount {
			mode = value
			maxCount = c.counts[value]
		}
	}
	return mode, maxCount, maxCount > 0
}

// ValueCounts returns each distinct value with its count, most frequent first.
// Values with the same count keep the order in which they were first counted.
func (c *Counter[K]) ValueCounts() []Entry[K] {
	entries := make([]Entry[K], 0, len(c.order))
	for _, value := range c.order {
		entries = append(entries, Entry[K]{Value: value, Count: c.counts[value]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}
