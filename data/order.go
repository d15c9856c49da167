package data

import (
	"slices"
	"strconv"
)

// CategoricalOrder returns the distinct non-missing values in the order
// they appear in values. If all of them are numbers they are sorted
// numerically instead. A non-nil order is returned unchanged.
func CategoricalOrder(values []string, order []string) []string {
	if order != nil {
		return slices.Clone(order)
	}

	seen := make(map[string]bool)
	levels := []string{}
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		levels = append(levels, v)
	}

	nums := make(map[string]float64, len(levels))
	for _, l := range levels {
		x, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return levels
		}
		nums[l] = x
	}
	slices.SortStableFunc(levels, func(a, b string) int {
		switch {
		case nums[a] < nums[b]:
			return -1
		case nums[a] > nums[b]:
			return 1
		}
		return 0
	})
	return levels
}
