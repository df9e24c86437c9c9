package service

import (
	"errors"
	"fmt"
	"sort"

	"kitchenops/dateutil"
)

// ErrOrderAfterPrep rejects orders scheduled for preparation before they
// were ordered.
var ErrOrderAfterPrep = errors.New("order date must be on or before preparation date")

// ErrBadDate marks a date string that is not valid YYYY-MM-DD.
var ErrBadDate = errors.New("invalid date")

// GroupByDate groups records by their date key into date -> records,
// preserving per-group insertion order, and returns the group keys sorted
// descending. Lexicographic sort on YYYY-MM-DD strings is date-descending.
func GroupByDate[T any](items []T, key func(T) string) ([]string, map[string][]T) {
	groups := make(map[string][]T)
	var keys []string
	for _, item := range items {
		k := key(item)
		if _, seen := groups[k]; !seen {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], item)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys, groups
}

// SetRangeFrom applies an edit to the lower bound of a date range. Raising
// it above the upper bound snaps the edit down to that bound, so from <= to
// holds after any single edit.
func SetRangeFrom(to, value string) string {
	if to != "" && value > to {
		return to
	}
	return value
}

// SetRangeTo applies an edit to the upper bound of a date range. Lowering
// it below the lower bound snaps the edit up to that bound.
func SetRangeTo(from, value string) string {
	if from != "" && value < from {
		return from
	}
	return value
}

// ValidateOrderDates checks an order submission before any store call: both
// dates must be valid YYYY-MM-DD and the order date may not fall after the
// preparation date.
func ValidateOrderDates(orderDate, prepDate string) error {
	if !dateutil.Valid(orderDate) {
		return fmt.Errorf("%w: order date %q, want YYYY-MM-DD", ErrBadDate, orderDate)
	}
	if prepDate != "" && !dateutil.Valid(prepDate) {
		return fmt.Errorf("%w: preparation date %q, want YYYY-MM-DD", ErrBadDate, prepDate)
	}
	if prepDate != "" && orderDate > prepDate {
		return ErrOrderAfterPrep
	}
	return nil
}
