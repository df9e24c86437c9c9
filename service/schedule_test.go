package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kitchenops/entity"
)

func TestGroupByDate(t *testing.T) {
	items := []entity.OrderItem{
		{ID: 1, RecipeName: "Marinara", OrderDate: "2025-01-10"},
		{ID: 2, RecipeName: "Pesto", OrderDate: "2025-01-12"},
		{ID: 3, RecipeName: "Aioli", OrderDate: "2025-01-10"},
		{ID: 4, RecipeName: "Bechamel", OrderDate: "2025-01-11"},
	}

	keys, groups := GroupByDate(items, func(o entity.OrderItem) string { return o.OrderDate })

	assert.Equal(t, []string{"2025-01-12", "2025-01-11", "2025-01-10"}, keys)

	// Items within a group keep their arrival order.
	got := groups["2025-01-10"]
	assert.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, uint(3), got[1].ID)

	total := 0
	for _, g := range groups {
		total += len(g)
	}
	assert.Equal(t, len(items), total)
}

func TestGroupByDateEmpty(t *testing.T) {
	keys, groups := GroupByDate(nil, func(o entity.OrderItem) string { return o.OrderDate })
	assert.Empty(t, keys)
	assert.Empty(t, groups)
}

func TestSetRangeTo(t *testing.T) {
	tests := []struct {
		name  string
		from  string
		value string
		want  string
	}{
		{"normal edit", "2025-01-10", "2025-01-20", "2025-01-20"},
		{"equal bounds", "2025-01-10", "2025-01-10", "2025-01-10"},
		{"inverted edit snaps up", "2025-01-10", "2025-01-05", "2025-01-10"},
		{"no lower bound", "", "2025-01-05", "2025-01-05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SetRangeTo(tt.from, tt.value))
		})
	}
}

func TestSetRangeFrom(t *testing.T) {
	tests := []struct {
		name  string
		to    string
		value string
		want  string
	}{
		{"normal edit", "2025-01-20", "2025-01-10", "2025-01-10"},
		{"inverted edit snaps down", "2025-01-20", "2025-01-25", "2025-01-20"},
		{"no upper bound", "", "2025-01-25", "2025-01-25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SetRangeFrom(tt.to, tt.value))
		})
	}
}

func TestValidateOrderDates(t *testing.T) {
	tests := []struct {
		name      string
		orderDate string
		prepDate  string
		wantErr   error
	}{
		{"order only", "2025-02-01", "", nil},
		{"order before prep", "2025-02-01", "2025-02-03", nil},
		{"same day", "2025-02-01", "2025-02-01", nil},
		{"order after prep", "2025-02-02", "2025-02-01", ErrOrderAfterPrep},
		{"bad order date", "02/01/2025", "", ErrBadDate},
		{"bad prep date", "2025-02-01", "tomorrow", ErrBadDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOrderDates(tt.orderDate, tt.prepDate)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
