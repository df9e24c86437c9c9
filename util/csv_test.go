package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarshalCSV(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want string
	}{
		{
			"empty",
			nil,
			"",
		},
		{
			"single row",
			[][]string{{"a", "b", "c"}},
			`"a","b","c"`,
		},
		{
			"header plus data",
			[][]string{
				{"Date", "Ingredient"},
				{"2025-01-10", "Basil"},
			},
			"\"Date\",\"Ingredient\"\n\"2025-01-10\",\"Basil\"",
		},
		{
			"inner quotes doubled",
			[][]string{{`He said "hi"`}},
			`"He said ""hi"""`,
		},
		{
			"comma stays inside quotes",
			[][]string{{"a,b", "c"}},
			`"a,b","c"`,
		},
		{
			"empty field still quoted",
			[][]string{{"", "x"}},
			`"","x"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MarshalCSV(tt.rows))
		})
	}
}
