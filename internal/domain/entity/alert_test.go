package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeadlineKindFor(t *testing.T) {
	tests := []struct {
		name     string
		daysLeft int
		want     AlertKind
	}{
		{name: "closes today", daysLeft: 0, want: AlertKindDeadlineD1},
		{name: "closes tomorrow", daysLeft: 1, want: AlertKindDeadlineD1},
		{name: "two days left", daysLeft: 2, want: AlertKindDeadlineD3},
		{name: "three days left", daysLeft: 3, want: AlertKindDeadlineD3},
		{name: "four days left", daysLeft: 4, want: AlertKindDeadlineD7},
		{name: "a week left", daysLeft: 7, want: AlertKindDeadlineD7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeadlineKindFor(tt.daysLeft))
		})
	}
}

func TestFormatMatchCount(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{count: 0, want: "0"},
		{count: 1, want: "1"},
		{count: 7, want: "7"},
		{count: 9, want: "9"},
		{count: 10, want: "+10"},
		{count: 42, want: "+10"},
		{count: 99, want: "+10"},
		{count: 100, want: "+100"},
		{count: 137, want: "+100"},
		{count: 1000, want: "+1000"},
		{count: 12345, want: "+10000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMatchCount(tt.count))
		})
	}
}
