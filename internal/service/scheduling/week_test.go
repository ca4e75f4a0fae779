package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		input     time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "wednesday mid week",
			input:     date(2024, time.January, 3),
			wantStart: date(2024, time.January, 1),
			wantEnd:   date(2024, time.January, 7),
		},
		{
			name:      "monday is its own week start",
			input:     date(2024, time.January, 1),
			wantStart: date(2024, time.January, 1),
			wantEnd:   date(2024, time.January, 7),
		},
		{
			name:      "sunday belongs to previous week",
			input:     date(2024, time.January, 7),
			wantStart: date(2024, time.January, 1),
			wantEnd:   date(2024, time.January, 7),
		},
		{
			name:      "saturday",
			input:     date(2024, time.January, 6),
			wantStart: date(2024, time.January, 1),
			wantEnd:   date(2024, time.January, 7),
		},
		{
			name:      "week crossing month boundary",
			input:     date(2024, time.January, 31),
			wantStart: date(2024, time.January, 29),
			wantEnd:   date(2024, time.February, 4),
		},
		{
			name:      "time of day is ignored",
			input:     time.Date(2024, time.January, 3, 23, 45, 12, 0, time.UTC),
			wantStart: date(2024, time.January, 1),
			wantEnd:   date(2024, time.January, 7),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week := WeekBounds(tt.input)
			assert.True(t, week.Start.Equal(tt.wantStart), "start: got %s", week.Start)
			assert.True(t, week.End.Equal(tt.wantEnd), "end: got %s", week.End)
		})
	}
}
