package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tooff-app/tooff-backend/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestInclusiveDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "single day",
			start: date(2025, time.July, 1),
			end:   date(2025, time.July, 1),
			want:  1,
		},
		{
			name:  "first half of july",
			start: date(2025, time.July, 1),
			end:   date(2025, time.July, 15),
			want:  15,
		},
		{
			name:  "spans month boundary",
			start: date(2025, time.January, 30),
			end:   date(2025, time.February, 2),
			want:  4,
		},
		{
			name:  "spans leap day",
			start: date(2024, time.February, 28),
			end:   date(2024, time.March, 1),
			want:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.InclusiveDays(tt.start, tt.end))
		})
	}
}

func TestEvent_RecomputeTotalDays(t *testing.T) {
	e := domain.Event{
		StartDate: date(2025, time.July, 1),
		EndDate:   date(2025, time.July, 15),
	}
	e.RecomputeTotalDays()
	assert.Equal(t, 15, e.TotalDays)

	e.EndDate = date(2025, time.July, 20)
	e.RecomputeTotalDays()
	assert.Equal(t, 20, e.TotalDays)
}

func TestEventStatus_IsTerminal(t *testing.T) {
	assert.False(t, domain.StatusPending.IsTerminal())
	assert.True(t, domain.StatusApproved.IsTerminal())
	assert.True(t, domain.StatusRejected.IsTerminal())
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, domain.IsWeekend(date(2025, time.July, 5)))  // Saturday
	assert.True(t, domain.IsWeekend(date(2025, time.July, 6)))  // Sunday
	assert.False(t, domain.IsWeekend(date(2025, time.July, 7))) // Monday
}
