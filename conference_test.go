package cfptime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConference_Location(t *testing.T) {
	tests := []struct {
		name string
		conf Conference
		want string
	}{
		{
			"all parts",
			Conference{City: "San Diego", Province: "CA", Country: "USA"},
			"San Diego, CA, USA",
		},
		{
			"no province",
			Conference{City: "Brussels", Country: "Belgium"},
			"Brussels, Belgium",
		},
		{
			"country only",
			Conference{Country: "Iceland"},
			"Iceland",
		},
		{
			"empty",
			Conference{},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.conf.Location())
		})
	}
}

func TestConference_DeadlineTime(t *testing.T) {
	tests := []struct {
		name     string
		deadline string
		want     time.Time
	}{
		{"rfc3339", "2026-01-31T23:59:59Z", time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)},
		{"naive datetime", "2026-01-31T23:59:59", time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)},
		{"bare date", "2026-01-31", time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := Conference{CFPDeadline: tt.deadline}
			got, err := conf.DeadlineTime()
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestConference_DeadlineTime_Unparseable(t *testing.T) {
	conf := Conference{CFPDeadline: "someday"}
	_, err := conf.DeadlineTime()
	assert.Error(t, err)
}

func TestConference_EndTime(t *testing.T) {
	conf := Conference{ConfStartDate: "2026-06-10", NumberOfDays: 3}

	end, err := conf.EndTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC), end)
}

func TestConference_EndTime_SingleDay(t *testing.T) {
	// Zero days is treated as a one-day conference.
	conf := Conference{ConfStartDate: "2026-06-10", NumberOfDays: 0}

	end, err := conf.EndTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC), end)
}

func TestConference_CFPOpenAt(t *testing.T) {
	conf := Conference{CFPDeadline: "2026-01-31T23:59:59Z"}

	assert.True(t, conf.CFPOpenAt(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, conf.CFPOpenAt(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)))

	broken := Conference{CFPDeadline: "someday"}
	assert.False(t, broken.CFPOpenAt(time.Now()))
}
