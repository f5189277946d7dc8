package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayKeyRespectsTimezone(t *testing.T) {
	hcm, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)

	// 18:30 UTC on March 1 is already March 2 in Ho Chi Minh City (UTC+7).
	moment := time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC)

	assert.Equal(t, "2026-03-01", DayKey(moment, time.UTC))
	assert.Equal(t, "2026-03-02", DayKey(moment, hcm))
}

func TestDayKeyNilLocationDefaultsToUTC(t *testing.T) {
	moment := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-01", DayKey(moment, nil))
}

func TestStartOfDay(t *testing.T) {
	hcm, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)

	moment := time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC)
	start := StartOfDay(moment, hcm)

	assert.Equal(t, "2026-03-02T00:00:00", start.Format("2006-01-02T15:04:05"))
	assert.Equal(t, hcm, start.Location())
	assert.True(t, start.Before(moment.In(hcm)))
}
