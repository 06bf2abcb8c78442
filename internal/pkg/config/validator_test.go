package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateCronSchedule(t *testing.T) {
	valid := []struct {
		name     string
		schedule string
	}{
		{"hourly sweep default", "0 * * * *"},
		{"daily at 3:30", "30 3 * * *"},
		{"every 6 hours", "0 */6 * * *"},
		{"weekdays at 9:30", "30 9 * * 1-5"},
		{"first of month", "0 0 1 * *"},
		{"every minute", "* * * * *"},
		{"every 5 minutes", "*/5 * * * *"},
		{"stepped with lists", "15,45 */2 * * 1,3,5"},
	}
	for _, tt := range valid {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, ValidateCronSchedule(tt.schedule))
		})
	}

	invalid := []struct {
		name     string
		schedule string
	}{
		{"empty string", ""},
		{"too few fields", "0 0"},
		{"too many fields", "0 0 * * * * *"},
		{"minute out of range", "60 0 * * *"},
		{"hour out of range", "0 24 * * *"},
		{"day out of range", "0 0 32 * *"},
		{"month out of range", "0 0 * 13 *"},
		{"weekday out of range", "0 0 * * 8"},
		{"random text", "invalid format"},
		{"negative field", "-1 0 * * *"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCronSchedule(tt.schedule)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "invalid cron schedule")
		})
	}
}

func TestValidateTimezone(t *testing.T) {
	valid := []string{
		"UTC",
		"Europe/Moscow",
		"Europe/London",
		"America/New_York",
		"Asia/Tokyo",
		"Local",
	}
	for _, tz := range valid {
		t.Run(tz, func(t *testing.T) {
			assert.NoError(t, ValidateTimezone(tz))
		})
	}

	invalid := []struct {
		name     string
		timezone string
	}{
		{"empty string", ""},
		{"unknown zone", "Invalid/Timezone"},
		{"not a zone name", "NotATimezone"},
		{"utc offset instead of name", "+03:00"},
		{"typo", "Eurpoe/Moscow"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTimezone(tt.timezone)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "invalid timezone")
		})
	}
}

func TestValidateTimezone_ErrorIncludesValue(t *testing.T) {
	err := ValidateTimezone("Invalid/Zone")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timezone 'Invalid/Zone'")
}

func TestValidateDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		min      time.Duration
		max      time.Duration
		valid    bool
	}{
		{"exactly min", 10 * time.Second, 10 * time.Second, time.Minute, true},
		{"exactly max", time.Minute, 10 * time.Second, time.Minute, true},
		{"middle of range", 30 * time.Second, 10 * time.Second, time.Minute, true},
		{"min equals max", 5 * time.Second, 5 * time.Second, 5 * time.Second, true},
		{"zero within range", 0, 0, 10 * time.Second, true},
		{"just below min", 9 * time.Second, 10 * time.Second, time.Minute, false},
		{"just above max", 61 * time.Second, 10 * time.Second, time.Minute, false},
		{"negative below negative min", -30 * time.Second, -10 * time.Second, 10 * time.Second, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDuration(tt.duration, tt.min, tt.max)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateDuration_ErrorMessages(t *testing.T) {
	err := ValidateDuration(5*time.Second, 10*time.Second, time.Minute)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "below minimum")
	assert.Contains(t, err.Error(), "5s")

	err = ValidateDuration(2*time.Minute, 10*time.Second, time.Minute)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")

	err = ValidateDuration(30*time.Second, time.Minute, 10*time.Second)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid range")
}

func TestValidateIntRange(t *testing.T) {
	tests := []struct {
		name  string
		value int
		min   int
		max   int
		valid bool
	}{
		{"exactly min", 1, 1, 10, true},
		{"exactly max", 10, 1, 10, true},
		{"middle of range", 5, 1, 10, true},
		{"min equals max", 5, 5, 5, true},
		{"negative range", -5, -10, -1, true},
		{"just below min", 0, 1, 10, false},
		{"just above max", 11, 1, 10, false},
		{"inverted range", 5, 10, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIntRange(tt.value, tt.min, tt.max)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateIntRange_ErrorMessages(t *testing.T) {
	err := ValidateIntRange(0, 1024, 65535)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "below minimum")

	err = ValidateIntRange(70000, 1024, 65535)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")

	err = ValidateIntRange(5, 10, 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid range")
}

func TestValidatePositiveDuration(t *testing.T) {
	valid := []time.Duration{
		time.Nanosecond,
		time.Millisecond,
		time.Second,
		24 * time.Hour,
		720 * time.Hour,
	}
	for _, d := range valid {
		t.Run(d.String(), func(t *testing.T) {
			assert.NoError(t, ValidatePositiveDuration(d))
		})
	}

	invalid := []time.Duration{0, -time.Second, -time.Hour}
	for _, d := range invalid {
		t.Run(d.String(), func(t *testing.T) {
			err := ValidatePositiveDuration(d)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "must be positive")
		})
	}
}

func TestValidatePositiveDuration_ErrorIncludesValue(t *testing.T) {
	err := ValidatePositiveDuration(-30 * time.Minute)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "-30m")
}
