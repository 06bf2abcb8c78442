package config

import (
	"testing"
	"time"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STRING", "set-value")

	if got := GetEnvString("TEST_STRING", "default"); got != "set-value" {
		t.Errorf("GetEnvString() = %q, want %q", got, "set-value")
	}
	if got := GetEnvString("TEST_STRING_MISSING", "default"); got != "default" {
		t.Errorf("GetEnvString() = %q, want default", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback int
		want     int
	}{
		{name: "valid integer", value: "42", fallback: 10, want: 42},
		{name: "not an integer", value: "abc", fallback: 10, want: 10},
		{name: "empty", value: "", fallback: 10, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT", tt.value)
			if got := GetEnvInt("TEST_INT", tt.fallback); got != tt.want {
				t.Errorf("GetEnvInt(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		fallback bool
		want     bool
	}{
		{value: "true", fallback: false, want: true},
		{value: "1", fallback: false, want: true},
		{value: "false", fallback: true, want: false},
		{value: "0", fallback: true, want: false},
		{value: "maybe", fallback: true, want: true},
		{value: "", fallback: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)
			if got := GetEnvBool("TEST_BOOL", tt.fallback); got != tt.want {
				t.Errorf("GetEnvBool(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback time.Duration
		want     time.Duration
	}{
		{name: "valid duration", value: "90s", fallback: time.Minute, want: 90 * time.Second},
		{name: "compound duration", value: "1h30m", fallback: time.Minute, want: 90 * time.Minute},
		{name: "not a duration", value: "soon", fallback: time.Minute, want: time.Minute},
		{name: "empty", value: "", fallback: time.Minute, want: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)
			if got := GetEnvDuration("TEST_DURATION", tt.fallback); got != tt.want {
				t.Errorf("GetEnvDuration(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestGetEnvStringList(t *testing.T) {
	t.Setenv("TEST_LIST", "a, b ,c,,")

	got := GetEnvStringList("TEST_LIST", []string{"default"})
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("GetEnvStringList() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GetEnvStringList()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestValidatePositiveDuration(t *testing.T) {
	if err := ValidatePositiveDuration(time.Second); err != nil {
		t.Errorf("ValidatePositiveDuration(1s) = %v, want nil", err)
	}
	if err := ValidatePositiveDuration(0); err == nil {
		t.Error("ValidatePositiveDuration(0) = nil, want error")
	}
	if err := ValidatePositiveDuration(-time.Second); err == nil {
		t.Error("ValidatePositiveDuration(-1s) = nil, want error")
	}
}

func TestValidateDurationRange(t *testing.T) {
	if err := ValidateDurationRange(time.Minute, time.Second, time.Hour); err != nil {
		t.Errorf("in-range duration rejected: %v", err)
	}
	if err := ValidateDurationRange(time.Millisecond, time.Second, time.Hour); err == nil {
		t.Error("below-minimum duration accepted")
	}
	if err := ValidateDurationRange(2*time.Hour, time.Second, time.Hour); err == nil {
		t.Error("above-maximum duration accepted")
	}
	if err := ValidateDurationRange(time.Minute, time.Hour, time.Second); err == nil {
		t.Error("inverted range accepted")
	}
}
