package text_test

import (
	"testing"

	"github.com/kirillmaiorovf-lgtm/movie-bot/internal/utils/text"
)

func TestCountRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{
			name:     "ASCII text",
			input:    "hello",
			expected: 5,
		},
		{
			name:     "empty string",
			input:    "",
			expected: 0,
		},
		{
			name:     "cyrillic title",
			input:    "Брат",
			expected: 4,
		},
		{
			name:     "mixed cyrillic and latin",
			input:    "Иван Vasilievich",
			expected: 16,
		},
		{
			name:     "emoji",
			input:    "🎬🍿",
			expected: 2,
		},
		{
			name:     "text with emoji",
			input:    "Кино 🎬",
			expected: 6,
		},
		{
			name:     "precomposed accent",
			input:    "café", // é is a single rune (U+00E9)
			expected: 4,
		},
		{
			name:     "combining accent",
			input:    "café", // e + combining acute counts as two runes
			expected: 5,
		},
		{
			name:     "blurb-length sentence",
			input:    "Неспешный, но напряжённый фильм о цене выбора.",
			expected: 46,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := text.CountRunes(tt.input)
			if got != tt.expected {
				t.Errorf("CountRunes(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func BenchmarkCountRunes(b *testing.B) {
	const sample = "Фильм про двух братьев, которые делят наследство 🎬 and everything goes wrong."
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		text.CountRunes(sample)
	}
}
