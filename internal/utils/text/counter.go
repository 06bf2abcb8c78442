// Package text provides small text measurement helpers shared by the blurb
// generation pipeline.
package text

// CountRunes counts Unicode characters (runes) in the given text. Catalog
// titles and generated blurbs mix Cyrillic, Latin and emoji, so byte length
// overshoots badly; rune count is what the blurb length limit means.
//
// Examples:
//
//	CountRunes("hello")    // 5
//	CountRunes("Привет")   // 6
//	CountRunes("Hi 👋")    // 4
//	CountRunes("")         // 0
func CountRunes(text string) int {
	return len([]rune(text))
}
