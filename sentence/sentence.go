package sentence

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/seqx/access"
)

// ToSentence renders words as text and joins them into a natural-language
// list. The shape depends on the element count:
//
//	0 elements → ""
//	1 element  → its text form, unchanged
//	2 elements → first + TwoWordsConnector + second
//	3+         → interior elements joined by WordsConnector, then
//	             LastWordConnector, then the final element
//
// With the default connectors:
//
//	ToSentence([]string{"one", "two", "three"})
//	// → "one, two, and three"
//
// Connectors resolve in three fixed stages: built-in defaults, then opts in
// call order, then the locale's table, so a locale wins over directly
// supplied connectors. Elements render via fmt.Sprint, which honors
// fmt.Stringer.
//
// ToSentence never fails; typed options cannot carry an unknown key.
// Callers holding a loosely-typed option map validate it through
// OptionsFromMap first.
//
// Complexity: O(total rendered length).
func ToSentence[T any](words []T, opts ...Option) string {
	o := resolve(opts)

	switch len(words) {
	case 0:
		return ""
	case 1:
		return render(words[0])
	case 2:
		return render(words[0]) + o.TwoWordsConnector + render(words[1])
	}

	head, _ := access.Shorten(words, 1) // len >= 3, never absent

	var b strings.Builder
	for i, w := range head {
		if i > 0 {
			b.WriteString(o.WordsConnector)
		}
		b.WriteString(render(w))
	}
	b.WriteString(o.LastWordConnector)
	b.WriteString(render(words[len(words)-1]))

	return b.String()
}

// render converts one element to its text form.
func render(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}
