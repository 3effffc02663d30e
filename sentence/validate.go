package sentence

import (
	"fmt"
)

// ValidateKeys checks every key in keys against allowed and returns nil
// when all are recognized. The first unrecognized key, in the order keys
// are given, is reported wrapped in ErrUnknownOption:
//
//	err := sentence.ValidateKeys([]string{"locale", "tone"}, sentence.OptionKeys())
//	// → sentence: unknown option key: "tone"
//
// A slice's order is already deterministic; callers starting from a map
// sort its keys first, as OptionsFromMap does. Pure and side-effect free.
//
// Complexity: O(len(keys) + len(allowed)).
func ValidateKeys(keys, allowed []string) error {
	known := make(map[string]struct{}, len(allowed))
	for _, k := range allowed {
		known[k] = struct{}{}
	}

	for _, k := range keys {
		if _, ok := known[k]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownOption, k)
		}
	}

	return nil
}
