package sentence

import (
	"fmt"
	"sort"
)

// Recognized option keys. The closed set accepted by OptionsFromMap; locale
// tables accept the three connector keys only.
const (
	// KeyWordsConnector joins interior elements of a 3+ element sentence.
	KeyWordsConnector = "words_connector"
	// KeyTwoWordsConnector joins a sentence of exactly two elements.
	KeyTwoWordsConnector = "two_words_connector"
	// KeyLastWordConnector precedes the final element of a 3+ element sentence.
	KeyLastWordConnector = "last_word_connector"
	// KeyLocale selects a Locale whose table overrides the other connectors.
	KeyLocale = "locale"
)

// Built-in connector texts. Single source of truth for DefaultOptions.
const (
	DefaultWordsConnector    = ", "
	DefaultTwoWordsConnector = " and "
	DefaultLastWordConnector = ", and "
)

// OptionKeys returns the closed set of recognized option keys, in
// documentation order. The returned slice is fresh on every call.
func OptionKeys() []string {
	return []string{KeyWordsConnector, KeyTwoWordsConnector, KeyLastWordConnector, KeyLocale}
}

// connectorKeys is OptionKeys without KeyLocale: the keys a locale table
// may supply.
func connectorKeys() []string {
	return []string{KeyWordsConnector, KeyTwoWordsConnector, KeyLastWordConnector}
}

// Options holds the resolved connector configuration for one ToSentence
// call.
type Options struct {
	// WordsConnector joins all elements except the last in sentences of
	// three or more elements.
	WordsConnector string

	// TwoWordsConnector joins the elements of a two-element sentence.
	TwoWordsConnector string

	// LastWordConnector precedes the final element in sentences of three
	// or more elements.
	LastWordConnector string

	// Locale, when non-nil, overlays its connector table after all direct
	// options have been applied. Locale wins over direct options.
	Locale *Locale
}

// DefaultOptions returns the built-in connector set, rendering
// "a, b, and c" for three or more elements and "a and b" for two.
func DefaultOptions() Options {
	return Options{
		WordsConnector:    DefaultWordsConnector,
		TwoWordsConnector: DefaultTwoWordsConnector,
		LastWordConnector: DefaultLastWordConnector,
	}
}

// Option configures ToSentence via functional arguments.
type Option func(*Options)

// WithWordsConnector sets the text between interior elements.
func WithWordsConnector(s string) Option {
	return func(o *Options) { o.WordsConnector = s }
}

// WithTwoWordsConnector sets the text joining a two-element sentence.
func WithTwoWordsConnector(s string) Option {
	return func(o *Options) { o.TwoWordsConnector = s }
}

// WithLastWordConnector sets the text before the final element.
func WithLastWordConnector(s string) Option {
	return func(o *Options) { o.LastWordConnector = s }
}

// WithLocale overlays l's connector table after every direct option.
func WithLocale(l Locale) Option {
	return func(o *Options) { o.Locale = &l }
}

// resolve folds opts over the defaults, then lets the locale overlay the
// connectors its table supplies. The merge order is fixed: defaults, then
// direct options in call order, then locale.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Locale != nil {
		o.Locale.overlay(&o)
	}

	return o
}

// OptionsFromMap converts a loosely-typed option map into functional
// options, validating before converting: keys are checked in sorted order
// (so the reported offender is deterministic) against the closed set, then
// values are checked per key. Connector keys take strings; KeyLocale takes
// a Locale or *Locale.
//
// This is the strict construction path for callers whose options arrive as
// data rather than code:
//
//	opts, err := sentence.OptionsFromMap(raw)
//	if err != nil { ... }
//	text := sentence.ToSentence(words, opts...)
//
// Unknown keys report ErrUnknownOption; wrong value types report
// ErrOptionValue. Both abort before any option is built.
func OptionsFromMap(m map[string]any) ([]Option, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if err := ValidateKeys(keys, OptionKeys()); err != nil {
		return nil, err
	}

	opts := make([]Option, 0, len(keys))
	for _, k := range keys {
		opt, err := optionFor(k, m[k])
		if err != nil {
			return nil, err
		}
		opts = append(opts, opt)
	}

	return opts, nil
}

// optionFor builds the functional option for one validated key.
func optionFor(key string, v any) (Option, error) {
	switch key {
	case KeyWordsConnector:
		text, err := stringValue(key, v)
		if err != nil {
			return nil, err
		}

		return WithWordsConnector(text), nil
	case KeyTwoWordsConnector:
		text, err := stringValue(key, v)
		if err != nil {
			return nil, err
		}

		return WithTwoWordsConnector(text), nil
	case KeyLastWordConnector:
		text, err := stringValue(key, v)
		if err != nil {
			return nil, err
		}

		return WithLastWordConnector(text), nil
	default: // KeyLocale, the only remaining validated key
		switch loc := v.(type) {
		case Locale:
			return WithLocale(loc), nil
		case *Locale:
			if loc == nil {
				return nil, fmt.Errorf("%w: %s must not be a nil *Locale", ErrOptionValue, key)
			}

			return WithLocale(*loc), nil
		default:
			return nil, fmt.Errorf("%w: %s must be a Locale, got %T", ErrOptionValue, key, v)
		}
	}
}

// stringValue coerces a connector value or reports ErrOptionValue for key.
func stringValue(key string, v any) (string, error) {
	text, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrOptionValue, key, v)
	}

	return text, nil
}
