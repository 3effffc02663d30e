package sentence

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// LocaleNamespace names the nesting under a locale's top-level name where
// connector overrides live in a locale document.
const LocaleNamespace = "support.array"

// Locale carries a named, possibly partial connector table. A table
// overlays only the keys it supplies, so a locale that defines just one
// connector leaves the others at their resolved values. Locale is immutable
// after construction; one value may serve any number of concurrent calls.
type Locale struct {
	name  string
	table map[string]string
}

// NewLocale builds a Locale from an in-memory connector table. Table keys
// are validated (in sorted order) against the three connector keys;
// KeyLocale cannot nest. An empty or nil table is legal and overlays
// nothing.
func NewLocale(name string, connectors map[string]string) (Locale, error) {
	keys := make([]string, 0, len(connectors))
	for k := range connectors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if err := ValidateKeys(keys, connectorKeys()); err != nil {
		return Locale{}, err
	}

	table := make(map[string]string, len(connectors))
	for k, v := range connectors {
		table[k] = v
	}

	return Locale{name: name, table: table}, nil
}

// localeDoc mirrors the conventional i18n document shape for decoding.
type localeDoc struct {
	Support struct {
		Array map[string]string `yaml:"array"`
	} `yaml:"support"`
}

// LocaleFromYAML parses a locale document:
//
//	fr:
//	  support:
//	    array:
//	      words_connector: " puis "
//	      two_words_connector: " et "
//	      last_word_connector: " et enfin "
//
// Exactly one top-level locale name is required and the support.array
// namespace must be present beneath it; violations report ErrLocaleFormat.
// The connector table may be partial and its keys are validated as in
// NewLocale.
func LocaleFromYAML(data []byte) (Locale, error) {
	var doc map[string]localeDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Locale{}, fmt.Errorf("%w: %v", ErrLocaleFormat, err)
	}
	if len(doc) != 1 {
		return Locale{}, fmt.Errorf("%w: want exactly one top-level locale name, got %d", ErrLocaleFormat, len(doc))
	}

	var name string
	for n := range doc {
		name = n
	}
	if doc[name].Support.Array == nil {
		return Locale{}, fmt.Errorf("%w: missing %s table under %q", ErrLocaleFormat, LocaleNamespace, name)
	}

	return NewLocale(name, doc[name].Support.Array)
}

// Name returns the locale's name, e.g. "fr".
func (l Locale) Name() string {
	return l.name
}

// Connector reports the table's override for one connector key.
func (l Locale) Connector(key string) (string, bool) {
	v, ok := l.table[key]

	return v, ok
}

// overlay writes the table's connectors over the resolved options.
func (l Locale) overlay(o *Options) {
	if v, ok := l.table[KeyWordsConnector]; ok {
		o.WordsConnector = v
	}
	if v, ok := l.table[KeyTwoWordsConnector]; ok {
		o.TwoWordsConnector = v
	}
	if v, ok := l.table[KeyLastWordConnector]; ok {
		o.LastWordConnector = v
	}
}
