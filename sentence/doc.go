// Package sentence joins sequences of renderable elements into
// natural-language lists: "one, two, and three".
//
// Three connector words drive the join, chosen by element count: the
// two-words connector for exactly two elements, the words connector between
// interior elements, and the last-word connector before the final element
// of longer lists. Connectors resolve in a fixed three-stage order: built-in
// defaults first, then directly supplied options, with an optional locale
// overlay applied last so it wins over both.
//
// Option keys form a closed set. Typed construction through functional
// options cannot produce an unknown key, so ToSentence itself never fails;
// loosely-typed option maps must pass OptionsFromMap, which validates keys
// before any text is produced and reports the first offender. ValidateKeys
// exposes that check on its own.
//
// Locale tables live under the support.array namespace of a locale
// document and may be partial: a table overrides only the connectors it
// supplies. LocaleFromYAML parses the conventional YAML shape; NewLocale
// accepts an in-memory table. Locales are immutable values carried inside
// a single call's options. There is no global registry, so the package
// stays pure and safe for concurrent use.
package sentence
