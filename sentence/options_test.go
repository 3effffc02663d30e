package sentence_test

import (
	"testing"

	"github.com/katalvlaran/seqx/sentence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Values pins the built-in connector texts.
func TestDefaultOptions_Values(t *testing.T) {
	o := sentence.DefaultOptions()

	assert.Equal(t, ", ", o.WordsConnector)
	assert.Equal(t, " and ", o.TwoWordsConnector)
	assert.Equal(t, ", and ", o.LastWordConnector)
	assert.Nil(t, o.Locale)
}

// TestOptionKeys_ClosedSet pins the recognized key set and verifies the
// returned slice is a fresh copy.
func TestOptionKeys_ClosedSet(t *testing.T) {
	keys := sentence.OptionKeys()
	require.Equal(t, []string{
		"words_connector", "two_words_connector", "last_word_connector", "locale",
	}, keys)

	keys[0] = "mutated"
	assert.Equal(t, "words_connector", sentence.OptionKeys()[0])
}

// TestOptionsFromMap_BuildsEquivalentOptions verifies the map path produces
// the same join as the typed path.
func TestOptionsFromMap_BuildsEquivalentOptions(t *testing.T) {
	opts, err := sentence.OptionsFromMap(map[string]any{
		sentence.KeyWordsConnector:    " | ",
		sentence.KeyLastWordConnector: " | finally ",
	})
	require.NoError(t, err)

	words := []string{"a", "b", "c"}
	want := sentence.ToSentence(words,
		sentence.WithWordsConnector(" | "),
		sentence.WithLastWordConnector(" | finally "),
	)
	assert.Equal(t, want, sentence.ToSentence(words, opts...))
}

// TestOptionsFromMap_EmptyMap verifies an empty or nil map is valid and
// yields no options.
func TestOptionsFromMap_EmptyMap(t *testing.T) {
	opts, err := sentence.OptionsFromMap(nil)
	require.NoError(t, err)
	assert.Empty(t, opts)
}

// TestOptionsFromMap_UnknownKey verifies the invalid-configuration error
// carries the offending key's name and aborts before any option is built.
func TestOptionsFromMap_UnknownKey(t *testing.T) {
	opts, err := sentence.OptionsFromMap(map[string]any{"unknown": "x"})

	require.ErrorIs(t, err, sentence.ErrUnknownOption)
	assert.ErrorContains(t, err, `"unknown"`)
	assert.Nil(t, opts)
}

// TestOptionsFromMap_DeterministicOffender verifies the reported key does
// not depend on map iteration order: keys are checked sorted.
func TestOptionsFromMap_DeterministicOffender(t *testing.T) {
	m := map[string]any{
		"zz_bad": 1,
		"aa_bad": 2,
		sentence.KeyWordsConnector: " | ",
	}
	for i := 0; i < 10; i++ {
		_, err := sentence.OptionsFromMap(m)
		require.ErrorIs(t, err, sentence.ErrUnknownOption)
		require.ErrorContains(t, err, `"aa_bad"`)
	}
}

// TestOptionsFromMap_WrongValueTypes verifies recognized keys still reject
// values of the wrong type.
func TestOptionsFromMap_WrongValueTypes(t *testing.T) {
	cases := []struct {
		name string
		m    map[string]any
	}{
		{"ConnectorNotString", map[string]any{sentence.KeyWordsConnector: 7}},
		{"LocaleNotLocale", map[string]any{sentence.KeyLocale: "fr"}},
		{"LocaleNilPointer", map[string]any{sentence.KeyLocale: (*sentence.Locale)(nil)}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := sentence.OptionsFromMap(tc.m)
			assert.ErrorIs(t, err, sentence.ErrOptionValue)
		})
	}
}

// TestOptionsFromMap_LocaleValues verifies both Locale values and non-nil
// pointers are accepted under KeyLocale.
func TestOptionsFromMap_LocaleValues(t *testing.T) {
	fr := frLocale(t)
	words := []string{"un", "deux"}

	byValue, err := sentence.OptionsFromMap(map[string]any{sentence.KeyLocale: fr})
	require.NoError(t, err)
	assert.Equal(t, "un et deux", sentence.ToSentence(words, byValue...))

	byPointer, err := sentence.OptionsFromMap(map[string]any{sentence.KeyLocale: &fr})
	require.NoError(t, err)
	assert.Equal(t, "un et deux", sentence.ToSentence(words, byPointer...))
}

// TestValidateKeys_AllRecognized verifies nil and fully recognized key sets
// pass.
func TestValidateKeys_AllRecognized(t *testing.T) {
	require.NoError(t, sentence.ValidateKeys(nil, sentence.OptionKeys()))
	require.NoError(t, sentence.ValidateKeys(
		[]string{sentence.KeyLocale, sentence.KeyWordsConnector},
		sentence.OptionKeys(),
	))
}

// TestValidateKeys_FirstOffenderInSliceOrder verifies the reported key is
// the first unrecognized one in the given order, not the smallest.
func TestValidateKeys_FirstOffenderInSliceOrder(t *testing.T) {
	err := sentence.ValidateKeys(
		[]string{sentence.KeyLocale, "tone", "aaa"},
		sentence.OptionKeys(),
	)

	require.ErrorIs(t, err, sentence.ErrUnknownOption)
	assert.ErrorContains(t, err, `"tone"`)
	assert.NotContains(t, err.Error(), "aaa")
}

// TestValidateKeys_EmptyAllowed verifies every key offends when nothing is
// allowed.
func TestValidateKeys_EmptyAllowed(t *testing.T) {
	err := sentence.ValidateKeys([]string{"anything"}, nil)
	assert.ErrorIs(t, err, sentence.ErrUnknownOption)
}
