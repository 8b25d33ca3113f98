package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTranslation struct {
	code string
	text string
}

func (f fakeTranslation) LanguageCode() string { return f.code }

func TestResolveMatch(t *testing.T) {
	set := []fakeTranslation{
		{code: "en", text: "Hello"},
		{code: "am", text: "ሰላም"},
		{code: "ru", text: "Привет"},
	}

	got := Resolve(set, "am")
	require.NotNil(t, got)
	assert.Equal(t, "ሰላም", got.text)
}

func TestResolveNoMatch(t *testing.T) {
	set := []fakeTranslation{{code: "en", text: "Hello"}}

	assert.Nil(t, Resolve(set, "fr"))
}

func TestResolveMalformedCode(t *testing.T) {
	set := []fakeTranslation{{code: "en", text: "Hello"}}

	// Garbage codes behave exactly like a missing translation.
	assert.Nil(t, Resolve(set, "!!not-a-code!!"))
	assert.Nil(t, Resolve(set, ""))
}

func TestResolveEmptySet(t *testing.T) {
	assert.Nil(t, Resolve([]fakeTranslation{}, "en"))
	assert.Nil(t, Resolve[fakeTranslation](nil, "en"))
}

func TestResolveReturnsPointerIntoSet(t *testing.T) {
	set := []fakeTranslation{{code: "en", text: "Hello"}}

	got := Resolve(set, "en")
	require.NotNil(t, got)
	assert.Equal(t, &set[0], got)
}
