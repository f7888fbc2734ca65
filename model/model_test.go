package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorySwitchesAreExhaustive(t *testing.T) {
	emojis := map[string]bool{}
	for _, c := range AllCategories {
		assert.NotPanics(t, func() {
			assert.NotEmpty(t, c.String())
			assert.NotEmpty(t, c.Color())
			emojis[c.Emoji()] = true
		})
		assert.Equal(t, c, ParseCategory(c.String()))
	}
	assert.Len(t, emojis, len(AllCategories))
}

func TestParseCategory(t *testing.T) {
	assert.Equal(t, CategoryElectrical, ParseCategory("electrical"))
	assert.Equal(t, CategoryOther, ParseCategory("Welding"))
	assert.Equal(t, "🛠️", ParseCategory("").Emoji())
	assert.Equal(t, "bg-gray-100 text-gray-800", CategoryOther.Color())

	// 越界值不 panic，按 Other 处理
	unknown := Category(99)
	assert.Equal(t, "Other", unknown.String())
	assert.Equal(t, CategoryOther.Emoji(), unknown.Emoji())
	assert.Equal(t, CategoryOther.Color(), unknown.Color())
	assert.Equal(t, CategoryOther, ParseCategory(unknown.String()))
}

func TestParseChoice(t *testing.T) {
	c, err := ParseChoice(" YES ")
	require.NoError(t, err)
	assert.Equal(t, ChoiceYes, c)

	c, err = ParseChoice("no")
	require.NoError(t, err)
	assert.Equal(t, "no", c.String())

	_, err = ParseChoice("abstain")
	assert.Error(t, err)
}
