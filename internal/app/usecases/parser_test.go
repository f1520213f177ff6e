package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJoke(t *testing.T) {
	t.Run("bare object", func(t *testing.T) {
		joke, err := parseJoke(`{"joke": "Why did the cat cross the road?"}`)
		require.NoError(t, err)
		assert.Equal(t, "Why did the cat cross the road?", joke)
	})

	t.Run("fenced markdown", func(t *testing.T) {
		raw := "Here you go:\n```json\n{\"joke\": \"A pun.\"}\n```\nEnjoy!"
		joke, err := parseJoke(raw)
		require.NoError(t, err)
		assert.Equal(t, "A pun.", joke)
	})

	t.Run("no object", func(t *testing.T) {
		_, err := parseJoke("I refuse to answer in JSON.")
		assert.Error(t, err)
	})

	t.Run("empty joke field", func(t *testing.T) {
		_, err := parseJoke(`{"joke": "  "}`)
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := parseJoke(`{"joke": `)
		assert.Error(t, err)
	})
}

func TestParseExplanation(t *testing.T) {
	explanation, err := parseExplanation(`{"explanation": "It subverts expectations."}`)
	require.NoError(t, err)
	assert.Equal(t, "It subverts expectations.", explanation)

	_, err = parseExplanation(`{"explanation": ""}`)
	assert.Error(t, err)
}

func TestParseSelection(t *testing.T) {
	t.Run("three ids", func(t *testing.T) {
		ids, err := parseSelection(`{"selected_action_ids": ["another_joke", "make_funnier", "similar_joke"]}`)
		require.NoError(t, err)
		assert.Equal(t, []string{"another_joke", "make_funnier", "similar_joke"}, ids)
	})

	t.Run("four ids", func(t *testing.T) {
		ids, err := parseSelection(`{"selected_action_ids": ["another_joke", "simpler_explanation", "make_funnier", "similar_joke"]}`)
		require.NoError(t, err)
		assert.Len(t, ids, 4)
	})

	t.Run("empty list is a parse failure", func(t *testing.T) {
		_, err := parseSelection(`{"selected_action_ids": []}`)
		assert.Error(t, err)
	})

	t.Run("too few ids is a parse failure", func(t *testing.T) {
		_, err := parseSelection(`{"selected_action_ids": ["another_joke"]}`)
		assert.Error(t, err)
	})

	t.Run("too many ids is a parse failure", func(t *testing.T) {
		_, err := parseSelection(`{"selected_action_ids": ["another_joke", "simpler_explanation", "new_topic", "make_funnier", "similar_joke"]}`)
		assert.Error(t, err)
	})

	t.Run("prose around the object", func(t *testing.T) {
		ids, err := parseSelection(`Sure! {"selected_action_ids": ["new_topic", "another_joke", "make_funnier"]} Hope that helps.`)
		require.NoError(t, err)
		assert.Equal(t, []string{"new_topic", "another_joke", "make_funnier"}, ids)
	})
}
