package bot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	cases := map[string]Difficulty{
		"easy":   Easy,
		"Medium": Medium,
		" HARD ": Hard,
	}

	for input, want := range cases {
		got, err := ParseDifficulty(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseDifficulty("impossible")
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
}

func TestDifficulty_JSON(t *testing.T) {
	// Given: a struct carrying a difficulty
	type settings struct {
		Difficulty Difficulty `json:"difficulty"`
	}

	// When: encoding and decoding it
	data, err := json.Marshal(settings{Difficulty: Medium})
	require.NoError(t, err)

	var decoded settings
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Then: it travels as its name
	assert.JSONEq(t, `{"difficulty":"medium"}`, string(data))
	assert.Equal(t, Medium, decoded.Difficulty)

	_, err = json.Marshal(settings{Difficulty: Difficulty(7)})
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
	assert.Equal(t, "difficulty(7)", Difficulty(7).String())
}
