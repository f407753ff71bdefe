package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loadProposal struct {
	DayIndex  int    `json:"day_index"`
	LoadClass string `json:"load_class"`
}

type proposalSet struct {
	Days []loadProposal `json:"days"`
}

func TestExtractJSON_CleanObject(t *testing.T) {
	raw := `{"days":[{"day_index":2,"load_class":"High"}]}`
	result, err := ExtractJSON[proposalSet](raw, nil)
	require.NoError(t, err)
	require.Len(t, result.Days, 1)
	assert.Equal(t, "High", result.Days[0].LoadClass)
}

func TestExtractJSON_FencedWithProse(t *testing.T) {
	raw := "Here is the periodization you asked for:\n```json\n{\"days\":[{\"day_index\":0,\"load_class\":\"Low\"}]}\n```\nLet me know if you need changes."
	result, err := ExtractJSON[proposalSet](raw, nil)
	require.NoError(t, err)
	require.Len(t, result.Days, 1)
	assert.Equal(t, 0, result.Days[0].DayIndex)
}

func TestExtractJSON_TopLevelArray(t *testing.T) {
	raw := "Proposed days:\n[{\"day_index\":1,\"load_class\":\"Medium\"},{\"day_index\":2,\"load_class\":\"Low\"}]"
	result, err := ExtractJSON[[]loadProposal](raw, nil)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Medium", result[0].LoadClass)
}

func TestExtractJSON_StripsComments(t *testing.T) {
	raw := `{
		"days": [
			{"day_index": 3, "load_class": "High"} // peak stimulus
		]
	}`
	result, err := ExtractJSON[proposalSet](raw, nil)
	require.NoError(t, err)
	require.Len(t, result.Days, 1)
}

func TestExtractJSON_LeadingDecimalRepaired(t *testing.T) {
	type weighted struct {
		Weight float64 `json:"weight"`
	}
	result, err := ExtractJSON[weighted](`{"weight": .85}`, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.85, result.Weight)

	result, err = ExtractJSON[weighted](`{"weight": -.3}`, nil)
	require.NoError(t, err)
	assert.Equal(t, -0.3, result.Weight)
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	type named struct {
		Name string `json:"name"`
	}
	result, err := ExtractJSON[named](`{"name":"4-3-3 {high block}"}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "4-3-3 {high block}", result.Name)
}

func TestExtractJSON_NoPayload(t *testing.T) {
	_, err := ExtractJSON[proposalSet]("I could not produce a schedule.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_MalformedPayload(t *testing.T) {
	_, err := ExtractJSON[proposalSet](`{"days": broken}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	validator := func(p proposalSet) error {
		for _, d := range p.Days {
			if d.DayIndex < 0 {
				return fmt.Errorf("negative day index %d", d.DayIndex)
			}
		}
		return nil
	}
	_, err := ExtractJSON(`{"days":[{"day_index":-1,"load_class":"High"}]}`, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestExtractJSON_ValidatorAccepts(t *testing.T) {
	validator := func(p proposalSet) error { return nil }
	result, err := ExtractJSON(`{"days":[{"day_index":4,"load_class":"Recovery"}]}`, validator)
	require.NoError(t, err)
	assert.Equal(t, "Recovery", result.Days[0].LoadClass)
}
