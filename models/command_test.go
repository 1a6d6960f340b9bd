package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaselineRecordKeepsUnknownKeys(t *testing.T) {
	input := `{"name":"abs","description":"d","usage":"abs(x)","deprecated":true,"aliases":["a"]}`

	var rec BaselineRecord
	require.NoError(t, json.Unmarshal([]byte(input), &rec))

	assert.Equal(t, "abs", rec.Name)
	assert.Equal(t, "abs(x)", rec.Usage)
	assert.Empty(t, rec.Category)
	require.Len(t, rec.Extra, 2)
	assert.JSONEq(t, `true`, string(rec.Extra["deprecated"]))
	assert.JSONEq(t, `["a"]`, string(rec.Extra["aliases"]))
}

func TestMergedRecordMarshal(t *testing.T) {
	rec := MergedRecord{
		Name:        "abs",
		Description: "Returns absolute value.",
		Usage:       "abs(x)",
		Extra: map[string]json.RawMessage{
			"deprecated": json.RawMessage(`false`),
			"summary":    json.RawMessage(`"ignored"`),
		},
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"name": "abs",
		"description": "Returns absolute value.",
		"usage": "abs(x)",
		"markdown": "",
		"summary": "",
		"syntax": [],
		"example": "",
		"deprecated": false
	}`, string(data))
}

func TestMergedRecordUnmarshalExtras(t *testing.T) {
	input := `{"name":"abs","usage":"abs(x)","syntax":[{"syntax":"abs(x)","description":"d"}],"since":"2020a"}`

	var rec MergedRecord
	require.NoError(t, json.Unmarshal([]byte(input), &rec))

	assert.Equal(t, "abs", rec.Name)
	assert.True(t, rec.HasSyntax())
	assert.False(t, rec.HasExample())
	assert.JSONEq(t, `"2020a"`, string(rec.Extra["since"]))
}
