package topics

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/shopdocs/internal/catalog"
)

func sampleUnits() []catalog.Unit {
	return []catalog.Unit{
		{Key: "sql-avanzado", Title: "SQL avanzado", Payload: "<p>joins</p>", Source: "builtin"},
		{Key: "indices-mysql", Title: "Índices en MySQL", Payload: "<p>btree</p>"},
	}
}

func TestDisplayTopicsTable(t *testing.T) {
	var buf bytes.Buffer
	DisplayTopicsTable(&buf, sampleUnits())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "KEY"))
	assert.Contains(t, lines[2], "sql-avanzado")
	assert.Contains(t, lines[2], "builtin")
	assert.Contains(t, lines[3], "indices-mysql")
	assert.Contains(t, lines[3], " - ", "missing source is shown as a dash")
}

func TestDisplayTopicsTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	DisplayTopicsTable(&buf, nil)
	assert.Contains(t, buf.String(), "No topics found")
}

func TestDisplayTopicsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayTopicsJSON(&buf, sampleUnits()))

	var out struct {
		Topics []TopicDisplay `json:"topics"`
		Count  int            `json:"count"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, "sql-avanzado", out.Topics[0].Key)
	assert.Equal(t, "indices-mysql", out.Topics[1].Key)
	assert.NotContains(t, buf.String(), "payload")
}

func TestDisplayTopicDetails(t *testing.T) {
	u := sampleUnits()[0]

	t.Run("raw", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, DisplayTopicDetails(&buf, u, "raw"))
		assert.Equal(t, "<p>joins</p>", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, DisplayTopicDetails(&buf, u, "json"))
		var got catalog.Unit
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, u, got)
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, DisplayTopicDetails(&buf, u, "table"))
		assert.Contains(t, buf.String(), "Key:     sql-avanzado")
		assert.Contains(t, buf.String(), "Payload: 12 bytes")
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, DisplayTopicDetails(&buf, u, "yaml"))
	})
}

func TestDisplayValidationResult(t *testing.T) {
	reg, err := catalog.New(sampleUnits())
	require.NoError(t, err)

	var ok bytes.Buffer
	DisplayValidationResult(&ok, reg, nil)
	assert.Contains(t, ok.String(), "Catalog is valid (2 topics)")

	var bad bytes.Buffer
	DisplayValidationResult(&bad, reg, []catalog.Issue{{Key: "Bad_Key", Message: "title is empty"}})
	assert.Contains(t, bad.String(), "1 issue(s) found")
	assert.Contains(t, bad.String(), "Bad_Key")
	assert.Contains(t, bad.String(), "title is empty")
}

func TestReportBuildFailure(t *testing.T) {
	_, err := catalog.New([]catalog.Unit{
		{Key: "sql-avanzado", Payload: "a"},
		{Key: "sql-avanzado", Payload: "b"},
	})
	require.Error(t, err)

	var buf bytes.Buffer
	ReportBuildFailure(&buf, err)
	assert.Contains(t, buf.String(), "Catalog construction failed")
	assert.Contains(t, buf.String(), "must be unique")

	buf.Reset()
	ReportBuildFailure(&buf, errors.New("failed to read manifest.yaml"))
	assert.Contains(t, buf.String(), "manifest.yaml")
	assert.NotContains(t, buf.String(), "must be unique")
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "Índi...", truncateString("Índices en MySQL", 7))
	assert.Equal(t, "...", truncateString("anything", 2))
}
