package event

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	e, err := Decode([]byte(`["cellClicked", "grid-1", {"rowIndex": 3, "value": "x"}, null, 1700000000000]`))
	require.NoError(t, err)

	assert.Equal(t, "cellClicked", e.Name)
	assert.Equal(t, "grid-1", e.GridID)
	assert.Equal(t, int64(1700000000000), e.TS)
	assert.Nil(t, e.State)

	m := e.PayloadMap()
	require.NotNil(t, m)
	assert.Equal(t, float64(3), m["rowIndex"])
	assert.Equal(t, "x", m["value"])
}

func TestDecodeWithState(t *testing.T) {
	e, err := Decode([]byte(`["selectionChanged", "grid-1", {}, {"page": 1}, 1700000000000]`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"page": 1}`, string(e.State))
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"not json":    `{`,
		"not array":   `{"name": "cellClicked"}`,
		"short array": `["cellClicked", "grid-1", {}]`,
		"bad name":    `[42, "grid-1", {}, null, 1]`,
		"bad ts":      `["cellClicked", "grid-1", {}, null, "soon"]`,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(input))
			assert.Error(t, err)
		})
	}
}

func TestPayloadMapNull(t *testing.T) {
	e, err := Decode([]byte(`["gridReady", "grid-1", null, null, 1]`))
	require.NoError(t, err)
	assert.Nil(t, e.PayloadMap())
	assert.Nil(t, e.PayloadValue())
}

func TestReaderStream(t *testing.T) {
	input := `
["cellClicked", "grid-1", {"rowIndex": 0}, null, 1700000000000]
["sortChanged", "grid-1", null, {"columnState": []}, 1700000000001]
["paginationChanged", "grid-1", null, {"page": 2}, 1700000000002]
`
	r, err := NewReader([]byte(input))
	require.NoError(t, err)

	events := r.AllEvents()
	require.Len(t, events, 3)
	assert.Equal(t, "cellClicked", events[0].Name)
	assert.Equal(t, "sortChanged", events[1].Name)
	assert.Equal(t, int64(1700000000002), events[2].TS)
}

func TestReaderEmpty(t *testing.T) {
	r, err := NewReader([]byte("  \n"))
	require.NoError(t, err)
	assert.Empty(t, r.AllEvents())
}

func TestReaderRejectsNonArray(t *testing.T) {
	_, err := NewReader([]byte(`{"name": "cellClicked"}`))
	assert.Error(t, err)
}

func TestReaderBadEventNumbered(t *testing.T) {
	input := `
["cellClicked", "grid-1", {}, null, 1]
["cellClicked", "grid-1", {}]
`
	_, err := NewReader([]byte(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "event 2")
}

func TestWriterJSONL(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, false)

	require.NoError(t, w.Write(Adapted{Name: "cellValueChanged", GridID: "grid-1", Payload: Payload{2, "age", 31}, TS: 1}))
	require.NoError(t, w.Write(Adapted{Name: "gridReady", Payload: Payload{nil}}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"n":"cellValueChanged","g":"grid-1","p":[2,"age",31],"ts":1}`, lines[0])
	assert.JSONEq(t, `{"n":"gridReady","p":[null]}`, lines[1])
}

func TestWriterPretty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	require.NoError(t, w.Write(Adapted{Name: "gridReady", TS: 1}))
	assert.Contains(t, buf.String(), "\n  \"n\": \"gridReady\"")
}
