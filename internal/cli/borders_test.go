package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/kbridge/internal/kval"
)

func TestBorderRows(t *testing.T) {
	rows := borderRows()
	require.Len(t, rows, len(kval.AllBorders()))

	byType := map[string]BorderRow{}
	for _, r := range rows {
		byType[r.Type] = r
	}

	assert.Equal(t, BorderRow{Type: "long", Code: 7, Null: "0N", PosInf: "0W", NegInf: "-0W"}, byType["long"])
	assert.Equal(t, "0Nh", byType["short"].Null)
	assert.Equal(t, "0n", byType["float"].Null)
	assert.Empty(t, byType["symbol"].PosInf)
}

func TestBordersCommand_Text(t *testing.T) {
	out, _, err := execute(t, "borders")
	require.NoError(t, err)
	for _, want := range []string{"type", "null", "+inf", "long", "0N", "0W", "timestamp", "0Np"} {
		assert.Contains(t, out, want)
	}
}

func TestBordersCommand_JSON(t *testing.T) {
	out, _, err := execute(t, "borders", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   []BorderRow `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, borderRows(), resp.Data)
}
