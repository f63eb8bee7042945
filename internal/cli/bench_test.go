package cli

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/kbridge/internal/bench"
)

func TestBenchCommand_Text(t *testing.T) {
	out, _, err := execute(t, "bench", "--start", "3", "--length", "3")
	require.NoError(t, err)

	for _, want := range []string{"size", "native", "arrow", "8", "16", "32"} {
		assert.Contains(t, out, want)
	}
	// header, separator and one line per size
	assert.GreaterOrEqual(t, len(strings.Split(strings.TrimSpace(out), "\n")), 5)
}

func TestBenchCommand_JSONUsesConfig(t *testing.T) {
	out, _, err := execute(t, "bench",
		"--config", filepath.Join("testdata", "config", "small_bench.cue"),
		"--format", "json",
	)
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Schedule bench.Schedule `json:"schedule"`
			Repeat   int            `json:"repeat"`
			Seed     uint64         `json:"seed"`
			Table    struct {
				Columns []string   `json:"columns"`
				Rows    [][3]int64 `json:"rows"`
			} `json:"table"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, bench.Schedule{Start: 2, Step: 1, Length: 3}, resp.Data.Schedule)
	assert.Equal(t, uint64(9), resp.Data.Seed)
	assert.Equal(t, []string{"size", "arrow", "native"}, resp.Data.Table.Columns)
	require.Len(t, resp.Data.Table.Rows, 3)
	for i, row := range resp.Data.Table.Rows {
		assert.Equal(t, int64(4<<i), row[0])
		assert.GreaterOrEqual(t, row[1], int64(0))
		assert.GreaterOrEqual(t, row[2], int64(0))
	}
}

func TestBenchCommand_FlagsOverrideConfig(t *testing.T) {
	out, _, err := execute(t, "bench",
		"--config", filepath.Join("testdata", "config", "small_bench.cue"),
		"--length", "1", "--bridge-a", "native", "--bridge-b", "arrow",
		"--format", "json",
	)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	data := resp.Data.(map[string]any)
	table := data["table"].(map[string]any)
	assert.Equal(t, []any{"size", "native", "arrow"}, table["columns"])
	assert.Len(t, table["rows"], 1)
}

func TestBenchCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad schedule", []string{"bench", "--start", "-1"}, "invalid schedule"},
		{"bad repeat", []string{"bench", "--repeat", "0"}, "repeat must be at least 1"},
		{"unknown bridge", []string{"bench", "--bridge-a", "ffi"}, "failed to open bridge"},
		{"same bridge twice", []string{"bench", "--bridge-a", "native", "--bridge-b", "native"}, `got "native" twice`},
		{"extra args", []string{"bench", "now"}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}
