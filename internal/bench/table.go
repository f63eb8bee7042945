package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// Row is one scheduled size and the elapsed time on each bridge.
type Row struct {
	Size     int
	ElapsedA time.Duration
	ElapsedB time.Duration
}

// Table holds a run's results in schedule order.
type Table struct {
	NameA string
	NameB string
	Rows  []Row
}

// Columns names the table's three columns.
func (t *Table) Columns() []string {
	return []string{"size", t.NameA, t.NameB}
}

// Render writes the table as markdown with elapsed times in nanoseconds.
func (t *Table) Render(w io.Writer) error {
	alignment := make([]tw.Align, 3)
	for i := range alignment {
		alignment[i] = tw.AlignRight
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithAlignment(alignment),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header(t.Columns())

	for _, r := range t.Rows {
		row := []string{
			strconv.Itoa(r.Size),
			strconv.FormatInt(r.ElapsedA.Nanoseconds(), 10),
			strconv.FormatInt(r.ElapsedB.Nanoseconds(), 10),
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append row for size %d: %w", r.Size, err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render benchmark table: %w", err)
	}
	return nil
}

// tableJSON is the wire form of a Table: column names plus rows of
// [size, nanosA, nanosB].
type tableJSON struct {
	Columns []string   `json:"columns"`
	Rows    [][3]int64 `json:"rows"`
}

// MarshalJSON renders the table with elapsed times in nanoseconds.
func (t *Table) MarshalJSON() ([]byte, error) {
	out := tableJSON{Columns: t.Columns(), Rows: make([][3]int64, len(t.Rows))}
	for i, r := range t.Rows {
		out.Rows[i] = [3]int64{int64(r.Size), r.ElapsedA.Nanoseconds(), r.ElapsedB.Nanoseconds()}
	}
	return json.Marshal(out)
}
