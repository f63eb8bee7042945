package cli

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/roach88/kbridge/internal/kval"
)

// BorderRow is one type's sentinels in display form.
type BorderRow struct {
	Type   string `json:"type"`
	Code   int    `json:"code"`
	Null   string `json:"null"`
	PosInf string `json:"pos_inf,omitempty"`
	NegInf string `json:"neg_inf,omitempty"`
}

// NewBordersCommand creates the borders command.
func NewBordersCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "borders",
		Short: "Print the null and infinity values of every type",
		Long: `Print the border table: for every type, its null and, where the
type has them, its positive and negative infinities, in console form.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := borderRows()
			return newFormatter(rootOpts, cmd).Success(rows, func(w io.Writer) error {
				return renderBorders(w, rows)
			})
		},
	}
}

func borderRows() []BorderRow {
	all := kval.AllBorders()
	rows := make([]BorderRow, len(all))
	for i, b := range all {
		rows[i] = BorderRow{Type: b.Type.String(), Code: int(b.Type), Null: kval.Format(b.Null)}
		if b.PosInf != nil {
			rows[i].PosInf = kval.Format(b.PosInf)
			rows[i].NegInf = kval.Format(b.NegInf)
		}
	}
	return rows
}

func renderBorders(w io.Writer, rows []BorderRow) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithAlignment([]tw.Align{tw.AlignLeft, tw.AlignRight, tw.AlignLeft, tw.AlignLeft, tw.AlignLeft}),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header([]string{"type", "code", "null", "+inf", "-inf"})

	for _, r := range rows {
		posInf, negInf := r.PosInf, r.NegInf
		if posInf == "" {
			posInf, negInf = "-", "-"
		}
		if err := table.Append([]string{r.Type, fmt.Sprint(r.Code), r.Null, posInf, negInf}); err != nil {
			return fmt.Errorf("failed to append %s row: %w", r.Type, err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render border table: %w", err)
	}
	return nil
}
