package output

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/ukaji3/faresnap-go/pkg/faresnap/models"
)

// tableHeader lists the columns shared by the text table and the xlsx export.
var tableHeader = []string{"Snap Date", "TY", "LY", "Diff", "Trend", "Mean", "Std", "Upper", "Lower"}

// WriteTable writes report as an aligned text table. Absent rolling values print as "-".
func WriteTable(w io.Writer, report *models.Report) error {
	fmt.Fprintf(w, "%s: %s to %s, %s (window %d)\n",
		report.Family.Label(), report.Key.FromCity, report.Key.ToCity, report.Key.Month, report.Window)
	if report.Pair != nil && report.Pair.Reference != nil {
		fmt.Fprintf(w, "Last year actual: %s\n", formatFloat(*report.Pair.Reference))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i, h := range tableHeader {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, h)
	}
	fmt.Fprintln(tw, "\t")

	for _, r := range report.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Date,
			formatFloat(r.TY),
			formatFloat(r.LY),
			formatFloat(r.Difference),
			r.Trend.Symbol(),
			formatOptional(r.Mean),
			formatOptional(r.Std),
			formatOptional(r.Upper),
			formatOptional(r.Lower),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := report.Summary
	_, err := fmt.Fprintf(w, "Up %d, Down %d, Flat %d; mean difference %s; latest %s\n",
		s.Up, s.Down, s.Flat, formatFloat(s.MeanDifference), s.Latest.Symbol())
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return "-"
	}
	return formatFloat(*v)
}
