package sweep

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteTable prints one row per cell.
func WriteTable(w io.Writer, res Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "sparsity\tdims\ttrials\tdollar of mexico\tcurrency of usa\t")
	for _, c := range res.Cells {
		fmt.Fprintf(tw, "%g\t%d\t%d\t%.3f\t%.3f\t\n", c.Sparsity, c.Dims, c.Trials, c.DollarOfMexico, c.CurrencyOfUSA)
	}
	return tw.Flush()
}

// WriteFidelity prints one row per bundle size.
func WriteFidelity(w io.Writer, pts []FidelityPoint) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "bundle size\tqueries\tcorrect\taccuracy\t")
	for _, p := range pts {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.3f\t\n", p.BundleSize, p.Queries, p.Correct, p.Accuracy)
	}
	return tw.Flush()
}

// WriteAnswers prints demo answers, one per line.
func WriteAnswers(w io.Writer, answers []Answer) error {
	for _, a := range answers {
		sym := a.Symbol
		if !a.Found {
			sym = "<none>"
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", a.Question, sym); err != nil {
			return err
		}
	}
	return nil
}
