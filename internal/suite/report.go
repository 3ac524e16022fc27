package suite

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bobmcallan/timcheck/internal/models"
)

// WriteReport prints the human-readable summary of a run.
func WriteReport(w io.Writer, summary *models.Summary) {
	hr := strings.Repeat("=", 60)

	fmt.Fprintf(w, "\n%s\n", hr)
	fmt.Fprintf(w, "TEST SUMMARY\n")
	fmt.Fprintf(w, "%s\n", hr)

	for _, name := range models.CheckOrder {
		status := "FAIL"
		if summary.Results[name] {
			status = "PASS"
		}
		fmt.Fprintf(w, "%s: %s\n", strings.ToUpper(name), status)
	}

	fmt.Fprintf(w, "\nOverall: %d/%d tests passed\n", summary.Passed(), summary.Total())
	if !summary.FinishedAt.IsZero() && !summary.StartedAt.IsZero() {
		fmt.Fprintf(w, "Duration: %s\n", summary.FinishedAt.Sub(summary.StartedAt).Round(time.Millisecond))
	}

	if summary.AllPassed() {
		fmt.Fprintf(w, "All tests passed! TIM Planos API is working correctly.\n")
	} else {
		fmt.Fprintf(w, "Some tests failed. Check the details above.\n")
	}
}
