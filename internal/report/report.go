// Package report renders simulation results as plain-text tables.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"github.com/mmynk/contacttrace/internal/models"
)

// Options controls rendering.
type Options struct {
	// Color highlights verdicts with terminal colours.
	Color bool
}

// Contacts writes the contact set of one person, one anonymous id per line.
func Contacts(w io.Writer, summary models.ContactSummary) error {
	if _, err := fmt.Fprintf(w, "%s has been in contact with the following anonymous codes:\n", summary.Person); err != nil {
		return err
	}
	if len(summary.Contacts) == 0 {
		_, err := fmt.Fprintln(w, "  (none)")
		return err
	}
	for _, id := range summary.Contacts {
		if _, err := fmt.Fprintf(w, "  %s\n", id); err != nil {
			return err
		}
	}
	return nil
}

// Verdicts writes one row per person with the isolation decision.
func Verdicts(w io.Writer, verdicts []models.Verdict, opts Options) error {
	// tablewriter drops write errors, so render into memory first.
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Person", "Email", "Anonymous ID", "Contacts", "Exposures", "Verdict"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, v := range verdicts {
		table.Append([]string{
			v.Person,
			v.Email,
			v.AnonymousID,
			strconv.Itoa(v.ContactCount),
			strconv.Itoa(len(v.Exposures)),
			verdictText(v.Isolate, opts.Color),
		})
	}
	table.Render()

	_, err := buf.WriteTo(w)
	return err
}

func verdictText(isolate, colored bool) string {
	text := "does NOT need to self isolate"
	if isolate {
		text = "needs to self isolate"
	}
	if !colored {
		return text
	}
	if isolate {
		return color.Red.Sprint(text)
	}
	return color.Green.Sprint(text)
}

// Summary returns a one-line count of the verdicts.
func Summary(verdicts []models.Verdict) string {
	var isolating []string
	for _, v := range verdicts {
		if v.Isolate {
			isolating = append(isolating, v.Person)
		}
	}
	if len(isolating) == 0 {
		return fmt.Sprintf("0 of %d people need to self isolate", len(verdicts))
	}
	return fmt.Sprintf("%d of %d people need to self isolate: %s",
		len(isolating), len(verdicts), strings.Join(isolating, ", "))
}
