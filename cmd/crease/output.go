package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/creaselab/crease/domain/content"
)

// printItems writes a fixed-width table of content items to the
// command's stdout.
func printItems(cmd *cobra.Command, items []content.Item) {
	if len(items) == 0 {
		cmd.Println("No content found.")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSOURCE\tTYPE\tTITLE\tDIFFICULTY\tTAGS")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			item.ID(),
			item.Source(),
			item.Type(),
			truncate(item.Title(), 60),
			item.Difficulty(),
			strings.Join(item.DrillTags(), ","),
		)
	}
	_ = w.Flush()
	cmd.Printf("\n%d item(s)\n", len(items))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
