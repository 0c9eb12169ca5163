package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/spaghettifunk/gles3/gles"
	"github.com/spaghettifunk/gles3/testbed"
)

type row struct {
	name     string
	loaded   bool
	addr     uintptr
	resolved string
}

// collect builds one row per entry. The name the address was found under
// is recovered by asking lookup again, in candidate order.
func collect(entries []gles.Entry, lookup gles.LookupFunc, missingOnly bool) []row {
	var rows []row
	for _, e := range entries {
		if missingOnly && e.IsLoaded() {
			continue
		}
		r := row{name: e.Name(), loaded: e.IsLoaded(), addr: e.Addr()}
		if r.loaded {
			for _, candidate := range e.Names() {
				if uintptr(lookup(candidate)) == r.addr {
					r.resolved = candidate
					break
				}
			}
		}
		rows = append(rows, r)
	}
	return rows
}

func renderTable(w io.Writer, rows []row) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Entry point", "Loaded", "Address", "Resolved as"})
	table.SetAutoWrapText(false)
	for _, r := range rows {
		loaded, addr := "no", "-"
		if r.loaded {
			loaded, addr = "yes", fmt.Sprintf("%#x", r.addr)
		}
		resolved := r.resolved
		if resolved == r.name {
			resolved = ""
		}
		table.Append([]string{r.name, loaded, addr, resolved})
	}
	table.Render()
}

func printReport(w io.Writer, r *testbed.Report) {
	fmt.Fprintf(w, "Vendor:   %s\n", r.Vendor)
	fmt.Fprintf(w, "Renderer: %s\n", r.Renderer)
	fmt.Fprintf(w, "Version:  %s\n", r.Version)
	fmt.Fprintf(w, "GLSL:     %s\n", r.ShadingLanguage)
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "Errors:   %v\n", r.Errors)
	}
	fmt.Fprintln(w)
}

func printSummary(w io.Writer, stats gles.LoadStats, total, missing int) {
	fmt.Fprintf(w, "\n%d of %d entry points loaded, %d through vendor aliases\n",
		total-missing, total, stats.FallbackHits)
	fmt.Fprintf(w, "%d lookups, %d rejected\n", stats.Lookups, stats.Rejected)
}
