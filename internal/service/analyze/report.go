package analyze

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteReport 先输出文档总数,再输出按文档数降序的关键词表
func WriteReport(w io.Writer, tally *Tally) error {
	if _, err := fmt.Fprintf(w, "Analyzed %d job postings.\n\nTop Tech Stack Mentions:\n", tally.Total); err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Keyword", "Count", "Percent"})
	for i, f := range tally.Ranked() {
		t.AppendRow(table.Row{i + 1, f.Name, f.Count, fmt.Sprintf("%.1f%%", f.Percentage)})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}
