// Package htmltext converts the rich-text fields of a posting (an HTML
// fragment or plain text with line breaks) into plain hierarchical text.
package htmltext

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Converter turns rich text into plain text.
type Converter interface {
	Convert(html string) (string, error)
}

type converter struct{}

// NewConverter returns the goquery-backed converter.
func NewConverter() Converter {
	return converter{}
}

// Convert renders headings as "#"-prefixed lines, ordered list items as
// "N. ", unordered items as "- ", and block elements as line breaks. Inline
// formatting is dropped.
func (converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse rich text: %w", err)
	}

	var w writer
	walk(&w, doc.Find("body"))
	return cleanLines(w.String()), nil
}

type writer struct {
	strings.Builder
}

var textReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n", "\u00a0", " ", "\t", " ")

func (w *writer) text(s string) {
	s = textReplacer.Replace(s)
	if strings.TrimSpace(s) == "" {
		// layout whitespace between tags
		if strings.Contains(s, "\n") {
			w.newline()
		} else if s != "" {
			w.WriteByte(' ')
		}
		return
	}
	w.WriteString(s)
}

// newline makes sure the next write starts on a fresh line.
func (w *writer) newline() {
	s := w.String()
	if s == "" || strings.HasSuffix(s, "\n") {
		return
	}
	w.WriteByte('\n')
}

func (w *writer) blankLine() {
	w.newline()
	if s := w.String(); s != "" && !strings.HasSuffix(s, "\n\n") {
		w.WriteByte('\n')
	}
}

func walk(w *writer, sel *goquery.Selection) {
	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		switch name := goquery.NodeName(s); name {
		case "#text":
			w.text(s.Text())
		case "#comment", "script", "style", "head", "noscript":
		case "br":
			w.WriteByte('\n')
		case "h1", "h2", "h3", "h4", "h5", "h6":
			level, _ := strconv.Atoi(name[1:])
			w.blankLine()
			w.WriteString(strings.Repeat("#", level) + " ")
			walk(w, s)
			w.blankLine()
		case "p":
			w.blankLine()
			walk(w, s)
			w.blankLine()
		case "div", "section", "article", "blockquote", "table", "tr":
			w.newline()
			walk(w, s)
			w.newline()
		case "ol", "ul":
			w.newline()
			walkList(w, s, name == "ol")
			w.newline()
		case "li":
			w.newline()
			w.WriteString("- ")
			walk(w, s)
			w.newline()
		default:
			walk(w, s)
		}
	})
}

func walkList(w *writer, list *goquery.Selection, ordered bool) {
	n := 0
	list.Contents().Each(func(_ int, s *goquery.Selection) {
		switch goquery.NodeName(s) {
		case "li":
		case "#text":
			if strings.TrimSpace(s.Text()) != "" {
				w.text(s.Text())
			}
			return
		default:
			walk(w, s)
			return
		}
		n++
		w.newline()
		if ordered {
			w.WriteString(strconv.Itoa(n) + ". ")
		} else {
			w.WriteString("- ")
		}
		walk(w, s)
		w.newline()
	})
}

// cleanLines trims every line, collapses runs of spaces and keeps at most
// one blank line between content lines.
func cleanLines(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			if !blank && len(cleaned) > 0 {
				cleaned = append(cleaned, "")
			}
			blank = true
			continue
		}
		blank = false
		cleaned = append(cleaned, line)
	}
	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
