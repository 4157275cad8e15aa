package analyze

import (
	"slices"
	"strings"
)

// Document 语料中的一篇文档
type Document struct {
	Name    string
	Content string
}

// Frequency 排名中的一项
type Frequency struct {
	Name       string
	Count      int
	Percentage float64
}

// Tally 每个归并后的关键词被多少篇文档提到
type Tally struct {
	Total  int
	counts map[string]int
	// 归并名称按关键词列表中首次出现的顺序
	order []string
}

func (t *Tally) Count(name string) int {
	return t.counts[name]
}

// Ranked 只返回出现过的关键词,按文档数降序,相同时保持关键词列表顺序
func (t *Tally) Ranked() []Frequency {
	ranked := make([]Frequency, 0, len(t.order))
	for _, name := range t.order {
		count := t.counts[name]
		if count == 0 {
			continue
		}
		f := Frequency{Name: name, Count: count}
		if t.Total > 0 {
			f.Percentage = float64(count) / float64(t.Total) * 100
		}
		ranked = append(ranked, f)
	}
	slices.SortStableFunc(ranked, func(a, b Frequency) int {
		return b.Count - a.Count
	})
	return ranked
}

type Aggregator struct {
	matchers []matcher
	order    []string
}

func NewAggregator(keywords []Keyword) (*Aggregator, error) {
	a := &Aggregator{}
	for _, k := range keywords {
		m, err := compile(k)
		if err != nil {
			return nil, err
		}
		a.matchers = append(a.matchers, m)
		if !slices.Contains(a.order, m.canonical) {
			a.order = append(a.order, m.canonical)
		}
	}
	return a, nil
}

// Aggregate 一篇文档对每个归并名称最多计一次
func (a *Aggregator) Aggregate(docs []Document) *Tally {
	t := &Tally{
		Total:  len(docs),
		counts: make(map[string]int, len(a.order)),
		order:  a.order,
	}
	for _, doc := range docs {
		lower := strings.ToLower(doc.Content)
		seen := make(map[string]bool, len(a.order))
		for _, m := range a.matchers {
			if seen[m.canonical] || !m.match(lower) {
				continue
			}
			seen[m.canonical] = true
			t.counts[m.canonical]++
		}
	}
	return t
}

var defaultAggregator = mustAggregator(DefaultKeywords)

func mustAggregator(keywords []Keyword) *Aggregator {
	a, err := NewAggregator(keywords)
	if err != nil {
		panic(err)
	}
	return a
}

// Aggregate 使用DefaultKeywords统计
func Aggregate(docs []Document) *Tally {
	return defaultAggregator.Aggregate(docs)
}
