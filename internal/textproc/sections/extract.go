// Package sections splits a posting description into team introduction,
// daily requirement and core work sections.
//
// The split is a best-effort heuristic driven by an ordered list of rules.
// Every rule sees the state left by the previous ones, so the rule order
// is part of the behaviour.
package sections

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Sections are the named parts of a description. Any of them may be empty.
type Sections struct {
	TeamIntro        string
	DailyRequirement string
	CoreWork         string
}

var (
	teamIntroMarker = regexp.MustCompile(`(?i)(团队介绍|部门介绍)[:：]`)
	coreWorkMarker  = regexp.MustCompile(`(?i)(核心工作|工作内容|职位描述)[:：]?`)
	// a team introduction ends at a core work label or a line opening a numbered list
	teamIntroStop   = regexp.MustCompile(`(?im)(核心工作|工作内容|职位描述)|^[ \t]*1[.、]`)
	numberedStart   = regexp.MustCompile(`^1[.、]`)
	dailyLabel      = regexp.MustCompile(`^日常实习[:：]`)
)

const minCoreWorkLen = 10

// rule is one step of the extraction.
type rule struct {
	name  string
	apply func(s *state)
}

type state struct {
	text string
	// team introduction span: marker start, capture end. nil when absent.
	teamIntro []int
	out       Sections
}

var rules = []rule{
	{name: "team-intro", apply: teamIntroRule},
	{name: "daily-before-core-work", apply: dailyBeforeCoreWorkRule},
	{name: "core-work-explicit", apply: coreWorkExplicitRule},
	{name: "core-work-after-team-intro", apply: coreWorkAfterTeamIntroRule},
	{name: "daily-label-cleanup", apply: dailyLabelCleanupRule},
}

// Extract runs the rules over description in order. A description without any marker
// yields empty sections.
func Extract(description string) Sections {
	s := &state{text: description}
	for _, r := range rules {
		r.apply(s)
	}
	return s.out
}

func teamIntroRule(s *state) {
	loc := teamIntroMarker.FindStringIndex(s.text)
	if loc == nil {
		return
	}
	end := len(s.text)
	if stop := teamIntroStop.FindStringIndex(s.text[loc[1]:]); stop != nil {
		end = loc[1] + stop[0]
	}
	s.teamIntro = []int{loc[0], end}
	s.out.TeamIntro = strings.TrimSpace(s.text[loc[1]:end])
	s.out.DailyRequirement = strings.TrimSpace(s.text[:loc[0]])
}

func dailyBeforeCoreWorkRule(s *state) {
	if s.teamIntro != nil {
		return
	}
	if loc := coreWorkMarker.FindStringIndex(s.text); loc != nil {
		s.out.DailyRequirement = strings.TrimSpace(s.text[:loc[0]])
	}
}

func coreWorkExplicitRule(s *state) {
	loc := coreWorkMarker.FindStringIndex(s.text)
	if loc == nil {
		return
	}
	// a bare section title with no body is not core work
	candidate := strings.TrimSpace(s.text[loc[1]:])
	if utf8.RuneCountInString(candidate) > minCoreWorkLen {
		s.out.CoreWork = candidate
	}
}

func coreWorkAfterTeamIntroRule(s *state) {
	if s.out.CoreWork != "" || s.teamIntro == nil {
		return
	}
	remaining := strings.TrimSpace(s.text[s.teamIntro[1]:])
	if numberedStart.MatchString(remaining) {
		s.out.CoreWork = remaining
	}
}

func dailyLabelCleanupRule(s *state) {
	daily := strings.TrimSpace(s.out.DailyRequirement)
	s.out.DailyRequirement = strings.TrimSpace(dailyLabel.ReplaceAllString(daily, ""))
}
