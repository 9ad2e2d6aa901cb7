package recommend

import "strings"

// SkillMatcher decides whether a course's covered-skill label addresses a
// gap's skill name. Pluggable so the matching strategy can be swapped
// without touching the scoring.
type SkillMatcher interface {
	Matches(courseSkill, gapSkill string) bool
}

// NameMatcher prefers an exact (case-insensitive) name match and falls
// back to substring containment in either direction, which keeps catalog
// labels like "HIPAA" matching gaps like "HIPAA Compliance".
type NameMatcher struct{}

func (NameMatcher) Matches(courseSkill, gapSkill string) bool {
	cs := strings.ToLower(strings.TrimSpace(courseSkill))
	gs := strings.ToLower(strings.TrimSpace(gapSkill))
	if cs == "" || gs == "" {
		return false
	}
	if cs == gs {
		return true
	}
	return strings.Contains(cs, gs) || strings.Contains(gs, cs)
}

var _ SkillMatcher = NameMatcher{}
