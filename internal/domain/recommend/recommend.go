package recommend

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"med-ready/internal/domain/gap"
	"med-ready/internal/domain/proficiency"

	"github.com/google/uuid"
)

const (
	CoverageNone          = "none"
	CoverageBasic         = "basic"
	CoverageIntermediate  = "intermediate"
	CoverageAdvanced      = "advanced"
	CoverageComprehensive = "comprehensive"
)

const (
	coursesPerSkill    = 3
	fallbackCatalogCap = 5
	defaultHours       = 10
	hoursPerWeek       = 10
	hoursPerMonth      = 40
)

// Course is an immutable catalog entry, consumed but never owned here.
type Course struct {
	ID            uuid.UUID
	Title         string
	Description   string
	Provider      string
	URL           string
	Specialty     string
	SkillsCovered []string
	Duration      string // free text, e.g. "4 weeks", "40 hours"
	Difficulty    string
	Cost          float64
}

// ScoredCourse is a catalog entry scored against one specific gap.
type ScoredCourse struct {
	Course
	Coverage       string
	MatchScore     int
	WhyRecommended []string
}

// PhaseDurations holds the hand-tuned per-skill phase spans. They are
// configuration, deliberately independent of the weekly schedule lengths.
type PhaseDurations struct {
	Foundation string
	Practice   string
	Mastery    string
}

func DefaultPhaseDurations() PhaseDurations {
	return PhaseDurations{
		Foundation: "2-4 weeks",
		Practice:   "3-6 weeks",
		Mastery:    "4-8 weeks",
	}
}

// PathPhase is one stage of a per-skill learning path.
type PathPhase struct {
	Phase         string
	Actions       []string
	EstimatedTime string
	Deliverables  []string
}

// SkillRecommendation bundles the scored courses and learning path for
// one gap.
type SkillRecommendation struct {
	Skill         string
	SkillID       uuid.UUID
	Category      string
	GapSeverity   string
	CurrentLevel  string
	RequiredLevel string
	GapPercentage int
	Courses       []ScoredCourse
	LearningPath  []PathPhase
}

// FindCoursesForSkill filters the catalog to courses addressing the gap,
// scores them, and keeps the top entries. When nothing matches it falls
// back to broadly relevant courses so a gap is never left empty-handed
// while the catalog has anything at all.
func FindCoursesForSkill(catalog []Course, g gap.Record, matcher SkillMatcher) []ScoredCourse {
	if matcher == nil {
		matcher = NameMatcher{}
	}

	relevant := make([]Course, 0, len(catalog))
	for _, c := range catalog {
		if courseCoversSkill(c, g.SkillName, matcher) {
			relevant = append(relevant, c)
		}
	}

	if len(relevant) == 0 {
		for _, c := range catalog {
			if c.Specialty == "General" || c.Specialty != "" {
				relevant = append(relevant, c)
			}
			if len(relevant) == fallbackCatalogCap {
				break
			}
		}
	}

	scored := make([]ScoredCourse, 0, len(relevant))
	for _, c := range relevant {
		score := MatchScore(c, g, matcher)
		if score <= 0 {
			continue
		}
		scored = append(scored, ScoredCourse{
			Course:         c,
			Coverage:       CoverageFor(c, g, matcher),
			MatchScore:     score,
			WhyRecommended: WhyRecommended(c, g, score),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	if len(scored) > coursesPerSkill {
		scored = scored[:coursesPerSkill]
	}
	return scored
}

func courseCoversSkill(c Course, skillName string, matcher SkillMatcher) bool {
	for _, covered := range c.SkillsCovered {
		if matcher.Matches(covered, skillName) {
			return true
		}
	}
	return false
}

// CoverageFor grades how thoroughly a course addresses the gap, from the
// skill/category match and the severity-vs-difficulty pairing.
func CoverageFor(c Course, g gap.Record, matcher SkillMatcher) string {
	if len(c.SkillsCovered) == 0 {
		return CoverageBasic
	}

	if !courseCoversSkill(c, g.SkillName, matcher) {
		if c.Specialty != "" && g.Category != "" &&
			strings.Contains(strings.ToLower(c.Specialty), strings.ToLower(g.Category)) {
			return CoverageBasic
		}
		return CoverageNone
	}

	switch {
	case g.Severity == gap.SeverityCritical && c.Difficulty == "advanced":
		return CoverageComprehensive
	case g.Severity == gap.SeverityHigh && (c.Difficulty == "advanced" || c.Difficulty == "intermediate"):
		return CoverageAdvanced
	case g.Severity == gap.SeverityMedium:
		if c.Difficulty == "advanced" {
			return CoverageAdvanced
		}
		return CoverageIntermediate
	default:
		return CoverageBasic
	}
}

func coverageValue(coverage string) float64 {
	switch coverage {
	case CoverageComprehensive:
		return 100
	case CoverageAdvanced:
		return 75
	case CoverageIntermediate:
		return 50
	case CoverageBasic:
		return 25
	default:
		return 0
	}
}

// MatchScore is the weighted five-factor course score, 0-100.
func MatchScore(c Course, g gap.Record, matcher SkillMatcher) int {
	if matcher == nil {
		matcher = NameMatcher{}
	}
	score := 0.0

	// Gap coverage (40%).
	score += coverageValue(CoverageFor(c, g, matcher)) * 0.4

	// Learning-style fit (20%). No personalization signal exists yet, so
	// every course gets the same default fit.
	score += 80 * 0.2

	// Time efficiency (15%).
	hours := ParseDurationHours(c.Duration)
	timeScore := 50.0
	if hours > 0 {
		timeScore = math.Max(0, 100-float64(hours)*2)
	}
	score += timeScore * 0.15

	// Cost effectiveness (15%).
	costScore := 100.0
	if c.Cost != 0 {
		costScore = math.Max(0, 100-c.Cost/10)
	}
	score += costScore * 0.15

	// Breadth bonus (10%).
	n := len(c.SkillsCovered)
	if n == 0 {
		n = 1
	}
	score += math.Min(float64(n-1)*10, 100) * 0.1

	return int(math.Round(score))
}

// ParseDurationHours converts free-text catalog durations into estimated
// study hours. "4 weeks" -> 40, "40 hours" -> 40, "2 months" -> 80.
func ParseDurationHours(duration string) int {
	d := strings.ToLower(duration)
	switch {
	case strings.Contains(d, "week"):
		return leadingInt(d, 1) * hoursPerWeek
	case strings.Contains(d, "hour"):
		return leadingInt(d, defaultHours)
	case strings.Contains(d, "month"):
		return leadingInt(d, 1) * hoursPerMonth
	default:
		return defaultHours
	}
}

func leadingInt(s string, fallback int) int {
	i := 0
	for i < len(s) && (s[i] < '0' || s[i] > '9') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if i == j {
		return fallback
	}
	n, err := strconv.Atoi(s[i:j])
	if err != nil || n == 0 {
		return fallback
	}
	return n
}

// WhyRecommended builds the reason list shown next to each course. Never
// empty: a generic reason stands in when nothing specific applies.
func WhyRecommended(c Course, g gap.Record, matchScore int) []string {
	reasons := make([]string, 0, 4)

	if g.Severity == gap.SeverityCritical {
		reasons = append(reasons, fmt.Sprintf("Essential for %s - critical gap identified", g.SkillName))
	}
	if matchScore >= 80 {
		reasons = append(reasons, "Highly relevant to your skill gap")
	}
	if c.Cost == 0 {
		reasons = append(reasons, "Free access - no cost barrier")
	}
	if len(c.SkillsCovered) > 1 {
		reasons = append(reasons, fmt.Sprintf("Covers %d skills including %s", len(c.SkillsCovered), g.SkillName))
	}
	if c.Difficulty == g.RequiredLevel ||
		(g.RequiredLevel == proficiency.LevelExpert && c.Difficulty == "advanced") {
		reasons = append(reasons, "Matches your required proficiency level")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Recommended based on your skill gap analysis")
	}
	return reasons
}

// SkillLearningPath lays out the study phases for one gap. Foundation is
// prepended for severe gaps and Mastery appended when the role demands
// advanced proficiency.
func SkillLearningPath(g gap.Record, durations PhaseDurations) []PathPhase {
	path := make([]PathPhase, 0, 3)

	if g.Severity == gap.SeverityCritical || g.Severity == gap.SeverityHigh {
		path = append(path, PathPhase{
			Phase: "Foundation",
			Actions: []string{
				"Take introductory course on " + g.SkillName,
				"Read basic documentation and guides",
				"Complete practice exercises",
				"Join healthcare community forums",
			},
			EstimatedTime: durations.Foundation,
			Deliverables:  []string{"Basic understanding", "Initial practice", "Community engagement"},
		})
	}

	path = append(path, PathPhase{
		Phase: "Practice",
		Actions: []string{
			"Work on mini-projects related to " + g.SkillName,
			"Complete case studies",
			"Participate in simulations",
			"Get feedback from peers or mentors",
		},
		EstimatedTime: durations.Practice,
		Deliverables:  []string{"Project implementation", "Case study completion", "Peer review"},
	})

	if g.RequiredLevel == proficiency.LevelExpert || g.RequiredLevel == proficiency.LevelAdvanced ||
		g.Severity == gap.SeverityCritical {
		path = append(path, PathPhase{
			Phase: "Mastery",
			Actions: []string{
				"Complete certification in " + g.SkillName,
				"Contribute to open source healthcare projects",
				"Mentor others in this skill",
				"Publish case study or documentation",
			},
			EstimatedTime: durations.Mastery,
			Deliverables:  []string{"Certification", "Portfolio project", "Documentation"},
		})
	}

	return path
}
