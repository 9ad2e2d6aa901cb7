package gap

import (
	"fmt"
	"math"
	"sort"

	"med-ready/internal/domain/proficiency"

	"github.com/google/uuid"
)

const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

const defaultImportance = 5

// Requirement is a role's demand for a single skill, already resolved
// against the skill catalog. Dangling references never reach the analyzer.
type Requirement struct {
	SkillID       uuid.UUID
	SkillName     string
	Category      string
	RequiredLevel string
	Importance    int // 1-10
}

// UserSkill is the user's current standing in one skill.
type UserSkill struct {
	SkillID uuid.UUID
	Level   string
}

// Record is one computed skill gap. Derived per analysis run, never persisted.
type Record struct {
	SkillID       uuid.UUID
	SkillName     string
	Category      string
	CurrentLevel  string
	RequiredLevel string
	GapScore      int
	GapPercentage int
	Importance    float64 // normalized to 0-1
	Priority      float64
	Severity      string
}

type CategoryStats struct {
	TotalGaps            int
	CriticalGaps         int
	AverageGapPercentage int
}

type TimeEstimate struct {
	TotalHours int
	Weeks      int
	Months     int
	Timeline   string
}

type QuickWin struct {
	SkillName     string
	CurrentLevel  string
	RequiredLevel string
	EstimatedTime string
}

type FocusArea struct {
	Category  string
	Priority  string
	GapsCount int
	Message   string
}

type Summary struct {
	Message       string
	TopPriorities []string
	EstimatedTime TimeEstimate
	QuickWins     []QuickWin
	FocusAreas    []FocusArea
}

type Analysis struct {
	ReadinessScore int
	TotalGaps      int
	CriticalGaps   int
	HighGaps       int
	MediumGaps     int
	LowGaps        int
	Gaps           []Record
	GapsByCategory map[string]CategoryStats
	Summary        Summary
}

// Analyze compares the user's skills against a role's requirements and
// produces the full gap analysis. Pure: same inputs, same output.
func Analyze(reqs []Requirement, userSkills []UserSkill, roleTitle string) Analysis {
	userBySkillID := make(map[uuid.UUID]UserSkill, len(userSkills))
	for _, us := range userSkills {
		if us.SkillID == uuid.Nil {
			continue
		}
		userBySkillID[us.SkillID] = us
	}

	gaps := make([]Record, 0, len(reqs))
	var requiredAccum float64
	var currentAccum float64

	for _, r := range reqs {
		if r.SkillID == uuid.Nil {
			continue
		}

		currentLevel := proficiency.LevelNone
		if us, ok := userBySkillID[r.SkillID]; ok && us.Level != "" {
			currentLevel = us.Level
		}
		currentScore := proficiency.Score(currentLevel, 0)

		requiredLevel := r.RequiredLevel
		if requiredLevel == "" {
			requiredLevel = proficiency.LevelIntermediate
		}
		requiredScore := proficiency.Score(requiredLevel, proficiency.IntermediateScore)

		gapScore := requiredScore - currentScore
		if gapScore < 0 {
			gapScore = 0
		}

		gapPct := 0.0
		if requiredScore > 0 {
			gapPct = float64(gapScore) / float64(requiredScore) * 100
		}

		importance := r.Importance
		if importance <= 0 {
			importance = defaultImportance
		}
		normImportance := float64(importance) / 10

		category := r.Category
		if category == "" {
			category = "General"
		}

		gaps = append(gaps, Record{
			SkillID:       r.SkillID,
			SkillName:     r.SkillName,
			Category:      category,
			CurrentLevel:  currentLevel,
			RequiredLevel: requiredLevel,
			GapScore:      gapScore,
			GapPercentage: int(math.Round(gapPct)),
			Importance:    normImportance,
			Priority:      math.Round(normImportance*float64(gapScore)*100) / 100,
			Severity:      SeverityFor(gapPct),
		})

		// Exceeding a requirement counts as meeting it, keeping the
		// readiness ratio inside [0,100].
		credited := currentScore
		if credited > requiredScore {
			credited = requiredScore
		}
		requiredAccum += float64(requiredScore) * normImportance
		currentAccum += float64(credited) * normImportance
	}

	readiness := 0
	if requiredAccum > 0 {
		readiness = int(math.Round(currentAccum / requiredAccum * 100))
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Priority > gaps[j].Priority
	})

	byCategory := groupByCategory(gaps)

	a := Analysis{
		ReadinessScore: readiness,
		TotalGaps:      len(gaps),
		Gaps:           gaps,
		GapsByCategory: byCategory,
		Summary:        buildSummary(gaps, byCategory, readiness, roleTitle),
	}
	for _, g := range gaps {
		switch g.Severity {
		case SeverityCritical:
			a.CriticalGaps++
		case SeverityHigh:
			a.HighGaps++
		case SeverityMedium:
			a.MediumGaps++
		case SeverityLow:
			a.LowGaps++
		}
	}
	return a
}

// SeverityFor classifies a gap percentage.
func SeverityFor(gapPercentage float64) string {
	switch {
	case gapPercentage >= 80:
		return SeverityCritical
	case gapPercentage >= 50:
		return SeverityHigh
	case gapPercentage >= 30:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// SeverityRank orders severities for sorting; higher is more severe.
func SeverityRank(severity string) int {
	switch severity {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

func groupByCategory(gaps []Record) map[string]CategoryStats {
	totals := make(map[string]int)
	sums := make(map[string]int)
	criticals := make(map[string]int)

	for _, g := range gaps {
		totals[g.Category]++
		sums[g.Category] += g.GapPercentage
		if g.Severity == SeverityCritical {
			criticals[g.Category]++
		}
	}

	out := make(map[string]CategoryStats, len(totals))
	for cat, n := range totals {
		out[cat] = CategoryStats{
			TotalGaps:            n,
			CriticalGaps:         criticals[cat],
			AverageGapPercentage: int(math.Round(float64(sums[cat]) / float64(n))),
		}
	}
	return out
}

// EstimateLearningTime sums severity-based base hours weighted by
// importance, assuming a 10 hrs/week study pace.
func EstimateLearningTime(gaps []Record) TimeEstimate {
	var totalHours float64
	for _, g := range gaps {
		hours := 20.0
		switch g.Severity {
		case SeverityCritical:
			hours = 40
		case SeverityHigh:
			hours = 30
		case SeverityMedium:
			hours = 20
		case SeverityLow:
			hours = 10
		}
		totalHours += hours * (1 + g.Importance)
	}

	weeks := int(math.Ceil(totalHours / 10))
	months := int(math.Ceil(float64(weeks) / 4))

	timeline := fmt.Sprintf("%d weeks at 10 hrs/week", weeks)
	if weeks > 4 {
		timeline = fmt.Sprintf("%d months at 10 hrs/week", months)
	}

	return TimeEstimate{
		TotalHours: int(math.Round(totalHours)),
		Weeks:      weeks,
		Months:     months,
		Timeline:   timeline,
	}
}

func buildSummary(gaps []Record, byCategory map[string]CategoryStats, readiness int, roleTitle string) Summary {
	topPriorities := make([]string, 0, 3)
	for _, g := range gaps {
		if g.Severity == SeverityCritical && len(topPriorities) < 3 {
			topPriorities = append(topPriorities, g.SkillName)
		}
	}
	if len(topPriorities) == 0 {
		for _, g := range gaps {
			if g.Priority > 2 && len(topPriorities) < 3 {
				topPriorities = append(topPriorities, g.SkillName)
			}
		}
	}

	quickWins := make([]QuickWin, 0, 2)
	for _, g := range gaps {
		if g.Severity != SeverityLow || g.GapScore > 1 {
			continue
		}
		quickWins = append(quickWins, QuickWin{
			SkillName:     g.SkillName,
			CurrentLevel:  g.CurrentLevel,
			RequiredLevel: g.RequiredLevel,
			EstimatedTime: "1-2 weeks",
		})
		if len(quickWins) == 2 {
			break
		}
	}

	title := roleTitle
	if title == "" {
		title = "this role"
	}
	message := fmt.Sprintf("You're %d%% ready for %s.", readiness, title)
	switch {
	case readiness >= 80:
		message += " You're well-prepared! Focus on advanced skills."
	case readiness >= 60:
		message += " You're on track. Address critical gaps to accelerate your readiness."
	case readiness >= 40:
		message += " You have a solid foundation. Focus on core competencies."
	default:
		message += " Build foundational skills first, then progress to advanced topics."
	}

	return Summary{
		Message:       message,
		TopPriorities: topPriorities,
		EstimatedTime: EstimateLearningTime(gaps),
		QuickWins:     quickWins,
		FocusAreas:    identifyFocusAreas(byCategory),
	}
}

func identifyFocusAreas(byCategory map[string]CategoryStats) []FocusArea {
	areas := make([]FocusArea, 0, len(byCategory))
	for cat, stats := range byCategory {
		if stats.CriticalGaps == 0 && stats.AverageGapPercentage <= 60 {
			continue
		}
		priority := "medium"
		if stats.CriticalGaps > 0 {
			priority = "high"
		}
		areas = append(areas, FocusArea{
			Category:  cat,
			Priority:  priority,
			GapsCount: stats.TotalGaps,
			Message:   fmt.Sprintf("Focus on %s skills - %d critical gaps identified", cat, stats.CriticalGaps),
		})
	}

	sort.SliceStable(areas, func(i, j int) bool {
		if (areas[i].Priority == "high") != (areas[j].Priority == "high") {
			return areas[i].Priority == "high"
		}
		if areas[i].GapsCount != areas[j].GapsCount {
			return areas[i].GapsCount > areas[j].GapsCount
		}
		return areas[i].Category < areas[j].Category
	})
	return areas
}
