package recommend

import (
	"fmt"
	"sort"

	"med-ready/internal/domain/gap"
)

const pathwayWeeksPerSkill = 4

// PathwayItem is one skill slotted into the sequential pathway, carrying
// only its single best course.
type PathwayItem struct {
	Skill    string
	Courses  []ScoredCourse
	Timeline string
	Priority string
}

type TimelineEntry struct {
	Week         string
	Focus        string
	Action       string
	Deliverables []string
	Priority     string
}

type Pathway struct {
	Foundation    []PathwayItem
	Core          []PathwayItem
	Advanced      []PathwayItem
	Timeline      []TimelineEntry
	TotalDuration string
}

type QuickStart struct {
	Skill      string
	Course     string
	MatchScore int
}

type Summary struct {
	TotalCoursesRecommended int
	CriticalSkillsToAddress int
	EstimatedTotalCost      float64
	FreeCourses             int
	PaidCourses             int
	QuickStart              []QuickStart
}

type Result struct {
	Recommendations []SkillRecommendation
	LearningPathway Pathway
	Summary         Summary
}

// Build scores the whole catalog against every gap and assembles the
// recommendation set, the sequential pathway, and the summary rollup.
func Build(gaps []gap.Record, catalog []Course, matcher SkillMatcher, durations PhaseDurations) Result {
	recs := make([]SkillRecommendation, 0, len(gaps))
	for _, g := range gaps {
		courses := FindCoursesForSkill(catalog, g, matcher)
		if len(courses) == 0 {
			continue
		}
		recs = append(recs, SkillRecommendation{
			Skill:         g.SkillName,
			SkillID:       g.SkillID,
			Category:      g.Category,
			GapSeverity:   g.Severity,
			CurrentLevel:  g.CurrentLevel,
			RequiredLevel: g.RequiredLevel,
			GapPercentage: g.GapPercentage,
			Courses:       courses,
			LearningPath:  SkillLearningPath(g, durations),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return gap.SeverityRank(recs[i].GapSeverity) > gap.SeverityRank(recs[j].GapSeverity)
	})

	return Result{
		Recommendations: recs,
		LearningPathway: buildPathway(recs),
		Summary:         buildSummary(recs),
	}
}

func buildPathway(recs []SkillRecommendation) Pathway {
	p := Pathway{
		Foundation: []PathwayItem{},
		Core:       []PathwayItem{},
		Advanced:   []PathwayItem{},
		Timeline:   []TimelineEntry{},
	}

	for _, rec := range recs {
		item := PathwayItem{
			Skill:   rec.Skill,
			Courses: rec.Courses[:1],
		}
		switch rec.GapSeverity {
		case gap.SeverityCritical:
			item.Timeline = "Weeks 1-4"
			item.Priority = "Critical"
			p.Foundation = append(p.Foundation, item)
		case gap.SeverityHigh:
			item.Timeline = "Weeks 5-8"
			item.Priority = "High"
			p.Core = append(p.Core, item)
		default:
			item.Timeline = "Weeks 9-12"
			item.Priority = "Medium"
			p.Advanced = append(p.Advanced, item)
		}
	}

	week := 1
	appendEntries := func(items []PathwayItem, focus string, deliverables []string) {
		for _, item := range items {
			action := "Complete recommended course"
			if len(item.Courses) > 0 {
				action = "Complete " + item.Courses[0].Title
			}
			p.Timeline = append(p.Timeline, TimelineEntry{
				Week:         fmt.Sprintf("Week %d-%d", week, week+pathwayWeeksPerSkill-1),
				Focus:        fmt.Sprintf("%s: %s", focus, item.Skill),
				Action:       action,
				Deliverables: deliverables,
				Priority:     item.Priority,
			})
			week += pathwayWeeksPerSkill
		}
	}

	appendEntries(p.Foundation, "Foundation", []string{"Basic understanding", "Practice exercises", "Initial project"})
	appendEntries(p.Core, "Core", []string{"Project implementation", "Case study", "Peer review"})
	appendEntries(p.Advanced, "Advanced", []string{"Certification", "Portfolio project", "Documentation"})

	p.TotalDuration = fmt.Sprintf("%d weeks", week-1)
	return p
}

func buildSummary(recs []SkillRecommendation) Summary {
	s := Summary{QuickStart: []QuickStart{}}

	for _, rec := range recs {
		s.TotalCoursesRecommended += len(rec.Courses)
		if rec.GapSeverity == gap.SeverityCritical {
			s.CriticalSkillsToAddress++
			if len(s.QuickStart) < 2 && len(rec.Courses) > 0 {
				s.QuickStart = append(s.QuickStart, QuickStart{
					Skill:      rec.Skill,
					Course:     rec.Courses[0].Title,
					MatchScore: rec.Courses[0].MatchScore,
				})
			}
		}
		for _, c := range rec.Courses {
			s.EstimatedTotalCost += c.Cost
			if c.Cost == 0 {
				s.FreeCourses++
			}
		}
	}

	s.PaidCourses = s.TotalCoursesRecommended - s.FreeCourses
	return s
}
