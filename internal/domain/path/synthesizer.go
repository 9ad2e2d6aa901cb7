package path

import (
	"fmt"
	"strings"
	"time"

	"med-ready/internal/domain/gap"
	"med-ready/internal/domain/recommend"

	"github.com/google/uuid"
)

const (
	TimelineFast          = "fast"
	TimelineBalanced      = "balanced"
	TimelineComprehensive = "comprehensive"
)

const weeklyStudyHours = 10

// Phase is one stage of the synthesized path, grouping skills of similar
// gap severity with their top courses.
type Phase struct {
	Title       string
	Description string
	Skills      []PhaseSkill
	Courses     []recommend.ScoredCourse
	Timeline    string
	Priority    string
}

type PhaseSkill struct {
	Name          string
	CurrentLevel  string
	RequiredLevel string
	GapPercentage int
}

type WeekEntry struct {
	Week           int
	Phase          string
	Focus          string
	Action         string
	Deliverables   []string
	Resources      []recommend.ScoredCourse
	EstimatedHours int
	Priority       string
}

type Milestone struct {
	Name         string
	Date         string
	Criteria     []string
	SkillsCount  int
	CoursesCount int
}

type ResourceSkill struct {
	Name         string
	Severity     string
	LearningPath []recommend.PathPhase
}

type Resources struct {
	Courses        []recommend.ScoredCourse
	Skills         []ResourceSkill
	TotalResources int
}

type PathSummary struct {
	TotalWeeks    int
	TotalCourses  int
	EstimatedCost float64
	FocusAreas    []gap.FocusArea
}

type LearningPath struct {
	UserID              uuid.UUID
	TargetRoleID        uuid.UUID
	GeneratedAt         time.Time
	ReadinessScore      int
	Timeline            string
	EstimatedCompletion string
	Phases              []Phase
	WeeklyPlan          []WeekEntry
	Milestones          []Milestone
	Resources           Resources
	Summary             PathSummary
}

// NormalizeTimeline coerces unknown preferences to the balanced default.
func NormalizeTimeline(timeline string) string {
	switch timeline {
	case TimelineFast, TimelineComprehensive:
		return timeline
	default:
		return TimelineBalanced
	}
}

func weeksInPhase(timeline string) int {
	switch timeline {
	case TimelineFast:
		return 2
	case TimelineComprehensive:
		return 6
	default:
		return 4
	}
}

func phaseTimelines(timeline string) [3]string {
	switch timeline {
	case TimelineFast:
		return [3]string{"Weeks 1-2", "Weeks 3-4", "Weeks 5-6"}
	case TimelineComprehensive:
		return [3]string{"Weeks 1-6", "Weeks 7-12", "Weeks 13-18"}
	default:
		return [3]string{"Weeks 1-4", "Weeks 5-8", "Weeks 9-12"}
	}
}

// Synthesize turns a gap analysis and its course recommendations into a
// phased, dated learning path. now anchors every milestone and the
// completion date, so callers inject the clock.
func Synthesize(userID, roleID uuid.UUID, analysis gap.Analysis, recs recommend.Result, timeline string, now time.Time) LearningPath {
	timeline = NormalizeTimeline(timeline)

	phases := organizePhases(recs.Recommendations, timeline)
	weekly := weeklyPlan(phases, timeline)
	milestones := buildMilestones(phases, analysis, timeline, now)
	completion := now.AddDate(0, 0, len(weekly)*7).Format("2006-01-02")

	return LearningPath{
		UserID:              userID,
		TargetRoleID:        roleID,
		GeneratedAt:         now.UTC(),
		ReadinessScore:      analysis.ReadinessScore,
		Timeline:            timeline,
		EstimatedCompletion: completion,
		Phases:              phases,
		WeeklyPlan:          weekly,
		Milestones:          milestones,
		Resources:           compileResources(recs),
		Summary: PathSummary{
			TotalWeeks:    len(weekly),
			TotalCourses:  recs.Summary.TotalCoursesRecommended,
			EstimatedCost: recs.Summary.EstimatedTotalCost,
			FocusAreas:    analysis.Summary.FocusAreas,
		},
	}
}

func organizePhases(recs []recommend.SkillRecommendation, timeline string) []Phase {
	labels := phaseTimelines(timeline)
	phases := []Phase{
		{
			Title:       "Foundation",
			Description: "Build core competencies and address critical gaps",
			Skills:      []PhaseSkill{},
			Courses:     []recommend.ScoredCourse{},
			Timeline:    labels[0],
			Priority:    "Critical",
		},
		{
			Title:       "Core Development",
			Description: "Develop main skills and fill high-priority gaps",
			Skills:      []PhaseSkill{},
			Courses:     []recommend.ScoredCourse{},
			Timeline:    labels[1],
			Priority:    "High",
		},
		{
			Title:       "Advanced Specialization",
			Description: "Master advanced skills and complete remaining gaps",
			Skills:      []PhaseSkill{},
			Courses:     []recommend.ScoredCourse{},
			Timeline:    labels[2],
			Priority:    "Medium",
		},
	}

	for _, rec := range recs {
		if len(rec.Courses) == 0 {
			continue
		}
		idx := 2
		switch rec.GapSeverity {
		case gap.SeverityCritical:
			idx = 0
		case gap.SeverityHigh:
			idx = 1
		}
		phases[idx].Skills = append(phases[idx].Skills, PhaseSkill{
			Name:          rec.Skill,
			CurrentLevel:  rec.CurrentLevel,
			RequiredLevel: rec.RequiredLevel,
			GapPercentage: rec.GapPercentage,
		})
		phases[idx].Courses = append(phases[idx].Courses, rec.Courses[0])
	}

	return phases
}

func weeklyPlan(phases []Phase, timeline string) []WeekEntry {
	span := weeksInPhase(timeline)
	plan := make([]WeekEntry, 0, span*len(phases))
	week := 1

	for _, phase := range phases {
		if len(phase.Courses) == 0 {
			continue
		}
		for i := 0; i < span; i++ {
			idx := i * len(phase.Courses) / span
			course := phase.Courses[idx]

			focus := phase.Title
			if idx < len(phase.Skills) {
				focus = fmt.Sprintf("%s (%s)", phase.Skills[idx].Name, phase.Title)
			}

			plan = append(plan, WeekEntry{
				Week:           week,
				Phase:          phase.Title,
				Focus:          focus,
				Action:         "Complete: " + course.Title,
				Deliverables:   deliverablesFor(phase.Title),
				Resources:      []recommend.ScoredCourse{course},
				EstimatedHours: weeklyStudyHours,
				Priority:       phase.Priority,
			})
			week++
		}
	}

	return plan
}

func deliverablesFor(phase string) []string {
	switch phase {
	case "Foundation":
		return []string{"Course completion", "Basic understanding", "Practice exercises"}
	case "Core Development":
		return []string{"Project implementation", "Case study", "Peer review"}
	default:
		return []string{"Advanced project", "Certification prep", "Portfolio addition"}
	}
}

func buildMilestones(phases []Phase, analysis gap.Analysis, timeline string, now time.Time) []Milestone {
	span := weeksInPhase(timeline)
	milestones := make([]Milestone, 0, len(phases)+1)

	weekOffset := 0
	totalCourses := 0
	for _, phase := range phases {
		weekOffset += span
		totalCourses += len(phase.Courses)

		skillNames := make([]string, 0, len(phase.Skills))
		for _, s := range phase.Skills {
			skillNames = append(skillNames, s.Name)
		}

		milestones = append(milestones, Milestone{
			Name: fmt.Sprintf("Complete %s Phase", phase.Title),
			Date: now.AddDate(0, 0, weekOffset*7).Format("2006-01-02"),
			Criteria: []string{
				fmt.Sprintf("Complete %d courses in %s", len(phase.Courses), phase.Title),
				fmt.Sprintf("Master %d core skills", len(phase.Skills)),
				"Achieve proficiency in " + strings.Join(skillNames, ", "),
			},
			SkillsCount:  len(phase.Skills),
			CoursesCount: len(phase.Courses),
		})
	}

	milestones = append(milestones, Milestone{
		Name: "Ready for Target Role",
		Date: now.AddDate(0, 0, weekOffset*7).Format("2006-01-02"),
		Criteria: []string{
			fmt.Sprintf("Achieve %d%% readiness score", analysis.ReadinessScore+20),
			"Complete all critical skill gaps",
			"Build portfolio of healthcare projects",
		},
		SkillsCount:  analysis.TotalGaps,
		CoursesCount: totalCourses,
	})

	return milestones
}

func compileResources(recs recommend.Result) Resources {
	courses := make([]recommend.ScoredCourse, 0)
	seen := make(map[uuid.UUID]bool)
	skills := make([]ResourceSkill, 0, len(recs.Recommendations))

	for _, rec := range recs.Recommendations {
		skills = append(skills, ResourceSkill{
			Name:         rec.Skill,
			Severity:     rec.GapSeverity,
			LearningPath: rec.LearningPath,
		})
		for _, c := range rec.Courses {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			courses = append(courses, c)
		}
	}

	return Resources{
		Courses:        courses,
		Skills:         skills,
		TotalResources: len(courses) + len(skills),
	}
}
