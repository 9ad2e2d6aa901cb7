package path

import (
	"testing"
	"time"

	"med-ready/internal/domain/gap"
	"med-ready/internal/domain/recommend"

	"github.com/google/uuid"
)

func fixedNow() time.Time {
	return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
}

func sampleRecs() recommend.Result {
	mk := func(skill, severity, required string, courseTitle string) recommend.SkillRecommendation {
		return recommend.SkillRecommendation{
			Skill:         skill,
			SkillID:       uuid.NewSHA1(uuid.NameSpaceOID, []byte(skill)),
			GapSeverity:   severity,
			CurrentLevel:  "none",
			RequiredLevel: required,
			GapPercentage: 100,
			Courses: []recommend.ScoredCourse{{
				Course:     recommend.Course{ID: uuid.NewSHA1(uuid.NameSpaceURL, []byte(courseTitle)), Title: courseTitle},
				Coverage:   recommend.CoverageAdvanced,
				MatchScore: 70,
			}},
		}
	}
	recs := []recommend.SkillRecommendation{
		mk("HIPAA Compliance", gap.SeverityCritical, "advanced", "HIPAA Deep Dive"),
		mk("EHR Systems", gap.SeverityHigh, "intermediate", "EHR Fundamentals"),
		mk("HL7", gap.SeverityLow, "beginner", "HL7 Primer"),
	}
	return recommend.Result{
		Recommendations: recs,
		Summary:         recommend.Summary{TotalCoursesRecommended: 3, EstimatedTotalCost: 120},
	}
}

func sampleAnalysis() gap.Analysis {
	return gap.Analysis{
		ReadinessScore: 35,
		TotalGaps:      3,
		Summary: gap.Summary{
			FocusAreas: []gap.FocusArea{{Category: "Compliance", Priority: "high", GapsCount: 1}},
		},
	}
}

func TestSynthesize_WeekNumbersStrictlyIncreasing(t *testing.T) {
	for _, timeline := range []string{TimelineFast, TimelineBalanced, TimelineComprehensive} {
		lp := Synthesize(uuid.New(), uuid.New(), sampleAnalysis(), sampleRecs(), timeline, fixedNow())
		for i, entry := range lp.WeeklyPlan {
			if entry.Week != i+1 {
				t.Fatalf("timeline %s: week[%d] = %d, want %d", timeline, i, entry.Week, i+1)
			}
		}
	}
}

func TestSynthesize_BalancedPlanShape(t *testing.T) {
	lp := Synthesize(uuid.New(), uuid.New(), sampleAnalysis(), sampleRecs(), TimelineBalanced, fixedNow())

	if len(lp.WeeklyPlan) != 12 {
		t.Fatalf("weekly plan = %d entries, want 12", len(lp.WeeklyPlan))
	}
	if lp.Phases[0].Timeline != "Weeks 1-4" || lp.Phases[2].Timeline != "Weeks 9-12" {
		t.Fatalf("unexpected phase timelines: %+v", lp.Phases)
	}
	for _, entry := range lp.WeeklyPlan {
		if entry.EstimatedHours != 10 {
			t.Fatalf("estimatedHours = %d, want 10", entry.EstimatedHours)
		}
	}
	if lp.WeeklyPlan[0].Action != "Complete: HIPAA Deep Dive" {
		t.Fatalf("unexpected first action: %q", lp.WeeklyPlan[0].Action)
	}
}

func TestSynthesize_FastTimeline(t *testing.T) {
	lp := Synthesize(uuid.New(), uuid.New(), sampleAnalysis(), sampleRecs(), TimelineFast, fixedNow())
	if len(lp.WeeklyPlan) != 6 {
		t.Fatalf("weekly plan = %d entries, want 6", len(lp.WeeklyPlan))
	}
	if lp.Phases[0].Timeline != "Weeks 1-2" {
		t.Fatalf("phase timeline = %q", lp.Phases[0].Timeline)
	}
}

func TestSynthesize_UnknownTimelineDefaultsToBalanced(t *testing.T) {
	lp := Synthesize(uuid.New(), uuid.New(), sampleAnalysis(), sampleRecs(), "yolo", fixedNow())
	if lp.Timeline != TimelineBalanced {
		t.Fatalf("timeline = %q, want balanced", lp.Timeline)
	}
}

func TestSynthesize_MilestoneDates(t *testing.T) {
	now := fixedNow()
	lp := Synthesize(uuid.New(), uuid.New(), sampleAnalysis(), sampleRecs(), TimelineBalanced, now)

	if len(lp.Milestones) != 4 {
		t.Fatalf("milestones = %d, want 4", len(lp.Milestones))
	}

	prev := ""
	for _, m := range lp.Milestones {
		if m.Date < prev {
			t.Fatalf("milestone dates not non-decreasing: %q after %q", m.Date, prev)
		}
		prev = m.Date
	}

	// Final milestone lands at the sum of all phase spans: 12 weeks out.
	final := lp.Milestones[len(lp.Milestones)-1]
	if final.Name != "Ready for Target Role" {
		t.Fatalf("final milestone = %q", final.Name)
	}
	want := now.AddDate(0, 0, 12*7).Format("2006-01-02")
	if final.Date != want {
		t.Fatalf("final milestone date = %s, want %s", final.Date, want)
	}
	if final.Criteria[0] != "Achieve 55% readiness score" {
		t.Fatalf("final criteria = %v", final.Criteria)
	}
}

func TestSynthesize_CompletionDate(t *testing.T) {
	now := fixedNow()
	lp := Synthesize(uuid.New(), uuid.New(), sampleAnalysis(), sampleRecs(), TimelineBalanced, now)
	want := now.AddDate(0, 0, len(lp.WeeklyPlan)*7).Format("2006-01-02")
	if lp.EstimatedCompletion != want {
		t.Fatalf("completion = %s, want %s", lp.EstimatedCompletion, want)
	}
}

func TestSynthesize_DeduplicatesResources(t *testing.T) {
	recs := sampleRecs()
	// Same course recommended for two skills.
	recs.Recommendations[1].Courses = recs.Recommendations[0].Courses
	lp := Synthesize(uuid.New(), uuid.New(), sampleAnalysis(), recs, TimelineBalanced, fixedNow())

	if len(lp.Resources.Courses) != 2 {
		t.Fatalf("resource courses = %d, want 2", len(lp.Resources.Courses))
	}
	if len(lp.Resources.Skills) != 3 {
		t.Fatalf("resource skills = %d, want 3", len(lp.Resources.Skills))
	}
	if lp.Resources.TotalResources != 5 {
		t.Fatalf("totalResources = %d, want 5", lp.Resources.TotalResources)
	}
}

func TestSynthesize_EmptyPhaseSkipped(t *testing.T) {
	recs := sampleRecs()
	recs.Recommendations = recs.Recommendations[:1] // critical only
	lp := Synthesize(uuid.New(), uuid.New(), sampleAnalysis(), recs, TimelineBalanced, fixedNow())

	if len(lp.WeeklyPlan) != 4 {
		t.Fatalf("weekly plan = %d entries, want 4", len(lp.WeeklyPlan))
	}
	for _, entry := range lp.WeeklyPlan {
		if entry.Phase != "Foundation" {
			t.Fatalf("unexpected phase in plan: %q", entry.Phase)
		}
	}
}
