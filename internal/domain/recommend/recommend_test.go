package recommend

import (
	"testing"

	"med-ready/internal/domain/gap"

	"github.com/google/uuid"
)

func criticalGap(skill string) gap.Record {
	return gap.Record{
		SkillID:       uuid.NewSHA1(uuid.NameSpaceOID, []byte(skill)),
		SkillName:     skill,
		Category:      "Compliance",
		CurrentLevel:  "none",
		RequiredLevel: "advanced",
		GapScore:      4,
		GapPercentage: 100,
		Importance:    1.0,
		Priority:      4.0,
		Severity:      gap.SeverityCritical,
	}
}

func TestParseDurationHours(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"4 weeks", 40},
		{"1 week", 10},
		{"40 hours", 40},
		{"2 months", 80},
		{"self-paced", 10},
		{"", 10},
		{"weeks", 10},
	}
	for _, tc := range cases {
		if got := ParseDurationHours(tc.in); got != tc.want {
			t.Errorf("ParseDurationHours(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMatchScore_WorkedExample(t *testing.T) {
	course := Course{
		Title:         "Advanced HIPAA Compliance",
		Duration:      "4 weeks",
		Difficulty:    "advanced",
		Cost:          0,
		SkillsCovered: []string{"HIPAA Compliance", "Patient Privacy"},
	}
	g := criticalGap("HIPAA Compliance")

	if cov := CoverageFor(course, g, NameMatcher{}); cov != CoverageComprehensive {
		t.Fatalf("coverage = %s, want comprehensive", cov)
	}
	// 100*.4 + 80*.2 + 20*.15 + 100*.15 + 10*.1 = 75
	if got := MatchScore(course, g, NameMatcher{}); got != 75 {
		t.Fatalf("matchScore = %d, want 75", got)
	}
}

func TestMatchScore_Bounds(t *testing.T) {
	courses := []Course{
		{},
		{Duration: "100 weeks", Cost: 5000, SkillsCovered: []string{"x"}},
		{Duration: "1 hour", Cost: 0, Difficulty: "advanced",
			SkillsCovered: []string{"HIPAA Compliance", "a", "b", "c", "d"}},
	}
	g := criticalGap("HIPAA Compliance")
	for _, c := range courses {
		got := MatchScore(c, g, NameMatcher{})
		if got < 0 || got > 100 {
			t.Errorf("matchScore out of bounds: %d for %+v", got, c)
		}
	}
}

func TestMatchScore_BetterCourseNeverScoresLower(t *testing.T) {
	g := criticalGap("HIPAA Compliance")
	strong := Course{
		Duration:      "1 week",
		Cost:          0,
		Difficulty:    "advanced",
		SkillsCovered: []string{"HIPAA Compliance", "Patient Privacy", "Audit Trails"},
	}
	weak := Course{
		Duration:      "6 months",
		Cost:          900,
		Difficulty:    "beginner",
		SkillsCovered: []string{"Knitting"},
	}
	if MatchScore(strong, g, NameMatcher{}) < MatchScore(weak, g, NameMatcher{}) {
		t.Fatalf("strong course scored below weak course")
	}
}

func TestCoverageFor_Table(t *testing.T) {
	matcher := NameMatcher{}
	mk := func(difficulty string, skills ...string) Course {
		return Course{Difficulty: difficulty, SkillsCovered: skills, Specialty: "Telemedicine"}
	}
	g := func(severity, required string) gap.Record {
		return gap.Record{SkillName: "FHIR", Category: "Interoperability",
			Severity: severity, RequiredLevel: required}
	}

	cases := []struct {
		name   string
		course Course
		gp     gap.Record
		want   string
	}{
		{"no match, no category", mk("advanced", "Knitting"), g(gap.SeverityCritical, "advanced"), CoverageNone},
		{"critical+advanced", mk("advanced", "FHIR"), g(gap.SeverityCritical, "advanced"), CoverageComprehensive},
		{"critical+beginner", mk("beginner", "FHIR"), g(gap.SeverityCritical, "advanced"), CoverageBasic},
		{"high+intermediate", mk("intermediate", "FHIR"), g(gap.SeverityHigh, "advanced"), CoverageAdvanced},
		{"high+advanced", mk("advanced", "FHIR"), g(gap.SeverityHigh, "advanced"), CoverageAdvanced},
		{"medium+advanced", mk("advanced", "FHIR"), g(gap.SeverityMedium, "intermediate"), CoverageAdvanced},
		{"medium+beginner", mk("beginner", "FHIR"), g(gap.SeverityMedium, "intermediate"), CoverageIntermediate},
		{"low+anything", mk("advanced", "FHIR"), g(gap.SeverityLow, "beginner"), CoverageBasic},
	}
	for _, tc := range cases {
		if got := CoverageFor(tc.course, tc.gp, matcher); got != tc.want {
			t.Errorf("%s: coverage = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestCoverageFor_CategoryFallback(t *testing.T) {
	course := Course{SkillsCovered: []string{"Remote Care"}, Specialty: "Telemedicine Platforms"}
	g := gap.Record{SkillName: "FHIR", Category: "Telemedicine", Severity: gap.SeverityHigh}
	if got := CoverageFor(course, g, NameMatcher{}); got != CoverageBasic {
		t.Fatalf("coverage = %s, want basic", got)
	}
}

func TestCoverageNone_ContributesZero(t *testing.T) {
	course := Course{SkillsCovered: []string{"Knitting"}, Duration: "1 hour", Cost: 0}
	g := criticalGap("HIPAA Compliance")
	// 0*.4 + 80*.2 + 98*.15 + 100*.15 + 0*.1 = 45.7 -> 46
	if got := MatchScore(course, g, NameMatcher{}); got != 46 {
		t.Fatalf("matchScore = %d, want 46", got)
	}
}

func TestWhyRecommended(t *testing.T) {
	g := criticalGap("HIPAA Compliance")
	course := Course{
		Cost:          0,
		Difficulty:    "advanced",
		SkillsCovered: []string{"HIPAA Compliance", "Patient Privacy"},
	}
	// Critical gap, high score, free, multi-skill, and matching difficulty
	// each contribute one reason.
	reasons := WhyRecommended(course, g, 85)
	if len(reasons) != 5 {
		t.Fatalf("reasons = %v", reasons)
	}
	if reasons[0] != "Essential for HIPAA Compliance - critical gap identified" {
		t.Fatalf("unexpected first reason: %q", reasons[0])
	}
	if reasons[4] != "Matches your required proficiency level" {
		t.Fatalf("unexpected last reason: %q", reasons[4])
	}
}

func TestWhyRecommended_GenericFallback(t *testing.T) {
	g := gap.Record{SkillName: "HL7", Severity: gap.SeverityLow, RequiredLevel: "beginner"}
	course := Course{Cost: 50, Difficulty: "intermediate", SkillsCovered: []string{"HL7"}}
	reasons := WhyRecommended(course, g, 40)
	if len(reasons) != 1 || reasons[0] != "Recommended based on your skill gap analysis" {
		t.Fatalf("reasons = %v", reasons)
	}
}

func TestWhyRecommended_ExpertMatchesAdvancedDifficulty(t *testing.T) {
	g := gap.Record{SkillName: "FHIR", Severity: gap.SeverityLow, RequiredLevel: "expert"}
	course := Course{Cost: 10, Difficulty: "advanced", SkillsCovered: []string{"FHIR"}}
	reasons := WhyRecommended(course, g, 50)
	if reasons[0] != "Matches your required proficiency level" {
		t.Fatalf("reasons = %v", reasons)
	}
}

func TestFindCoursesForSkill_TopThree(t *testing.T) {
	g := criticalGap("HIPAA Compliance")
	catalog := []Course{
		{Title: "A", Difficulty: "advanced", SkillsCovered: []string{"HIPAA Compliance"}, Duration: "2 weeks"},
		{Title: "B", Difficulty: "intermediate", SkillsCovered: []string{"HIPAA"}, Duration: "8 weeks", Cost: 300},
		{Title: "C", Difficulty: "advanced", SkillsCovered: []string{"HIPAA Compliance", "Privacy"}, Duration: "1 week"},
		{Title: "D", Difficulty: "beginner", SkillsCovered: []string{"HIPAA Compliance"}, Duration: "12 weeks", Cost: 500},
	}

	got := FindCoursesForSkill(catalog, g, NameMatcher{})
	if len(got) != 3 {
		t.Fatalf("expected top 3, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].MatchScore > got[i-1].MatchScore {
			t.Fatalf("courses not sorted by match score: %v", got)
		}
	}
}

func TestFindCoursesForSkill_FallbackWhenNoMatch(t *testing.T) {
	g := criticalGap("Robotic Surgery")
	catalog := []Course{
		{Title: "General Health IT", Specialty: "General", SkillsCovered: []string{"EHR"}},
		{Title: "Telehealth Basics", Specialty: "Telemedicine", SkillsCovered: []string{"Telehealth"}},
	}
	got := FindCoursesForSkill(catalog, g, NameMatcher{})
	if len(got) == 0 {
		t.Fatalf("expected fallback courses, got none")
	}
}

func TestSkillLearningPath_Phases(t *testing.T) {
	durations := DefaultPhaseDurations()

	critical := SkillLearningPath(criticalGap("HIPAA Compliance"), durations)
	if len(critical) != 3 {
		t.Fatalf("critical path phases = %d, want 3", len(critical))
	}
	if critical[0].Phase != "Foundation" || critical[1].Phase != "Practice" || critical[2].Phase != "Mastery" {
		t.Fatalf("unexpected phase order: %+v", critical)
	}

	low := SkillLearningPath(gap.Record{SkillName: "HL7", Severity: gap.SeverityLow, RequiredLevel: "beginner"}, durations)
	if len(low) != 1 || low[0].Phase != "Practice" {
		t.Fatalf("low path = %+v", low)
	}

	expert := SkillLearningPath(gap.Record{SkillName: "FHIR", Severity: gap.SeverityMedium, RequiredLevel: "expert"}, durations)
	if len(expert) != 2 || expert[1].Phase != "Mastery" {
		t.Fatalf("expert path = %+v", expert)
	}
}

func TestBuild_PathwayAndSummary(t *testing.T) {
	gaps := []gap.Record{
		criticalGap("HIPAA Compliance"),
		{SkillName: "EHR Systems", SkillID: uuid.New(), Category: "Health Informatics",
			Severity: gap.SeverityHigh, RequiredLevel: "intermediate", CurrentLevel: "none", GapPercentage: 100},
		{SkillName: "HL7", SkillID: uuid.New(), Category: "Interoperability",
			Severity: gap.SeverityLow, RequiredLevel: "beginner", CurrentLevel: "aware", GapPercentage: 25},
	}
	catalog := []Course{
		{Title: "HIPAA Deep Dive", Difficulty: "advanced", SkillsCovered: []string{"HIPAA Compliance"}, Duration: "4 weeks"},
		{Title: "EHR Fundamentals", Difficulty: "intermediate", SkillsCovered: []string{"EHR Systems"}, Duration: "3 weeks", Cost: 100},
		{Title: "HL7 Primer", Difficulty: "beginner", SkillsCovered: []string{"HL7"}, Duration: "1 week"},
	}

	res := Build(gaps, catalog, NameMatcher{}, DefaultPhaseDurations())

	if len(res.Recommendations) != 3 {
		t.Fatalf("recommendations = %d, want 3", len(res.Recommendations))
	}
	if res.Recommendations[0].GapSeverity != gap.SeverityCritical {
		t.Fatalf("expected critical first, got %s", res.Recommendations[0].GapSeverity)
	}

	pw := res.LearningPathway
	if len(pw.Foundation) != 1 || len(pw.Core) != 1 || len(pw.Advanced) != 1 {
		t.Fatalf("pathway buckets = %d/%d/%d", len(pw.Foundation), len(pw.Core), len(pw.Advanced))
	}
	if len(pw.Timeline) != 3 {
		t.Fatalf("timeline entries = %d, want 3", len(pw.Timeline))
	}
	if pw.Timeline[0].Week != "Week 1-4" || pw.Timeline[2].Week != "Week 9-12" {
		t.Fatalf("unexpected timeline weeks: %+v", pw.Timeline)
	}
	if pw.TotalDuration != "12 weeks" {
		t.Fatalf("totalDuration = %q", pw.TotalDuration)
	}

	sum := res.Summary
	if sum.CriticalSkillsToAddress != 1 {
		t.Fatalf("criticalSkillsToAddress = %d", sum.CriticalSkillsToAddress)
	}
	if sum.TotalCoursesRecommended == 0 || sum.FreeCourses == 0 {
		t.Fatalf("summary rollup looks wrong: %+v", sum)
	}
	if len(sum.QuickStart) != 1 || sum.QuickStart[0].Skill != "HIPAA Compliance" {
		t.Fatalf("quickStart = %+v", sum.QuickStart)
	}
}
