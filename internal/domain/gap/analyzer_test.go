package gap

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func req(name, category, level string, importance int) Requirement {
	return Requirement{
		SkillID:       uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)),
		SkillName:     name,
		Category:      category,
		RequiredLevel: level,
		Importance:    importance,
	}
}

func have(name, level string) UserSkill {
	return UserSkill{
		SkillID: uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)),
		Level:   level,
	}
}

func TestSeverityFor_Thresholds(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{100, SeverityCritical},
		{80, SeverityCritical},
		{79.9, SeverityHigh},
		{50, SeverityHigh},
		{49.9, SeverityMedium},
		{30, SeverityMedium},
		{29.9, SeverityLow},
		{0, SeverityLow},
	}
	for _, tc := range cases {
		if got := SeverityFor(tc.pct); got != tc.want {
			t.Errorf("SeverityFor(%v) = %s, want %s", tc.pct, got, tc.want)
		}
	}
}

func TestAnalyze_EmptyProfile(t *testing.T) {
	reqs := []Requirement{
		req("HIPAA Compliance", "Compliance", "advanced", 10),
		req("EHR Systems", "Health Informatics", "intermediate", 5),
	}

	a := Analyze(reqs, nil, "Clinical Informaticist")

	if a.ReadinessScore != 0 {
		t.Fatalf("readiness = %d, want 0", a.ReadinessScore)
	}
	if a.TotalGaps != 2 || a.CriticalGaps != 2 {
		t.Fatalf("totals = (%d,%d), want (2,2)", a.TotalGaps, a.CriticalGaps)
	}

	first, second := a.Gaps[0], a.Gaps[1]
	if first.SkillName != "HIPAA Compliance" || second.SkillName != "EHR Systems" {
		t.Fatalf("unexpected priority order: %s, %s", first.SkillName, second.SkillName)
	}
	if first.GapScore != 4 || first.GapPercentage != 100 || first.Severity != SeverityCritical {
		t.Fatalf("unexpected first gap: %+v", first)
	}
	if first.Priority != 4.0 {
		t.Fatalf("first priority = %v, want 4.0", first.Priority)
	}
	if second.GapScore != 3 || second.Priority != 1.5 {
		t.Fatalf("unexpected second gap: %+v", second)
	}
}

func TestAnalyze_WeightedReadiness(t *testing.T) {
	reqs := []Requirement{
		req("HIPAA Compliance", "Compliance", "advanced", 10),
		req("EHR Systems", "Health Informatics", "intermediate", 5),
	}
	skills := []UserSkill{
		have("HIPAA Compliance", "advanced"),
		have("EHR Systems", "beginner"),
	}

	a := Analyze(reqs, skills, "Clinical Informaticist")

	// round((4*1.0 + 2*0.5) / (4*1.0 + 3*0.5) * 100) = round(5/5.5*100) = 91
	if a.ReadinessScore != 91 {
		t.Fatalf("readiness = %d, want 91", a.ReadinessScore)
	}
}

func TestAnalyze_FullyMetScoresHundred(t *testing.T) {
	reqs := []Requirement{
		req("FHIR", "Interoperability", "intermediate", 8),
		req("HL7", "Interoperability", "beginner", 4),
	}
	skills := []UserSkill{
		have("FHIR", "expert"),
		have("HL7", "beginner"),
	}

	a := Analyze(reqs, skills, "")
	if a.ReadinessScore != 100 {
		t.Fatalf("readiness = %d, want 100", a.ReadinessScore)
	}
	for _, g := range a.Gaps {
		if g.GapScore != 0 || g.Severity != SeverityLow {
			t.Fatalf("expected no gap, got %+v", g)
		}
	}
}

func TestAnalyze_ReadinessBounds(t *testing.T) {
	reqs := []Requirement{
		req("Clinical Data Analysis", "Data", "expert", 9),
		req("Telemedicine Platforms", "Telemedicine", "advanced", 3),
		req("Python", "Programming", "intermediate", 6),
	}
	skills := []UserSkill{
		have("Clinical Data Analysis", "aware"),
		have("Python", "master"),
	}

	a := Analyze(reqs, skills, "Healthcare Data Analyst")
	if a.ReadinessScore < 0 || a.ReadinessScore > 100 {
		t.Fatalf("readiness out of bounds: %d", a.ReadinessScore)
	}
}

func TestAnalyze_NoRequirements(t *testing.T) {
	a := Analyze(nil, nil, "Empty Role")
	if a.ReadinessScore != 0 || a.TotalGaps != 0 {
		t.Fatalf("unexpected analysis for empty role: %+v", a)
	}
}

func TestAnalyze_DefaultsForUnknownLevels(t *testing.T) {
	r := req("Quantum Charting", "Experimental", "galactic", 10)
	a := Analyze([]Requirement{r}, []UserSkill{have("Quantum Charting", "mystic")}, "")

	g := a.Gaps[0]
	// Unknown required level falls back to the intermediate score,
	// unknown current level to zero.
	if g.GapScore != 3 {
		t.Fatalf("gapScore = %d, want 3", g.GapScore)
	}
	if g.GapPercentage != 100 {
		t.Fatalf("gapPercentage = %d, want 100", g.GapPercentage)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	reqs := []Requirement{
		req("HIPAA Compliance", "Compliance", "advanced", 10),
		req("EHR Systems", "Health Informatics", "intermediate", 5),
		req("Medical Imaging", "Clinical Data", "advanced", 7),
		req("Patient Communication", "Soft Skills", "intermediate", 5),
	}
	skills := []UserSkill{
		have("EHR Systems", "beginner"),
		have("Patient Communication", "intermediate"),
	}

	a1 := Analyze(reqs, skills, "Clinical Informaticist")
	a2 := Analyze(reqs, skills, "Clinical Informaticist")
	if !reflect.DeepEqual(a1, a2) {
		t.Fatalf("analysis not deterministic:\n%+v\n%+v", a1, a2)
	}
}

func TestAnalyze_QuickWinsAndTopPriorities(t *testing.T) {
	reqs := []Requirement{
		req("HIPAA Compliance", "Compliance", "advanced", 10),
		req("Patient Communication", "Soft Skills", "advanced", 6),
	}
	skills := []UserSkill{
		have("Patient Communication", "intermediate"),
	}

	a := Analyze(reqs, skills, "")

	if len(a.Summary.TopPriorities) != 1 || a.Summary.TopPriorities[0] != "HIPAA Compliance" {
		t.Fatalf("topPriorities = %v", a.Summary.TopPriorities)
	}
	if len(a.Summary.QuickWins) != 1 {
		t.Fatalf("quickWins = %v", a.Summary.QuickWins)
	}
	qw := a.Summary.QuickWins[0]
	if qw.SkillName != "Patient Communication" || qw.EstimatedTime != "1-2 weeks" {
		t.Fatalf("unexpected quick win: %+v", qw)
	}
}

func TestEstimateLearningTime(t *testing.T) {
	gaps := []Record{
		{Severity: SeverityCritical, Importance: 1.0}, // 40*2 = 80
		{Severity: SeverityLow, Importance: 0.5},      // 10*1.5 = 15
	}
	est := EstimateLearningTime(gaps)
	if est.TotalHours != 95 {
		t.Fatalf("totalHours = %d, want 95", est.TotalHours)
	}
	if est.Weeks != 10 || est.Months != 3 {
		t.Fatalf("weeks/months = %d/%d, want 10/3", est.Weeks, est.Months)
	}
	if est.Timeline != "3 months at 10 hrs/week" {
		t.Fatalf("timeline = %q", est.Timeline)
	}
}

func TestEstimateLearningTime_ShortTimeline(t *testing.T) {
	gaps := []Record{{Severity: SeverityLow, Importance: 0.5}} // 15h -> 2 weeks
	est := EstimateLearningTime(gaps)
	if est.Timeline != "2 weeks at 10 hrs/week" {
		t.Fatalf("timeline = %q", est.Timeline)
	}
}

func TestAnalyze_FocusAreas(t *testing.T) {
	reqs := []Requirement{
		req("HIPAA Compliance", "Compliance", "advanced", 10),
		req("Audit Trails", "Compliance", "intermediate", 6),
		req("Bedside Manner", "Soft Skills", "aware", 2),
	}
	a := Analyze(reqs, []UserSkill{have("Bedside Manner", "aware")}, "")

	if len(a.Summary.FocusAreas) != 1 {
		t.Fatalf("focusAreas = %+v", a.Summary.FocusAreas)
	}
	fa := a.Summary.FocusAreas[0]
	if fa.Category != "Compliance" || fa.Priority != "high" || fa.GapsCount != 2 {
		t.Fatalf("unexpected focus area: %+v", fa)
	}
}
