package projects

import (
	"reflect"
	"testing"
)

func TestSearchTerms_KnownKeywords(t *testing.T) {
	cases := []struct {
		skill string
		want  []string
	}{
		{"HIPAA Compliance", []string{"hipaa", "healthcare-compliance", "patient-privacy"}},
		{"FHIR Integration", []string{"fhir", "fast-healthcare-interoperability"}},
		{"EHR Systems", []string{"ehr", "electronic-health-record", "emr"}},
		{"Telemedicine Platforms", []string{"telemedicine", "telehealth", "remote-healthcare"}},
	}
	for _, tc := range cases {
		if got := SearchTerms(tc.skill); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SearchTerms(%q) = %v, want %v", tc.skill, got, tc.want)
		}
	}
}

func TestSearchTerms_Fallback(t *testing.T) {
	got := SearchTerms("Robotic Surgery")
	want := []string{"robotic surgery", "healthcare robotic surgery"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SearchTerms fallback = %v, want %v", got, want)
	}
}

func TestMatchScore(t *testing.T) {
	c := Candidate{
		Name:        "fhir-server",
		Description: "A FHIR server for clinical data exchange",
		Topics:      []string{"fhir", "healthcare"},
		Stars:       1500,
	}
	// 50 base + 20 name + 10 desc + 2*10 topics + 10 + 10 stars = 110 -> 100
	if got := MatchScore(c, "fhir"); got != 100 {
		t.Fatalf("MatchScore = %d, want 100 (capped)", got)
	}
}

func TestMatchScore_BaseOnly(t *testing.T) {
	c := Candidate{Name: "todo-app", Description: "a todo list", Stars: 3}
	if got := MatchScore(c, "fhir"); got != 50 {
		t.Fatalf("MatchScore = %d, want 50", got)
	}
}

func TestMatchScore_NeverExceedsHundred(t *testing.T) {
	c := Candidate{
		Name:        "healthcare hipaa fhir ehr",
		Description: "healthcare hipaa fhir ehr clinical patient",
		Topics:      []string{"healthcare", "hipaa", "fhir", "ehr", "hl7", "telemedicine"},
		Stars:       100000,
	}
	if got := MatchScore(c, "healthcare hipaa fhir ehr"); got != 100 {
		t.Fatalf("MatchScore = %d, want 100", got)
	}
}

func TestRelevance(t *testing.T) {
	cases := []struct {
		name string
		c    Candidate
		want string
	}{
		{
			"high by keywords",
			Candidate{Name: "openmrs", Description: "electronic medical record system for clinical patient care in hospital health settings"},
			"high",
		},
		{
			"medium",
			Candidate{Name: "patient-tracker", Description: "track patient health records"},
			"medium",
		},
		{
			"low",
			Candidate{Name: "todo-app", Description: "a simple todo list"},
			"low",
		},
		{
			"topics weigh double",
			Candidate{Name: "generic", Description: "data pipeline", Topics: []string{"fhir"}},
			"medium",
		},
	}
	for _, tc := range cases {
		if got := Relevance(tc.c); got != tc.want {
			t.Errorf("%s: Relevance = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestFallback(t *testing.T) {
	fb := Fallback()
	if len(fb) != 3 {
		t.Fatalf("fallback = %d entries, want 3", len(fb))
	}
	for _, rec := range fb {
		if rec.Relevance != "high" || rec.URL == "" || rec.WhyRecommended == "" {
			t.Fatalf("incomplete fallback entry: %+v", rec)
		}
	}
}
