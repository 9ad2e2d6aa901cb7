package projects

import "strings"

// Candidate is one external repository returned by the search
// collaborator, in provider-neutral form.
type Candidate struct {
	ID          int64
	Name        string
	FullName    string
	Description string
	URL         string
	Stars       int
	Forks       int
	Language    string
	Topics      []string
	OwnerLogin  string
	OwnerAvatar string
}

// Recommendation is a candidate annotated with the gap it addresses.
type Recommendation struct {
	Candidate
	MatchScore     int
	Relevance      string
	RelatedSkill   string
	GapSeverity    string
	WhyRecommended string
}

var healthcareTopics = []string{
	"healthcare",
	"health-informatics",
	"medical-devices",
	"telemedicine",
	"ehr",
	"hipaa",
	"clinical-data",
	"healthcare-analytics",
	"healthcare-cybersecurity",
	"fhir",
	"hl7",
	"medical-imaging",
}

var relevanceKeywords = []string{
	"healthcare", "medical", "clinical", "patient", "hospital",
	"health", "ehr", "emr", "hipaa", "fhir", "hl7", "telemedicine",
	"diagnosis", "treatment", "pharmacy", "radiology", "laboratory",
}

// skillSearchTerms maps gap skill keywords to external search terms.
// Ordered: the first matching keyword wins.
var skillSearchTerms = []struct {
	keyword string
	terms   []string
}{
	{"hipaa", []string{"hipaa", "healthcare-compliance", "patient-privacy"}},
	{"fhir", []string{"fhir", "fast-healthcare-interoperability"}},
	{"ehr", []string{"ehr", "electronic-health-record", "emr"}},
	{"clinical", []string{"clinical-data", "clinical-informatics", "clinical-analytics"}},
	{"telemedicine", []string{"telemedicine", "telehealth", "remote-healthcare"}},
	{"medical imaging", []string{"medical-imaging", "dicom", "radiology"}},
	{"healthcare analytics", []string{"healthcare-analytics", "health-data", "clinical-analytics"}},
	{"cybersecurity", []string{"healthcare-cybersecurity", "medical-device-security"}},
	{"python", []string{"healthcare python", "medical python"}},
	{"javascript", []string{"healthcare javascript", "medical javascript"}},
	{"react", []string{"healthcare react", "medical react"}},
	{"node", []string{"healthcare node", "medical node"}},
}

// SearchTerms maps a skill name to external search terms, falling back
// to the raw name plus a healthcare-qualified variant.
func SearchTerms(skillName string) []string {
	name := strings.ToLower(strings.TrimSpace(skillName))
	for _, m := range skillSearchTerms {
		if strings.Contains(name, m.keyword) {
			return m.terms
		}
	}
	return []string{name, "healthcare " + name}
}

// MatchScore blends query-term overlap, healthcare topic tags, and a
// star-count popularity bonus. Capped at 100.
func MatchScore(c Candidate, query string) int {
	score := 50

	name := strings.ToLower(c.Name)
	desc := strings.ToLower(c.Description)
	for _, term := range strings.Fields(strings.ToLower(query)) {
		if strings.Contains(name, term) {
			score += 20
		}
		if strings.Contains(desc, term) {
			score += 10
		}
	}

	score += matchingTopics(c.Topics) * 10

	if c.Stars > 100 {
		score += 10
	}
	if c.Stars > 1000 {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

// Relevance classifies how strongly a candidate relates to the
// healthcare domain: keyword hits in its text plus topic-tag weight.
func Relevance(c Candidate) string {
	text := strings.ToLower(c.Name) + " " + strings.ToLower(c.Description)

	score := 0
	for _, kw := range relevanceKeywords {
		if strings.Contains(text, kw) {
			score++
		}
	}
	score += matchingTopics(c.Topics) * 2

	switch {
	case score >= 5:
		return "high"
	case score >= 2:
		return "medium"
	default:
		return "low"
	}
}

func matchingTopics(topics []string) int {
	n := 0
	for _, topic := range topics {
		t := strings.ToLower(topic)
		for _, ht := range healthcareTopics {
			if strings.Contains(t, ht) {
				n++
				break
			}
		}
	}
	return n
}

// WhyRecommended explains which gap a candidate addresses.
func WhyRecommended(skillName, severity string) string {
	switch severity {
	case "critical", "high":
		return "Contributing here builds the " + skillName + " experience your target role requires"
	default:
		return "Hands-on practice to strengthen " + skillName
	}
}

// Fallback is the fixed candidate set used when the external search
// yields nothing at all; availability wins over completeness here.
func Fallback() []Recommendation {
	return []Recommendation{
		{
			Candidate: Candidate{
				ID:          -1,
				Name:        "FHIR Server",
				FullName:    "smart-on-fhir/server",
				Description: "Open source FHIR server implementation for healthcare interoperability",
				URL:         "https://github.com/smart-on-fhir/server",
				Stars:       500,
				Language:    "JavaScript",
			},
			Relevance:      "high",
			WhyRecommended: "Essential for healthcare data interoperability",
		},
		{
			Candidate: Candidate{
				ID:          -2,
				Name:        "OpenMRS",
				FullName:    "openmrs/openmrs-core",
				Description: "Open source electronic medical record system",
				URL:         "https://github.com/openmrs/openmrs-core",
				Stars:       1000,
				Language:    "Java",
			},
			Relevance:      "high",
			WhyRecommended: "Industry-standard EMR system",
		},
		{
			Candidate: Candidate{
				ID:          -3,
				Name:        "Healthcare Data Models",
				FullName:    "OHDSI/CommonDataModel",
				Description: "Common data model for healthcare observational research",
				URL:         "https://github.com/OHDSI/CommonDataModel",
				Stars:       800,
				Language:    "SQL",
			},
			Relevance:      "high",
			WhyRecommended: "Standard for clinical data analysis",
		},
	}
}
