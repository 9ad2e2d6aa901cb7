package seeder

import (
	"context"
	"fmt"

	"med-ready/internal/database"
)

type CoursesSeeder struct{}

func (CoursesSeeder) Name() string { return "courses" }

type seedCourse struct {
	Title         string
	Description   string
	Provider      string
	URL           string
	Specialty     string
	SkillsCovered []string
	Duration      string
	Difficulty    string
	Cost          float64
}

var courseCatalog = []seedCourse{
	{
		Title:         "HIPAA Privacy and Security Fundamentals",
		Description:   "Core requirements of the HIPAA Privacy and Security Rules and how to apply them in day-to-day healthcare work.",
		Provider:      "Coursera",
		URL:           "https://www.coursera.org/learn/hipaa-fundamentals",
		Specialty:     "Health Informatics",
		SkillsCovered: []string{"HIPAA Compliance", "Patient Privacy"},
		Duration:      "4 weeks",
		Difficulty:    "beginner",
		Cost:          0,
	},
	{
		Title:         "Electronic Health Records in Practice",
		Description:   "Hands-on introduction to EHR selection, implementation, and optimization in clinical settings.",
		Provider:      "edX",
		URL:           "https://www.edx.org/course/electronic-health-records",
		Specialty:     "Health Informatics",
		SkillsCovered: []string{"EHR Systems", "Health Information Systems"},
		Duration:      "6 weeks",
		Difficulty:    "intermediate",
		Cost:          49,
	},
	{
		Title:         "Healthcare Data Analysis with SQL and Python",
		Description:   "Querying, cleaning, and analyzing clinical datasets to answer real healthcare questions.",
		Provider:      "Coursera",
		URL:           "https://www.coursera.org/learn/healthcare-data-analysis",
		Specialty:     "Clinical Data",
		SkillsCovered: []string{"Clinical Data Analysis", "Healthcare Analytics"},
		Duration:      "8 weeks",
		Difficulty:    "intermediate",
		Cost:          79,
	},
	{
		Title:         "HL7 FHIR for Developers",
		Description:   "Building and consuming FHIR APIs for healthcare data exchange.",
		Provider:      "Udemy",
		URL:           "https://www.udemy.com/course/hl7-fhir-for-developers",
		Specialty:     "Health Informatics",
		SkillsCovered: []string{"HL7/FHIR Standards", "Healthcare API Development"},
		Duration:      "20 hours",
		Difficulty:    "intermediate",
		Cost:          19.99,
	},
	{
		Title:         "Telehealth Program Design and Delivery",
		Description:   "Planning, launching, and running a telemedicine program, from platform selection to patient engagement.",
		Provider:      "Coursera",
		URL:           "https://www.coursera.org/learn/telehealth-program-design",
		Specialty:     "Telemedicine",
		SkillsCovered: []string{"Telemedicine Platforms", "Healthcare Communication"},
		Duration:      "5 weeks",
		Difficulty:    "beginner",
		Cost:          0,
	},
	{
		Title:         "Remote Patient Assessment Essentials",
		Description:   "Techniques and limits of clinical assessment over video, with case-based practice.",
		Provider:      "FutureLearn",
		URL:           "https://www.futurelearn.com/courses/remote-patient-assessment",
		Specialty:     "Telemedicine",
		SkillsCovered: []string{"Patient Assessment"},
		Duration:      "3 weeks",
		Difficulty:    "intermediate",
		Cost:          34,
	},
	{
		Title:         "Cybersecurity in Healthcare",
		Description:   "Threat models, controls, and incident response for hospital and clinic environments.",
		Provider:      "edX",
		URL:           "https://www.edx.org/course/cybersecurity-in-healthcare",
		Specialty:     "Healthcare Cybersecurity",
		SkillsCovered: []string{"Healthcare Data Security", "Regulatory Compliance"},
		Duration:      "6 weeks",
		Difficulty:    "intermediate",
		Cost:          99,
	},
	{
		Title:         "Medical Device Interoperability",
		Description:   "Connecting bedside and wearable devices to health information systems safely and reliably.",
		Provider:      "Udemy",
		URL:           "https://www.udemy.com/course/medical-device-interoperability",
		Specialty:     "Medical Devices",
		SkillsCovered: []string{"Medical Device Integration", "HL7/FHIR Standards"},
		Duration:      "12 hours",
		Difficulty:    "advanced",
		Cost:          24.99,
	},
	{
		Title:         "FDA Regulatory Affairs for Medical Devices",
		Description:   "The FDA device classification, submission, and post-market surveillance landscape.",
		Provider:      "Coursera",
		URL:           "https://www.coursera.org/learn/fda-regulatory-affairs",
		Specialty:     "Medical Devices",
		SkillsCovered: []string{"FDA Medical Device Regulations", "Regulatory Compliance"},
		Duration:      "4 weeks",
		Difficulty:    "intermediate",
		Cost:          49,
	},
	{
		Title:         "Clinical Documentation Improvement",
		Description:   "Raising documentation quality to support coding accuracy, compliance, and patient outcomes.",
		Provider:      "AHIMA",
		URL:           "https://www.ahima.org/education/clinical-documentation-improvement",
		Specialty:     "Clinical Data",
		SkillsCovered: []string{"Clinical Documentation", "Medical Coding"},
		Duration:      "30 hours",
		Difficulty:    "intermediate",
		Cost:          199,
	},
	{
		Title:         "Predictive Modeling for Population Health",
		Description:   "Building and validating predictive models on population-scale health data.",
		Provider:      "edX",
		URL:           "https://www.edx.org/course/predictive-modeling-population-health",
		Specialty:     "Clinical Data",
		SkillsCovered: []string{"Predictive Analytics in Healthcare", "Population Health Management"},
		Duration:      "8 weeks",
		Difficulty:    "advanced",
		Cost:          149,
	},
	{
		Title:         "Data Visualization for Health Professionals",
		Description:   "Communicating clinical and operational findings through effective dashboards and charts.",
		Provider:      "Coursera",
		URL:           "https://www.coursera.org/learn/health-data-visualization",
		Specialty:     "Clinical Data",
		SkillsCovered: []string{"Healthcare Data Visualization"},
		Duration:      "4 weeks",
		Difficulty:    "beginner",
		Cost:          0,
	},
	{
		Title:         "Introduction to Health Informatics",
		Description:   "Survey of health information systems, standards, and the informatics profession.",
		Provider:      "Coursera",
		URL:           "https://www.coursera.org/learn/intro-health-informatics",
		Specialty:     "General",
		SkillsCovered: []string{"Health Information Systems", "Medical Terminology"},
		Duration:      "6 weeks",
		Difficulty:    "beginner",
		Cost:          0,
	},
	{
		Title:         "Healthcare Project Management Basics",
		Description:   "Applying project management practice to clinical and health IT initiatives.",
		Provider:      "Udemy",
		URL:           "https://www.udemy.com/course/healthcare-project-management",
		Specialty:     "General",
		SkillsCovered: []string{"Healthcare Project Management", "Interdisciplinary Collaboration"},
		Duration:      "10 hours",
		Difficulty:    "beginner",
		Cost:          14.99,
	},
}

func (CoursesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "courses", "id", "title", "provider", "specialty", "skills_covered", "difficulty", "cost"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, c := range courseCatalog {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO courses (id, title, description, provider, url, specialty, skills_covered, duration, difficulty, cost)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9)
			 ON CONFLICT (title) DO NOTHING`,
			c.Title, c.Description, c.Provider, c.URL, c.Specialty, c.SkillsCovered, c.Duration, c.Difficulty, c.Cost,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
