package seeder

import (
	"context"
	"fmt"

	"med-ready/internal/database"
)

type CareerPathsSeeder struct{}

func (CareerPathsSeeder) Name() string { return "career_paths" }

type seedPathSkill struct {
	SkillName     string
	RequiredLevel string
	Importance    int
}

type seedCareerPath struct {
	Title       string
	Description string
	Specialty   string
	Skills      []seedPathSkill
}

var careerPathCatalog = []seedCareerPath{
	{
		Title:       "Health Informatics Specialist",
		Description: "Design and implement health information systems to improve patient care and healthcare delivery. Work with EHR systems, analyze medical data, and ensure HIPAA compliance.",
		Specialty:   "Health Informatics",
		Skills: []seedPathSkill{
			{SkillName: "EHR Systems", RequiredLevel: "intermediate", Importance: 10},
			{SkillName: "HIPAA Compliance", RequiredLevel: "intermediate", Importance: 10},
			{SkillName: "Clinical Data Analysis", RequiredLevel: "intermediate", Importance: 10},
			{SkillName: "Healthcare Analytics", RequiredLevel: "intermediate", Importance: 9},
			{SkillName: "Health Information Systems", RequiredLevel: "intermediate", Importance: 9},
		},
	},
	{
		Title:       "Healthcare Data Analyst",
		Description: "Analyze healthcare data to identify trends, improve patient outcomes, and support evidence-based decision making in healthcare organizations.",
		Specialty:   "Clinical Data",
		Skills: []seedPathSkill{
			{SkillName: "Clinical Data Analysis", RequiredLevel: "advanced", Importance: 10},
			{SkillName: "Healthcare Analytics", RequiredLevel: "advanced", Importance: 9},
			{SkillName: "Predictive Analytics in Healthcare", RequiredLevel: "intermediate", Importance: 9},
			{SkillName: "Healthcare Data Visualization", RequiredLevel: "intermediate", Importance: 7},
		},
	},
	{
		Title:       "Telemedicine Coordinator",
		Description: "Manage and coordinate telemedicine programs, ensuring seamless remote healthcare delivery and patient engagement.",
		Specialty:   "Telemedicine",
		Skills: []seedPathSkill{
			{SkillName: "Telemedicine Platforms", RequiredLevel: "advanced", Importance: 10},
			{SkillName: "Patient Assessment", RequiredLevel: "intermediate", Importance: 9},
			{SkillName: "Healthcare Communication", RequiredLevel: "intermediate", Importance: 9},
			{SkillName: "Patient Privacy", RequiredLevel: "intermediate", Importance: 10},
		},
	},
	{
		Title:       "Healthcare Cybersecurity Specialist",
		Description: "Protect healthcare systems and patient data from cyber threats. Implement security measures and ensure compliance with healthcare regulations.",
		Specialty:   "Healthcare Cybersecurity",
		Skills: []seedPathSkill{
			{SkillName: "Healthcare Data Security", RequiredLevel: "advanced", Importance: 10},
			{SkillName: "HIPAA Compliance", RequiredLevel: "advanced", Importance: 10},
			{SkillName: "Regulatory Compliance", RequiredLevel: "intermediate", Importance: 10},
			{SkillName: "Patient Privacy", RequiredLevel: "advanced", Importance: 10},
		},
	},
	{
		Title:       "Medical Device Integration Engineer",
		Description: "Design and implement integration solutions for medical devices with health information systems. Ensure interoperability and compliance.",
		Specialty:   "Medical Devices",
		Skills: []seedPathSkill{
			{SkillName: "Medical Device Integration", RequiredLevel: "advanced", Importance: 9},
			{SkillName: "HL7/FHIR Standards", RequiredLevel: "advanced", Importance: 9},
			{SkillName: "Regulatory Compliance", RequiredLevel: "intermediate", Importance: 10},
			{SkillName: "Health Information Systems", RequiredLevel: "intermediate", Importance: 9},
		},
	},
	{
		Title:       "Clinical Data Manager",
		Description: "Manage clinical data collection, storage, and analysis. Ensure data quality and regulatory compliance in clinical research settings.",
		Specialty:   "Clinical Data",
		Skills: []seedPathSkill{
			{SkillName: "Clinical Documentation", RequiredLevel: "advanced", Importance: 9},
			{SkillName: "Clinical Data Analysis", RequiredLevel: "intermediate", Importance: 10},
			{SkillName: "Regulatory Compliance", RequiredLevel: "intermediate", Importance: 10},
			{SkillName: "Medical Coding", RequiredLevel: "intermediate", Importance: 8},
		},
	},
}

func (CareerPathsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "career_paths", "id", "title", "description", "specialty"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "career_path_skills", "id", "career_path_id", "skill_id", "required_level", "importance", "position"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, p := range careerPathCatalog {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO career_paths (id, title, description, specialty)
			 VALUES (gen_random_uuid(), $1, $2, $3)
			 ON CONFLICT (title) DO NOTHING`,
			p.Title, p.Description, p.Specialty,
		)
		if err != nil {
			return err
		}

		var pathID string
		if err := tx.QueryRow(ctx, `SELECT id FROM career_paths WHERE title = $1`, p.Title).Scan(&pathID); err != nil {
			return fmt.Errorf("career path %q: %w", p.Title, err)
		}

		for i, s := range p.Skills {
			var skillID string
			if err := tx.QueryRow(ctx, `SELECT id FROM skills WHERE name = $1`, s.SkillName).Scan(&skillID); err != nil {
				return fmt.Errorf("skill %q: %w", s.SkillName, err)
			}

			_, err := tx.Exec(
				ctx,
				`INSERT INTO career_path_skills (id, career_path_id, skill_id, required_level, importance, position)
				 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5)
				 ON CONFLICT (career_path_id, skill_id) DO NOTHING`,
				pathID, skillID, s.RequiredLevel, s.Importance, i,
			)
			if err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
