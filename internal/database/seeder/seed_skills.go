package seeder

import (
	"context"
	"fmt"

	"med-ready/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

type seedSkill struct {
	Name     string
	Category string
}

// Catalog of healthcare technology skills the career paths draw on.
var skillCatalog = []seedSkill{
	{Name: "HIPAA Compliance", Category: "Regulatory"},
	{Name: "Clinical Documentation", Category: "Clinical"},
	{Name: "Medical Terminology", Category: "Clinical"},
	{Name: "Patient Assessment", Category: "Clinical"},
	{Name: "Clinical Decision Support Systems", Category: "Clinical"},
	{Name: "Precision Medicine", Category: "Clinical"},
	{Name: "Clinical Data Analysis", Category: "Analytical"},
	{Name: "Evidence-Based Practice", Category: "Clinical"},
	{Name: "Patient Safety Protocols", Category: "Clinical"},
	{Name: "Clinical Workflow Optimization", Category: "Clinical"},
	{Name: "EHR Systems", Category: "Technical"},
	{Name: "Healthcare Data Security", Category: "Technical"},
	{Name: "Telemedicine Platforms", Category: "Technical"},
	{Name: "Medical Device Integration", Category: "Technical"},
	{Name: "HL7/FHIR Standards", Category: "Technical"},
	{Name: "Health Information Systems", Category: "Technical"},
	{Name: "Healthcare Cloud Computing", Category: "Technical"},
	{Name: "Healthcare API Development", Category: "Technical"},
	{Name: "Healthcare Database Management", Category: "Technical"},
	{Name: "Healthcare Mobile Applications", Category: "Technical"},
	{Name: "Regulatory Compliance", Category: "Regulatory"},
	{Name: "Medical Coding", Category: "Regulatory"},
	{Name: "Quality Assurance in Healthcare", Category: "Regulatory"},
	{Name: "FDA Medical Device Regulations", Category: "Regulatory"},
	{Name: "Clinical Trial Management", Category: "Regulatory"},
	{Name: "Healthcare Audit and Compliance", Category: "Regulatory"},
	{Name: "Healthcare Analytics", Category: "Analytical"},
	{Name: "Population Health Management", Category: "Analytical"},
	{Name: "Predictive Analytics in Healthcare", Category: "Analytical"},
	{Name: "Healthcare Data Visualization", Category: "Analytical"},
	{Name: "Healthcare Business Intelligence", Category: "Analytical"},
	{Name: "Patient Privacy", Category: "Soft Skills"},
	{Name: "Healthcare Project Management", Category: "Soft Skills"},
	{Name: "Interdisciplinary Collaboration", Category: "Soft Skills"},
	{Name: "Healthcare Communication", Category: "Soft Skills"},
	{Name: "Healthcare Leadership", Category: "Soft Skills"},
}

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, it := range skillCatalog {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name, category) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.Category,
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
