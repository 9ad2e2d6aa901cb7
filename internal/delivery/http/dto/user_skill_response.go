package dto

import "github.com/google/uuid"

type UserSkillResponse struct {
	ID              uuid.UUID `json:"id"`
	SkillID         uuid.UUID `json:"skill_id"`
	SkillName       string    `json:"skill_name"`
	Category        string    `json:"category"`
	Level           string    `json:"level"`
	YearsExperience int       `json:"years_experience"`
}
