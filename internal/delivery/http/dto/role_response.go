package dto

import (
	"med-ready/internal/repository"

	"github.com/google/uuid"
)

type RoleResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Specialty   string    `json:"specialty"`
	SkillsCount int       `json:"skills_count,omitempty"`
}

type RoleRequirementResponse struct {
	SkillID       uuid.UUID `json:"skill_id"`
	SkillName     string    `json:"skill_name"`
	Category      string    `json:"category"`
	RequiredLevel string    `json:"required_level"`
	Importance    int       `json:"importance"`
}

type RoleDetailResponse struct {
	RoleResponse
	Requirements []RoleRequirementResponse `json:"requirements"`
}

func NewRoleRequirementResponses(reqs []repository.RoleRequirement) []RoleRequirementResponse {
	out := make([]RoleRequirementResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, RoleRequirementResponse{
			SkillID:       r.SkillID,
			SkillName:     r.SkillName,
			Category:      r.Category,
			RequiredLevel: r.RequiredLevel,
			Importance:    r.Importance,
		})
	}
	return out
}
