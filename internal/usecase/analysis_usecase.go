package usecase

import (
	"context"
	"errors"

	"med-ready/internal/domain/gap"
	"med-ready/internal/repository"

	"github.com/google/uuid"
)

var ErrRoleNotFound = errors.New("career path not found")

// AnalysisNotifier receives completed-analysis events, typically fanned
// out to connected websocket clients.
type AnalysisNotifier interface {
	AnalysisCompleted(userID uuid.UUID, event string, payload any)
}

type AnalysisUsecase interface {
	AnalyzeGaps(ctx context.Context, userID, roleID uuid.UUID) (gap.Analysis, error)
}

type Analysis struct {
	roles      repository.RoleRepository
	userSkills repository.UserSkillRepository
	notifier   AnalysisNotifier
}

func NewAnalysisUsecase(roles repository.RoleRepository, userSkills repository.UserSkillRepository, notifier AnalysisNotifier) *Analysis {
	return &Analysis{roles: roles, userSkills: userSkills, notifier: notifier}
}

func (u *Analysis) AnalyzeGaps(ctx context.Context, userID, roleID uuid.UUID) (gap.Analysis, error) {
	if userID == uuid.Nil {
		return gap.Analysis{}, ErrUnauthorized
	}
	if roleID == uuid.Nil {
		return gap.Analysis{}, ErrInvalidInput
	}

	role, err := u.roles.FindByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return gap.Analysis{}, ErrRoleNotFound
		}
		return gap.Analysis{}, ErrInternal
	}

	us, err := u.userSkills.FindByUserID(ctx, userID)
	if err != nil {
		return gap.Analysis{}, ErrInternal
	}

	analysis := gap.Analyze(toRequirements(role.Requirements), toUserSkills(us), role.Title)

	if u.notifier != nil {
		u.notifier.AnalysisCompleted(userID, "gap_analysis_completed", map[string]any{
			"roleId":         roleID,
			"readinessScore": analysis.ReadinessScore,
			"totalGaps":      analysis.TotalGaps,
		})
	}
	return analysis, nil
}

func toRequirements(reqs []repository.RoleRequirement) []gap.Requirement {
	out := make([]gap.Requirement, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, gap.Requirement{
			SkillID:       r.SkillID,
			SkillName:     r.SkillName,
			Category:      r.Category,
			RequiredLevel: r.RequiredLevel,
			Importance:    r.Importance,
		})
	}
	return out
}

func toUserSkills(us []repository.UserSkill) []gap.UserSkill {
	out := make([]gap.UserSkill, 0, len(us))
	for _, s := range us {
		out = append(out, gap.UserSkill{SkillID: s.SkillID, Level: s.Level})
	}
	return out
}
