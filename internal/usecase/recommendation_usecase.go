package usecase

import (
	"context"
	"errors"

	"med-ready/internal/domain/gap"
	"med-ready/internal/domain/recommend"
	"med-ready/internal/repository"

	"github.com/google/uuid"
)

// CourseRecommendations pairs the gap analysis with the course
// recommendations built from it, as one consistent snapshot.
type CourseRecommendations struct {
	Analysis        gap.Analysis
	Recommendations recommend.Result
}

type RecommendationUsecase interface {
	RecommendCourses(ctx context.Context, userID, roleID uuid.UUID) (CourseRecommendations, error)
}

type Recommendation struct {
	roles      repository.RoleRepository
	userSkills repository.UserSkillRepository
	courses    repository.CourseRepository
	matcher    recommend.SkillMatcher
	durations  recommend.PhaseDurations
}

func NewRecommendationUsecase(
	roles repository.RoleRepository,
	userSkills repository.UserSkillRepository,
	courses repository.CourseRepository,
	matcher recommend.SkillMatcher,
	durations recommend.PhaseDurations,
) *Recommendation {
	return &Recommendation{
		roles:      roles,
		userSkills: userSkills,
		courses:    courses,
		matcher:    matcher,
		durations:  durations,
	}
}

func (u *Recommendation) RecommendCourses(ctx context.Context, userID, roleID uuid.UUID) (CourseRecommendations, error) {
	if userID == uuid.Nil {
		return CourseRecommendations{}, ErrUnauthorized
	}
	if roleID == uuid.Nil {
		return CourseRecommendations{}, ErrInvalidInput
	}

	role, err := u.roles.FindByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return CourseRecommendations{}, ErrRoleNotFound
		}
		return CourseRecommendations{}, ErrInternal
	}

	us, err := u.userSkills.FindByUserID(ctx, userID)
	if err != nil {
		return CourseRecommendations{}, ErrInternal
	}

	analysis := gap.Analyze(toRequirements(role.Requirements), toUserSkills(us), role.Title)

	// The matcher works on the full catalog: substring matching can pick
	// up courses filed under another specialty.
	catalog, err := u.courses.FindAll(ctx)
	if err != nil {
		return CourseRecommendations{}, ErrInternal
	}

	return CourseRecommendations{
		Analysis:        analysis,
		Recommendations: recommend.Build(analysis.Gaps, catalog, u.matcher, u.durations),
	}, nil
}
