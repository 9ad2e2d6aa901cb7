package usecase

import (
	"context"
	"errors"
	"time"

	"med-ready/internal/domain/gap"
	"med-ready/internal/domain/path"
	"med-ready/internal/domain/recommend"
	"med-ready/internal/repository"

	"github.com/google/uuid"
)

type LearningPathUsecase interface {
	GenerateLearningPath(ctx context.Context, userID, roleID uuid.UUID, timeline string) (path.LearningPath, error)
}

type LearningPath struct {
	roles      repository.RoleRepository
	userSkills repository.UserSkillRepository
	courses    repository.CourseRepository
	matcher    recommend.SkillMatcher
	durations  recommend.PhaseDurations
	notifier   AnalysisNotifier
	now        func() time.Time
}

func NewLearningPathUsecase(
	roles repository.RoleRepository,
	userSkills repository.UserSkillRepository,
	courses repository.CourseRepository,
	matcher recommend.SkillMatcher,
	durations recommend.PhaseDurations,
	notifier AnalysisNotifier,
	now func() time.Time,
) *LearningPath {
	if now == nil {
		now = time.Now
	}
	return &LearningPath{
		roles:      roles,
		userSkills: userSkills,
		courses:    courses,
		matcher:    matcher,
		durations:  durations,
		notifier:   notifier,
		now:        now,
	}
}

func (u *LearningPath) GenerateLearningPath(ctx context.Context, userID, roleID uuid.UUID, timeline string) (path.LearningPath, error) {
	if userID == uuid.Nil {
		return path.LearningPath{}, ErrUnauthorized
	}
	if roleID == uuid.Nil {
		return path.LearningPath{}, ErrInvalidInput
	}

	role, err := u.roles.FindByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return path.LearningPath{}, ErrRoleNotFound
		}
		return path.LearningPath{}, ErrInternal
	}

	us, err := u.userSkills.FindByUserID(ctx, userID)
	if err != nil {
		return path.LearningPath{}, ErrInternal
	}

	analysis := gap.Analyze(toRequirements(role.Requirements), toUserSkills(us), role.Title)

	catalog, err := u.courses.FindAll(ctx)
	if err != nil {
		return path.LearningPath{}, ErrInternal
	}
	recs := recommend.Build(analysis.Gaps, catalog, u.matcher, u.durations)

	lp := path.Synthesize(userID, roleID, analysis, recs, timeline, u.now())

	if u.notifier != nil {
		u.notifier.AnalysisCompleted(userID, "learning_path_created", map[string]any{
			"roleId":              roleID,
			"timeline":            lp.Timeline,
			"estimatedCompletion": lp.EstimatedCompletion,
		})
	}
	return lp, nil
}
