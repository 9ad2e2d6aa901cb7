package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"med-ready/internal/domain/path"
	"med-ready/internal/domain/recommend"

	"github.com/google/uuid"
)

func TestLearningPathUsecase_DeterministicWithInjectedClock(t *testing.T) {
	role := sampleRole()
	courses := mockCourseRepo{courses: []recommend.Course{{
		ID:            uuid.New(),
		Title:         "HIPAA Privacy and Security",
		Specialty:     "Informatics",
		SkillsCovered: []string{"HIPAA Compliance", "EHR Systems"},
		Duration:      "4 weeks",
		Difficulty:    "advanced",
	}}}
	fixed := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	notifier := &mockNotifier{}

	uc := NewLearningPathUsecase(
		mockRoleRepo{role: role}, mockUserSkillRepo{}, courses,
		recommend.NameMatcher{}, recommend.DefaultPhaseDurations(),
		notifier, func() time.Time { return fixed },
	)

	lp, err := uc.GenerateLearningPath(context.Background(), uuid.New(), role.ID, path.TimelineBalanced)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if lp.Timeline != path.TimelineBalanced {
		t.Fatalf("timeline = %q", lp.Timeline)
	}

	want := fixed.AddDate(0, 0, len(lp.WeeklyPlan)*7).Format("2006-01-02")
	if lp.EstimatedCompletion != want {
		t.Fatalf("completion = %s, want %s", lp.EstimatedCompletion, want)
	}

	again, err := uc.GenerateLearningPath(context.Background(), uuid.New(), role.ID, path.TimelineBalanced)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if again.EstimatedCompletion != lp.EstimatedCompletion {
		t.Fatalf("same clock produced different completion dates")
	}
	if len(notifier.events) != 2 {
		t.Fatalf("expected 2 notifier events, got %v", notifier.events)
	}
}

func TestLearningPathUsecase_UnknownTimelineDefaultsToBalanced(t *testing.T) {
	role := sampleRole()
	uc := NewLearningPathUsecase(
		mockRoleRepo{role: role}, mockUserSkillRepo{}, mockCourseRepo{},
		recommend.NameMatcher{}, recommend.DefaultPhaseDurations(),
		nil, nil,
	)
	lp, err := uc.GenerateLearningPath(context.Background(), uuid.New(), role.ID, "someday")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if lp.Timeline != path.TimelineBalanced {
		t.Fatalf("timeline = %q, want balanced", lp.Timeline)
	}
}

func TestLearningPathUsecase_MissingRoleIDIsInvalidInput(t *testing.T) {
	uc := NewLearningPathUsecase(
		mockRoleRepo{role: sampleRole()}, mockUserSkillRepo{}, mockCourseRepo{},
		recommend.NameMatcher{}, recommend.DefaultPhaseDurations(),
		nil, nil,
	)
	_, err := uc.GenerateLearningPath(context.Background(), uuid.New(), uuid.Nil, path.TimelineBalanced)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
