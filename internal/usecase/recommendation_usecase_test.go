package usecase

import (
	"context"
	"errors"
	"testing"

	"med-ready/internal/domain/recommend"
	"med-ready/internal/repository"

	"github.com/google/uuid"
)

type mockCourseRepo struct {
	courses []recommend.Course
	err     error
}

func (m mockCourseRepo) FindAll(context.Context) ([]recommend.Course, error) {
	return m.courses, m.err
}

func newRecommendationUsecase(roles mockRoleRepo, skills mockUserSkillRepo, courses mockCourseRepo) *Recommendation {
	return NewRecommendationUsecase(roles, skills, courses, recommend.NameMatcher{}, recommend.DefaultPhaseDurations())
}

func TestRecommendationUsecase_RoleNotFound(t *testing.T) {
	uc := newRecommendationUsecase(mockRoleRepo{err: repository.ErrRoleNotFound}, mockUserSkillRepo{}, mockCourseRepo{})
	_, err := uc.RecommendCourses(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestRecommendationUsecase_MatchesCatalogToGaps(t *testing.T) {
	role := sampleRole()
	courses := mockCourseRepo{courses: []recommend.Course{
		{
			ID:            uuid.New(),
			Title:         "HIPAA Privacy and Security",
			Specialty:     "Informatics",
			SkillsCovered: []string{"HIPAA Compliance"},
			Duration:      "4 weeks",
			Difficulty:    "advanced",
			Cost:          0,
		},
		{
			ID:            uuid.New(),
			Title:         "Cooking Basics",
			Specialty:     "General",
			SkillsCovered: []string{"Cooking"},
			Duration:      "2 weeks",
			Difficulty:    "beginner",
			Cost:          50,
		},
	}}

	uc := newRecommendationUsecase(mockRoleRepo{role: role}, mockUserSkillRepo{}, courses)
	out, err := uc.RecommendCourses(context.Background(), uuid.New(), role.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Analysis.TotalGaps == 0 {
		t.Fatalf("expected gaps in bundled analysis, got %+v", out.Analysis)
	}
	res := out.Recommendations
	if len(res.Recommendations) == 0 {
		t.Fatalf("expected recommendations for open gaps")
	}

	first := res.Recommendations[0]
	if first.Skill != "HIPAA Compliance" {
		t.Fatalf("first recommendation = %q, want critical gap first", first.Skill)
	}
	if len(first.Courses) == 0 || first.Courses[0].Title != "HIPAA Privacy and Security" {
		t.Fatalf("unexpected courses for HIPAA gap: %+v", first.Courses)
	}
	if res.Summary.FreeCourses < 1 {
		t.Fatalf("expected free course counted, got %+v", res.Summary)
	}
}

func TestRecommendationUsecase_CrossSpecialtyCoursesConsidered(t *testing.T) {
	role := sampleRole() // Specialty: Informatics
	courses := mockCourseRepo{courses: []recommend.Course{
		{
			ID:            uuid.New(),
			Title:         "HIPAA for Security Teams",
			Specialty:     "Cybersecurity",
			SkillsCovered: []string{"HIPAA Compliance"},
			Duration:      "3 weeks",
			Difficulty:    "advanced",
			Cost:          0,
		},
	}}

	uc := newRecommendationUsecase(mockRoleRepo{role: role}, mockUserSkillRepo{}, courses)
	out, err := uc.RecommendCourses(context.Background(), uuid.New(), role.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	res := out.Recommendations
	if len(res.Recommendations) == 0 || len(res.Recommendations[0].Courses) == 0 {
		t.Fatalf("expected courses from other specialties to match: %+v", res.Recommendations)
	}
	if res.Recommendations[0].Courses[0].Title != "HIPAA for Security Teams" {
		t.Fatalf("unexpected course: %+v", res.Recommendations[0].Courses[0])
	}
}

func TestRecommendationUsecase_MissingRoleIDIsInvalidInput(t *testing.T) {
	uc := newRecommendationUsecase(mockRoleRepo{role: sampleRole()}, mockUserSkillRepo{}, mockCourseRepo{})
	_, err := uc.RecommendCourses(context.Background(), uuid.New(), uuid.Nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRecommendationUsecase_CatalogFailure(t *testing.T) {
	role := sampleRole()
	uc := newRecommendationUsecase(mockRoleRepo{role: role}, mockUserSkillRepo{}, mockCourseRepo{err: errors.New("boom")})
	_, err := uc.RecommendCourses(context.Background(), uuid.New(), role.ID)
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
