package usecase

import (
	"context"
	"errors"
	"testing"

	"med-ready/internal/repository"

	"github.com/google/uuid"
)

type mockRoleRepo struct {
	role repository.Role
	err  error
}

func (m mockRoleRepo) FindByID(context.Context, uuid.UUID) (repository.Role, error) {
	return m.role, m.err
}
func (m mockRoleRepo) List(context.Context) ([]repository.Role, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []repository.Role{m.role}, nil
}

type mockUserSkillRepo struct {
	items []repository.UserSkill
	err   error
}

func (m mockUserSkillRepo) FindByUserID(context.Context, uuid.UUID) ([]repository.UserSkill, error) {
	return m.items, m.err
}
func (m mockUserSkillRepo) FindByUserAndSkill(context.Context, uuid.UUID, uuid.UUID) (repository.UserSkill, error) {
	return repository.UserSkill{}, repository.ErrUserSkillNotFound
}
func (m mockUserSkillRepo) SkillExistsByID(context.Context, uuid.UUID) (bool, error) {
	return true, nil
}
func (m mockUserSkillRepo) Upsert(_ context.Context, us repository.UserSkill) (repository.UserSkill, error) {
	return us, nil
}
func (m mockUserSkillRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type mockNotifier struct {
	events []string
}

func (m *mockNotifier) AnalysisCompleted(_ uuid.UUID, event string, _ any) {
	m.events = append(m.events, event)
}

func sampleRole() repository.Role {
	return repository.Role{
		ID:        uuid.New(),
		Title:     "Clinical Informatics Specialist",
		Specialty: "Informatics",
		Requirements: []repository.RoleRequirement{
			{SkillID: uuid.New(), SkillName: "HIPAA Compliance", Category: "Compliance", RequiredLevel: "advanced", Importance: 10},
			{SkillID: uuid.New(), SkillName: "EHR Systems", Category: "Clinical Systems", RequiredLevel: "intermediate", Importance: 7},
		},
	}
}

func TestAnalysisUsecase_RoleNotFound(t *testing.T) {
	uc := NewAnalysisUsecase(mockRoleRepo{err: repository.ErrRoleNotFound}, mockUserSkillRepo{}, nil)
	_, err := uc.AnalyzeGaps(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestAnalysisUsecase_NilUser(t *testing.T) {
	uc := NewAnalysisUsecase(mockRoleRepo{role: sampleRole()}, mockUserSkillRepo{}, nil)
	_, err := uc.AnalyzeGaps(context.Background(), uuid.Nil, uuid.New())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAnalysisUsecase_EmptyProfileAnalyzesEverythingAsGap(t *testing.T) {
	role := sampleRole()
	notifier := &mockNotifier{}
	uc := NewAnalysisUsecase(mockRoleRepo{role: role}, mockUserSkillRepo{}, notifier)

	analysis, err := uc.AnalyzeGaps(context.Background(), uuid.New(), role.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if analysis.ReadinessScore != 0 {
		t.Fatalf("readiness = %d, want 0", analysis.ReadinessScore)
	}
	if analysis.TotalGaps != 2 {
		t.Fatalf("totalGaps = %d, want 2", analysis.TotalGaps)
	}
	if len(notifier.events) != 1 || notifier.events[0] != "gap_analysis_completed" {
		t.Fatalf("unexpected notifier events: %v", notifier.events)
	}
}

func TestAnalysisUsecase_MatchedSkillsReduceGaps(t *testing.T) {
	role := sampleRole()
	us := mockUserSkillRepo{items: []repository.UserSkill{
		{SkillID: role.Requirements[0].SkillID, SkillName: "HIPAA Compliance", Level: "advanced"},
		{SkillID: role.Requirements[1].SkillID, SkillName: "EHR Systems", Level: "intermediate"},
	}}
	uc := NewAnalysisUsecase(mockRoleRepo{role: role}, us, nil)

	analysis, err := uc.AnalyzeGaps(context.Background(), uuid.New(), role.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if analysis.ReadinessScore != 100 {
		t.Fatalf("readiness = %d, want 100", analysis.ReadinessScore)
	}
	// Met requirements stay in the report as zero-score records.
	if analysis.TotalGaps != 2 {
		t.Fatalf("totalGaps = %d, want 2", analysis.TotalGaps)
	}
	for _, g := range analysis.Gaps {
		if g.GapScore != 0 {
			t.Fatalf("fully met profile left an open gap: %+v", g)
		}
	}
	if analysis.CriticalGaps != 0 || analysis.HighGaps != 0 || analysis.MediumGaps != 0 {
		t.Fatalf("unexpected severity counts: %+v", analysis)
	}
}

func TestAnalysisUsecase_MissingRoleIDIsInvalidInput(t *testing.T) {
	uc := NewAnalysisUsecase(mockRoleRepo{role: sampleRole()}, mockUserSkillRepo{}, nil)
	_, err := uc.AnalyzeGaps(context.Background(), uuid.New(), uuid.Nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAnalysisUsecase_RepositoryFailure(t *testing.T) {
	role := sampleRole()
	uc := NewAnalysisUsecase(mockRoleRepo{role: role}, mockUserSkillRepo{err: errors.New("boom")}, nil)
	_, err := uc.AnalyzeGaps(context.Background(), uuid.New(), role.ID)
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
