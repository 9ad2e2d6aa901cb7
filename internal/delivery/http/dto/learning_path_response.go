package dto

import (
	"time"

	"med-ready/internal/domain/path"

	"github.com/google/uuid"
)

type PhaseSkillResponse struct {
	Name          string `json:"name"`
	CurrentLevel  string `json:"current_level"`
	RequiredLevel string `json:"required_level"`
	GapPercentage int    `json:"gap_percentage"`
}

type PhaseResponse struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Skills      []PhaseSkillResponse   `json:"skills"`
	Courses     []ScoredCourseResponse `json:"courses"`
	Timeline    string                 `json:"timeline"`
	Priority    string                 `json:"priority"`
}

type WeekEntryResponse struct {
	Week           int                    `json:"week"`
	Phase          string                 `json:"phase"`
	Focus          string                 `json:"focus"`
	Action         string                 `json:"action"`
	Deliverables   []string               `json:"deliverables"`
	Resources      []ScoredCourseResponse `json:"resources"`
	EstimatedHours int                    `json:"estimated_hours"`
	Priority       string                 `json:"priority"`
}

type MilestoneResponse struct {
	Name         string   `json:"name"`
	Date         string   `json:"date"`
	Criteria     []string `json:"criteria"`
	SkillsCount  int      `json:"skills_count"`
	CoursesCount int      `json:"courses_count"`
}

type ResourceSkillResponse struct {
	Name         string              `json:"name"`
	Severity     string              `json:"severity"`
	LearningPath []PathPhaseResponse `json:"learning_path"`
}

type ResourcesResponse struct {
	Courses        []ScoredCourseResponse  `json:"courses"`
	Skills         []ResourceSkillResponse `json:"skills"`
	TotalResources int                     `json:"total_resources"`
}

type PathSummaryResponse struct {
	TotalWeeks    int                 `json:"total_weeks"`
	TotalCourses  int                 `json:"total_courses"`
	EstimatedCost float64             `json:"estimated_cost"`
	FocusAreas    []FocusAreaResponse `json:"focus_areas"`
}

type LearningPathResponse struct {
	UserID              uuid.UUID           `json:"user_id"`
	TargetRoleID        uuid.UUID           `json:"target_role_id"`
	GeneratedAt         time.Time           `json:"generated_at"`
	ReadinessScore      int                 `json:"readiness_score"`
	Timeline            string              `json:"timeline"`
	EstimatedCompletion string              `json:"estimated_completion"`
	Phases              []PhaseResponse     `json:"phases"`
	WeeklyPlan          []WeekEntryResponse `json:"weekly_plan"`
	Milestones          []MilestoneResponse `json:"milestones"`
	Resources           ResourcesResponse   `json:"resources"`
	Summary             PathSummaryResponse `json:"summary"`
}

func NewLearningPathResponse(lp path.LearningPath) LearningPathResponse {
	phases := make([]PhaseResponse, 0, len(lp.Phases))
	for _, p := range lp.Phases {
		skills := make([]PhaseSkillResponse, 0, len(p.Skills))
		for _, s := range p.Skills {
			skills = append(skills, PhaseSkillResponse{
				Name:          s.Name,
				CurrentLevel:  s.CurrentLevel,
				RequiredLevel: s.RequiredLevel,
				GapPercentage: s.GapPercentage,
			})
		}
		phases = append(phases, PhaseResponse{
			Title:       p.Title,
			Description: p.Description,
			Skills:      skills,
			Courses:     NewScoredCourseResponses(p.Courses),
			Timeline:    p.Timeline,
			Priority:    p.Priority,
		})
	}

	weekly := make([]WeekEntryResponse, 0, len(lp.WeeklyPlan))
	for _, w := range lp.WeeklyPlan {
		weekly = append(weekly, WeekEntryResponse{
			Week:           w.Week,
			Phase:          w.Phase,
			Focus:          w.Focus,
			Action:         w.Action,
			Deliverables:   w.Deliverables,
			Resources:      NewScoredCourseResponses(w.Resources),
			EstimatedHours: w.EstimatedHours,
			Priority:       w.Priority,
		})
	}

	milestones := make([]MilestoneResponse, 0, len(lp.Milestones))
	for _, m := range lp.Milestones {
		milestones = append(milestones, MilestoneResponse{
			Name:         m.Name,
			Date:         m.Date,
			Criteria:     m.Criteria,
			SkillsCount:  m.SkillsCount,
			CoursesCount: m.CoursesCount,
		})
	}

	resourceSkills := make([]ResourceSkillResponse, 0, len(lp.Resources.Skills))
	for _, s := range lp.Resources.Skills {
		resourceSkills = append(resourceSkills, ResourceSkillResponse{
			Name:         s.Name,
			Severity:     s.Severity,
			LearningPath: NewPathPhaseResponses(s.LearningPath),
		})
	}

	return LearningPathResponse{
		UserID:              lp.UserID,
		TargetRoleID:        lp.TargetRoleID,
		GeneratedAt:         lp.GeneratedAt,
		ReadinessScore:      lp.ReadinessScore,
		Timeline:            lp.Timeline,
		EstimatedCompletion: lp.EstimatedCompletion,
		Phases:              phases,
		WeeklyPlan:          weekly,
		Milestones:          milestones,
		Resources: ResourcesResponse{
			Courses:        NewScoredCourseResponses(lp.Resources.Courses),
			Skills:         resourceSkills,
			TotalResources: lp.Resources.TotalResources,
		},
		Summary: PathSummaryResponse{
			TotalWeeks:    lp.Summary.TotalWeeks,
			TotalCourses:  lp.Summary.TotalCourses,
			EstimatedCost: lp.Summary.EstimatedCost,
			FocusAreas:    NewFocusAreaResponses(lp.Summary.FocusAreas),
		},
	}
}
