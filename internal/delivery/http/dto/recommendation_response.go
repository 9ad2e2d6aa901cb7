package dto

import (
	"med-ready/internal/domain/recommend"

	"github.com/google/uuid"
)

type ScoredCourseResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Provider       string    `json:"provider,omitempty"`
	URL            string    `json:"url,omitempty"`
	Specialty      string    `json:"specialty"`
	SkillsCovered  []string  `json:"skills_covered"`
	Duration       string    `json:"duration"`
	Difficulty     string    `json:"difficulty"`
	Cost           float64   `json:"cost"`
	Coverage       string    `json:"coverage"`
	MatchScore     int       `json:"match_score"`
	WhyRecommended []string  `json:"why_recommended"`
}

type PathPhaseResponse struct {
	Phase         string   `json:"phase"`
	Actions       []string `json:"actions"`
	EstimatedTime string   `json:"estimated_time"`
	Deliverables  []string `json:"deliverables"`
}

type SkillRecommendationResponse struct {
	Skill         string                 `json:"skill"`
	SkillID       uuid.UUID              `json:"skill_id"`
	Category      string                 `json:"category"`
	GapSeverity   string                 `json:"gap_severity"`
	CurrentLevel  string                 `json:"current_level"`
	RequiredLevel string                 `json:"required_level"`
	GapPercentage int                    `json:"gap_percentage"`
	Courses       []ScoredCourseResponse `json:"courses"`
	LearningPath  []PathPhaseResponse    `json:"learning_path"`
}

type PathwayItemResponse struct {
	Skill    string                 `json:"skill"`
	Courses  []ScoredCourseResponse `json:"courses"`
	Timeline string                 `json:"timeline"`
	Priority string                 `json:"priority"`
}

type TimelineEntryResponse struct {
	Week         string   `json:"week"`
	Focus        string   `json:"focus"`
	Action       string   `json:"action"`
	Deliverables []string `json:"deliverables"`
	Priority     string   `json:"priority"`
}

type PathwayResponse struct {
	Foundation    []PathwayItemResponse   `json:"foundation"`
	Core          []PathwayItemResponse   `json:"core"`
	Advanced      []PathwayItemResponse   `json:"advanced"`
	Timeline      []TimelineEntryResponse `json:"timeline"`
	TotalDuration string                  `json:"total_duration"`
}

type QuickStartResponse struct {
	Skill      string `json:"skill"`
	Course     string `json:"course"`
	MatchScore int    `json:"match_score"`
}

type RecommendationSummaryResponse struct {
	TotalCoursesRecommended int                  `json:"total_courses_recommended"`
	CriticalSkillsToAddress int                  `json:"critical_skills_to_address"`
	EstimatedTotalCost      float64              `json:"estimated_total_cost"`
	FreeCourses             int                  `json:"free_courses"`
	PaidCourses             int                  `json:"paid_courses"`
	QuickStart              []QuickStartResponse `json:"quick_start"`
}

// CourseRecommendationsResponse bundles the gap analysis that produced
// the recommendations with the recommendations themselves.
type CourseRecommendationsResponse struct {
	Analysis        GapAnalysisResponse    `json:"analysis"`
	Recommendations RecommendationResponse `json:"recommendations"`
}

type RecommendationResponse struct {
	Recommendations []SkillRecommendationResponse `json:"recommendations"`
	LearningPathway PathwayResponse               `json:"learning_pathway"`
	Summary         RecommendationSummaryResponse `json:"summary"`
}

func NewScoredCourseResponses(courses []recommend.ScoredCourse) []ScoredCourseResponse {
	out := make([]ScoredCourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, ScoredCourseResponse{
			ID:             c.ID,
			Title:          c.Title,
			Description:    c.Description,
			Provider:       c.Provider,
			URL:            c.URL,
			Specialty:      c.Specialty,
			SkillsCovered:  c.SkillsCovered,
			Duration:       c.Duration,
			Difficulty:     c.Difficulty,
			Cost:           c.Cost,
			Coverage:       c.Coverage,
			MatchScore:     c.MatchScore,
			WhyRecommended: c.WhyRecommended,
		})
	}
	return out
}

func NewPathPhaseResponses(phases []recommend.PathPhase) []PathPhaseResponse {
	out := make([]PathPhaseResponse, 0, len(phases))
	for _, p := range phases {
		out = append(out, PathPhaseResponse{
			Phase:         p.Phase,
			Actions:       p.Actions,
			EstimatedTime: p.EstimatedTime,
			Deliverables:  p.Deliverables,
		})
	}
	return out
}

func newPathwayItemResponses(items []recommend.PathwayItem) []PathwayItemResponse {
	out := make([]PathwayItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, PathwayItemResponse{
			Skill:    it.Skill,
			Courses:  NewScoredCourseResponses(it.Courses),
			Timeline: it.Timeline,
			Priority: it.Priority,
		})
	}
	return out
}

func NewRecommendationResponse(res recommend.Result) RecommendationResponse {
	recs := make([]SkillRecommendationResponse, 0, len(res.Recommendations))
	for _, r := range res.Recommendations {
		recs = append(recs, SkillRecommendationResponse{
			Skill:         r.Skill,
			SkillID:       r.SkillID,
			Category:      r.Category,
			GapSeverity:   r.GapSeverity,
			CurrentLevel:  r.CurrentLevel,
			RequiredLevel: r.RequiredLevel,
			GapPercentage: r.GapPercentage,
			Courses:       NewScoredCourseResponses(r.Courses),
			LearningPath:  NewPathPhaseResponses(r.LearningPath),
		})
	}

	timeline := make([]TimelineEntryResponse, 0, len(res.LearningPathway.Timeline))
	for _, t := range res.LearningPathway.Timeline {
		timeline = append(timeline, TimelineEntryResponse{
			Week:         t.Week,
			Focus:        t.Focus,
			Action:       t.Action,
			Deliverables: t.Deliverables,
			Priority:     t.Priority,
		})
	}

	quickStart := make([]QuickStartResponse, 0, len(res.Summary.QuickStart))
	for _, qs := range res.Summary.QuickStart {
		quickStart = append(quickStart, QuickStartResponse{
			Skill:      qs.Skill,
			Course:     qs.Course,
			MatchScore: qs.MatchScore,
		})
	}

	return RecommendationResponse{
		Recommendations: recs,
		LearningPathway: PathwayResponse{
			Foundation:    newPathwayItemResponses(res.LearningPathway.Foundation),
			Core:          newPathwayItemResponses(res.LearningPathway.Core),
			Advanced:      newPathwayItemResponses(res.LearningPathway.Advanced),
			Timeline:      timeline,
			TotalDuration: res.LearningPathway.TotalDuration,
		},
		Summary: RecommendationSummaryResponse{
			TotalCoursesRecommended: res.Summary.TotalCoursesRecommended,
			CriticalSkillsToAddress: res.Summary.CriticalSkillsToAddress,
			EstimatedTotalCost:      res.Summary.EstimatedTotalCost,
			FreeCourses:             res.Summary.FreeCourses,
			PaidCourses:             res.Summary.PaidCourses,
			QuickStart:              quickStart,
		},
	}
}
