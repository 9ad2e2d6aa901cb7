package dto

import (
	"med-ready/internal/domain/gap"

	"github.com/google/uuid"
)

type GapResponse struct {
	SkillID       uuid.UUID `json:"skill_id"`
	SkillName     string    `json:"skill_name"`
	Category      string    `json:"category"`
	CurrentLevel  string    `json:"current_level"`
	RequiredLevel string    `json:"required_level"`
	GapScore      int       `json:"gap_score"`
	GapPercentage int       `json:"gap_percentage"`
	Importance    float64   `json:"importance"`
	Priority      float64   `json:"priority"`
	Severity      string    `json:"severity"`
}

type CategoryStatsResponse struct {
	TotalGaps            int `json:"total_gaps"`
	CriticalGaps         int `json:"critical_gaps"`
	AverageGapPercentage int `json:"average_gap_percentage"`
}

type TimeEstimateResponse struct {
	TotalHours int    `json:"total_hours"`
	Weeks      int    `json:"weeks"`
	Months     int    `json:"months"`
	Timeline   string `json:"timeline"`
}

type QuickWinResponse struct {
	SkillName     string `json:"skill_name"`
	CurrentLevel  string `json:"current_level"`
	RequiredLevel string `json:"required_level"`
	EstimatedTime string `json:"estimated_time"`
}

type FocusAreaResponse struct {
	Category  string `json:"category"`
	Priority  string `json:"priority"`
	GapsCount int    `json:"gaps_count"`
	Message   string `json:"message"`
}

type AnalysisSummaryResponse struct {
	Message       string               `json:"message"`
	TopPriorities []string             `json:"top_priorities"`
	EstimatedTime TimeEstimateResponse `json:"estimated_time"`
	QuickWins     []QuickWinResponse   `json:"quick_wins"`
	FocusAreas    []FocusAreaResponse  `json:"focus_areas"`
}

type GapAnalysisResponse struct {
	ReadinessScore int                              `json:"readiness_score"`
	TotalGaps      int                              `json:"total_gaps"`
	CriticalGaps   int                              `json:"critical_gaps"`
	HighGaps       int                              `json:"high_gaps"`
	MediumGaps     int                              `json:"medium_gaps"`
	LowGaps        int                              `json:"low_gaps"`
	Gaps           []GapResponse                    `json:"gaps"`
	GapsByCategory map[string]CategoryStatsResponse `json:"gaps_by_category"`
	Summary        AnalysisSummaryResponse          `json:"summary"`
}

func NewGapAnalysisResponse(a gap.Analysis) GapAnalysisResponse {
	gaps := make([]GapResponse, 0, len(a.Gaps))
	for _, g := range a.Gaps {
		gaps = append(gaps, GapResponse{
			SkillID:       g.SkillID,
			SkillName:     g.SkillName,
			Category:      g.Category,
			CurrentLevel:  g.CurrentLevel,
			RequiredLevel: g.RequiredLevel,
			GapScore:      g.GapScore,
			GapPercentage: g.GapPercentage,
			Importance:    g.Importance,
			Priority:      g.Priority,
			Severity:      g.Severity,
		})
	}

	byCategory := make(map[string]CategoryStatsResponse, len(a.GapsByCategory))
	for cat, stats := range a.GapsByCategory {
		byCategory[cat] = CategoryStatsResponse{
			TotalGaps:            stats.TotalGaps,
			CriticalGaps:         stats.CriticalGaps,
			AverageGapPercentage: stats.AverageGapPercentage,
		}
	}

	quickWins := make([]QuickWinResponse, 0, len(a.Summary.QuickWins))
	for _, qw := range a.Summary.QuickWins {
		quickWins = append(quickWins, QuickWinResponse{
			SkillName:     qw.SkillName,
			CurrentLevel:  qw.CurrentLevel,
			RequiredLevel: qw.RequiredLevel,
			EstimatedTime: qw.EstimatedTime,
		})
	}

	return GapAnalysisResponse{
		ReadinessScore: a.ReadinessScore,
		TotalGaps:      a.TotalGaps,
		CriticalGaps:   a.CriticalGaps,
		HighGaps:       a.HighGaps,
		MediumGaps:     a.MediumGaps,
		LowGaps:        a.LowGaps,
		Gaps:           gaps,
		GapsByCategory: byCategory,
		Summary: AnalysisSummaryResponse{
			Message:       a.Summary.Message,
			TopPriorities: a.Summary.TopPriorities,
			EstimatedTime: TimeEstimateResponse{
				TotalHours: a.Summary.EstimatedTime.TotalHours,
				Weeks:      a.Summary.EstimatedTime.Weeks,
				Months:     a.Summary.EstimatedTime.Months,
				Timeline:   a.Summary.EstimatedTime.Timeline,
			},
			QuickWins:  quickWins,
			FocusAreas: NewFocusAreaResponses(a.Summary.FocusAreas),
		},
	}
}

func NewFocusAreaResponses(areas []gap.FocusArea) []FocusAreaResponse {
	out := make([]FocusAreaResponse, 0, len(areas))
	for _, fa := range areas {
		out = append(out, FocusAreaResponse{
			Category:  fa.Category,
			Priority:  fa.Priority,
			GapsCount: fa.GapsCount,
			Message:   fa.Message,
		})
	}
	return out
}
