package dto

import "med-ready/internal/domain/projects"

type ProjectResponse struct {
	Name           string   `json:"name"`
	FullName       string   `json:"full_name"`
	Description    string   `json:"description"`
	URL            string   `json:"url"`
	Stars          int      `json:"stars"`
	Forks          int      `json:"forks"`
	Language       string   `json:"language"`
	Topics         []string `json:"topics"`
	MatchScore     int      `json:"match_score,omitempty"`
	Relevance      string   `json:"relevance"`
	RelatedSkill   string   `json:"related_skill,omitempty"`
	GapSeverity    string   `json:"gap_severity,omitempty"`
	WhyRecommended string   `json:"why_recommended,omitempty"`
}

type ProjectRecommendationsResponse struct {
	SkillGaps    int               `json:"skill_gaps"`
	Projects     []ProjectResponse `json:"projects"`
	BasedOnGaps  []string          `json:"based_on_gaps"`
	TotalFound   int               `json:"total_found"`
	UsedFallback bool              `json:"used_fallback"`
	Summary      string            `json:"summary"`
}

func NewProjectResponses(recs []projects.Recommendation) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, ProjectResponse{
			Name:           r.Name,
			FullName:       r.FullName,
			Description:    r.Description,
			URL:            r.URL,
			Stars:          r.Stars,
			Forks:          r.Forks,
			Language:       r.Language,
			Topics:         r.Topics,
			MatchScore:     r.MatchScore,
			Relevance:      r.Relevance,
			RelatedSkill:   r.RelatedSkill,
			GapSeverity:    r.GapSeverity,
			WhyRecommended: r.WhyRecommended,
		})
	}
	return out
}
