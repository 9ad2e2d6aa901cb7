package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"med-ready/internal/domain/gap"
	"med-ready/internal/domain/projects"
	"med-ready/internal/infrastructure/cache"
	"med-ready/internal/infrastructure/github"
	"med-ready/internal/repository"

	"github.com/google/uuid"
)

const (
	maxGapsSearched     = 5
	gapResultsPerTerm   = 3
	maxRecommendations  = 10
	browseSearchTerm    = "healthcare"
	browseResultsPerReq = 10
)

type ProjectRecommendations struct {
	Recommendations []projects.Recommendation
	BasedOnGaps     []string
	TotalFound      int
	UsedFallback    bool
	Summary         string
}

type ProjectUsecase interface {
	RecommendProjects(ctx context.Context, userID, roleID uuid.UUID) (ProjectRecommendations, error)
	BrowseProjects(ctx context.Context, language string) ([]projects.Recommendation, error)
}

type Project struct {
	roles      repository.RoleRepository
	userSkills repository.UserSkillRepository
	search     github.SearchClient
	cache      SearchCache
	logger     *log.Logger
}

func NewProjectUsecase(
	roles repository.RoleRepository,
	userSkills repository.UserSkillRepository,
	search github.SearchClient,
	searchCache SearchCache,
	logger *log.Logger,
) *Project {
	return &Project{
		roles:      roles,
		userSkills: userSkills,
		search:     search,
		cache:      searchCache,
		logger:     logger,
	}
}

// RecommendProjects suggests open-source repositories whose stack lines
// up with the user's highest-priority skill gaps. External search
// failures degrade to a curated fallback list rather than an error.
func (u *Project) RecommendProjects(ctx context.Context, userID, roleID uuid.UUID) (ProjectRecommendations, error) {
	if userID == uuid.Nil {
		return ProjectRecommendations{}, ErrUnauthorized
	}
	if roleID == uuid.Nil {
		return ProjectRecommendations{}, ErrInvalidInput
	}

	role, err := u.roles.FindByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return ProjectRecommendations{}, ErrRoleNotFound
		}
		return ProjectRecommendations{}, ErrInternal
	}

	us, err := u.userSkills.FindByUserID(ctx, userID)
	if err != nil {
		return ProjectRecommendations{}, ErrInternal
	}

	analysis := gap.Analyze(toRequirements(role.Requirements), toUserSkills(us), role.Title)

	topGaps := analysis.Gaps
	if len(topGaps) > maxGapsSearched {
		topGaps = topGaps[:maxGapsSearched]
	}

	basedOn := make([]string, 0, len(topGaps))
	seen := make(map[int64]bool)
	recs := make([]projects.Recommendation, 0)

	rateLimited := false
	for _, g := range topGaps {
		basedOn = append(basedOn, g.SkillName)
		if rateLimited {
			continue
		}

		for _, term := range projects.SearchTerms(g.SkillName) {
			candidates, err := u.searchTerm(ctx, term, gapResultsPerTerm)
			if err != nil {
				if errors.Is(err, github.ErrRateLimited) {
					if u.logger != nil {
						u.logger.Printf("[Projects] rate limited, stopping external search | term=%s", term)
					}
					rateLimited = true
					break
				}
				if u.logger != nil {
					u.logger.Printf("[Projects] search failed | term=%s err=%v", term, err)
				}
				continue
			}

			for _, c := range candidates {
				if seen[c.ID] {
					continue
				}
				seen[c.ID] = true
				recs = append(recs, projects.Recommendation{
					Candidate:      c,
					MatchScore:     projects.MatchScore(c, term),
					Relevance:      projects.Relevance(c),
					RelatedSkill:   g.SkillName,
					GapSeverity:    g.Severity,
					WhyRecommended: projects.WhyRecommended(g.SkillName, g.Severity),
				})
			}
		}
	}

	if len(recs) == 0 {
		return ProjectRecommendations{
			Recommendations: projects.Fallback(),
			BasedOnGaps:     basedOn,
			TotalFound:      0,
			UsedFallback:    true,
			Summary:         "Showing curated healthcare projects while external search is unavailable",
		}, nil
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].MatchScore != recs[j].MatchScore {
			return recs[i].MatchScore > recs[j].MatchScore
		}
		return recs[i].Stars > recs[j].Stars
	})

	total := len(recs)
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}

	return ProjectRecommendations{
		Recommendations: recs,
		BasedOnGaps:     basedOn,
		TotalFound:      total,
		Summary:         fmt.Sprintf("Found %d open-source projects matching your top %d skill gaps", total, len(basedOn)),
	}, nil
}

// BrowseProjects lists popular healthcare repositories without a gap
// analysis, for unauthenticated discovery.
func (u *Project) BrowseProjects(ctx context.Context, language string) ([]projects.Recommendation, error) {
	term := browseSearchTerm
	if language != "" {
		term = browseSearchTerm + " " + language
	}

	candidates, err := u.searchTerm(ctx, term, browseResultsPerReq)
	if err != nil || len(candidates) == 0 {
		if err != nil && u.logger != nil {
			u.logger.Printf("[Projects] browse search failed | term=%s err=%v", term, err)
		}
		return projects.Fallback(), nil
	}

	recs := make([]projects.Recommendation, 0, len(candidates))
	for _, c := range candidates {
		recs = append(recs, projects.Recommendation{
			Candidate:  c,
			MatchScore: projects.MatchScore(c, term),
			Relevance:  projects.Relevance(c),
		})
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Stars > recs[j].Stars
	})
	if len(recs) > browseResultsPerReq {
		recs = recs[:browseResultsPerReq]
	}
	return recs, nil
}

// searchTerm consults the cache before the external API; results are
// cached per normalized term, so a hit is re-capped to the caller's
// page size.
func (u *Project) searchTerm(ctx context.Context, term string, perPage int) ([]projects.Candidate, error) {
	key := cache.SearchKey(term)

	if u.cache != nil {
		var cached []projects.Candidate
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			if len(cached) > perPage {
				cached = cached[:perPage]
			}
			return cached, nil
		}
	}

	candidates, err := u.search.Search(ctx, term, github.SearchOptions{PerPage: perPage})
	if err != nil {
		return nil, err
	}

	if u.cache != nil && len(candidates) > 0 {
		_ = u.cache.SetJSON(ctx, key, candidates)
	}
	return candidates, nil
}
