package listing

import (
	"strings"

	"github.com/jobsethiopia/jobsethiopia-go/internal/model"
)

// FacetAll is the sentinel facet value that disables a filter dimension.
const FacetAll = "all"

// JobQuery holds the search term and facet filters for the jobs list.
// All predicates combine with logical AND.
type JobQuery struct {
	Search      string
	Location    string
	Type        string
	Category    string
	CareerLevel string
}

// Match reports whether a job satisfies every active predicate. Search is
// a case-insensitive substring match over title, company, and description.
// Location matches by containment; the remaining facets match exactly.
func (q JobQuery) Match(job model.Job) bool {
	if q.Search != "" {
		term := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(job.Title), term) &&
			!strings.Contains(strings.ToLower(job.Company), term) &&
			!strings.Contains(strings.ToLower(job.Description), term) {
			return false
		}
	}

	if facetActive(q.Location) && !strings.Contains(strings.ToLower(job.Location), strings.ToLower(q.Location)) {
		return false
	}

	return facetMatches(q.Type, job.Type) &&
		facetMatches(q.Category, job.Category) &&
		facetMatches(q.CareerLevel, job.CareerLevel)
}

// TipQuery holds the search term and facet filters for the tips list.
type TipQuery struct {
	Search     string
	Category   string
	Difficulty string
	Status     string
}

// Match reports whether a tip satisfies every active predicate. Search is
// a case-insensitive substring match over title, content, and tags.
func (q TipQuery) Match(tip model.Tip) bool {
	if q.Search != "" {
		term := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(tip.Title), term) &&
			!strings.Contains(strings.ToLower(tip.Content), term) &&
			!tagMatches(tip.Tags, term) {
			return false
		}
	}

	return facetMatches(q.Category, tip.Category) &&
		facetMatches(q.Difficulty, tip.DifficultyLevel) &&
		facetMatches(q.Status, tip.Status)
}

func tagMatches(tags []string, lowerTerm string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), lowerTerm) {
			return true
		}
	}
	return false
}

// facetActive reports whether a facet filter constrains results at all.
func facetActive(filter string) bool {
	return filter != "" && !strings.EqualFold(filter, FacetAll)
}

// facetMatches applies one exact-match facet dimension.
func facetMatches(filter, value string) bool {
	return !facetActive(filter) || strings.EqualFold(filter, value)
}
