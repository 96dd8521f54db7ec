package ports

import (
	"context"

	"github.com/claimcheck/claimcheck-api/internal/core/domain"
)

// SearchResult is the outcome of a partner search. An empty Matches list is a
// valid, non-error result.
type SearchResult struct {
	Count   int                   `json:"count"`
	Matches []domain.PartnerMatch `json:"matches"`
}

// SearchService defines the partner lookup use case.
type SearchService interface {
	// Search matches query as a literal, case-insensitive substring against
	// stored partner records. Regex metacharacters in query are escaped
	// before matching.
	Search(ctx context.Context, query string) (*SearchResult, error)
}

// SearchCache is a short-lived cache of serialized search results, keyed by
// normalized query. A miss is (nil, nil).
type SearchCache interface {
	Get(ctx context.Context, query string) (*SearchResult, error)
	Set(ctx context.Context, query string, result *SearchResult) error
}
