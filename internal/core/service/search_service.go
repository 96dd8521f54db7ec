package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/claimcheck/claimcheck-api/internal/api/metrics"
	"github.com/claimcheck/claimcheck-api/internal/core/domain"
	"github.com/claimcheck/claimcheck-api/internal/core/ports"
)

// SearchService implements the public "has this identity been claimed"
// lookup. Cache is optional; when nil every query goes to the store.
type SearchService struct {
	repo   ports.UserRepository
	cache  ports.SearchCache
	logger zerolog.Logger
}

func NewSearchService(repo ports.UserRepository, cache ports.SearchCache, logger zerolog.Logger) *SearchService {
	return &SearchService{repo: repo, cache: cache, logger: logger}
}

// Search runs a case-insensitive literal substring match of query against
// partner name/phone/email. Regex metacharacters in the query are escaped so
// input like "a.b*c" matches only that exact text.
func (s *SearchService) Search(ctx context.Context, query string) (*ports.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrMissingSearchQuery
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, query)
		if err != nil {
			// Cache trouble never fails the request.
			s.logger.Warn().Err(err).Msg("search cache read failed")
		} else if cached != nil {
			metrics.SearchesTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
	}

	start := time.Now()
	matches, err := s.repo.SearchPartners(ctx, regexp.QuoteMeta(query))
	if err != nil {
		return nil, err
	}
	metrics.SearchDuration.Observe(time.Since(start).Seconds())
	metrics.SearchesTotal.WithLabelValues("miss").Inc()

	if matches == nil {
		matches = []domain.PartnerMatch{}
	}
	result := &ports.SearchResult{Count: len(matches), Matches: matches}

	if s.cache != nil {
		if err := s.cache.Set(ctx, query, result); err != nil {
			s.logger.Warn().Err(err).Msg("search cache write failed")
		}
	}

	return result, nil
}
