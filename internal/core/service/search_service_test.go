package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/claimcheck/claimcheck-api/internal/core/domain"
	"github.com/claimcheck/claimcheck-api/internal/core/ports"
)

type stubSearchCache struct {
	store  map[string]*ports.SearchResult
	getErr error
	setErr error
	gets   int
	sets   int
}

func newStubSearchCache() *stubSearchCache {
	return &stubSearchCache{store: make(map[string]*ports.SearchResult)}
}

func (c *stubSearchCache) Get(_ context.Context, query string) (*ports.SearchResult, error) {
	c.gets++
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.store[query], nil
}

func (c *stubSearchCache) Set(_ context.Context, query string, result *ports.SearchResult) error {
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.store[query] = result
	return nil
}

// seedClaim registers a user and attaches a partner record.
func seedClaim(t *testing.T, repo *stubUserRepo, name, phone, email string, partner domain.Partner) {
	t.Helper()
	auth := NewAuthService(repo, zerolog.Nop())
	result, err := auth.Register(context.Background(), ports.RegisterInput{
		Name: name, Phone: phone, Email: email, Password: "p4ss",
	})
	if err != nil {
		t.Fatalf("seed register failed: %v", err)
	}
	users := NewUserService(repo, zerolog.Nop())
	_, err = users.UpdatePartner(context.Background(), ports.UpdatePartnerInput{
		UserID:       result.User.ID,
		SessionToken: result.SessionToken,
		PartnerName:  partner.Name,
		PartnerPhone: partner.Phone,
		PartnerEmail: partner.Email,
	})
	if err != nil {
		t.Fatalf("seed partner update failed: %v", err)
	}
}

func TestSearchService_BlankQuery(t *testing.T) {
	svc := NewSearchService(newStubUserRepo(), nil, zerolog.Nop())

	if _, err := svc.Search(context.Background(), ""); !errors.Is(err, domain.ErrMissingSearchQuery) {
		t.Fatalf("expected ErrMissingSearchQuery, got %v", err)
	}
	if _, err := svc.Search(context.Background(), "   "); !errors.Is(err, domain.ErrMissingSearchQuery) {
		t.Fatalf("expected ErrMissingSearchQuery for whitespace, got %v", err)
	}
}

func TestSearchService_MatchByPartnerPhone(t *testing.T) {
	repo := newStubUserRepo()
	seedClaim(t, repo, "A", "111", "a@x.com", domain.Partner{Name: "B", Phone: "222", Email: "b@x.com"})
	svc := NewSearchService(repo, nil, zerolog.Nop())

	result, err := svc.Search(context.Background(), "222")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if result.Count != 1 || len(result.Matches) != 1 {
		t.Fatalf("expected one match, got %+v", result)
	}
	if result.Matches[0].Name != "A" {
		t.Fatalf("expected submitter name, got %q", result.Matches[0].Name)
	}
	if result.Matches[0].CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
}

func TestSearchService_CaseInsensitive(t *testing.T) {
	repo := newStubUserRepo()
	seedClaim(t, repo, "A", "111", "a@x.com", domain.Partner{Name: "Bobby Tables", Phone: "222", Email: "b@x.com"})
	svc := NewSearchService(repo, nil, zerolog.Nop())

	result, err := svc.Search(context.Background(), "bobby")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if result.Count != 1 {
		t.Fatalf("expected case-insensitive match, got %+v", result)
	}
}

func TestSearchService_RegexMetacharactersAreLiteral(t *testing.T) {
	repo := newStubUserRepo()
	seedClaim(t, repo, "A", "111", "a@x.com", domain.Partner{Name: "aXbc", Phone: "222", Email: "b@x.com"})
	seedClaim(t, repo, "C", "333", "c@x.com", domain.Partner{Name: "literal a.b*c here", Phone: "444", Email: "d@x.com"})
	svc := NewSearchService(repo, nil, zerolog.Nop())

	// "a.b*c" as a raw regex would match "aXbc"; escaped, it may only match
	// the literal text.
	result, err := svc.Search(context.Background(), "a.b*c")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if result.Count != 1 || result.Matches[0].Name != "C" {
		t.Fatalf("expected only the literal occurrence, got %+v", result)
	}
}

func TestSearchService_SkipsUsersWithoutPartner(t *testing.T) {
	repo := newStubUserRepo()
	auth := NewAuthService(repo, zerolog.Nop())
	if _, err := auth.Register(context.Background(), ports.RegisterInput{
		Name: "NoPartner", Phone: "555", Email: "n@x.com", Password: "p",
	}); err != nil {
		t.Fatalf("seed register failed: %v", err)
	}
	svc := NewSearchService(repo, nil, zerolog.Nop())

	result, err := svc.Search(context.Background(), "555")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if result.Count != 0 {
		t.Fatalf("expected no matches against the user's own phone, got %+v", result)
	}
	if result.Matches == nil {
		t.Fatalf("expected empty list, not nil")
	}
}

func TestSearchService_CacheHitSkipsStore(t *testing.T) {
	repo := newStubUserRepo()
	seedClaim(t, repo, "A", "111", "a@x.com", domain.Partner{Name: "B", Phone: "222", Email: "b@x.com"})
	cache := newStubSearchCache()
	svc := NewSearchService(repo, cache, zerolog.Nop())

	first, err := svc.Search(context.Background(), "222")
	if err != nil {
		t.Fatalf("first search failed: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected result to be cached, sets=%d", cache.sets)
	}

	// Second identical query is served from the cache even after the
	// underlying data changes.
	seedClaim(t, repo, "D", "666", "d2@x.com", domain.Partner{Name: "E", Phone: "222", Email: "e@x.com"})
	second, err := svc.Search(context.Background(), "222")
	if err != nil {
		t.Fatalf("second search failed: %v", err)
	}
	if second.Count != first.Count {
		t.Fatalf("expected cached count %d, got %d", first.Count, second.Count)
	}
}

func TestSearchService_CacheFailureFallsThrough(t *testing.T) {
	repo := newStubUserRepo()
	seedClaim(t, repo, "A", "111", "a@x.com", domain.Partner{Name: "B", Phone: "222", Email: "b@x.com"})
	cache := newStubSearchCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	svc := NewSearchService(repo, cache, zerolog.Nop())

	result, err := svc.Search(context.Background(), "222")
	if err != nil {
		t.Fatalf("expected cache failure to degrade to a store query, got %v", err)
	}
	if result.Count != 1 {
		t.Fatalf("expected one match, got %+v", result)
	}
}
