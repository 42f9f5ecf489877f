package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/grocermatch/backend/internal/domain"
)

// QueryService orchestrates a matching request: normalize the raw query
// terms, fetch the catalog snapshot, run the match engine, shape the
// response. The catalog is re-read on every call; nothing is cached or
// retained across requests.
type QueryService struct {
	repo   domain.ProductRepository
	engine *MatchEngine
	log    *logrus.Logger
}

// NewQueryService creates a new query service with dependencies
func NewQueryService(repo domain.ProductRepository, log *logrus.Logger) *QueryService {
	return &QueryService{
		repo:   repo,
		engine: NewMatchEngine(),
		log:    log,
	}
}

// HandleQuery normalizes every element of rawQuery into one merged token
// sequence and matches it against the current catalog snapshot. Store
// failures propagate typed; the HTTP layer converts them into the error
// response shape.
func (s *QueryService) HandleQuery(ctx context.Context, rawQuery []string) (*domain.QueryResponse, error) {
	queryTokens := NormalizeAll(rawQuery)

	s.log.WithFields(logrus.Fields{
		"terms":  len(rawQuery),
		"tokens": queryTokens,
	}).Debug("processed query terms")

	catalog, err := s.repo.FetchCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog snapshot: %w", err)
	}

	results, matchedTitles := s.engine.Match(queryTokens, catalog)

	return &domain.QueryResponse{
		Results:       results,
		MatchedTitles: matchedTitles,
	}, nil
}
