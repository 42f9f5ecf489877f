package semantic

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/sirupsen/logrus"

	"github.com/grocermatch/backend/internal/domain"
)

// Outcome tags how the manager reached the Ready state. Built indexes are
// never refreshed afterwards; surfacing the tag in startup logs keeps that
// staleness observable.
type Outcome string

const (
	// OutcomeLoaded means a persisted index artifact was found and opened
	OutcomeLoaded Outcome = "loaded"
	// OutcomeBuilt means no artifact existed and the index was built from a
	// full catalog scan, then persisted
	OutcomeBuilt Outcome = "built"
)

// Manager owns the lifecycle of the persisted semantic index: load the
// artifact if one exists at the configured location, otherwise build it from
// the catalog and persist it. Until Ensure succeeds the manager is
// uninitialized and every query fails with ErrIndexUnavailable.
type Manager struct {
	persistDir string
	repo       domain.ProductRepository
	log        *logrus.Logger

	mu    sync.RWMutex
	index bleve.Index
}

// NewManager creates an uninitialized index manager
func NewManager(persistDir string, repo domain.ProductRepository, log *logrus.Logger) *Manager {
	return &Manager{
		persistDir: persistDir,
		repo:       repo,
		log:        log,
	}
}

// Ensure transitions the manager to Ready, preferring a persisted artifact
// over a fresh build. It runs once at startup and may block for the duration
// of the catalog scan and index construction.
func (m *Manager) Ensure(ctx context.Context) (Outcome, error) {
	index, err := bleve.Open(m.persistDir)
	switch {
	case err == nil:
		m.setIndex(index)
		m.logReady(OutcomeLoaded, index)
		return OutcomeLoaded, nil
	case errors.Is(err, bleve.ErrorIndexPathDoesNotExist):
		// No artifact yet; fall through to build.
	case errors.Is(err, bleve.ErrorIndexMetaMissing):
		// The directory exists but holds no artifact, e.g. a crash before the
		// first persist completed. Clear it so the build can recreate it;
		// bleve refuses to create an index at a pre-existing path.
		m.log.WithField("persist_dir", m.persistDir).
			Warn("persist directory holds no index artifact, rebuilding")
		if rmErr := os.RemoveAll(m.persistDir); rmErr != nil {
			return "", fmt.Errorf("%w: clearing stale index directory %s: %v", domain.ErrIndexUnavailable, m.persistDir, rmErr)
		}
	default:
		return "", fmt.Errorf("%w: opening index at %s: %v", domain.ErrIndexUnavailable, m.persistDir, err)
	}

	index, err = m.build(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrIndexUnavailable, err)
	}

	m.setIndex(index)
	m.logReady(OutcomeBuilt, index)
	return OutcomeBuilt, nil
}

// build fetches the full catalog, converts every product into an indexable
// document, and persists the resulting index at the configured location.
// A failed build removes the partial artifact so the next startup does not
// mistake it for a loadable index.
func (m *Manager) build(ctx context.Context) (bleve.Index, error) {
	catalog, err := m.repo.FetchCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog for index build: %v", err)
	}

	index, err := bleve.New(m.persistDir, bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("creating index at %s: %v", m.persistDir, err)
	}

	batch := index.NewBatch()
	for _, product := range catalog {
		if err := batch.Index(product.ID, documentFromProduct(product)); err != nil {
			m.discard(index)
			return nil, fmt.Errorf("indexing product %s: %v", product.ID, err)
		}
	}

	if err := index.Batch(batch); err != nil {
		m.discard(index)
		return nil, fmt.Errorf("persisting index batch: %v", err)
	}

	return index, nil
}

// Query runs a similarity search against the index and returns ranked hits.
// This path is not exercised by the token-matching endpoint; it exists as a
// standing capability for ranked retrieval.
func (m *Manager) Query(ctx context.Context, text string, limit int) ([]domain.SemanticHit, error) {
	m.mu.RLock()
	index := m.index
	m.mu.RUnlock()

	if index == nil {
		return nil, domain.ErrIndexUnavailable
	}

	request := bleve.NewSearchRequestOptions(bleve.NewMatchQuery(text), limit, 0, false)
	request.Fields = []string{"*"}

	result, err := index.SearchInContext(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("%w: search failed: %v", domain.ErrIndexUnavailable, err)
	}

	hits := make([]domain.SemanticHit, 0, len(result.Hits))
	for _, hit := range result.Hits {
		hits = append(hits, domain.SemanticHit{
			Text:  fieldString(hit.Fields, "title"),
			Score: hit.Score,
			Metadata: domain.ProductMetadata{
				ID:          hit.ID,
				Description: fieldString(hit.Fields, "description"),
				Price:       fieldFloat(hit.Fields, "price"),
				Category:    fieldString(hit.Fields, "category"),
				ImageURL:    fieldString(hit.Fields, "imageUrl"),
			},
		})
	}

	return hits, nil
}

// Close releases the underlying index, if any
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.index == nil {
		return nil
	}
	err := m.index.Close()
	m.index = nil
	return err
}

func (m *Manager) setIndex(index bleve.Index) {
	m.mu.Lock()
	m.index = index
	m.mu.Unlock()
}

func (m *Manager) discard(index bleve.Index) {
	_ = index.Close()
	if err := os.RemoveAll(m.persistDir); err != nil {
		m.log.WithError(err).WithField("persist_dir", m.persistDir).
			Warn("could not remove partial index artifact")
	}
}

func (m *Manager) logReady(outcome Outcome, index bleve.Index) {
	count, err := index.DocCount()
	if err != nil {
		count = 0
	}
	m.log.WithFields(logrus.Fields{
		"outcome":     string(outcome),
		"documents":   count,
		"persist_dir": m.persistDir,
	}).Info("semantic index ready")
}

// indexDocument is the indexable shape of a product. Text concatenates
// title, description, and category; the remaining fields are stored as
// metadata alongside it.
type indexDocument struct {
	Text        string  `json:"text"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
}

func documentFromProduct(p domain.Product) indexDocument {
	return indexDocument{
		Text:        strings.TrimSpace(strings.Join([]string{p.Title, p.Description, p.Category}, " ")),
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
	}
}

func fieldString(fields map[string]interface{}, key string) string {
	if value, ok := fields[key].(string); ok {
		return value
	}
	return ""
}

func fieldFloat(fields map[string]interface{}, key string) float64 {
	if value, ok := fields[key].(float64); ok {
		return value
	}
	return 0
}
