package usecase

import (
	"reflect"
	"testing"

	"github.com/grocermatch/backend/internal/domain"
)

func testCatalog() []domain.Product {
	return []domain.Product{
		{ID: "1", Title: "Organic Tomato Sauce", Description: "Slow cooked", Price: 4.99, Category: "pantry"},
		{ID: "2", Title: "Whole Milk", Price: 3.49, Category: "dairy"},
		{ID: "3", Title: "Basil Pesto", Price: 5.99, Category: "pantry"},
		{ID: "4", Title: "Organic Tomato Sauce", Price: 5.49, Category: "pantry"},
	}
}

func TestMatchEngine(t *testing.T) {
	engine := NewMatchEngine()

	t.Run("matches products sharing a normalized token", func(t *testing.T) {
		queryTokens := NormalizeAll([]string{"Fresh Tomatoes"})

		results, titles := engine.Match(queryTokens, testCatalog())

		if len(results) != 2 {
			t.Fatalf("results = %d, want 2", len(results))
		}
		if results[0].Metadata.ID != "1" || results[1].Metadata.ID != "4" {
			t.Errorf("result IDs = %s, %s, want 1, 4 (catalog order)", results[0].Metadata.ID, results[1].Metadata.ID)
		}
		if results[0].Text != "Organic Tomato Sauce" {
			t.Errorf("Text = %q, want %q", results[0].Text, "Organic Tomato Sauce")
		}
		if !reflect.DeepEqual(titles, []string{"Organic Tomato Sauce"}) {
			t.Errorf("matched titles = %v, want deduplicated single title", titles)
		}
	})

	t.Run("carries product metadata through unchanged", func(t *testing.T) {
		results, _ := engine.Match([]string{"milk"}, testCatalog())

		if len(results) != 1 {
			t.Fatalf("results = %d, want 1", len(results))
		}
		got := results[0].Metadata
		if got.ID != "2" || got.Price != 3.49 || got.Category != "dairy" {
			t.Errorf("metadata = %+v, want product 2 fields", got)
		}
	})

	t.Run("returns nothing when no vocabulary is shared", func(t *testing.T) {
		results, titles := engine.Match(NormalizeAll([]string{"salmon fillet"}), testCatalog())

		if len(results) != 0 {
			t.Errorf("results = %v, want empty", results)
		}
		if len(titles) != 0 {
			t.Errorf("matched titles = %v, want empty", titles)
		}
	})

	t.Run("empty query tokens match nothing", func(t *testing.T) {
		queryTokens := NormalizeAll([]string{"green", "and", "for"})
		if len(queryTokens) != 0 {
			t.Fatalf("queryTokens = %v, want empty after stopword removal", queryTokens)
		}

		results, titles := engine.Match(queryTokens, testCatalog())

		if len(results) != 0 {
			t.Errorf("results = %v, want empty", results)
		}
		if len(titles) != 0 {
			t.Errorf("matched titles = %v, want empty", titles)
		}
	})

	t.Run("adding query terms never removes matches", func(t *testing.T) {
		narrow := NormalizeAll([]string{"Tomatoes"})
		wide := NormalizeAll([]string{"Tomatoes", "Milk", "Pesto"})

		narrowResults, _ := engine.Match(narrow, testCatalog())
		wideResults, _ := engine.Match(wide, testCatalog())

		if len(wideResults) < len(narrowResults) {
			t.Fatalf("wider query matched %d products, narrower matched %d", len(wideResults), len(narrowResults))
		}

		wideIDs := make(map[string]struct{}, len(wideResults))
		for _, r := range wideResults {
			wideIDs[r.Metadata.ID] = struct{}{}
		}
		for _, r := range narrowResults {
			if _, ok := wideIDs[r.Metadata.ID]; !ok {
				t.Errorf("product %s matched narrow query but not its superset", r.Metadata.ID)
			}
		}
	})

	t.Run("empty catalog yields empty results", func(t *testing.T) {
		results, titles := engine.Match([]string{"tomato"}, nil)
		if len(results) != 0 || len(titles) != 0 {
			t.Errorf("results = %v, titles = %v, want both empty", results, titles)
		}
	})
}
