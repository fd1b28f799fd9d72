package search

import (
	"testing"

	"github.com/google/uuid"

	"sealcheck/internal/models"
)

// fixtureEngine builds an engine over a small but representative data set:
// one seal-required parent with children, plus unsealed categories that
// create substring overlap and tie-break situations.
func fixtureEngine(t *testing.T) (*Engine, map[string]models.Category) {
	t.Helper()

	cats := map[string]models.Category{
		"pain":    newCategory("OTC Pain Relievers", true),
		"eye":     newCategory("Eye Drops", true),
		"cold":    newCategory("Cough and Cold Medicine", true),
		"baby":    newCategory("Baby Food", false),
		"vitamin": newCategory("Vitamins and Supplements", false),
	}
	reg := "21 CFR 211.132"
	pain := cats["pain"]
	pain.RegulationCode = &reg
	cats["pain"] = pain

	categories := make([]models.Category, 0, len(cats))
	for _, c := range cats {
		categories = append(categories, c)
	}
	keywords := []models.Keyword{
		newKeyword(cats["pain"].ID, "tylenol"),
		newKeyword(cats["pain"].ID, "advil"),
		newKeyword(cats["pain"].ID, "ibuprofen"),
		newKeyword(cats["eye"].ID, "eye drops"),
		newKeyword(cats["eye"].ID, "visine"),
		newKeyword(cats["cold"].ID, "cough syrup"),
		newKeyword(cats["cold"].ID, "nyquil"),
		newKeyword(cats["baby"].ID, "baby food"),
		newKeyword(cats["baby"].ID, "gerber"),
		newKeyword(cats["vitamin"].ID, "vitamins"),
		newKeyword(cats["vitamin"].ID, "fish oil"),
	}

	ix := mustBuild(t, categories, keywords)
	return NewEngine(ix), cats
}

// ids extracts the result IDs in order.
func ids(results []*models.Category) []uuid.UUID {
	out := make([]uuid.UUID, len(results))
	for i, c := range results {
		out[i] = c.ID
	}
	return out
}

// TestSearchExactKeywordScenario covers the canonical flow: one exact
// keyword resolves to exactly its owning category.
func TestSearchExactKeywordScenario(t *testing.T) {
	eng, cats := fixtureEngine(t)

	results := eng.Search("tylenol")
	if len(results) != 1 {
		t.Fatalf("Search(tylenol): got %d results, want 1", len(results))
	}
	if results[0].ID != cats["pain"].ID {
		t.Errorf("Search(tylenol): got %q", results[0].Name)
	}
	if !results[0].RequiresSeal {
		t.Error("Search(tylenol): result should require a seal")
	}
	if results[0].RegulationCode == nil || *results[0].RegulationCode != "21 CFR 211.132" {
		t.Errorf("Search(tylenol): regulation code = %v", results[0].RegulationCode)
	}
}

// TestSearchExactBeatsSubstring verifies that for every seeded keyword, the
// owning category is returned and outranks categories matched only through
// substring overlap.
func TestSearchExactBeatsSubstring(t *testing.T) {
	// "drops" is an exact keyword of one category and only a substring of
	// the other's name. The substring category is lexically earlier and
	// also seal-required, so only the score can put the exact match first.
	astringent := newCategory("Astringent Drops Kit", true)
	eye := newCategory("Eye Drops", true)
	ix := mustBuild(t,
		[]models.Category{astringent, eye},
		[]models.Keyword{
			newKeyword(eye.ID, "drops"),
			newKeyword(astringent.ID, "astringent"),
		})
	eng := NewEngine(ix)

	results := eng.Search("drops")
	if len(results) != 2 {
		t.Fatalf("Search(drops): got %d results, want 2", len(results))
	}
	if results[0].ID != eye.ID {
		t.Errorf("exact keyword owner should rank first, got %q", results[0].Name)
	}
}

// TestSearchNoDuplicates verifies no category ever appears twice, even when
// several tokens and paths match it.
func TestSearchNoDuplicates(t *testing.T) {
	eng, _ := fixtureEngine(t)

	for _, q := range []string{"eye drops", "baby food vitamins", "cough syrup nyquil", "o"} {
		results := eng.Search(q)
		seen := make(map[uuid.UUID]bool)
		for _, c := range results {
			if seen[c.ID] {
				t.Errorf("Search(%q): category %q duplicated", q, c.Name)
			}
			seen[c.ID] = true
		}
	}
}

// TestSearchDeterministic verifies repeated searches return identical
// ordered results.
func TestSearchDeterministic(t *testing.T) {
	eng, _ := fixtureEngine(t)

	queries := []string{"eye drops", "vitamins", "o", "baby food gerber"}
	for _, q := range queries {
		first := ids(eng.Search(q))
		for i := 0; i < 20; i++ {
			again := ids(eng.Search(q))
			if len(again) != len(first) {
				t.Fatalf("Search(%q): result length changed between runs", q)
			}
			for j := range first {
				if again[j] != first[j] {
					t.Fatalf("Search(%q): ordering changed between runs at position %d", q, j)
				}
			}
		}
	}
}

// TestSearchCaseAndWhitespaceInsensitive verifies query normalization.
func TestSearchCaseAndWhitespaceInsensitive(t *testing.T) {
	eng, _ := fixtureEngine(t)

	base := ids(eng.Search("tylenol"))
	for _, q := range []string{"TYLENOL", "  tylenol  ", "Tylenol"} {
		got := ids(eng.Search(q))
		if len(got) != len(base) {
			t.Fatalf("Search(%q): got %d results, want %d", q, len(got), len(base))
		}
		for i := range base {
			if got[i] != base[i] {
				t.Errorf("Search(%q): ordering differs from Search(tylenol)", q)
			}
		}
	}
}

// TestSearchTieBreak verifies that equal scores order seal-required
// categories first, then by name ascending.
func TestSearchTieBreak(t *testing.T) {
	// All four categories match "balm" through one exact keyword each,
	// so every score is equal.
	sealedB := newCategory("Burn Gel", true)
	sealedA := newCategory("Antiseptic Spray", true)
	unsealedB := newCategory("Lip Balm", false)
	unsealedA := newCategory("Hand Cream", false)

	ix := mustBuild(t,
		[]models.Category{unsealedB, sealedB, unsealedA, sealedA},
		[]models.Keyword{
			newKeyword(sealedB.ID, "balm"),
			newKeyword(sealedA.ID, "balm"),
			newKeyword(unsealedB.ID, "balm"),
			newKeyword(unsealedA.ID, "balm"),
		})
	eng := NewEngine(ix)

	results := eng.Search("balm")
	if len(results) != 4 {
		t.Fatalf("Search(balm): got %d results, want 4", len(results))
	}
	want := []uuid.UUID{sealedA.ID, sealedB.ID, unsealedA.ID, unsealedB.ID}
	for i, id := range want {
		if results[i].ID != id {
			t.Fatalf("tie-break order wrong at %d: got %q", i, results[i].Name)
		}
	}
}

// TestSearchTieBreakDuplicateNames verifies that two categories sharing a
// name still come back in a stable order. Names are not unique, so without
// the slug as a final key the ordering would depend on map iteration.
func TestSearchTieBreakDuplicateNames(t *testing.T) {
	first := newCategory("Eye Drops", true)
	first.Slug = "eye-drops"
	second := newCategory("Eye Drops", true)
	second.Slug = "eye-drops-2"

	ix := mustBuild(t,
		[]models.Category{second, first},
		[]models.Keyword{
			newKeyword(first.ID, "drops"),
			newKeyword(second.ID, "drops"),
		})
	eng := NewEngine(ix)

	want := []uuid.UUID{first.ID, second.ID}
	for i := 0; i < 500; i++ {
		got := ids(eng.Search("drops"))
		if len(got) != 2 {
			t.Fatalf("Search(drops): got %d results, want 2", len(got))
		}
		if got[0] != want[0] || got[1] != want[1] {
			t.Fatalf("run %d: order %v, want slug-ascending %v", i, got, want)
		}
	}
}

// TestSearchMultiWordNameAsUnit verifies the full query matches multi-word
// category names even when individual tokens hit other categories.
func TestSearchMultiWordNameAsUnit(t *testing.T) {
	eng, cats := fixtureEngine(t)

	results := eng.Search("eye drops")
	if len(results) == 0 {
		t.Fatal("Search(eye drops): no results")
	}
	if results[0].ID != cats["eye"].ID {
		t.Errorf("Search(eye drops): top result %q, want Eye Drops", results[0].Name)
	}
	// No other fixture category contains "eye" or "drops".
	if len(results) != 1 {
		for _, c := range results[1:] {
			t.Errorf("Search(eye drops): unexpected extra result %q", c.Name)
		}
	}
}

// TestSearchMultiTokenAccumulates verifies a category matched by more
// query tokens outranks one matched by fewer.
func TestSearchMultiTokenAccumulates(t *testing.T) {
	both := newCategory("Cold and Flu Relief", true)
	coldOnly := newCategory("Cold Packs", true)
	ix := mustBuild(t,
		[]models.Category{both, coldOnly},
		[]models.Keyword{
			newKeyword(both.ID, "cold"),
			newKeyword(both.ID, "flu"),
			newKeyword(coldOnly.ID, "cold"),
		})
	eng := NewEngine(ix)

	results := eng.Search("cold flu")
	if len(results) != 2 {
		t.Fatalf("Search(cold flu): got %d results, want 2", len(results))
	}
	if results[0].ID != both.ID {
		t.Errorf("category matching both tokens should rank first, got %q", results[0].Name)
	}
}

// TestSearchEmptyResults verifies unmatched and degenerate queries return
// empty lists, never errors.
func TestSearchEmptyResults(t *testing.T) {
	eng, _ := fixtureEngine(t)

	for _, q := range []string{"xyzzyqux", "", "   "} {
		results := eng.Search(q)
		if results == nil {
			t.Errorf("Search(%q) returned nil, want empty slice", q)
		}
		if len(results) != 0 {
			t.Errorf("Search(%q): got %d results, want 0", q, len(results))
		}
	}
}

// TestSearchEmptyIndex verifies the engine works over an empty data set.
func TestSearchEmptyIndex(t *testing.T) {
	eng := NewEngine(mustBuild(t, nil, nil))
	if results := eng.Search("tylenol"); len(results) != 0 {
		t.Errorf("empty index returned %d results", len(results))
	}
}
