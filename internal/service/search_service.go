package service

import (
	"context"
	"log"
	"strings"

	"github.com/ComradeCold/pdf-finder-project/internal/models"
)

// TextExtractor recognizes text in an image. An empty string with a nil
// error means no text was found, which is a valid outcome.
type TextExtractor interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
}

// PDFSearcher returns PDF links for a query. A non-positive limit means
// the adapter's default.
type PDFSearcher interface {
	SearchPDFs(ctx context.Context, query string, limit int) ([]string, error)
}

// FavoriteLister is the read side of the favorites store.
type FavoriteLister interface {
	ListByUserKey(userKey string) ([]models.Favorite, error)
}

// SearchOutcome is the result of one search request. Favorites are
// populated even when Err is set: a failed search still renders the
// user's saved links.
type SearchOutcome struct {
	EffectiveQuery string
	ExtractedText  string
	PDFs           []string
	Favorites      []models.Favorite
	Err            error
}

// SearchService runs the request pipeline: load favorites, optionally
// extract text from an uploaded image, build the effective query,
// search. Every step is attempted exactly once; nothing retries.
type SearchService struct {
	extractor TextExtractor
	searcher  PDFSearcher
	favorites FavoriteLister
}

func NewSearchService(extractor TextExtractor, searcher PDFSearcher, favorites FavoriteLister) *SearchService {
	return &SearchService{extractor: extractor, searcher: searcher, favorites: favorites}
}

func (s *SearchService) Run(ctx context.Context, userKey, typedQuery string, image []byte) SearchOutcome {
	out := SearchOutcome{PDFs: []string{}}

	// A favorites load failure degrades to an empty list; it never
	// fails the request.
	favs, err := s.favorites.ListByUserKey(userKey)
	if err != nil {
		log.Printf("[PIPELINE] favorites load failed for key %q: %v", userKey, err)
		favs = nil
	}
	out.Favorites = favs

	if len(image) > 0 {
		text, err := s.extractor.ExtractText(ctx, image)
		if err != nil {
			out.Err = err
			return out
		}
		out.ExtractedText = text
	}

	out.EffectiveQuery = strings.TrimSpace(typedQuery + " " + out.ExtractedText)
	if out.EffectiveQuery == "" {
		return out
	}

	pdfs, err := s.searcher.SearchPDFs(ctx, out.EffectiveQuery, 0)
	if err != nil {
		out.Err = err
		return out
	}
	out.PDFs = pdfs
	return out
}

// Favorites loads the user's favorites for display, degrading to an
// empty list on store failure (same policy as Run).
func (s *SearchService) Favorites(userKey string) []models.Favorite {
	favs, err := s.favorites.ListByUserKey(userKey)
	if err != nil {
		log.Printf("[PIPELINE] favorites load failed for key %q: %v", userKey, err)
		return nil
	}
	return favs
}
