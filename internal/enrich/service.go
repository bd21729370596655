package enrich

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"villagebooks/internal/platform/openlibrary"
)

// EditionFetcher is the slice of the Open Library client the enrichment
// flow needs.
type EditionFetcher interface {
	GetEdition(ctx context.Context, isbn string) (*openlibrary.Edition, error)
	GetAuthor(ctx context.Context, authorKey string) (*openlibrary.AuthorDetails, error)
}

type Service struct {
	client EditionFetcher
}

func NewService(client EditionFetcher) *Service {
	return &Service{client: client}
}

// Result carries the partial record plus an advisory status for the user.
// Lookups never fail the submission flow; failures degrade to an empty
// record and a status message.
type Result struct {
	ISBN   string `json:"isbn,omitempty"`
	Record Record `json:"record"`
	Status string `json:"status"`
}

var (
	isbnStripPattern = regexp.MustCompile(`[^0-9Xx]`)
	yearPattern      = regexp.MustCompile(`\d{4}`)
)

// NormalizeISBN strips everything but digits and the checksum character X
// from decoded barcode text.
func NormalizeISBN(raw string) string {
	return strings.ToUpper(isbnStripPattern.ReplaceAllString(raw, ""))
}

// Lookup normalizes the decoded text and fetches bibliographic metadata
// for it. A failed secondary author fetch is logged and swallowed; the
// author name simply stays unset.
func (s *Service) Lookup(ctx context.Context, raw string) Result {
	isbn := NormalizeISBN(raw)
	if isbn == "" {
		return Result{Status: "no ISBN found in the decoded text"}
	}

	edition, err := s.client.GetEdition(ctx, isbn)
	if err != nil {
		return Result{
			ISBN:   isbn,
			Status: fmt.Sprintf("barcode read (%s), but the catalog lookup failed: %v", isbn, err),
		}
	}

	rec := Record{
		Title:           edition.Title,
		PublicationYear: extractYear(edition.PublishDate),
	}
	if len(edition.Publishers) > 0 {
		rec.Publisher = edition.Publishers[0]
	}
	if len(edition.Languages) > 0 {
		rec.Language = mapLanguage(edition.Languages[0].Key)
	}

	if len(edition.Authors) > 0 && edition.Authors[0].Key != "" {
		author, err := s.client.GetAuthor(ctx, edition.Authors[0].Key)
		if err != nil {
			log.Printf("enrich isbn=%s author_key=%s author fetch failed: %v", isbn, edition.Authors[0].Key, err)
		} else {
			rec.AuthorName = author.Name
		}
	}

	return Result{
		ISBN:   isbn,
		Record: rec,
		Status: fmt.Sprintf("book details retrieved for %s", isbn),
	}
}

// extractYear reduces a free-form publish date ("3rd ed., June 1994") to
// the first run of 4 consecutive digits. Empty when no match.
func extractYear(publishDate string) string {
	return yearPattern.FindString(publishDate)
}

// Only two language tags are mapped; anything else leaves the field unset
// for the user to fill in.
func mapLanguage(key string) string {
	k := strings.ToLower(key)
	switch {
	case strings.Contains(k, "ita"):
		return "italiano"
	case strings.Contains(k, "eng"):
		return "inglese"
	default:
		return ""
	}
}
