package catalog

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrTitleRequired  = errors.New("title is required")
	ErrAuthorRequired = errors.New("author name is required")
	ErrGenreRequired  = errors.New("genre name is required")
)

// IsValidationError reports whether err is a submission validation
// failure, which is always detected before any store access.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrAuthorRequired) ||
		errors.Is(err, ErrGenreRequired)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateBook resolves the author and genre names to rows via upsert, then
// inserts the book referencing the resolved ids. The three writes run in
// order; author and genre rows created by a submission whose book insert
// fails are kept, not rolled back.
func (s *Service) CreateBook(ctx context.Context, in CreateBookInput) (Book, error) {
	if err := in.validate(); err != nil {
		return Book{}, err
	}

	author, err := s.repo.UpsertAuthor(ctx, in.AuthorName)
	if err != nil {
		return Book{}, fmt.Errorf("resolve author: %w", err)
	}
	genre, err := s.repo.UpsertGenre(ctx, in.GenreName)
	if err != nil {
		return Book{}, fmt.Errorf("resolve genre: %w", err)
	}

	row := BookRow{
		Title:           in.Title,
		AuthorID:        author.ID,
		GenreID:         genre.ID,
		PublicationYear: in.PublicationYear,
		Publisher:       in.Publisher,
		Description:     in.Description,
		Language:        in.Language,
		ConditionID:     in.ConditionID,
		VillageID:       in.VillageID,
		WhoHasIt:        OwnerUnassigned,
	}
	if row.Language == "" {
		row.Language = DefaultLanguage
	}
	if in.OwnerID != nil {
		row.WhoHasIt = *in.OwnerID
	}

	book, err := s.repo.InsertBook(ctx, row)
	if err != nil {
		return Book{}, fmt.Errorf("insert book: %w", err)
	}
	return book, nil
}

// List returns the filtered catalog ordered by title ascending.
func (s *Service) List(ctx context.Context, q ListQuery) ([]Book, error) {
	return s.repo.List(ctx, q)
}

func (in CreateBookInput) validate() error {
	if in.Title == "" {
		return ErrTitleRequired
	}
	if in.AuthorName == "" {
		return ErrAuthorRequired
	}
	if in.GenreName == "" {
		return ErrGenreRequired
	}
	return nil
}
