package catalog

// OwnerUnassigned is the sentinel stored in whohasit when a book has no
// owner. Real owner ids are zero or positive.
const OwnerUnassigned = -1

// DefaultLanguage is applied when a submission omits the language.
const DefaultLanguage = "italiano"

type Author struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Book struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	PublicationYear *int   `json:"publication_year,omitempty"`
	Publisher       string `json:"publisher,omitempty"`
	Description     string `json:"description,omitempty"`
	Language        string `json:"language"`
	ConditionID     *int   `json:"condition_id,omitempty"`
	VillageID       *int64 `json:"village_id,omitempty"`
	WhoHasIt        int64  `json:"whohasit"`
	Author          Author `json:"author"`
	Genre           Genre  `json:"genre"`
}

// CreateBookInput is a book submission. AuthorName and GenreName are
// resolved to rows by upsert; the names are never stored on the book row.
type CreateBookInput struct {
	Title           string
	AuthorName      string
	GenreName       string
	PublicationYear *int
	Publisher       string
	Description     string
	ConditionID     *int
	VillageID       *int64
	OwnerID         *int64
	Language        string
}

// BookRow is the resolved insert payload, with author and genre already
// reduced to ids.
type BookRow struct {
	Title           string
	AuthorID        int64
	GenreID         int64
	PublicationYear *int
	Publisher       string
	Description     string
	Language        string
	ConditionID     *int
	VillageID       *int64
	WhoHasIt        int64
}

// ListQuery narrows the book listing. Each filter is optional and they
// compose with AND. Search is a case-insensitive substring match on the
// title.
type ListQuery struct {
	Search    string
	GenreID   *int64
	VillageID *int64
}
