package enrich

// Record is metadata harvested from the bibliographic service. Every
// field is optional; empty means the source had nothing usable. Records
// only pre-fill form fields, they never override user input.
type Record struct {
	Title           string `json:"title,omitempty"`
	PublicationYear string `json:"publicationYear,omitempty"`
	Publisher       string `json:"publisher,omitempty"`
	AuthorName      string `json:"authorName,omitempty"`
	Language        string `json:"language,omitempty"`
}

func (r Record) Empty() bool {
	return r == Record{}
}

// FormFields mirrors the user-editable submission form.
type FormFields struct {
	Title           string `json:"title"`
	PublicationYear string `json:"publicationYear"`
	Publisher       string `json:"publisher"`
	AuthorName      string `json:"authorName"`
	Language        string `json:"language"`
}

// Merge fills empty form fields from the record. Populated fields are
// left untouched, so merging the same record twice is a no-op the second
// time.
func (f *FormFields) Merge(rec Record) {
	if f.Title == "" {
		f.Title = rec.Title
	}
	if f.PublicationYear == "" {
		f.PublicationYear = rec.PublicationYear
	}
	if f.Publisher == "" {
		f.Publisher = rec.Publisher
	}
	if f.AuthorName == "" {
		f.AuthorName = rec.AuthorName
	}
	if f.Language == "" {
		f.Language = rec.Language
	}
}
