package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	UpsertAuthor(ctx context.Context, name string) (Author, error)
	UpsertGenre(ctx context.Context, name string) (Genre, error)
	InsertBook(ctx context.Context, row BookRow) (Book, error)
	List(ctx context.Context, q ListQuery) ([]Book, error)
}

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// Upserts match on the exact name. DO UPDATE instead of DO NOTHING so the
// statement returns the surviving row on conflict as well; concurrent
// submissions of the same new name converge on the unique constraint.
const upsertAuthorSQL = `
	INSERT INTO authors (name)
	VALUES ($1)
	ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
	RETURNING id, name`

func (r *PostgresRepo) UpsertAuthor(ctx context.Context, name string) (Author, error) {
	var a Author
	err := r.db.QueryRow(ctx, upsertAuthorSQL, name).Scan(&a.ID, &a.Name)
	if err != nil {
		return Author{}, fmt.Errorf("upsert author: %w", err)
	}
	return a, nil
}

const upsertGenreSQL = `
	INSERT INTO genres (name)
	VALUES ($1)
	ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
	RETURNING id, name`

func (r *PostgresRepo) UpsertGenre(ctx context.Context, name string) (Genre, error) {
	var g Genre
	err := r.db.QueryRow(ctx, upsertGenreSQL, name).Scan(&g.ID, &g.Name)
	if err != nil {
		return Genre{}, fmt.Errorf("upsert genre: %w", err)
	}
	return g, nil
}

const insertBookSQL = `
	WITH inserted AS (
		INSERT INTO books (title, author_id, genre_id, publication_year, publisher, description, language, condition_id, village_id, whohasit)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, title, author_id, genre_id, publication_year, publisher, description, language, condition_id, village_id, whohasit
	)
	SELECT i.id, i.title, i.publication_year, COALESCE(i.publisher, ''), COALESCE(i.description, ''), i.language, i.condition_id, i.village_id, i.whohasit,
	       a.id, a.name, g.id, g.name
	FROM inserted i
	JOIN authors a ON a.id = i.author_id
	JOIN genres g ON g.id = i.genre_id`

func (r *PostgresRepo) InsertBook(ctx context.Context, row BookRow) (Book, error) {
	var b Book
	err := r.db.QueryRow(ctx, insertBookSQL,
		row.Title, row.AuthorID, row.GenreID, row.PublicationYear,
		nullIfEmpty(row.Publisher), nullIfEmpty(row.Description),
		row.Language, row.ConditionID, row.VillageID, row.WhoHasIt,
	).Scan(
		&b.ID, &b.Title, &b.PublicationYear, &b.Publisher, &b.Description,
		&b.Language, &b.ConditionID, &b.VillageID, &b.WhoHasIt,
		&b.Author.ID, &b.Author.Name, &b.Genre.ID, &b.Genre.Name,
	)
	if err != nil {
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) List(ctx context.Context, q ListQuery) ([]Book, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if q.Search != "" {
		clauses = append(clauses, fmt.Sprintf("b.title ILIKE $%d", argn))
		args = append(args, "%"+q.Search+"%")
		argn++
	}
	if q.GenreID != nil {
		clauses = append(clauses, fmt.Sprintf("b.genre_id = $%d", argn))
		args = append(args, *q.GenreID)
		argn++
	}
	if q.VillageID != nil {
		clauses = append(clauses, fmt.Sprintf("b.village_id = $%d", argn))
		args = append(args, *q.VillageID)
		argn++
	}

	listSQL := fmt.Sprintf(`
		SELECT b.id, b.title, b.publication_year, COALESCE(b.publisher, ''), COALESCE(b.description, ''), b.language, b.condition_id, b.village_id, b.whohasit,
		       a.id, a.name, g.id, g.name
		FROM books b
		JOIN authors a ON a.id = b.author_id
		JOIN genres g ON g.id = b.genre_id
		WHERE %s
		ORDER BY b.title ASC`,
		strings.Join(clauses, " AND "))

	rows, err := r.db.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.PublicationYear, &b.Publisher, &b.Description,
			&b.Language, &b.ConditionID, &b.VillageID, &b.WhoHasIt,
			&b.Author.ID, &b.Author.Name, &b.Genre.ID, &b.Genre.Name,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
