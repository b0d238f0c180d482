package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Ze-Austin/ze-blog/internal/model"
)

// Common errors for article repository operations.
var (
	ErrArticleNotFound = errors.New("article not found")
	ErrTitleExists     = errors.New("article title already exists")
)

// CreateArticle inserts a new article and assigns its generated ID and
// creation timestamp. The timestamp is bound per row at insert time.
func (r *Repository) CreateArticle(ctx context.Context, article *model.Article) error {
	query := `
		INSERT INTO articles (title, content, user_id, author)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		article.Title,
		article.Content,
		article.UserID,
		article.Author,
	).Scan(&article.ID, &article.CreatedAt)

	if err != nil {
		if uniqueViolation(err, "articles_title_key") {
			return ErrTitleExists
		}
		return fmt.Errorf("failed to create article: %w", err)
	}

	return nil
}

// GetArticleByID retrieves an article by its ID.
func (r *Repository) GetArticleByID(ctx context.Context, id int64) (*model.Article, error) {
	query := `
		SELECT id, title, content, user_id, author, created_at
		FROM articles
		WHERE id = $1
	`

	article, err := scanArticle(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article by ID: %w", err)
	}

	return article, nil
}

// ListArticles retrieves all articles in insertion order.
func (r *Repository) ListArticles(ctx context.Context) ([]*model.Article, error) {
	query := `
		SELECT id, title, content, user_id, author, created_at
		FROM articles
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	var articles []*model.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating articles: %w", err)
	}

	return articles, nil
}

// UpdateArticle overwrites an article's title and content.
// The creation timestamp and author snapshot are never touched.
func (r *Repository) UpdateArticle(ctx context.Context, article *model.Article) error {
	query := `
		UPDATE articles
		SET title = $2, content = $3
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		article.ID,
		article.Title,
		article.Content,
	)

	if err != nil {
		if uniqueViolation(err, "articles_title_key") {
			return ErrTitleExists
		}
		return fmt.Errorf("failed to update article: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrArticleNotFound
	}

	return nil
}

// DeleteArticle removes an article.
func (r *Repository) DeleteArticle(ctx context.Context, id int64) error {
	query := `DELETE FROM articles WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrArticleNotFound
	}

	return nil
}

// TitleExists checks if an article with the exact title already exists.
// Titles are unique globally, not per author.
func (r *Repository) TitleExists(ctx context.Context, title string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM articles WHERE title = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, title).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check title existence: %w", err)
	}

	return exists, nil
}

// scanArticle scans a single row into an Article model.
func scanArticle(row pgx.Row) (*model.Article, error) {
	var article model.Article
	err := row.Scan(
		&article.ID,
		&article.Title,
		&article.Content,
		&article.UserID,
		&article.Author,
		&article.CreatedAt,
	)
	return &article, err
}
