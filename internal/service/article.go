package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ze-Austin/ze-blog/internal/metrics"
	"github.com/Ze-Austin/ze-blog/internal/model"
	"github.com/Ze-Austin/ze-blog/internal/repository"
)

// Article service errors.
var (
	ErrArticleNotFound = errors.New("article not found")
	ErrTitleTaken      = errors.New("article title already exists")
	ErrNotOwner        = errors.New("not the article owner")
)

// ArticleStore is the persistence surface the article service needs.
// *repository.Repository satisfies it.
type ArticleStore interface {
	CreateArticle(ctx context.Context, article *model.Article) error
	GetArticleByID(ctx context.Context, id int64) (*model.Article, error)
	ListArticles(ctx context.Context) ([]*model.Article, error)
	UpdateArticle(ctx context.Context, article *model.Article) error
	DeleteArticle(ctx context.Context, id int64) error
	TitleExists(ctx context.Context, title string) (bool, error)
}

// ArticleService handles article publishing and ownership rules.
type ArticleService struct {
	store   ArticleStore
	metrics metrics.Recorder
}

// NewArticleService creates a new ArticleService.
func NewArticleService(store ArticleStore, recorder metrics.Recorder) *ArticleService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ArticleService{
		store:   store,
		metrics: recorder,
	}
}

// Create publishes a new article owned by the given user.
// Titles are unique across all authors, not per author. The author
// field is a snapshot of the owner's username taken here, once.
func (s *ArticleService) Create(ctx context.Context, owner *model.User, title, content string) (*model.Article, error) {
	taken, err := s.store.TitleExists(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("check title: %w", err)
	}
	if taken {
		return nil, ErrTitleTaken
	}

	article := &model.Article{
		Title:   title,
		Content: content,
		UserID:  owner.ID,
		Author:  owner.Username,
	}

	if err := s.store.CreateArticle(ctx, article); err != nil {
		if errors.Is(err, repository.ErrTitleExists) {
			return nil, ErrTitleTaken
		}
		return nil, fmt.Errorf("create article: %w", err)
	}

	s.metrics.IncArticleCreated()

	return article, nil
}

// Get retrieves an article by ID.
func (s *ArticleService) Get(ctx context.Context, id int64) (*model.Article, error) {
	article, err := s.store.GetArticleByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return article, nil
}

// List retrieves all articles in insertion order.
func (s *ArticleService) List(ctx context.Context) ([]*model.Article, error) {
	return s.store.ListArticles(ctx)
}

// Update overwrites an article's title and content.
// Only the owning user may edit; ownership is checked against the
// numeric owner reference, not the display author string.
func (s *ArticleService) Update(ctx context.Context, editor *model.User, id int64, title, content string) (*model.Article, error) {
	article, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !article.OwnedBy(editor.ID) {
		return nil, ErrNotOwner
	}

	article.Title = title
	article.Content = content

	if err := s.store.UpdateArticle(ctx, article); err != nil {
		if errors.Is(err, repository.ErrTitleExists) {
			return nil, ErrTitleTaken
		}
		return nil, fmt.Errorf("update article: %w", err)
	}

	s.metrics.IncArticleUpdated()

	return article, nil
}

// Delete removes an article. Only the owning user may delete.
func (s *ArticleService) Delete(ctx context.Context, actor *model.User, id int64) error {
	article, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if !article.OwnedBy(actor.ID) {
		return ErrNotOwner
	}

	if err := s.store.DeleteArticle(ctx, article.ID); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	s.metrics.IncArticleDeleted()

	return nil
}
