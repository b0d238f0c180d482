package handler

import (
	"context"
	"sync"

	"github.com/Ze-Austin/ze-blog/internal/model"
	"github.com/Ze-Austin/ze-blog/internal/repository"
)

// fakeStore is an in-memory stand-in for *repository.Repository.
// It mirrors the repository's sentinel errors and uniqueness rules.
type fakeStore struct {
	mu            sync.Mutex
	users         map[int64]*model.User
	articles      map[int64]*model.Article
	messages      []*model.Message
	nextUserID    int64
	nextArticleID int64
	nextMessageID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[int64]*model.User),
		articles: make(map[int64]*model.Article),
	}
}

func (f *fakeStore) CreateUser(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == user.Username {
			return repository.ErrUsernameExists
		}
		if u.Email == user.Email {
			return repository.ErrEmailExists
		}
	}
	f.nextUserID++
	user.ID = f.nextUserID
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeStore) GetUserByID(_ context.Context, id int64) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (f *fakeStore) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeStore) UsernameExists(_ context.Context, username string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) EmailExists(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) CreateArticle(_ context.Context, article *model.Article) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.articles {
		if a.Title == article.Title {
			return repository.ErrTitleExists
		}
	}
	f.nextArticleID++
	article.ID = f.nextArticleID
	clone := *article
	f.articles[article.ID] = &clone
	return nil
}

func (f *fakeStore) GetArticleByID(_ context.Context, id int64) (*model.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	article, ok := f.articles[id]
	if !ok {
		return nil, repository.ErrArticleNotFound
	}
	clone := *article
	return &clone, nil
}

func (f *fakeStore) ListArticles(_ context.Context) ([]*model.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var articles []*model.Article
	for id := int64(1); id <= f.nextArticleID; id++ {
		if a, ok := f.articles[id]; ok {
			clone := *a
			articles = append(articles, &clone)
		}
	}
	return articles, nil
}

func (f *fakeStore) UpdateArticle(_ context.Context, article *model.Article) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.articles[article.ID]
	if !ok {
		return repository.ErrArticleNotFound
	}
	for _, a := range f.articles {
		if a.ID != article.ID && a.Title == article.Title {
			return repository.ErrTitleExists
		}
	}
	existing.Title = article.Title
	existing.Content = article.Content
	return nil
}

func (f *fakeStore) DeleteArticle(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.articles[id]; !ok {
		return repository.ErrArticleNotFound
	}
	delete(f.articles, id)
	return nil
}

func (f *fakeStore) TitleExists(_ context.Context, title string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.articles {
		if a.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) CreateMessage(_ context.Context, message *model.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextMessageID++
	message.ID = f.nextMessageID
	clone := *message
	f.messages = append(f.messages, &clone)
	return nil
}

func (f *fakeStore) messageCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}
