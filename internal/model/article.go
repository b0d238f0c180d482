package model

import "time"

// Article represents a published blog post.
//
// Author is a snapshot of the creating user's username taken at publish
// time. It is display-only and never updated afterwards; ownership checks
// must use UserID, which stays valid even if usernames were ever renamed.
type Article struct {
	ID        int64
	Title     string
	Content   string
	UserID    int64
	Author    string
	CreatedAt time.Time
}

// OwnedBy reports whether the given user owns this article.
func (a *Article) OwnedBy(userID int64) bool {
	return a.UserID == userID
}

// Preview returns at most n runes of the article content for list pages.
// Truncation happens on a rune boundary so multi-byte text is never split.
func (a *Article) Preview(n int) string {
	runes := []rune(a.Content)
	if len(runes) <= n {
		return a.Content
	}
	return string(runes[:n]) + "…"
}
