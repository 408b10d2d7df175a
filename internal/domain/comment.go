// Package domain defines the record types shared across the botsift service.
package domain

// Comment represents a single user comment as supplied by the fetch
// collaborator. The body is plain text, already HTML-unescaped. The core
// never mutates a Comment.
type Comment struct {
	ID          string `json:"id"`
	Author      string `json:"author"`
	AuthorID    string `json:"author_id,omitempty"`
	Text        string `json:"text"`
	LikeCount   int    `json:"like_count"`
	PublishedAt string `json:"published_at"` // ISO-8601
}

// VideoMeta holds the video metadata returned alongside a fetched comment
// batch. It is presentation context only; scoring never reads it.
type VideoMeta struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channel_title"`
	CommentCount int64  `json:"comment_count"`
	ViewCount    int64  `json:"view_count"`
}
