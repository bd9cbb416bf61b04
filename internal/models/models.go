package models

import (
	"time"
)

type User struct {
	UserID string `json:"userId" db:"user_id"`
}

type Tag struct {
	TagID string `json:"tagId" db:"tag_id"`
	Title string `json:"title" db:"title"`
	Slug  string `json:"slug" db:"slug"`
}

type Post struct {
	PostID     string    `json:"postId" db:"post_id"`
	UserID     string    `json:"userId" db:"user_id"`
	Caption    string    `json:"caption" db:"caption"`
	PictureURL string    `json:"pictureUrl" db:"picture_url"`
	Likes      int       `json:"likes" db:"likes"`
	PostedAt   time.Time `json:"postedAt" db:"posted_at"`
	Tags       []Tag     `json:"tags" db:"-"`
}

type Follow struct {
	FollowID    int64     `json:"followId" db:"follow_id"`
	FollowerID  string    `json:"followerId" db:"follower_id"`
	FollowingID string    `json:"followingId" db:"following_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// StreamEntry - материализованная запись ленты: одна строка на пару (подписчик, пост)
type StreamEntry struct {
	UserID      string    `json:"userId" db:"user_id"`
	PostID      string    `json:"postId" db:"post_id"`
	FollowingID string    `json:"followingId" db:"following_id"`
	Date        time.Time `json:"date" db:"date"`
}
