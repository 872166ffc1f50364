package redisrepo

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	POST_KEY      = "post:%s" // <postID>
	ALL_POSTS_KEY = "posts:all"
)

func PostKey(postID uuid.UUID) string {
	return fmt.Sprintf(POST_KEY, postID.String())
}

func AllPostsKey() string {
	return ALL_POSTS_KEY
}
