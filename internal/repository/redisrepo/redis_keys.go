package redisrepo

import "fmt"

const (
	POST_VIEWS_KEY = "post:%d:views" // <postID>
)

func PostViewsKey(postID int64) string {
	return fmt.Sprintf(POST_VIEWS_KEY, postID)
}
