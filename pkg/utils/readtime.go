package utils

import (
	"strconv"
	"strings"
)

const wordsPerMinute = 200

// ReadTime estimates reading time for the given content and renders it
// as "<n> min read". Words are whitespace-separated fields, minutes are
// rounded up and never drop below one. The result is persisted with
// the post at create/update time, not recomputed on read.
func ReadTime(content string) string {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return strconv.Itoa(minutes) + " min read"
}
