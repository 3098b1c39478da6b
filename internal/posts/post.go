// Package posts fetches the remote post collection displayed by postview.
package posts

// Post is a single record of the remote collection.
// Fields the API returns beyond these three are ignored.
type Post struct {
	ID    int    `json:"id"    yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Body  string `json:"body"  yaml:"body"`
}

// IDs returns the ids of posts in order. Handy for logging and assertions.
func IDs(posts []Post) []int {
	ids := make([]int, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}
