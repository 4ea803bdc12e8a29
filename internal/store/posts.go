package store

import (
	"sort"
	"strings"

	"back2me/internal/model"
)

// NewPost carries the caller-supplied fields of a post. UserID is a weak
// reference taken from the caller's session; it is not validated against the
// user collection.
type NewPost struct {
	UserID      int64
	Status      model.Status
	ItemName    string
	Location    string
	Place       string
	Description string
	ImageURL    *string
}

// PostFilter is the set of recognized listing filters. Zero-value fields are
// ignored; Status "all" is an explicit pass-through.
type PostFilter struct {
	Status   model.Status
	ItemName string
	Location string
}

// CreatePost appends a post. There are no duplicate or content checks.
// UpdatedAt is set equal to CreatedAt and is never refreshed afterwards:
// no edit operation exists, the field is kept for wire compatibility.
func (s *Store) CreatePost(p NewPost, now int64) model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := model.Post{
		ID:          s.postIDs.next(),
		UserID:      p.UserID,
		Status:      p.Status,
		ItemName:    p.ItemName,
		Location:    p.Location,
		Place:       p.Place,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.posts = append(s.posts, post)
	return post
}

// ListPosts returns posts matching every set filter, newest first. The sort
// is stable, so posts with equal timestamps keep their creation order.
func (s *Store) ListPosts(f PostFilter) []model.Post {
	s.mu.RLock()
	result := make([]model.Post, 0, len(s.posts))
	for _, p := range s.posts {
		if f.Status != "" && f.Status != model.StatusAll && p.Status != f.Status {
			continue
		}
		if f.ItemName != "" && !containsFold(p.ItemName, f.ItemName) {
			continue
		}
		if f.Location != "" && !containsFold(p.Location, f.Location) {
			continue
		}
		result = append(result, p)
	}
	s.mu.RUnlock()

	sortPostsNewestFirst(result)
	return result
}

// GetPost returns the post with the given id.
func (s *Store) GetPost(id int64) (model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Post{}, ErrPostNotFound
}

// SearchPosts returns posts whose item name, location or description contains
// the query case-insensitively, newest first.
func (s *Store) SearchPosts(query string) []model.Post {
	s.mu.RLock()
	result := make([]model.Post, 0)
	for _, p := range s.posts {
		if containsFold(p.ItemName, query) ||
			containsFold(p.Location, query) ||
			containsFold(p.Description, query) {
			result = append(result, p)
		}
	}
	s.mu.RUnlock()

	sortPostsNewestFirst(result)
	return result
}

func sortPostsNewestFirst(posts []model.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt > posts[j].CreatedAt
	})
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
