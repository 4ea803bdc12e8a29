package store

import "back2me/internal/model"

// SeedSampleData loads the demo fixtures: two users, one lost and one found
// post, and a short exchange about the found phone. Intended for local
// frontend development; gated behind config in production.
func (s *Store) SeedSampleData(now int64) {
	sarah, err := s.RegisterUser("sarah_j", "sarah@campus.edu", "password123", now)
	if err != nil {
		return // already seeded
	}
	michael, _ := s.RegisterUser("michael_c", "michael@campus.edu", "password123", now)

	s.CreatePost(NewPost{
		UserID:      sarah.ID,
		Status:      model.StatusLost,
		ItemName:    "Blue Nike Backpack",
		Location:    "Library Building - 2nd Floor",
		Place:       "Near Study Table 12",
		Description: "Lost my blue Nike backpack with laptop inside.",
	}, now-7200)
	s.CreatePost(NewPost{
		UserID:      michael.ID,
		Status:      model.StatusFound,
		ItemName:    "iPhone 13 Pro",
		Location:    "Student Cafeteria",
		Place:       "Table near the main entrance",
		Description: "Found an iPhone 13 Pro in black color.",
	}, now-14400)

	s.SendMessage(1, sarah.ID, michael.ID, "Hi, is the iPhone still available?", now-3600)
	s.SendMessage(1, michael.ID, sarah.ID, "Yes, I still have it.", now-3000)
}
