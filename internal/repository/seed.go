package repository

import (
	"time"

	"github.com/raghuvanshmani-code/MentorLink/internal/model"
)

// Seed data for the demo deployment. The stores are constructed from these
// slices once per process (or per test); nothing here is mutated in place.

func SeedMentors() []*model.Mentor {
	return []*model.Mentor{
		{
			ID:          "mentor-1",
			Name:        "Alice Johnson",
			Bio:         "Expert in Frontend technologies with 10+ years of experience building scalable web applications at tech giants. Passionate about React, TypeScript, and modern CSS.",
			Phone:       "15551112222",
			AvgRating:   4.9,
			RatingCount: 87,
			AvatarURL:   "https://picsum.photos/seed/alice/200",
		},
		{
			ID:          "mentor-2",
			Name:        "Bob Williams",
			Bio:         "Cloud architect specializing in Google Cloud and Kubernetes. Helps startups design and implement secure, cost-effective infrastructure. Certified GCP Professional.",
			Phone:       "15553334444",
			AvgRating:   4.8,
			RatingCount: 102,
			AvatarURL:   "https://picsum.photos/seed/bob/200",
		},
		{
			ID:          "mentor-3",
			Name:        "Charlie Brown",
			Bio:         "Product Management leader with a track record of launching successful B2B SaaS products. Mentors on product strategy, user research, and go-to-market.",
			Phone:       "15555556666",
			AvgRating:   5.0,
			RatingCount: 55,
			AvatarURL:   "https://picsum.photos/seed/charlie/200",
		},
		{
			ID:          "mentor-4",
			Name:        "Diana Prince",
			Bio:         "UX/UI design guru focused on creating intuitive and beautiful user experiences. Proficient in Figma, user testing, and design systems.",
			Phone:       "15557778888",
			AvgRating:   4.9,
			RatingCount: 76,
			AvatarURL:   "https://picsum.photos/seed/diana/200",
		},
	}
}

func SeedSessions() []*model.Session {
	now := time.Now()
	feedback := "Alice was amazing! So helpful."
	return []*model.Session{
		{
			ID:         "session-1",
			MentorID:   "mentor-1",
			MentorName: "Alice Johnson",
			UserID:     "user-123",
			UserName:   "John Doe",
			Status:     model.StatusCompleted,
			CreatedAt:  now.Add(-5 * 24 * time.Hour),
			Rating: &model.Rating{
				ID:        "rating-1",
				SessionID: "session-1",
				Rating:    5,
				Feedback:  &feedback,
			},
		},
		{
			ID:         "session-2",
			MentorID:   "mentor-2",
			MentorName: "Bob Williams",
			UserID:     "user-123",
			UserName:   "John Doe",
			Status:     model.StatusCompleted,
			CreatedAt:  now.Add(-2 * 24 * time.Hour),
		},
		{
			ID:         "session-3",
			MentorID:   "mentor-3",
			MentorName: "Charlie Brown",
			UserID:     "user-123",
			UserName:   "John Doe",
			Status:     model.StatusPaid,
			CreatedAt:  now.Add(-1 * 24 * time.Hour),
		},
	}
}

// DemoUser is the account the stub login signs tokens for.
func DemoUser() *model.User {
	return &model.User{
		ID:    "user-123",
		Name:  "John Doe",
		Email: "john.doe@example.com",
	}
}
