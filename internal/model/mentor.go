package model

type Mentor struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Bio         string  `json:"bio"`
	Phone       string  `json:"phone"`
	AvgRating   float64 `json:"avg_rating"`
	RatingCount int     `json:"rating_count"`
	AvatarURL   string  `json:"avatar_url"`
}
