package model

type Rating struct {
	ID        string  `json:"id"`
	SessionID string  `json:"session_id"`
	Rating    int     `json:"rating"`
	Feedback  *string `json:"feedback,omitempty"`
}
