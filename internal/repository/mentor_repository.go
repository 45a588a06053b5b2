package repository

import (
	"context"
	"log/slog"
	"math"
	"sync"

	"github.com/raghuvanshmani-code/MentorLink/internal/model"
)

type MentorRepository interface {
	List(ctx context.Context) ([]model.Mentor, error)
	FindByID(ctx context.Context, mentorID string) (*model.Mentor, error)
	ApplyRating(ctx context.Context, mentorID string, score int) error
}

type memoryMentorRepository struct {
	mu      sync.RWMutex
	mentors []*model.Mentor
}

func NewMemoryMentorRepository(seed []*model.Mentor) MentorRepository {
	r := &memoryMentorRepository{mentors: make([]*model.Mentor, 0, len(seed))}
	for _, m := range seed {
		cp := *m
		r.mentors = append(r.mentors, &cp)
	}
	return r
}

func (r *memoryMentorRepository) List(ctx context.Context) ([]model.Mentor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Mentor, 0, len(r.mentors))
	for _, m := range r.mentors {
		result = append(result, *m)
	}

	return result, nil
}

func (r *memoryMentorRepository) FindByID(ctx context.Context, mentorID string) (*model.Mentor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m := r.findLocked(mentorID)
	if m == nil {
		return nil, nil
	}

	cp := *m
	return &cp, nil
}

// ApplyRating folds score into the mentor's running mean:
//
//	avg = round((avg*count + score) / (count+1), 2)
//
// An unknown mentor id is skipped without error; the rating on the session
// stands either way.
func (r *memoryMentorRepository) ApplyRating(ctx context.Context, mentorID string, score int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := r.findLocked(mentorID)
	if m == nil {
		slog.WarnContext(ctx, "Mentor missing, skipping aggregate update", slog.String("mentor_id", mentorID))
		return nil
	}

	total := m.AvgRating*float64(m.RatingCount) + float64(score)
	m.RatingCount++
	m.AvgRating = math.Round(total/float64(m.RatingCount)*100) / 100

	return nil
}

func (r *memoryMentorRepository) findLocked(mentorID string) *model.Mentor {
	for _, m := range r.mentors {
		if m.ID == mentorID {
			return m
		}
	}
	return nil
}
