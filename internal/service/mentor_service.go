package service

import (
	"context"

	"github.com/raghuvanshmani-code/MentorLink/internal/model"
	"github.com/raghuvanshmani-code/MentorLink/internal/repository"
)

type MentorService interface {
	ListMentors(ctx context.Context) ([]model.Mentor, error)
}

type mentorService struct {
	mentorRepo repository.MentorRepository
}

func NewMentorService(repo repository.MentorRepository) MentorService {
	return &mentorService{mentorRepo: repo}
}

func (s *mentorService) ListMentors(ctx context.Context) ([]model.Mentor, error) {
	return s.mentorRepo.List(ctx)
}
