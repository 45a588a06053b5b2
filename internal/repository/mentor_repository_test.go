package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/raghuvanshmani-code/MentorLink/internal/model"
	repo "github.com/raghuvanshmani-code/MentorLink/internal/repository"
)

func TestMemoryMentorRepository_ApplyRating(t *testing.T) {
	r := repo.NewMemoryMentorRepository([]*model.Mentor{
		{ID: "mentor-1", Name: "Alice Johnson", AvgRating: 4.9, RatingCount: 87},
		{ID: "mentor-fresh", Name: "New Mentor", AvgRating: 0, RatingCount: 0},
	})
	ctx := context.Background()

	// round((4.9*87+5)/88, 2) = round(4.9011..., 2) = 4.9
	require.NoError(t, r.ApplyRating(ctx, "mentor-1", 5))
	m, err := r.FindByID(ctx, "mentor-1")
	require.NoError(t, err)
	require.Equal(t, 88, m.RatingCount)
	require.InDelta(t, 4.9, m.AvgRating, 0.0001)

	// First rating ever is the mean itself.
	require.NoError(t, r.ApplyRating(ctx, "mentor-fresh", 3))
	m, err = r.FindByID(ctx, "mentor-fresh")
	require.NoError(t, err)
	require.Equal(t, 1, m.RatingCount)
	require.InDelta(t, 3.0, m.AvgRating, 0.0001)
}

func TestMemoryMentorRepository_ApplyRatingRounding(t *testing.T) {
	r := repo.NewMemoryMentorRepository([]*model.Mentor{
		{ID: "mentor-1", AvgRating: 4.0, RatingCount: 2},
	})
	ctx := context.Background()

	// (4.0*2+5)/3 = 4.3333... -> 4.33
	require.NoError(t, r.ApplyRating(ctx, "mentor-1", 5))
	m, err := r.FindByID(ctx, "mentor-1")
	require.NoError(t, err)
	require.InDelta(t, 4.33, m.AvgRating, 0.0001)
}

func TestMemoryMentorRepository_ApplyRatingUnknownMentorIsSkipped(t *testing.T) {
	r := repo.NewMemoryMentorRepository([]*model.Mentor{
		{ID: "mentor-1", AvgRating: 4.9, RatingCount: 87},
	})
	ctx := context.Background()

	require.NoError(t, r.ApplyRating(ctx, "mentor-gone", 1))

	m, err := r.FindByID(ctx, "mentor-1")
	require.NoError(t, err)
	require.Equal(t, 87, m.RatingCount)
	require.InDelta(t, 4.9, m.AvgRating, 0.0001)
}

func TestMemoryMentorRepository_FindByIDUnknownIsNil(t *testing.T) {
	r := repo.NewMemoryMentorRepository(repo.SeedMentors())

	m, err := r.FindByID(context.Background(), "mentor-999")
	require.NoError(t, err)
	require.Nil(t, m)
}

func TestMemoryMentorRepository_ListReturnsAllSeeded(t *testing.T) {
	r := repo.NewMemoryMentorRepository(repo.SeedMentors())

	mentors, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, mentors, 4)
	require.Equal(t, "mentor-1", mentors[0].ID)
	require.Equal(t, "Alice Johnson", mentors[0].Name)
}
