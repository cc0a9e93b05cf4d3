package service

import (
	"context"
	"time"

	"skillswap/internal/models"
	"skillswap/internal/repository"
)

// MeetingService handles business logic for scheduled meetings.
type MeetingService struct {
	repo repository.MeetingRepository
}

// NewMeetingService creates a new MeetingService.
func NewMeetingService(repo repository.MeetingRepository) *MeetingService {
	return &MeetingService{repo: repo}
}

// Upcoming returns the user's scheduled and in-progress meetings that have
// not passed yet, soonest first.
func (s *MeetingService) Upcoming(ctx context.Context, userID string) ([]models.Meeting, error) {
	objectID, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindUpcoming(ctx, objectID, time.Now())
}

// Get returns a meeting the user is a party to.
func (s *MeetingService) Get(ctx context.Context, userID, meetingID string) (*models.Meeting, error) {
	objectID, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}
	mtgID, err := parseObjectID(meetingID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindForParty(ctx, mtgID, objectID)
}

// UpdateStatus transitions a meeting's lifecycle state. Either party can
// update; joining stamps the actual start time, completing the end time.
func (s *MeetingService) UpdateStatus(ctx context.Context, userID, meetingID string, status models.MeetingStatus) (*models.Meeting, error) {
	objectID, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}
	mtgID, err := parseObjectID(meetingID)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateStatus(ctx, mtgID, objectID, status, time.Now())
}
