package service

import (
	"context"
	"fmt"

	"training-portal-backend/internal/domain"
	"training-portal-backend/internal/repository"
)

// allStates is the reference list used to spot coverage gaps. 28 states plus
// Delhi, matching the list the reporting dashboards are built around.
var allStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka",
	"Kerala", "Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya",
	"Mizoram", "Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim",
	"Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand",
	"West Bengal", "Delhi",
}

const (
	recentTrainingsLimit     = 5
	lowCoverageDistrictLimit = 10
)

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository) AnalyticsService {
	return &analyticsService{analyticsRepo: analyticsRepo}
}

func (s *analyticsService) Dashboard(ctx context.Context, actor domain.Actor) (*domain.DashboardStats, []domain.TrainingEvent, error) {
	if !actor.IsAdmin() {
		return nil, nil, domain.NewAuthorizationError("only admins can view the dashboard")
	}

	totalTrainings, err := s.analyticsRepo.CountTrainingsByStatus(ctx, domain.TrainingStatusApproved)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count trainings: %w", err)
	}
	activePartners, err := s.analyticsRepo.CountPartnersByRegistration(ctx, domain.RegistrationApproved)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count partners: %w", err)
	}
	states, err := s.analyticsRepo.DistinctApprovedStates(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list covered states: %w", err)
	}
	totalParticipants, err := s.analyticsRepo.SumApprovedParticipants(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to sum participants: %w", err)
	}
	recent, err := s.analyticsRepo.RecentApprovedTrainings(ctx, recentTrainingsLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list recent trainings: %w", err)
	}

	stats := &domain.DashboardStats{
		TotalTrainings:    totalTrainings,
		ActivePartners:    activePartners,
		StatesCovered:     int32(len(states)),
		TotalParticipants: totalParticipants,
	}
	return stats, recent, nil
}

func (s *analyticsService) Coverage(ctx context.Context, actor domain.Actor) (*domain.CoverageReport, error) {
	if !actor.IsAdmin() {
		return nil, domain.NewAuthorizationError("only admins can view coverage reports")
	}

	byTheme, err := s.analyticsRepo.ApprovedCountByTheme(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by theme: %w", err)
	}
	byState, err := s.analyticsRepo.ApprovedCountByState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by state: %w", err)
	}
	breakdown, err := s.analyticsRepo.ApprovedBreakdownTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate participant breakdown: %w", err)
	}

	return &domain.CoverageReport{
		TrainingsByTheme:     byTheme,
		TrainingsByState:     byState,
		ParticipantBreakdown: breakdown,
	}, nil
}

func (s *analyticsService) TrainingLocations(ctx context.Context, actor domain.Actor) ([]domain.TrainingLocation, error) {
	if !actor.IsAdmin() {
		return nil, domain.NewAuthorizationError("only admins can view training locations")
	}
	return s.analyticsRepo.ApprovedTrainingLocations(ctx)
}

func (s *analyticsService) Gaps(ctx context.Context, actor domain.Actor) (*domain.GapReport, error) {
	if !actor.IsAdmin() {
		return nil, domain.NewAuthorizationError("only admins can view gap reports")
	}

	covered, err := s.analyticsRepo.DistinctApprovedStates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list covered states: %w", err)
	}
	coveredSet := make(map[string]bool, len(covered))
	for _, state := range covered {
		coveredSet[state] = true
	}
	uncovered := make([]string, 0, len(allStates))
	for _, state := range allStates {
		if !coveredSet[state] {
			uncovered = append(uncovered, state)
		}
	}

	districts, err := s.analyticsRepo.LowCoverageDistricts(ctx, lowCoverageDistrictLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list low coverage districts: %w", err)
	}

	return &domain.GapReport{
		UncoveredStates:      uncovered,
		LowCoverageDistricts: districts,
	}, nil
}
