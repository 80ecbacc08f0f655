package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"school-backend/internal/cache"
	"school-backend/internal/models"
	"school-backend/internal/repository"
)

const (
	statsCacheKey = "dashboard:statistics"

	// Shown as-is on the landing page.
	uptimePercent = "99.9%"

	// Placeholder subject count for a fresh install with no results yet.
	defaultSubjectCount = 15
)

type StatsService interface {
	Overview(ctx context.Context) (*models.DashboardStatistics, error)
}

type statsService struct {
	studentRepo repository.StudentRepository
	teacherRepo repository.TeacherRepository
	resultRepo  repository.ResultRepository
	cache       *cache.Cache
	cacheTTL    time.Duration
	startedAt   time.Time
	logger      zerolog.Logger
}

// NewStatsService captures the process start time once; uptime is reported
// relative to it for the rest of the process lifetime.
func NewStatsService(
	studentRepo repository.StudentRepository,
	teacherRepo repository.TeacherRepository,
	resultRepo repository.ResultRepository,
	statsCache *cache.Cache,
	cacheTTL time.Duration,
	logger zerolog.Logger,
) StatsService {
	return &statsService{
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
		resultRepo:  resultRepo,
		cache:       statsCache,
		cacheTTL:    cacheTTL,
		startedAt:   time.Now(),
		logger:      logger,
	}
}

func (s *statsService) Overview(ctx context.Context) (*models.DashboardStatistics, error) {
	if s.cache != nil {
		var cached models.DashboardStatistics
		if s.cache.GetJSON(ctx, statsCacheKey, &cached) {
			return &cached, nil
		}
	}

	students, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count students: %w", err)
	}

	teachers, err := s.teacherRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count teachers: %w", err)
	}

	subjects, err := s.resultRepo.CountDistinctSubjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count subjects: %w", err)
	}
	if subjects == 0 {
		subjects = defaultSubjectCount
	}

	uptime := time.Since(s.startedAt)
	hours := int(uptime.Hours())
	minutes := int(uptime.Minutes()) % 60

	stats := &models.DashboardStatistics{
		Students:    students,
		Teachers:    teachers,
		Subjects:    subjects,
		Uptime:      uptimePercent,
		UptimeHours: fmt.Sprintf("%dh %dm", hours, minutes),
	}

	if s.cache != nil {
		s.cache.SetJSON(ctx, statsCacheKey, stats, s.cacheTTL)
	}

	return stats, nil
}
