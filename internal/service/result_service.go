package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"school-backend/internal/models"
	"school-backend/internal/repository"
	"school-backend/internal/service/integration"
)

type ResultService interface {
	SaveResult(ctx context.Context, req *models.SaveResultRequest) error
	GetResults(ctx context.Context, filter models.ResultFilter) ([]models.Result, error)
	DeleteResult(ctx context.Context, id int64) error
	StudentResults(ctx context.Context, studentID string) (*models.StudentResultsResponse, error)
}

type resultService struct {
	resultRepo repository.ResultRepository
	publisher  integration.EventPublisher
	logger     zerolog.Logger
}

func NewResultService(
	resultRepo repository.ResultRepository,
	publisher integration.EventPublisher,
	logger zerolog.Logger,
) ResultService {
	return &resultService{
		resultRepo: resultRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (s *resultService) SaveResult(ctx context.Context, req *models.SaveResultRequest) error {
	if err := validateSaveResult(req); err != nil {
		return err
	}

	result := &models.Result{
		StudentID:   *req.StudentID,
		StudentName: *req.StudentName,
		Form:        *req.Form,
		Level:       *req.Level,
		Subject:     *req.Subject,
		Term:        *req.Term,
		Year:        *req.Year,
		ExamType:    req.ExamType,
		ExamDate:    req.ExamDate,
		Marks:       req.Marks,
		Grade:       *req.Grade,
		Status:      *req.Status,
		Comment:     req.Comment,
		TeacherID:   req.TeacherID,
	}

	if err := s.resultRepo.Upsert(ctx, result); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	s.logger.Info().
		Str("student_id", result.StudentID).
		Str("subject", result.Subject).
		Str("term", result.Term).
		Int("year", result.Year).
		Msg("Result saved")

	s.publishResultSaved(ctx, result)

	return nil
}

// publishResultSaved notifies downstream consumers. A broker failure is
// logged and never fails the save.
func (s *resultService) publishResultSaved(ctx context.Context, result *models.Result) {
	if s.publisher == nil {
		return
	}

	event := &models.ResultSavedEvent{
		EventID:     uuid.New().String(),
		StudentID:   result.StudentID,
		StudentName: result.StudentName,
		Subject:     result.Subject,
		Term:        result.Term,
		Year:        result.Year,
		ExamType:    result.ExamType,
		Marks:       result.Marks,
		Grade:       result.Grade,
		Status:      result.Status,
		TeacherID:   result.TeacherID,
		Timestamp:   time.Now().Unix(),
	}

	if err := s.publisher.PublishResultSaved(ctx, event); err != nil {
		s.logger.Warn().
			Err(err).
			Str("student_id", result.StudentID).
			Str("subject", result.Subject).
			Msg("Failed to publish result saved event")
	}
}

func (s *resultService) GetResults(ctx context.Context, filter models.ResultFilter) ([]models.Result, error) {
	results, err := s.resultRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	return results, nil
}

// DeleteResult removes the row by surrogate id and reports success whether or
// not a row matched.
func (s *resultService) DeleteResult(ctx context.Context, id int64) error {
	if err := s.resultRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}

	return nil
}

func (s *resultService) StudentResults(ctx context.Context, studentID string) (*models.StudentResultsResponse, error) {
	results, err := s.resultRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}
	if results == nil {
		results = []models.Result{}
	}

	return &models.StudentResultsResponse{
		Results:    results,
		Statistics: computeStatistics(results),
	}, nil
}

// computeStatistics derives the summary bundle in one pass over the rows.
// Rows without marks are skipped for the sum and best/weakest selection, but
// the average divides by the full row count. Max and min are stable: the
// first row in fetch order wins a tie.
func computeStatistics(results []models.Result) models.ResultStatistics {
	stats := models.ResultStatistics{
		BestSubject:    "N/A",
		WeakestSubject: "N/A",
	}

	if len(results) == 0 {
		return stats
	}

	stats.TotalSubjects = len(results)

	total := 0
	var best, weakest *models.Result
	for i := range results {
		r := &results[i]
		if r.Status == "Pass" {
			stats.Passed++
		}
		if r.Marks == nil {
			continue
		}
		total += *r.Marks
		if best == nil || *r.Marks > *best.Marks {
			best = r
		}
		if weakest == nil || *r.Marks < *weakest.Marks {
			weakest = r
		}
	}

	stats.Average = math.Round(float64(total)/float64(len(results))*100) / 100
	stats.Failed = stats.TotalSubjects - stats.Passed

	if best != nil {
		stats.BestSubject = best.Subject
		stats.BestScore = *best.Marks
		stats.WeakestSubject = weakest.Subject
		stats.WeakestScore = *weakest.Marks
	}

	return stats
}

// validateSaveResult checks the fixed required-field set in a stable order so
// the first missing field is the one reported.
func validateSaveResult(req *models.SaveResultRequest) error {
	checks := []struct {
		name    string
		present bool
	}{
		{"student_id", req.StudentID != nil},
		{"student_name", req.StudentName != nil},
		{"form", req.Form != nil},
		{"level", req.Level != nil},
		{"subject", req.Subject != nil},
		{"term", req.Term != nil},
		{"year", req.Year != nil},
		{"marks", req.Marks != nil},
		{"grade", req.Grade != nil},
		{"status", req.Status != nil},
	}

	for _, check := range checks {
		if !check.present {
			return &MissingFieldError{Field: check.name}
		}
	}

	return nil
}
