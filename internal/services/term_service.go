package services

import (
	"context"

	"github.com/edustream/backend/internal/apperrors"
	"github.com/edustream/backend/internal/models"
)

// TermRepository defines methods for term data access
type TermRepository interface {
	// GetByID retrieves a term by ID
	GetByID(ctx context.Context, id string) (*models.Term, error)
	// GetAll retrieves terms with lesson counts, optionally filtered by program
	GetAll(ctx context.Context, programID string) ([]models.TermListItem, error)
	// GetLessons retrieves the lessons of a term ordered by lesson number
	GetLessons(ctx context.Context, termID string) ([]models.Lesson, error)
	// Create creates a new term and assigns its ID
	Create(ctx context.Context, term *models.Term) error
	// Update updates term columns (partial update)
	Update(ctx context.Context, id string, fields map[string]any) error
	// Delete deletes a term
	Delete(ctx context.Context, id string) error
}

// TermProgramRepository defines the program lookups the term service needs
type TermProgramRepository interface {
	// GetByID retrieves a program by ID
	GetByID(ctx context.Context, id string) (*models.Program, error)
}

type termService struct {
	termRepo    TermRepository
	programRepo TermProgramRepository
}

// NewTermService creates a new term service
func NewTermService(termRepo TermRepository, programRepo TermProgramRepository) *termService {
	return &termService{
		termRepo:    termRepo,
		programRepo: programRepo,
	}
}

// GetTerms retrieves terms with lesson counts
func (s *termService) GetTerms(ctx context.Context, programID string) ([]models.TermListItem, error) {
	return s.termRepo.GetAll(ctx, programID)
}

// GetTerm retrieves a term with its lessons
func (s *termService) GetTerm(ctx context.Context, id string) (*models.TermDetail, error) {
	term, err := s.termRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	lessons, err := s.termRepo.GetLessons(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.TermDetail{Term: *term, Lessons: lessons}, nil
}

// CreateTerm validates and creates a term. Term numbers are caller-assigned
// and unique per program.
func (s *termService) CreateTerm(ctx context.Context, req *models.CreateTermRequest) (*models.Term, error) {
	if req.ProgramID == "" || req.Title == "" || req.TermNumber < 1 {
		return nil, apperrors.Validation("programId, termNumber and title are required")
	}

	// Referenced program must exist
	if _, err := s.programRepo.GetByID(ctx, req.ProgramID); err != nil {
		return nil, err
	}

	term := &models.Term{
		ProgramID:  req.ProgramID,
		TermNumber: req.TermNumber,
		Title:      req.Title,
	}

	if err := s.termRepo.Create(ctx, term); err != nil {
		return nil, err
	}

	return s.termRepo.GetByID(ctx, term.ID)
}

// UpdateTerm applies a partial update
func (s *termService) UpdateTerm(ctx context.Context, id string, req *models.UpdateTermRequest) (*models.Term, error) {
	fields := map[string]any{}
	if req.TermNumber != nil {
		if *req.TermNumber < 1 {
			return nil, apperrors.Validation("termNumber must be positive")
		}
		fields["term_number"] = *req.TermNumber
	}
	if req.Title != "" {
		fields["title"] = req.Title
	}

	if len(fields) == 0 {
		return nil, apperrors.Validation("no fields to update")
	}

	if err := s.termRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.termRepo.GetByID(ctx, id)
}

// DeleteTerm removes a term and, via foreign keys, its lessons
func (s *termService) DeleteTerm(ctx context.Context, id string) error {
	return s.termRepo.Delete(ctx, id)
}
