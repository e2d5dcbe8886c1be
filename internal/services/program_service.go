package services

import (
	"context"

	"github.com/edustream/backend/internal/apperrors"
	"github.com/edustream/backend/internal/models"
)

// ProgramRepository defines methods for program data access
type ProgramRepository interface {
	// GetByID retrieves a program by ID
	GetByID(ctx context.Context, id string) (*models.Program, error)
	// GetAll retrieves programs with optional filters
	GetAll(ctx context.Context, filter models.ProgramFilter) ([]models.Program, error)
	// GetTermSummaries retrieves terms of a program with lesson counts
	GetTermSummaries(ctx context.Context, programID string) ([]models.ProgramTermSummary, error)
	// Create creates a program and attaches topics in one transaction
	Create(ctx context.Context, program *models.Program, topicIDs []string) error
	// Update updates program columns (partial update)
	Update(ctx context.Context, id string, fields map[string]any) error
	// SetTopics replaces the topics attached to a program
	SetTopics(ctx context.Context, programID string, topicIDs []string) error
	// Delete deletes a program
	Delete(ctx context.Context, id string) error
}

// ProgramTopicRepository defines the topic lookups the program service needs
type ProgramTopicRepository interface {
	// GetByProgramID retrieves the topics attached to a program
	GetByProgramID(ctx context.Context, programID string) ([]models.Topic, error)
}

// ProgramAssetRepository defines the asset lookups the program service needs
type ProgramAssetRepository interface {
	// GetProgramAssets retrieves the poster assets of a program
	GetProgramAssets(ctx context.Context, programID string) ([]models.Asset, error)
}

type programService struct {
	programRepo ProgramRepository
	topicRepo   ProgramTopicRepository
	assetRepo   ProgramAssetRepository
}

// NewProgramService creates a new program service
func NewProgramService(programRepo ProgramRepository, topicRepo ProgramTopicRepository, assetRepo ProgramAssetRepository) *programService {
	return &programService{
		programRepo: programRepo,
		topicRepo:   topicRepo,
		assetRepo:   assetRepo,
	}
}

// GetPrograms retrieves programs with topics and assets attached
func (s *programService) GetPrograms(ctx context.Context, filter models.ProgramFilter) ([]models.Program, error) {
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	programs, err := s.programRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	for i := range programs {
		topics, err := s.topicRepo.GetByProgramID(ctx, programs[i].ID)
		if err != nil {
			return nil, err
		}
		programs[i].Topics = topics

		assets, err := s.assetRepo.GetProgramAssets(ctx, programs[i].ID)
		if err != nil {
			return nil, err
		}
		programs[i].Assets = assets
	}

	return programs, nil
}

// GetProgram retrieves a program with topics, assets and term summaries
func (s *programService) GetProgram(ctx context.Context, id string) (*models.ProgramDetail, error) {
	program, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	topics, err := s.topicRepo.GetByProgramID(ctx, id)
	if err != nil {
		return nil, err
	}
	program.Topics = topics

	assets, err := s.assetRepo.GetProgramAssets(ctx, id)
	if err != nil {
		return nil, err
	}
	program.Assets = assets

	terms, err := s.programRepo.GetTermSummaries(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.ProgramDetail{Program: *program, Terms: terms}, nil
}

// CreateProgram validates and creates a program in the draft state
func (s *programService) CreateProgram(ctx context.Context, req *models.CreateProgramRequest) (*models.ProgramDetail, error) {
	if req.Title == "" || req.LanguagePrimary == "" || len(req.LanguagesAvailable) == 0 {
		return nil, apperrors.Validation("title, languagePrimary and languagesAvailable are required")
	}
	if !req.LanguagesAvailable.Contains(req.LanguagePrimary) {
		return nil, apperrors.Validation("languagePrimary must be in languagesAvailable")
	}

	program := &models.Program{
		Title:              req.Title,
		Description:        req.Description,
		LanguagePrimary:    req.LanguagePrimary,
		LanguagesAvailable: req.LanguagesAvailable,
	}

	if err := s.programRepo.Create(ctx, program, req.TopicIDs); err != nil {
		return nil, err
	}

	return s.GetProgram(ctx, program.ID)
}

// UpdateProgram applies a partial update; topic IDs, when present, replace
// the attached set. Status is never editable directly: publication happens
// through the lesson cascade and archiving is not defined for programs here.
func (s *programService) UpdateProgram(ctx context.Context, id string, req *models.UpdateProgramRequest) (*models.ProgramDetail, error) {
	current, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The primary language invariant has to hold for the resulting row
	primary := current.LanguagePrimary
	if req.LanguagePrimary != "" {
		primary = req.LanguagePrimary
	}
	available := current.LanguagesAvailable
	if req.LanguagesAvailable != nil {
		available = req.LanguagesAvailable
	}
	if !available.Contains(primary) {
		return nil, apperrors.Validation("languagePrimary must be in languagesAvailable")
	}

	fields := map[string]any{}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.LanguagePrimary != "" {
		fields["language_primary"] = req.LanguagePrimary
	}
	if req.LanguagesAvailable != nil {
		fields["languages_available"] = req.LanguagesAvailable
	}

	if len(fields) > 0 {
		if err := s.programRepo.Update(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	if req.TopicIDs != nil {
		if err := s.programRepo.SetTopics(ctx, id, req.TopicIDs); err != nil {
			return nil, err
		}
	}

	return s.GetProgram(ctx, id)
}

// DeleteProgram removes a program and, via foreign keys, its terms and lessons
func (s *programService) DeleteProgram(ctx context.Context, id string) error {
	return s.programRepo.Delete(ctx, id)
}
