package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lash-app/backend/internal/domain"
	"github.com/lash-app/backend/internal/repository"

	"github.com/google/uuid"
)

type anamneseService struct {
	anamneseRepository repository.Anamneses
}

func newAnamneseService(anamneseRepository repository.Anamneses) *anamneseService {
	return &anamneseService{
		anamneseRepository: anamneseRepository,
	}
}

// AnamneseInput carries the questionnaire. ClientID and Datetime are required,
// every answer may be nil.
type AnamneseInput struct {
	ClientID          uuid.UUID
	Datetime          time.Time
	Mascara           *string
	Pregnant          *string
	EyeProcedure      *string
	Allergy           *string
	AllergyDetails    *string
	Thyroid           *string
	EyeProblem        *string
	EyeProblemDetails *string
	Oncological       *string
	SleepsOnSide      *string
	SleepSidePosition *string
	ProblemToReport   *string
	Procedure         *string
	Mapping           *string
	Style             *string
	LashModel         *string
	Thickness         *string
	Curl              *string
	Adhesive          *string
	Notes             *string
}

func (in AnamneseInput) validate() error {
	if in.ClientID == uuid.Nil || in.Datetime.IsZero() {
		return ErrValidation
	}
	return nil
}

func (in AnamneseInput) apply(a *domain.Anamnese) {
	a.ClientID = in.ClientID
	a.Datetime = in.Datetime
	a.Mascara = in.Mascara
	a.Pregnant = in.Pregnant
	a.EyeProcedure = in.EyeProcedure
	a.Allergy = in.Allergy
	a.AllergyDetails = in.AllergyDetails
	a.Thyroid = in.Thyroid
	a.EyeProblem = in.EyeProblem
	a.EyeProblemDetails = in.EyeProblemDetails
	a.Oncological = in.Oncological
	a.SleepsOnSide = in.SleepsOnSide
	a.SleepSidePosition = in.SleepSidePosition
	a.ProblemToReport = in.ProblemToReport
	a.Procedure = in.Procedure
	a.Mapping = in.Mapping
	a.Style = in.Style
	a.LashModel = in.LashModel
	a.Thickness = in.Thickness
	a.Curl = in.Curl
	a.Adhesive = in.Adhesive
	a.Notes = in.Notes
}

func (s *anamneseService) Create(ctx context.Context, input AnamneseInput) (*domain.Anamnese, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate anamnese id failed: %w", err)
	}

	anamnese := &domain.Anamnese{ID: id}
	input.apply(anamnese)

	if err := s.anamneseRepository.Create(ctx, anamnese); err != nil {
		return nil, fmt.Errorf("create anamnese failed: %w", err)
	}

	return anamnese, nil
}

func (s *anamneseService) GetByClientID(ctx context.Context, clientID uuid.UUID) (*domain.Anamnese, error) {
	anamnese, err := s.anamneseRepository.GetFirstByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrAnamneseNotFound
		}
		return nil, fmt.Errorf("get anamnese by client id failed: %w", err)
	}

	return anamnese, nil
}

func (s *anamneseService) List(ctx context.Context, page, limit int) (*domain.Page[domain.Anamnese], error) {
	page, limit = NormalizePage(page, limit)

	anamneses, err := s.anamneseRepository.GetAll(ctx, limit, domain.Offset(page, limit))
	if err != nil {
		return nil, fmt.Errorf("get anamneses failed: %w", err)
	}

	total, err := s.anamneseRepository.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count anamneses failed: %w", err)
	}

	return &domain.Page[domain.Anamnese]{
		Items:       anamneses,
		Total:       total,
		CurrentPage: page,
		Limit:       limit,
	}, nil
}

// Update replaces the answers of the first record of clientID.
// The record keeps its id and client whatever input.ClientID says.
func (s *anamneseService) Update(ctx context.Context, clientID uuid.UUID, input AnamneseInput) (*domain.Anamnese, error) {
	input.ClientID = clientID
	if err := input.validate(); err != nil {
		return nil, err
	}

	anamnese, err := s.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	input.apply(anamnese)

	if err := s.anamneseRepository.Update(ctx, anamnese); err != nil {
		return nil, fmt.Errorf("update anamnese failed: %w", err)
	}

	return anamnese, nil
}

func (s *anamneseService) Delete(ctx context.Context, clientID uuid.UUID) error {
	anamnese, err := s.GetByClientID(ctx, clientID)
	if err != nil {
		return err
	}

	if err := s.anamneseRepository.Delete(ctx, anamnese.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrAnamneseNotFound
		}
		return fmt.Errorf("delete anamnese failed: %w", err)
	}

	return nil
}
