package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lash-app/backend/internal/domain"
	"github.com/lash-app/backend/internal/repository"

	"github.com/google/uuid"
)

type clientService struct {
	clientRepository repository.Clients
}

func newClientService(clientRepository repository.Clients) *clientService {
	return &clientService{
		clientRepository: clientRepository,
	}
}

type ClientInput struct {
	Name              string
	Email             string
	Phone             string
	BirthDate         string
	PostalCode        string
	Street            string
	Neighborhood      string
	City              string
	State             string
	Number            string
	Complement        *string
	FavoriteProcedure string
}

func (in ClientInput) validate() error {
	required := []string{
		in.Name, in.Email, in.Phone, in.BirthDate, in.PostalCode, in.Street,
		in.Neighborhood, in.City, in.State, in.Number, in.FavoriteProcedure,
	}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return ErrValidation
		}
	}
	return nil
}

func (in ClientInput) apply(client *domain.Client) {
	client.Name = in.Name
	client.Email = in.Email
	client.Phone = in.Phone
	client.BirthDate = in.BirthDate
	client.PostalCode = in.PostalCode
	client.Street = in.Street
	client.Neighborhood = in.Neighborhood
	client.City = in.City
	client.State = in.State
	client.Number = in.Number
	client.Complement = in.Complement
	client.FavoriteProcedure = in.FavoriteProcedure
}

func (s *clientService) Create(ctx context.Context, input ClientInput) (*domain.Client, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate client id failed: %w", err)
	}

	ts := now()
	client := &domain.Client{ID: id, CreatedAt: ts, UpdatedAt: ts}
	input.apply(client)

	if err := s.clientRepository.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("create client failed: %w", err)
	}

	return client, nil
}

func (s *clientService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	client, err := s.clientRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("get client failed: %w", err)
	}

	return client, nil
}

func (s *clientService) List(ctx context.Context, page, limit int) (*domain.Page[domain.Client], error) {
	page, limit = NormalizePage(page, limit)

	clients, err := s.clientRepository.GetAll(ctx, limit, domain.Offset(page, limit))
	if err != nil {
		return nil, fmt.Errorf("get clients failed: %w", err)
	}

	total, err := s.clientRepository.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count clients failed: %w", err)
	}

	return &domain.Page[domain.Client]{
		Items:       clients,
		Total:       total,
		CurrentPage: page,
		Limit:       limit,
	}, nil
}

func (s *clientService) Search(ctx context.Context, name string) ([]domain.Client, error) {
	clients, err := s.clientRepository.SearchByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("search clients failed: %w", err)
	}

	return clients, nil
}

func (s *clientService) Update(ctx context.Context, id uuid.UUID, input ClientInput) (*domain.Client, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	client, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	input.apply(client)
	client.UpdatedAt = now()

	if err := s.clientRepository.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("update client failed: %w", err)
	}

	return client, nil
}

func (s *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.clientRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("delete client failed: %w", err)
	}

	return nil
}
