package service

import (
	"context"
	"time"

	"github.com/lash-app/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/mock"
)

type usersRepoMock struct {
	mock.Mock
}

func (m *usersRepoMock) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *usersRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

type pendingRepoMock struct {
	mock.Mock
}

func (m *pendingRepoMock) Save(ctx context.Context, registration *domain.PendingRegistration) error {
	return m.Called(ctx, registration).Error(0)
}

func (m *pendingRepoMock) GetByEmail(ctx context.Context, email string) (*domain.PendingRegistration, error) {
	args := m.Called(ctx, email)
	registration, _ := args.Get(0).(*domain.PendingRegistration)
	return registration, args.Error(1)
}

func (m *pendingRepoMock) Delete(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

type clientsRepoMock struct {
	mock.Mock
}

func (m *clientsRepoMock) Create(ctx context.Context, client *domain.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *clientsRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	args := m.Called(ctx, id)
	client, _ := args.Get(0).(*domain.Client)
	return client, args.Error(1)
}

func (m *clientsRepoMock) GetAll(ctx context.Context, limit, offset int) ([]domain.Client, error) {
	args := m.Called(ctx, limit, offset)
	clients, _ := args.Get(0).([]domain.Client)
	return clients, args.Error(1)
}

func (m *clientsRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *clientsRepoMock) SearchByName(ctx context.Context, name string) ([]domain.Client, error) {
	args := m.Called(ctx, name)
	clients, _ := args.Get(0).([]domain.Client)
	return clients, args.Error(1)
}

func (m *clientsRepoMock) Update(ctx context.Context, client *domain.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *clientsRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type anamnesesRepoMock struct {
	mock.Mock
}

func (m *anamnesesRepoMock) Create(ctx context.Context, anamnese *domain.Anamnese) error {
	return m.Called(ctx, anamnese).Error(0)
}

func (m *anamnesesRepoMock) GetFirstByClientID(ctx context.Context, clientID uuid.UUID) (*domain.Anamnese, error) {
	args := m.Called(ctx, clientID)
	anamnese, _ := args.Get(0).(*domain.Anamnese)
	return anamnese, args.Error(1)
}

func (m *anamnesesRepoMock) GetAll(ctx context.Context, limit, offset int) ([]domain.Anamnese, error) {
	args := m.Called(ctx, limit, offset)
	anamneses, _ := args.Get(0).([]domain.Anamnese)
	return anamneses, args.Error(1)
}

func (m *anamnesesRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *anamnesesRepoMock) Update(ctx context.Context, anamnese *domain.Anamnese) error {
	return m.Called(ctx, anamnese).Error(0)
}

func (m *anamnesesRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type hasherMock struct {
	mock.Mock
}

func (m *hasherMock) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *hasherMock) Compare(hash string, password string) error {
	return m.Called(hash, password).Error(0)
}

type tokenManagerMock struct {
	mock.Mock
}

func (m *tokenManagerMock) NewJWT(userID uuid.UUID) (string, time.Duration, error) {
	args := m.Called(userID)
	return args.String(0), args.Get(1).(time.Duration), args.Error(2)
}

func (m *tokenManagerMock) Parse(accessToken string) (string, error) {
	args := m.Called(accessToken)
	return args.String(0), args.Error(1)
}

type otpMock struct {
	codes []string
}

func (m *otpMock) RandomCode() string {
	code := m.codes[0]
	if len(m.codes) > 1 {
		m.codes = m.codes[1:]
	}
	return code
}

type enqueuerMock struct {
	mock.Mock
}

func (m *enqueuerMock) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task)
	info, _ := args.Get(0).(*asynq.TaskInfo)
	return info, args.Error(1)
}
