package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mottuflow/fleetflow/internal/errors"
	"github.com/mottuflow/fleetflow/internal/listing"
	"github.com/mottuflow/fleetflow/internal/staff/domain"
)

// MockStaffRepository is a mock implementation of StaffRepository
type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) Create(ctx context.Context, staff *domain.Staff) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *MockStaffRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

func (m *MockStaffRepository) GetByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

func (m *MockStaffRepository) List(ctx context.Context, params listing.Params) ([]*domain.Staff, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Staff), args.Error(1)
}

func (m *MockStaffRepository) Count(ctx context.Context, filters map[string]string) (int, error) {
	args := m.Called(ctx, filters)
	return args.Int(0), args.Error(1)
}

func (m *MockStaffRepository) Update(ctx context.Context, staff *domain.Staff) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *MockStaffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validCreateInput() CreateStaffInput {
	return CreateStaffInput{
		Name:     "Ana Souza",
		CPF:      "123.456.789-00",
		Role:     "operator",
		Phone:    "11987654321",
		Email:    "Ana.Souza@Example.com",
		Password: "SecurePass123!",
	}
}

func TestNewStaffUseCase(t *testing.T) {
	repo := &MockStaffRepository{}

	useCase, err := NewStaffUseCase(repo)
	require.NoError(t, err)
	assert.NotNil(t, useCase)
}

func TestStaffUseCase_Create_Success(t *testing.T) {
	repo := &MockStaffRepository{}
	useCase, err := NewStaffUseCase(repo)
	require.NoError(t, err)

	ctx := context.Background()
	repo.On("Create", ctx, mock.AnythingOfType("*domain.Staff")).Return(nil)

	staff, err := useCase.Create(ctx, validCreateInput())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, staff.ID)
	assert.Equal(t, "Ana Souza", staff.Name)
	assert.Equal(t, "ana.souza@example.com", staff.Email)
	assert.NotEqual(t, "SecurePass123!", staff.Password)
	assert.NotEmpty(t, staff.Password)
	repo.AssertExpectations(t)
}

func TestStaffUseCase_Create_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(input *CreateStaffInput)
	}{
		{"missing name", func(i *CreateStaffInput) { i.Name = "" }},
		{"blank name", func(i *CreateStaffInput) { i.Name = "   " }},
		{"malformed cpf", func(i *CreateStaffInput) { i.CPF = "not-a-cpf" }},
		{"malformed email", func(i *CreateStaffInput) { i.Email = "not-an-email" }},
		{"short phone", func(i *CreateStaffInput) { i.Phone = "123" }},
		{"weak password", func(i *CreateStaffInput) { i.Password = "password" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockStaffRepository{}
			useCase, err := NewStaffUseCase(repo)
			require.NoError(t, err)

			input := validCreateInput()
			tt.mutate(&input)

			_, err = useCase.Create(context.Background(), input)

			assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
			repo.AssertNotCalled(t, "Create")
		})
	}
}

func TestStaffUseCase_Create_RepositoryError(t *testing.T) {
	repo := &MockStaffRepository{}
	useCase, err := NewStaffUseCase(repo)
	require.NoError(t, err)

	ctx := context.Background()
	repo.On("Create", ctx, mock.AnythingOfType("*domain.Staff")).Return(domain.ErrStaffAlreadyExists)

	_, err = useCase.Create(ctx, validCreateInput())

	assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
}

func TestStaffUseCase_Get(t *testing.T) {
	repo := &MockStaffRepository{}
	useCase, err := NewStaffUseCase(repo)
	require.NoError(t, err)

	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())
	expected := &domain.Staff{ID: id, Name: "Ana Souza"}
	repo.On("GetByID", ctx, id).Return(expected, nil)

	staff, err := useCase.Get(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, expected, staff)
}

func TestStaffUseCase_Get_NotFound(t *testing.T) {
	repo := &MockStaffRepository{}
	useCase, err := NewStaffUseCase(repo)
	require.NoError(t, err)

	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())
	repo.On("GetByID", ctx, id).Return(nil, domain.ErrStaffNotFound)

	_, err = useCase.Get(ctx, id)

	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestStaffUseCase_List(t *testing.T) {
	repo := &MockStaffRepository{}
	useCase, err := NewStaffUseCase(repo)
	require.NoError(t, err)

	ctx := context.Background()
	params := listing.Params{Page: 1, PageSize: 10, Filters: map[string]string{"role": "operator"}}
	items := []*domain.Staff{{ID: uuid.Must(uuid.NewV7())}, {ID: uuid.Must(uuid.NewV7())}}

	repo.On("List", ctx, params).Return(items, nil)
	repo.On("Count", ctx, params.Filters).Return(42, nil)

	result, total, err := useCase.List(ctx, params)

	require.NoError(t, err)
	assert.Equal(t, items, result)
	assert.Equal(t, 42, total)
}

func TestStaffUseCase_List_Error(t *testing.T) {
	repo := &MockStaffRepository{}
	useCase, err := NewStaffUseCase(repo)
	require.NoError(t, err)

	ctx := context.Background()
	params := listing.Params{Page: 1, PageSize: 10}
	repo.On("List", ctx, params).Return(nil, assert.AnError)

	_, _, err = useCase.List(ctx, params)

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Count")
}

func TestStaffUseCase_Update_KeepsPasswordWhenEmpty(t *testing.T) {
	repo := &MockStaffRepository{}
	useCase, err := NewStaffUseCase(repo)
	require.NoError(t, err)

	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())
	existing := &domain.Staff{ID: id, Name: "Ana Souza", Password: "stored-hash"}

	repo.On("GetByID", ctx, id).Return(existing, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*domain.Staff")).Return(nil)

	input := UpdateStaffInput{
		Name:  "Ana Lima",
		CPF:   "123.456.789-00",
		Role:  "manager",
		Phone: "11987654321",
		Email: "ana.lima@example.com",
	}

	staff, err := useCase.Update(ctx, id, input)

	require.NoError(t, err)
	assert.Equal(t, "Ana Lima", staff.Name)
	assert.Equal(t, "stored-hash", staff.Password)
	assert.False(t, staff.UpdatedAt.IsZero())
}

func TestStaffUseCase_Update_RehashesNewPassword(t *testing.T) {
	repo := &MockStaffRepository{}
	useCase, err := NewStaffUseCase(repo)
	require.NoError(t, err)

	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())
	existing := &domain.Staff{ID: id, Name: "Ana Souza", Password: "stored-hash"}

	repo.On("GetByID", ctx, id).Return(existing, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*domain.Staff")).Return(nil)

	input := UpdateStaffInput{
		Name:     "Ana Lima",
		CPF:      "123.456.789-00",
		Role:     "manager",
		Phone:    "11987654321",
		Email:    "ana.lima@example.com",
		Password: "NewSecurePass123!",
	}

	staff, err := useCase.Update(ctx, id, input)

	require.NoError(t, err)
	assert.NotEqual(t, "stored-hash", staff.Password)
	assert.NotEqual(t, "NewSecurePass123!", staff.Password)
}

func TestStaffUseCase_Update_NotFound(t *testing.T) {
	repo := &MockStaffRepository{}
	useCase, err := NewStaffUseCase(repo)
	require.NoError(t, err)

	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())
	repo.On("GetByID", ctx, id).Return(nil, domain.ErrStaffNotFound)

	input := UpdateStaffInput{
		Name:  "Ana Lima",
		CPF:   "123.456.789-00",
		Role:  "manager",
		Phone: "11987654321",
		Email: "ana.lima@example.com",
	}

	_, err = useCase.Update(ctx, id, input)

	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	repo.AssertNotCalled(t, "Update")
}

func TestStaffUseCase_Delete(t *testing.T) {
	repo := &MockStaffRepository{}
	useCase, err := NewStaffUseCase(repo)
	require.NoError(t, err)

	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())
	repo.On("Delete", ctx, id).Return(nil)

	assert.NoError(t, useCase.Delete(ctx, id))
	repo.AssertExpectations(t)
}
