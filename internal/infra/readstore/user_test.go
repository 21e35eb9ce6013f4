//go:build unit

package readstore

import (
	"context"
	"testing"

	"bikepacking-api/internal/infra"
	sqlc "bikepacking-api/internal/infra/sqlc/generated"
	"bikepacking-api/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.FindUserByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.FindUserByIDRow), args.Error(1)
}

func TestFindByEmail(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()
	inactiveUser := builder.NewUserBuilder().WithID(2).WithEmail("gone@example.com").AsInactive().BuildInfra()

	tests := []struct {
		name       string
		email      string
		mockReturn sqlc.Users
		mockError  error
		wantHash   string
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - active user",
			email:      testUser.Email,
			mockReturn: testUser,
			wantHash:   testUser.PasswordHash,
		},
		{
			name:       "success - inactive user (for validation)",
			email:      inactiveUser.Email,
			mockReturn: inactiveUser,
			wantHash:   inactiveUser.PasswordHash,
		},
		{
			name:      "user not found",
			email:     "notfound@example.com",
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			email:     testUser.Email,
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByEmail", mock.Anything, mock.Anything, tt.email).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, hash, err := readStore.FindByEmail(context.Background(), tt.email)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.Empty(t, hash)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.email, view.Email)
				assert.Equal(t, tt.mockReturn.IsActive, view.IsActive)
				assert.Equal(t, tt.wantHash, hash)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByID(t *testing.T) {
	testUser := builder.NewUserBuilder().WithID(42).WithAge(41).BuildInfra()
	row := sqlc.FindUserByIDRow{
		ID:        testUser.ID,
		Email:     testUser.Email,
		FirstName: testUser.FirstName,
		LastName:  testUser.LastName,
		Age:       testUser.Age,
		Role:      testUser.Role,
		IsActive:  testUser.IsActive,
		LastLogin: testUser.LastLogin,
		CreatedAt: testUser.CreatedAt,
	}

	tests := []struct {
		name       string
		userID     int64
		mockReturn sqlc.FindUserByIDRow
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{name: "success", userID: 42, mockReturn: row},
		{name: "user not found", userID: 99, mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", userID: 42, mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByID", mock.Anything, mock.Anything, tt.userID).Return(tt.mockReturn, tt.mockError)

			view, err := NewUserReadStore(mockQueries, nil).FindByID(context.Background(), tt.userID)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.userID, view.ID)
				assert.Equal(t, "Test", view.FirstName)
				assert.Equal(t, int32(41), *view.Age)
				assert.Nil(t, view.LastLogin)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
