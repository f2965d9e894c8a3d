package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/cargolink/cargolink/internal/pkg/errors"
	"github.com/cargolink/cargolink/internal/pkg/models"
	"github.com/cargolink/cargolink/services/user/mocks"
)

func setupUserUC(t *testing.T) (*userUC, *mocks.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockUserRepo(ctrl)
	cfg := &models.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = 60
	uc := NewUserUC(cfg, repo).(*userUC)
	return uc, repo
}

func TestRegister(t *testing.T) {
	uc, repo := setupUserUC(t)

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			assert.Equal(t, "ops@acme.in", u.Email)
			assert.Equal(t, models.RoleWarehouse, u.Role)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct horse")))
			return nil
		})

	created, err := uc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Acme Ops",
		Email:    " Ops@Acme.in ",
		Password: "correct horse",
		Role:     models.RoleWarehouse,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestRegister_Validation(t *testing.T) {
	uc, _ := setupUserUC(t)

	testCases := []struct {
		name string
		req  models.RegisterRequest
	}{
		{
			name: "missing name",
			req:  models.RegisterRequest{Email: "a@b.c", Password: "longenough", Role: models.RoleDealer},
		},
		{
			name: "bad email",
			req:  models.RegisterRequest{Name: "A", Email: "not-an-email", Password: "longenough", Role: models.RoleDealer},
		},
		{
			name: "short password",
			req:  models.RegisterRequest{Name: "A", Email: "a@b.c", Password: "short", Role: models.RoleDealer},
		},
		{
			name: "admin role rejected",
			req:  models.RegisterRequest{Name: "A", Email: "a@b.c", Password: "longenough", Role: models.RoleAdmin},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Register(context.Background(), &tc.req)
			assert.True(t, apperrors.Is(err, apperrors.KindValidation))
		})
	}
}

func TestLogin(t *testing.T) {
	uc, repo := setupUserUC(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &models.User{
		ID:           uuid.New(),
		Name:         "Acme Ops",
		Email:        "ops@acme.in",
		PasswordHash: string(hash),
		Role:         models.RoleWarehouse,
		CreatedAt:    time.Now(),
	}
	repo.EXPECT().GetUserByEmail(gomock.Any(), "ops@acme.in").Return(stored, nil)

	auth, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "Ops@Acme.in",
		Password: "correct horse",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, auth.Token)
	assert.Greater(t, auth.ExpiresAt, time.Now().Unix())
	assert.Equal(t, stored.ID, auth.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, repo := setupUserUC(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().
		GetUserByEmail(gomock.Any(), "ops@acme.in").
		Return(&models.User{ID: uuid.New(), PasswordHash: string(hash)}, nil)

	_, err = uc.Login(context.Background(), &models.LoginRequest{
		Email:    "ops@acme.in",
		Password: "wrong",
	})

	assert.True(t, apperrors.Is(err, apperrors.KindAuthorization))
}

func TestLogin_UnknownEmailIndistinguishable(t *testing.T) {
	uc, repo := setupUserUC(t)

	repo.EXPECT().
		GetUserByEmail(gomock.Any(), "ghost@acme.in").
		Return(nil, apperrors.NotFound("user not found"))

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "ghost@acme.in",
		Password: "whatever1",
	})

	assert.True(t, apperrors.Is(err, apperrors.KindAuthorization))
}

func TestProfile(t *testing.T) {
	uc, repo := setupUserUC(t)

	userID := uuid.New()
	repo.EXPECT().GetUser(gomock.Any(), userID).Return(&models.User{ID: userID, Name: "Acme Ops"}, nil)
	repo.EXPECT().GetTripCounts(gomock.Any(), userID).Return(12, 2, nil)
	repo.EXPECT().GetRatingSummary(gomock.Any(), userID).Return(4.5, 9, nil)
	repo.EXPECT().
		GetRecentRatings(gomock.Any(), userID, 5).
		Return([]models.Rating{{ID: uuid.New(), To: userID, Score: 5}}, nil)
	repo.EXPECT().
		GetMonthlyTrips(gomock.Any(), userID, 6).
		Return([]models.MonthlyTrip{{Month: "2026-08", Count: 3}}, nil)

	profile, err := uc.Profile(context.Background(), userID.String())

	require.NoError(t, err)
	assert.Equal(t, 12, profile.CompletedTrips)
	assert.Equal(t, 2, profile.ActiveTrips)
	assert.Equal(t, 4.5, profile.AvgRating)
	assert.Equal(t, 9, profile.RatingCount)
	require.Len(t, profile.RecentRatings, 1)
	require.Len(t, profile.MonthlyTrips, 1)
}

func TestProfile_InvalidID(t *testing.T) {
	uc, _ := setupUserUC(t)

	_, err := uc.Profile(context.Background(), "not-a-uuid")

	assert.True(t, apperrors.Is(err, apperrors.KindValidation))
}
