package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/cargolink/cargolink/internal/pkg/errors"
	"github.com/cargolink/cargolink/internal/pkg/jwt"
	"github.com/cargolink/cargolink/internal/pkg/models"
	"github.com/cargolink/cargolink/services/user"
)

// recentRatingsLimit caps the ratings shown on a profile
const recentRatingsLimit = 5

// monthlyTripsWindow is the trailing window for profile charts
const monthlyTripsWindow = 6

// userUC implements the user.UserUC interface
type userUC struct {
	cfg      *models.Config
	userRepo user.UserRepo
}

// NewUserUC creates a new user use case
func NewUserUC(cfg *models.Config, userRepo user.UserRepo) user.UserUC {
	return &userUC{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

// Register creates a warehouse or dealer account
func (uc *userUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if err := validateRegister(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Dependency("failed to hash password", err)
	}

	now := time.Now()
	u := &models.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         req.Role,
		CompanyName:  strings.TrimSpace(req.CompanyName),
		Location:     strings.TrimSpace(req.Location),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login exchanges credentials for a signed bearer token. Unknown
// email and wrong password are indistinguishable to the caller.
func (uc *userUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.Validation("email and password are required")
	}

	u, err := uc.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			return nil, apperrors.Authorization("invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.Authorization("invalid email or password")
	}

	token, expiresAt, err := jwt.GenerateToken(u.ID, u.Role, uc.cfg.JWT)
	if err != nil {
		return nil, apperrors.Dependency("failed to sign token", err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *u,
	}, nil
}

// Profile returns a public profile with derived statistics. Rating
// average is computed on read from the ledger.
func (uc *userUC) Profile(ctx context.Context, userID string) (*models.UserProfile, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.Validation("invalid user id")
	}

	u, err := uc.userRepo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	completed, active, err := uc.userRepo.GetTripCounts(ctx, id)
	if err != nil {
		return nil, err
	}

	avg, count, err := uc.userRepo.GetRatingSummary(ctx, id)
	if err != nil {
		return nil, err
	}

	recent, err := uc.userRepo.GetRecentRatings(ctx, id, recentRatingsLimit)
	if err != nil {
		return nil, err
	}

	monthly, err := uc.userRepo.GetMonthlyTrips(ctx, id, monthlyTripsWindow)
	if err != nil {
		return nil, err
	}

	return &models.UserProfile{
		User:           *u,
		CompletedTrips: completed,
		ActiveTrips:    active,
		AvgRating:      avg,
		RatingCount:    count,
		RecentRatings:  recent,
		MonthlyTrips:   monthly,
	}, nil
}

func validateRegister(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.Validation("name is required")
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return apperrors.Validation("a valid email is required")
	}
	if len(req.Password) < 8 {
		return apperrors.Validation("password must be at least 8 characters")
	}
	if req.Role != models.RoleWarehouse && req.Role != models.RoleDealer {
		return apperrors.Validation("role must be warehouse or dealer")
	}
	return nil
}
