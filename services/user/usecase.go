package user

import (
	"context"

	"github.com/cargolink/cargolink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/cargolink/cargolink/services/user UserUC

// UserUC defines the account use cases
type UserUC interface {
	// Register creates a warehouse or dealer account
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)

	// Login exchanges credentials for a signed bearer token
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	// Profile returns a public profile with derived trip and rating
	// statistics.
	Profile(ctx context.Context, userID string) (*models.UserProfile, error)
}
