package usecase

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/services"
	"main/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// UsersRepository is the credential store the user service talks to.
// Implemented by repository.UserRepo; tests provide in-memory fakes.
type UsersRepository interface {
	AddUser(ctx context.Context, user *model.User) error
	FindUserByUsername(ctx context.Context, username string) (*model.User, error)
}

type UserService struct {
	UsersRepo UsersRepository
}

func NewUserService(repo UsersRepository) *UserService {
	return &UserService{UsersRepo: repo}
}

// Register creates a new identity with a hashed password. Duplicate
// usernames surface as model.ErrDuplicateUser.
func (svc *UserService) Register(ctx context.Context, username, password string) (*model.User, error) {
	hashed, err := services.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserID:    uuid.NewString(),
		Username:  username,
		Password:  hashed,
		CreatedAt: time.Now(),
	}

	if err := svc.UsersRepo.AddUser(ctx, user); err != nil {
		if errors.Is(err, model.ErrDuplicateUser) {
			utils.TrackAuthAttempt("failure", "signup")
			return nil, model.ErrDuplicateUser
		}
		return nil, err
	}

	utils.TrackAuthAttempt("success", "signup")
	return user, nil
}

// Authenticate verifies a username/password pair against the stored hash.
// Unknown user and wrong password both return model.ErrInvalidCredentials
// so usernames cannot be enumerated through login.
func (svc *UserService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := svc.UsersRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		utils.TrackAuthAttempt("failure", "login")
		return nil, model.ErrInvalidCredentials
	}

	ok, err := services.VerifyPassword(user.Password, password)
	if err != nil {
		log.Warn().Err(err).Msg("stored password hash could not be verified")
		utils.TrackAuthAttempt("failure", "login")
		return nil, model.ErrInvalidCredentials
	}
	if !ok {
		utils.TrackAuthAttempt("failure", "login")
		return nil, model.ErrInvalidCredentials
	}

	utils.TrackAuthAttempt("success", "login")
	return user, nil
}
