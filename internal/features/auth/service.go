package auth

import (
	"context"
	"errors"

	"go-admin/internal/common/apperror"
	"go-admin/internal/common/models"
	"go-admin/internal/features/backenduser"
	"go-admin/internal/features/role"
	"go-admin/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// LoginResult is everything the dashboard needs after a successful login:
// the session token, the identity summary and the full resolved role so the
// client can gate its UI without another round trip.
type LoginResult struct {
	Token string
	User  LoginUser
	Role  *role.Role
}

type LoginUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type AuthServiceImpl struct {
	UserRepo backenduser.BackendUserRepository
	RoleRepo role.RoleRepository
	JWT      *utils.JWTManager
}

func NewAuthService(userRepo backenduser.BackendUserRepository, roleRepo role.RoleRepository, jwt *utils.JWTManager) AuthService {
	return &AuthServiceImpl{
		UserRepo: userRepo,
		RoleRepo: roleRepo,
		JWT:      jwt,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, apperror.Validation("Email and password are required")
	}

	// Unknown identity and wrong password return the identical message so
	// the endpoint cannot be used to enumerate accounts.
	user, err := s.UserRepo.FindByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.Validation("Invalid email or password")
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperror.Validation("Invalid email or password")
	}

	if user.Block {
		return nil, apperror.Forbidden("User is blocked")
	}

	roleName := models.NoRoleName
	var resolvedRole *role.Role
	if user.RoleID != nil {
		if found, err := s.RoleRepo.FindByID(ctx, *user.RoleID); err == nil {
			resolvedRole = found
			roleName = found.Name
		}
	}

	token, err := s.JWT.GenerateToken(user.ID.Hex(), user.Email, roleName)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: token,
		User: LoginUser{
			ID:    user.ID.Hex(),
			Name:  user.Name,
			Email: user.Email,
			Role:  roleName,
		},
		Role: resolvedRole,
	}, nil
}
