package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"SaveNServe-Backend/domain"
	"SaveNServe-Backend/entities"
	"SaveNServe-Backend/internal/utils"
	"SaveNServe-Backend/internal/utils/mailing"
	"SaveNServe-Backend/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) error
		SetSubscribed(ctx context.Context, userID string, subscribed bool) error
		SendVerificationEmail(ctx context.Context, email string) error
		VerifyEmail(ctx context.Context, token string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	exists, err := s.userRepository.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return domain.RegisterResponse{}, err
	}
	if exists {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     domain.RoleUser,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	if err := s.SendVerificationEmail(ctx, user.Email); err != nil {
		// Registration stands even when the mail cannot go out; the
		// user can request another verification mail later.
		fmt.Printf("send verification email failed: %v\n", err)
	}

	return domain.RegisterResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.LoginResponse{
		Token: token,
		Role:  user.Role,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return domain.UserResponse{
		ID:           user.ID.String(),
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		IsVerified:   user.IsVerified,
		IsSubscribed: user.IsSubscribed,
		Address:      user.Address,
		PhoneNumber:  user.PhoneNumber,
	}, nil
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}

	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) SetSubscribed(ctx context.Context, userID string, subscribed bool) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	// The digest job only mails verified addresses, so an unverified
	// subscription would silently never fire.
	if subscribed && !user.IsVerified {
		return domain.ErrEmailNotVerified
	}

	user.IsSubscribed = subscribed
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) SendVerificationEmail(ctx context.Context, email string) error {
	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if user.IsVerified {
		return domain.ErrEmailAlreadyVerified
	}

	token, err := s.jwtService.GenerateMailToken(map[string]any{
		"user_id": user.ID.String(),
	}, time.Hour*24)
	if err != nil {
		return err
	}

	verifyLink := fmt.Sprintf("%s/api/v1/users/verify?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Welcome to SaveNServe. Please confirm your email address:</p><p><a href=\"%s\">Verify email</a></p>",
		user.Name, verifyLink,
	)

	return mailing.SendMail(user.Email, "Verify your SaveNServe account", body)
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateMailToken(token)
	if err != nil {
		return err
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return domain.ErrTokenInvalid
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.IsVerified = true
	return s.userRepository.UpdateUser(ctx, user)
}
