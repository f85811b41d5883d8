package domain

import (
	"errors"
)

var (
	MessageSuccessRegister         = "user registered successfully"
	MessageSuccessLogin            = "login successful"
	MessageSuccessGetProfile       = "profile retrieved successfully"
	MessageSuccessUpdateProfile    = "profile updated successfully"
	MessageSuccessSendVerifyEmail  = "verification email sent"
	MessageSuccessVerifyEmail      = "email verified successfully"
	MessageSuccessUpdateSubscribed = "subscription preference updated"

	MessageFailedRegister         = "failed to register user"
	MessageFailedLogin            = "failed to login"
	MessageFailedGetProfile       = "failed to retrieve profile"
	MessageFailedUpdateProfile    = "failed to update profile"
	MessageFailedSendVerifyEmail  = "failed to send verification email"
	MessageFailedVerifyEmail      = "failed to verify email"
	MessageFailedUpdateSubscribed = "failed to update subscription preference"

	ErrUserNotFound           = errors.New("user not found")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailNotVerified       = errors.New("email not verified")
	ErrEmailAlreadyVerified   = errors.New("email already verified")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateUserRequest struct {
		Name        string `json:"name" validate:"omitempty"`
		Address     string `json:"address" validate:"omitempty"`
		PhoneNumber string `json:"phone_number" validate:"omitempty"`
	}

	SubscribeRequest struct {
		Subscribed bool `json:"subscribed"`
	}

	SendVerifyEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	UserResponse struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Email        string `json:"email"`
		Role         string `json:"role"`
		IsVerified   bool   `json:"is_verified"`
		IsSubscribed bool   `json:"is_subscribed"`
		Address      string `json:"address,omitempty"`
		PhoneNumber  string `json:"phone_number,omitempty"`
	}
)
