package service

import "errors"

var (
	ErrValidation = errors.New("validation failed")

	ErrUserAlreadyExist            = errors.New("user already exist")
	ErrUserNotFound                = errors.New("user not found")
	ErrUserNotVerified             = errors.New("user email not verified")
	ErrInvalidPassword             = errors.New("invalid password")
	ErrPendingRegistrationNotFound = errors.New("pending registration not found or expired")
	ErrInvalidVerificationCode     = errors.New("invalid verification code")
	ErrNotificationFailed          = errors.New("verification notification failed")

	ErrClientNotFound   = errors.New("client not found")
	ErrAnamneseNotFound = errors.New("anamnese not found")
)
