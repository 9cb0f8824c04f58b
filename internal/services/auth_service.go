package services

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"constructax/internal/models"
	"constructax/internal/repositories"
	"constructax/internal/utils"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 30 * 24 * time.Hour
)

type AuthService struct {
	userRepo    *repositories.UserRepository
	sessionRepo *repositories.SessionRepository
}

func NewAuthService(userRepo *repositories.UserRepository, sessionRepo *repositories.SessionRepository) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}

// Register creates the auth identity and the profile row in one step and
// signs the new user in.
func (s *AuthService) Register(user *models.User) (string, string, error) {
	existing, err := s.userRepo.FindUserByEmail(user.Email)
	if err != nil {
		return "", "", err
	}
	if existing != nil {
		return "", "", errors.New("this email is already registered")
	}

	hashedPassword, err := utils.Hash(user.Password)
	if err != nil {
		return "", "", err
	}
	user.PasswordHash = string(hashedPassword)
	user.Password = ""

	if err := s.userRepo.Create(user); err != nil {
		return "", "", err
	}

	return s.issueTokens(user.ID)
}

func (s *AuthService) Login(email, password string) (string, string, *models.User, error) {
	user, err := s.userRepo.FindUserByEmail(email)
	if err != nil {
		return "", "", nil, err
	}
	if user == nil {
		return "", "", nil, errors.New("invalid email or password")
	}

	if err := utils.VerifyPassword(user.PasswordHash, password); err != nil {
		return "", "", nil, errors.New("invalid email or password")
	}

	// Fire-and-forget bookkeeping; login does not fail on it.
	_ = s.userRepo.TouchLastLogin(user.ID)

	accessToken, refreshToken, err := s.issueTokens(user.ID)
	if err != nil {
		return "", "", nil, err
	}

	user.PasswordHash = ""
	return accessToken, refreshToken, user, nil
}

func (s *AuthService) Logout(refreshToken string) error {
	return s.sessionRepo.Revoke(refreshToken)
}

// Refresh rotates the refresh token: the presented token's session is
// revoked and a fresh session is created.
func (s *AuthService) Refresh(refreshToken string) (string, string, error) {
	session, err := s.sessionRepo.FindByToken(refreshToken)
	if err != nil {
		return "", "", err
	}
	if session == nil {
		return "", "", errors.New("refresh token not found")
	}

	if session.IsRevoked {
		return "", "", errors.New("refresh token revoked")
	}

	if time.Now().After(session.ExpiresAt) {
		return "", "", errors.New("refresh token expired")
	}

	claims, err := utils.VerifyJWT(refreshToken, utils.RefreshTokenSecret)
	if err != nil {
		return "", "", errors.New("invalid refresh token")
	}

	userID, err := claims.UserID()
	if err != nil {
		return "", "", errors.New("invalid refresh token")
	}

	if err := s.sessionRepo.Revoke(refreshToken); err != nil {
		return "", "", err
	}

	return s.issueTokens(userID)
}

// GetUser retrieves a user by ID with sensitive fields cleared.
func (s *AuthService) GetUser(userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *AuthService) issueTokens(userID uuid.UUID) (string, string, error) {
	accessToken, err := utils.GenerateJWT(userID, accessTokenTTL, utils.AccessTokenSecret)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := utils.GenerateJWT(userID, refreshTokenTTL, utils.RefreshTokenSecret)
	if err != nil {
		return "", "", err
	}

	session := &models.Session{
		UserID:       userID,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(refreshTokenTTL),
	}

	if err := s.sessionRepo.Create(session); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}
