package service

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/shreya-jain12/JainTriad/pkg/apperror"
	"github.com/shreya-jain12/JainTriad/pkg/utils"
)

// AuthService checks logins against the line-oriented credential file
// and issues session tokens. Each credential line is "username,password"
// with the first comma as the delimiter; the passwords are plaintext —
// a known smell kept for parity with the existing credential file.
type AuthService struct {
	userFile   string
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userFile string, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{userFile: userFile, jwtManager: jwtManager}
}

// LoginInput represents the login input
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput carries the issued token pair
type LoginOutput struct {
	Username     string
	AccessToken  string
	RefreshToken string
}

// Login verifies the credentials and returns a token pair. Failures are
// always the same generic error so the response never reveals whether
// the username exists.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if !s.checkCredentials(input.Username, input.Password) {
		return nil, apperror.ErrInvalidCredentials
	}
	return s.issueTokens(input.Username)
}

// Refresh exchanges a valid refresh token for a fresh token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	username, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}
	return s.issueTokens(username)
}

func (s *AuthService) issueTokens(username string) (*LoginOutput, error) {
	access, err := s.jwtManager.GenerateAccessToken(username)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(username)
	if err != nil {
		return nil, err
	}
	return &LoginOutput{
		Username:     username,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// checkCredentials scans the credential file for a matching line. A
// missing or unreadable file means every login fails.
func (s *AuthService) checkCredentials(username, password string) bool {
	f, err := os.Open(s.userFile)
	if err != nil {
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		u, p, found := strings.Cut(strings.TrimSpace(scanner.Text()), ",")
		if !found {
			continue
		}
		if u == username && p == password {
			return true
		}
	}
	return false
}
