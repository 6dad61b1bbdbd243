package usecase

import (
	"context"
	"crypto/subtle"
	"errors"

	"clinic-agenda-server/config"
	"clinic-agenda-server/internal/delivery/dto"
	"clinic-agenda-server/internal/service"
	"clinic-agenda-server/pkg/jwt"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	CurrentSession(ctx context.Context, username string) *dto.SessionResponse
}

type authUsecase struct {
	log           *logrus.Logger
	credentials   config.AuthConfig
	jwtService    *jwt.JWTService
	tokenRegistry *service.TokenRegistry
}

func NewAuthUsecase(
	log *logrus.Logger,
	credentials config.AuthConfig,
	jwtService *jwt.JWTService,
	tokenRegistry *service.TokenRegistry,
) AuthUsecase {
	return &authUsecase{
		log:           log,
		credentials:   credentials,
		jwtService:    jwtService,
		tokenRegistry: tokenRegistry,
	}
}

// Login checks the submitted pair against the one configured credential
// pair. Any other pair is rejected; there is no lockout and no rate
// limiting. Sessions live in process memory only.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if !u.authenticate(req.Username, req.Password) {
		return nil, ErrInvalidCredentials
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(req.Username)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(req.Username)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	u.tokenRegistry.Register(accessTokenID, u.jwtService.GetAccessExpiry())
	u.tokenRegistry.Register(refreshTokenID, u.jwtService.GetRefreshExpiry())

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) authenticate(username, password string) bool {
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(u.credentials.Username)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(u.credentials.Password)) == 1
	return userMatch && passMatch
}

func (u *authUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	u.tokenRegistry.Revoke(accessTokenID)
	if refreshTokenID != "" {
		u.tokenRegistry.Revoke(refreshTokenID)
	}
	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	if !u.tokenRegistry.IsValid(claims.TokenID) {
		return nil, ErrTokenRevoked
	}

	// Rotate: the old refresh token is spent.
	u.tokenRegistry.Revoke(claims.TokenID)

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(claims.Username)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(claims.Username)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	u.tokenRegistry.Register(accessTokenID, u.jwtService.GetAccessExpiry())
	u.tokenRegistry.Register(refreshTokenID, u.jwtService.GetRefreshExpiry())

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) CurrentSession(ctx context.Context, username string) *dto.SessionResponse {
	return &dto.SessionResponse{Username: username}
}
