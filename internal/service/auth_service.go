package service

import (
	"context"
	"errors"

	"github.com/wfunc/hand-recorder/internal/utils"
	"go.uber.org/zap"
)

var (
	ErrInvalidPasscode = errors.New("口令错误")
	ErrInvalidToken    = errors.New("无效的令牌")
	ErrNoPasscodeSet   = errors.New("未配置访问口令")
)

// authService 认证服务实现
type authService struct {
	passcodeHash string
	jwtManager   *utils.JWTManager
	log          *zap.Logger
}

// NewAuthService 创建认证服务。passcodeHash为argon2id编码的口令哈希，
// 为空时拒绝所有登录。
func NewAuthService(passcodeHash string, jwtManager *utils.JWTManager, log *zap.Logger) AuthService {
	return &authService{
		passcodeHash: passcodeHash,
		jwtManager:   jwtManager,
		log:          log,
	}
}

// Login 口令登录
func (s *authService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if s.passcodeHash == "" {
		return nil, ErrNoPasscodeSet
	}

	ok, err := utils.VerifyPassword(req.Passcode, s.passcodeHash)
	if err != nil {
		s.log.Error("口令校验失败", zap.Error(err))
		return nil, ErrInvalidPasscode
	}
	if !ok {
		s.log.Warn("口令错误", zap.String("device", req.Device))
		return nil, ErrInvalidPasscode
	}

	clientID, err := utils.GenerateRandomString(16)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(clientID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(clientID)
	if err != nil {
		return nil, err
	}

	s.log.Info("登录成功", zap.String("client_id", clientID), zap.String("device", req.Device))

	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtManager.GetTokenExpiry("access").Seconds()),
	}, nil
}

// RefreshToken 刷新访问令牌
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	accessToken, err := s.jwtManager.RefreshAccessToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtManager.GetTokenExpiry("access").Seconds()),
	}, nil
}

// ValidateToken 验证访问令牌，返回客户端ID
func (s *authService) ValidateToken(ctx context.Context, token string) (string, error) {
	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		return "", ErrInvalidToken
	}
	if claims.TokenType != "access" {
		return "", ErrInvalidToken
	}
	return claims.ClientID, nil
}
