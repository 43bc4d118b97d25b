package service

import (
	"context"

	"github.com/wfunc/hand-recorder/internal/hand"
	"github.com/wfunc/hand-recorder/internal/models"
)

// HandService 牌局服务接口
type HandService interface {
	// 录入会话
	CreateSession(ctx context.Context) (string, *hand.Snapshot, error)
	GetSession(ctx context.Context, sessionID string) (*hand.Session, error)
	RemoveSession(ctx context.Context, sessionID string) error

	// 牌局历史
	SaveHand(ctx context.Context, sessionID string, req *hand.SaveRequest) (*models.HandRecord, error)
	GetHand(ctx context.Context, id uint) (*models.HandRecord, error)
	ListHands(ctx context.Context, page, pageSize int) ([]*models.HandRecord, int64, error)
	DeleteHand(ctx context.Context, id uint) error
}

// AuthService 认证服务接口
type AuthService interface {
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error)
	ValidateToken(ctx context.Context, token string) (string, error)
}

// LoginRequest 登录请求
type LoginRequest struct {
	Passcode string `json:"passcode" binding:"required"`
	Device   string `json:"device"`
}

// AuthResponse 认证响应
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
