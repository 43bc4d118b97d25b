package service

import (
	"context"

	"github.com/wfunc/hand-recorder/internal/hand"
	"github.com/wfunc/hand-recorder/internal/models"
	"github.com/wfunc/hand-recorder/internal/repository"
	"go.uber.org/zap"
)

// handService 牌局服务实现
type handService struct {
	manager  *hand.Manager
	handRepo repository.HandRepository
	log      *zap.Logger
}

// NewHandService 创建牌局服务
func NewHandService(manager *hand.Manager, handRepo repository.HandRepository, log *zap.Logger) HandService {
	return &handService{
		manager:  manager,
		handRepo: handRepo,
		log:      log,
	}
}

// CreateSession 创建录入会话
func (s *handService) CreateSession(ctx context.Context) (string, *hand.Snapshot, error) {
	session, err := s.manager.Create()
	if err != nil {
		s.log.Warn("创建会话失败", zap.Error(err))
		return "", nil, err
	}

	return session.ID(), session.Snapshot(), nil
}

// GetSession 获取录入会话
func (s *handService) GetSession(ctx context.Context, sessionID string) (*hand.Session, error) {
	return s.manager.Get(sessionID)
}

// RemoveSession 移除录入会话
func (s *handService) RemoveSession(ctx context.Context, sessionID string) error {
	if _, err := s.manager.Get(sessionID); err != nil {
		return err
	}
	s.manager.Remove(sessionID)
	return nil
}

// SaveHand 保存当前牌局并重置会话
func (s *handService) SaveHand(ctx context.Context, sessionID string, req *hand.SaveRequest) (*models.HandRecord, error) {
	session, err := s.manager.Get(sessionID)
	if err != nil {
		return nil, err
	}

	record, err := session.BuildRecord(req)
	if err != nil {
		return nil, err
	}

	// 写入失败时不清空会话，本手牌保留待重试
	if err := s.handRepo.Create(ctx, record); err != nil {
		s.log.Error("保存牌局记录失败",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return nil, err
	}
	session.CompleteSave()

	s.log.Info("牌局已保存",
		zap.String("session_id", sessionID),
		zap.Uint("record_id", record.ID),
		zap.String("position", record.Position),
	)
	return record, nil
}

// GetHand 获取牌局记录详情
func (s *handService) GetHand(ctx context.Context, id uint) (*models.HandRecord, error) {
	return s.handRepo.FindByID(ctx, id)
}

// ListHands 分页列出牌局记录
func (s *handService) ListHands(ctx context.Context, page, pageSize int) ([]*models.HandRecord, int64, error) {
	p := repository.NewPagination(page, pageSize)
	records, err := s.handRepo.List(ctx, p)
	if err != nil {
		return nil, 0, err
	}
	return records, p.Total, nil
}

// DeleteHand 删除牌局记录
func (s *handService) DeleteHand(ctx context.Context, id uint) error {
	// 先确认记录存在
	if _, err := s.handRepo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.handRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("牌局记录已删除", zap.Uint("record_id", id))
	return nil
}
