package repository

import (
	"context"
	"time"

	"github.com/wfunc/hand-recorder/internal/models"
	"gorm.io/gorm"
)

// HandRepository 牌局记录仓储接口
type HandRepository interface {
	BaseRepository
	Create(ctx context.Context, record *models.HandRecord) error
	FindByID(ctx context.Context, id uint) (*models.HandRecord, error)
	List(ctx context.Context, p *Pagination) ([]*models.HandRecord, error)
	FindByPosition(ctx context.Context, position string, p *Pagination) ([]*models.HandRecord, error)
	FindByTimeRange(ctx context.Context, startTime, endTime time.Time, p *Pagination) ([]*models.HandRecord, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uint) error
}

// handRepo 牌局记录仓储实现
type handRepo struct {
	*BaseRepo
}

// NewHandRepository 创建牌局记录仓储
func NewHandRepository(db *gorm.DB) HandRepository {
	return &handRepo{
		BaseRepo: NewBaseRepo(db),
	}
}

// Create 保存牌局记录
func (r *handRepo) Create(ctx context.Context, record *models.HandRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindByID 根据ID查找
func (r *handRepo) FindByID(ctx context.Context, id uint) (*models.HandRecord, error) {
	var record models.HandRecord
	err := r.db.WithContext(ctx).First(&record, id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List 按记录时间倒序列出牌局
func (r *handRepo) List(ctx context.Context, p *Pagination) ([]*models.HandRecord, error) {
	var records []*models.HandRecord

	// 查询总数
	r.db.WithContext(ctx).
		Model(&models.HandRecord{}).
		Count(&p.Total)

	// 查询数据
	err := r.db.WithContext(ctx).
		Order("recorded_at desc").
		Scopes(Paginate(p)).
		Find(&records).Error

	return records, err
}

// FindByPosition 根据英雄位置查找
func (r *handRepo) FindByPosition(ctx context.Context, position string, p *Pagination) ([]*models.HandRecord, error) {
	var records []*models.HandRecord

	// 查询总数
	r.db.WithContext(ctx).
		Model(&models.HandRecord{}).
		Where("position = ?", position).
		Count(&p.Total)

	// 查询数据
	err := r.db.WithContext(ctx).
		Where("position = ?", position).
		Order("recorded_at desc").
		Scopes(Paginate(p)).
		Find(&records).Error

	return records, err
}

// FindByTimeRange 根据时间范围查找
func (r *handRepo) FindByTimeRange(ctx context.Context, startTime, endTime time.Time, p *Pagination) ([]*models.HandRecord, error) {
	var records []*models.HandRecord

	// 查询总数
	r.db.WithContext(ctx).
		Model(&models.HandRecord{}).
		Where("recorded_at BETWEEN ? AND ?", startTime, endTime).
		Count(&p.Total)

	// 查询数据
	err := r.db.WithContext(ctx).
		Where("recorded_at BETWEEN ? AND ?", startTime, endTime).
		Order("recorded_at desc").
		Scopes(Paginate(p)).
		Find(&records).Error

	return records, err
}

// Count 统计牌局总数
func (r *handRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.HandRecord{}).
		Count(&count).Error
	return count, err
}

// Delete 删除牌局记录（软删除）
func (r *handRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.HandRecord{}, id).Error
}

// WithTx 使用事务
func (r *handRepo) WithTx(tx *gorm.DB) BaseRepository {
	return &handRepo{
		BaseRepo: &BaseRepo{db: tx},
	}
}
