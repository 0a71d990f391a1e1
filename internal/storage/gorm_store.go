// Package storage provides the PostStore implementations: a Postgres
// store backed by gorm and an in-memory store for tests and local runs.
package storage

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"storyvault/internal/board"
	"storyvault/internal/models"
)

const pgUniqueViolation = "23505"

// GormStore persists posts in Postgres. Token uniqueness is guaranteed by
// the unique index on the token column; a violation surfaces as
// board.ErrDuplicateToken so the lifecycle can retry with a fresh token.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Insert(post *models.Post) error {
	if err := s.db.Create(post).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return board.ErrDuplicateToken
		}
		return err
	}
	return nil
}

func (s *GormStore) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *GormStore) FindByToken(token string) (*models.Post, error) {
	var post models.Post
	if err := s.db.Where("token = ?", token).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *GormStore) FindMostRecentByIP(ip string, excludeDeleted bool) (*models.Post, error) {
	q := s.db.Where("ip = ?", ip)
	if excludeDeleted {
		q = q.Where("deleted_at IS NULL")
	}
	var post models.Post
	if err := q.Order("created_at DESC").First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *GormStore) CountByIP(ip string, excludeDeleted bool) (int64, error) {
	q := s.db.Model(&models.Post{}).Where("ip = ?", ip)
	if excludeDeleted {
		q = q.Where("deleted_at IS NULL")
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *GormStore) Update(post *models.Post, fields map[string]any) error {
	return s.db.Model(post).Updates(fields).Error
}

func (s *GormStore) ListActive(offset, limit int) ([]models.Post, int64, error) {
	active := s.db.Model(&models.Post{}).Where("deleted_at IS NULL")

	var total int64
	if err := active.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := s.db.Where("deleted_at IS NULL").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}
