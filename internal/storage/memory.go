package storage

import (
	"sort"
	"sync"
	"time"

	"storyvault/internal/board"
	"storyvault/internal/models"
)

// MemoryStore is a mutex-guarded PostStore kept entirely in memory. It
// backs tests and the no-database local mode and mirrors the constraints
// of the Postgres store, including the unique index on token.
type MemoryStore struct {
	mu     sync.Mutex
	posts  map[uint]*models.Post
	tokens map[string]uint
	nextID uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		posts:  make(map[uint]*models.Post),
		tokens: make(map[string]uint),
		nextID: 1,
	}
}

func (s *MemoryStore) Insert(post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.tokens[post.Token]; taken {
		return board.ErrDuplicateToken
	}

	post.ID = s.nextID
	s.nextID++

	stored := *post
	s.posts[stored.ID] = &stored
	s.tokens[stored.Token] = stored.ID
	return nil
}

func (s *MemoryStore) FindByID(id uint) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, nil
	}
	copied := *post
	return &copied, nil
}

func (s *MemoryStore) FindByToken(token string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.tokens[token]
	if !ok {
		return nil, nil
	}
	copied := *s.posts[id]
	return &copied, nil
}

func (s *MemoryStore) FindMostRecentByIP(ip string, excludeDeleted bool) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var latest *models.Post
	for _, post := range s.posts {
		if post.IP != ip {
			continue
		}
		if excludeDeleted && post.IsDeleted() {
			continue
		}
		if latest == nil || post.CreatedAt.After(latest.CreatedAt) {
			latest = post
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (s *MemoryStore) CountByIP(ip string, excludeDeleted bool) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, post := range s.posts {
		if post.IP != ip {
			continue
		}
		if excludeDeleted && post.IsDeleted() {
			continue
		}
		count++
	}
	return count, nil
}

func (s *MemoryStore) Update(post *models.Post, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.posts[post.ID]
	if !ok {
		return board.ErrNotFound
	}
	for column, value := range fields {
		switch column {
		case "message":
			stored.Message = value.(string)
		case "updated_at":
			stored.UpdatedAt = value.(time.Time)
		case "deleted_at":
			stamp := value.(time.Time)
			stored.DeletedAt = &stamp
		}
	}
	return nil
}

func (s *MemoryStore) ListActive(offset, limit int) ([]models.Post, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]models.Post, 0, len(s.posts))
	for _, post := range s.posts {
		if !post.IsDeleted() {
			active = append(active, *post)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].CreatedAt.After(active[j].CreatedAt)
	})

	total := int64(len(active))
	if offset >= len(active) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(active) {
		end = len(active)
	}
	return active[offset:end], total, nil
}
