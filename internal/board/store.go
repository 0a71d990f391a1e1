package board

import "storyvault/internal/models"

// PostStore is the persistence contract the engine consumes. Lookups
// return (nil, nil) when no row matches; Insert returns ErrDuplicateToken
// on a token unique-constraint violation.
type PostStore interface {
	Insert(post *models.Post) error
	FindByID(id uint) (*models.Post, error)
	FindByToken(token string) (*models.Post, error)
	// FindMostRecentByIP returns the newest post for the exact IP,
	// skipping soft-deleted rows when excludeDeleted is set.
	FindMostRecentByIP(ip string, excludeDeleted bool) (*models.Post, error)
	CountByIP(ip string, excludeDeleted bool) (int64, error)
	// Update writes the given columns for the post's row.
	Update(post *models.Post, fields map[string]any) error
	// ListActive returns a page of non-deleted posts ordered by creation
	// time descending, plus the total active count.
	ListActive(offset, limit int) ([]models.Post, int64, error)
}

// Notifier delivers the manage links to the author. Failures are logged
// and swallowed by the caller; they never fail a create.
type Notifier interface {
	SendManageLinks(toEmail, editURL, deleteURL string) error
}
