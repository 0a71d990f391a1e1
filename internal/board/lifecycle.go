// Package board implements the post lifecycle and anti-abuse policy of
// the message board: creation with cooldown and captcha, time-boxed
// token-authorized edit and soft delete, and allow-list sanitization.
package board

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"storyvault/internal/models"
)

// Mutation windows, both measured from CreatedAt. An age exactly equal to
// the limit is still inside the window.
const (
	EditLimit   = 12 * time.Hour
	DeleteLimit = 14 * 24 * time.Hour
)

// Lifecycle is the state machine over posts. It owns every transition and
// depends only on the injected collaborators, never on a concrete store.
type Lifecycle struct {
	store    PostStore
	notifier Notifier
	tokens   TokenIssuer
	siteURL  string
}

func NewLifecycle(store PostStore, notifier Notifier, tokens TokenIssuer, siteURL string) *Lifecycle {
	return &Lifecycle{
		store:    store,
		notifier: notifier,
		tokens:   tokens,
		siteURL:  strings.TrimSuffix(siteURL, "/"),
	}
}

// WithinEditWindow reports whether the post can still be edited at now.
func (l *Lifecycle) WithinEditWindow(p *models.Post, now time.Time) bool {
	return now.Sub(p.CreatedAt) <= EditLimit
}

// WithinDeleteWindow reports whether the post can still be deleted at now.
func (l *Lifecycle) WithinDeleteWindow(p *models.Post, now time.Time) bool {
	return now.Sub(p.CreatedAt) <= DeleteLimit
}

// EditURL returns the manage link that authorizes editing the post.
func (l *Lifecycle) EditURL(p *models.Post) string {
	return fmt.Sprintf("%s/post/%d/edit?token=%s", l.siteURL, p.ID, p.Token)
}

// DeleteURL returns the manage link that authorizes deleting the post.
func (l *Lifecycle) DeleteURL(p *models.Post) string {
	return fmt.Sprintf("%s/post/%d/delete?token=%s", l.siteURL, p.ID, p.Token)
}

// Create persists a new post from input already validated by
// ValidateCreate. It sanitizes the message, stamps CreatedAt, issues the
// token and dispatches the manage-links mail best-effort. A token
// collision on insert is retried once with a fresh token before the
// failure is surfaced as ErrStorage.
func (l *Lifecycle) Create(in CreateInput, now time.Time) (*models.Post, error) {
	post := &models.Post{
		Author:    strings.TrimSpace(in.Author),
		Email:     in.Email,
		Message:   Sanitize(strings.TrimSpace(in.Message)),
		IP:        in.IP,
		CreatedAt: now,
		Token:     l.tokens.Issue(),
	}

	err := l.store.Insert(post)
	if errors.Is(err, ErrDuplicateToken) {
		post.Token = l.tokens.Issue()
		err = l.store.Insert(post)
	}
	if err != nil {
		log.Printf("post: insert failed: %v", err)
		return nil, ErrStorage
	}

	if err := l.notifier.SendManageLinks(post.Email, l.EditURL(post), l.DeleteURL(post)); err != nil {
		// Mail is best-effort; the post is already persisted.
		log.Printf("post %d: manage-links mail failed: %v", post.ID, err)
	}

	return post, nil
}

// FindForManage is the gate every edit and delete passes through first.
// It loads the post by id and checks the caller-supplied token against
// the stored one. The two failure causes stay distinct sentinels even
// though the UI shows them as one message.
func (l *Lifecycle) FindForManage(id uint, token string) (*models.Post, error) {
	post, err := l.store.FindByID(id)
	if err != nil {
		log.Printf("post %d: lookup failed: %v", id, err)
		return nil, ErrStorage
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if post.Token != token {
		return nil, ErrBadToken
	}
	return post, nil
}

// Edit replaces the message of an active post. The caller must hold the
// token and the post must still be inside the edit window. The submitted
// message is re-validated (message rules only) and sanitized; on success
// UpdatedAt is stamped. Returned FieldErrors are user input problems, the
// error covers authorization, window and storage failures.
func (l *Lifecycle) Edit(id uint, token, message string, now time.Time) (*models.Post, FieldErrors, error) {
	post, err := l.FindForManage(id, token)
	if err != nil {
		return nil, nil, err
	}
	if post.IsDeleted() {
		return nil, nil, ErrNotFound
	}
	if !l.WithinEditWindow(post, now) {
		return nil, nil, ErrEditExpired
	}

	if fe := ValidateMessage(message); len(fe) > 0 {
		return post, fe, nil
	}

	clean := Sanitize(strings.TrimSpace(message))
	if err := l.store.Update(post, map[string]any{"message": clean, "updated_at": now}); err != nil {
		log.Printf("post %d: update failed: %v", post.ID, err)
		return nil, nil, ErrStorage
	}
	post.Message = clean
	post.UpdatedAt = now
	return post, nil, nil
}

// Delete soft-deletes the post by stamping DeletedAt. Deleting an already
// deleted post is an idempotent success and leaves the original stamp
// untouched; there is no transition back to active.
func (l *Lifecycle) Delete(id uint, token string, now time.Time) error {
	post, err := l.FindForManage(id, token)
	if err != nil {
		return err
	}
	if post.IsDeleted() {
		return nil
	}
	if !l.WithinDeleteWindow(post, now) {
		return ErrDeleteExpired
	}

	if err := l.store.Update(post, map[string]any{"deleted_at": now}); err != nil {
		log.Printf("post %d: soft delete failed: %v", post.ID, err)
		return ErrStorage
	}
	stamp := now
	post.DeletedAt = &stamp
	return nil
}
