package session

import (
	"context"
	"time"
)

type contextKey struct{}

// Values is the persisted part of a session.
type Values struct {
	UserID    string    `json:"user_id,omitempty"`
	Flashes   []string  `json:"flash,omitempty"`
	TouchedAt time.Time `json:"touched_at"`
}

// Session is the per-request view of a browser session. It is not safe for concurrent use;
// each request owns its own copy.
type Session struct {
	id       string
	values   Values
	isNew    bool
	modified bool
}

// New returns an empty, unsaved session with the given id.
func New(id string) *Session {
	return &Session{
		id:    id,
		isNew: true,
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) IsNew() bool {
	return s.isNew
}

func (s *Session) Modified() bool {
	return s.modified
}

func (s *Session) UserID() string {
	return s.values.UserID
}

func (s *Session) SetUserID(userID string) {
	s.values.UserID = userID
	s.modified = true
}

func (s *Session) AddFlash(msg string) {
	s.values.Flashes = append(s.values.Flashes, msg)
	s.modified = true
}

// Flashes returns the queued flash messages and clears the queue.
func (s *Session) Flashes() []string {
	if len(s.values.Flashes) == 0 {
		return nil
	}

	flashes := s.values.Flashes
	s.values.Flashes = nil
	s.modified = true
	return flashes
}

func (s *Session) TouchedAt() time.Time {
	return s.values.TouchedAt
}

func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok && s != nil
}

// UserIDFromContext returns the identity of the request's session, or "" when there is none.
func UserIDFromContext(ctx context.Context) string {
	s, ok := FromContext(ctx)
	if !ok {
		return ""
	}
	return s.UserID()
}
