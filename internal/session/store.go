package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	tokenIssuer "todolist/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var TimeNow = time.Now
var ErrSessionNotFound error = errors.New("session not found")

const (
	DefaultCookieName = "todolist.sid"
	DefaultTTL        = 14 * 24 * time.Hour
	DefaultTouchAfter = 24 * time.Hour

	keyPrefix      = "todolist:sess:"
	cookieAudience = "session"
)

type Options struct {
	CookieName string
	// TTL bounds both the store entry and the signed cookie token.
	TTL time.Duration
	// TouchAfter is the minimum interval between expiry refreshes of an unmodified session.
	TouchAfter time.Duration
	Secure     bool
}

func (o Options) withDefaults() Options {
	if o.CookieName == "" {
		o.CookieName = DefaultCookieName
	}
	if o.TTL <= 0 {
		o.TTL = DefaultTTL
	}
	if o.TouchAfter <= 0 {
		o.TouchAfter = DefaultTouchAfter
	}
	return o
}

// Store keeps encrypted session payloads in Redis, keyed by an id that travels in a signed cookie.
type Store struct {
	client RedisClient
	signer CookieSigner
	sealer *sealer
	opts   Options
}

func NewStore(client RedisClient, signer CookieSigner, secret string, opts Options) (*Store, error) {
	sealer, err := newSealer(secret)
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}

	return &Store{
		client: client,
		signer: signer,
		sealer: sealer,
		opts:   opts.withDefaults(),
	}, nil
}

// Load returns the request's session, or a fresh one when the cookie is absent, forged or
// points at an expired entry. Only store failures are reported as errors.
func (s *Store) Load(ctx context.Context, r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(s.opts.CookieName)
	if err != nil {
		return s.New(), nil
	}

	id, err := s.signer.ValidateSubject(cookie.Value, cookieAudience)
	if err != nil {
		return s.New(), nil
	}

	sess, err := s.get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return s.New(), nil
		}
		return s.New(), err
	}

	return sess, nil
}

func (s *Store) New() *Session {
	return New(uuid.NewString())
}

// NeedsTouch reports whether an unmodified, persisted session is due for an expiry refresh.
func (s *Store) NeedsTouch(sess *Session) bool {
	if sess.IsNew() || sess.Modified() {
		return false
	}
	return TimeNow().Sub(sess.TouchedAt()) >= s.opts.TouchAfter
}

// Save persists the session and (re)issues its cookie. A new session that was never
// modified is not stored.
func (s *Store) Save(ctx context.Context, w http.ResponseWriter, sess *Session) error {
	if sess.IsNew() && !sess.Modified() {
		return nil
	}

	sess.values.TouchedAt = TimeNow()
	payload, err := json.Marshal(sess.values)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	sealed, err := s.sealer.seal(payload, sess.id)
	if err != nil {
		return fmt.Errorf("seal session: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+sess.id, sealed, s.opts.TTL).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	token, err := s.signer.Issue(tokenIssuer.TokenInfo{
		Subject:    sess.id,
		Audience:   cookieAudience,
		Expiration: s.opts.TTL,
	})
	if err != nil {
		return fmt.Errorf("sign session cookie: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	sess.isNew = false
	sess.modified = false
	return nil
}

// Destroy removes the session from the store and expires the cookie. The session
// must not be saved afterwards.
func (s *Store) Destroy(ctx context.Context, w http.ResponseWriter, sess *Session) error {
	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	sess.values = Values{}
	sess.modified = false

	if sess.IsNew() {
		return nil
	}

	if err := s.client.Del(ctx, keyPrefix+sess.id).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

func (s *Store) get(ctx context.Context, id string) (*Session, error) {
	data, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	payload, err := s.sealer.open(data, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSessionNotFound, err)
	}

	var values Values
	if err := json.Unmarshal(payload, &values); err != nil {
		return nil, fmt.Errorf("%w: decode session: %w", ErrSessionNotFound, err)
	}

	return &Session{
		id:     id,
		values: values,
	}, nil
}
