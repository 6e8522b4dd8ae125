package auth

import (
	"sync"
	"time"
)

// ExpiryBuffer is how long before its expiry a token stops being reused.
const ExpiryBuffer = 30 * time.Second

// Token is a signed JWT and its expiry.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// ValidAt reports whether the token can still be sent at now, that is whether
// it expires more than ExpiryBuffer after now.
func (t *Token) ValidAt(now time.Time) bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	return now.Add(ExpiryBuffer).Before(t.ExpiresAt)
}

// TokenStore holds one token and is safe for concurrent use.
type TokenStore struct {
	mu    sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the stored token, or nil.
func (s *TokenStore) Get() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Set replaces the stored token.
func (s *TokenStore) Set(token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

type credentials struct {
	apiToken string
	userID   string
}

// TokenCache generates management JWTs and reuses each one until it is
// within ExpiryBuffer of expiring. Its Generate method has the signature of
// a resource token generator.
type TokenCache struct {
	mu     sync.Mutex
	stores map[credentials]*TokenStore
	now    func() time.Time
}

// NewTokenCache creates an empty cache.
func NewTokenCache() *TokenCache {
	return &TokenCache{
		stores: make(map[credentials]*TokenStore),
		now:    time.Now,
	}
}

// Generate returns the cached JWT for the credentials, signing a new one when
// none is cached or the cached one is about to expire.
func (c *TokenCache) Generate(apiToken, userID string) (string, error) {
	store := c.store(credentials{apiToken: apiToken, userID: userID})

	now := c.now()

	if token := store.Get(); token.ValidAt(now) {
		return token.AccessToken, nil
	}

	signed, err := generateTokenAt(apiToken, userID, now)
	if err != nil {
		return "", err
	}

	store.Set(&Token{AccessToken: signed, ExpiresAt: now.Add(TokenTTL)})

	return signed, nil
}

func (c *TokenCache) store(key credentials) *TokenStore {
	c.mu.Lock()
	defer c.mu.Unlock()

	store, ok := c.stores[key]
	if !ok {
		store = NewTokenStore()
		c.stores[key] = store
	}

	return store
}
