package otp

import (
	"errors"
	"sync"
	"time"

	"github.com/bigwigdigital/kpd-realty-api/models"
)

var (
	// ErrNotFound is returned when no live challenge exists for the email.
	// Expired challenges report the same way so callers cannot tell the two
	// apart.
	ErrNotFound = errors.New("no pending challenge for email")

	// ErrCodeMismatch is returned when a challenge exists but the submitted
	// code is wrong. The challenge stays pending and may be retried.
	ErrCodeMismatch = errors.New("verification code does not match")
)

// Challenge is an issued-but-unverified OTP together with the lead submission
// it guards
type Challenge struct {
	Email    string
	Code     string
	Payload  models.LeadSubmission
	IssuedAt time.Time
}

// Store is the keyed holding area for in-flight OTP challenges, at most one per
// email. Implementations must make each method safe for concurrent callers and
// TakeIfMatches atomic, so two concurrent verifies for the same email can never
// both consume the challenge.
type Store interface {
	Put(email string, ch Challenge)
	Get(email string) (Challenge, bool)
	TakeIfMatches(email, code string) (Challenge, error)
	Sweep() int
}

// MemoryStore is the process-local Store implementation. Pending challenges do
// not survive a restart; multi-instance deployments need an external keyed
// store with TTL behind the same interface.
type MemoryStore struct {
	mu         sync.Mutex
	ttl        time.Duration
	challenges map[string]Challenge
	now        func() time.Time
}

// NewMemoryStore creates an empty store whose challenges expire after ttl
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:        ttl,
		challenges: make(map[string]Challenge),
		now:        time.Now,
	}
}

// Put upserts the challenge for its email. Any previously issued code for the
// same email becomes permanently unusable.
func (s *MemoryStore) Put(email string, ch Challenge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[email] = ch
}

// Get returns the live challenge for the email, if any
func (s *MemoryStore) Get(email string) (Challenge, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch, ok := s.challenges[email]
	if !ok {
		return Challenge{}, false
	}
	if s.expired(ch) {
		delete(s.challenges, email)
		return Challenge{}, false
	}
	return ch, true
}

// TakeIfMatches atomically checks the submitted code and removes the challenge
// on a match. On ErrCodeMismatch the challenge is left untouched.
func (s *MemoryStore) TakeIfMatches(email, code string) (Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch, ok := s.challenges[email]
	if !ok {
		return Challenge{}, ErrNotFound
	}
	if s.expired(ch) {
		delete(s.challenges, email)
		return Challenge{}, ErrNotFound
	}
	if ch.Code != code {
		return Challenge{}, ErrCodeMismatch
	}
	delete(s.challenges, email)
	return ch, nil
}

// Sweep evicts every expired challenge and returns how many were removed. The
// scheduler runs this periodically so abandoned challenges do not pile up.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for email, ch := range s.challenges {
		if s.expired(ch) {
			delete(s.challenges, email)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) expired(ch Challenge) bool {
	return s.ttl > 0 && s.now().Sub(ch.IssuedAt) > s.ttl
}
