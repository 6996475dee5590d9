package otp

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bigwigdigital/kpd-realty-api/models"
)

func testChallenge(email, code string) Challenge {
	return Challenge{
		Email: email,
		Code:  code,
		Payload: models.LeadSubmission{
			Name:    "A",
			Email:   email,
			Phone:   "1",
			Message: "hi",
			Purpose: "Buy",
		},
		IssuedAt: time.Now(),
	}
}

func TestMemoryStore_PutAndGet(t *testing.T) {
	s := NewMemoryStore(10 * time.Minute)
	s.Put("a@x.com", testChallenge("a@x.com", "123456"))

	ch, ok := s.Get("a@x.com")
	assert.True(t, ok)
	assert.Equal(t, "123456", ch.Code)
	assert.Equal(t, "A", ch.Payload.Name)
}

func TestMemoryStore_GetUnknownEmail(t *testing.T) {
	s := NewMemoryStore(10 * time.Minute)

	_, ok := s.Get("nobody@x.com")
	assert.False(t, ok)
}

func TestMemoryStore_TakeIfMatchesConsumesChallenge(t *testing.T) {
	s := NewMemoryStore(10 * time.Minute)
	s.Put("a@x.com", testChallenge("a@x.com", "123456"))

	ch, err := s.TakeIfMatches("a@x.com", "123456")
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", ch.Payload.Email)

	// consumed, a second take must report not found
	_, err = s.TakeIfMatches("a@x.com", "123456")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_TakeIfMatchesWrongCodeLeavesChallenge(t *testing.T) {
	s := NewMemoryStore(10 * time.Minute)
	s.Put("a@x.com", testChallenge("a@x.com", "123456"))

	_, err := s.TakeIfMatches("a@x.com", "000000")
	assert.ErrorIs(t, err, ErrCodeMismatch)

	// challenge must survive the failed attempt
	ch, err := s.TakeIfMatches("a@x.com", "123456")
	assert.NoError(t, err)
	assert.Equal(t, "123456", ch.Code)
}

func TestMemoryStore_TakeIfMatchesUnknownEmail(t *testing.T) {
	s := NewMemoryStore(10 * time.Minute)

	_, err := s.TakeIfMatches("nobody@x.com", "123456")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ReissueInvalidatesFirstCode(t *testing.T) {
	s := NewMemoryStore(10 * time.Minute)
	s.Put("a@x.com", testChallenge("a@x.com", "111111"))
	s.Put("a@x.com", testChallenge("a@x.com", "222222"))

	_, err := s.TakeIfMatches("a@x.com", "111111")
	assert.ErrorIs(t, err, ErrCodeMismatch)

	_, err = s.TakeIfMatches("a@x.com", "222222")
	assert.NoError(t, err)
}

func TestMemoryStore_ExpiredChallengeReportsNotFound(t *testing.T) {
	s := NewMemoryStore(10 * time.Minute)
	s.Put("a@x.com", testChallenge("a@x.com", "123456"))

	s.now = func() time.Time { return time.Now().Add(11 * time.Minute) }

	_, ok := s.Get("a@x.com")
	assert.False(t, ok)

	_, err := s.TakeIfMatches("a@x.com", "123456")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ZeroTTLNeverExpires(t *testing.T) {
	s := NewMemoryStore(0)
	s.Put("a@x.com", testChallenge("a@x.com", "123456"))

	s.now = func() time.Time { return time.Now().Add(24 * time.Hour) }

	_, ok := s.Get("a@x.com")
	assert.True(t, ok)
}

func TestMemoryStore_Sweep(t *testing.T) {
	s := NewMemoryStore(10 * time.Minute)
	s.Put("old@x.com", Challenge{Email: "old@x.com", Code: "111111", IssuedAt: time.Now().Add(-1 * time.Hour)})
	s.Put("fresh@x.com", testChallenge("fresh@x.com", "222222"))

	removed := s.Sweep()
	assert.Equal(t, 1, removed)

	_, ok := s.Get("old@x.com")
	assert.False(t, ok)
	_, ok = s.Get("fresh@x.com")
	assert.True(t, ok)
}

func TestMemoryStore_ConcurrentTakeConsumesOnce(t *testing.T) {
	s := NewMemoryStore(10 * time.Minute)
	s.Put("a@x.com", testChallenge("a@x.com", "123456"))

	const n = 50
	var wg sync.WaitGroup
	results := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.TakeIfMatches("a@x.com", "123456")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	notFound := 0
	for err := range results {
		switch err {
		case nil:
			succeeded++
		case ErrNotFound:
			notFound++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, n-1, notFound)
}
