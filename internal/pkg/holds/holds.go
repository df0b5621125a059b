// Package holds keeps short-lived, advisory claims on stalls while an
// exhibitor has a booking form open, so two people rarely finish the form
// for the same stall. The authoritative double-booking guard is the
// transactional claim in the booking repository; losing a hold only means
// a worse user experience, never a corrupt booking.
package holds

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrHeld = errors.New("stall already held")

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore wraps a redis client. A nil client disables holds entirely:
// Acquire and Release become no-ops and callers degrade gracefully, the
// same way the service runs without a broker.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Store{rdb: rdb, ttl: ttl}
}

func key(stallID int64) string {
	return fmt.Sprintf("hold:stall:%d", stallID)
}

// Acquire claims every stall in the set for userID. The claim is all or
// nothing: on the first stall already held by someone else, the stalls
// acquired so far are released and ErrHeld is returned. Re-acquiring a
// stall the same user already holds refreshes its TTL.
func (s *Store) Acquire(ctx context.Context, userID int64, stallIDs []int64) error {
	if s.rdb == nil {
		return nil
	}

	acquired := make([]int64, 0, len(stallIDs))
	for _, sid := range stallIDs {
		ok, err := s.rdb.SetNX(ctx, key(sid), userID, s.ttl).Result()
		if err != nil {
			s.release(ctx, userID, acquired)
			return err
		}
		if !ok {
			holder, err := s.rdb.Get(ctx, key(sid)).Int64()
			if err == nil && holder == userID {
				s.rdb.Expire(ctx, key(sid), s.ttl)
				acquired = append(acquired, sid)
				continue
			}
			s.release(ctx, userID, acquired)
			return ErrHeld
		}
		acquired = append(acquired, sid)
	}
	return nil
}

// Release drops the user's holds on the given stalls. Holds owned by
// other users are left untouched.
func (s *Store) Release(ctx context.Context, userID int64, stallIDs []int64) {
	if s.rdb == nil {
		return
	}
	s.release(ctx, userID, stallIDs)
}

func (s *Store) release(ctx context.Context, userID int64, stallIDs []int64) {
	for _, sid := range stallIDs {
		holder, err := s.rdb.Get(ctx, key(sid)).Int64()
		if err != nil || holder != userID {
			continue
		}
		s.rdb.Del(ctx, key(sid))
	}
}
