// Package memory implements every repository on plain maps guarded by a
// single mutex. It backs the server when no database DSN is configured and
// serves as the store in service tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/dbx"
	"github.com/dmitrijs2005/pegasus/internal/server/models"
	"github.com/dmitrijs2005/pegasus/internal/timex"
)

type txKey struct{}

// Store holds all entities. Operations outside a transaction lock the store
// for their own duration; WithTx holds the lock for the whole callback and
// restores a snapshot when the callback fails.
type Store struct {
	mu    sync.Mutex
	clock timex.Clock
	data  *state
}

type state struct {
	users        map[string]models.User
	emails       map[string]string
	refresh      map[string]models.RefreshToken
	verification map[string]models.VerificationToken
	pins         map[string]models.Pin
	attempts     []models.LoginAttempt
	outbox       map[int64]models.OutboxMessage
	nextOutboxID int64
	accounts     map[string]models.BankAccount
}

func newState() *state {
	return &state{
		users:        make(map[string]models.User),
		emails:       make(map[string]string),
		refresh:      make(map[string]models.RefreshToken),
		verification: make(map[string]models.VerificationToken),
		pins:         make(map[string]models.Pin),
		outbox:       make(map[int64]models.OutboxMessage),
		accounts:     make(map[string]models.BankAccount),
	}
}

func copyMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (st *state) clone() *state {
	return &state{
		users:        copyMap(st.users),
		emails:       copyMap(st.emails),
		refresh:      copyMap(st.refresh),
		verification: copyMap(st.verification),
		pins:         copyMap(st.pins),
		attempts:     append([]models.LoginAttempt(nil), st.attempts...),
		outbox:       copyMap(st.outbox),
		nextOutboxID: st.nextOutboxID,
		accounts:     copyMap(st.accounts),
	}
}

// NewStore returns an empty store. The clock stamps created_at columns.
func NewStore(clock timex.Clock) *Store {
	if clock == nil {
		clock = timex.SystemClock{}
	}
	return &Store{clock: clock, data: newState()}
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

func (s *Store) lock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) now() time.Time {
	return s.clock.Now()
}

// Conn returns nil: memory repositories ignore the handle they are bound to.
func (s *Store) Conn() dbx.DBTX {
	return nil
}

// WithTx runs fn atomically. A nested call joins the outer transaction.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) (err error) {
	if s.inTx(ctx) {
		return fn(ctx, nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	defer func() {
		if p := recover(); p != nil {
			s.data = snapshot
			panic(p)
		}
		if err != nil {
			s.data = snapshot
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, s), nil)
}
