// Package idempotency provides a Redis-backed at-most-once guard, used to
// keep event redeliveries and repeated broadcast requests from running the
// same operation twice.
package idempotency

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrAlreadyInProgress = errors.New("operation already in progress")
	ErrAlreadyCompleted  = errors.New("operation already completed")
	ErrAlreadyFailed     = errors.New("operation already failed")
	ErrInvalidState      = errors.New("invalid state")
)

// State is the recorded outcome for a key.
type State string

const (
	StateNone       State = "none"
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
	StateFailed     State = "failed"
	StateError      State = "error"
)

func (s State) String() string {
	return string(s)
}

// Idempotency coordinates at-most-once execution keyed by an operation id.
type Idempotency interface {
	Acquire(ctx context.Context, key string, lockDuration time.Duration) (State, error)
	MarkCompleted(ctx context.Context, key string, ttl time.Duration) error
	MarkFailed(ctx context.Context, key string, ttl time.Duration) error
	Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...Option) error
}

// StateTracker implements Idempotency on a Redis client.
type StateTracker struct {
	client *redis.Client
	prefix string
}

func New(client *redis.Client) *StateTracker {
	return &StateTracker{client: client, prefix: "idempotency:"}
}

const (
	defaultLockDuration = time.Minute
	defaultStateTTL     = time.Minute
)

// Option customizes Exec behavior.
type Option func(*execOptions)

type execOptions struct {
	lockDuration time.Duration
	stateTTL     time.Duration
}

// WithLockDuration overrides how long the in-progress lock is held.
func WithLockDuration(d time.Duration) Option {
	return func(o *execOptions) { o.lockDuration = d }
}

// WithStateTTL overrides how long the final outcome is retained.
func WithStateTTL(d time.Duration) Option {
	return func(o *execOptions) { o.stateTTL = d }
}

func parseState(raw string) (State, error) {
	switch State(raw) {
	case StateInProgress, StateCompleted, StateFailed:
		return State(raw), nil
	default:
		return StateError, ErrInvalidState
	}
}

// Acquire claims the key for the caller. StateNone means the claim succeeded
// and the operation may proceed; any other state reports what a previous
// holder did with it.
func (s *StateTracker) Acquire(ctx context.Context, key string, lockDuration time.Duration) (State, error) {
	storageKey := s.prefix + key

	claimed, err := s.client.SetNX(ctx, storageKey, StateInProgress.String(), lockDuration).Result()
	if err != nil {
		return StateError, err
	}
	if claimed {
		return StateNone, nil
	}

	raw, err := s.client.Get(ctx, storageKey).Result()
	if errors.Is(err, redis.Nil) {
		// The holder's entry expired between SetNX and Get. One retry.
		claimed, err = s.client.SetNX(ctx, storageKey, StateInProgress.String(), lockDuration).Result()
		if err != nil {
			return StateError, err
		}
		if claimed {
			return StateNone, nil
		}
		return StateError, ErrInvalidState
	}
	if err != nil {
		return StateError, err
	}

	return parseState(raw)
}

// MarkCompleted records success for the key.
func (s *StateTracker) MarkCompleted(ctx context.Context, key string, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+key, StateCompleted.String(), ttl).Err()
}

// MarkFailed records failure for the key.
func (s *StateTracker) MarkFailed(ctx context.Context, key string, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+key, StateFailed.String(), ttl).Err()
}

// Exec runs fn at most once per key. A second call for the same key returns
// ErrAlreadyCompleted, ErrAlreadyFailed, or ErrAlreadyInProgress depending on
// what happened to the first.
func (s *StateTracker) Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...Option) error {
	o := &execOptions{lockDuration: defaultLockDuration, stateTTL: defaultStateTTL}
	for _, opt := range opts {
		opt(o)
	}
	if o.lockDuration <= 0 {
		o.lockDuration = defaultLockDuration
	}
	if o.stateTTL <= 0 {
		o.stateTTL = defaultStateTTL
	}

	switch state, err := s.Acquire(ctx, key, o.lockDuration); {
	case err != nil:
		return err
	case state == StateInProgress:
		return ErrAlreadyInProgress
	case state == StateCompleted:
		return ErrAlreadyCompleted
	case state == StateFailed:
		return ErrAlreadyFailed
	}

	if err := fn(ctx); err != nil {
		if markErr := s.MarkFailed(ctx, key, o.stateTTL); markErr != nil {
			return errors.Join(err, markErr)
		}
		return err
	}

	return s.MarkCompleted(ctx, key, o.stateTTL)
}
