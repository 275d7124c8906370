// Package lease provides short-lived named locks shared by every process using the same Redis
package lease

//go:generate mockgen -destination=mock/mock_repository.go -package=leasemock github.com/KirkDiggler/rpg-progression/internal/repositories/lease Repository

import (
	"context"
	"time"
)

// Repository hands out exclusive, expiring leases
type Repository interface {
	// Acquire takes the named lease for ttl
	// Returns errors.Aborted if someone else holds it
	Acquire(ctx context.Context, input AcquireInput) (*AcquireOutput, error)

	// Release gives the lease back
	// Returns errors.NotFound if it already expired and errors.Aborted if it was taken over
	Release(ctx context.Context, input ReleaseInput) (*ReleaseOutput, error)
}

// AcquireInput defines the input for taking a lease
type AcquireInput struct {
	Name string
	// TTL defaults to DefaultTTL
	TTL time.Duration
}

// AcquireOutput contains the token that proves ownership of the lease
type AcquireOutput struct {
	Token string
}

// ReleaseInput defines the input for giving a lease back
type ReleaseInput struct {
	Name  string
	Token string
}

// ReleaseOutput defines the output of a release
type ReleaseOutput struct{}
