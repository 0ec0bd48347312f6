package pagealloc

import (
	"github.com/hupe1980/pagealloc/internal/resource"
	"github.com/hupe1980/pagealloc/region"
	"github.com/hupe1980/pagealloc/threadlocal"
)

var (
	// ErrAllocationFailed is returned by Allocate when no region could be obtained.
	// It is the only recoverable failure of the platform layer.
	ErrAllocationFailed = region.ErrAllocationFailed

	// ErrMemoryLimitExceeded is wrapped by Allocate errors caused by WithMemoryLimit.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded

	// ErrContractViolation is wrapped by panics for requests that break Allocate's preconditions.
	ErrContractViolation = region.ErrContractViolation

	// ErrInvariant is wrapped by panics for misaligned mappings and failed unmaps.
	ErrInvariant = region.ErrInvariant

	// ErrKeyCreate is wrapped by panics when a thread-local key cannot be created.
	ErrKeyCreate = threadlocal.ErrKeyCreate

	// ErrSet is wrapped by panics when a thread-local value cannot be stored.
	ErrSet = threadlocal.ErrSet
)

// ContractError describes an Allocate request that broke the preconditions.
type ContractError = region.ContractError
