package region

import (
	"errors"
	"fmt"
)

var (
	// ErrContractViolation marks a request that breaks the Allocate/Deallocate preconditions.
	ErrContractViolation = errors.New("region: contract violation")
	// ErrInvariant marks a broken internal invariant (misaligned mapping, failed unmap).
	ErrInvariant = errors.New("region: invariant violated")
	// ErrAllocationFailed is returned when the operating system or the budget refuses a region.
	ErrAllocationFailed = errors.New("region: allocation failed")
)

// ContractError describes a rejected Allocate request.
type ContractError struct {
	Size     uintptr
	Align    uintptr
	PageSize uintptr
	reason   string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("region: %s (size=%d, align=%d, huge page=%d)", e.reason, e.Size, e.Align, e.PageSize)
}

// Unwrap returns ErrContractViolation.
func (e *ContractError) Unwrap() error { return ErrContractViolation }
