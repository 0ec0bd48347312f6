package region

import (
	"fmt"

	"github.com/hupe1980/pagealloc/internal/conv"
	"github.com/hupe1980/pagealloc/pagesize"
)

// Mapper is the operating-system primitive used to obtain and release
// anonymous huge-page mappings.
type Mapper interface {
	Map(length uintptr) (addr uintptr, err error)
	Unmap(addr, length uintptr) error
}

// Budget reserves memory before it is mapped. A nil Budget means unlimited.
type Budget interface {
	AcquireMemory(bytes int64) error
	ReleaseMemory(bytes int64)
}

// Acquirer hands out regions aligned to the huge page size.
type Acquirer struct {
	mapper   Mapper
	budget   Budget
	pageSize pagesize.PowerOf2
}

// Option is a configuration option for Acquirer.
type Option func(*Acquirer)

// WithBudget sets the memory budget consulted before each mapping.
func WithBudget(b Budget) Option {
	return func(a *Acquirer) {
		a.budget = b
	}
}

// WithPageSize overrides the huge page size (pagesize.Huge by default).
// The mapper must produce mappings aligned to the same size.
func WithPageSize(p pagesize.PowerOf2) Option {
	return func(a *Acquirer) {
		a.pageSize = p
	}
}

// NewAcquirer creates an Acquirer on top of the given mapper.
func NewAcquirer(mapper Mapper, opts ...Option) *Acquirer {
	a := &Acquirer{
		mapper:   mapper,
		pageSize: pagesize.Huge,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// PageSize returns the alignment and granularity of every region.
func (a *Acquirer) PageSize() pagesize.PowerOf2 { return a.pageSize }

// Allocate maps size bytes aligned to the huge page size.
//
// size must be a positive multiple of the huge page size and align must not
// exceed it; otherwise Allocate panics. If the operating system or the budget
// refuses the request, the nil Region is returned together with an error
// wrapping ErrAllocationFailed.
func (a *Acquirer) Allocate(size, align uintptr) (Region, error) {
	a.checkRequest(size, align)

	amount := a.budgetAmount(size)
	if a.budget != nil {
		if err := a.budget.AcquireMemory(amount); err != nil {
			return Region{}, fmt.Errorf("%w: %d bytes: %w", ErrAllocationFailed, size, err)
		}
	}

	addr, err := a.mapper.Map(size)
	if err != nil {
		if a.budget != nil {
			a.budget.ReleaseMemory(amount)
		}
		return Region{}, fmt.Errorf("%w: %d bytes: %w", ErrAllocationFailed, size, err)
	}

	if addr == 0 || !a.pageSize.IsAligned(addr) {
		panic(fmt.Errorf("%w: mapping %#x is not aligned to %d", ErrInvariant, addr, a.pageSize.Value()))
	}

	return Region{addr: addr, length: size}, nil
}

// Deallocate unmaps a region previously returned by Allocate.
// Deallocating the nil region, a region twice, or a region that Allocate
// never returned panics.
func (a *Acquirer) Deallocate(r Region) {
	if r.IsNil() {
		panic(fmt.Errorf("%w: deallocate of nil region", ErrInvariant))
	}

	if err := a.mapper.Unmap(r.addr, r.length); err != nil {
		panic(fmt.Errorf("%w: unmap %s: %w", ErrInvariant, r, err))
	}

	if a.budget != nil {
		a.budget.ReleaseMemory(a.budgetAmount(r.length))
	}
}

func (a *Acquirer) checkRequest(size, align uintptr) {
	switch {
	case size == 0:
		panic(&ContractError{Size: size, Align: align, PageSize: a.pageSize.Value(), reason: "zero size"})
	case !a.pageSize.IsMultiple(size):
		panic(&ContractError{Size: size, Align: align, PageSize: a.pageSize.Value(), reason: "size is not a multiple of the huge page size"})
	case align > a.pageSize.Value():
		panic(&ContractError{Size: size, Align: align, PageSize: a.pageSize.Value(), reason: "alignment exceeds the huge page size"})
	}
}

func (a *Acquirer) budgetAmount(size uintptr) int64 {
	amount, err := conv.UintptrToInt64(size)
	if err != nil {
		panic(&ContractError{Size: size, PageSize: a.pageSize.Value(), reason: err.Error()})
	}
	return amount
}
