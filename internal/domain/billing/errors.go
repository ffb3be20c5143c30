package billing

import "errors"

var (
	// ErrDuplicateLineItem is returned when a procedure already on the bill
	// is added a second time.
	ErrDuplicateLineItem = errors.New("procedure already added to bill")

	// ErrUnknownProcedure is returned when a line item names a procedure
	// that is not in the catalog snapshot for this editing session.
	ErrUnknownProcedure = errors.New("procedure not in catalog")

	// ErrIncompleteBill is returned by snapshot assembly when a required
	// patient or bill field is missing.
	ErrIncompleteBill = errors.New("bill is incomplete")

	// ErrBillNumberUnassigned is returned when a bill is finalized without
	// a bill number having been allocated.
	ErrBillNumberUnassigned = errors.New("bill number not assigned")

	// ErrAllocatorUnavailable is returned when the bill number allocator
	// cannot be reached.
	ErrAllocatorUnavailable = errors.New("bill number allocator unavailable")

	// ErrSubmitRejected is returned when storage rejects a finalized bill.
	ErrSubmitRejected = errors.New("bill submission rejected")
)
