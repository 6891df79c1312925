package domain

import "errors"

var (
	ErrDuplicateRequest = errors.New("loan already requested by this borrower")
	ErrRequestNotFound  = errors.New("request not found")
	ErrPaymentNotFound  = errors.New("payment not found")

	ErrRequestClosed      = errors.New("request already rejected or completed")
	ErrRequestNotApproved = errors.New("request is not approved")

	// ErrConcurrentUpdate is returned by a save that lost the race against
	// another writer of the same document.
	ErrConcurrentUpdate = errors.New("document was modified concurrently")
	ErrNameTaken        = errors.New("name already taken")
)
