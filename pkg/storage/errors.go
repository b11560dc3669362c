package storage

import "codescanner/pkg/serrors"

// Transaction misuse. Both are programming errors and carry the INTERNAL kind.
var (
	// ErrAlreadyInTx is returned by Begin and Migrate on a transaction handle.
	ErrAlreadyInTx = serrors.With(serrors.ErrInternal, "journal storage is already in a transaction")
	// ErrNotInTx is returned by Commit and Rollback outside a transaction.
	ErrNotInTx = serrors.With(serrors.ErrInternal, "journal storage is not in a transaction")
)
