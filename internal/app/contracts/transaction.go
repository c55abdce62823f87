package contracts

import "context"

// Transactor runs fn inside a database transaction. Repositories called
// with the context passed to fn take part in the transaction.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
