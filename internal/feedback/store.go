// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback

import "context"

// Repository is the record store contract.
//
// Implementations must support concurrent Append and Query calls.
type Repository interface {
	// Append stores record, assigning its ID and timestamps in place.
	Append(ctx context.Context, record *Feedback) error

	// Query returns the records matching c in c's order, windowed by c's
	// limit and offset, together with the number of matching records
	// regardless of the window.
	Query(ctx context.Context, c Criteria) ([]*Feedback, int, error)
}
