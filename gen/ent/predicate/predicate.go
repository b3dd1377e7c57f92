// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// PixTransaction is the predicate function for pixtransaction builders.
type PixTransaction func(*sql.Selector)

// ReviewTransaction is the predicate function for reviewtransaction builders.
type ReviewTransaction func(*sql.Selector)
