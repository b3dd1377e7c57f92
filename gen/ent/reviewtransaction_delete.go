// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/pix-tracker/gen/ent/predicate"
	"github.com/joseph-ayodele/pix-tracker/gen/ent/reviewtransaction"
)

// ReviewTransactionDelete is the builder for deleting a ReviewTransaction entity.
type ReviewTransactionDelete struct {
	config
	hooks    []Hook
	mutation *ReviewTransactionMutation
}

// Where appends a list predicates to the ReviewTransactionDelete builder.
func (_d *ReviewTransactionDelete) Where(ps ...predicate.ReviewTransaction) *ReviewTransactionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ReviewTransactionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReviewTransactionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ReviewTransactionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(reviewtransaction.Table, sqlgraph.NewFieldSpec(reviewtransaction.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ReviewTransactionDeleteOne is the builder for deleting a single ReviewTransaction entity.
type ReviewTransactionDeleteOne struct {
	_d *ReviewTransactionDelete
}

// Where appends a list predicates to the ReviewTransactionDelete builder.
func (_d *ReviewTransactionDeleteOne) Where(ps ...predicate.ReviewTransaction) *ReviewTransactionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ReviewTransactionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{reviewtransaction.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReviewTransactionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
