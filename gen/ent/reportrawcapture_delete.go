// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fieldlog/fieldlog/gen/ent/predicate"
	"github.com/fieldlog/fieldlog/gen/ent/reportrawcapture"
)

// ReportRawCaptureDelete is the builder for deleting a ReportRawCapture entity.
type ReportRawCaptureDelete struct {
	config
	hooks    []Hook
	mutation *ReportRawCaptureMutation
}

// Where appends a list predicates to the ReportRawCaptureDelete builder.
func (_d *ReportRawCaptureDelete) Where(ps ...predicate.ReportRawCapture) *ReportRawCaptureDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ReportRawCaptureDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReportRawCaptureDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ReportRawCaptureDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(reportrawcapture.Table, sqlgraph.NewFieldSpec(reportrawcapture.FieldID, field.TypeUUID))
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

// ReportRawCaptureDeleteOne is the builder for deleting a single ReportRawCapture entity.
type ReportRawCaptureDeleteOne struct {
	_d *ReportRawCaptureDelete
}

// Where appends a list predicates to the ReportRawCaptureDelete builder.
func (_d *ReportRawCaptureDeleteOne) Where(ps ...predicate.ReportRawCapture) *ReportRawCaptureDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ReportRawCaptureDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{reportrawcapture.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReportRawCaptureDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
