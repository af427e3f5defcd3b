// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fieldlog/fieldlog/gen/ent/predicate"
	"github.com/fieldlog/fieldlog/gen/ent/report"
	"github.com/fieldlog/fieldlog/gen/ent/reportentry"
	"github.com/google/uuid"
)

// ReportEntryUpdate is the builder for updating ReportEntry entities.
type ReportEntryUpdate struct {
	config
	hooks    []Hook
	mutation *ReportEntryMutation
}

// Where appends a list predicates to the ReportEntryUpdate builder.
func (_u *ReportEntryUpdate) Where(ps ...predicate.ReportEntry) *ReportEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *ReportEntryUpdate) SetReportID(v uuid.UUID) *ReportEntryUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *ReportEntryUpdate) SetNillableReportID(v *uuid.UUID) *ReportEntryUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetLocalEntryID sets the "local_entry_id" field.
func (_u *ReportEntryUpdate) SetLocalEntryID(v string) *ReportEntryUpdate {
	_u.mutation.SetLocalEntryID(v)
	return _u
}

// SetNillableLocalEntryID sets the "local_entry_id" field if the given value is not nil.
func (_u *ReportEntryUpdate) SetNillableLocalEntryID(v *string) *ReportEntryUpdate {
	if v != nil {
		_u.SetLocalEntryID(*v)
	}
	return _u
}

// SetSection sets the "section" field.
func (_u *ReportEntryUpdate) SetSection(v string) *ReportEntryUpdate {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *ReportEntryUpdate) SetNillableSection(v *string) *ReportEntryUpdate {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *ReportEntryUpdate) SetBody(v string) *ReportEntryUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ReportEntryUpdate) SetNillableBody(v *string) *ReportEntryUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetContractorID sets the "contractor_id" field.
func (_u *ReportEntryUpdate) SetContractorID(v uuid.UUID) *ReportEntryUpdate {
	_u.mutation.SetContractorID(v)
	return _u
}

// SetNillableContractorID sets the "contractor_id" field if the given value is not nil.
func (_u *ReportEntryUpdate) SetNillableContractorID(v *uuid.UUID) *ReportEntryUpdate {
	if v != nil {
		_u.SetContractorID(*v)
	}
	return _u
}

// ClearContractorID clears the value of the "contractor_id" field.
func (_u *ReportEntryUpdate) ClearContractorID() *ReportEntryUpdate {
	_u.mutation.ClearContractorID()
	return _u
}

// SetContractorName sets the "contractor_name" field.
func (_u *ReportEntryUpdate) SetContractorName(v string) *ReportEntryUpdate {
	_u.mutation.SetContractorName(v)
	return _u
}

// SetNillableContractorName sets the "contractor_name" field if the given value is not nil.
func (_u *ReportEntryUpdate) SetNillableContractorName(v *string) *ReportEntryUpdate {
	if v != nil {
		_u.SetContractorName(*v)
	}
	return _u
}

// ClearContractorName clears the value of the "contractor_name" field.
func (_u *ReportEntryUpdate) ClearContractorName() *ReportEntryUpdate {
	_u.mutation.ClearContractorName()
	return _u
}

// SetCapturedAt sets the "captured_at" field.
func (_u *ReportEntryUpdate) SetCapturedAt(v time.Time) *ReportEntryUpdate {
	_u.mutation.SetCapturedAt(v)
	return _u
}

// SetNillableCapturedAt sets the "captured_at" field if the given value is not nil.
func (_u *ReportEntryUpdate) SetNillableCapturedAt(v *time.Time) *ReportEntryUpdate {
	if v != nil {
		_u.SetCapturedAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReportEntryUpdate) SetCreatedAt(v time.Time) *ReportEntryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReportEntryUpdate) SetNillableCreatedAt(v *time.Time) *ReportEntryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportEntryUpdate) SetUpdatedAt(v time.Time) *ReportEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *ReportEntryUpdate) SetReport(v *Report) *ReportEntryUpdate {
	return _u.SetReportID(v.ID)
}

// Mutation returns the ReportEntryMutation object of the builder.
func (_u *ReportEntryUpdate) Mutation() *ReportEntryMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *ReportEntryUpdate) ClearReport() *ReportEntryUpdate {
	_u.mutation.ClearReport()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reportentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportEntryUpdate) check() error {
	if v, ok := _u.mutation.LocalEntryID(); ok {
		if err := reportentry.LocalEntryIDValidator(v); err != nil {
			return &ValidationError{Name: "local_entry_id", err: fmt.Errorf(`ent: validator failed for field "ReportEntry.local_entry_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Section(); ok {
		if err := reportentry.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "ReportEntry.section": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReportEntry.report"`)
	}
	return nil
}

func (_u *ReportEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportentry.Table, reportentry.Columns, sqlgraph.NewFieldSpec(reportentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LocalEntryID(); ok {
		_spec.SetField(reportentry.FieldLocalEntryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(reportentry.FieldSection, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(reportentry.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContractorID(); ok {
		_spec.SetField(reportentry.FieldContractorID, field.TypeUUID, value)
	}
	if _u.mutation.ContractorIDCleared() {
		_spec.ClearField(reportentry.FieldContractorID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ContractorName(); ok {
		_spec.SetField(reportentry.FieldContractorName, field.TypeString, value)
	}
	if _u.mutation.ContractorNameCleared() {
		_spec.ClearField(reportentry.FieldContractorName, field.TypeString)
	}
	if value, ok := _u.mutation.CapturedAt(); ok {
		_spec.SetField(reportentry.FieldCapturedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reportentry.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reportentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportentry.ReportTable,
			Columns: []string{reportentry.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportentry.ReportTable,
			Columns: []string{reportentry.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportEntryUpdateOne is the builder for updating a single ReportEntry entity.
type ReportEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportEntryMutation
}

// SetReportID sets the "report_id" field.
func (_u *ReportEntryUpdateOne) SetReportID(v uuid.UUID) *ReportEntryUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *ReportEntryUpdateOne) SetNillableReportID(v *uuid.UUID) *ReportEntryUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetLocalEntryID sets the "local_entry_id" field.
func (_u *ReportEntryUpdateOne) SetLocalEntryID(v string) *ReportEntryUpdateOne {
	_u.mutation.SetLocalEntryID(v)
	return _u
}

// SetNillableLocalEntryID sets the "local_entry_id" field if the given value is not nil.
func (_u *ReportEntryUpdateOne) SetNillableLocalEntryID(v *string) *ReportEntryUpdateOne {
	if v != nil {
		_u.SetLocalEntryID(*v)
	}
	return _u
}

// SetSection sets the "section" field.
func (_u *ReportEntryUpdateOne) SetSection(v string) *ReportEntryUpdateOne {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *ReportEntryUpdateOne) SetNillableSection(v *string) *ReportEntryUpdateOne {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *ReportEntryUpdateOne) SetBody(v string) *ReportEntryUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ReportEntryUpdateOne) SetNillableBody(v *string) *ReportEntryUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetContractorID sets the "contractor_id" field.
func (_u *ReportEntryUpdateOne) SetContractorID(v uuid.UUID) *ReportEntryUpdateOne {
	_u.mutation.SetContractorID(v)
	return _u
}

// SetNillableContractorID sets the "contractor_id" field if the given value is not nil.
func (_u *ReportEntryUpdateOne) SetNillableContractorID(v *uuid.UUID) *ReportEntryUpdateOne {
	if v != nil {
		_u.SetContractorID(*v)
	}
	return _u
}

// ClearContractorID clears the value of the "contractor_id" field.
func (_u *ReportEntryUpdateOne) ClearContractorID() *ReportEntryUpdateOne {
	_u.mutation.ClearContractorID()
	return _u
}

// SetContractorName sets the "contractor_name" field.
func (_u *ReportEntryUpdateOne) SetContractorName(v string) *ReportEntryUpdateOne {
	_u.mutation.SetContractorName(v)
	return _u
}

// SetNillableContractorName sets the "contractor_name" field if the given value is not nil.
func (_u *ReportEntryUpdateOne) SetNillableContractorName(v *string) *ReportEntryUpdateOne {
	if v != nil {
		_u.SetContractorName(*v)
	}
	return _u
}

// ClearContractorName clears the value of the "contractor_name" field.
func (_u *ReportEntryUpdateOne) ClearContractorName() *ReportEntryUpdateOne {
	_u.mutation.ClearContractorName()
	return _u
}

// SetCapturedAt sets the "captured_at" field.
func (_u *ReportEntryUpdateOne) SetCapturedAt(v time.Time) *ReportEntryUpdateOne {
	_u.mutation.SetCapturedAt(v)
	return _u
}

// SetNillableCapturedAt sets the "captured_at" field if the given value is not nil.
func (_u *ReportEntryUpdateOne) SetNillableCapturedAt(v *time.Time) *ReportEntryUpdateOne {
	if v != nil {
		_u.SetCapturedAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReportEntryUpdateOne) SetCreatedAt(v time.Time) *ReportEntryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReportEntryUpdateOne) SetNillableCreatedAt(v *time.Time) *ReportEntryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportEntryUpdateOne) SetUpdatedAt(v time.Time) *ReportEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *ReportEntryUpdateOne) SetReport(v *Report) *ReportEntryUpdateOne {
	return _u.SetReportID(v.ID)
}

// Mutation returns the ReportEntryMutation object of the builder.
func (_u *ReportEntryUpdateOne) Mutation() *ReportEntryMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *ReportEntryUpdateOne) ClearReport() *ReportEntryUpdateOne {
	_u.mutation.ClearReport()
	return _u
}

// Where appends a list predicates to the ReportEntryUpdate builder.
func (_u *ReportEntryUpdateOne) Where(ps ...predicate.ReportEntry) *ReportEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportEntryUpdateOne) Select(field string, fields ...string) *ReportEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReportEntry entity.
func (_u *ReportEntryUpdateOne) Save(ctx context.Context) (*ReportEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportEntryUpdateOne) SaveX(ctx context.Context) *ReportEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reportentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportEntryUpdateOne) check() error {
	if v, ok := _u.mutation.LocalEntryID(); ok {
		if err := reportentry.LocalEntryIDValidator(v); err != nil {
			return &ValidationError{Name: "local_entry_id", err: fmt.Errorf(`ent: validator failed for field "ReportEntry.local_entry_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Section(); ok {
		if err := reportentry.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "ReportEntry.section": %w`, err)}
		}
	}
	if _u.mutation.ReportCleared() && len(_u.mutation.ReportIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReportEntry.report"`)
	}
	return nil
}

func (_u *ReportEntryUpdateOne) sqlSave(ctx context.Context) (_node *ReportEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportentry.Table, reportentry.Columns, sqlgraph.NewFieldSpec(reportentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReportEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reportentry.FieldID)
		for _, f := range fields {
			if !reportentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reportentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LocalEntryID(); ok {
		_spec.SetField(reportentry.FieldLocalEntryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(reportentry.FieldSection, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(reportentry.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContractorID(); ok {
		_spec.SetField(reportentry.FieldContractorID, field.TypeUUID, value)
	}
	if _u.mutation.ContractorIDCleared() {
		_spec.ClearField(reportentry.FieldContractorID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ContractorName(); ok {
		_spec.SetField(reportentry.FieldContractorName, field.TypeString, value)
	}
	if _u.mutation.ContractorNameCleared() {
		_spec.ClearField(reportentry.FieldContractorName, field.TypeString)
	}
	if value, ok := _u.mutation.CapturedAt(); ok {
		_spec.SetField(reportentry.FieldCapturedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reportentry.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reportentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReportCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportentry.ReportTable,
			Columns: []string{reportentry.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportentry.ReportTable,
			Columns: []string{reportentry.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ReportEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
