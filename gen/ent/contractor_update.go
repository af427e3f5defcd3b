// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fieldlog/fieldlog/gen/ent/contractor"
	"github.com/fieldlog/fieldlog/gen/ent/predicate"
	"github.com/fieldlog/fieldlog/gen/ent/project"
	"github.com/google/uuid"
)

// ContractorUpdate is the builder for updating Contractor entities.
type ContractorUpdate struct {
	config
	hooks    []Hook
	mutation *ContractorMutation
}

// Where appends a list predicates to the ContractorUpdate builder.
func (_u *ContractorUpdate) Where(ps ...predicate.Contractor) *ContractorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ContractorUpdate) SetProjectID(v uuid.UUID) *ContractorUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ContractorUpdate) SetNillableProjectID(v *uuid.UUID) *ContractorUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ContractorUpdate) SetName(v string) *ContractorUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ContractorUpdate) SetNillableName(v *string) *ContractorUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAbbreviation sets the "abbreviation" field.
func (_u *ContractorUpdate) SetAbbreviation(v string) *ContractorUpdate {
	_u.mutation.SetAbbreviation(v)
	return _u
}

// SetNillableAbbreviation sets the "abbreviation" field if the given value is not nil.
func (_u *ContractorUpdate) SetNillableAbbreviation(v *string) *ContractorUpdate {
	if v != nil {
		_u.SetAbbreviation(*v)
	}
	return _u
}

// ClearAbbreviation clears the value of the "abbreviation" field.
func (_u *ContractorUpdate) ClearAbbreviation() *ContractorUpdate {
	_u.mutation.ClearAbbreviation()
	return _u
}

// SetType sets the "type" field.
func (_u *ContractorUpdate) SetType(v string) *ContractorUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ContractorUpdate) SetNillableType(v *string) *ContractorUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTrade sets the "trade" field.
func (_u *ContractorUpdate) SetTrade(v string) *ContractorUpdate {
	_u.mutation.SetTrade(v)
	return _u
}

// SetNillableTrade sets the "trade" field if the given value is not nil.
func (_u *ContractorUpdate) SetNillableTrade(v *string) *ContractorUpdate {
	if v != nil {
		_u.SetTrade(*v)
	}
	return _u
}

// ClearTrade clears the value of the "trade" field.
func (_u *ContractorUpdate) ClearTrade() *ContractorUpdate {
	_u.mutation.ClearTrade()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ContractorUpdate) SetStatus(v string) *ContractorUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ContractorUpdate) SetNillableStatus(v *string) *ContractorUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *ContractorUpdate) SetSortOrder(v int) *ContractorUpdate {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *ContractorUpdate) SetNillableSortOrder(v *int) *ContractorUpdate {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *ContractorUpdate) AddSortOrder(v int) *ContractorUpdate {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ContractorUpdate) SetProject(v *Project) *ContractorUpdate {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the ContractorMutation object of the builder.
func (_u *ContractorUpdate) Mutation() *ContractorMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ContractorUpdate) ClearProject() *ContractorUpdate {
	_u.mutation.ClearProject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContractorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContractorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractorUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := contractor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Contractor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := contractor.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Contractor.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := contractor.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Contractor.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Contractor.project"`)
	}
	return nil
}

func (_u *ContractorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contractor.Table, contractor.Columns, sqlgraph.NewFieldSpec(contractor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(contractor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Abbreviation(); ok {
		_spec.SetField(contractor.FieldAbbreviation, field.TypeString, value)
	}
	if _u.mutation.AbbreviationCleared() {
		_spec.ClearField(contractor.FieldAbbreviation, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(contractor.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trade(); ok {
		_spec.SetField(contractor.FieldTrade, field.TypeString, value)
	}
	if _u.mutation.TradeCleared() {
		_spec.ClearField(contractor.FieldTrade, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(contractor.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(contractor.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(contractor.FieldSortOrder, field.TypeInt, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contractor.ProjectTable,
			Columns: []string{contractor.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contractor.ProjectTable,
			Columns: []string{contractor.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contractor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContractorUpdateOne is the builder for updating a single Contractor entity.
type ContractorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContractorMutation
}

// SetProjectID sets the "project_id" field.
func (_u *ContractorUpdateOne) SetProjectID(v uuid.UUID) *ContractorUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ContractorUpdateOne) SetNillableProjectID(v *uuid.UUID) *ContractorUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ContractorUpdateOne) SetName(v string) *ContractorUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ContractorUpdateOne) SetNillableName(v *string) *ContractorUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAbbreviation sets the "abbreviation" field.
func (_u *ContractorUpdateOne) SetAbbreviation(v string) *ContractorUpdateOne {
	_u.mutation.SetAbbreviation(v)
	return _u
}

// SetNillableAbbreviation sets the "abbreviation" field if the given value is not nil.
func (_u *ContractorUpdateOne) SetNillableAbbreviation(v *string) *ContractorUpdateOne {
	if v != nil {
		_u.SetAbbreviation(*v)
	}
	return _u
}

// ClearAbbreviation clears the value of the "abbreviation" field.
func (_u *ContractorUpdateOne) ClearAbbreviation() *ContractorUpdateOne {
	_u.mutation.ClearAbbreviation()
	return _u
}

// SetType sets the "type" field.
func (_u *ContractorUpdateOne) SetType(v string) *ContractorUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ContractorUpdateOne) SetNillableType(v *string) *ContractorUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTrade sets the "trade" field.
func (_u *ContractorUpdateOne) SetTrade(v string) *ContractorUpdateOne {
	_u.mutation.SetTrade(v)
	return _u
}

// SetNillableTrade sets the "trade" field if the given value is not nil.
func (_u *ContractorUpdateOne) SetNillableTrade(v *string) *ContractorUpdateOne {
	if v != nil {
		_u.SetTrade(*v)
	}
	return _u
}

// ClearTrade clears the value of the "trade" field.
func (_u *ContractorUpdateOne) ClearTrade() *ContractorUpdateOne {
	_u.mutation.ClearTrade()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ContractorUpdateOne) SetStatus(v string) *ContractorUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ContractorUpdateOne) SetNillableStatus(v *string) *ContractorUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *ContractorUpdateOne) SetSortOrder(v int) *ContractorUpdateOne {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *ContractorUpdateOne) SetNillableSortOrder(v *int) *ContractorUpdateOne {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *ContractorUpdateOne) AddSortOrder(v int) *ContractorUpdateOne {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ContractorUpdateOne) SetProject(v *Project) *ContractorUpdateOne {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the ContractorMutation object of the builder.
func (_u *ContractorUpdateOne) Mutation() *ContractorMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ContractorUpdateOne) ClearProject() *ContractorUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// Where appends a list predicates to the ContractorUpdate builder.
func (_u *ContractorUpdateOne) Where(ps ...predicate.Contractor) *ContractorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContractorUpdateOne) Select(field string, fields ...string) *ContractorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contractor entity.
func (_u *ContractorUpdateOne) Save(ctx context.Context) (*Contractor, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractorUpdateOne) SaveX(ctx context.Context) *Contractor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContractorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractorUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := contractor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Contractor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := contractor.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Contractor.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := contractor.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Contractor.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Contractor.project"`)
	}
	return nil
}

func (_u *ContractorUpdateOne) sqlSave(ctx context.Context) (_node *Contractor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contractor.Table, contractor.Columns, sqlgraph.NewFieldSpec(contractor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contractor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contractor.FieldID)
		for _, f := range fields {
			if !contractor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contractor.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(contractor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Abbreviation(); ok {
		_spec.SetField(contractor.FieldAbbreviation, field.TypeString, value)
	}
	if _u.mutation.AbbreviationCleared() {
		_spec.ClearField(contractor.FieldAbbreviation, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(contractor.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trade(); ok {
		_spec.SetField(contractor.FieldTrade, field.TypeString, value)
	}
	if _u.mutation.TradeCleared() {
		_spec.ClearField(contractor.FieldTrade, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(contractor.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(contractor.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(contractor.FieldSortOrder, field.TypeInt, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contractor.ProjectTable,
			Columns: []string{contractor.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contractor.ProjectTable,
			Columns: []string{contractor.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Contractor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contractor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
