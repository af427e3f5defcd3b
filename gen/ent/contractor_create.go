// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fieldlog/fieldlog/gen/ent/contractor"
	"github.com/fieldlog/fieldlog/gen/ent/project"
	"github.com/google/uuid"
)

// ContractorCreate is the builder for creating a Contractor entity.
type ContractorCreate struct {
	config
	mutation *ContractorMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *ContractorCreate) SetProjectID(v uuid.UUID) *ContractorCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ContractorCreate) SetName(v string) *ContractorCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAbbreviation sets the "abbreviation" field.
func (_c *ContractorCreate) SetAbbreviation(v string) *ContractorCreate {
	_c.mutation.SetAbbreviation(v)
	return _c
}

// SetNillableAbbreviation sets the "abbreviation" field if the given value is not nil.
func (_c *ContractorCreate) SetNillableAbbreviation(v *string) *ContractorCreate {
	if v != nil {
		_c.SetAbbreviation(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *ContractorCreate) SetType(v string) *ContractorCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_c *ContractorCreate) SetNillableType(v *string) *ContractorCreate {
	if v != nil {
		_c.SetType(*v)
	}
	return _c
}

// SetTrade sets the "trade" field.
func (_c *ContractorCreate) SetTrade(v string) *ContractorCreate {
	_c.mutation.SetTrade(v)
	return _c
}

// SetNillableTrade sets the "trade" field if the given value is not nil.
func (_c *ContractorCreate) SetNillableTrade(v *string) *ContractorCreate {
	if v != nil {
		_c.SetTrade(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ContractorCreate) SetStatus(v string) *ContractorCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ContractorCreate) SetNillableStatus(v *string) *ContractorCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSortOrder sets the "sort_order" field.
func (_c *ContractorCreate) SetSortOrder(v int) *ContractorCreate {
	_c.mutation.SetSortOrder(v)
	return _c
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_c *ContractorCreate) SetNillableSortOrder(v *int) *ContractorCreate {
	if v != nil {
		_c.SetSortOrder(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContractorCreate) SetID(v uuid.UUID) *ContractorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ContractorCreate) SetNillableID(v *uuid.UUID) *ContractorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *ContractorCreate) SetProject(v *Project) *ContractorCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the ContractorMutation object of the builder.
func (_c *ContractorCreate) Mutation() *ContractorMutation {
	return _c.mutation
}

// Save creates the Contractor in the database.
func (_c *ContractorCreate) Save(ctx context.Context) (*Contractor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContractorCreate) SaveX(ctx context.Context) *Contractor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContractorCreate) defaults() {
	if _, ok := _c.mutation.GetType(); !ok {
		v := contractor.DefaultType
		_c.mutation.SetType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := contractor.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		v := contractor.DefaultSortOrder
		_c.mutation.SetSortOrder(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := contractor.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContractorCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Contractor.project_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Contractor.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := contractor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Contractor.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Contractor.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := contractor.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Contractor.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Contractor.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := contractor.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Contractor.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		return &ValidationError{Name: "sort_order", err: errors.New(`ent: missing required field "Contractor.sort_order"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Contractor.project"`)}
	}
	return nil
}

func (_c *ContractorCreate) sqlSave(ctx context.Context) (*Contractor, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContractorCreate) createSpec() (*Contractor, *sqlgraph.CreateSpec) {
	var (
		_node = &Contractor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contractor.Table, sqlgraph.NewFieldSpec(contractor.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(contractor.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Abbreviation(); ok {
		_spec.SetField(contractor.FieldAbbreviation, field.TypeString, value)
		_node.Abbreviation = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(contractor.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Trade(); ok {
		_spec.SetField(contractor.FieldTrade, field.TypeString, value)
		_node.Trade = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(contractor.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SortOrder(); ok {
		_spec.SetField(contractor.FieldSortOrder, field.TypeInt, value)
		_node.SortOrder = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Contractor.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContractorUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *ContractorCreate) OnConflict(opts ...sql.ConflictOption) *ContractorUpsertOne {
	_c.conflict = opts
	return &ContractorUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Contractor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContractorCreate) OnConflictColumns(columns ...string) *ContractorUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContractorUpsertOne{
		create: _c,
	}
}

type (
	// ContractorUpsertOne is the builder for "upsert"-ing
	//  one Contractor node.
	ContractorUpsertOne struct {
		create *ContractorCreate
	}

	// ContractorUpsert is the "OnConflict" setter.
	ContractorUpsert struct {
		*sql.UpdateSet
	}
)

// SetProjectID sets the "project_id" field.
func (u *ContractorUpsert) SetProjectID(v uuid.UUID) *ContractorUpsert {
	u.Set(contractor.FieldProjectID, v)
	return u
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ContractorUpsert) UpdateProjectID() *ContractorUpsert {
	u.SetExcluded(contractor.FieldProjectID)
	return u
}

// SetName sets the "name" field.
func (u *ContractorUpsert) SetName(v string) *ContractorUpsert {
	u.Set(contractor.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ContractorUpsert) UpdateName() *ContractorUpsert {
	u.SetExcluded(contractor.FieldName)
	return u
}

// SetAbbreviation sets the "abbreviation" field.
func (u *ContractorUpsert) SetAbbreviation(v string) *ContractorUpsert {
	u.Set(contractor.FieldAbbreviation, v)
	return u
}

// UpdateAbbreviation sets the "abbreviation" field to the value that was provided on create.
func (u *ContractorUpsert) UpdateAbbreviation() *ContractorUpsert {
	u.SetExcluded(contractor.FieldAbbreviation)
	return u
}

// ClearAbbreviation clears the value of the "abbreviation" field.
func (u *ContractorUpsert) ClearAbbreviation() *ContractorUpsert {
	u.SetNull(contractor.FieldAbbreviation)
	return u
}

// SetType sets the "type" field.
func (u *ContractorUpsert) SetType(v string) *ContractorUpsert {
	u.Set(contractor.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *ContractorUpsert) UpdateType() *ContractorUpsert {
	u.SetExcluded(contractor.FieldType)
	return u
}

// SetTrade sets the "trade" field.
func (u *ContractorUpsert) SetTrade(v string) *ContractorUpsert {
	u.Set(contractor.FieldTrade, v)
	return u
}

// UpdateTrade sets the "trade" field to the value that was provided on create.
func (u *ContractorUpsert) UpdateTrade() *ContractorUpsert {
	u.SetExcluded(contractor.FieldTrade)
	return u
}

// ClearTrade clears the value of the "trade" field.
func (u *ContractorUpsert) ClearTrade() *ContractorUpsert {
	u.SetNull(contractor.FieldTrade)
	return u
}

// SetStatus sets the "status" field.
func (u *ContractorUpsert) SetStatus(v string) *ContractorUpsert {
	u.Set(contractor.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ContractorUpsert) UpdateStatus() *ContractorUpsert {
	u.SetExcluded(contractor.FieldStatus)
	return u
}

// SetSortOrder sets the "sort_order" field.
func (u *ContractorUpsert) SetSortOrder(v int) *ContractorUpsert {
	u.Set(contractor.FieldSortOrder, v)
	return u
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *ContractorUpsert) UpdateSortOrder() *ContractorUpsert {
	u.SetExcluded(contractor.FieldSortOrder)
	return u
}

// AddSortOrder adds v to the "sort_order" field.
func (u *ContractorUpsert) AddSortOrder(v int) *ContractorUpsert {
	u.Add(contractor.FieldSortOrder, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Contractor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(contractor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContractorUpsertOne) UpdateNewValues() *ContractorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(contractor.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Contractor.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ContractorUpsertOne) Ignore() *ContractorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContractorUpsertOne) DoNothing() *ContractorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContractorCreate.OnConflict
// documentation for more info.
func (u *ContractorUpsertOne) Update(set func(*ContractorUpsert)) *ContractorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContractorUpsert{UpdateSet: update})
	}))
	return u
}

// SetProjectID sets the "project_id" field.
func (u *ContractorUpsertOne) SetProjectID(v uuid.UUID) *ContractorUpsertOne {
	return u.Update(func(s *ContractorUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ContractorUpsertOne) UpdateProjectID() *ContractorUpsertOne {
	return u.Update(func(s *ContractorUpsert) {
		s.UpdateProjectID()
	})
}

// SetName sets the "name" field.
func (u *ContractorUpsertOne) SetName(v string) *ContractorUpsertOne {
	return u.Update(func(s *ContractorUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ContractorUpsertOne) UpdateName() *ContractorUpsertOne {
	return u.Update(func(s *ContractorUpsert) {
		s.UpdateName()
	})
}

// SetAbbreviation sets the "abbreviation" field.
func (u *ContractorUpsertOne) SetAbbreviation(v string) *ContractorUpsertOne {
	return u.Update(func(s *ContractorUpsert) {
		s.SetAbbreviation(v)
	})
}

// UpdateAbbreviation sets the "abbreviation" field to the value that was provided on create.
func (u *ContractorUpsertOne) UpdateAbbreviation() *ContractorUpsertOne {
	return u.Update(func(s *ContractorUpsert) {
		s.UpdateAbbreviation()
	})
}

// ClearAbbreviation clears the value of the "abbreviation" field.
func (u *ContractorUpsertOne) ClearAbbreviation() *ContractorUpsertOne {
	return u.Update(func(s *ContractorUpsert) {
		s.ClearAbbreviation()
	})
}

// SetType sets the "type" field.
func (u *ContractorUpsertOne) SetType(v string) *ContractorUpsertOne {
	return u.Update(func(s *ContractorUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *ContractorUpsertOne) UpdateType() *ContractorUpsertOne {
	return u.Update(func(s *ContractorUpsert) {
		s.UpdateType()
	})
}

// SetTrade sets the "trade" field.
func (u *ContractorUpsertOne) SetTrade(v string) *ContractorUpsertOne {
	return u.Update(func(s *ContractorUpsert) {
		s.SetTrade(v)
	})
}

// UpdateTrade sets the "trade" field to the value that was provided on create.
func (u *ContractorUpsertOne) UpdateTrade() *ContractorUpsertOne {
	return u.Update(func(s *ContractorUpsert) {
		s.UpdateTrade()
	})
}

// ClearTrade clears the value of the "trade" field.
func (u *ContractorUpsertOne) ClearTrade() *ContractorUpsertOne {
	return u.Update(func(s *ContractorUpsert) {
		s.ClearTrade()
	})
}

// SetStatus sets the "status" field.
func (u *ContractorUpsertOne) SetStatus(v string) *ContractorUpsertOne {
	return u.Update(func(s *ContractorUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ContractorUpsertOne) UpdateStatus() *ContractorUpsertOne {
	return u.Update(func(s *ContractorUpsert) {
		s.UpdateStatus()
	})
}

// SetSortOrder sets the "sort_order" field.
func (u *ContractorUpsertOne) SetSortOrder(v int) *ContractorUpsertOne {
	return u.Update(func(s *ContractorUpsert) {
		s.SetSortOrder(v)
	})
}

// AddSortOrder adds v to the "sort_order" field.
func (u *ContractorUpsertOne) AddSortOrder(v int) *ContractorUpsertOne {
	return u.Update(func(s *ContractorUpsert) {
		s.AddSortOrder(v)
	})
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *ContractorUpsertOne) UpdateSortOrder() *ContractorUpsertOne {
	return u.Update(func(s *ContractorUpsert) {
		s.UpdateSortOrder()
	})
}

// Exec executes the query.
func (u *ContractorUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContractorCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContractorUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ContractorUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ContractorUpsertOne.ID is not supported by MySQL driver. Use ContractorUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ContractorUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ContractorCreateBulk is the builder for creating many Contractor entities in bulk.
type ContractorCreateBulk struct {
	config
	err      error
	builders []*ContractorCreate
	conflict []sql.ConflictOption
}

// Save creates the Contractor entities in the database.
func (_c *ContractorCreateBulk) Save(ctx context.Context) ([]*Contractor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Contractor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContractorMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ContractorCreateBulk) SaveX(ctx context.Context) []*Contractor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Contractor.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContractorUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *ContractorCreateBulk) OnConflict(opts ...sql.ConflictOption) *ContractorUpsertBulk {
	_c.conflict = opts
	return &ContractorUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Contractor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContractorCreateBulk) OnConflictColumns(columns ...string) *ContractorUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContractorUpsertBulk{
		create: _c,
	}
}

// ContractorUpsertBulk is the builder for "upsert"-ing
// a bulk of Contractor nodes.
type ContractorUpsertBulk struct {
	create *ContractorCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Contractor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(contractor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContractorUpsertBulk) UpdateNewValues() *ContractorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(contractor.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Contractor.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ContractorUpsertBulk) Ignore() *ContractorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContractorUpsertBulk) DoNothing() *ContractorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContractorCreateBulk.OnConflict
// documentation for more info.
func (u *ContractorUpsertBulk) Update(set func(*ContractorUpsert)) *ContractorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContractorUpsert{UpdateSet: update})
	}))
	return u
}

// SetProjectID sets the "project_id" field.
func (u *ContractorUpsertBulk) SetProjectID(v uuid.UUID) *ContractorUpsertBulk {
	return u.Update(func(s *ContractorUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ContractorUpsertBulk) UpdateProjectID() *ContractorUpsertBulk {
	return u.Update(func(s *ContractorUpsert) {
		s.UpdateProjectID()
	})
}

// SetName sets the "name" field.
func (u *ContractorUpsertBulk) SetName(v string) *ContractorUpsertBulk {
	return u.Update(func(s *ContractorUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ContractorUpsertBulk) UpdateName() *ContractorUpsertBulk {
	return u.Update(func(s *ContractorUpsert) {
		s.UpdateName()
	})
}

// SetAbbreviation sets the "abbreviation" field.
func (u *ContractorUpsertBulk) SetAbbreviation(v string) *ContractorUpsertBulk {
	return u.Update(func(s *ContractorUpsert) {
		s.SetAbbreviation(v)
	})
}

// UpdateAbbreviation sets the "abbreviation" field to the value that was provided on create.
func (u *ContractorUpsertBulk) UpdateAbbreviation() *ContractorUpsertBulk {
	return u.Update(func(s *ContractorUpsert) {
		s.UpdateAbbreviation()
	})
}

// ClearAbbreviation clears the value of the "abbreviation" field.
func (u *ContractorUpsertBulk) ClearAbbreviation() *ContractorUpsertBulk {
	return u.Update(func(s *ContractorUpsert) {
		s.ClearAbbreviation()
	})
}

// SetType sets the "type" field.
func (u *ContractorUpsertBulk) SetType(v string) *ContractorUpsertBulk {
	return u.Update(func(s *ContractorUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *ContractorUpsertBulk) UpdateType() *ContractorUpsertBulk {
	return u.Update(func(s *ContractorUpsert) {
		s.UpdateType()
	})
}

// SetTrade sets the "trade" field.
func (u *ContractorUpsertBulk) SetTrade(v string) *ContractorUpsertBulk {
	return u.Update(func(s *ContractorUpsert) {
		s.SetTrade(v)
	})
}

// UpdateTrade sets the "trade" field to the value that was provided on create.
func (u *ContractorUpsertBulk) UpdateTrade() *ContractorUpsertBulk {
	return u.Update(func(s *ContractorUpsert) {
		s.UpdateTrade()
	})
}

// ClearTrade clears the value of the "trade" field.
func (u *ContractorUpsertBulk) ClearTrade() *ContractorUpsertBulk {
	return u.Update(func(s *ContractorUpsert) {
		s.ClearTrade()
	})
}

// SetStatus sets the "status" field.
func (u *ContractorUpsertBulk) SetStatus(v string) *ContractorUpsertBulk {
	return u.Update(func(s *ContractorUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ContractorUpsertBulk) UpdateStatus() *ContractorUpsertBulk {
	return u.Update(func(s *ContractorUpsert) {
		s.UpdateStatus()
	})
}

// SetSortOrder sets the "sort_order" field.
func (u *ContractorUpsertBulk) SetSortOrder(v int) *ContractorUpsertBulk {
	return u.Update(func(s *ContractorUpsert) {
		s.SetSortOrder(v)
	})
}

// AddSortOrder adds v to the "sort_order" field.
func (u *ContractorUpsertBulk) AddSortOrder(v int) *ContractorUpsertBulk {
	return u.Update(func(s *ContractorUpsert) {
		s.AddSortOrder(v)
	})
}

// UpdateSortOrder sets the "sort_order" field to the value that was provided on create.
func (u *ContractorUpsertBulk) UpdateSortOrder() *ContractorUpsertBulk {
	return u.Update(func(s *ContractorUpsert) {
		s.UpdateSortOrder()
	})
}

// Exec executes the query.
func (u *ContractorUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ContractorCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContractorCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContractorUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
