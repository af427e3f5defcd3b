// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fieldlog/fieldlog/gen/ent/contractor"
	"github.com/fieldlog/fieldlog/gen/ent/editlock"
	"github.com/fieldlog/fieldlog/gen/ent/photo"
	"github.com/fieldlog/fieldlog/gen/ent/predicate"
	"github.com/fieldlog/fieldlog/gen/ent/project"
	"github.com/fieldlog/fieldlog/gen/ent/report"
	"github.com/fieldlog/fieldlog/gen/ent/reportentry"
	"github.com/fieldlog/fieldlog/gen/ent/reportrawcapture"
	"github.com/fieldlog/fieldlog/gen/ent/userprofile"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeContractor       = "Contractor"
	TypeEditLock         = "EditLock"
	TypePhoto            = "Photo"
	TypeProject          = "Project"
	TypeReport           = "Report"
	TypeReportEntry      = "ReportEntry"
	TypeReportRawCapture = "ReportRawCapture"
	TypeUserProfile      = "UserProfile"
)

// ContractorMutation represents an operation that mutates the Contractor nodes in the graph.
type ContractorMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	abbreviation   *string
	_type          *string
	trade          *string
	status         *string
	sort_order     *int
	addsort_order  *int
	clearedFields  map[string]struct{}
	project        *uuid.UUID
	clearedproject bool
	done           bool
	oldValue       func(context.Context) (*Contractor, error)
	predicates     []predicate.Contractor
}

var _ ent.Mutation = (*ContractorMutation)(nil)

// contractorOption allows management of the mutation configuration using functional options.
type contractorOption func(*ContractorMutation)

// newContractorMutation creates new mutation for the Contractor entity.
func newContractorMutation(c config, op Op, opts ...contractorOption) *ContractorMutation {
	m := &ContractorMutation{
		config:        c,
		op:            op,
		typ:           TypeContractor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContractorID sets the ID field of the mutation.
func withContractorID(id uuid.UUID) contractorOption {
	return func(m *ContractorMutation) {
		var (
			err   error
			once  sync.Once
			value *Contractor
		)
		m.oldValue = func(ctx context.Context) (*Contractor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Contractor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContractor sets the old Contractor of the mutation.
func withContractor(node *Contractor) contractorOption {
	return func(m *ContractorMutation) {
		m.oldValue = func(context.Context) (*Contractor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContractorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContractorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Contractor entities.
func (m *ContractorMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContractorMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContractorMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Contractor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *ContractorMutation) SetProjectID(u uuid.UUID) {
	m.project = &u
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ContractorMutation) ProjectID() (r uuid.UUID, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Contractor entity.
// If the Contractor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractorMutation) OldProjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ContractorMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *ContractorMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ContractorMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Contractor entity.
// If the Contractor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractorMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ContractorMutation) ResetName() {
	m.name = nil
}

// SetAbbreviation sets the "abbreviation" field.
func (m *ContractorMutation) SetAbbreviation(s string) {
	m.abbreviation = &s
}

// Abbreviation returns the value of the "abbreviation" field in the mutation.
func (m *ContractorMutation) Abbreviation() (r string, exists bool) {
	v := m.abbreviation
	if v == nil {
		return
	}
	return *v, true
}

// OldAbbreviation returns the old "abbreviation" field's value of the Contractor entity.
// If the Contractor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractorMutation) OldAbbreviation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAbbreviation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAbbreviation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAbbreviation: %w", err)
	}
	return oldValue.Abbreviation, nil
}

// ClearAbbreviation clears the value of the "abbreviation" field.
func (m *ContractorMutation) ClearAbbreviation() {
	m.abbreviation = nil
	m.clearedFields[contractor.FieldAbbreviation] = struct{}{}
}

// AbbreviationCleared returns if the "abbreviation" field was cleared in this mutation.
func (m *ContractorMutation) AbbreviationCleared() bool {
	_, ok := m.clearedFields[contractor.FieldAbbreviation]
	return ok
}

// ResetAbbreviation resets all changes to the "abbreviation" field.
func (m *ContractorMutation) ResetAbbreviation() {
	m.abbreviation = nil
	delete(m.clearedFields, contractor.FieldAbbreviation)
}

// SetType sets the "type" field.
func (m *ContractorMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *ContractorMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Contractor entity.
// If the Contractor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractorMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ContractorMutation) ResetType() {
	m._type = nil
}

// SetTrade sets the "trade" field.
func (m *ContractorMutation) SetTrade(s string) {
	m.trade = &s
}

// Trade returns the value of the "trade" field in the mutation.
func (m *ContractorMutation) Trade() (r string, exists bool) {
	v := m.trade
	if v == nil {
		return
	}
	return *v, true
}

// OldTrade returns the old "trade" field's value of the Contractor entity.
// If the Contractor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractorMutation) OldTrade(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrade: %w", err)
	}
	return oldValue.Trade, nil
}

// ClearTrade clears the value of the "trade" field.
func (m *ContractorMutation) ClearTrade() {
	m.trade = nil
	m.clearedFields[contractor.FieldTrade] = struct{}{}
}

// TradeCleared returns if the "trade" field was cleared in this mutation.
func (m *ContractorMutation) TradeCleared() bool {
	_, ok := m.clearedFields[contractor.FieldTrade]
	return ok
}

// ResetTrade resets all changes to the "trade" field.
func (m *ContractorMutation) ResetTrade() {
	m.trade = nil
	delete(m.clearedFields, contractor.FieldTrade)
}

// SetStatus sets the "status" field.
func (m *ContractorMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ContractorMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Contractor entity.
// If the Contractor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractorMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ContractorMutation) ResetStatus() {
	m.status = nil
}

// SetSortOrder sets the "sort_order" field.
func (m *ContractorMutation) SetSortOrder(i int) {
	m.sort_order = &i
	m.addsort_order = nil
}

// SortOrder returns the value of the "sort_order" field in the mutation.
func (m *ContractorMutation) SortOrder() (r int, exists bool) {
	v := m.sort_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSortOrder returns the old "sort_order" field's value of the Contractor entity.
// If the Contractor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractorMutation) OldSortOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSortOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSortOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSortOrder: %w", err)
	}
	return oldValue.SortOrder, nil
}

// AddSortOrder adds i to the "sort_order" field.
func (m *ContractorMutation) AddSortOrder(i int) {
	if m.addsort_order != nil {
		*m.addsort_order += i
	} else {
		m.addsort_order = &i
	}
}

// AddedSortOrder returns the value that was added to the "sort_order" field in this mutation.
func (m *ContractorMutation) AddedSortOrder() (r int, exists bool) {
	v := m.addsort_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSortOrder resets all changes to the "sort_order" field.
func (m *ContractorMutation) ResetSortOrder() {
	m.sort_order = nil
	m.addsort_order = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ContractorMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[contractor.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ContractorMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ContractorMutation) ProjectIDs() (ids []uuid.UUID) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ContractorMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the ContractorMutation builder.
func (m *ContractorMutation) Where(ps ...predicate.Contractor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContractorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContractorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Contractor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContractorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContractorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Contractor).
func (m *ContractorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContractorMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.project != nil {
		fields = append(fields, contractor.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, contractor.FieldName)
	}
	if m.abbreviation != nil {
		fields = append(fields, contractor.FieldAbbreviation)
	}
	if m._type != nil {
		fields = append(fields, contractor.FieldType)
	}
	if m.trade != nil {
		fields = append(fields, contractor.FieldTrade)
	}
	if m.status != nil {
		fields = append(fields, contractor.FieldStatus)
	}
	if m.sort_order != nil {
		fields = append(fields, contractor.FieldSortOrder)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContractorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contractor.FieldProjectID:
		return m.ProjectID()
	case contractor.FieldName:
		return m.Name()
	case contractor.FieldAbbreviation:
		return m.Abbreviation()
	case contractor.FieldType:
		return m.GetType()
	case contractor.FieldTrade:
		return m.Trade()
	case contractor.FieldStatus:
		return m.Status()
	case contractor.FieldSortOrder:
		return m.SortOrder()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContractorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contractor.FieldProjectID:
		return m.OldProjectID(ctx)
	case contractor.FieldName:
		return m.OldName(ctx)
	case contractor.FieldAbbreviation:
		return m.OldAbbreviation(ctx)
	case contractor.FieldType:
		return m.OldType(ctx)
	case contractor.FieldTrade:
		return m.OldTrade(ctx)
	case contractor.FieldStatus:
		return m.OldStatus(ctx)
	case contractor.FieldSortOrder:
		return m.OldSortOrder(ctx)
	}
	return nil, fmt.Errorf("unknown Contractor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contractor.FieldProjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case contractor.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case contractor.FieldAbbreviation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAbbreviation(v)
		return nil
	case contractor.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case contractor.FieldTrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrade(v)
		return nil
	case contractor.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case contractor.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSortOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Contractor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContractorMutation) AddedFields() []string {
	var fields []string
	if m.addsort_order != nil {
		fields = append(fields, contractor.FieldSortOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContractorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contractor.FieldSortOrder:
		return m.AddedSortOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contractor.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSortOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Contractor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContractorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contractor.FieldAbbreviation) {
		fields = append(fields, contractor.FieldAbbreviation)
	}
	if m.FieldCleared(contractor.FieldTrade) {
		fields = append(fields, contractor.FieldTrade)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContractorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContractorMutation) ClearField(name string) error {
	switch name {
	case contractor.FieldAbbreviation:
		m.ClearAbbreviation()
		return nil
	case contractor.FieldTrade:
		m.ClearTrade()
		return nil
	}
	return fmt.Errorf("unknown Contractor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContractorMutation) ResetField(name string) error {
	switch name {
	case contractor.FieldProjectID:
		m.ResetProjectID()
		return nil
	case contractor.FieldName:
		m.ResetName()
		return nil
	case contractor.FieldAbbreviation:
		m.ResetAbbreviation()
		return nil
	case contractor.FieldType:
		m.ResetType()
		return nil
	case contractor.FieldTrade:
		m.ResetTrade()
		return nil
	case contractor.FieldStatus:
		m.ResetStatus()
		return nil
	case contractor.FieldSortOrder:
		m.ResetSortOrder()
		return nil
	}
	return fmt.Errorf("unknown Contractor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContractorMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, contractor.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContractorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contractor.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContractorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContractorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContractorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, contractor.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContractorMutation) EdgeCleared(name string) bool {
	switch name {
	case contractor.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContractorMutation) ClearEdge(name string) error {
	switch name {
	case contractor.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Contractor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContractorMutation) ResetEdge(name string) error {
	switch name {
	case contractor.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown Contractor edge %s", name)
}

// EditLockMutation represents an operation that mutates the EditLock nodes in the graph.
type EditLockMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	project_id    *uuid.UUID
	report_date   *time.Time
	device_id     *string
	holder_name   *string
	acquired_at   *time.Time
	heartbeat_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*EditLock, error)
	predicates    []predicate.EditLock
}

var _ ent.Mutation = (*EditLockMutation)(nil)

// editlockOption allows management of the mutation configuration using functional options.
type editlockOption func(*EditLockMutation)

// newEditLockMutation creates new mutation for the EditLock entity.
func newEditLockMutation(c config, op Op, opts ...editlockOption) *EditLockMutation {
	m := &EditLockMutation{
		config:        c,
		op:            op,
		typ:           TypeEditLock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEditLockID sets the ID field of the mutation.
func withEditLockID(id uuid.UUID) editlockOption {
	return func(m *EditLockMutation) {
		var (
			err   error
			once  sync.Once
			value *EditLock
		)
		m.oldValue = func(ctx context.Context) (*EditLock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EditLock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEditLock sets the old EditLock of the mutation.
func withEditLock(node *EditLock) editlockOption {
	return func(m *EditLockMutation) {
		m.oldValue = func(context.Context) (*EditLock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EditLockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EditLockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EditLock entities.
func (m *EditLockMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EditLockMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EditLockMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EditLock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *EditLockMutation) SetProjectID(u uuid.UUID) {
	m.project_id = &u
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *EditLockMutation) ProjectID() (r uuid.UUID, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the EditLock entity.
// If the EditLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditLockMutation) OldProjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *EditLockMutation) ResetProjectID() {
	m.project_id = nil
}

// SetReportDate sets the "report_date" field.
func (m *EditLockMutation) SetReportDate(t time.Time) {
	m.report_date = &t
}

// ReportDate returns the value of the "report_date" field in the mutation.
func (m *EditLockMutation) ReportDate() (r time.Time, exists bool) {
	v := m.report_date
	if v == nil {
		return
	}
	return *v, true
}

// OldReportDate returns the old "report_date" field's value of the EditLock entity.
// If the EditLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditLockMutation) OldReportDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportDate: %w", err)
	}
	return oldValue.ReportDate, nil
}

// ResetReportDate resets all changes to the "report_date" field.
func (m *EditLockMutation) ResetReportDate() {
	m.report_date = nil
}

// SetDeviceID sets the "device_id" field.
func (m *EditLockMutation) SetDeviceID(s string) {
	m.device_id = &s
}

// DeviceID returns the value of the "device_id" field in the mutation.
func (m *EditLockMutation) DeviceID() (r string, exists bool) {
	v := m.device_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceID returns the old "device_id" field's value of the EditLock entity.
// If the EditLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditLockMutation) OldDeviceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceID: %w", err)
	}
	return oldValue.DeviceID, nil
}

// ResetDeviceID resets all changes to the "device_id" field.
func (m *EditLockMutation) ResetDeviceID() {
	m.device_id = nil
}

// SetHolderName sets the "holder_name" field.
func (m *EditLockMutation) SetHolderName(s string) {
	m.holder_name = &s
}

// HolderName returns the value of the "holder_name" field in the mutation.
func (m *EditLockMutation) HolderName() (r string, exists bool) {
	v := m.holder_name
	if v == nil {
		return
	}
	return *v, true
}

// OldHolderName returns the old "holder_name" field's value of the EditLock entity.
// If the EditLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditLockMutation) OldHolderName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHolderName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHolderName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHolderName: %w", err)
	}
	return oldValue.HolderName, nil
}

// ResetHolderName resets all changes to the "holder_name" field.
func (m *EditLockMutation) ResetHolderName() {
	m.holder_name = nil
}

// SetAcquiredAt sets the "acquired_at" field.
func (m *EditLockMutation) SetAcquiredAt(t time.Time) {
	m.acquired_at = &t
}

// AcquiredAt returns the value of the "acquired_at" field in the mutation.
func (m *EditLockMutation) AcquiredAt() (r time.Time, exists bool) {
	v := m.acquired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcquiredAt returns the old "acquired_at" field's value of the EditLock entity.
// If the EditLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditLockMutation) OldAcquiredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcquiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcquiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcquiredAt: %w", err)
	}
	return oldValue.AcquiredAt, nil
}

// ResetAcquiredAt resets all changes to the "acquired_at" field.
func (m *EditLockMutation) ResetAcquiredAt() {
	m.acquired_at = nil
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (m *EditLockMutation) SetHeartbeatAt(t time.Time) {
	m.heartbeat_at = &t
}

// HeartbeatAt returns the value of the "heartbeat_at" field in the mutation.
func (m *EditLockMutation) HeartbeatAt() (r time.Time, exists bool) {
	v := m.heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatAt returns the old "heartbeat_at" field's value of the EditLock entity.
// If the EditLock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditLockMutation) OldHeartbeatAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatAt: %w", err)
	}
	return oldValue.HeartbeatAt, nil
}

// ResetHeartbeatAt resets all changes to the "heartbeat_at" field.
func (m *EditLockMutation) ResetHeartbeatAt() {
	m.heartbeat_at = nil
}

// Where appends a list predicates to the EditLockMutation builder.
func (m *EditLockMutation) Where(ps ...predicate.EditLock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EditLockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EditLockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EditLock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EditLockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EditLockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EditLock).
func (m *EditLockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EditLockMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.project_id != nil {
		fields = append(fields, editlock.FieldProjectID)
	}
	if m.report_date != nil {
		fields = append(fields, editlock.FieldReportDate)
	}
	if m.device_id != nil {
		fields = append(fields, editlock.FieldDeviceID)
	}
	if m.holder_name != nil {
		fields = append(fields, editlock.FieldHolderName)
	}
	if m.acquired_at != nil {
		fields = append(fields, editlock.FieldAcquiredAt)
	}
	if m.heartbeat_at != nil {
		fields = append(fields, editlock.FieldHeartbeatAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EditLockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case editlock.FieldProjectID:
		return m.ProjectID()
	case editlock.FieldReportDate:
		return m.ReportDate()
	case editlock.FieldDeviceID:
		return m.DeviceID()
	case editlock.FieldHolderName:
		return m.HolderName()
	case editlock.FieldAcquiredAt:
		return m.AcquiredAt()
	case editlock.FieldHeartbeatAt:
		return m.HeartbeatAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EditLockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case editlock.FieldProjectID:
		return m.OldProjectID(ctx)
	case editlock.FieldReportDate:
		return m.OldReportDate(ctx)
	case editlock.FieldDeviceID:
		return m.OldDeviceID(ctx)
	case editlock.FieldHolderName:
		return m.OldHolderName(ctx)
	case editlock.FieldAcquiredAt:
		return m.OldAcquiredAt(ctx)
	case editlock.FieldHeartbeatAt:
		return m.OldHeartbeatAt(ctx)
	}
	return nil, fmt.Errorf("unknown EditLock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EditLockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case editlock.FieldProjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case editlock.FieldReportDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportDate(v)
		return nil
	case editlock.FieldDeviceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceID(v)
		return nil
	case editlock.FieldHolderName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHolderName(v)
		return nil
	case editlock.FieldAcquiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcquiredAt(v)
		return nil
	case editlock.FieldHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatAt(v)
		return nil
	}
	return fmt.Errorf("unknown EditLock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EditLockMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EditLockMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EditLockMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EditLock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EditLockMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EditLockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EditLockMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EditLock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EditLockMutation) ResetField(name string) error {
	switch name {
	case editlock.FieldProjectID:
		m.ResetProjectID()
		return nil
	case editlock.FieldReportDate:
		m.ResetReportDate()
		return nil
	case editlock.FieldDeviceID:
		m.ResetDeviceID()
		return nil
	case editlock.FieldHolderName:
		m.ResetHolderName()
		return nil
	case editlock.FieldAcquiredAt:
		m.ResetAcquiredAt()
		return nil
	case editlock.FieldHeartbeatAt:
		m.ResetHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown EditLock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EditLockMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EditLockMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EditLockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EditLockMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EditLockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EditLockMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EditLockMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EditLock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EditLockMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EditLock edge %s", name)
}

// PhotoMutation represents an operation that mutates the Photo nodes in the graph.
type PhotoMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	local_photo_id *string
	caption        *string
	store_path     *string
	latitude       *float64
	addlatitude    *float64
	longitude      *float64
	addlongitude   *float64
	taken_at       *time.Time
	created_at     *time.Time
	clearedFields  map[string]struct{}
	report         *uuid.UUID
	clearedreport  bool
	done           bool
	oldValue       func(context.Context) (*Photo, error)
	predicates     []predicate.Photo
}

var _ ent.Mutation = (*PhotoMutation)(nil)

// photoOption allows management of the mutation configuration using functional options.
type photoOption func(*PhotoMutation)

// newPhotoMutation creates new mutation for the Photo entity.
func newPhotoMutation(c config, op Op, opts ...photoOption) *PhotoMutation {
	m := &PhotoMutation{
		config:        c,
		op:            op,
		typ:           TypePhoto,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPhotoID sets the ID field of the mutation.
func withPhotoID(id uuid.UUID) photoOption {
	return func(m *PhotoMutation) {
		var (
			err   error
			once  sync.Once
			value *Photo
		)
		m.oldValue = func(ctx context.Context) (*Photo, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Photo.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPhoto sets the old Photo of the mutation.
func withPhoto(node *Photo) photoOption {
	return func(m *PhotoMutation) {
		m.oldValue = func(context.Context) (*Photo, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PhotoMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PhotoMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Photo entities.
func (m *PhotoMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PhotoMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PhotoMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Photo.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *PhotoMutation) SetReportID(u uuid.UUID) {
	m.report = &u
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *PhotoMutation) ReportID() (r uuid.UUID, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the Photo entity.
// If the Photo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhotoMutation) OldReportID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *PhotoMutation) ResetReportID() {
	m.report = nil
}

// SetLocalPhotoID sets the "local_photo_id" field.
func (m *PhotoMutation) SetLocalPhotoID(s string) {
	m.local_photo_id = &s
}

// LocalPhotoID returns the value of the "local_photo_id" field in the mutation.
func (m *PhotoMutation) LocalPhotoID() (r string, exists bool) {
	v := m.local_photo_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLocalPhotoID returns the old "local_photo_id" field's value of the Photo entity.
// If the Photo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhotoMutation) OldLocalPhotoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocalPhotoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocalPhotoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocalPhotoID: %w", err)
	}
	return oldValue.LocalPhotoID, nil
}

// ResetLocalPhotoID resets all changes to the "local_photo_id" field.
func (m *PhotoMutation) ResetLocalPhotoID() {
	m.local_photo_id = nil
}

// SetCaption sets the "caption" field.
func (m *PhotoMutation) SetCaption(s string) {
	m.caption = &s
}

// Caption returns the value of the "caption" field in the mutation.
func (m *PhotoMutation) Caption() (r string, exists bool) {
	v := m.caption
	if v == nil {
		return
	}
	return *v, true
}

// OldCaption returns the old "caption" field's value of the Photo entity.
// If the Photo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhotoMutation) OldCaption(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaption is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaption requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaption: %w", err)
	}
	return oldValue.Caption, nil
}

// ClearCaption clears the value of the "caption" field.
func (m *PhotoMutation) ClearCaption() {
	m.caption = nil
	m.clearedFields[photo.FieldCaption] = struct{}{}
}

// CaptionCleared returns if the "caption" field was cleared in this mutation.
func (m *PhotoMutation) CaptionCleared() bool {
	_, ok := m.clearedFields[photo.FieldCaption]
	return ok
}

// ResetCaption resets all changes to the "caption" field.
func (m *PhotoMutation) ResetCaption() {
	m.caption = nil
	delete(m.clearedFields, photo.FieldCaption)
}

// SetStorePath sets the "store_path" field.
func (m *PhotoMutation) SetStorePath(s string) {
	m.store_path = &s
}

// StorePath returns the value of the "store_path" field in the mutation.
func (m *PhotoMutation) StorePath() (r string, exists bool) {
	v := m.store_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStorePath returns the old "store_path" field's value of the Photo entity.
// If the Photo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhotoMutation) OldStorePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorePath: %w", err)
	}
	return oldValue.StorePath, nil
}

// ClearStorePath clears the value of the "store_path" field.
func (m *PhotoMutation) ClearStorePath() {
	m.store_path = nil
	m.clearedFields[photo.FieldStorePath] = struct{}{}
}

// StorePathCleared returns if the "store_path" field was cleared in this mutation.
func (m *PhotoMutation) StorePathCleared() bool {
	_, ok := m.clearedFields[photo.FieldStorePath]
	return ok
}

// ResetStorePath resets all changes to the "store_path" field.
func (m *PhotoMutation) ResetStorePath() {
	m.store_path = nil
	delete(m.clearedFields, photo.FieldStorePath)
}

// SetLatitude sets the "latitude" field.
func (m *PhotoMutation) SetLatitude(f float64) {
	m.latitude = &f
	m.addlatitude = nil
}

// Latitude returns the value of the "latitude" field in the mutation.
func (m *PhotoMutation) Latitude() (r float64, exists bool) {
	v := m.latitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLatitude returns the old "latitude" field's value of the Photo entity.
// If the Photo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhotoMutation) OldLatitude(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatitude: %w", err)
	}
	return oldValue.Latitude, nil
}

// AddLatitude adds f to the "latitude" field.
func (m *PhotoMutation) AddLatitude(f float64) {
	if m.addlatitude != nil {
		*m.addlatitude += f
	} else {
		m.addlatitude = &f
	}
}

// AddedLatitude returns the value that was added to the "latitude" field in this mutation.
func (m *PhotoMutation) AddedLatitude() (r float64, exists bool) {
	v := m.addlatitude
	if v == nil {
		return
	}
	return *v, true
}

// ClearLatitude clears the value of the "latitude" field.
func (m *PhotoMutation) ClearLatitude() {
	m.latitude = nil
	m.addlatitude = nil
	m.clearedFields[photo.FieldLatitude] = struct{}{}
}

// LatitudeCleared returns if the "latitude" field was cleared in this mutation.
func (m *PhotoMutation) LatitudeCleared() bool {
	_, ok := m.clearedFields[photo.FieldLatitude]
	return ok
}

// ResetLatitude resets all changes to the "latitude" field.
func (m *PhotoMutation) ResetLatitude() {
	m.latitude = nil
	m.addlatitude = nil
	delete(m.clearedFields, photo.FieldLatitude)
}

// SetLongitude sets the "longitude" field.
func (m *PhotoMutation) SetLongitude(f float64) {
	m.longitude = &f
	m.addlongitude = nil
}

// Longitude returns the value of the "longitude" field in the mutation.
func (m *PhotoMutation) Longitude() (r float64, exists bool) {
	v := m.longitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLongitude returns the old "longitude" field's value of the Photo entity.
// If the Photo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhotoMutation) OldLongitude(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongitude: %w", err)
	}
	return oldValue.Longitude, nil
}

// AddLongitude adds f to the "longitude" field.
func (m *PhotoMutation) AddLongitude(f float64) {
	if m.addlongitude != nil {
		*m.addlongitude += f
	} else {
		m.addlongitude = &f
	}
}

// AddedLongitude returns the value that was added to the "longitude" field in this mutation.
func (m *PhotoMutation) AddedLongitude() (r float64, exists bool) {
	v := m.addlongitude
	if v == nil {
		return
	}
	return *v, true
}

// ClearLongitude clears the value of the "longitude" field.
func (m *PhotoMutation) ClearLongitude() {
	m.longitude = nil
	m.addlongitude = nil
	m.clearedFields[photo.FieldLongitude] = struct{}{}
}

// LongitudeCleared returns if the "longitude" field was cleared in this mutation.
func (m *PhotoMutation) LongitudeCleared() bool {
	_, ok := m.clearedFields[photo.FieldLongitude]
	return ok
}

// ResetLongitude resets all changes to the "longitude" field.
func (m *PhotoMutation) ResetLongitude() {
	m.longitude = nil
	m.addlongitude = nil
	delete(m.clearedFields, photo.FieldLongitude)
}

// SetTakenAt sets the "taken_at" field.
func (m *PhotoMutation) SetTakenAt(t time.Time) {
	m.taken_at = &t
}

// TakenAt returns the value of the "taken_at" field in the mutation.
func (m *PhotoMutation) TakenAt() (r time.Time, exists bool) {
	v := m.taken_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTakenAt returns the old "taken_at" field's value of the Photo entity.
// If the Photo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhotoMutation) OldTakenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTakenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTakenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTakenAt: %w", err)
	}
	return oldValue.TakenAt, nil
}

// ResetTakenAt resets all changes to the "taken_at" field.
func (m *PhotoMutation) ResetTakenAt() {
	m.taken_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PhotoMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PhotoMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Photo entity.
// If the Photo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhotoMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PhotoMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearReport clears the "report" edge to the Report entity.
func (m *PhotoMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[photo.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *PhotoMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *PhotoMutation) ReportIDs() (ids []uuid.UUID) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *PhotoMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// Where appends a list predicates to the PhotoMutation builder.
func (m *PhotoMutation) Where(ps ...predicate.Photo) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PhotoMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PhotoMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Photo, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PhotoMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PhotoMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Photo).
func (m *PhotoMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PhotoMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.report != nil {
		fields = append(fields, photo.FieldReportID)
	}
	if m.local_photo_id != nil {
		fields = append(fields, photo.FieldLocalPhotoID)
	}
	if m.caption != nil {
		fields = append(fields, photo.FieldCaption)
	}
	if m.store_path != nil {
		fields = append(fields, photo.FieldStorePath)
	}
	if m.latitude != nil {
		fields = append(fields, photo.FieldLatitude)
	}
	if m.longitude != nil {
		fields = append(fields, photo.FieldLongitude)
	}
	if m.taken_at != nil {
		fields = append(fields, photo.FieldTakenAt)
	}
	if m.created_at != nil {
		fields = append(fields, photo.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PhotoMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case photo.FieldReportID:
		return m.ReportID()
	case photo.FieldLocalPhotoID:
		return m.LocalPhotoID()
	case photo.FieldCaption:
		return m.Caption()
	case photo.FieldStorePath:
		return m.StorePath()
	case photo.FieldLatitude:
		return m.Latitude()
	case photo.FieldLongitude:
		return m.Longitude()
	case photo.FieldTakenAt:
		return m.TakenAt()
	case photo.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PhotoMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case photo.FieldReportID:
		return m.OldReportID(ctx)
	case photo.FieldLocalPhotoID:
		return m.OldLocalPhotoID(ctx)
	case photo.FieldCaption:
		return m.OldCaption(ctx)
	case photo.FieldStorePath:
		return m.OldStorePath(ctx)
	case photo.FieldLatitude:
		return m.OldLatitude(ctx)
	case photo.FieldLongitude:
		return m.OldLongitude(ctx)
	case photo.FieldTakenAt:
		return m.OldTakenAt(ctx)
	case photo.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Photo field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PhotoMutation) SetField(name string, value ent.Value) error {
	switch name {
	case photo.FieldReportID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case photo.FieldLocalPhotoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocalPhotoID(v)
		return nil
	case photo.FieldCaption:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaption(v)
		return nil
	case photo.FieldStorePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorePath(v)
		return nil
	case photo.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatitude(v)
		return nil
	case photo.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongitude(v)
		return nil
	case photo.FieldTakenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTakenAt(v)
		return nil
	case photo.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Photo field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PhotoMutation) AddedFields() []string {
	var fields []string
	if m.addlatitude != nil {
		fields = append(fields, photo.FieldLatitude)
	}
	if m.addlongitude != nil {
		fields = append(fields, photo.FieldLongitude)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PhotoMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case photo.FieldLatitude:
		return m.AddedLatitude()
	case photo.FieldLongitude:
		return m.AddedLongitude()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PhotoMutation) AddField(name string, value ent.Value) error {
	switch name {
	case photo.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatitude(v)
		return nil
	case photo.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLongitude(v)
		return nil
	}
	return fmt.Errorf("unknown Photo numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PhotoMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(photo.FieldCaption) {
		fields = append(fields, photo.FieldCaption)
	}
	if m.FieldCleared(photo.FieldStorePath) {
		fields = append(fields, photo.FieldStorePath)
	}
	if m.FieldCleared(photo.FieldLatitude) {
		fields = append(fields, photo.FieldLatitude)
	}
	if m.FieldCleared(photo.FieldLongitude) {
		fields = append(fields, photo.FieldLongitude)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PhotoMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PhotoMutation) ClearField(name string) error {
	switch name {
	case photo.FieldCaption:
		m.ClearCaption()
		return nil
	case photo.FieldStorePath:
		m.ClearStorePath()
		return nil
	case photo.FieldLatitude:
		m.ClearLatitude()
		return nil
	case photo.FieldLongitude:
		m.ClearLongitude()
		return nil
	}
	return fmt.Errorf("unknown Photo nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PhotoMutation) ResetField(name string) error {
	switch name {
	case photo.FieldReportID:
		m.ResetReportID()
		return nil
	case photo.FieldLocalPhotoID:
		m.ResetLocalPhotoID()
		return nil
	case photo.FieldCaption:
		m.ResetCaption()
		return nil
	case photo.FieldStorePath:
		m.ResetStorePath()
		return nil
	case photo.FieldLatitude:
		m.ResetLatitude()
		return nil
	case photo.FieldLongitude:
		m.ResetLongitude()
		return nil
	case photo.FieldTakenAt:
		m.ResetTakenAt()
		return nil
	case photo.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Photo field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PhotoMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.report != nil {
		edges = append(edges, photo.EdgeReport)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PhotoMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case photo.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PhotoMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PhotoMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PhotoMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreport {
		edges = append(edges, photo.EdgeReport)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PhotoMutation) EdgeCleared(name string) bool {
	switch name {
	case photo.EdgeReport:
		return m.clearedreport
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PhotoMutation) ClearEdge(name string) error {
	switch name {
	case photo.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown Photo unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PhotoMutation) ResetEdge(name string) error {
	switch name {
	case photo.EdgeReport:
		m.ResetReport()
		return nil
	}
	return fmt.Errorf("unknown Photo edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	name               *string
	status             *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	contractors        map[uuid.UUID]struct{}
	removedcontractors map[uuid.UUID]struct{}
	clearedcontractors bool
	reports            map[uuid.UUID]struct{}
	removedreports     map[uuid.UUID]struct{}
	clearedreports     bool
	done               bool
	oldValue           func(context.Context) (*Project, error)
	predicates         []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id uuid.UUID) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *ProjectMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ProjectMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProjectMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddContractorIDs adds the "contractors" edge to the Contractor entity by ids.
func (m *ProjectMutation) AddContractorIDs(ids ...uuid.UUID) {
	if m.contractors == nil {
		m.contractors = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.contractors[ids[i]] = struct{}{}
	}
}

// ClearContractors clears the "contractors" edge to the Contractor entity.
func (m *ProjectMutation) ClearContractors() {
	m.clearedcontractors = true
}

// ContractorsCleared reports if the "contractors" edge to the Contractor entity was cleared.
func (m *ProjectMutation) ContractorsCleared() bool {
	return m.clearedcontractors
}

// RemoveContractorIDs removes the "contractors" edge to the Contractor entity by IDs.
func (m *ProjectMutation) RemoveContractorIDs(ids ...uuid.UUID) {
	if m.removedcontractors == nil {
		m.removedcontractors = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.contractors, ids[i])
		m.removedcontractors[ids[i]] = struct{}{}
	}
}

// RemovedContractors returns the removed IDs of the "contractors" edge to the Contractor entity.
func (m *ProjectMutation) RemovedContractorsIDs() (ids []uuid.UUID) {
	for id := range m.removedcontractors {
		ids = append(ids, id)
	}
	return
}

// ContractorsIDs returns the "contractors" edge IDs in the mutation.
func (m *ProjectMutation) ContractorsIDs() (ids []uuid.UUID) {
	for id := range m.contractors {
		ids = append(ids, id)
	}
	return
}

// ResetContractors resets all changes to the "contractors" edge.
func (m *ProjectMutation) ResetContractors() {
	m.contractors = nil
	m.clearedcontractors = false
	m.removedcontractors = nil
}

// AddReportIDs adds the "reports" edge to the Report entity by ids.
func (m *ProjectMutation) AddReportIDs(ids ...uuid.UUID) {
	if m.reports == nil {
		m.reports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.reports[ids[i]] = struct{}{}
	}
}

// ClearReports clears the "reports" edge to the Report entity.
func (m *ProjectMutation) ClearReports() {
	m.clearedreports = true
}

// ReportsCleared reports if the "reports" edge to the Report entity was cleared.
func (m *ProjectMutation) ReportsCleared() bool {
	return m.clearedreports
}

// RemoveReportIDs removes the "reports" edge to the Report entity by IDs.
func (m *ProjectMutation) RemoveReportIDs(ids ...uuid.UUID) {
	if m.removedreports == nil {
		m.removedreports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.reports, ids[i])
		m.removedreports[ids[i]] = struct{}{}
	}
}

// RemovedReports returns the removed IDs of the "reports" edge to the Report entity.
func (m *ProjectMutation) RemovedReportsIDs() (ids []uuid.UUID) {
	for id := range m.removedreports {
		ids = append(ids, id)
	}
	return
}

// ReportsIDs returns the "reports" edge IDs in the mutation.
func (m *ProjectMutation) ReportsIDs() (ids []uuid.UUID) {
	for id := range m.reports {
		ids = append(ids, id)
	}
	return
}

// ResetReports resets all changes to the "reports" edge.
func (m *ProjectMutation) ResetReports() {
	m.reports = nil
	m.clearedreports = false
	m.removedreports = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.status != nil {
		fields = append(fields, project.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldStatus:
		return m.Status()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldStatus:
		return m.OldStatus(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldStatus:
		m.ResetStatus()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.contractors != nil {
		edges = append(edges, project.EdgeContractors)
	}
	if m.reports != nil {
		edges = append(edges, project.EdgeReports)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeContractors:
		ids := make([]ent.Value, 0, len(m.contractors))
		for id := range m.contractors {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeReports:
		ids := make([]ent.Value, 0, len(m.reports))
		for id := range m.reports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedcontractors != nil {
		edges = append(edges, project.EdgeContractors)
	}
	if m.removedreports != nil {
		edges = append(edges, project.EdgeReports)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeContractors:
		ids := make([]ent.Value, 0, len(m.removedcontractors))
		for id := range m.removedcontractors {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeReports:
		ids := make([]ent.Value, 0, len(m.removedreports))
		for id := range m.removedreports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcontractors {
		edges = append(edges, project.EdgeContractors)
	}
	if m.clearedreports {
		edges = append(edges, project.EdgeReports)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeContractors:
		return m.clearedcontractors
	case project.EdgeReports:
		return m.clearedreports
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeContractors:
		m.ResetContractors()
		return nil
	case project.EdgeReports:
		m.ResetReports()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// ReportMutation represents an operation that mutates the Report nodes in the graph.
type ReportMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	report_date    *time.Time
	status         *string
	capture_mode   *string
	device_id      *string
	original_input *map[string]interface{}
	ai_generated   *map[string]interface{}
	user_edits     *map[string]interface{}
	toggles        *map[string]interface{}
	created_at     *time.Time
	last_saved     *time.Time
	clearedFields  map[string]struct{}
	project        *uuid.UUID
	clearedproject bool
	entries        map[uuid.UUID]struct{}
	removedentries map[uuid.UUID]struct{}
	clearedentries bool
	photos         map[uuid.UUID]struct{}
	removedphotos  map[uuid.UUID]struct{}
	clearedphotos  bool
	done           bool
	oldValue       func(context.Context) (*Report, error)
	predicates     []predicate.Report
}

var _ ent.Mutation = (*ReportMutation)(nil)

// reportOption allows management of the mutation configuration using functional options.
type reportOption func(*ReportMutation)

// newReportMutation creates new mutation for the Report entity.
func newReportMutation(c config, op Op, opts ...reportOption) *ReportMutation {
	m := &ReportMutation{
		config:        c,
		op:            op,
		typ:           TypeReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportID sets the ID field of the mutation.
func withReportID(id uuid.UUID) reportOption {
	return func(m *ReportMutation) {
		var (
			err   error
			once  sync.Once
			value *Report
		)
		m.oldValue = func(ctx context.Context) (*Report, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Report.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReport sets the old Report of the mutation.
func withReport(node *Report) reportOption {
	return func(m *ReportMutation) {
		m.oldValue = func(context.Context) (*Report, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Report entities.
func (m *ReportMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Report.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *ReportMutation) SetProjectID(u uuid.UUID) {
	m.project = &u
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ReportMutation) ProjectID() (r uuid.UUID, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldProjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ReportMutation) ResetProjectID() {
	m.project = nil
}

// SetReportDate sets the "report_date" field.
func (m *ReportMutation) SetReportDate(t time.Time) {
	m.report_date = &t
}

// ReportDate returns the value of the "report_date" field in the mutation.
func (m *ReportMutation) ReportDate() (r time.Time, exists bool) {
	v := m.report_date
	if v == nil {
		return
	}
	return *v, true
}

// OldReportDate returns the old "report_date" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldReportDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportDate: %w", err)
	}
	return oldValue.ReportDate, nil
}

// ResetReportDate resets all changes to the "report_date" field.
func (m *ReportMutation) ResetReportDate() {
	m.report_date = nil
}

// SetStatus sets the "status" field.
func (m *ReportMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ReportMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ReportMutation) ResetStatus() {
	m.status = nil
}

// SetCaptureMode sets the "capture_mode" field.
func (m *ReportMutation) SetCaptureMode(s string) {
	m.capture_mode = &s
}

// CaptureMode returns the value of the "capture_mode" field in the mutation.
func (m *ReportMutation) CaptureMode() (r string, exists bool) {
	v := m.capture_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldCaptureMode returns the old "capture_mode" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCaptureMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaptureMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaptureMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaptureMode: %w", err)
	}
	return oldValue.CaptureMode, nil
}

// ResetCaptureMode resets all changes to the "capture_mode" field.
func (m *ReportMutation) ResetCaptureMode() {
	m.capture_mode = nil
}

// SetDeviceID sets the "device_id" field.
func (m *ReportMutation) SetDeviceID(s string) {
	m.device_id = &s
}

// DeviceID returns the value of the "device_id" field in the mutation.
func (m *ReportMutation) DeviceID() (r string, exists bool) {
	v := m.device_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceID returns the old "device_id" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldDeviceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceID: %w", err)
	}
	return oldValue.DeviceID, nil
}

// ResetDeviceID resets all changes to the "device_id" field.
func (m *ReportMutation) ResetDeviceID() {
	m.device_id = nil
}

// SetOriginalInput sets the "original_input" field.
func (m *ReportMutation) SetOriginalInput(value map[string]interface{}) {
	m.original_input = &value
}

// OriginalInput returns the value of the "original_input" field in the mutation.
func (m *ReportMutation) OriginalInput() (r map[string]interface{}, exists bool) {
	v := m.original_input
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalInput returns the old "original_input" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldOriginalInput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalInput: %w", err)
	}
	return oldValue.OriginalInput, nil
}

// ClearOriginalInput clears the value of the "original_input" field.
func (m *ReportMutation) ClearOriginalInput() {
	m.original_input = nil
	m.clearedFields[report.FieldOriginalInput] = struct{}{}
}

// OriginalInputCleared returns if the "original_input" field was cleared in this mutation.
func (m *ReportMutation) OriginalInputCleared() bool {
	_, ok := m.clearedFields[report.FieldOriginalInput]
	return ok
}

// ResetOriginalInput resets all changes to the "original_input" field.
func (m *ReportMutation) ResetOriginalInput() {
	m.original_input = nil
	delete(m.clearedFields, report.FieldOriginalInput)
}

// SetAiGenerated sets the "ai_generated" field.
func (m *ReportMutation) SetAiGenerated(value map[string]interface{}) {
	m.ai_generated = &value
}

// AiGenerated returns the value of the "ai_generated" field in the mutation.
func (m *ReportMutation) AiGenerated() (r map[string]interface{}, exists bool) {
	v := m.ai_generated
	if v == nil {
		return
	}
	return *v, true
}

// OldAiGenerated returns the old "ai_generated" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldAiGenerated(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiGenerated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiGenerated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiGenerated: %w", err)
	}
	return oldValue.AiGenerated, nil
}

// ClearAiGenerated clears the value of the "ai_generated" field.
func (m *ReportMutation) ClearAiGenerated() {
	m.ai_generated = nil
	m.clearedFields[report.FieldAiGenerated] = struct{}{}
}

// AiGeneratedCleared returns if the "ai_generated" field was cleared in this mutation.
func (m *ReportMutation) AiGeneratedCleared() bool {
	_, ok := m.clearedFields[report.FieldAiGenerated]
	return ok
}

// ResetAiGenerated resets all changes to the "ai_generated" field.
func (m *ReportMutation) ResetAiGenerated() {
	m.ai_generated = nil
	delete(m.clearedFields, report.FieldAiGenerated)
}

// SetUserEdits sets the "user_edits" field.
func (m *ReportMutation) SetUserEdits(value map[string]interface{}) {
	m.user_edits = &value
}

// UserEdits returns the value of the "user_edits" field in the mutation.
func (m *ReportMutation) UserEdits() (r map[string]interface{}, exists bool) {
	v := m.user_edits
	if v == nil {
		return
	}
	return *v, true
}

// OldUserEdits returns the old "user_edits" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldUserEdits(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserEdits is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserEdits requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserEdits: %w", err)
	}
	return oldValue.UserEdits, nil
}

// ClearUserEdits clears the value of the "user_edits" field.
func (m *ReportMutation) ClearUserEdits() {
	m.user_edits = nil
	m.clearedFields[report.FieldUserEdits] = struct{}{}
}

// UserEditsCleared returns if the "user_edits" field was cleared in this mutation.
func (m *ReportMutation) UserEditsCleared() bool {
	_, ok := m.clearedFields[report.FieldUserEdits]
	return ok
}

// ResetUserEdits resets all changes to the "user_edits" field.
func (m *ReportMutation) ResetUserEdits() {
	m.user_edits = nil
	delete(m.clearedFields, report.FieldUserEdits)
}

// SetToggles sets the "toggles" field.
func (m *ReportMutation) SetToggles(value map[string]interface{}) {
	m.toggles = &value
}

// Toggles returns the value of the "toggles" field in the mutation.
func (m *ReportMutation) Toggles() (r map[string]interface{}, exists bool) {
	v := m.toggles
	if v == nil {
		return
	}
	return *v, true
}

// OldToggles returns the old "toggles" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldToggles(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToggles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToggles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToggles: %w", err)
	}
	return oldValue.Toggles, nil
}

// ClearToggles clears the value of the "toggles" field.
func (m *ReportMutation) ClearToggles() {
	m.toggles = nil
	m.clearedFields[report.FieldToggles] = struct{}{}
}

// TogglesCleared returns if the "toggles" field was cleared in this mutation.
func (m *ReportMutation) TogglesCleared() bool {
	_, ok := m.clearedFields[report.FieldToggles]
	return ok
}

// ResetToggles resets all changes to the "toggles" field.
func (m *ReportMutation) ResetToggles() {
	m.toggles = nil
	delete(m.clearedFields, report.FieldToggles)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastSaved sets the "last_saved" field.
func (m *ReportMutation) SetLastSaved(t time.Time) {
	m.last_saved = &t
}

// LastSaved returns the value of the "last_saved" field in the mutation.
func (m *ReportMutation) LastSaved() (r time.Time, exists bool) {
	v := m.last_saved
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSaved returns the old "last_saved" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldLastSaved(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSaved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSaved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSaved: %w", err)
	}
	return oldValue.LastSaved, nil
}

// ResetLastSaved resets all changes to the "last_saved" field.
func (m *ReportMutation) ResetLastSaved() {
	m.last_saved = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ReportMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[report.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ReportMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ReportMutation) ProjectIDs() (ids []uuid.UUID) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ReportMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddEntryIDs adds the "entries" edge to the ReportEntry entity by ids.
func (m *ReportMutation) AddEntryIDs(ids ...uuid.UUID) {
	if m.entries == nil {
		m.entries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.entries[ids[i]] = struct{}{}
	}
}

// ClearEntries clears the "entries" edge to the ReportEntry entity.
func (m *ReportMutation) ClearEntries() {
	m.clearedentries = true
}

// EntriesCleared reports if the "entries" edge to the ReportEntry entity was cleared.
func (m *ReportMutation) EntriesCleared() bool {
	return m.clearedentries
}

// RemoveEntryIDs removes the "entries" edge to the ReportEntry entity by IDs.
func (m *ReportMutation) RemoveEntryIDs(ids ...uuid.UUID) {
	if m.removedentries == nil {
		m.removedentries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.entries, ids[i])
		m.removedentries[ids[i]] = struct{}{}
	}
}

// RemovedEntries returns the removed IDs of the "entries" edge to the ReportEntry entity.
func (m *ReportMutation) RemovedEntriesIDs() (ids []uuid.UUID) {
	for id := range m.removedentries {
		ids = append(ids, id)
	}
	return
}

// EntriesIDs returns the "entries" edge IDs in the mutation.
func (m *ReportMutation) EntriesIDs() (ids []uuid.UUID) {
	for id := range m.entries {
		ids = append(ids, id)
	}
	return
}

// ResetEntries resets all changes to the "entries" edge.
func (m *ReportMutation) ResetEntries() {
	m.entries = nil
	m.clearedentries = false
	m.removedentries = nil
}

// AddPhotoIDs adds the "photos" edge to the Photo entity by ids.
func (m *ReportMutation) AddPhotoIDs(ids ...uuid.UUID) {
	if m.photos == nil {
		m.photos = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.photos[ids[i]] = struct{}{}
	}
}

// ClearPhotos clears the "photos" edge to the Photo entity.
func (m *ReportMutation) ClearPhotos() {
	m.clearedphotos = true
}

// PhotosCleared reports if the "photos" edge to the Photo entity was cleared.
func (m *ReportMutation) PhotosCleared() bool {
	return m.clearedphotos
}

// RemovePhotoIDs removes the "photos" edge to the Photo entity by IDs.
func (m *ReportMutation) RemovePhotoIDs(ids ...uuid.UUID) {
	if m.removedphotos == nil {
		m.removedphotos = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.photos, ids[i])
		m.removedphotos[ids[i]] = struct{}{}
	}
}

// RemovedPhotos returns the removed IDs of the "photos" edge to the Photo entity.
func (m *ReportMutation) RemovedPhotosIDs() (ids []uuid.UUID) {
	for id := range m.removedphotos {
		ids = append(ids, id)
	}
	return
}

// PhotosIDs returns the "photos" edge IDs in the mutation.
func (m *ReportMutation) PhotosIDs() (ids []uuid.UUID) {
	for id := range m.photos {
		ids = append(ids, id)
	}
	return
}

// ResetPhotos resets all changes to the "photos" edge.
func (m *ReportMutation) ResetPhotos() {
	m.photos = nil
	m.clearedphotos = false
	m.removedphotos = nil
}

// Where appends a list predicates to the ReportMutation builder.
func (m *ReportMutation) Where(ps ...predicate.Report) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Report, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Report).
func (m *ReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.project != nil {
		fields = append(fields, report.FieldProjectID)
	}
	if m.report_date != nil {
		fields = append(fields, report.FieldReportDate)
	}
	if m.status != nil {
		fields = append(fields, report.FieldStatus)
	}
	if m.capture_mode != nil {
		fields = append(fields, report.FieldCaptureMode)
	}
	if m.device_id != nil {
		fields = append(fields, report.FieldDeviceID)
	}
	if m.original_input != nil {
		fields = append(fields, report.FieldOriginalInput)
	}
	if m.ai_generated != nil {
		fields = append(fields, report.FieldAiGenerated)
	}
	if m.user_edits != nil {
		fields = append(fields, report.FieldUserEdits)
	}
	if m.toggles != nil {
		fields = append(fields, report.FieldToggles)
	}
	if m.created_at != nil {
		fields = append(fields, report.FieldCreatedAt)
	}
	if m.last_saved != nil {
		fields = append(fields, report.FieldLastSaved)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case report.FieldProjectID:
		return m.ProjectID()
	case report.FieldReportDate:
		return m.ReportDate()
	case report.FieldStatus:
		return m.Status()
	case report.FieldCaptureMode:
		return m.CaptureMode()
	case report.FieldDeviceID:
		return m.DeviceID()
	case report.FieldOriginalInput:
		return m.OriginalInput()
	case report.FieldAiGenerated:
		return m.AiGenerated()
	case report.FieldUserEdits:
		return m.UserEdits()
	case report.FieldToggles:
		return m.Toggles()
	case report.FieldCreatedAt:
		return m.CreatedAt()
	case report.FieldLastSaved:
		return m.LastSaved()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case report.FieldProjectID:
		return m.OldProjectID(ctx)
	case report.FieldReportDate:
		return m.OldReportDate(ctx)
	case report.FieldStatus:
		return m.OldStatus(ctx)
	case report.FieldCaptureMode:
		return m.OldCaptureMode(ctx)
	case report.FieldDeviceID:
		return m.OldDeviceID(ctx)
	case report.FieldOriginalInput:
		return m.OldOriginalInput(ctx)
	case report.FieldAiGenerated:
		return m.OldAiGenerated(ctx)
	case report.FieldUserEdits:
		return m.OldUserEdits(ctx)
	case report.FieldToggles:
		return m.OldToggles(ctx)
	case report.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case report.FieldLastSaved:
		return m.OldLastSaved(ctx)
	}
	return nil, fmt.Errorf("unknown Report field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case report.FieldProjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case report.FieldReportDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportDate(v)
		return nil
	case report.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case report.FieldCaptureMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaptureMode(v)
		return nil
	case report.FieldDeviceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceID(v)
		return nil
	case report.FieldOriginalInput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalInput(v)
		return nil
	case report.FieldAiGenerated:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiGenerated(v)
		return nil
	case report.FieldUserEdits:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserEdits(v)
		return nil
	case report.FieldToggles:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToggles(v)
		return nil
	case report.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case report.FieldLastSaved:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSaved(v)
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Report numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(report.FieldOriginalInput) {
		fields = append(fields, report.FieldOriginalInput)
	}
	if m.FieldCleared(report.FieldAiGenerated) {
		fields = append(fields, report.FieldAiGenerated)
	}
	if m.FieldCleared(report.FieldUserEdits) {
		fields = append(fields, report.FieldUserEdits)
	}
	if m.FieldCleared(report.FieldToggles) {
		fields = append(fields, report.FieldToggles)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportMutation) ClearField(name string) error {
	switch name {
	case report.FieldOriginalInput:
		m.ClearOriginalInput()
		return nil
	case report.FieldAiGenerated:
		m.ClearAiGenerated()
		return nil
	case report.FieldUserEdits:
		m.ClearUserEdits()
		return nil
	case report.FieldToggles:
		m.ClearToggles()
		return nil
	}
	return fmt.Errorf("unknown Report nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportMutation) ResetField(name string) error {
	switch name {
	case report.FieldProjectID:
		m.ResetProjectID()
		return nil
	case report.FieldReportDate:
		m.ResetReportDate()
		return nil
	case report.FieldStatus:
		m.ResetStatus()
		return nil
	case report.FieldCaptureMode:
		m.ResetCaptureMode()
		return nil
	case report.FieldDeviceID:
		m.ResetDeviceID()
		return nil
	case report.FieldOriginalInput:
		m.ResetOriginalInput()
		return nil
	case report.FieldAiGenerated:
		m.ResetAiGenerated()
		return nil
	case report.FieldUserEdits:
		m.ResetUserEdits()
		return nil
	case report.FieldToggles:
		m.ResetToggles()
		return nil
	case report.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case report.FieldLastSaved:
		m.ResetLastSaved()
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.project != nil {
		edges = append(edges, report.EdgeProject)
	}
	if m.entries != nil {
		edges = append(edges, report.EdgeEntries)
	}
	if m.photos != nil {
		edges = append(edges, report.EdgePhotos)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case report.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.entries))
		for id := range m.entries {
			ids = append(ids, id)
		}
		return ids
	case report.EdgePhotos:
		ids := make([]ent.Value, 0, len(m.photos))
		for id := range m.photos {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedentries != nil {
		edges = append(edges, report.EdgeEntries)
	}
	if m.removedphotos != nil {
		edges = append(edges, report.EdgePhotos)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.removedentries))
		for id := range m.removedentries {
			ids = append(ids, id)
		}
		return ids
	case report.EdgePhotos:
		ids := make([]ent.Value, 0, len(m.removedphotos))
		for id := range m.removedphotos {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedproject {
		edges = append(edges, report.EdgeProject)
	}
	if m.clearedentries {
		edges = append(edges, report.EdgeEntries)
	}
	if m.clearedphotos {
		edges = append(edges, report.EdgePhotos)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportMutation) EdgeCleared(name string) bool {
	switch name {
	case report.EdgeProject:
		return m.clearedproject
	case report.EdgeEntries:
		return m.clearedentries
	case report.EdgePhotos:
		return m.clearedphotos
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportMutation) ClearEdge(name string) error {
	switch name {
	case report.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Report unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportMutation) ResetEdge(name string) error {
	switch name {
	case report.EdgeProject:
		m.ResetProject()
		return nil
	case report.EdgeEntries:
		m.ResetEntries()
		return nil
	case report.EdgePhotos:
		m.ResetPhotos()
		return nil
	}
	return fmt.Errorf("unknown Report edge %s", name)
}

// ReportEntryMutation represents an operation that mutates the ReportEntry nodes in the graph.
type ReportEntryMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	local_entry_id  *string
	section         *string
	body            *string
	contractor_id   *uuid.UUID
	contractor_name *string
	captured_at     *time.Time
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	report          *uuid.UUID
	clearedreport   bool
	done            bool
	oldValue        func(context.Context) (*ReportEntry, error)
	predicates      []predicate.ReportEntry
}

var _ ent.Mutation = (*ReportEntryMutation)(nil)

// reportentryOption allows management of the mutation configuration using functional options.
type reportentryOption func(*ReportEntryMutation)

// newReportEntryMutation creates new mutation for the ReportEntry entity.
func newReportEntryMutation(c config, op Op, opts ...reportentryOption) *ReportEntryMutation {
	m := &ReportEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeReportEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportEntryID sets the ID field of the mutation.
func withReportEntryID(id uuid.UUID) reportentryOption {
	return func(m *ReportEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *ReportEntry
		)
		m.oldValue = func(ctx context.Context) (*ReportEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReportEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReportEntry sets the old ReportEntry of the mutation.
func withReportEntry(node *ReportEntry) reportentryOption {
	return func(m *ReportEntryMutation) {
		m.oldValue = func(context.Context) (*ReportEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReportEntry entities.
func (m *ReportEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReportEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *ReportEntryMutation) SetReportID(u uuid.UUID) {
	m.report = &u
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *ReportEntryMutation) ReportID() (r uuid.UUID, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the ReportEntry entity.
// If the ReportEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportEntryMutation) OldReportID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *ReportEntryMutation) ResetReportID() {
	m.report = nil
}

// SetLocalEntryID sets the "local_entry_id" field.
func (m *ReportEntryMutation) SetLocalEntryID(s string) {
	m.local_entry_id = &s
}

// LocalEntryID returns the value of the "local_entry_id" field in the mutation.
func (m *ReportEntryMutation) LocalEntryID() (r string, exists bool) {
	v := m.local_entry_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLocalEntryID returns the old "local_entry_id" field's value of the ReportEntry entity.
// If the ReportEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportEntryMutation) OldLocalEntryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocalEntryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocalEntryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocalEntryID: %w", err)
	}
	return oldValue.LocalEntryID, nil
}

// ResetLocalEntryID resets all changes to the "local_entry_id" field.
func (m *ReportEntryMutation) ResetLocalEntryID() {
	m.local_entry_id = nil
}

// SetSection sets the "section" field.
func (m *ReportEntryMutation) SetSection(s string) {
	m.section = &s
}

// Section returns the value of the "section" field in the mutation.
func (m *ReportEntryMutation) Section() (r string, exists bool) {
	v := m.section
	if v == nil {
		return
	}
	return *v, true
}

// OldSection returns the old "section" field's value of the ReportEntry entity.
// If the ReportEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportEntryMutation) OldSection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSection: %w", err)
	}
	return oldValue.Section, nil
}

// ResetSection resets all changes to the "section" field.
func (m *ReportEntryMutation) ResetSection() {
	m.section = nil
}

// SetBody sets the "body" field.
func (m *ReportEntryMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *ReportEntryMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the ReportEntry entity.
// If the ReportEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportEntryMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *ReportEntryMutation) ResetBody() {
	m.body = nil
}

// SetContractorID sets the "contractor_id" field.
func (m *ReportEntryMutation) SetContractorID(u uuid.UUID) {
	m.contractor_id = &u
}

// ContractorID returns the value of the "contractor_id" field in the mutation.
func (m *ReportEntryMutation) ContractorID() (r uuid.UUID, exists bool) {
	v := m.contractor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContractorID returns the old "contractor_id" field's value of the ReportEntry entity.
// If the ReportEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportEntryMutation) OldContractorID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractorID: %w", err)
	}
	return oldValue.ContractorID, nil
}

// ClearContractorID clears the value of the "contractor_id" field.
func (m *ReportEntryMutation) ClearContractorID() {
	m.contractor_id = nil
	m.clearedFields[reportentry.FieldContractorID] = struct{}{}
}

// ContractorIDCleared returns if the "contractor_id" field was cleared in this mutation.
func (m *ReportEntryMutation) ContractorIDCleared() bool {
	_, ok := m.clearedFields[reportentry.FieldContractorID]
	return ok
}

// ResetContractorID resets all changes to the "contractor_id" field.
func (m *ReportEntryMutation) ResetContractorID() {
	m.contractor_id = nil
	delete(m.clearedFields, reportentry.FieldContractorID)
}

// SetContractorName sets the "contractor_name" field.
func (m *ReportEntryMutation) SetContractorName(s string) {
	m.contractor_name = &s
}

// ContractorName returns the value of the "contractor_name" field in the mutation.
func (m *ReportEntryMutation) ContractorName() (r string, exists bool) {
	v := m.contractor_name
	if v == nil {
		return
	}
	return *v, true
}

// OldContractorName returns the old "contractor_name" field's value of the ReportEntry entity.
// If the ReportEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportEntryMutation) OldContractorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractorName: %w", err)
	}
	return oldValue.ContractorName, nil
}

// ClearContractorName clears the value of the "contractor_name" field.
func (m *ReportEntryMutation) ClearContractorName() {
	m.contractor_name = nil
	m.clearedFields[reportentry.FieldContractorName] = struct{}{}
}

// ContractorNameCleared returns if the "contractor_name" field was cleared in this mutation.
func (m *ReportEntryMutation) ContractorNameCleared() bool {
	_, ok := m.clearedFields[reportentry.FieldContractorName]
	return ok
}

// ResetContractorName resets all changes to the "contractor_name" field.
func (m *ReportEntryMutation) ResetContractorName() {
	m.contractor_name = nil
	delete(m.clearedFields, reportentry.FieldContractorName)
}

// SetCapturedAt sets the "captured_at" field.
func (m *ReportEntryMutation) SetCapturedAt(t time.Time) {
	m.captured_at = &t
}

// CapturedAt returns the value of the "captured_at" field in the mutation.
func (m *ReportEntryMutation) CapturedAt() (r time.Time, exists bool) {
	v := m.captured_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCapturedAt returns the old "captured_at" field's value of the ReportEntry entity.
// If the ReportEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportEntryMutation) OldCapturedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapturedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapturedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapturedAt: %w", err)
	}
	return oldValue.CapturedAt, nil
}

// ResetCapturedAt resets all changes to the "captured_at" field.
func (m *ReportEntryMutation) ResetCapturedAt() {
	m.captured_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReportEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReportEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReportEntry entity.
// If the ReportEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReportEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReportEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReportEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ReportEntry entity.
// If the ReportEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReportEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearReport clears the "report" edge to the Report entity.
func (m *ReportEntryMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[reportentry.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *ReportEntryMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *ReportEntryMutation) ReportIDs() (ids []uuid.UUID) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *ReportEntryMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// Where appends a list predicates to the ReportEntryMutation builder.
func (m *ReportEntryMutation) Where(ps ...predicate.ReportEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReportEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReportEntry).
func (m *ReportEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportEntryMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.report != nil {
		fields = append(fields, reportentry.FieldReportID)
	}
	if m.local_entry_id != nil {
		fields = append(fields, reportentry.FieldLocalEntryID)
	}
	if m.section != nil {
		fields = append(fields, reportentry.FieldSection)
	}
	if m.body != nil {
		fields = append(fields, reportentry.FieldBody)
	}
	if m.contractor_id != nil {
		fields = append(fields, reportentry.FieldContractorID)
	}
	if m.contractor_name != nil {
		fields = append(fields, reportentry.FieldContractorName)
	}
	if m.captured_at != nil {
		fields = append(fields, reportentry.FieldCapturedAt)
	}
	if m.created_at != nil {
		fields = append(fields, reportentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, reportentry.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reportentry.FieldReportID:
		return m.ReportID()
	case reportentry.FieldLocalEntryID:
		return m.LocalEntryID()
	case reportentry.FieldSection:
		return m.Section()
	case reportentry.FieldBody:
		return m.Body()
	case reportentry.FieldContractorID:
		return m.ContractorID()
	case reportentry.FieldContractorName:
		return m.ContractorName()
	case reportentry.FieldCapturedAt:
		return m.CapturedAt()
	case reportentry.FieldCreatedAt:
		return m.CreatedAt()
	case reportentry.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reportentry.FieldReportID:
		return m.OldReportID(ctx)
	case reportentry.FieldLocalEntryID:
		return m.OldLocalEntryID(ctx)
	case reportentry.FieldSection:
		return m.OldSection(ctx)
	case reportentry.FieldBody:
		return m.OldBody(ctx)
	case reportentry.FieldContractorID:
		return m.OldContractorID(ctx)
	case reportentry.FieldContractorName:
		return m.OldContractorName(ctx)
	case reportentry.FieldCapturedAt:
		return m.OldCapturedAt(ctx)
	case reportentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case reportentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReportEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reportentry.FieldReportID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case reportentry.FieldLocalEntryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocalEntryID(v)
		return nil
	case reportentry.FieldSection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSection(v)
		return nil
	case reportentry.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case reportentry.FieldContractorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractorID(v)
		return nil
	case reportentry.FieldContractorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractorName(v)
		return nil
	case reportentry.FieldCapturedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapturedAt(v)
		return nil
	case reportentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case reportentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReportEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ReportEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reportentry.FieldContractorID) {
		fields = append(fields, reportentry.FieldContractorID)
	}
	if m.FieldCleared(reportentry.FieldContractorName) {
		fields = append(fields, reportentry.FieldContractorName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportEntryMutation) ClearField(name string) error {
	switch name {
	case reportentry.FieldContractorID:
		m.ClearContractorID()
		return nil
	case reportentry.FieldContractorName:
		m.ClearContractorName()
		return nil
	}
	return fmt.Errorf("unknown ReportEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportEntryMutation) ResetField(name string) error {
	switch name {
	case reportentry.FieldReportID:
		m.ResetReportID()
		return nil
	case reportentry.FieldLocalEntryID:
		m.ResetLocalEntryID()
		return nil
	case reportentry.FieldSection:
		m.ResetSection()
		return nil
	case reportentry.FieldBody:
		m.ResetBody()
		return nil
	case reportentry.FieldContractorID:
		m.ResetContractorID()
		return nil
	case reportentry.FieldContractorName:
		m.ResetContractorName()
		return nil
	case reportentry.FieldCapturedAt:
		m.ResetCapturedAt()
		return nil
	case reportentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case reportentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ReportEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.report != nil {
		edges = append(edges, reportentry.EdgeReport)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case reportentry.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreport {
		edges = append(edges, reportentry.EdgeReport)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case reportentry.EdgeReport:
		return m.clearedreport
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportEntryMutation) ClearEdge(name string) error {
	switch name {
	case reportentry.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown ReportEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportEntryMutation) ResetEdge(name string) error {
	switch name {
	case reportentry.EdgeReport:
		m.ResetReport()
		return nil
	}
	return fmt.Errorf("unknown ReportEntry edge %s", name)
}

// ReportRawCaptureMutation represents an operation that mutates the ReportRawCapture nodes in the graph.
type ReportRawCaptureMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	report_id     *uuid.UUID
	capture_mode  *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ReportRawCapture, error)
	predicates    []predicate.ReportRawCapture
}

var _ ent.Mutation = (*ReportRawCaptureMutation)(nil)

// reportrawcaptureOption allows management of the mutation configuration using functional options.
type reportrawcaptureOption func(*ReportRawCaptureMutation)

// newReportRawCaptureMutation creates new mutation for the ReportRawCapture entity.
func newReportRawCaptureMutation(c config, op Op, opts ...reportrawcaptureOption) *ReportRawCaptureMutation {
	m := &ReportRawCaptureMutation{
		config:        c,
		op:            op,
		typ:           TypeReportRawCapture,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportRawCaptureID sets the ID field of the mutation.
func withReportRawCaptureID(id uuid.UUID) reportrawcaptureOption {
	return func(m *ReportRawCaptureMutation) {
		var (
			err   error
			once  sync.Once
			value *ReportRawCapture
		)
		m.oldValue = func(ctx context.Context) (*ReportRawCapture, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReportRawCapture.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReportRawCapture sets the old ReportRawCapture of the mutation.
func withReportRawCapture(node *ReportRawCapture) reportrawcaptureOption {
	return func(m *ReportRawCaptureMutation) {
		m.oldValue = func(context.Context) (*ReportRawCapture, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportRawCaptureMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportRawCaptureMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReportRawCapture entities.
func (m *ReportRawCaptureMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportRawCaptureMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportRawCaptureMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReportRawCapture.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *ReportRawCaptureMutation) SetReportID(u uuid.UUID) {
	m.report_id = &u
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *ReportRawCaptureMutation) ReportID() (r uuid.UUID, exists bool) {
	v := m.report_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the ReportRawCapture entity.
// If the ReportRawCapture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportRawCaptureMutation) OldReportID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *ReportRawCaptureMutation) ResetReportID() {
	m.report_id = nil
}

// SetCaptureMode sets the "capture_mode" field.
func (m *ReportRawCaptureMutation) SetCaptureMode(s string) {
	m.capture_mode = &s
}

// CaptureMode returns the value of the "capture_mode" field in the mutation.
func (m *ReportRawCaptureMutation) CaptureMode() (r string, exists bool) {
	v := m.capture_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldCaptureMode returns the old "capture_mode" field's value of the ReportRawCapture entity.
// If the ReportRawCapture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportRawCaptureMutation) OldCaptureMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaptureMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaptureMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaptureMode: %w", err)
	}
	return oldValue.CaptureMode, nil
}

// ResetCaptureMode resets all changes to the "capture_mode" field.
func (m *ReportRawCaptureMutation) ResetCaptureMode() {
	m.capture_mode = nil
}

// SetPayload sets the "payload" field.
func (m *ReportRawCaptureMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *ReportRawCaptureMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the ReportRawCapture entity.
// If the ReportRawCapture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportRawCaptureMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *ReportRawCaptureMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReportRawCaptureMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReportRawCaptureMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReportRawCapture entity.
// If the ReportRawCapture object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportRawCaptureMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReportRawCaptureMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ReportRawCaptureMutation builder.
func (m *ReportRawCaptureMutation) Where(ps ...predicate.ReportRawCapture) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportRawCaptureMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportRawCaptureMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReportRawCapture, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportRawCaptureMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportRawCaptureMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReportRawCapture).
func (m *ReportRawCaptureMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportRawCaptureMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.report_id != nil {
		fields = append(fields, reportrawcapture.FieldReportID)
	}
	if m.capture_mode != nil {
		fields = append(fields, reportrawcapture.FieldCaptureMode)
	}
	if m.payload != nil {
		fields = append(fields, reportrawcapture.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, reportrawcapture.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportRawCaptureMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reportrawcapture.FieldReportID:
		return m.ReportID()
	case reportrawcapture.FieldCaptureMode:
		return m.CaptureMode()
	case reportrawcapture.FieldPayload:
		return m.Payload()
	case reportrawcapture.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportRawCaptureMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reportrawcapture.FieldReportID:
		return m.OldReportID(ctx)
	case reportrawcapture.FieldCaptureMode:
		return m.OldCaptureMode(ctx)
	case reportrawcapture.FieldPayload:
		return m.OldPayload(ctx)
	case reportrawcapture.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReportRawCapture field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportRawCaptureMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reportrawcapture.FieldReportID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case reportrawcapture.FieldCaptureMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaptureMode(v)
		return nil
	case reportrawcapture.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case reportrawcapture.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReportRawCapture field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportRawCaptureMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportRawCaptureMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportRawCaptureMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ReportRawCapture numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportRawCaptureMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportRawCaptureMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportRawCaptureMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReportRawCapture nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportRawCaptureMutation) ResetField(name string) error {
	switch name {
	case reportrawcapture.FieldReportID:
		m.ResetReportID()
		return nil
	case reportrawcapture.FieldCaptureMode:
		m.ResetCaptureMode()
		return nil
	case reportrawcapture.FieldPayload:
		m.ResetPayload()
		return nil
	case reportrawcapture.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ReportRawCapture field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportRawCaptureMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportRawCaptureMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportRawCaptureMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportRawCaptureMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportRawCaptureMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportRawCaptureMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportRawCaptureMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReportRawCapture unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportRawCaptureMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReportRawCapture edge %s", name)
}

// UserProfileMutation represents an operation that mutates the UserProfile nodes in the graph.
type UserProfileMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	device_id     *string
	display_name  *string
	company       *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*UserProfile, error)
	predicates    []predicate.UserProfile
}

var _ ent.Mutation = (*UserProfileMutation)(nil)

// userprofileOption allows management of the mutation configuration using functional options.
type userprofileOption func(*UserProfileMutation)

// newUserProfileMutation creates new mutation for the UserProfile entity.
func newUserProfileMutation(c config, op Op, opts ...userprofileOption) *UserProfileMutation {
	m := &UserProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeUserProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserProfileID sets the ID field of the mutation.
func withUserProfileID(id uuid.UUID) userprofileOption {
	return func(m *UserProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *UserProfile
		)
		m.oldValue = func(ctx context.Context) (*UserProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserProfile sets the old UserProfile of the mutation.
func withUserProfile(node *UserProfile) userprofileOption {
	return func(m *UserProfileMutation) {
		m.oldValue = func(context.Context) (*UserProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserProfile entities.
func (m *UserProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeviceID sets the "device_id" field.
func (m *UserProfileMutation) SetDeviceID(s string) {
	m.device_id = &s
}

// DeviceID returns the value of the "device_id" field in the mutation.
func (m *UserProfileMutation) DeviceID() (r string, exists bool) {
	v := m.device_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeviceID returns the old "device_id" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldDeviceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeviceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeviceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeviceID: %w", err)
	}
	return oldValue.DeviceID, nil
}

// ResetDeviceID resets all changes to the "device_id" field.
func (m *UserProfileMutation) ResetDeviceID() {
	m.device_id = nil
}

// SetDisplayName sets the "display_name" field.
func (m *UserProfileMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *UserProfileMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *UserProfileMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetCompany sets the "company" field.
func (m *UserProfileMutation) SetCompany(s string) {
	m.company = &s
}

// Company returns the value of the "company" field in the mutation.
func (m *UserProfileMutation) Company() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompany returns the old "company" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldCompany(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompany is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompany requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompany: %w", err)
	}
	return oldValue.Company, nil
}

// ClearCompany clears the value of the "company" field.
func (m *UserProfileMutation) ClearCompany() {
	m.company = nil
	m.clearedFields[userprofile.FieldCompany] = struct{}{}
}

// CompanyCleared returns if the "company" field was cleared in this mutation.
func (m *UserProfileMutation) CompanyCleared() bool {
	_, ok := m.clearedFields[userprofile.FieldCompany]
	return ok
}

// ResetCompany resets all changes to the "company" field.
func (m *UserProfileMutation) ResetCompany() {
	m.company = nil
	delete(m.clearedFields, userprofile.FieldCompany)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UserProfileMutation builder.
func (m *UserProfileMutation) Where(ps ...predicate.UserProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserProfile).
func (m *UserProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserProfileMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.device_id != nil {
		fields = append(fields, userprofile.FieldDeviceID)
	}
	if m.display_name != nil {
		fields = append(fields, userprofile.FieldDisplayName)
	}
	if m.company != nil {
		fields = append(fields, userprofile.FieldCompany)
	}
	if m.created_at != nil {
		fields = append(fields, userprofile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, userprofile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userprofile.FieldDeviceID:
		return m.DeviceID()
	case userprofile.FieldDisplayName:
		return m.DisplayName()
	case userprofile.FieldCompany:
		return m.Company()
	case userprofile.FieldCreatedAt:
		return m.CreatedAt()
	case userprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userprofile.FieldDeviceID:
		return m.OldDeviceID(ctx)
	case userprofile.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case userprofile.FieldCompany:
		return m.OldCompany(ctx)
	case userprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case userprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userprofile.FieldDeviceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeviceID(v)
		return nil
	case userprofile.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case userprofile.FieldCompany:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompany(v)
		return nil
	case userprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case userprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(userprofile.FieldCompany) {
		fields = append(fields, userprofile.FieldCompany)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserProfileMutation) ClearField(name string) error {
	switch name {
	case userprofile.FieldCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown UserProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserProfileMutation) ResetField(name string) error {
	switch name {
	case userprofile.FieldDeviceID:
		m.ResetDeviceID()
		return nil
	case userprofile.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case userprofile.FieldCompany:
		m.ResetCompany()
		return nil
	case userprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case userprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserProfile edge %s", name)
}
