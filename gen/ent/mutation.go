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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/telbill/invoice-pipeline/gen/ent/auditlog"
	"github.com/telbill/invoice-pipeline/gen/ent/category"
	"github.com/telbill/invoice-pipeline/gen/ent/invoiceimport"
	"github.com/telbill/invoice-pipeline/gen/ent/predicate"
	"github.com/telbill/invoice-pipeline/gen/ent/report"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditLog      = "AuditLog"
	TypeCategory      = "Category"
	TypeInvoiceImport = "InvoiceImport"
	TypeReport        = "Report"
)

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	actor         *string
	action        *string
	entity        *string
	entity_id     *string
	before_state  *map[string]interface{}
	after_state   *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditLog, error)
	predicates    []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id uuid.UUID) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetActor sets the "actor" field.
func (m *AuditLogMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *AuditLogMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ClearActor clears the value of the "actor" field.
func (m *AuditLogMutation) ClearActor() {
	m.actor = nil
	m.clearedFields[auditlog.FieldActor] = struct{}{}
}

// ActorCleared returns if the "actor" field was cleared in this mutation.
func (m *AuditLogMutation) ActorCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldActor]
	return ok
}

// ResetActor resets all changes to the "actor" field.
func (m *AuditLogMutation) ResetActor() {
	m.actor = nil
	delete(m.clearedFields, auditlog.FieldActor)
}

// SetAction sets the "action" field.
func (m *AuditLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditLogMutation) ResetAction() {
	m.action = nil
}

// SetEntity sets the "entity" field.
func (m *AuditLogMutation) SetEntity(s string) {
	m.entity = &s
}

// Entity returns the value of the "entity" field in the mutation.
func (m *AuditLogMutation) Entity() (r string, exists bool) {
	v := m.entity
	if v == nil {
		return
	}
	return *v, true
}

// OldEntity returns the old "entity" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldEntity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntity: %w", err)
	}
	return oldValue.Entity, nil
}

// ResetEntity resets all changes to the "entity" field.
func (m *AuditLogMutation) ResetEntity() {
	m.entity = nil
}

// SetEntityID sets the "entity_id" field.
func (m *AuditLogMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *AuditLogMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ClearEntityID clears the value of the "entity_id" field.
func (m *AuditLogMutation) ClearEntityID() {
	m.entity_id = nil
	m.clearedFields[auditlog.FieldEntityID] = struct{}{}
}

// EntityIDCleared returns if the "entity_id" field was cleared in this mutation.
func (m *AuditLogMutation) EntityIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldEntityID]
	return ok
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *AuditLogMutation) ResetEntityID() {
	m.entity_id = nil
	delete(m.clearedFields, auditlog.FieldEntityID)
}

// SetBeforeState sets the "before_state" field.
func (m *AuditLogMutation) SetBeforeState(value map[string]interface{}) {
	m.before_state = &value
}

// BeforeState returns the value of the "before_state" field in the mutation.
func (m *AuditLogMutation) BeforeState() (r map[string]interface{}, exists bool) {
	v := m.before_state
	if v == nil {
		return
	}
	return *v, true
}

// OldBeforeState returns the old "before_state" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldBeforeState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBeforeState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBeforeState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBeforeState: %w", err)
	}
	return oldValue.BeforeState, nil
}

// ClearBeforeState clears the value of the "before_state" field.
func (m *AuditLogMutation) ClearBeforeState() {
	m.before_state = nil
	m.clearedFields[auditlog.FieldBeforeState] = struct{}{}
}

// BeforeStateCleared returns if the "before_state" field was cleared in this mutation.
func (m *AuditLogMutation) BeforeStateCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldBeforeState]
	return ok
}

// ResetBeforeState resets all changes to the "before_state" field.
func (m *AuditLogMutation) ResetBeforeState() {
	m.before_state = nil
	delete(m.clearedFields, auditlog.FieldBeforeState)
}

// SetAfterState sets the "after_state" field.
func (m *AuditLogMutation) SetAfterState(value map[string]interface{}) {
	m.after_state = &value
}

// AfterState returns the value of the "after_state" field in the mutation.
func (m *AuditLogMutation) AfterState() (r map[string]interface{}, exists bool) {
	v := m.after_state
	if v == nil {
		return
	}
	return *v, true
}

// OldAfterState returns the old "after_state" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAfterState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAfterState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAfterState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAfterState: %w", err)
	}
	return oldValue.AfterState, nil
}

// ClearAfterState clears the value of the "after_state" field.
func (m *AuditLogMutation) ClearAfterState() {
	m.after_state = nil
	m.clearedFields[auditlog.FieldAfterState] = struct{}{}
}

// AfterStateCleared returns if the "after_state" field was cleared in this mutation.
func (m *AuditLogMutation) AfterStateCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldAfterState]
	return ok
}

// ResetAfterState resets all changes to the "after_state" field.
func (m *AuditLogMutation) ResetAfterState() {
	m.after_state = nil
	delete(m.clearedFields, auditlog.FieldAfterState)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.actor != nil {
		fields = append(fields, auditlog.FieldActor)
	}
	if m.action != nil {
		fields = append(fields, auditlog.FieldAction)
	}
	if m.entity != nil {
		fields = append(fields, auditlog.FieldEntity)
	}
	if m.entity_id != nil {
		fields = append(fields, auditlog.FieldEntityID)
	}
	if m.before_state != nil {
		fields = append(fields, auditlog.FieldBeforeState)
	}
	if m.after_state != nil {
		fields = append(fields, auditlog.FieldAfterState)
	}
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldActor:
		return m.Actor()
	case auditlog.FieldAction:
		return m.Action()
	case auditlog.FieldEntity:
		return m.Entity()
	case auditlog.FieldEntityID:
		return m.EntityID()
	case auditlog.FieldBeforeState:
		return m.BeforeState()
	case auditlog.FieldAfterState:
		return m.AfterState()
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldActor:
		return m.OldActor(ctx)
	case auditlog.FieldAction:
		return m.OldAction(ctx)
	case auditlog.FieldEntity:
		return m.OldEntity(ctx)
	case auditlog.FieldEntityID:
		return m.OldEntityID(ctx)
	case auditlog.FieldBeforeState:
		return m.OldBeforeState(ctx)
	case auditlog.FieldAfterState:
		return m.OldAfterState(ctx)
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditlog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditlog.FieldEntity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntity(v)
		return nil
	case auditlog.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case auditlog.FieldBeforeState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBeforeState(v)
		return nil
	case auditlog.FieldAfterState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAfterState(v)
		return nil
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldActor) {
		fields = append(fields, auditlog.FieldActor)
	}
	if m.FieldCleared(auditlog.FieldEntityID) {
		fields = append(fields, auditlog.FieldEntityID)
	}
	if m.FieldCleared(auditlog.FieldBeforeState) {
		fields = append(fields, auditlog.FieldBeforeState)
	}
	if m.FieldCleared(auditlog.FieldAfterState) {
		fields = append(fields, auditlog.FieldAfterState)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldActor:
		m.ClearActor()
		return nil
	case auditlog.FieldEntityID:
		m.ClearEntityID()
		return nil
	case auditlog.FieldBeforeState:
		m.ClearBeforeState()
		return nil
	case auditlog.FieldAfterState:
		m.ClearAfterState()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldActor:
		m.ResetActor()
		return nil
	case auditlog.FieldAction:
		m.ResetAction()
		return nil
	case auditlog.FieldEntity:
		m.ResetEntity()
		return nil
	case auditlog.FieldEntityID:
		m.ResetEntityID()
		return nil
	case auditlog.FieldBeforeState:
		m.ResetBeforeState()
		return nil
	case auditlog.FieldAfterState:
		m.ResetAfterState()
		return nil
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// CategoryMutation represents an operation that mutates the Category nodes in the graph.
type CategoryMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	description    *string
	clearedFields  map[string]struct{}
	reports        map[uuid.UUID]struct{}
	removedreports map[uuid.UUID]struct{}
	clearedreports bool
	done           bool
	oldValue       func(context.Context) (*Category, error)
	predicates     []predicate.Category
}

var _ ent.Mutation = (*CategoryMutation)(nil)

// categoryOption allows management of the mutation configuration using functional options.
type categoryOption func(*CategoryMutation)

// newCategoryMutation creates new mutation for the Category entity.
func newCategoryMutation(c config, op Op, opts ...categoryOption) *CategoryMutation {
	m := &CategoryMutation{
		config:        c,
		op:            op,
		typ:           TypeCategory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCategoryID sets the ID field of the mutation.
func withCategoryID(id uuid.UUID) categoryOption {
	return func(m *CategoryMutation) {
		var (
			err   error
			once  sync.Once
			value *Category
		)
		m.oldValue = func(ctx context.Context) (*Category, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Category.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCategory sets the old Category of the mutation.
func withCategory(node *Category) categoryOption {
	return func(m *CategoryMutation) {
		m.oldValue = func(context.Context) (*Category, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CategoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CategoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Category entities.
func (m *CategoryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CategoryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CategoryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Category.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CategoryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CategoryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Category entity.
// If the Category object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *CategoryMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *CategoryMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CategoryMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Category entity.
// If the Category object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CategoryMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[category.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CategoryMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[category.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CategoryMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, category.FieldDescription)
}

// AddReportIDs adds the "reports" edge to the Report entity by ids.
func (m *CategoryMutation) AddReportIDs(ids ...uuid.UUID) {
	if m.reports == nil {
		m.reports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.reports[ids[i]] = struct{}{}
	}
}

// ClearReports clears the "reports" edge to the Report entity.
func (m *CategoryMutation) ClearReports() {
	m.clearedreports = true
}

// ReportsCleared reports if the "reports" edge to the Report entity was cleared.
func (m *CategoryMutation) ReportsCleared() bool {
	return m.clearedreports
}

// RemoveReportIDs removes the "reports" edge to the Report entity by IDs.
func (m *CategoryMutation) RemoveReportIDs(ids ...uuid.UUID) {
	if m.removedreports == nil {
		m.removedreports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.reports, ids[i])
		m.removedreports[ids[i]] = struct{}{}
	}
}

// RemovedReports returns the removed IDs of the "reports" edge to the Report entity.
func (m *CategoryMutation) RemovedReportsIDs() (ids []uuid.UUID) {
	for id := range m.removedreports {
		ids = append(ids, id)
	}
	return
}

// ReportsIDs returns the "reports" edge IDs in the mutation.
func (m *CategoryMutation) ReportsIDs() (ids []uuid.UUID) {
	for id := range m.reports {
		ids = append(ids, id)
	}
	return
}

// ResetReports resets all changes to the "reports" edge.
func (m *CategoryMutation) ResetReports() {
	m.reports = nil
	m.clearedreports = false
	m.removedreports = nil
}

// Where appends a list predicates to the CategoryMutation builder.
func (m *CategoryMutation) Where(ps ...predicate.Category) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CategoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CategoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Category, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CategoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CategoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Category).
func (m *CategoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CategoryMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, category.FieldName)
	}
	if m.description != nil {
		fields = append(fields, category.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CategoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case category.FieldName:
		return m.Name()
	case category.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CategoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case category.FieldName:
		return m.OldName(ctx)
	case category.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown Category field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case category.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case category.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown Category field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CategoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CategoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Category numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CategoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(category.FieldDescription) {
		fields = append(fields, category.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CategoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CategoryMutation) ClearField(name string) error {
	switch name {
	case category.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Category nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CategoryMutation) ResetField(name string) error {
	switch name {
	case category.FieldName:
		m.ResetName()
		return nil
	case category.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown Category field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CategoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.reports != nil {
		edges = append(edges, category.EdgeReports)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CategoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case category.EdgeReports:
		ids := make([]ent.Value, 0, len(m.reports))
		for id := range m.reports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CategoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedreports != nil {
		edges = append(edges, category.EdgeReports)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CategoryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case category.EdgeReports:
		ids := make([]ent.Value, 0, len(m.removedreports))
		for id := range m.removedreports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CategoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreports {
		edges = append(edges, category.EdgeReports)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CategoryMutation) EdgeCleared(name string) bool {
	switch name {
	case category.EdgeReports:
		return m.clearedreports
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CategoryMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Category unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CategoryMutation) ResetEdge(name string) error {
	switch name {
	case category.EdgeReports:
		m.ResetReports()
		return nil
	}
	return fmt.Errorf("unknown Category edge %s", name)
}

// InvoiceImportMutation represents an operation that mutates the InvoiceImport nodes in the graph.
type InvoiceImportMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	file_path           *string
	file_hash           *string
	year                *int
	addyear             *int
	city                *string
	carrier             *string
	month               *string
	invoice_number      *string
	due_date            *time.Time
	total_value         *decimal.Decimal
	status              *string
	error_code          *string
	error_message       *string
	confidence_score    *int
	addconfidence_score *int
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	report              *uuid.UUID
	clearedreport       bool
	done                bool
	oldValue            func(context.Context) (*InvoiceImport, error)
	predicates          []predicate.InvoiceImport
}

var _ ent.Mutation = (*InvoiceImportMutation)(nil)

// invoiceimportOption allows management of the mutation configuration using functional options.
type invoiceimportOption func(*InvoiceImportMutation)

// newInvoiceImportMutation creates new mutation for the InvoiceImport entity.
func newInvoiceImportMutation(c config, op Op, opts ...invoiceimportOption) *InvoiceImportMutation {
	m := &InvoiceImportMutation{
		config:        c,
		op:            op,
		typ:           TypeInvoiceImport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvoiceImportID sets the ID field of the mutation.
func withInvoiceImportID(id uuid.UUID) invoiceimportOption {
	return func(m *InvoiceImportMutation) {
		var (
			err   error
			once  sync.Once
			value *InvoiceImport
		)
		m.oldValue = func(ctx context.Context) (*InvoiceImport, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InvoiceImport.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvoiceImport sets the old InvoiceImport of the mutation.
func withInvoiceImport(node *InvoiceImport) invoiceimportOption {
	return func(m *InvoiceImportMutation) {
		m.oldValue = func(context.Context) (*InvoiceImport, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvoiceImportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvoiceImportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InvoiceImport entities.
func (m *InvoiceImportMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvoiceImportMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvoiceImportMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InvoiceImport.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilePath sets the "file_path" field.
func (m *InvoiceImportMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *InvoiceImportMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the InvoiceImport entity.
// If the InvoiceImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceImportMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *InvoiceImportMutation) ResetFilePath() {
	m.file_path = nil
}

// SetFileHash sets the "file_hash" field.
func (m *InvoiceImportMutation) SetFileHash(s string) {
	m.file_hash = &s
}

// FileHash returns the value of the "file_hash" field in the mutation.
func (m *InvoiceImportMutation) FileHash() (r string, exists bool) {
	v := m.file_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldFileHash returns the old "file_hash" field's value of the InvoiceImport entity.
// If the InvoiceImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceImportMutation) OldFileHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileHash: %w", err)
	}
	return oldValue.FileHash, nil
}

// ResetFileHash resets all changes to the "file_hash" field.
func (m *InvoiceImportMutation) ResetFileHash() {
	m.file_hash = nil
}

// SetYear sets the "year" field.
func (m *InvoiceImportMutation) SetYear(i int) {
	m.year = &i
	m.addyear = nil
}

// Year returns the value of the "year" field in the mutation.
func (m *InvoiceImportMutation) Year() (r int, exists bool) {
	v := m.year
	if v == nil {
		return
	}
	return *v, true
}

// OldYear returns the old "year" field's value of the InvoiceImport entity.
// If the InvoiceImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceImportMutation) OldYear(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYear: %w", err)
	}
	return oldValue.Year, nil
}

// AddYear adds i to the "year" field.
func (m *InvoiceImportMutation) AddYear(i int) {
	if m.addyear != nil {
		*m.addyear += i
	} else {
		m.addyear = &i
	}
}

// AddedYear returns the value that was added to the "year" field in this mutation.
func (m *InvoiceImportMutation) AddedYear() (r int, exists bool) {
	v := m.addyear
	if v == nil {
		return
	}
	return *v, true
}

// ResetYear resets all changes to the "year" field.
func (m *InvoiceImportMutation) ResetYear() {
	m.year = nil
	m.addyear = nil
}

// SetCity sets the "city" field.
func (m *InvoiceImportMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *InvoiceImportMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the InvoiceImport entity.
// If the InvoiceImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceImportMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ResetCity resets all changes to the "city" field.
func (m *InvoiceImportMutation) ResetCity() {
	m.city = nil
}

// SetCarrier sets the "carrier" field.
func (m *InvoiceImportMutation) SetCarrier(s string) {
	m.carrier = &s
}

// Carrier returns the value of the "carrier" field in the mutation.
func (m *InvoiceImportMutation) Carrier() (r string, exists bool) {
	v := m.carrier
	if v == nil {
		return
	}
	return *v, true
}

// OldCarrier returns the old "carrier" field's value of the InvoiceImport entity.
// If the InvoiceImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceImportMutation) OldCarrier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCarrier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCarrier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCarrier: %w", err)
	}
	return oldValue.Carrier, nil
}

// ResetCarrier resets all changes to the "carrier" field.
func (m *InvoiceImportMutation) ResetCarrier() {
	m.carrier = nil
}

// SetMonth sets the "month" field.
func (m *InvoiceImportMutation) SetMonth(s string) {
	m.month = &s
}

// Month returns the value of the "month" field in the mutation.
func (m *InvoiceImportMutation) Month() (r string, exists bool) {
	v := m.month
	if v == nil {
		return
	}
	return *v, true
}

// OldMonth returns the old "month" field's value of the InvoiceImport entity.
// If the InvoiceImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceImportMutation) OldMonth(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonth: %w", err)
	}
	return oldValue.Month, nil
}

// ResetMonth resets all changes to the "month" field.
func (m *InvoiceImportMutation) ResetMonth() {
	m.month = nil
}

// SetInvoiceNumber sets the "invoice_number" field.
func (m *InvoiceImportMutation) SetInvoiceNumber(s string) {
	m.invoice_number = &s
}

// InvoiceNumber returns the value of the "invoice_number" field in the mutation.
func (m *InvoiceImportMutation) InvoiceNumber() (r string, exists bool) {
	v := m.invoice_number
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceNumber returns the old "invoice_number" field's value of the InvoiceImport entity.
// If the InvoiceImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceImportMutation) OldInvoiceNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceNumber: %w", err)
	}
	return oldValue.InvoiceNumber, nil
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (m *InvoiceImportMutation) ClearInvoiceNumber() {
	m.invoice_number = nil
	m.clearedFields[invoiceimport.FieldInvoiceNumber] = struct{}{}
}

// InvoiceNumberCleared returns if the "invoice_number" field was cleared in this mutation.
func (m *InvoiceImportMutation) InvoiceNumberCleared() bool {
	_, ok := m.clearedFields[invoiceimport.FieldInvoiceNumber]
	return ok
}

// ResetInvoiceNumber resets all changes to the "invoice_number" field.
func (m *InvoiceImportMutation) ResetInvoiceNumber() {
	m.invoice_number = nil
	delete(m.clearedFields, invoiceimport.FieldInvoiceNumber)
}

// SetDueDate sets the "due_date" field.
func (m *InvoiceImportMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *InvoiceImportMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the InvoiceImport entity.
// If the InvoiceImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceImportMutation) OldDueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ClearDueDate clears the value of the "due_date" field.
func (m *InvoiceImportMutation) ClearDueDate() {
	m.due_date = nil
	m.clearedFields[invoiceimport.FieldDueDate] = struct{}{}
}

// DueDateCleared returns if the "due_date" field was cleared in this mutation.
func (m *InvoiceImportMutation) DueDateCleared() bool {
	_, ok := m.clearedFields[invoiceimport.FieldDueDate]
	return ok
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *InvoiceImportMutation) ResetDueDate() {
	m.due_date = nil
	delete(m.clearedFields, invoiceimport.FieldDueDate)
}

// SetTotalValue sets the "total_value" field.
func (m *InvoiceImportMutation) SetTotalValue(d decimal.Decimal) {
	m.total_value = &d
}

// TotalValue returns the value of the "total_value" field in the mutation.
func (m *InvoiceImportMutation) TotalValue() (r decimal.Decimal, exists bool) {
	v := m.total_value
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalValue returns the old "total_value" field's value of the InvoiceImport entity.
// If the InvoiceImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceImportMutation) OldTotalValue(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalValue: %w", err)
	}
	return oldValue.TotalValue, nil
}

// ResetTotalValue resets all changes to the "total_value" field.
func (m *InvoiceImportMutation) ResetTotalValue() {
	m.total_value = nil
}

// SetStatus sets the "status" field.
func (m *InvoiceImportMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *InvoiceImportMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the InvoiceImport entity.
// If the InvoiceImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceImportMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *InvoiceImportMutation) ResetStatus() {
	m.status = nil
}

// SetErrorCode sets the "error_code" field.
func (m *InvoiceImportMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *InvoiceImportMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the InvoiceImport entity.
// If the InvoiceImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceImportMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *InvoiceImportMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[invoiceimport.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *InvoiceImportMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[invoiceimport.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *InvoiceImportMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, invoiceimport.FieldErrorCode)
}

// SetErrorMessage sets the "error_message" field.
func (m *InvoiceImportMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *InvoiceImportMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the InvoiceImport entity.
// If the InvoiceImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceImportMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *InvoiceImportMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[invoiceimport.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *InvoiceImportMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[invoiceimport.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *InvoiceImportMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, invoiceimport.FieldErrorMessage)
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *InvoiceImportMutation) SetConfidenceScore(i int) {
	m.confidence_score = &i
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *InvoiceImportMutation) ConfidenceScore() (r int, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the InvoiceImport entity.
// If the InvoiceImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceImportMutation) OldConfidenceScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds i to the "confidence_score" field.
func (m *InvoiceImportMutation) AddConfidenceScore(i int) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += i
	} else {
		m.addconfidence_score = &i
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *InvoiceImportMutation) AddedConfidenceScore() (r int, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *InvoiceImportMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetReportID sets the "report_id" field.
func (m *InvoiceImportMutation) SetReportID(u uuid.UUID) {
	m.report = &u
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *InvoiceImportMutation) ReportID() (r uuid.UUID, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the InvoiceImport entity.
// If the InvoiceImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceImportMutation) OldReportID(ctx context.Context) (v *uuid.UUID, err error) {
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

// ClearReportID clears the value of the "report_id" field.
func (m *InvoiceImportMutation) ClearReportID() {
	m.report = nil
	m.clearedFields[invoiceimport.FieldReportID] = struct{}{}
}

// ReportIDCleared returns if the "report_id" field was cleared in this mutation.
func (m *InvoiceImportMutation) ReportIDCleared() bool {
	_, ok := m.clearedFields[invoiceimport.FieldReportID]
	return ok
}

// ResetReportID resets all changes to the "report_id" field.
func (m *InvoiceImportMutation) ResetReportID() {
	m.report = nil
	delete(m.clearedFields, invoiceimport.FieldReportID)
}

// SetCreatedAt sets the "created_at" field.
func (m *InvoiceImportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvoiceImportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InvoiceImport entity.
// If the InvoiceImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceImportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *InvoiceImportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InvoiceImportMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InvoiceImportMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the InvoiceImport entity.
// If the InvoiceImport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceImportMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *InvoiceImportMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearReport clears the "report" edge to the Report entity.
func (m *InvoiceImportMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[invoiceimport.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *InvoiceImportMutation) ReportCleared() bool {
	return m.ReportIDCleared() || m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *InvoiceImportMutation) ReportIDs() (ids []uuid.UUID) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *InvoiceImportMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// Where appends a list predicates to the InvoiceImportMutation builder.
func (m *InvoiceImportMutation) Where(ps ...predicate.InvoiceImport) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvoiceImportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvoiceImportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InvoiceImport, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvoiceImportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvoiceImportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InvoiceImport).
func (m *InvoiceImportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvoiceImportMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.file_path != nil {
		fields = append(fields, invoiceimport.FieldFilePath)
	}
	if m.file_hash != nil {
		fields = append(fields, invoiceimport.FieldFileHash)
	}
	if m.year != nil {
		fields = append(fields, invoiceimport.FieldYear)
	}
	if m.city != nil {
		fields = append(fields, invoiceimport.FieldCity)
	}
	if m.carrier != nil {
		fields = append(fields, invoiceimport.FieldCarrier)
	}
	if m.month != nil {
		fields = append(fields, invoiceimport.FieldMonth)
	}
	if m.invoice_number != nil {
		fields = append(fields, invoiceimport.FieldInvoiceNumber)
	}
	if m.due_date != nil {
		fields = append(fields, invoiceimport.FieldDueDate)
	}
	if m.total_value != nil {
		fields = append(fields, invoiceimport.FieldTotalValue)
	}
	if m.status != nil {
		fields = append(fields, invoiceimport.FieldStatus)
	}
	if m.error_code != nil {
		fields = append(fields, invoiceimport.FieldErrorCode)
	}
	if m.error_message != nil {
		fields = append(fields, invoiceimport.FieldErrorMessage)
	}
	if m.confidence_score != nil {
		fields = append(fields, invoiceimport.FieldConfidenceScore)
	}
	if m.report != nil {
		fields = append(fields, invoiceimport.FieldReportID)
	}
	if m.created_at != nil {
		fields = append(fields, invoiceimport.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, invoiceimport.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvoiceImportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invoiceimport.FieldFilePath:
		return m.FilePath()
	case invoiceimport.FieldFileHash:
		return m.FileHash()
	case invoiceimport.FieldYear:
		return m.Year()
	case invoiceimport.FieldCity:
		return m.City()
	case invoiceimport.FieldCarrier:
		return m.Carrier()
	case invoiceimport.FieldMonth:
		return m.Month()
	case invoiceimport.FieldInvoiceNumber:
		return m.InvoiceNumber()
	case invoiceimport.FieldDueDate:
		return m.DueDate()
	case invoiceimport.FieldTotalValue:
		return m.TotalValue()
	case invoiceimport.FieldStatus:
		return m.Status()
	case invoiceimport.FieldErrorCode:
		return m.ErrorCode()
	case invoiceimport.FieldErrorMessage:
		return m.ErrorMessage()
	case invoiceimport.FieldConfidenceScore:
		return m.ConfidenceScore()
	case invoiceimport.FieldReportID:
		return m.ReportID()
	case invoiceimport.FieldCreatedAt:
		return m.CreatedAt()
	case invoiceimport.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvoiceImportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invoiceimport.FieldFilePath:
		return m.OldFilePath(ctx)
	case invoiceimport.FieldFileHash:
		return m.OldFileHash(ctx)
	case invoiceimport.FieldYear:
		return m.OldYear(ctx)
	case invoiceimport.FieldCity:
		return m.OldCity(ctx)
	case invoiceimport.FieldCarrier:
		return m.OldCarrier(ctx)
	case invoiceimport.FieldMonth:
		return m.OldMonth(ctx)
	case invoiceimport.FieldInvoiceNumber:
		return m.OldInvoiceNumber(ctx)
	case invoiceimport.FieldDueDate:
		return m.OldDueDate(ctx)
	case invoiceimport.FieldTotalValue:
		return m.OldTotalValue(ctx)
	case invoiceimport.FieldStatus:
		return m.OldStatus(ctx)
	case invoiceimport.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case invoiceimport.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case invoiceimport.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case invoiceimport.FieldReportID:
		return m.OldReportID(ctx)
	case invoiceimport.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case invoiceimport.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InvoiceImport field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceImportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invoiceimport.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case invoiceimport.FieldFileHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileHash(v)
		return nil
	case invoiceimport.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYear(v)
		return nil
	case invoiceimport.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case invoiceimport.FieldCarrier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCarrier(v)
		return nil
	case invoiceimport.FieldMonth:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonth(v)
		return nil
	case invoiceimport.FieldInvoiceNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceNumber(v)
		return nil
	case invoiceimport.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case invoiceimport.FieldTotalValue:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalValue(v)
		return nil
	case invoiceimport.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case invoiceimport.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case invoiceimport.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case invoiceimport.FieldConfidenceScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case invoiceimport.FieldReportID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case invoiceimport.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case invoiceimport.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InvoiceImport field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvoiceImportMutation) AddedFields() []string {
	var fields []string
	if m.addyear != nil {
		fields = append(fields, invoiceimport.FieldYear)
	}
	if m.addconfidence_score != nil {
		fields = append(fields, invoiceimport.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvoiceImportMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case invoiceimport.FieldYear:
		return m.AddedYear()
	case invoiceimport.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceImportMutation) AddField(name string, value ent.Value) error {
	switch name {
	case invoiceimport.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYear(v)
		return nil
	case invoiceimport.FieldConfidenceScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown InvoiceImport numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvoiceImportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(invoiceimport.FieldInvoiceNumber) {
		fields = append(fields, invoiceimport.FieldInvoiceNumber)
	}
	if m.FieldCleared(invoiceimport.FieldDueDate) {
		fields = append(fields, invoiceimport.FieldDueDate)
	}
	if m.FieldCleared(invoiceimport.FieldErrorCode) {
		fields = append(fields, invoiceimport.FieldErrorCode)
	}
	if m.FieldCleared(invoiceimport.FieldErrorMessage) {
		fields = append(fields, invoiceimport.FieldErrorMessage)
	}
	if m.FieldCleared(invoiceimport.FieldReportID) {
		fields = append(fields, invoiceimport.FieldReportID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvoiceImportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvoiceImportMutation) ClearField(name string) error {
	switch name {
	case invoiceimport.FieldInvoiceNumber:
		m.ClearInvoiceNumber()
		return nil
	case invoiceimport.FieldDueDate:
		m.ClearDueDate()
		return nil
	case invoiceimport.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case invoiceimport.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case invoiceimport.FieldReportID:
		m.ClearReportID()
		return nil
	}
	return fmt.Errorf("unknown InvoiceImport nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvoiceImportMutation) ResetField(name string) error {
	switch name {
	case invoiceimport.FieldFilePath:
		m.ResetFilePath()
		return nil
	case invoiceimport.FieldFileHash:
		m.ResetFileHash()
		return nil
	case invoiceimport.FieldYear:
		m.ResetYear()
		return nil
	case invoiceimport.FieldCity:
		m.ResetCity()
		return nil
	case invoiceimport.FieldCarrier:
		m.ResetCarrier()
		return nil
	case invoiceimport.FieldMonth:
		m.ResetMonth()
		return nil
	case invoiceimport.FieldInvoiceNumber:
		m.ResetInvoiceNumber()
		return nil
	case invoiceimport.FieldDueDate:
		m.ResetDueDate()
		return nil
	case invoiceimport.FieldTotalValue:
		m.ResetTotalValue()
		return nil
	case invoiceimport.FieldStatus:
		m.ResetStatus()
		return nil
	case invoiceimport.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case invoiceimport.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case invoiceimport.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case invoiceimport.FieldReportID:
		m.ResetReportID()
		return nil
	case invoiceimport.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case invoiceimport.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown InvoiceImport field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvoiceImportMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.report != nil {
		edges = append(edges, invoiceimport.EdgeReport)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvoiceImportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invoiceimport.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvoiceImportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvoiceImportMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvoiceImportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreport {
		edges = append(edges, invoiceimport.EdgeReport)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvoiceImportMutation) EdgeCleared(name string) bool {
	switch name {
	case invoiceimport.EdgeReport:
		return m.clearedreport
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvoiceImportMutation) ClearEdge(name string) error {
	switch name {
	case invoiceimport.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown InvoiceImport unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvoiceImportMutation) ResetEdge(name string) error {
	switch name {
	case invoiceimport.EdgeReport:
		m.ResetReport()
		return nil
	}
	return fmt.Errorf("unknown InvoiceImport edge %s", name)
}

// ReportMutation represents an operation that mutates the Report nodes in the graph.
type ReportMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	title           *string
	reference_date  *time.Time
	due_date        *time.Time
	total_value     *decimal.Decimal
	status          *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	category        *uuid.UUID
	clearedcategory bool
	imports         map[uuid.UUID]struct{}
	removedimports  map[uuid.UUID]struct{}
	clearedimports  bool
	done            bool
	oldValue        func(context.Context) (*Report, error)
	predicates      []predicate.Report
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

// SetTitle sets the "title" field.
func (m *ReportMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ReportMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ReportMutation) ResetTitle() {
	m.title = nil
}

// SetReferenceDate sets the "reference_date" field.
func (m *ReportMutation) SetReferenceDate(t time.Time) {
	m.reference_date = &t
}

// ReferenceDate returns the value of the "reference_date" field in the mutation.
func (m *ReportMutation) ReferenceDate() (r time.Time, exists bool) {
	v := m.reference_date
	if v == nil {
		return
	}
	return *v, true
}

// OldReferenceDate returns the old "reference_date" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldReferenceDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferenceDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferenceDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferenceDate: %w", err)
	}
	return oldValue.ReferenceDate, nil
}

// ResetReferenceDate resets all changes to the "reference_date" field.
func (m *ReportMutation) ResetReferenceDate() {
	m.reference_date = nil
}

// SetDueDate sets the "due_date" field.
func (m *ReportMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *ReportMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldDueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ClearDueDate clears the value of the "due_date" field.
func (m *ReportMutation) ClearDueDate() {
	m.due_date = nil
	m.clearedFields[report.FieldDueDate] = struct{}{}
}

// DueDateCleared returns if the "due_date" field was cleared in this mutation.
func (m *ReportMutation) DueDateCleared() bool {
	_, ok := m.clearedFields[report.FieldDueDate]
	return ok
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *ReportMutation) ResetDueDate() {
	m.due_date = nil
	delete(m.clearedFields, report.FieldDueDate)
}

// SetTotalValue sets the "total_value" field.
func (m *ReportMutation) SetTotalValue(d decimal.Decimal) {
	m.total_value = &d
}

// TotalValue returns the value of the "total_value" field in the mutation.
func (m *ReportMutation) TotalValue() (r decimal.Decimal, exists bool) {
	v := m.total_value
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalValue returns the old "total_value" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldTotalValue(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalValue: %w", err)
	}
	return oldValue.TotalValue, nil
}

// ResetTotalValue resets all changes to the "total_value" field.
func (m *ReportMutation) ResetTotalValue() {
	m.total_value = nil
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

// SetCategoryID sets the "category_id" field.
func (m *ReportMutation) SetCategoryID(u uuid.UUID) {
	m.category = &u
}

// CategoryID returns the value of the "category_id" field in the mutation.
func (m *ReportMutation) CategoryID() (r uuid.UUID, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryID returns the old "category_id" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCategoryID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryID: %w", err)
	}
	return oldValue.CategoryID, nil
}

// ResetCategoryID resets all changes to the "category_id" field.
func (m *ReportMutation) ResetCategoryID() {
	m.category = nil
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

// SetUpdatedAt sets the "updated_at" field.
func (m *ReportMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReportMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ReportMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCategory clears the "category" edge to the Category entity.
func (m *ReportMutation) ClearCategory() {
	m.clearedcategory = true
	m.clearedFields[report.FieldCategoryID] = struct{}{}
}

// CategoryCleared reports if the "category" edge to the Category entity was cleared.
func (m *ReportMutation) CategoryCleared() bool {
	return m.clearedcategory
}

// CategoryIDs returns the "category" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CategoryID instead. It exists only for internal usage by the builders.
func (m *ReportMutation) CategoryIDs() (ids []uuid.UUID) {
	if id := m.category; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCategory resets all changes to the "category" edge.
func (m *ReportMutation) ResetCategory() {
	m.category = nil
	m.clearedcategory = false
}

// AddImportIDs adds the "imports" edge to the InvoiceImport entity by ids.
func (m *ReportMutation) AddImportIDs(ids ...uuid.UUID) {
	if m.imports == nil {
		m.imports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.imports[ids[i]] = struct{}{}
	}
}

// ClearImports clears the "imports" edge to the InvoiceImport entity.
func (m *ReportMutation) ClearImports() {
	m.clearedimports = true
}

// ImportsCleared reports if the "imports" edge to the InvoiceImport entity was cleared.
func (m *ReportMutation) ImportsCleared() bool {
	return m.clearedimports
}

// RemoveImportIDs removes the "imports" edge to the InvoiceImport entity by IDs.
func (m *ReportMutation) RemoveImportIDs(ids ...uuid.UUID) {
	if m.removedimports == nil {
		m.removedimports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.imports, ids[i])
		m.removedimports[ids[i]] = struct{}{}
	}
}

// RemovedImports returns the removed IDs of the "imports" edge to the InvoiceImport entity.
func (m *ReportMutation) RemovedImportsIDs() (ids []uuid.UUID) {
	for id := range m.removedimports {
		ids = append(ids, id)
	}
	return
}

// ImportsIDs returns the "imports" edge IDs in the mutation.
func (m *ReportMutation) ImportsIDs() (ids []uuid.UUID) {
	for id := range m.imports {
		ids = append(ids, id)
	}
	return
}

// ResetImports resets all changes to the "imports" edge.
func (m *ReportMutation) ResetImports() {
	m.imports = nil
	m.clearedimports = false
	m.removedimports = nil
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
	fields := make([]string, 0, 8)
	if m.title != nil {
		fields = append(fields, report.FieldTitle)
	}
	if m.reference_date != nil {
		fields = append(fields, report.FieldReferenceDate)
	}
	if m.due_date != nil {
		fields = append(fields, report.FieldDueDate)
	}
	if m.total_value != nil {
		fields = append(fields, report.FieldTotalValue)
	}
	if m.status != nil {
		fields = append(fields, report.FieldStatus)
	}
	if m.category != nil {
		fields = append(fields, report.FieldCategoryID)
	}
	if m.created_at != nil {
		fields = append(fields, report.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, report.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case report.FieldTitle:
		return m.Title()
	case report.FieldReferenceDate:
		return m.ReferenceDate()
	case report.FieldDueDate:
		return m.DueDate()
	case report.FieldTotalValue:
		return m.TotalValue()
	case report.FieldStatus:
		return m.Status()
	case report.FieldCategoryID:
		return m.CategoryID()
	case report.FieldCreatedAt:
		return m.CreatedAt()
	case report.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case report.FieldTitle:
		return m.OldTitle(ctx)
	case report.FieldReferenceDate:
		return m.OldReferenceDate(ctx)
	case report.FieldDueDate:
		return m.OldDueDate(ctx)
	case report.FieldTotalValue:
		return m.OldTotalValue(ctx)
	case report.FieldStatus:
		return m.OldStatus(ctx)
	case report.FieldCategoryID:
		return m.OldCategoryID(ctx)
	case report.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case report.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Report field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case report.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case report.FieldReferenceDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferenceDate(v)
		return nil
	case report.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case report.FieldTotalValue:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalValue(v)
		return nil
	case report.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case report.FieldCategoryID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryID(v)
		return nil
	case report.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case report.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
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
	if m.FieldCleared(report.FieldDueDate) {
		fields = append(fields, report.FieldDueDate)
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
	case report.FieldDueDate:
		m.ClearDueDate()
		return nil
	}
	return fmt.Errorf("unknown Report nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportMutation) ResetField(name string) error {
	switch name {
	case report.FieldTitle:
		m.ResetTitle()
		return nil
	case report.FieldReferenceDate:
		m.ResetReferenceDate()
		return nil
	case report.FieldDueDate:
		m.ResetDueDate()
		return nil
	case report.FieldTotalValue:
		m.ResetTotalValue()
		return nil
	case report.FieldStatus:
		m.ResetStatus()
		return nil
	case report.FieldCategoryID:
		m.ResetCategoryID()
		return nil
	case report.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case report.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.category != nil {
		edges = append(edges, report.EdgeCategory)
	}
	if m.imports != nil {
		edges = append(edges, report.EdgeImports)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeCategory:
		if id := m.category; id != nil {
			return []ent.Value{*id}
		}
	case report.EdgeImports:
		ids := make([]ent.Value, 0, len(m.imports))
		for id := range m.imports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedimports != nil {
		edges = append(edges, report.EdgeImports)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeImports:
		ids := make([]ent.Value, 0, len(m.removedimports))
		for id := range m.removedimports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcategory {
		edges = append(edges, report.EdgeCategory)
	}
	if m.clearedimports {
		edges = append(edges, report.EdgeImports)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportMutation) EdgeCleared(name string) bool {
	switch name {
	case report.EdgeCategory:
		return m.clearedcategory
	case report.EdgeImports:
		return m.clearedimports
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportMutation) ClearEdge(name string) error {
	switch name {
	case report.EdgeCategory:
		m.ClearCategory()
		return nil
	}
	return fmt.Errorf("unknown Report unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportMutation) ResetEdge(name string) error {
	switch name {
	case report.EdgeCategory:
		m.ResetCategory()
		return nil
	case report.EdgeImports:
		m.ResetImports()
		return nil
	}
	return fmt.Errorf("unknown Report edge %s", name)
}
