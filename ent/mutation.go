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
	"github.com/example/lingua/ent/exerciserecord"
	"github.com/example/lingua/ent/learner"
	"github.com/example/lingua/ent/llmrequestevent"
	"github.com/example/lingua/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExerciseRecord  = "ExerciseRecord"
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypeLearner         = "Learner"
)

// ExerciseRecordMutation represents an operation that mutates the ExerciseRecord nodes in the graph.
type ExerciseRecordMutation struct {
	config
	op                Op
	typ               string
	id                *int
	user_key          *int64
	adduser_key       *int64
	exercise_type     *string
	topic             *string
	question          *string
	user_answer       *string
	correct_answer    *string
	correct           *bool
	difficulty        *float64
	adddifficulty     *float64
	time_spent_sec    *int
	addtime_spent_sec *int
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ExerciseRecord, error)
	predicates        []predicate.ExerciseRecord
}

var _ ent.Mutation = (*ExerciseRecordMutation)(nil)

// exerciserecordOption allows management of the mutation configuration using functional options.
type exerciserecordOption func(*ExerciseRecordMutation)

// newExerciseRecordMutation creates new mutation for the ExerciseRecord entity.
func newExerciseRecordMutation(c config, op Op, opts ...exerciserecordOption) *ExerciseRecordMutation {
	m := &ExerciseRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeExerciseRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExerciseRecordID sets the ID field of the mutation.
func withExerciseRecordID(id int) exerciserecordOption {
	return func(m *ExerciseRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ExerciseRecord
		)
		m.oldValue = func(ctx context.Context) (*ExerciseRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExerciseRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExerciseRecord sets the old ExerciseRecord of the mutation.
func withExerciseRecord(node *ExerciseRecord) exerciserecordOption {
	return func(m *ExerciseRecordMutation) {
		m.oldValue = func(context.Context) (*ExerciseRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExerciseRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExerciseRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExerciseRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExerciseRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExerciseRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserKey sets the "user_key" field.
func (m *ExerciseRecordMutation) SetUserKey(i int64) {
	m.user_key = &i
	m.adduser_key = nil
}

// UserKey returns the value of the "user_key" field in the mutation.
func (m *ExerciseRecordMutation) UserKey() (r int64, exists bool) {
	v := m.user_key
	if v == nil {
		return
	}
	return *v, true
}

// OldUserKey returns the old "user_key" field's value of the ExerciseRecord entity.
// If the ExerciseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseRecordMutation) OldUserKey(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserKey: %w", err)
	}
	return oldValue.UserKey, nil
}

// AddUserKey adds i to the "user_key" field.
func (m *ExerciseRecordMutation) AddUserKey(i int64) {
	if m.adduser_key != nil {
		*m.adduser_key += i
	} else {
		m.adduser_key = &i
	}
}

// AddedUserKey returns the value that was added to the "user_key" field in this mutation.
func (m *ExerciseRecordMutation) AddedUserKey() (r int64, exists bool) {
	v := m.adduser_key
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserKey resets all changes to the "user_key" field.
func (m *ExerciseRecordMutation) ResetUserKey() {
	m.user_key = nil
	m.adduser_key = nil
}

// SetExerciseType sets the "exercise_type" field.
func (m *ExerciseRecordMutation) SetExerciseType(s string) {
	m.exercise_type = &s
}

// ExerciseType returns the value of the "exercise_type" field in the mutation.
func (m *ExerciseRecordMutation) ExerciseType() (r string, exists bool) {
	v := m.exercise_type
	if v == nil {
		return
	}
	return *v, true
}

// OldExerciseType returns the old "exercise_type" field's value of the ExerciseRecord entity.
// If the ExerciseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseRecordMutation) OldExerciseType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExerciseType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExerciseType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExerciseType: %w", err)
	}
	return oldValue.ExerciseType, nil
}

// ClearExerciseType clears the value of the "exercise_type" field.
func (m *ExerciseRecordMutation) ClearExerciseType() {
	m.exercise_type = nil
	m.clearedFields[exerciserecord.FieldExerciseType] = struct{}{}
}

// ExerciseTypeCleared returns if the "exercise_type" field was cleared in this mutation.
func (m *ExerciseRecordMutation) ExerciseTypeCleared() bool {
	_, ok := m.clearedFields[exerciserecord.FieldExerciseType]
	return ok
}

// ResetExerciseType resets all changes to the "exercise_type" field.
func (m *ExerciseRecordMutation) ResetExerciseType() {
	m.exercise_type = nil
	delete(m.clearedFields, exerciserecord.FieldExerciseType)
}

// SetTopic sets the "topic" field.
func (m *ExerciseRecordMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *ExerciseRecordMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the ExerciseRecord entity.
// If the ExerciseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseRecordMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ClearTopic clears the value of the "topic" field.
func (m *ExerciseRecordMutation) ClearTopic() {
	m.topic = nil
	m.clearedFields[exerciserecord.FieldTopic] = struct{}{}
}

// TopicCleared returns if the "topic" field was cleared in this mutation.
func (m *ExerciseRecordMutation) TopicCleared() bool {
	_, ok := m.clearedFields[exerciserecord.FieldTopic]
	return ok
}

// ResetTopic resets all changes to the "topic" field.
func (m *ExerciseRecordMutation) ResetTopic() {
	m.topic = nil
	delete(m.clearedFields, exerciserecord.FieldTopic)
}

// SetQuestion sets the "question" field.
func (m *ExerciseRecordMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *ExerciseRecordMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the ExerciseRecord entity.
// If the ExerciseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseRecordMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ClearQuestion clears the value of the "question" field.
func (m *ExerciseRecordMutation) ClearQuestion() {
	m.question = nil
	m.clearedFields[exerciserecord.FieldQuestion] = struct{}{}
}

// QuestionCleared returns if the "question" field was cleared in this mutation.
func (m *ExerciseRecordMutation) QuestionCleared() bool {
	_, ok := m.clearedFields[exerciserecord.FieldQuestion]
	return ok
}

// ResetQuestion resets all changes to the "question" field.
func (m *ExerciseRecordMutation) ResetQuestion() {
	m.question = nil
	delete(m.clearedFields, exerciserecord.FieldQuestion)
}

// SetUserAnswer sets the "user_answer" field.
func (m *ExerciseRecordMutation) SetUserAnswer(s string) {
	m.user_answer = &s
}

// UserAnswer returns the value of the "user_answer" field in the mutation.
func (m *ExerciseRecordMutation) UserAnswer() (r string, exists bool) {
	v := m.user_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAnswer returns the old "user_answer" field's value of the ExerciseRecord entity.
// If the ExerciseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseRecordMutation) OldUserAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAnswer: %w", err)
	}
	return oldValue.UserAnswer, nil
}

// ClearUserAnswer clears the value of the "user_answer" field.
func (m *ExerciseRecordMutation) ClearUserAnswer() {
	m.user_answer = nil
	m.clearedFields[exerciserecord.FieldUserAnswer] = struct{}{}
}

// UserAnswerCleared returns if the "user_answer" field was cleared in this mutation.
func (m *ExerciseRecordMutation) UserAnswerCleared() bool {
	_, ok := m.clearedFields[exerciserecord.FieldUserAnswer]
	return ok
}

// ResetUserAnswer resets all changes to the "user_answer" field.
func (m *ExerciseRecordMutation) ResetUserAnswer() {
	m.user_answer = nil
	delete(m.clearedFields, exerciserecord.FieldUserAnswer)
}

// SetCorrectAnswer sets the "correct_answer" field.
func (m *ExerciseRecordMutation) SetCorrectAnswer(s string) {
	m.correct_answer = &s
}

// CorrectAnswer returns the value of the "correct_answer" field in the mutation.
func (m *ExerciseRecordMutation) CorrectAnswer() (r string, exists bool) {
	v := m.correct_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswer returns the old "correct_answer" field's value of the ExerciseRecord entity.
// If the ExerciseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseRecordMutation) OldCorrectAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswer: %w", err)
	}
	return oldValue.CorrectAnswer, nil
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (m *ExerciseRecordMutation) ClearCorrectAnswer() {
	m.correct_answer = nil
	m.clearedFields[exerciserecord.FieldCorrectAnswer] = struct{}{}
}

// CorrectAnswerCleared returns if the "correct_answer" field was cleared in this mutation.
func (m *ExerciseRecordMutation) CorrectAnswerCleared() bool {
	_, ok := m.clearedFields[exerciserecord.FieldCorrectAnswer]
	return ok
}

// ResetCorrectAnswer resets all changes to the "correct_answer" field.
func (m *ExerciseRecordMutation) ResetCorrectAnswer() {
	m.correct_answer = nil
	delete(m.clearedFields, exerciserecord.FieldCorrectAnswer)
}

// SetCorrect sets the "correct" field.
func (m *ExerciseRecordMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *ExerciseRecordMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the ExerciseRecord entity.
// If the ExerciseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseRecordMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *ExerciseRecordMutation) ResetCorrect() {
	m.correct = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *ExerciseRecordMutation) SetDifficulty(f float64) {
	m.difficulty = &f
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *ExerciseRecordMutation) Difficulty() (r float64, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the ExerciseRecord entity.
// If the ExerciseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseRecordMutation) OldDifficulty(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds f to the "difficulty" field.
func (m *ExerciseRecordMutation) AddDifficulty(f float64) {
	if m.adddifficulty != nil {
		*m.adddifficulty += f
	} else {
		m.adddifficulty = &f
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *ExerciseRecordMutation) AddedDifficulty() (r float64, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *ExerciseRecordMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// SetTimeSpentSec sets the "time_spent_sec" field.
func (m *ExerciseRecordMutation) SetTimeSpentSec(i int) {
	m.time_spent_sec = &i
	m.addtime_spent_sec = nil
}

// TimeSpentSec returns the value of the "time_spent_sec" field in the mutation.
func (m *ExerciseRecordMutation) TimeSpentSec() (r int, exists bool) {
	v := m.time_spent_sec
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentSec returns the old "time_spent_sec" field's value of the ExerciseRecord entity.
// If the ExerciseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseRecordMutation) OldTimeSpentSec(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentSec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentSec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentSec: %w", err)
	}
	return oldValue.TimeSpentSec, nil
}

// AddTimeSpentSec adds i to the "time_spent_sec" field.
func (m *ExerciseRecordMutation) AddTimeSpentSec(i int) {
	if m.addtime_spent_sec != nil {
		*m.addtime_spent_sec += i
	} else {
		m.addtime_spent_sec = &i
	}
}

// AddedTimeSpentSec returns the value that was added to the "time_spent_sec" field in this mutation.
func (m *ExerciseRecordMutation) AddedTimeSpentSec() (r int, exists bool) {
	v := m.addtime_spent_sec
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentSec resets all changes to the "time_spent_sec" field.
func (m *ExerciseRecordMutation) ResetTimeSpentSec() {
	m.time_spent_sec = nil
	m.addtime_spent_sec = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExerciseRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExerciseRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExerciseRecord entity.
// If the ExerciseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ExerciseRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ExerciseRecordMutation builder.
func (m *ExerciseRecordMutation) Where(ps ...predicate.ExerciseRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExerciseRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExerciseRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExerciseRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExerciseRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExerciseRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExerciseRecord).
func (m *ExerciseRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExerciseRecordMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user_key != nil {
		fields = append(fields, exerciserecord.FieldUserKey)
	}
	if m.exercise_type != nil {
		fields = append(fields, exerciserecord.FieldExerciseType)
	}
	if m.topic != nil {
		fields = append(fields, exerciserecord.FieldTopic)
	}
	if m.question != nil {
		fields = append(fields, exerciserecord.FieldQuestion)
	}
	if m.user_answer != nil {
		fields = append(fields, exerciserecord.FieldUserAnswer)
	}
	if m.correct_answer != nil {
		fields = append(fields, exerciserecord.FieldCorrectAnswer)
	}
	if m.correct != nil {
		fields = append(fields, exerciserecord.FieldCorrect)
	}
	if m.difficulty != nil {
		fields = append(fields, exerciserecord.FieldDifficulty)
	}
	if m.time_spent_sec != nil {
		fields = append(fields, exerciserecord.FieldTimeSpentSec)
	}
	if m.created_at != nil {
		fields = append(fields, exerciserecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExerciseRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case exerciserecord.FieldUserKey:
		return m.UserKey()
	case exerciserecord.FieldExerciseType:
		return m.ExerciseType()
	case exerciserecord.FieldTopic:
		return m.Topic()
	case exerciserecord.FieldQuestion:
		return m.Question()
	case exerciserecord.FieldUserAnswer:
		return m.UserAnswer()
	case exerciserecord.FieldCorrectAnswer:
		return m.CorrectAnswer()
	case exerciserecord.FieldCorrect:
		return m.Correct()
	case exerciserecord.FieldDifficulty:
		return m.Difficulty()
	case exerciserecord.FieldTimeSpentSec:
		return m.TimeSpentSec()
	case exerciserecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExerciseRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case exerciserecord.FieldUserKey:
		return m.OldUserKey(ctx)
	case exerciserecord.FieldExerciseType:
		return m.OldExerciseType(ctx)
	case exerciserecord.FieldTopic:
		return m.OldTopic(ctx)
	case exerciserecord.FieldQuestion:
		return m.OldQuestion(ctx)
	case exerciserecord.FieldUserAnswer:
		return m.OldUserAnswer(ctx)
	case exerciserecord.FieldCorrectAnswer:
		return m.OldCorrectAnswer(ctx)
	case exerciserecord.FieldCorrect:
		return m.OldCorrect(ctx)
	case exerciserecord.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case exerciserecord.FieldTimeSpentSec:
		return m.OldTimeSpentSec(ctx)
	case exerciserecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExerciseRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExerciseRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case exerciserecord.FieldUserKey:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserKey(v)
		return nil
	case exerciserecord.FieldExerciseType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExerciseType(v)
		return nil
	case exerciserecord.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case exerciserecord.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case exerciserecord.FieldUserAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAnswer(v)
		return nil
	case exerciserecord.FieldCorrectAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswer(v)
		return nil
	case exerciserecord.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case exerciserecord.FieldDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case exerciserecord.FieldTimeSpentSec:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentSec(v)
		return nil
	case exerciserecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExerciseRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExerciseRecordMutation) AddedFields() []string {
	var fields []string
	if m.adduser_key != nil {
		fields = append(fields, exerciserecord.FieldUserKey)
	}
	if m.adddifficulty != nil {
		fields = append(fields, exerciserecord.FieldDifficulty)
	}
	if m.addtime_spent_sec != nil {
		fields = append(fields, exerciserecord.FieldTimeSpentSec)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExerciseRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case exerciserecord.FieldUserKey:
		return m.AddedUserKey()
	case exerciserecord.FieldDifficulty:
		return m.AddedDifficulty()
	case exerciserecord.FieldTimeSpentSec:
		return m.AddedTimeSpentSec()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExerciseRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case exerciserecord.FieldUserKey:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserKey(v)
		return nil
	case exerciserecord.FieldDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	case exerciserecord.FieldTimeSpentSec:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentSec(v)
		return nil
	}
	return fmt.Errorf("unknown ExerciseRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExerciseRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(exerciserecord.FieldExerciseType) {
		fields = append(fields, exerciserecord.FieldExerciseType)
	}
	if m.FieldCleared(exerciserecord.FieldTopic) {
		fields = append(fields, exerciserecord.FieldTopic)
	}
	if m.FieldCleared(exerciserecord.FieldQuestion) {
		fields = append(fields, exerciserecord.FieldQuestion)
	}
	if m.FieldCleared(exerciserecord.FieldUserAnswer) {
		fields = append(fields, exerciserecord.FieldUserAnswer)
	}
	if m.FieldCleared(exerciserecord.FieldCorrectAnswer) {
		fields = append(fields, exerciserecord.FieldCorrectAnswer)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExerciseRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExerciseRecordMutation) ClearField(name string) error {
	switch name {
	case exerciserecord.FieldExerciseType:
		m.ClearExerciseType()
		return nil
	case exerciserecord.FieldTopic:
		m.ClearTopic()
		return nil
	case exerciserecord.FieldQuestion:
		m.ClearQuestion()
		return nil
	case exerciserecord.FieldUserAnswer:
		m.ClearUserAnswer()
		return nil
	case exerciserecord.FieldCorrectAnswer:
		m.ClearCorrectAnswer()
		return nil
	}
	return fmt.Errorf("unknown ExerciseRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExerciseRecordMutation) ResetField(name string) error {
	switch name {
	case exerciserecord.FieldUserKey:
		m.ResetUserKey()
		return nil
	case exerciserecord.FieldExerciseType:
		m.ResetExerciseType()
		return nil
	case exerciserecord.FieldTopic:
		m.ResetTopic()
		return nil
	case exerciserecord.FieldQuestion:
		m.ResetQuestion()
		return nil
	case exerciserecord.FieldUserAnswer:
		m.ResetUserAnswer()
		return nil
	case exerciserecord.FieldCorrectAnswer:
		m.ResetCorrectAnswer()
		return nil
	case exerciserecord.FieldCorrect:
		m.ResetCorrect()
		return nil
	case exerciserecord.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case exerciserecord.FieldTimeSpentSec:
		m.ResetTimeSpentSec()
		return nil
	case exerciserecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExerciseRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExerciseRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExerciseRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExerciseRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExerciseRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExerciseRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExerciseRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExerciseRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExerciseRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExerciseRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExerciseRecord edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
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
func (m *LLMRequestEventMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[llmrequestevent.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *LLMRequestEventMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[llmrequestevent.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, llmrequestevent.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *LLMRequestEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LLMRequestEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *LLMRequestEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, llmrequestevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(llmrequestevent.FieldErrorMessage) {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	switch name {
	case llmrequestevent.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// LearnerMutation represents an operation that mutates the Learner nodes in the graph.
type LearnerMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	user_key           *int64
	adduser_key        *int64
	username           *string
	level              *string
	total_exercises    *int
	addtotal_exercises *int
	correct_answers    *int
	addcorrect_answers *int
	accuracy           *float64
	addaccuracy        *float64
	weak_topics        *[]string
	appendweak_topics  []string
	streak_days        *int
	addstreak_days     *int
	last_exercise_date *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Learner, error)
	predicates         []predicate.Learner
}

var _ ent.Mutation = (*LearnerMutation)(nil)

// learnerOption allows management of the mutation configuration using functional options.
type learnerOption func(*LearnerMutation)

// newLearnerMutation creates new mutation for the Learner entity.
func newLearnerMutation(c config, op Op, opts ...learnerOption) *LearnerMutation {
	m := &LearnerMutation{
		config:        c,
		op:            op,
		typ:           TypeLearner,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearnerID sets the ID field of the mutation.
func withLearnerID(id int) learnerOption {
	return func(m *LearnerMutation) {
		var (
			err   error
			once  sync.Once
			value *Learner
		)
		m.oldValue = func(ctx context.Context) (*Learner, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Learner.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearner sets the old Learner of the mutation.
func withLearner(node *Learner) learnerOption {
	return func(m *LearnerMutation) {
		m.oldValue = func(context.Context) (*Learner, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearnerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearnerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearnerMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearnerMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Learner.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserKey sets the "user_key" field.
func (m *LearnerMutation) SetUserKey(i int64) {
	m.user_key = &i
	m.adduser_key = nil
}

// UserKey returns the value of the "user_key" field in the mutation.
func (m *LearnerMutation) UserKey() (r int64, exists bool) {
	v := m.user_key
	if v == nil {
		return
	}
	return *v, true
}

// OldUserKey returns the old "user_key" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldUserKey(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserKey: %w", err)
	}
	return oldValue.UserKey, nil
}

// AddUserKey adds i to the "user_key" field.
func (m *LearnerMutation) AddUserKey(i int64) {
	if m.adduser_key != nil {
		*m.adduser_key += i
	} else {
		m.adduser_key = &i
	}
}

// AddedUserKey returns the value that was added to the "user_key" field in this mutation.
func (m *LearnerMutation) AddedUserKey() (r int64, exists bool) {
	v := m.adduser_key
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserKey resets all changes to the "user_key" field.
func (m *LearnerMutation) ResetUserKey() {
	m.user_key = nil
	m.adduser_key = nil
}

// SetUsername sets the "username" field.
func (m *LearnerMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *LearnerMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ClearUsername clears the value of the "username" field.
func (m *LearnerMutation) ClearUsername() {
	m.username = nil
	m.clearedFields[learner.FieldUsername] = struct{}{}
}

// UsernameCleared returns if the "username" field was cleared in this mutation.
func (m *LearnerMutation) UsernameCleared() bool {
	_, ok := m.clearedFields[learner.FieldUsername]
	return ok
}

// ResetUsername resets all changes to the "username" field.
func (m *LearnerMutation) ResetUsername() {
	m.username = nil
	delete(m.clearedFields, learner.FieldUsername)
}

// SetLevel sets the "level" field.
func (m *LearnerMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *LearnerMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *LearnerMutation) ResetLevel() {
	m.level = nil
}

// SetTotalExercises sets the "total_exercises" field.
func (m *LearnerMutation) SetTotalExercises(i int) {
	m.total_exercises = &i
	m.addtotal_exercises = nil
}

// TotalExercises returns the value of the "total_exercises" field in the mutation.
func (m *LearnerMutation) TotalExercises() (r int, exists bool) {
	v := m.total_exercises
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalExercises returns the old "total_exercises" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldTotalExercises(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalExercises is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalExercises requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalExercises: %w", err)
	}
	return oldValue.TotalExercises, nil
}

// AddTotalExercises adds i to the "total_exercises" field.
func (m *LearnerMutation) AddTotalExercises(i int) {
	if m.addtotal_exercises != nil {
		*m.addtotal_exercises += i
	} else {
		m.addtotal_exercises = &i
	}
}

// AddedTotalExercises returns the value that was added to the "total_exercises" field in this mutation.
func (m *LearnerMutation) AddedTotalExercises() (r int, exists bool) {
	v := m.addtotal_exercises
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalExercises resets all changes to the "total_exercises" field.
func (m *LearnerMutation) ResetTotalExercises() {
	m.total_exercises = nil
	m.addtotal_exercises = nil
}

// SetCorrectAnswers sets the "correct_answers" field.
func (m *LearnerMutation) SetCorrectAnswers(i int) {
	m.correct_answers = &i
	m.addcorrect_answers = nil
}

// CorrectAnswers returns the value of the "correct_answers" field in the mutation.
func (m *LearnerMutation) CorrectAnswers() (r int, exists bool) {
	v := m.correct_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswers returns the old "correct_answers" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldCorrectAnswers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswers: %w", err)
	}
	return oldValue.CorrectAnswers, nil
}

// AddCorrectAnswers adds i to the "correct_answers" field.
func (m *LearnerMutation) AddCorrectAnswers(i int) {
	if m.addcorrect_answers != nil {
		*m.addcorrect_answers += i
	} else {
		m.addcorrect_answers = &i
	}
}

// AddedCorrectAnswers returns the value that was added to the "correct_answers" field in this mutation.
func (m *LearnerMutation) AddedCorrectAnswers() (r int, exists bool) {
	v := m.addcorrect_answers
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectAnswers resets all changes to the "correct_answers" field.
func (m *LearnerMutation) ResetCorrectAnswers() {
	m.correct_answers = nil
	m.addcorrect_answers = nil
}

// SetAccuracy sets the "accuracy" field.
func (m *LearnerMutation) SetAccuracy(f float64) {
	m.accuracy = &f
	m.addaccuracy = nil
}

// Accuracy returns the value of the "accuracy" field in the mutation.
func (m *LearnerMutation) Accuracy() (r float64, exists bool) {
	v := m.accuracy
	if v == nil {
		return
	}
	return *v, true
}

// OldAccuracy returns the old "accuracy" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldAccuracy(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccuracy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccuracy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccuracy: %w", err)
	}
	return oldValue.Accuracy, nil
}

// AddAccuracy adds f to the "accuracy" field.
func (m *LearnerMutation) AddAccuracy(f float64) {
	if m.addaccuracy != nil {
		*m.addaccuracy += f
	} else {
		m.addaccuracy = &f
	}
}

// AddedAccuracy returns the value that was added to the "accuracy" field in this mutation.
func (m *LearnerMutation) AddedAccuracy() (r float64, exists bool) {
	v := m.addaccuracy
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccuracy resets all changes to the "accuracy" field.
func (m *LearnerMutation) ResetAccuracy() {
	m.accuracy = nil
	m.addaccuracy = nil
}

// SetWeakTopics sets the "weak_topics" field.
func (m *LearnerMutation) SetWeakTopics(s []string) {
	m.weak_topics = &s
	m.appendweak_topics = nil
}

// WeakTopics returns the value of the "weak_topics" field in the mutation.
func (m *LearnerMutation) WeakTopics() (r []string, exists bool) {
	v := m.weak_topics
	if v == nil {
		return
	}
	return *v, true
}

// OldWeakTopics returns the old "weak_topics" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldWeakTopics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeakTopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeakTopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeakTopics: %w", err)
	}
	return oldValue.WeakTopics, nil
}

// AppendWeakTopics adds s to the "weak_topics" field.
func (m *LearnerMutation) AppendWeakTopics(s []string) {
	m.appendweak_topics = append(m.appendweak_topics, s...)
}

// AppendedWeakTopics returns the list of values that were appended to the "weak_topics" field in this mutation.
func (m *LearnerMutation) AppendedWeakTopics() ([]string, bool) {
	if len(m.appendweak_topics) == 0 {
		return nil, false
	}
	return m.appendweak_topics, true
}

// ClearWeakTopics clears the value of the "weak_topics" field.
func (m *LearnerMutation) ClearWeakTopics() {
	m.weak_topics = nil
	m.appendweak_topics = nil
	m.clearedFields[learner.FieldWeakTopics] = struct{}{}
}

// WeakTopicsCleared returns if the "weak_topics" field was cleared in this mutation.
func (m *LearnerMutation) WeakTopicsCleared() bool {
	_, ok := m.clearedFields[learner.FieldWeakTopics]
	return ok
}

// ResetWeakTopics resets all changes to the "weak_topics" field.
func (m *LearnerMutation) ResetWeakTopics() {
	m.weak_topics = nil
	m.appendweak_topics = nil
	delete(m.clearedFields, learner.FieldWeakTopics)
}

// SetStreakDays sets the "streak_days" field.
func (m *LearnerMutation) SetStreakDays(i int) {
	m.streak_days = &i
	m.addstreak_days = nil
}

// StreakDays returns the value of the "streak_days" field in the mutation.
func (m *LearnerMutation) StreakDays() (r int, exists bool) {
	v := m.streak_days
	if v == nil {
		return
	}
	return *v, true
}

// OldStreakDays returns the old "streak_days" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldStreakDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreakDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreakDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreakDays: %w", err)
	}
	return oldValue.StreakDays, nil
}

// AddStreakDays adds i to the "streak_days" field.
func (m *LearnerMutation) AddStreakDays(i int) {
	if m.addstreak_days != nil {
		*m.addstreak_days += i
	} else {
		m.addstreak_days = &i
	}
}

// AddedStreakDays returns the value that was added to the "streak_days" field in this mutation.
func (m *LearnerMutation) AddedStreakDays() (r int, exists bool) {
	v := m.addstreak_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreakDays resets all changes to the "streak_days" field.
func (m *LearnerMutation) ResetStreakDays() {
	m.streak_days = nil
	m.addstreak_days = nil
}

// SetLastExerciseDate sets the "last_exercise_date" field.
func (m *LearnerMutation) SetLastExerciseDate(s string) {
	m.last_exercise_date = &s
}

// LastExerciseDate returns the value of the "last_exercise_date" field in the mutation.
func (m *LearnerMutation) LastExerciseDate() (r string, exists bool) {
	v := m.last_exercise_date
	if v == nil {
		return
	}
	return *v, true
}

// OldLastExerciseDate returns the old "last_exercise_date" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldLastExerciseDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastExerciseDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastExerciseDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastExerciseDate: %w", err)
	}
	return oldValue.LastExerciseDate, nil
}

// ClearLastExerciseDate clears the value of the "last_exercise_date" field.
func (m *LearnerMutation) ClearLastExerciseDate() {
	m.last_exercise_date = nil
	m.clearedFields[learner.FieldLastExerciseDate] = struct{}{}
}

// LastExerciseDateCleared returns if the "last_exercise_date" field was cleared in this mutation.
func (m *LearnerMutation) LastExerciseDateCleared() bool {
	_, ok := m.clearedFields[learner.FieldLastExerciseDate]
	return ok
}

// ResetLastExerciseDate resets all changes to the "last_exercise_date" field.
func (m *LearnerMutation) ResetLastExerciseDate() {
	m.last_exercise_date = nil
	delete(m.clearedFields, learner.FieldLastExerciseDate)
}

// SetCreatedAt sets the "created_at" field.
func (m *LearnerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LearnerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *LearnerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LearnerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LearnerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *LearnerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LearnerMutation builder.
func (m *LearnerMutation) Where(ps ...predicate.Learner) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearnerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearnerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Learner, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearnerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearnerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Learner).
func (m *LearnerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearnerMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.user_key != nil {
		fields = append(fields, learner.FieldUserKey)
	}
	if m.username != nil {
		fields = append(fields, learner.FieldUsername)
	}
	if m.level != nil {
		fields = append(fields, learner.FieldLevel)
	}
	if m.total_exercises != nil {
		fields = append(fields, learner.FieldTotalExercises)
	}
	if m.correct_answers != nil {
		fields = append(fields, learner.FieldCorrectAnswers)
	}
	if m.accuracy != nil {
		fields = append(fields, learner.FieldAccuracy)
	}
	if m.weak_topics != nil {
		fields = append(fields, learner.FieldWeakTopics)
	}
	if m.streak_days != nil {
		fields = append(fields, learner.FieldStreakDays)
	}
	if m.last_exercise_date != nil {
		fields = append(fields, learner.FieldLastExerciseDate)
	}
	if m.created_at != nil {
		fields = append(fields, learner.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, learner.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearnerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learner.FieldUserKey:
		return m.UserKey()
	case learner.FieldUsername:
		return m.Username()
	case learner.FieldLevel:
		return m.Level()
	case learner.FieldTotalExercises:
		return m.TotalExercises()
	case learner.FieldCorrectAnswers:
		return m.CorrectAnswers()
	case learner.FieldAccuracy:
		return m.Accuracy()
	case learner.FieldWeakTopics:
		return m.WeakTopics()
	case learner.FieldStreakDays:
		return m.StreakDays()
	case learner.FieldLastExerciseDate:
		return m.LastExerciseDate()
	case learner.FieldCreatedAt:
		return m.CreatedAt()
	case learner.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearnerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learner.FieldUserKey:
		return m.OldUserKey(ctx)
	case learner.FieldUsername:
		return m.OldUsername(ctx)
	case learner.FieldLevel:
		return m.OldLevel(ctx)
	case learner.FieldTotalExercises:
		return m.OldTotalExercises(ctx)
	case learner.FieldCorrectAnswers:
		return m.OldCorrectAnswers(ctx)
	case learner.FieldAccuracy:
		return m.OldAccuracy(ctx)
	case learner.FieldWeakTopics:
		return m.OldWeakTopics(ctx)
	case learner.FieldStreakDays:
		return m.OldStreakDays(ctx)
	case learner.FieldLastExerciseDate:
		return m.OldLastExerciseDate(ctx)
	case learner.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case learner.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Learner field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learner.FieldUserKey:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserKey(v)
		return nil
	case learner.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case learner.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case learner.FieldTotalExercises:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalExercises(v)
		return nil
	case learner.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswers(v)
		return nil
	case learner.FieldAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccuracy(v)
		return nil
	case learner.FieldWeakTopics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeakTopics(v)
		return nil
	case learner.FieldStreakDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreakDays(v)
		return nil
	case learner.FieldLastExerciseDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastExerciseDate(v)
		return nil
	case learner.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case learner.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Learner field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearnerMutation) AddedFields() []string {
	var fields []string
	if m.adduser_key != nil {
		fields = append(fields, learner.FieldUserKey)
	}
	if m.addtotal_exercises != nil {
		fields = append(fields, learner.FieldTotalExercises)
	}
	if m.addcorrect_answers != nil {
		fields = append(fields, learner.FieldCorrectAnswers)
	}
	if m.addaccuracy != nil {
		fields = append(fields, learner.FieldAccuracy)
	}
	if m.addstreak_days != nil {
		fields = append(fields, learner.FieldStreakDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearnerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learner.FieldUserKey:
		return m.AddedUserKey()
	case learner.FieldTotalExercises:
		return m.AddedTotalExercises()
	case learner.FieldCorrectAnswers:
		return m.AddedCorrectAnswers()
	case learner.FieldAccuracy:
		return m.AddedAccuracy()
	case learner.FieldStreakDays:
		return m.AddedStreakDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learner.FieldUserKey:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserKey(v)
		return nil
	case learner.FieldTotalExercises:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalExercises(v)
		return nil
	case learner.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectAnswers(v)
		return nil
	case learner.FieldAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccuracy(v)
		return nil
	case learner.FieldStreakDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreakDays(v)
		return nil
	}
	return fmt.Errorf("unknown Learner numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearnerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(learner.FieldUsername) {
		fields = append(fields, learner.FieldUsername)
	}
	if m.FieldCleared(learner.FieldWeakTopics) {
		fields = append(fields, learner.FieldWeakTopics)
	}
	if m.FieldCleared(learner.FieldLastExerciseDate) {
		fields = append(fields, learner.FieldLastExerciseDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearnerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearnerMutation) ClearField(name string) error {
	switch name {
	case learner.FieldUsername:
		m.ClearUsername()
		return nil
	case learner.FieldWeakTopics:
		m.ClearWeakTopics()
		return nil
	case learner.FieldLastExerciseDate:
		m.ClearLastExerciseDate()
		return nil
	}
	return fmt.Errorf("unknown Learner nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearnerMutation) ResetField(name string) error {
	switch name {
	case learner.FieldUserKey:
		m.ResetUserKey()
		return nil
	case learner.FieldUsername:
		m.ResetUsername()
		return nil
	case learner.FieldLevel:
		m.ResetLevel()
		return nil
	case learner.FieldTotalExercises:
		m.ResetTotalExercises()
		return nil
	case learner.FieldCorrectAnswers:
		m.ResetCorrectAnswers()
		return nil
	case learner.FieldAccuracy:
		m.ResetAccuracy()
		return nil
	case learner.FieldWeakTopics:
		m.ResetWeakTopics()
		return nil
	case learner.FieldStreakDays:
		m.ResetStreakDays()
		return nil
	case learner.FieldLastExerciseDate:
		m.ResetLastExerciseDate()
		return nil
	case learner.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case learner.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Learner field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearnerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearnerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearnerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearnerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearnerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearnerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearnerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Learner unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearnerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Learner edge %s", name)
}
