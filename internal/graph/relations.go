package graph

import (
	"context"
	"fmt"

	"github.com/edugraph/curricula/internal/driver"
	"github.com/edugraph/curricula/internal/graph/model"
)

// RelationManager creates and retypes directed edges from a course to other
// nodes. The store has no uniqueness constraint on (source, type, target),
// so de-duplication happens here, by checking before writing. The check and
// the write are not one transaction; two concurrent identical creates can
// both pass the check and produce parallel edges.
type RelationManager struct {
	Driver   driver.GraphDriver
	Resolver *Resolver
}

func NewRelationManager(d driver.GraphDriver, r *Resolver) *RelationManager {
	return &RelationManager{Driver: d, Resolver: r}
}

// RelationInput is one requested edge in a batch.
type RelationInput struct {
	Type     string
	TargetID string
}

// BatchError reports which entry of a batch failed and why.
type BatchError struct {
	Index int
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("relation %d: %v", e.Index, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// Create writes one edge of relType from courseID to targetID. It performs
// no duplicate check of its own; call CreateBatch or check via the Resolver
// first, or a parallel edge will be created.
func (m *RelationManager) Create(ctx context.Context, courseID, relType, targetID string) error {
	if !ValidRelationType(relType) {
		return fmt.Errorf("%w: %q", ErrInvalidRelationType, relType)
	}

	query := fmt.Sprintf(driver.CreateRelationQueryTmpl, relType)
	res, err := m.Driver.ExecuteQuery(ctx, query, map[string]interface{}{
		"course_id": courseID,
		"target_id": targetID,
	})
	if err != nil {
		return err
	}
	if len(res.Records) == 0 {
		return fmt.Errorf("create relation %s to %s: %w", relType, targetID, ErrWriteFailed)
	}
	return nil
}

// Update retypes the edge identified by relationID, provided its current
// target is targetID; endpoints and identity are preserved. Zero matched
// rows means the relation/target pair does not exist.
func (m *RelationManager) Update(ctx context.Context, relationID, newType, targetID string) (*model.Relation, error) {
	if !ValidRelationType(newType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRelationType, newType)
	}

	res, err := m.Driver.ExecuteQuery(ctx, driver.UpdateRelationQuery, map[string]interface{}{
		"relation_id":   relationID,
		"relation_type": newType,
		"target_id":     targetID,
	})
	if err != nil {
		return nil, err
	}
	if len(res.Records) == 0 {
		return nil, fmt.Errorf("relation %s with target %s: %w", relationID, targetID, ErrNotFound)
	}

	rec := res.Records[0]
	rel := model.Relation{Type: newType}
	if s, ok := recValue(rec, "relation_id"); ok {
		rel.ID = s
	}
	if s, ok := recValue(rec, "target_id"); ok {
		rel.TargetID = s
	}
	return &rel, nil
}

// CreateBatch validates and creates relations in input order. The first
// invalid entry (missing target, duplicate edge, bad type token) aborts the
// batch; entries already created are not rolled back. The returned
// BatchError names the failing entry.
func (m *RelationManager) CreateBatch(ctx context.Context, courseID string, relations []RelationInput) error {
	for i, in := range relations {
		if err := m.createChecked(ctx, courseID, in); err != nil {
			return &BatchError{Index: i, Err: err}
		}
	}
	return nil
}

func (m *RelationManager) createChecked(ctx context.Context, courseID string, in RelationInput) error {
	if !ValidRelationType(in.Type) {
		return fmt.Errorf("%w: %q", ErrInvalidRelationType, in.Type)
	}

	target, err := m.Resolver.TargetByID(ctx, in.TargetID)
	if err != nil {
		return err
	}
	if target == nil {
		return fmt.Errorf("target %s: %w", in.TargetID, ErrNotFound)
	}

	existing, err := m.Resolver.Relation(ctx, courseID, in.TargetID, in.Type)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("relation %s to %s: %w", in.Type, in.TargetID, ErrConflict)
	}

	return m.Create(ctx, courseID, in.Type, in.TargetID)
}
