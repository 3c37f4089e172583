package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/edugraph/curricula/internal/driver"
	"github.com/edugraph/curricula/internal/graph/model"
)

// Resolver answers existence questions about nodes and edges. Every check is
// a single read keyed by the store's opaque identifier (or, for CourseByCode,
// the course code), and absence is reported as nil, nil rather than an error.
// Mutating components consult these checks before writing; the check and the
// write are separate round-trips, so concurrent identical requests can race.
type Resolver struct {
	Driver driver.GraphDriver
}

func NewResolver(d driver.GraphDriver) *Resolver {
	return &Resolver{Driver: d}
}

func (r *Resolver) CourseByID(ctx context.Context, id string) (*model.Course, error) {
	res, err := r.Driver.ExecuteQuery(ctx, driver.GetCourseByIDQuery, map[string]interface{}{
		"course_id": id,
	})
	if err != nil {
		return nil, err
	}
	if len(res.Records) == 0 {
		return nil, nil
	}
	return courseFromRecord(res.Records[0])
}

func (r *Resolver) CourseByCode(ctx context.Context, code string) (*model.Course, error) {
	res, err := r.Driver.ExecuteQuery(ctx, driver.GetCourseByCodeQuery, map[string]interface{}{
		"code": code,
	})
	if err != nil {
		return nil, err
	}
	if len(res.Records) == 0 {
		return nil, nil
	}
	return courseFromRecord(res.Records[0])
}

func (r *Resolver) TargetByID(ctx context.Context, id string) (*model.TargetNode, error) {
	res, err := r.Driver.ExecuteQuery(ctx, driver.GetTargetByIDQuery, map[string]interface{}{
		"target_id": id,
	})
	if err != nil {
		return nil, err
	}
	if len(res.Records) == 0 {
		return nil, nil
	}

	rec := res.Records[0]
	idVal, _ := rec.Get("target_id")
	targetID, ok := idVal.(string)
	if !ok {
		return nil, fmt.Errorf("unexpected target_id value of type %T", idVal)
	}

	target := model.TargetNode{ID: targetID}
	if nodeVal, _ := rec.Get("target"); nodeVal != nil {
		if node, ok := nodeVal.(neo4j.Node); ok {
			target.Label = stringProp(node.Props, "label")
		}
	}
	return &target, nil
}

// Relation reports whether an edge of exactly relType already connects
// courseID to targetID. A nil result means no such edge, which is a valid
// outcome, not an error.
func (r *Resolver) Relation(ctx context.Context, courseID, targetID, relType string) (*model.Relation, error) {
	if !ValidRelationType(relType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRelationType, relType)
	}

	query := fmt.Sprintf(driver.RelationExistsQueryTmpl, relType)
	res, err := r.Driver.ExecuteQuery(ctx, query, map[string]interface{}{
		"course_id": courseID,
		"target_id": targetID,
	})
	if err != nil {
		return nil, err
	}
	if len(res.Records) == 0 {
		return nil, nil
	}

	relVal, _ := res.Records[0].Get("rel")
	rel, ok := relVal.(neo4j.Relationship)
	if !ok {
		// OPTIONAL MATCH found the endpoints but no edge between them.
		return nil, nil
	}
	return &model.Relation{ID: rel.ElementId, Type: rel.Type, TargetID: rel.EndElementId}, nil
}
