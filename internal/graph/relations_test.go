package graph

import (
	"context"
	"strings"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func targetResult(id string) neo4j.EagerResult {
	return singleRecord(
		[]string{"target_id", "target"},
		[]interface{}{id, neo4j.Node{ElementId: id, Props: map[string]interface{}{"label": "Topic"}}},
	)
}

func noRelationResult() neo4j.EagerResult {
	return singleRecord([]string{"rel"}, []interface{}{nil})
}

func relationResult(id, relType, targetID string) neo4j.EagerResult {
	return singleRecord([]string{"rel"}, []interface{}{
		neo4j.Relationship{ElementId: id, EndElementId: targetID, Type: relType},
	})
}

func createdRelationResult(id string) neo4j.EagerResult {
	return singleRecord([]string{"relation_id"}, []interface{}{id})
}

func countCreates(queries []string) int {
	n := 0
	for _, q := range queries {
		if strings.Contains(q, "CREATE (course)-[rel:") {
			n++
		}
	}
	return n
}

func TestCreateBatch_AbortsOnMissingTarget(t *testing.T) {
	// R1 is valid, R2's target does not exist, R3 is valid. R1 must be
	// created, R2 must fail the batch, R3 must never be attempted.
	d := &mockDriver{
		Results: []neo4j.EagerResult{
			targetResult("4:abc:7"),          // R1 target check
			noRelationResult(),               // R1 duplicate check
			createdRelationResult("5:abc:1"), // R1 create
			emptyResult(),                    // R2 target check
		},
	}
	m := NewRelationManager(d, NewResolver(d))

	err := m.CreateBatch(context.Background(), "4:abc:1", []RelationInput{
		{Type: "REQUIRES", TargetID: "4:abc:7"},
		{Type: "REQUIRES", TargetID: "4:abc:404"},
		{Type: "COVERS", TargetID: "4:abc:8"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var batchErr *BatchError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, 1, batchErr.Index)

	assert.Len(t, d.Queries, 4, "R3 must not trigger any store round-trip")
	assert.Equal(t, 1, countCreates(d.Queries), "only R1 may be written")
}

func TestCreateBatch_RejectsDuplicateBeforeWriting(t *testing.T) {
	d := &mockDriver{
		Results: []neo4j.EagerResult{
			targetResult("4:abc:7"),
			relationResult("5:abc:1", "REQUIRES", "4:abc:7"),
		},
	}
	m := NewRelationManager(d, NewResolver(d))

	err := m.CreateBatch(context.Background(), "4:abc:1", []RelationInput{
		{Type: "REQUIRES", TargetID: "4:abc:7"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 0, countCreates(d.Queries), "the duplicate must be rejected before any write")
}

func TestCreateBatch_InvalidTypeNeverReachesStore(t *testing.T) {
	d := &mockDriver{}
	m := NewRelationManager(d, NewResolver(d))

	err := m.CreateBatch(context.Background(), "4:abc:1", []RelationInput{
		{Type: "REQUIRES`]->(x) DELETE x //", TargetID: "4:abc:7"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRelationType)
	assert.Empty(t, d.Queries)
}

func TestCreateRelation_SplicesValidatedType(t *testing.T) {
	d := &mockDriver{
		Results: []neo4j.EagerResult{createdRelationResult("5:abc:1")},
	}
	m := NewRelationManager(d, NewResolver(d))

	err := m.Create(context.Background(), "4:abc:1", "BELONGS_TO", "4:abc:7")
	require.NoError(t, err)
	assert.Contains(t, d.Queries[0], "[rel:`BELONGS_TO`]")
	assert.Equal(t, "4:abc:1", d.Params[0]["course_id"])
	assert.Equal(t, "4:abc:7", d.Params[0]["target_id"])
}

func TestCreateRelation_NoRows(t *testing.T) {
	d := &mockDriver{Results: []neo4j.EagerResult{emptyResult()}}
	m := NewRelationManager(d, NewResolver(d))

	err := m.Create(context.Background(), "4:abc:1", "REQUIRES", "4:abc:404")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWriteFailed)
}

func TestUpdateRelation(t *testing.T) {
	d := &mockDriver{
		Results: []neo4j.EagerResult{
			singleRecord(
				[]string{"relation_id", "target_id"},
				[]interface{}{"5:abc:1", "4:abc:7"},
			),
		},
	}
	m := NewRelationManager(d, NewResolver(d))

	rel, err := m.Update(context.Background(), "5:abc:1", "RECOMMENDS", "4:abc:7")
	require.NoError(t, err)
	assert.Equal(t, "5:abc:1", rel.ID)
	assert.Equal(t, "RECOMMENDS", rel.Type)
	assert.Equal(t, "4:abc:7", rel.TargetID)

	assert.Equal(t, "RECOMMENDS", d.Params[0]["relation_type"])
}

func TestUpdateRelation_TargetMismatch(t *testing.T) {
	d := &mockDriver{Results: []neo4j.EagerResult{emptyResult()}}
	m := NewRelationManager(d, NewResolver(d))

	_, err := m.Update(context.Background(), "5:abc:1", "RECOMMENDS", "4:abc:999")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
