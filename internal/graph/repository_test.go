package graph

import (
	"context"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edugraph/curricula/internal/graph/model"
)

func strPtr(s string) *string { return &s }
func intPtr(n int64) *int64   { return &n }
func boolPtr(b bool) *bool    { return &b }

func TestCreateCourse(t *testing.T) {
	d := &mockDriver{
		Results: []neo4j.EagerResult{
			courseRecordResult("4:abc:1", map[string]interface{}{
				"label":    "Databases",
				"code":     "CS305",
				"credits":  int64(3),
				"elective": false,
			}),
		},
	}
	repo := NewRepository(d)

	course, err := repo.Create(context.Background(), model.CourseInput{
		Label:   strPtr("Databases"),
		Code:    strPtr("CS305"),
		Credits: intPtr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, "4:abc:1", course.ID)
	assert.Equal(t, "Databases", *course.Label)
	assert.False(t, course.Elective)

	// Unset fields must reach the store as null so the query's coalesce can
	// apply the elective default.
	assert.Equal(t, "Databases", d.Params[0]["label"])
	assert.Nil(t, d.Params[0]["semester"])
	assert.Nil(t, d.Params[0]["elective"])
	assert.Contains(t, d.Queries[0], "coalesce($elective, false)")
}

func TestCreateCourse_NoRows(t *testing.T) {
	d := &mockDriver{Results: []neo4j.EagerResult{emptyResult()}}
	repo := NewRepository(d)

	_, err := repo.Create(context.Background(), model.CourseInput{Label: strPtr("X")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWriteFailed)
}

func TestUpdateCourse_CoalesceMerge(t *testing.T) {
	d := &mockDriver{
		Results: []neo4j.EagerResult{
			courseRecordResult("4:abc:1", map[string]interface{}{
				"label":    "Databases",
				"code":     "CS305",
				"credits":  int64(4),
				"elective": true,
			}),
		},
	}
	repo := NewRepository(d)

	course, err := repo.Update(context.Background(), "4:abc:1", model.CourseInput{
		Credits:  intPtr(4),
		Elective: boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), *course.Credits)
	assert.True(t, course.Elective)

	// Omitted attributes are sent as null and coalesced to their stored
	// values; the code is immutable and not part of the update at all.
	assert.Equal(t, int64(4), d.Params[0]["credits"])
	assert.Nil(t, d.Params[0]["label"])
	assert.Nil(t, d.Params[0]["semester"])
	assert.NotContains(t, d.Params[0], "code")
	assert.Contains(t, d.Queries[0], "coalesce($label, course.label)")
	assert.NotContains(t, d.Queries[0], "course.code =")
}

func TestUpdateCourse_NoRows(t *testing.T) {
	d := &mockDriver{Results: []neo4j.EagerResult{emptyResult()}}
	repo := NewRepository(d)

	_, err := repo.Update(context.Background(), "4:abc:99", model.CourseInput{Label: strPtr("X")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWriteFailed)
}
