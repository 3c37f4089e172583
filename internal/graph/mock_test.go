package graph

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// mockDriver records every query and replays queued results in call order.
type mockDriver struct {
	Queries []string
	Params  []map[string]interface{}
	Results []neo4j.EagerResult
	Errs    []error
}

func (m *mockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	i := len(m.Queries)
	m.Queries = append(m.Queries, query)
	m.Params = append(m.Params, params)

	if i < len(m.Errs) && m.Errs[i] != nil {
		return neo4j.EagerResult{}, m.Errs[i]
	}
	if i < len(m.Results) {
		return m.Results[i], nil
	}
	return neo4j.EagerResult{}, nil
}

func (m *mockDriver) EnsureIndexes(ctx context.Context) error {
	return nil
}

func (m *mockDriver) Close(ctx context.Context) error {
	return nil
}

func singleRecord(keys []string, values []interface{}) neo4j.EagerResult {
	return neo4j.EagerResult{
		Records: []*neo4j.Record{
			{Keys: keys, Values: values},
		},
	}
}

func emptyResult() neo4j.EagerResult {
	return neo4j.EagerResult{Records: []*neo4j.Record{}}
}

func courseRecordResult(id string, props map[string]interface{}) neo4j.EagerResult {
	return singleRecord(
		[]string{"course_id", "course"},
		[]interface{}{id, neo4j.Node{ElementId: id, Labels: []string{"Resource"}, Props: props}},
	)
}
