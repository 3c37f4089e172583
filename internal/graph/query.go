package graph

import (
	"context"
	"fmt"

	"github.com/edugraph/curricula/internal/config"
	"github.com/edugraph/curricula/internal/driver"
	"github.com/edugraph/curricula/internal/graph/model"
)

// QueryService answers listing and single-course lookups. Courses are the
// nodes reachable from the configured ancestor class through the subclass
// closure and one instance edge; each result carries its outgoing relations
// aggregated into a list.
type QueryService struct {
	Driver    driver.GraphDriver
	ancestor  string
	listQuery string
}

// NewQueryService builds the listing query from the ontology vocabulary.
// Edge types end up in query text, so they must pass the same token
// validation as relation types.
func NewQueryService(d driver.GraphDriver, ont config.OntologyConfig) (*QueryService, error) {
	if !ValidRelationType(ont.SubclassEdge) {
		return nil, fmt.Errorf("subclass edge %w: %q", ErrInvalidRelationType, ont.SubclassEdge)
	}
	if !ValidRelationType(ont.InstanceEdge) {
		return nil, fmt.Errorf("instance edge %w: %q", ErrInvalidRelationType, ont.InstanceEdge)
	}

	return &QueryService{
		Driver:    d,
		ancestor:  ont.CourseAncestor,
		listQuery: fmt.Sprintf(driver.ListCoursesQueryTmpl, ont.SubclassEdge, ont.InstanceEdge),
	}, nil
}

// List returns one page of courses. page is 1-based. When filter is
// non-empty, a course is included only if it has at least one relation of
// every listed type. Ordering follows store iteration order and is not
// stable across calls.
func (s *QueryService) List(ctx context.Context, page, limit int, filter []string) ([]model.CourseView, error) {
	if page < 1 || limit < 1 {
		return nil, fmt.Errorf("page and limit must be positive, got page=%d limit=%d", page, limit)
	}

	// Filter types are bound as data, never spliced into the query.
	var types interface{}
	if len(filter) > 0 {
		types = filter
	}

	res, err := s.Driver.ExecuteQuery(ctx, s.listQuery, map[string]interface{}{
		"ancestor":       s.ancestor,
		"relation_types": types,
		"skip":           (page - 1) * limit,
		"limit":          limit,
	})
	if err != nil {
		return nil, err
	}

	views := make([]model.CourseView, 0, len(res.Records))
	for _, rec := range res.Records {
		v, err := viewFromRecord(rec)
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

// GetByID is the single-course counterpart of List, without paging or
// filtering. Relations are aggregated identically.
func (s *QueryService) GetByID(ctx context.Context, id string) (*model.CourseView, error) {
	res, err := s.Driver.ExecuteQuery(ctx, driver.GetCourseViewQuery, map[string]interface{}{
		"course_id": id,
	})
	if err != nil {
		return nil, err
	}
	if len(res.Records) == 0 {
		return nil, fmt.Errorf("course %s: %w", id, ErrNotFound)
	}
	return viewFromRecord(res.Records[0])
}
