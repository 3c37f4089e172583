package graph

import (
	"context"
	"fmt"

	"github.com/edugraph/curricula/internal/driver"
	"github.com/edugraph/curricula/internal/graph/model"
)

// Repository creates and partially updates course nodes. Uniqueness and
// existence are the caller's job (via Resolver); the repository only writes.
type Repository struct {
	Driver driver.GraphDriver
}

func NewRepository(d driver.GraphDriver) *Repository {
	return &Repository{Driver: d}
}

// Create writes a new course node. Unset attributes are stored as null,
// except Elective which defaults to false. The store assigns the identifier.
func (r *Repository) Create(ctx context.Context, in model.CourseInput) (*model.Course, error) {
	res, err := r.Driver.ExecuteQuery(ctx, driver.CreateCourseQuery, map[string]interface{}{
		"label":    optional(in.Label),
		"code":     optional(in.Code),
		"credits":  optional(in.Credits),
		"semester": optional(in.Semester),
		"elective": optional(in.Elective),
	})
	if err != nil {
		return nil, err
	}
	if len(res.Records) == 0 {
		return nil, fmt.Errorf("create course: %w", ErrWriteFailed)
	}
	return courseFromRecord(res.Records[0])
}

// Update coalesce-merges the given attributes into an existing course: nil
// fields keep their stored value. The course code is immutable and not part
// of the update set. Zero rows means the id vanished between the caller's
// existence check and this write.
func (r *Repository) Update(ctx context.Context, id string, in model.CourseInput) (*model.Course, error) {
	res, err := r.Driver.ExecuteQuery(ctx, driver.UpdateCourseQuery, map[string]interface{}{
		"course_id": id,
		"label":     optional(in.Label),
		"credits":   optional(in.Credits),
		"semester":  optional(in.Semester),
		"elective":  optional(in.Elective),
	})
	if err != nil {
		return nil, err
	}
	if len(res.Records) == 0 {
		return nil, fmt.Errorf("update course %s: %w", id, ErrWriteFailed)
	}
	return courseFromRecord(res.Records[0])
}
