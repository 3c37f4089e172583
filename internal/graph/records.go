package graph

import (
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/edugraph/curricula/internal/graph/model"
)

// optional unwraps a nullable input field for query parameters. The bolt
// serializer needs a plain nil, not a typed nil pointer.
func optional[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func courseFromRecord(rec *neo4j.Record) (*model.Course, error) {
	idVal, _ := rec.Get("course_id")
	id, ok := idVal.(string)
	if !ok {
		return nil, fmt.Errorf("unexpected course_id value of type %T", idVal)
	}

	nodeVal, _ := rec.Get("course")
	node, ok := nodeVal.(neo4j.Node)
	if !ok {
		return nil, fmt.Errorf("unexpected course value of type %T", nodeVal)
	}

	c := model.Course{
		ID:       id,
		Label:    stringProp(node.Props, "label"),
		Code:     stringProp(node.Props, "code"),
		Credits:  intProp(node.Props, "credits"),
		Semester: stringProp(node.Props, "semester"),
	}
	if b, ok := node.Props["elective"].(bool); ok {
		c.Elective = b
	}
	return &c, nil
}

func viewFromRecord(rec *neo4j.Record) (*model.CourseView, error) {
	idVal, _ := rec.Get("course_id")
	id, ok := idVal.(string)
	if !ok {
		return nil, fmt.Errorf("unexpected course_id value of type %T", idVal)
	}

	v := model.CourseView{
		Course: model.Course{
			ID:       id,
			Label:    recString(rec, "label"),
			Code:     recString(rec, "code"),
			Credits:  recInt(rec, "credits"),
			Semester: recString(rec, "semester"),
			Elective: recBool(rec, "elective"),
		},
		Relations: []model.Relation{},
	}

	relsVal, _ := rec.Get("relations")
	items, _ := relsVal.([]interface{})
	for _, item := range items {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		var rel model.Relation
		if s, ok := m["relation_id"].(string); ok {
			rel.ID = s
		}
		if s, ok := m["relation_type"].(string); ok {
			rel.Type = s
		}
		if s, ok := m["target_id"].(string); ok {
			rel.TargetID = s
		}
		if s, ok := m["target_label"].(string); ok {
			rel.TargetLabel = s
		}
		v.Relations = append(v.Relations, rel)
	}

	return &v, nil
}

func stringProp(props map[string]interface{}, key string) *string {
	if s, ok := props[key].(string); ok {
		return &s
	}
	return nil
}

func intProp(props map[string]interface{}, key string) *int64 {
	if n, ok := props[key].(int64); ok {
		return &n
	}
	return nil
}

func recValue(rec *neo4j.Record, key string) (string, bool) {
	v, _ := rec.Get(key)
	s, ok := v.(string)
	return s, ok
}

func recString(rec *neo4j.Record, key string) *string {
	v, _ := rec.Get(key)
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

func recInt(rec *neo4j.Record, key string) *int64 {
	v, _ := rec.Get(key)
	if n, ok := v.(int64); ok {
		return &n
	}
	return nil
}

func recBool(rec *neo4j.Record, key string) bool {
	v, _ := rec.Get(key)
	b, _ := v.(bool)
	return b
}
