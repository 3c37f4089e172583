package model

// Relation is a typed directed edge from a course to a target node.
type Relation struct {
	ID          string `json:"relation_id"`
	Type        string `json:"relation_type"`
	TargetID    string `json:"target_id"`
	TargetLabel string `json:"target_label,omitempty"`
}

// CourseView is a course with its outgoing relations aggregated, as returned
// by listing and lookup queries. Relations whose target carries no label are
// dropped during aggregation.
type CourseView struct {
	Course
	Relations []Relation `json:"relations"`
}
