package model

// Course is a curriculum resource node. The identifier is assigned by the
// store and never changes; every other attribute is nullable.
type Course struct {
	ID       string  `json:"course_id"`
	Label    *string `json:"label"`
	Code     *string `json:"code"`
	Credits  *int64  `json:"credits"`
	Semester *string `json:"semester"`
	Elective bool    `json:"elective"`
}

// CourseInput carries attributes for create and update calls. A nil field is
// stored as null on create (Elective defaults to false) and left untouched on
// update.
type CourseInput struct {
	Label    *string
	Code     *string
	Credits  *int64
	Semester *string
	Elective *bool
}

// TargetNode is any node a course may point at. Only its identifier and
// label are ever read here.
type TargetNode struct {
	ID    string  `json:"target_id"`
	Label *string `json:"label"`
}
