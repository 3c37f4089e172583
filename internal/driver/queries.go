package driver

// Relation types and ontology edge types cannot be bound as Cypher
// parameters, so the *Tmpl queries carry %s placeholders that callers fill
// with allow-listed tokens only.

const (
	GetCourseByIDQuery = `
		MATCH (course) WHERE elementId(course) = $course_id
		RETURN elementId(course) AS course_id, course
	`

	GetCourseByCodeQuery = `
		MATCH (course:Resource {code: $code})
		RETURN elementId(course) AS course_id, course
		LIMIT 1
	`

	GetTargetByIDQuery = `
		MATCH (target) WHERE elementId(target) = $target_id
		RETURN elementId(target) AS target_id, target
	`

	RelationExistsQueryTmpl = `
		MATCH (course) WHERE elementId(course) = $course_id
		MATCH (target) WHERE elementId(target) = $target_id
		OPTIONAL MATCH (course)-[rel:` + "`%s`" + `]->(target)
		RETURN rel
	`

	CreateCourseQuery = `
		CREATE (course:Resource {
			label: $label,
			code: $code,
			credits: $credits,
			semester: $semester,
			elective: coalesce($elective, false)
		})
		RETURN elementId(course) AS course_id, course
	`

	UpdateCourseQuery = `
		MATCH (course) WHERE elementId(course) = $course_id
		SET course.label = coalesce($label, course.label),
			course.credits = coalesce($credits, course.credits),
			course.semester = coalesce($semester, course.semester),
			course.elective = coalesce($elective, course.elective)
		RETURN elementId(course) AS course_id, course
	`

	CreateRelationQueryTmpl = `
		MATCH (course) WHERE elementId(course) = $course_id
		MATCH (target) WHERE elementId(target) = $target_id
		CREATE (course)-[rel:` + "`%s`" + `]->(target)
		RETURN elementId(rel) AS relation_id
	`

	UpdateRelationQuery = `
		MATCH ()-[rel]->(target)
		WHERE elementId(rel) = $relation_id AND elementId(target) = $target_id
		SET rel.relation_type = $relation_type
		RETURN elementId(rel) AS relation_id, elementId(target) AS target_id
	`

	ListCoursesQueryTmpl = `
		MATCH (ancestor:Resource {label: $ancestor})
		MATCH (class:Resource)-[:` + "`%s`" + `*0..]->(ancestor)
		MATCH (course:Resource)-[:` + "`%s`" + `]->(class)
		OPTIONAL MATCH (course)-[rel]->(related)
		WITH course, collect({relation_id: elementId(rel), relation_type: type(rel), target_id: elementId(related), target_label: related.label}) AS all_relations
		WHERE ($relation_types IS NULL OR all(t IN $relation_types WHERE any(r IN all_relations WHERE r.relation_type = t)))
		RETURN DISTINCT elementId(course) AS course_id,
			course.label AS label,
			course.code AS code,
			course.credits AS credits,
			course.semester AS semester,
			course.elective AS elective,
			[r IN all_relations WHERE r.target_label IS NOT NULL] AS relations
		SKIP $skip
		LIMIT $limit
	`

	GetCourseViewQuery = `
		MATCH (course) WHERE elementId(course) = $course_id
		OPTIONAL MATCH (course)-[rel]->(related)
		WITH course, collect({relation_id: elementId(rel), relation_type: type(rel), target_id: elementId(related), target_label: related.label}) AS all_relations
		RETURN elementId(course) AS course_id,
			course.label AS label,
			course.code AS code,
			course.credits AS credits,
			course.semester AS semester,
			course.elective AS elective,
			[r IN all_relations WHERE r.target_label IS NOT NULL] AS relations
	`
)
