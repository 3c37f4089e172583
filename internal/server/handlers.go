package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edugraph/curricula/internal/graph"
	"github.com/edugraph/curricula/internal/graph/model"
)

type CourseRequest struct {
	Label    *string `json:"label"`
	Code     *string `json:"code"`
	Credits  *int64  `json:"credits"`
	Semester *string `json:"semester"`
	Elective *bool   `json:"elective"`
}

func (r CourseRequest) input() model.CourseInput {
	return model.CourseInput{
		Label:    r.Label,
		Code:     r.Code,
		Credits:  r.Credits,
		Semester: r.Semester,
		Elective: r.Elective,
	}
}

type RelationRequest struct {
	Type     string `json:"relation_type" binding:"required,reltype"`
	TargetID string `json:"target_id" binding:"required"`
}

type AddRelationsRequest struct {
	Relations []RelationRequest `json:"relations" binding:"required,dive"`
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) CreateCourse(c *gin.Context) {
	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// Courses are unique by code. A course created without a code skips the
	// check; it can never collide.
	if req.Code != nil {
		existing, err := s.Resolver.CourseByCode(c.Request.Context(), *req.Code)
		if err != nil {
			s.storeError(c, err)
			return
		}
		if existing != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("course with code %s already exists", *req.Code)})
			return
		}
	}

	course, err := s.Courses.Create(c.Request.Context(), req.input())
	if err != nil {
		if errors.Is(err, graph.ErrWriteFailed) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create course"})
			return
		}
		s.storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "course added successfully", "course": course})
}

func (s *Server) UpdateCourse(c *gin.Context) {
	courseID := c.Param("courseId")

	existing, err := s.Resolver.CourseByID(c.Request.Context(), courseID)
	if err != nil {
		s.storeError(c, err)
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("course with id %s does not exist", courseID)})
		return
	}

	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	course, err := s.Courses.Update(c.Request.Context(), courseID, req.input())
	if err != nil {
		if errors.Is(err, graph.ErrWriteFailed) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update course"})
			return
		}
		s.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "course updated successfully", "course": course})
}

func (s *Server) AddRelations(c *gin.Context) {
	var req AddRelationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	inputs := make([]graph.RelationInput, len(req.Relations))
	for i, r := range req.Relations {
		inputs[i] = graph.RelationInput{Type: r.Type, TargetID: r.TargetID}
	}

	err := s.Relations.CreateBatch(c.Request.Context(), c.Param("courseId"), inputs)
	if err != nil {
		var batchErr *graph.BatchError
		if errors.As(err, &batchErr) && isRejection(batchErr.Err) {
			// Entries before the failing index were already created and are
			// not rolled back; the index tells the caller where the batch
			// stopped.
			c.JSON(http.StatusBadRequest, gin.H{"error": batchErr.Err.Error(), "index": batchErr.Index})
			return
		}
		s.storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "relations added successfully"})
}

func (s *Server) UpdateRelation(c *gin.Context) {
	var req RelationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	relation, err := s.Relations.Update(c.Request.Context(), c.Param("relationId"), req.Type, req.TargetID)
	if err != nil {
		if errors.Is(err, graph.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		s.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "relation updated successfully", "relation": relation})
}

func (s *Server) ListCourses(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a positive integer"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}

	var filter []string
	if raw := c.Query("relation"); raw != "" {
		filter = strings.Split(raw, ",")
	}

	courses, err := s.Query.List(c.Request.Context(), page, limit, filter)
	if err != nil {
		s.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, courses)
}

func (s *Server) GetCourse(c *gin.Context) {
	courseID := c.Param("courseId")

	course, err := s.Query.GetByID(c.Request.Context(), courseID)
	if err != nil {
		if errors.Is(err, graph.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("course with id %s not found", courseID)})
			return
		}
		s.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

// isRejection separates caller mistakes (400) from store failures (500).
func isRejection(err error) bool {
	return errors.Is(err, graph.ErrNotFound) ||
		errors.Is(err, graph.ErrConflict) ||
		errors.Is(err, graph.ErrInvalidRelationType)
}

func (s *Server) storeError(c *gin.Context, err error) {
	s.log.Error().
		Err(err).
		Str("request_id", c.GetString("request_id")).
		Msg("graph store error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "graph store error"})
}
