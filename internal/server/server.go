package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/edugraph/curricula/internal/config"
	"github.com/edugraph/curricula/internal/driver"
	"github.com/edugraph/curricula/internal/graph"
)

type Server struct {
	Resolver  *graph.Resolver
	Courses   *graph.Repository
	Relations *graph.RelationManager
	Query     *graph.QueryService

	log zerolog.Logger
}

func New(d driver.GraphDriver, cfg *config.Config, log zerolog.Logger) (*Server, error) {
	resolver := graph.NewResolver(d)

	query, err := graph.NewQueryService(d, cfg.Ontology)
	if err != nil {
		return nil, err
	}

	return &Server{
		Resolver:  resolver,
		Courses:   graph.NewRepository(d),
		Relations: graph.NewRelationManager(d, resolver),
		Query:     query,
		log:       log,
	}, nil
}

func (s *Server) SetupRouter() *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("reltype", func(fl validator.FieldLevel) bool {
			return graph.ValidRelationType(fl.Field().String())
		})
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.requestID(), s.requestLog())

	r.GET("/health", s.Health)

	r.POST("/courses", s.CreateCourse)
	r.GET("/courses", s.ListCourses)
	r.GET("/courses/:courseId", s.GetCourse)
	r.PUT("/courses/:courseId", s.UpdateCourse)
	r.POST("/courses/:courseId/relations", s.AddRelations)
	r.PUT("/courses/:courseId/relations/:relationId", s.UpdateRelation)

	return r
}

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info().
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}
