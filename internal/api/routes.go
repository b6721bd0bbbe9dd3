package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/povarna/generative-ai-agents/aoc2023/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/aoc2023/internal/models"
)

const OpenAPIPath = "/api/v1/openapi.json"

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.GET("/puzzles").
			To(handler.Puzzles).
			Doc("List the available puzzles").
			Metadata(restfulspec.KeyOpenAPITags, []string{"puzzles"}).
			Writes(PuzzlesResponse{}).
			Returns(200, "OK", PuzzlesResponse{}))

	ws.
		Route(ws.POST("/puzzles/{day}/parts/{part}").
			To(handler.Solve).
			Doc("Solve one part of a puzzle").
			Metadata(restfulspec.KeyOpenAPITags, []string{"puzzles"}).
			Param(ws.PathParameter("day", "Puzzle day (1-3)").DataType("integer")).
			Param(ws.PathParameter("part", "Puzzle part (1 or 2)").DataType("integer")).
			Reads(models.PuzzleInput{}).
			Writes(models.SolveResult{}).
			Returns(200, "OK", models.SolveResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Puzzle Not Found", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}

// RegisterOpenAPI serves the OpenAPI document for every web service already
// added to the container.
func RegisterOpenAPI(container *restful.Container) {
	config := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       OpenAPIPath,
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}

	container.Add(restfulspec.NewOpenAPIService(config))
}

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Advent of Code 2023 API",
			Description: "Solves Advent of Code 2023 puzzles",
			Version:     "1.0.0",
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "puzzles", Description: "Puzzle operations"}},
	}
}
