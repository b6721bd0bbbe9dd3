package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// NewLogger returns a filter that logs every request once the chain has run.
func NewLogger(logger *zerolog.Logger) restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		start := time.Now()
		chain.ProcessFilter(req, resp)

		logger.Info().
			Str("method", req.Request.Method).
			Str("path", req.Request.URL.Path).
			Int("status", resp.StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("HTTP request")
	}
}

func NewRecoverPanic(logger *zerolog.Logger) restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().
					Interface("panic", r).
					Str("path", req.Request.URL.Path).
					Bytes("stack", debug.Stack()).
					Msg("Recovered from panic")

				resp.WriteHeaderAndEntity(http.StatusInternalServerError, ErrorResponse{
					Error:   http.StatusText(http.StatusInternalServerError),
					Status:  http.StatusInternalServerError,
					Message: "internal server error",
				})
			}
		}()

		chain.ProcessFilter(req, resp)
	}
}

func HandleError(resp *restful.Response, err error, status int) {
	resp.WriteHeaderAndEntity(status, ErrorResponse{
		Error:   http.StatusText(status),
		Status:  status,
		Message: err.Error(),
	})
}
