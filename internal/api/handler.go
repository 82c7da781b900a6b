package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/lvonguyen/mispgate/internal/cache"
	"github.com/lvonguyen/mispgate/internal/misp"
)

const genericErrorMsg = "An unexpected error occurred"

// handle builds the one generic handler every action shares: decode the
// body, run the all-absent field check, forward exactly one remote call with
// a bounded deadline, wrap the result. Every failure path writes exactly one
// fault log entry; successes are never logged there.
func (s *Server) handle(action Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			s.fail(w, action, fmt.Sprintf("reading request body: %v", err))
			return
		}

		f, err := decodeFields(body)
		if err != nil {
			s.fail(w, action, fmt.Sprintf("malformed request body: %v", err))
			return
		}

		if len(action.Required) > 0 && f.AllEmpty(action.Required...) {
			s.faults.Record(action.Component, action.Op, "", "The fields are not entered correctly.")
			s.count(action.Path, http.StatusBadRequest)
			writeValidationError(w)
			return
		}

		cacheKey := ""
		if action.Cacheable && s.cache != nil {
			cacheKey = cache.Key(action.Path, body)
			if data, ok := s.cache.Get(r.Context(), cacheKey); ok {
				if s.metrics != nil {
					s.metrics.CacheHits.WithLabelValues(action.Path).Inc()
				}
				s.respond(w, action, f, data)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), s.remoteTimeout)
		defer cancel()

		start := time.Now()
		data, err := action.Call(ctx, s.misp, f)
		if s.metrics != nil {
			s.metrics.RemoteCallDuration.WithLabelValues(action.Component, action.Op).
				Observe(time.Since(start).Seconds())
		}

		if err != nil {
			s.faults.Record(action.Component, action.Op, f.Str(action.MessageArg), err.Error())
			s.logger.Error("remote call failed",
				zap.String("component", action.Component),
				zap.String("operation", action.Op),
				zap.Error(err))
			if s.metrics != nil {
				s.metrics.RemoteCallFailures.WithLabelValues(action.Component, action.Op, errKind(err)).Inc()
			}
			if misp.IsTimeout(err) {
				s.count(action.Path, http.StatusGatewayTimeout)
				writeError(w, http.StatusGatewayTimeout, "upstream request timed out")
				return
			}
			s.count(action.Path, http.StatusInternalServerError)
			writeError(w, http.StatusInternalServerError, genericErrorMsg)
			return
		}

		if cacheKey != "" {
			s.cache.Set(r.Context(), cacheKey, data)
		}
		s.respond(w, action, f, data)
	}
}

func (s *Server) respond(w http.ResponseWriter, action Action, f Fields, data []byte) {
	status := action.Status
	if status == 0 {
		status = http.StatusOK
	}

	message := action.Message
	if action.MessageArg != "" {
		message = fmt.Sprintf(action.Message, f.Str(action.MessageArg))
	}

	s.count(action.Path, status)
	writeEnvelope(w, status, message, data)
}

// fail covers errors in the handler's own logic, before any remote call.
func (s *Server) fail(w http.ResponseWriter, action Action, detail string) {
	s.faults.Record(action.Component, action.Op, "", detail)
	s.logger.Error("request handling failed",
		zap.String("component", action.Component),
		zap.String("operation", action.Op),
		zap.String("detail", detail))
	s.count(action.Path, http.StatusInternalServerError)
	writeError(w, http.StatusInternalServerError, genericErrorMsg)
}

func (s *Server) count(path string, status int) {
	if s.metrics != nil {
		s.metrics.RequestsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
	}
}

func errKind(err error) string {
	if misp.IsTimeout(err) {
		return string(misp.ErrKindTimeout)
	}
	return string(misp.ErrKindRemote)
}
