package middleware

import (
	"errors"
	"net/http"

	"github.com/REVAN05072006/explainify/internal/domain"
	"github.com/REVAN05072006/explainify/internal/dto"
	"github.com/REVAN05072006/explainify/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler is a centralized error handling middleware. The pipeline
// reports distinct error kinds internally; the caller only ever sees the
// flattened {"error": message} envelope with a status separating client
// mistakes from backend trouble.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()

		// Handle domain errors
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			statusCode := mapDomainErrorToHTTPStatus(domainErr)

			if statusCode >= http.StatusInternalServerError {
				log.Error("Domain error occurred",
					zap.String("path", c.Path()),
					zap.String("code", string(domainErr.Code)),
					zap.Int("status", statusCode),
					zap.Error(domainErr.Err),
				)
			} else {
				log.Warn("Request rejected",
					zap.String("path", c.Path()),
					zap.String("code", string(domainErr.Code)),
					zap.Int("status", statusCode),
				)
			}

			return c.Status(statusCode).JSON(dto.ErrorResponse{Error: domainErr.Error()})
		}

		// Handle fiber errors
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{Error: fiberErr.Message})
		}

		// Handle unknown errors
		log.Error("Unknown error occurred",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal server error"})
	}
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes.
// Bad input is the client's fault; an unreachable backend is an upstream
// outage; a backend that answered with garbage is a bad gateway.
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.ErrInvalidInput:
		return http.StatusBadRequest
	case domain.ErrBackendUnavailable:
		return http.StatusServiceUnavailable
	case domain.ErrExtraction, domain.ErrParse, domain.ErrSchema, domain.ErrAnswerConsistency:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
