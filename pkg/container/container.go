package container

import (
	"fmt"

	"blogform-backend/internal/config"
	"blogform-backend/internal/domains/submission"
	submissionHandler "blogform-backend/internal/domains/submission/handler"
	submissionService "blogform-backend/internal/domains/submission/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Struct này là "root" của dependency graph
// Pattern: Service Locator + Dependency Injection
type Container struct {
	// Infrastructure - shared, singleton trong app lifetime
	Config *config.Config

	// Counter là process-wide state duy nhất của app:
	// owned instance, single writer là SubmissionService
	Counter *submission.Counter

	// Service layer (business logic, stateless ngoài counter)
	SubmissionService submission.Service

	// Handler layer (HTTP, thin, delegates to services)
	SubmissionHandler *submissionHandler.SubmissionHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	counter := submission.NewCounter()
	svc := submissionService.NewSubmissionService(counter)

	return &Container{
		Config:            cfg,
		Counter:           counter,
		SubmissionService: svc,
		SubmissionHandler: submissionHandler.NewSubmissionHandler(svc),
	}, nil
}

// Cleanup giải phóng resources khi shutdown
// Hiện tại không có connection nào cần đóng (không DB, không cache)
// nhưng giữ hook để server.go gọi thống nhất
func (c *Container) Cleanup() {}
