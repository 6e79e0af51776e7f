package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blogform-backend/pkg/container"
)

// shutdownTimeout: thời gian chờ các request đang chạy xong trước khi tắt hẳn
// Submission handler chạy synchronous và rất nhanh nên 5s là quá đủ
const shutdownTimeout = 5 * time.Second

func Serve() {
	// ========================================
	// 1. BUILD DI CONTAINER
	// ========================================
	// Container build toàn bộ dependency graph
	// (config → counter → submission service → handler)
	// Lỗi ở đây nghĩa là config sai → application không start
	appContainer, err := container.NewContainer()
	if err != nil {
		log.Fatalf("❌ Failed to initialize container: %v", err)
	}
	defer appContainer.Cleanup()

	// ========================================
	// 2. ROUTER + HTTP SERVER
	// ========================================
	router := SetupRouter(appContainer)

	cfg := appContainer.Config.App
	srv := &http.Server{
		Addr:           fmt.Sprintf(":%s", cfg.Port),
		Handler:        router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// ========================================
	// 3. START SERVER (NON-BLOCKING)
	// ========================================
	// Listen trong goroutine riêng để main goroutine chờ shutdown signal
	go func() {
		log.Printf("🚀 %s v%s starting on http://localhost:%s (%s)", cfg.Name, cfg.Version, cfg.Port, cfg.Environment)
		log.Printf("📝 Blog form:      http://localhost:%s/", cfg.Port)
		log.Printf("📮 Submission API: http://localhost:%s/api/v1/submissions", cfg.Port)
		log.Printf("💚 Health check:   http://localhost:%s/api/v1/health", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// ========================================
	// 4. GRACEFUL SHUTDOWN
	// ========================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server exited gracefully")
}
