package cli

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Khaerul-jpg/Automation-Testing/internal/config"
	"github.com/Khaerul-jpg/Automation-Testing/internal/handlers"
	"github.com/Khaerul-jpg/Automation-Testing/internal/repository"
	"github.com/Khaerul-jpg/Automation-Testing/internal/services"
)

// ServerDependencies holds all dependencies needed for the store replica
type ServerDependencies struct {
	ServerConfig     config.ServerConfig
	Sessions         *repository.SessionRepository
	LoginHandler     http.Handler
	InventoryHandler http.Handler
	CartHandler      http.Handler
	LogoutHandler    http.Handler
}

// BuildServerDependencies wires the replica's handlers over one store and
// one session repository
func BuildServerDependencies(serverConfig config.ServerConfig) (ServerDependencies, error) {
	deps := ServerDependencies{
		ServerConfig: serverConfig,
		Sessions:     repository.NewSessionRepository(),
	}
	store := services.NewStoreService()

	loginHandler, err := handlers.NewLoginHandler(filepath.Join(serverConfig.TemplateDir, "login.html"), store, deps.Sessions)
	if err != nil {
		return deps, fmt.Errorf("failed to create login handler: %w", err)
	}
	deps.LoginHandler = loginHandler

	inventoryHandler, err := handlers.NewInventoryHandler(filepath.Join(serverConfig.TemplateDir, "inventory.html"), store, deps.Sessions)
	if err != nil {
		return deps, fmt.Errorf("failed to create inventory handler: %w", err)
	}
	deps.InventoryHandler = inventoryHandler

	deps.CartHandler = handlers.NewCartHandler(store, deps.Sessions)
	deps.LogoutHandler = handlers.NewLogoutHandler(deps.Sessions)

	return deps, nil
}

// RunServe starts the store replica and serves until interrupted
func RunServe(deps ServerDependencies) error {
	listener, server, err := StartServer(deps)
	if err != nil {
		return err
	}
	defer listener.Close()

	return WaitForShutdown(server, nil)
}

// StartServer creates and starts the HTTP server, returning the listener and server
func StartServer(deps ServerDependencies) (net.Listener, *http.Server, error) {
	// Set up routes
	mux := http.NewServeMux()
	mux.Handle("/", deps.LoginHandler)
	mux.Handle("/inventory.html", deps.InventoryHandler)
	mux.Handle("/cart/", deps.CartHandler)
	mux.Handle("/logout", deps.LogoutHandler)

	// Create listener
	addr := fmt.Sprintf(":%s", deps.ServerConfig.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create listener: %w", err)
	}

	// Create HTTP server
	server := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server listening on %s", listener.Addr().String())
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	return listener, server, nil
}

// LocalURL returns the base URL a browser on this machine reaches listener at
func LocalURL(listener net.Listener) string {
	return fmt.Sprintf("http://localhost:%d", listener.Addr().(*net.TCPAddr).Port)
}

// WaitForShutdown waits for a shutdown signal and gracefully shuts down the server
// If shutdown channel is nil, a new channel will be created and registered with signal.Notify
func WaitForShutdown(server *http.Server, shutdown chan os.Signal) error {
	return WaitForShutdownWithTimeout(server, shutdown, 30*time.Second)
}

// WaitForShutdownWithTimeout allows specifying a custom shutdown timeout (primarily for testing)
func WaitForShutdownWithTimeout(server *http.Server, shutdown chan os.Signal, shutdownTimeout time.Duration) error {
	// Channel to listen for interrupt or terminate signals
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(shutdown)
	}

	// Wait for shutdown signal
	sig := <-shutdown
	log.Printf("Received signal: %v, shutting down server...", sig)

	return StopServer(server, shutdownTimeout)
}

// StopServer gives outstanding requests timeout to complete, then closes the server
func StopServer(server *http.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := server.Shutdown(ctx); err != nil {
		// Force close the server after timeout
		if err := server.Close(); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	log.Println("Server stopped")
	return nil
}
