// Package server assembles the gin engine and runs the HTTP listener.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/ARQAP/ARQAP-Catalog/src/controllers"
	"github.com/ARQAP/ARQAP-Catalog/src/db"
	"github.com/ARQAP/ARQAP-Catalog/src/logging"
	"github.com/ARQAP/ARQAP-Catalog/src/middleware"
	"github.com/ARQAP/ARQAP-Catalog/src/routes"
	"github.com/ARQAP/ARQAP-Catalog/src/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Services bundles everything the routes depend on.
type Services struct {
	Conn      *db.Conn
	Catalogs  *services.CatalogService
	Artifacts *services.ArtifactService
	Export    *services.ExportService
	Users     *services.UserService
}

// NewServices builds the service layer on top of conn.
func NewServices(conn *db.Conn, secret string, tokenTTL time.Duration) (*Services, error) {
	users, err := services.NewUserService(secret, tokenTTL)
	if err != nil {
		return nil, err
	}
	catalogs := services.NewCatalogService(conn)
	artifacts := services.NewArtifactService(conn)
	return &Services{
		Conn:      conn,
		Catalogs:  catalogs,
		Artifacts: artifacts,
		Export:    services.NewExportService(catalogs, artifacts),
		Users:     users,
	}, nil
}

// RouterOptions configures the middleware chain.
type RouterOptions struct {
	CORSOrigins     []string
	AllowAllOrigins bool
	TrustRoleHeader bool
}

// NewRouter returns the gin engine serving the catalog API.
func NewRouter(svc *Services, opts RouterOptions) *gin.Engine {
	controllers.UseJSONFieldNames()

	router := gin.New()
	router.Use(
		logging.RequestLogger(),
		gin.Recovery(),
		middleware.SetupCORS(opts.CORSOrigins, opts.AllowAllOrigins),
		middleware.BodyLimit(middleware.MaxBodyBytes),
		middleware.ResolveRole(svc.Users, opts.TrustRoleHeader),
	)

	routes.SetupSystemRoutes(router, svc.Artifacts, svc.Conn, string(svc.Conn.Dialect()))
	routes.SetupUserRoutes(router, svc.Users)
	routes.SetupCatalogRoutes(router, svc.Catalogs, svc.Artifacts, svc.Export)
	routes.SetupArtifactRoutes(router, svc.Artifacts)

	return router
}

// Server is an HTTP server bound to a listener.
type Server struct {
	http     *http.Server
	listener net.Listener
}

// Listen binds addr so that the caller knows the port accepts connections
// before Serve is called.
func Listen(addr string, handler http.Handler) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Server{
		http: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		listener: ln,
	}, nil
}

// Addr is the bound address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve blocks until ctx is done, then shuts the server down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.Serve(s.listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
