package bootstrap

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/sonaeson/groupbuy-proposal/internal/api/http"
	"github.com/sonaeson/groupbuy-proposal/internal/api/http/middleware"
	prophttp "github.com/sonaeson/groupbuy-proposal/internal/proposal/http"
	"github.com/sonaeson/groupbuy-proposal/internal/web"
)

type RouterDeps struct {
	ServiceName        string
	Version            string
	Proposals          prophttp.Generator
	AllowOrigins       []string
	ExposeErrorDetails bool
}

func BuildRouter(dep RouterDeps) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(corsConfig(dep.AllowOrigins)))

	r.HandleMethodNotAllowed = true
	r.NoMethod(prophttp.MethodNotAllowed)
	r.NoRoute(prophttp.NotFound)

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version)
	healthHandler.RegisterRoutes(r)

	prophttp.New(dep.Proposals, dep.ExposeErrorDetails).Register(r)

	page, err := web.New(dep.Proposals, dep.Version)
	if err != nil {
		return nil, fmt.Errorf("web: %w", err)
	}
	page.Register(r)

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}

	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
