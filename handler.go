package ftracker

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	echoadapter "github.com/awslabs/aws-lambda-go-api-proxy/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

type LambdaFunc func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// LambdaHandler proxies api gateway requests to the engine
func LambdaHandler(el *echoadapter.EchoLambda) LambdaFunc {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return el.ProxyWithContext(ctx, req)
	}
}

// TrainingHandler computes the summary for the package in the request body
func TrainingHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var pkg Package
		if err := c.Bind(&pkg); err != nil {
			return err
		}
		t, err := ReadPackage(pkg.Code, pkg.Data)
		if err != nil {
			if errors.Is(err, ErrInputData) {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			return err
		}
		msg := ShowTrainingInfo(t)
		return c.JSON(http.StatusOK, &Summary{InfoMessage: msg, Message: msg.Message()})
	}
}

// HealthHandler reports the service is alive
func HealthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

// RequestLogger logs each request with the global logger
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}
			req := c.Request()
			log.Info().
				Str("method", req.Method).
				Str("uri", req.RequestURI).
				Int("status", c.Response().Status).
				Dur("elapsed", time.Since(start)).
				Msg("request")
			return nil
		}
	}
}

// NewEngine returns an engine serving the training endpoints under basePath
func NewEngine(basePath string) *echo.Echo {
	engine := echo.New()
	engine.HideBanner = true
	engine.HidePort = true
	engine.Use(middleware.Recover())
	engine.Use(RequestLogger())

	base := engine.Group(strings.TrimRight(basePath, "/"))
	base.GET("/healthz", HealthHandler())
	base.POST("/training", TrainingHandler())
	return engine
}
