package http

import (
	"net/http"

	"packing/internal/generated/servers"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

const (
	APIBaseURL  = "/api/v1"
	OpenAPIPath = "/api/openapi.json"
	SwaggerPath = "/swagger/*"
	HealthPath  = "/health"
)

// RequestValidator adapts go-playground/validator to echo.Validator so
// handlers can check the validate tags of the generated request bodies.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// NewRouter builds the echo instance serving the packing API, its OpenAPI
// document, the Swagger UI and the health probe.
func NewRouter(server servers.ServerInterface, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				logger.Info("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Debug("request", fields...)
			return nil
		},
	}))

	e.GET(HealthPath, func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET(OpenAPIPath, func(c echo.Context) error {
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, openAPIDocument(logger))
	})
	e.GET(SwaggerPath, echoSwagger.EchoWrapHandler(echoSwagger.URL(OpenAPIPath)))

	servers.RegisterHandlersWithBaseURL(e, server, APIBaseURL)
	return e
}

func openAPIDocument(logger *zap.Logger) []byte {
	swagger, err := servers.GetSwagger()
	if err != nil {
		logger.Error("failed to load OpenAPI document", zap.Error(err))
		return []byte("{}")
	}
	doc, err := swagger.MarshalJSON()
	if err != nil {
		logger.Error("failed to marshal OpenAPI document", zap.Error(err))
		return []byte("{}")
	}
	return doc
}
