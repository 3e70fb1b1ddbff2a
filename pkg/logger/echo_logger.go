// File: pkg/logger/echo_logger.go
package logger

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

// 로그에 원문을 남기면 안 되는 쿼리 파라미터
var sensitiveQueryParams = map[string]bool{
	"token": true,
}

// NewEchoRequestLogger는 Echo 서버를 위한 Request Logger를 생성합니다.
// 인증 토큰 같은 민감한 쿼리 값은 마스킹합니다.
func NewEchoRequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	config := middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
		HandleError: true,

		LogLatency:      true,
		LogRemoteIP:     true,
		LogMethod:       true,
		LogURIPath:      true,
		LogRoutePath:    true,
		LogRequestID:    true,
		LogUserAgent:    true,
		LogStatus:       true,
		LogError:        true,
		LogResponseSize: true,
		LogQueryParams:  []string{"email", "token"},

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("request.remote_ip", v.RemoteIP),
				zap.String("request.method", v.Method),
				zap.String("request.path", v.URIPath),
				zap.String("request.route", v.RoutePath),
				zap.String("request.user_agent", v.UserAgent),
				zap.String("request.request_id", v.RequestID),
				zap.Int("response.status", v.Status),
				zap.Duration("response.latency", v.Latency),
				zap.Int64("response.response_size", v.ResponseSize),
			}

			if len(v.QueryParams) > 0 {
				fields = append(fields, zap.Any("request.query_params", maskQueryParams(v.QueryParams)))
			}

			switch {
			case v.Error != nil:
				logger.Error("Request failed", append(fields, zap.Error(v.Error))...)
			case v.Status >= 500:
				logger.Error("Server error", fields...)
			case v.Status >= 400:
				logger.Warn("Client error", fields...)
			default:
				logger.Info("Request completed", fields...)
			}
			return nil
		},
	}

	return middleware.RequestLoggerWithConfig(config)
}

// maskQueryParams 민감한 쿼리 값의 앞 8자만 남깁니다.
func maskQueryParams(params map[string][]string) map[string][]string {
	masked := make(map[string][]string, len(params))
	for k, values := range params {
		if !sensitiveQueryParams[k] {
			masked[k] = values
			continue
		}
		out := make([]string, len(values))
		for i, val := range values {
			if len(val) > 8 {
				out[i] = val[:8] + "..."
			} else {
				out[i] = "[MASKED]"
			}
		}
		masked[k] = out
	}
	return masked
}

// WithEchoLogger Echo에 zap 로거와 JSON 에러 핸들러를 설정합니다.
func WithEchoLogger(e *echo.Echo, logger *zap.Logger) {
	e.Logger = NewEchoZapLogger(logger)

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		message := http.StatusText(code)
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		}

		if code >= http.StatusInternalServerError {
			logger.Error("HTTP error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
			)
		}

		if c.Response().Committed {
			return
		}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, map[string]interface{}{
				"status":  "FAILED",
				"message": message,
			})
		}
		if err != nil {
			logger.Error("Failed to send error response", zap.Error(err))
		}
	}
}

// EchoZapLogger는 echo.Logger 인터페이스를 zap으로 구현합니다.
// 출력, 레벨, 헤더, 프리픽스 설정은 zap 설정을 따르므로 무시합니다.
type EchoZapLogger struct {
	Logger *zap.Logger
	sugar  *zap.SugaredLogger
}

// NewEchoZapLogger는 Echo의 Logger 인터페이스를 구현한 zap 로거 래퍼를 생성합니다.
func NewEchoZapLogger(logger *zap.Logger) *EchoZapLogger {
	return &EchoZapLogger{Logger: logger, sugar: logger.Sugar()}
}

func (l *EchoZapLogger) Output() io.Writer {
	return &zapWriter{logger: l.Logger}
}

func (l *EchoZapLogger) SetOutput(w io.Writer) {
}

func (l *EchoZapLogger) Level() log.Lvl {
	return log.INFO
}

func (l *EchoZapLogger) SetLevel(v log.Lvl) {
}

func (l *EchoZapLogger) SetHeader(h string) {
}

func (l *EchoZapLogger) Prefix() string {
	return ""
}

func (l *EchoZapLogger) SetPrefix(p string) {
}

func (l *EchoZapLogger) Print(i ...interface{}) {
	l.sugar.Info(i...)
}

func (l *EchoZapLogger) Printf(f string, i ...interface{}) {
	l.sugar.Infof(f, i...)
}

func (l *EchoZapLogger) Printj(j log.JSON) {
	l.Logger.Info("json_message", zap.Any("json", j))
}

func (l *EchoZapLogger) Debug(i ...interface{}) {
	l.sugar.Debug(i...)
}

func (l *EchoZapLogger) Debugf(f string, i ...interface{}) {
	l.sugar.Debugf(f, i...)
}

func (l *EchoZapLogger) Debugj(j log.JSON) {
	l.Logger.Debug("json_message", zap.Any("json", j))
}

func (l *EchoZapLogger) Info(i ...interface{}) {
	l.sugar.Info(i...)
}

func (l *EchoZapLogger) Infof(f string, i ...interface{}) {
	l.sugar.Infof(f, i...)
}

func (l *EchoZapLogger) Infoj(j log.JSON) {
	l.Logger.Info("json_message", zap.Any("json", j))
}

func (l *EchoZapLogger) Warn(i ...interface{}) {
	l.sugar.Warn(i...)
}

func (l *EchoZapLogger) Warnf(f string, i ...interface{}) {
	l.sugar.Warnf(f, i...)
}

func (l *EchoZapLogger) Warnj(j log.JSON) {
	l.Logger.Warn("json_message", zap.Any("json", j))
}

func (l *EchoZapLogger) Error(i ...interface{}) {
	l.sugar.Error(i...)
}

func (l *EchoZapLogger) Errorf(f string, i ...interface{}) {
	l.sugar.Errorf(f, i...)
}

func (l *EchoZapLogger) Errorj(j log.JSON) {
	l.Logger.Error("json_message", zap.Any("json", j))
}

func (l *EchoZapLogger) Fatal(i ...interface{}) {
	l.sugar.Fatal(i...)
}

func (l *EchoZapLogger) Fatalf(f string, i ...interface{}) {
	l.sugar.Fatalf(f, i...)
}

func (l *EchoZapLogger) Fatalj(j log.JSON) {
	l.Logger.Fatal("json_message", zap.Any("json", j))
}

func (l *EchoZapLogger) Panic(i ...interface{}) {
	l.sugar.Panic(i...)
}

func (l *EchoZapLogger) Panicf(f string, i ...interface{}) {
	l.sugar.Panicf(f, i...)
}

func (l *EchoZapLogger) Panicj(j log.JSON) {
	l.Logger.Panic("json_message", zap.Any("json", j))
}

// zapWriter는 io.Writer를 zap INFO 로그로 연결합니다.
type zapWriter struct {
	logger *zap.Logger
}

func (w *zapWriter) Write(p []byte) (n int, err error) {
	w.logger.Info(string(p))
	return len(p), nil
}
