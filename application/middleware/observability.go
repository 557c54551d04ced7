package middleware

import (
	"fmt"
	"strings"
	"time"

	"go-cartmaster/shared/common/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// Observability สร้าง span, metric และ child logger ต่อ request
func Observability() fiber.Handler {
	tracer := otel.GetTracerProvider().Tracer("http_request")
	meter := otel.GetMeterProvider().Meter("http_request")

	requestCounter, _ := meter.Int64Counter("http_requests_total")
	requestDuration, _ := meter.Float64Histogram("http_request_duration_ms")
	inflightCounter, _ := meter.Int64UpDownCounter("http_requests_inflight")
	requestSize, _ := meter.Float64Histogram("http_request_size_bytes")
	responseSize, _ := meter.Float64Histogram("http_response_size_bytes")
	errorCounter, _ := meter.Int64Counter("http_requests_error_total")

	// path ที่ไม่ต้อง trace
	skipPaths := map[string]bool{
		"/health":  true,
		"/metrics": true,
	}
	skipPrefixes := []string{"/docs", "/favicon"}

	return func(c fiber.Ctx) error {
		start := time.Now()
		method := c.Method()
		path := c.Path()

		skip := skipPaths[path]
		for _, prefix := range skipPrefixes {
			if strings.HasPrefix(path, prefix) {
				skip = true
				break
			}
		}

		requestID := c.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(requestIDHeader, requestID)

		ctx := c.Context()
		var span trace.Span
		if skip {
			// noop span จาก context เดิม
			span = trace.SpanFromContext(ctx)
		} else {
			ctx, span = tracer.Start(ctx, "HTTP "+method+" "+path,
				trace.WithAttributes(
					attribute.String("http.request_id", requestID),
					attribute.String("http.request.method", method),
					attribute.String("url.path", path),
				),
			)
			defer span.End()
			inflightCounter.Add(ctx, 1)
		}

		reqLogger := logger.With(
			zap.String("request_id", requestID),
			zap.String("http.request.method", method),
			zap.String("url.path", path),
		)
		ctx = logger.NewContext(ctx, reqLogger)
		c.SetContext(ctx)

		err := c.Next()

		duration := time.Since(start).Milliseconds()
		status := c.Response().StatusCode()

		if !skip {
			// ใช้ route pattern เป็น label กัน cardinality ระเบิดจาก id ใน path
			labels := []attribute.KeyValue{
				attribute.String("http.request.method", method),
				attribute.String("http.route", c.Route().Path),
				attribute.Int("http.response.status_code", status),
			}

			requestCounter.Add(ctx, 1, metric.WithAttributes(labels...))
			requestDuration.Record(ctx, float64(duration), metric.WithAttributes(labels...))
			inflightCounter.Add(ctx, -1)

			if reqSize := c.Request().Header.ContentLength(); reqSize > 0 {
				requestSize.Record(ctx, float64(reqSize), metric.WithAttributes(labels...))
			}
			if resSize := len(c.Response().Body()); resSize > 0 {
				responseSize.Record(ctx, float64(resSize), metric.WithAttributes(labels...))
			}
			if status >= 400 {
				errorCounter.Add(ctx, 1, metric.WithAttributes(labels...))
			}

			span.SetAttributes(attribute.Int("http.response.status_code", status))
			if status >= 500 {
				span.SetStatus(codes.Error, "")
			} else {
				span.SetStatus(codes.Ok, "")
			}
		}

		// error ที่ไม่มี middleware ตัวไหนจัดการ
		if err != nil {
			reqLogger.Error("an error occurred", zap.Error(err))
		}

		reqLogger.Info(fmt.Sprintf("%d - %s %s", status, method, path),
			zap.Int("http.response.status_code", status),
			zap.Int64("duration_ms", duration),
			zap.String("trace_id", span.SpanContext().TraceID().String()),
			zap.String("span_id", span.SpanContext().SpanID().String()),
		)

		return err
	}
}
