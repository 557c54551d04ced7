package middleware

import (
	"errors"

	"go-cartmaster/shared/common/errs"
	"go-cartmaster/shared/common/logger"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// ResponseError แปลง error ที่ handler คืนมาเป็น JSON {"error": message} พร้อม status ตามชนิด error
func ResponseError() fiber.Handler {
	return func(c fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}

		// error ของ fiber เอง เช่น 404 route not found, 405
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		status := errs.GetHTTPStatus(err)
		message := err.Error()

		var appErr *errs.AppError
		if errors.As(err, &appErr) {
			message = appErr.Message
		}

		// ไม่เปิดเผยรายละเอียดของ error ฝั่ง server
		if status >= fiber.StatusInternalServerError {
			logger.FromContext(c.Context()).Error("internal error", zap.Error(err))
			message = "internal server error"
		}

		return c.Status(status).JSON(fiber.Map{"error": message})
	}
}
