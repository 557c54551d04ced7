package httputil

import (
	"strconv"

	"go-cartmaster/shared/common/errs"

	"github.com/gofiber/fiber/v3"
)

// ParamID อ่าน path param ที่เป็น id แบบ int64 ค่าที่ไม่มีอยู่จริง เช่น 0 หรือติดลบ
// ปล่อยให้ query หาไม่พบแล้วตอบ not found
func ParamID(c fiber.Ctx, name string) (int64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.InputValidationError("invalid " + name + ": " + raw)
	}
	return id, nil
}

// QueryBool อ่าน query param แบบ bool คืน def เมื่อไม่ได้ส่งมา
func QueryBool(c fiber.Ctx, name string, def bool) (bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def, errs.InputValidationError("invalid " + name + ": " + raw)
	}
	return v, nil
}
