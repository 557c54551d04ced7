package domainerrors

import "go-cartmaster/shared/common/errs"

var (
	// ข้อความเดียวกันทั้งกรณีไม่พบอีเมลและรหัสผ่านผิด
	ErrInvalidCredentials = errs.AuthenticationError("CREDENCIALES_INVALIDAS")
)
