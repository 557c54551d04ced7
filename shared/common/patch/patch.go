// Package patch แยก "ไม่ได้ส่ง field มา" ออกจาก "ส่ง null มา" สำหรับ partial update
package patch

import (
	"bytes"
	"encoding/json"
)

// Field[T] จำว่า field ถูกส่งมาใน JSON หรือไม่ (Set) และถูกส่งเป็น null หรือไม่ (Null)
type Field[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Of สร้าง Field ที่มีค่า
func Of[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true}
}

// UnmarshalJSON ถูกเรียกเฉพาะเมื่อ key มีอยู่ใน JSON จึงใช้ตั้ง Set ได้
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.Value = zero
		f.Null = true
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Present คืน true เมื่อมีค่าจริงที่ต้องเขียนทับ
func (f Field[T]) Present() bool {
	return f.Set && !f.Null
}

// Apply เขียนค่าทับ dst เมื่อ field มีค่า
func (f Field[T]) Apply(dst *T) {
	if f.Present() {
		*dst = f.Value
	}
}
