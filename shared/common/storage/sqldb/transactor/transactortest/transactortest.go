// Package transactortest มี Transactor ที่ไม่แตะฐานข้อมูล ใช้ทดสอบ command handler
package transactortest

import (
	"context"
	"errors"

	"go-cartmaster/shared/common/storage/sqldb/transactor"
)

// Fake เรียก txFunc ตรง ๆ และรัน post-commit hook เมื่อ txFunc ไม่คืน error
type Fake struct {
	Calls      int
	RolledBack int
	HookErr    error
}

var _ transactor.Transactor = (*Fake)(nil)

func (f *Fake) WithinTransaction(ctx context.Context, txFunc func(ctx context.Context, registerPostCommitHook func(transactor.PostCommitHook)) error) error {
	f.Calls++

	var hooks []transactor.PostCommitHook
	if err := txFunc(ctx, func(h transactor.PostCommitHook) { hooks = append(hooks, h) }); err != nil {
		f.RolledBack++
		return err
	}

	var errs []error
	for _, h := range hooks {
		if err := h(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	f.HookErr = errors.Join(errs...)
	return nil
}
