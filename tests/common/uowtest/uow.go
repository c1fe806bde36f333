//go:build unit

// Package uowtest provides a pass-through UnitOfWork for command tests:
// every transactional closure runs immediately against a fixed Tx built
// from per-repository mocks.
package uowtest

import (
	"context"

	"swim-academy-api/internal/infra"
	"swim-academy-api/internal/usecase/shared"
	sharedmock "swim-academy-api/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

type StubTx struct {
	LessonRepo     *sharedmock.MockLessonRepository
	EnrollmentRepo *sharedmock.MockEnrollmentRepository
	PaymentRepo    *sharedmock.MockPaymentRepository
	LockerRepo     *sharedmock.MockLockerRepository
	UserRepo       *sharedmock.MockUserRepository
}

func NewStubTx(ctrl *gomock.Controller) *StubTx {
	return &StubTx{
		LessonRepo:     sharedmock.NewMockLessonRepository(ctrl),
		EnrollmentRepo: sharedmock.NewMockEnrollmentRepository(ctrl),
		PaymentRepo:    sharedmock.NewMockPaymentRepository(ctrl),
		LockerRepo:     sharedmock.NewMockLockerRepository(ctrl),
		UserRepo:       sharedmock.NewMockUserRepository(ctrl),
	}
}

func (t *StubTx) Lessons() shared.LessonRepository         { return t.LessonRepo }
func (t *StubTx) Enrollments() shared.EnrollmentRepository { return t.EnrollmentRepo }
func (t *StubTx) Payments() shared.PaymentRepository       { return t.PaymentRepo }
func (t *StubTx) Lockers() shared.LockerRepository         { return t.LockerRepo }
func (t *StubTx) Users() shared.UserRepository             { return t.UserRepo }
func (t *StubTx) DB() infra.DBTX                           { return nil }

type FakeUoW struct {
	Tx shared.Tx
}

func NewFakeUoW(tx shared.Tx) *FakeUoW {
	return &FakeUoW{Tx: tx}
}

func (u *FakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.Tx)
}

func (u *FakeUoW) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.Tx)
}

func (u *FakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db infra.DBTX) error) error {
	return fn(ctx, nil)
}
