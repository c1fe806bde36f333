//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"swim-academy-api/internal/domain/enrollment"
	"swim-academy-api/internal/domain/lesson"
	"swim-academy-api/internal/domain/locker"
	"swim-academy-api/internal/domain/payment"
	"swim-academy-api/internal/pkg/clock"
	"swim-academy-api/internal/pkg/config"
	"swim-academy-api/internal/usecase"
	"swim-academy-api/internal/usecase/commands"
	"swim-academy-api/tests/common/builder"
	"swim-academy-api/tests/common/uowtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	testLessonPrice = int64(150000)
	testLockerFee   = int64(30000)
)

type ReconciliationCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	tx       *uowtest.StubTx
	clk      *clock.MockClock
	commands commands.ReconciliationCommands
}

func (s *ReconciliationCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tx = uowtest.NewStubTx(s.ctrl)
	s.clk = clock.NewMockClock(time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))
	s.commands = commands.NewReconciliationCommands(
		uowtest.NewFakeUoW(s.tx),
		usecase.NewLockerInventoryManager(nil),
		s.clk,
		config.GatewayConfig{LockerFee: testLockerFee, LockerFeeTolerance: 1000},
	)
}

func (s *ReconciliationCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReconciliationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationCommandsTestSuite))
}

func (s *ReconciliationCommandsTestSuite) marchLesson(id uuid.UUID) *lesson.Lesson {
	return lesson.ReconstructLesson(
		id, "march class", 10, testLessonPrice,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		lesson.StatusOpen,
	)
}

func (s *ReconciliationCommandsTestSuite) notification(enrollmentID uuid.UUID, amount int64) commands.GatewayNotification {
	return commands.GatewayNotification{
		TID:        "tid-20260302-0001",
		OrderRef:   commands.OrderRef(enrollmentID),
		ResultCode: "0000",
		Amount:     amount,
		PayMethod:  "CARD",
	}
}

func (s *ReconciliationCommandsTestSuite) expectUser(userID uuid.UUID) {
	u, err := builder.NewUserBuilder().With(func(b *builder.UserBuilder) {
		b.ID = userID
	}).BuildDomain()
	s.Require().NoError(err)
	s.tx.UserRepo.EXPECT().FindByID(gomock.Any(), userID).Return(u, nil)
}

func (s *ReconciliationCommandsTestSuite) TestHandleNotification() {
	ctx := context.Background()

	s.Run("fail ack: malformed order reference", func() {
		n := commands.GatewayNotification{TID: "tid-x", OrderRef: "garbage", ResultCode: "0000"}
		s.Equal(commands.AckFail, s.commands.HandleNotification(ctx, n))
	})

	s.Run("ok ack: redelivered notification for an already reconciled payment", func() {
		enr := builder.NewEnrollmentBuilder().Paid().BuildDomain()
		n := s.notification(enr.ID(), testLessonPrice)
		existing := payment.Reconstruct(
			uuid.New(), enr.ID(), n.TID,
			testLessonPrice, testLessonPrice, 0, 0,
			payment.StatusPaid, "0000", "", "CARD", s.clk.Now(),
		)
		s.tx.PaymentRepo.EXPECT().FindByTID(gomock.Any(), n.TID).Return(existing, nil)

		s.Equal(commands.AckOK, s.commands.HandleNotification(ctx, n))
	})

	s.Run("fail ack: tid already bound to another enrollment", func() {
		enr := builder.NewEnrollmentBuilder().BuildDomain()
		n := s.notification(enr.ID(), testLessonPrice)
		existing := payment.Reconstruct(
			uuid.New(), uuid.New(), n.TID,
			testLessonPrice, testLessonPrice, 0, 0,
			payment.StatusPaid, "0000", "", "CARD", s.clk.Now(),
		)
		s.tx.PaymentRepo.EXPECT().FindByTID(gomock.Any(), n.TID).Return(existing, nil)

		s.Equal(commands.AckFail, s.commands.HandleNotification(ctx, n))
	})

	s.Run("ok ack: gateway failure code records a failed payment", func() {
		enr := builder.NewEnrollmentBuilder().BuildDomain()
		n := s.notification(enr.ID(), testLessonPrice)
		n.ResultCode = "9999"
		n.ResultMessage = "card declined"

		s.tx.PaymentRepo.EXPECT().FindByTID(gomock.Any(), n.TID).Return(nil, notFoundErr())
		s.tx.EnrollmentRepo.EXPECT().FindByIDForUpdate(gomock.Any(), enr.ID()).Return(enr, nil)
		s.tx.PaymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *payment.Payment) error {
				s.Equal(payment.StatusFailed, p.Status())
				s.Equal("9999", p.ResultCode())
				return nil
			})

		s.Equal(commands.AckOK, s.commands.HandleNotification(ctx, n))
		s.Equal(enrollment.PayUnpaid, enr.PayStatus())
	})

	s.Run("ok ack: success without a locker fee pays the lesson only", func() {
		enr := builder.NewEnrollmentBuilder().BuildDomain()
		n := s.notification(enr.ID(), testLessonPrice)

		s.tx.PaymentRepo.EXPECT().FindByTID(gomock.Any(), n.TID).Return(nil, notFoundErr())
		s.tx.EnrollmentRepo.EXPECT().FindByIDForUpdate(gomock.Any(), enr.ID()).Return(enr, nil)
		s.tx.LessonRepo.EXPECT().FindByID(gomock.Any(), enr.LessonID()).Return(s.marchLesson(enr.LessonID()), nil)
		s.tx.PaymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *payment.Payment) error {
				s.Equal(testLessonPrice, p.LessonAmount())
				s.Equal(int64(0), p.LockerAmount())
				return nil
			})
		s.tx.EnrollmentRepo.EXPECT().Update(gomock.Any(), enr).Return(nil)

		s.Equal(commands.AckOK, s.commands.HandleNotification(ctx, n))
		s.Equal(enrollment.PayPaid, enr.PayStatus())
		s.False(enr.LockerAllocated())
	})

	s.Run("ok ack: paid locker fee allocates a category locker", func() {
		enr := builder.NewEnrollmentBuilder().BuildDomain()
		n := s.notification(enr.ID(), testLessonPrice+testLockerFee)

		s.tx.PaymentRepo.EXPECT().FindByTID(gomock.Any(), n.TID).Return(nil, notFoundErr())
		s.tx.EnrollmentRepo.EXPECT().FindByIDForUpdate(gomock.Any(), enr.ID()).Return(enr, nil)
		s.tx.LessonRepo.EXPECT().FindByID(gomock.Any(), enr.LessonID()).Return(s.marchLesson(enr.LessonID()), nil)
		s.expectUser(enr.UserID())
		inv := &locker.Inventory{Category: locker.CategoryMale, Total: 10, Used: 3}
		s.tx.LockerRepo.EXPECT().GetForUpdate(gomock.Any(), locker.CategoryMale).Return(inv, nil)
		s.tx.LockerRepo.EXPECT().SaveUsed(gomock.Any(), inv).Return(nil)
		s.tx.PaymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *payment.Payment) error {
				s.Equal(testLessonPrice, p.LessonAmount())
				s.Equal(testLockerFee, p.LockerAmount())
				return nil
			})
		s.tx.EnrollmentRepo.EXPECT().Update(gomock.Any(), enr).Return(nil)

		s.Equal(commands.AckOK, s.commands.HandleNotification(ctx, n))
		s.True(enr.LockerAllocated())
		s.Equal(4, inv.Used)
	})

	s.Run("ok ack: exhausted inventory degrades to no allocation", func() {
		enr := builder.NewEnrollmentBuilder().BuildDomain()
		n := s.notification(enr.ID(), testLessonPrice+testLockerFee)

		s.tx.PaymentRepo.EXPECT().FindByTID(gomock.Any(), n.TID).Return(nil, notFoundErr())
		s.tx.EnrollmentRepo.EXPECT().FindByIDForUpdate(gomock.Any(), enr.ID()).Return(enr, nil)
		s.tx.LessonRepo.EXPECT().FindByID(gomock.Any(), enr.LessonID()).Return(s.marchLesson(enr.LessonID()), nil)
		s.expectUser(enr.UserID())
		inv := &locker.Inventory{Category: locker.CategoryMale, Total: 10, Used: 10}
		s.tx.LockerRepo.EXPECT().GetForUpdate(gomock.Any(), locker.CategoryMale).Return(inv, nil)
		s.tx.PaymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.tx.EnrollmentRepo.EXPECT().Update(gomock.Any(), enr).Return(nil)

		s.Equal(commands.AckOK, s.commands.HandleNotification(ctx, n))
		s.Equal(enrollment.PayPaid, enr.PayStatus())
		s.False(enr.LockerAllocated())
		s.Equal(10, inv.Used)
	})

	s.Run("ok ack: renewal transfers the previous allocation without touching counters", func() {
		enr := builder.NewEnrollmentBuilder().AsRenewal().With(func(b *builder.EnrollmentBuilder) {
			b.UsesLocker = true
		}).BuildDomain()
		// April lesson paid during the late-March renewal window.
		aprilLesson := lesson.ReconstructLesson(
			enr.LessonID(), "april class", 10, testLessonPrice,
			time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC),
			lesson.StatusOpen,
		)
		prev := builder.NewEnrollmentBuilder().Paid().WithLocker("tid-prev").With(func(b *builder.EnrollmentBuilder) {
			b.UserID = enr.UserID()
		}).BuildDomain()
		n := s.notification(enr.ID(), testLessonPrice+testLockerFee)

		s.tx.PaymentRepo.EXPECT().FindByTID(gomock.Any(), n.TID).Return(nil, notFoundErr())
		s.tx.EnrollmentRepo.EXPECT().FindByIDForUpdate(gomock.Any(), enr.ID()).Return(enr, nil)
		s.tx.LessonRepo.EXPECT().FindByID(gomock.Any(), enr.LessonID()).Return(aprilLesson, nil)
		s.tx.EnrollmentRepo.EXPECT().
			FindPaidWithLockerInMonth(gomock.Any(), enr.UserID(),
				time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)).
			Return(prev, nil)
		s.tx.EnrollmentRepo.EXPECT().Update(gomock.Any(), prev).Return(nil)
		s.tx.PaymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.tx.EnrollmentRepo.EXPECT().Update(gomock.Any(), enr).Return(nil)

		s.Equal(commands.AckOK, s.commands.HandleNotification(ctx, n))
		s.True(enr.LockerAllocated())
		s.Equal(n.TID, enr.LockerPgToken())
		s.False(prev.LockerAllocated())
	})

	s.Run("fail ack: second success for a paid enrollment under a new tid is refused", func() {
		enr := builder.NewEnrollmentBuilder().Paid().BuildDomain()
		n := s.notification(enr.ID(), testLessonPrice)
		n.TID = "tid-20260302-0002"

		// No payment row is written and the enrollment is left untouched.
		s.tx.PaymentRepo.EXPECT().FindByTID(gomock.Any(), n.TID).Return(nil, notFoundErr())
		s.tx.EnrollmentRepo.EXPECT().FindByIDForUpdate(gomock.Any(), enr.ID()).Return(enr, nil)

		s.Equal(commands.AckFail, s.commands.HandleNotification(ctx, n))
		s.Equal(enrollment.PayPaid, enr.PayStatus())
	})

	s.Run("ok ack: redelivered failure notification for a recorded failure", func() {
		enr := builder.NewEnrollmentBuilder().BuildDomain()
		n := s.notification(enr.ID(), testLessonPrice)
		n.ResultCode = "9999"
		existing := payment.Reconstruct(
			uuid.New(), enr.ID(), n.TID,
			0, 0, 0, 0,
			payment.StatusFailed, "9999", "card declined", "CARD", s.clk.Now(),
		)
		s.tx.PaymentRepo.EXPECT().FindByTID(gomock.Any(), n.TID).Return(existing, nil)

		s.Equal(commands.AckOK, s.commands.HandleNotification(ctx, n))
	})

	s.Run("fail ack: success under a tid recorded as failed is not auto-resolved", func() {
		enr := builder.NewEnrollmentBuilder().BuildDomain()
		n := s.notification(enr.ID(), testLessonPrice)
		existing := payment.Reconstruct(
			uuid.New(), enr.ID(), n.TID,
			0, 0, 0, 0,
			payment.StatusFailed, "9999", "card declined", "CARD", s.clk.Now(),
		)
		s.tx.PaymentRepo.EXPECT().FindByTID(gomock.Any(), n.TID).Return(existing, nil)

		s.Equal(commands.AckFail, s.commands.HandleNotification(ctx, n))
	})

	s.Run("fail ack: enrollment missing", func() {
		id := uuid.New()
		n := s.notification(id, testLessonPrice)
		s.tx.PaymentRepo.EXPECT().FindByTID(gomock.Any(), n.TID).Return(nil, notFoundErr())
		s.tx.EnrollmentRepo.EXPECT().FindByIDForUpdate(gomock.Any(), id).Return(nil, notFoundErr())

		s.Equal(commands.AckFail, s.commands.HandleNotification(ctx, n))
	})
}

func TestParseOrderRef(t *testing.T) {
	id := uuid.New()

	parsed, err := commands.ParseOrderRef(commands.OrderRef(id))
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if parsed != id {
		t.Fatalf("expected %s, got %s", id, parsed)
	}

	for _, ref := range []string{"", "ENR-", "ENR-not-a-uuid", id.String(), "XYZ-" + id.String()} {
		if _, err := commands.ParseOrderRef(ref); err == nil {
			t.Fatalf("expected error for %q", ref)
		}
	}
}
