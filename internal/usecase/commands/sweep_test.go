//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"swim-academy-api/internal/domain/enrollment"
	"swim-academy-api/internal/domain/locker"
	"swim-academy-api/internal/pkg/clock"
	"swim-academy-api/internal/pkg/errs"
	"swim-academy-api/internal/usecase"
	"swim-academy-api/internal/usecase/commands"
	"swim-academy-api/tests/common/builder"
	"swim-academy-api/tests/common/uowtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SweepCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	tx       *uowtest.StubTx
	clk      *clock.MockClock
	commands commands.SweepCommands
}

func (s *SweepCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tx = uowtest.NewStubTx(s.ctrl)
	s.clk = clock.NewMockClock(time.Date(2026, 4, 1, 3, 0, 0, 0, time.UTC))
	s.commands = commands.NewSweepCommands(
		uowtest.NewFakeUoW(s.tx),
		usecase.NewLockerInventoryManager(nil),
		s.clk,
	)
}

func (s *SweepCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSweepCommandsSuite(t *testing.T) {
	suite.Run(t, new(SweepCommandsTestSuite))
}

func (s *SweepCommandsTestSuite) TestExpireStaleHolds() {
	ctx := context.Background()

	s.Run("success: reports the number of expired holds", func() {
		s.tx.EnrollmentRepo.EXPECT().ExpireStaleHolds(gomock.Any(), s.clk.Now()).Return(int64(3), nil)

		n, err := s.commands.ExpireStaleHolds(ctx)
		s.Require().NoError(err)
		s.Equal(int64(3), n)
	})

	s.Run("error: database failure surfaces", func() {
		s.tx.EnrollmentRepo.EXPECT().ExpireStaleHolds(gomock.Any(), s.clk.Now()).Return(int64(0), dbFailureErr())

		_, err := s.commands.ExpireStaleHolds(ctx)
		s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func (s *SweepCommandsTestSuite) TestReleaseLockersForEndedLessons() {
	ctx := context.Background()

	s.Run("success: nothing ended, nothing released", func() {
		s.tx.LessonRepo.EXPECT().EndedLessonIDs(gomock.Any(), s.clk.Now()).Return(nil, nil)

		n, err := s.commands.ReleaseLockersForEndedLessons(ctx)
		s.Require().NoError(err)
		s.Zero(n)
	})

	s.Run("success: each holder of an ended lesson gives the locker back", func() {
		lessonID := uuid.New()
		holder := builder.NewEnrollmentBuilder().Paid().WithLocker("tid-1").With(func(b *builder.EnrollmentBuilder) {
			b.LessonID = lessonID
		}).BuildDomain()
		u, err := builder.NewUserBuilder().With(func(b *builder.UserBuilder) {
			b.ID = holder.UserID()
		}).BuildDomain()
		s.Require().NoError(err)

		s.tx.LessonRepo.EXPECT().EndedLessonIDs(gomock.Any(), s.clk.Now()).Return([]uuid.UUID{lessonID}, nil)
		s.tx.EnrollmentRepo.EXPECT().FindAllocatedForLessons(gomock.Any(), []uuid.UUID{lessonID}).
			Return([]*enrollment.Enrollment{holder}, nil)
		s.tx.UserRepo.EXPECT().FindByID(gomock.Any(), holder.UserID()).Return(u, nil)
		inv := &locker.Inventory{Category: locker.CategoryMale, Total: 10, Used: 2}
		s.tx.LockerRepo.EXPECT().GetForUpdate(gomock.Any(), locker.CategoryMale).Return(inv, nil)
		s.tx.LockerRepo.EXPECT().SaveUsed(gomock.Any(), inv).Return(nil)
		s.tx.EnrollmentRepo.EXPECT().Update(gomock.Any(), holder).Return(nil)

		n, err := s.commands.ReleaseLockersForEndedLessons(ctx)
		s.Require().NoError(err)
		s.Equal(1, n)
		s.Equal(1, inv.Used)
		s.False(holder.LockerAllocated())
	})
}

func (s *SweepCommandsTestSuite) TestResetLockerUsage() {
	ctx := context.Background()

	s.Run("success: passes the reset row count through", func() {
		s.tx.LockerRepo.EXPECT().ResetAllUsage(gomock.Any()).Return(int64(2), nil)

		n, err := s.commands.ResetLockerUsage(ctx)
		s.Require().NoError(err)
		s.Equal(int64(2), n)
	})
}

func (s *SweepCommandsTestSuite) TestResyncLockerUsage() {
	ctx := context.Background()

	s.Run("success: counters already match, nothing corrected", func() {
		s.tx.EnrollmentRepo.EXPECT().CountPaidAllocatedByCategory(gomock.Any(), s.clk.Now()).
			Return(map[locker.Category]int{locker.CategoryMale: 4, locker.CategoryFemale: 2}, nil)
		s.tx.LockerRepo.EXPECT().GetForUpdate(gomock.Any(), locker.CategoryMale).
			Return(&locker.Inventory{Category: locker.CategoryMale, Total: 10, Used: 4}, nil)
		s.tx.LockerRepo.EXPECT().GetForUpdate(gomock.Any(), locker.CategoryFemale).
			Return(&locker.Inventory{Category: locker.CategoryFemale, Total: 10, Used: 2}, nil)

		n, err := s.commands.ResyncLockerUsage(ctx)
		s.Require().NoError(err)
		s.Zero(n)
	})

	s.Run("success: drift is rewritten from the ground truth", func() {
		s.tx.EnrollmentRepo.EXPECT().CountPaidAllocatedByCategory(gomock.Any(), s.clk.Now()).
			Return(map[locker.Category]int{locker.CategoryMale: 4}, nil)
		maleInv := &locker.Inventory{Category: locker.CategoryMale, Total: 10, Used: 7}
		s.tx.LockerRepo.EXPECT().GetForUpdate(gomock.Any(), locker.CategoryMale).Return(maleInv, nil)
		s.tx.LockerRepo.EXPECT().SaveUsed(gomock.Any(), maleInv).Return(nil)
		s.tx.LockerRepo.EXPECT().GetForUpdate(gomock.Any(), locker.CategoryFemale).
			Return(&locker.Inventory{Category: locker.CategoryFemale, Total: 10, Used: 0}, nil)

		n, err := s.commands.ResyncLockerUsage(ctx)
		s.Require().NoError(err)
		s.Equal(1, n)
		s.Equal(4, maleInv.Used)
	})

	s.Run("success: missing category row is skipped", func() {
		s.tx.EnrollmentRepo.EXPECT().CountPaidAllocatedByCategory(gomock.Any(), s.clk.Now()).
			Return(map[locker.Category]int{}, nil)
		s.tx.LockerRepo.EXPECT().GetForUpdate(gomock.Any(), locker.CategoryMale).Return(nil, notFoundErr())
		s.tx.LockerRepo.EXPECT().GetForUpdate(gomock.Any(), locker.CategoryFemale).
			Return(&locker.Inventory{Category: locker.CategoryFemale, Total: 10, Used: 0}, nil)

		n, err := s.commands.ResyncLockerUsage(ctx)
		s.Require().NoError(err)
		s.Zero(n)
	})
}
