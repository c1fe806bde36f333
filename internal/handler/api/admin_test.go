//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"swim-academy-api/internal/domain/refund"
	"swim-academy-api/internal/handler/api"
	resdto "swim-academy-api/internal/handler/dto/response"
	"swim-academy-api/internal/pkg/errs"
	"swim-academy-api/internal/usecase/commands"
	"swim-academy-api/internal/usecase/queries"
	"swim-academy-api/internal/usecase/shared"
	"swim-academy-api/tests/common/httptest"
	commandsmock "swim-academy-api/tests/mock/commands"
	queriesmock "swim-academy-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCancellation *commandsmock.MockCancellationCommands
	mockSweep        *commandsmock.MockSweepCommands
	mockEnrollments  *queriesmock.MockEnrollmentQueries
	mockRefunds      *queriesmock.MockRefundQueries
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCancellation = commandsmock.NewMockCancellationCommands(s.mockCtrl)
	s.mockSweep = commandsmock.NewMockSweepCommands(s.mockCtrl)
	s.mockEnrollments = queriesmock.NewMockEnrollmentQueries(s.mockCtrl)
	s.mockRefunds = queriesmock.NewMockRefundQueries(s.mockCtrl)
	handler := api.NewAdminHandler(s.mockCancellation, s.mockSweep, s.mockEnrollments, s.mockRefunds)

	s.router.GET("/admin/enrollments", handler.ListEnrollments)
	s.router.GET("/admin/enrollments/:id/refund-preview", handler.PreviewRefund)
	s.router.POST("/admin/enrollments/:id/approve-cancel", handler.ApproveCancel)
	s.router.POST("/admin/enrollments/:id/deny-cancel", handler.DenyCancel)
	s.router.POST("/admin/enrollments/:id/cancel", handler.CancelEnrollment)
	s.router.PUT("/admin/enrollments/:id/days-used", handler.OverrideDaysUsed)
	s.router.GET("/admin/cancellations", handler.ListCancellationRequests)
	s.router.POST("/admin/sweeps/run", handler.RunSweeps)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestListEnrollments() {
	s.Run("success: filters are parsed from query parameters", func() {
		lessonID := uuid.New()
		s.mockEnrollments.EXPECT().
			List(gomock.Any(), queries.EnrollmentFilter{LessonID: lessonID, PayStatus: "PAID"}, 50).
			Return([]*queries.EnrollmentListItem{{ID: uuid.New()}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			fmt.Sprintf("/admin/enrollments?lesson_id=%s&pay_status=PAID&limit=50", lessonID), nil, "")

		var response []resdto.EnrollmentListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 400 for a malformed filter id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/admin/enrollments?lesson_id=garbage", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AdminHandlerTestSuite) TestPreviewRefund() {
	id := uuid.New()
	url := fmt.Sprintf("/admin/enrollments/%s/refund-preview", id)

	s.Run("success: previews with the system day count", func() {
		s.mockRefunds.EXPECT().Preview(gomock.Any(), id, gomock.Nil()).
			Return(&queries.RefundPreviewView{
				EnrollmentID: id, PaidLessonAmount: 150000,
				SystemDaysUsed: 10, EffectiveDaysUsed: 10,
				DailyRate: 3500, UsageDeduction: 35000, Refundable: 115000,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.RefundPreviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(115000), response.Refundable)
	})

	s.Run("success: days_used query overrides the day count", func() {
		s.mockRefunds.EXPECT().
			Preview(gomock.Any(), id, gomock.Cond(func(v *int) bool { return v != nil && *v == 3 })).
			Return(&queries.RefundPreviewView{EnrollmentID: id, EffectiveDaysUsed: 3}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?days_used=3", nil, "")

		var response resdto.RefundPreviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(3, response.EffectiveDaysUsed)
	})

	s.Run("error: 400 for a negative override", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?days_used=-1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "non-negative")
	})

	s.Run("error: 404 when the enrollment has no refundable payment", func() {
		s.mockRefunds.EXPECT().Preview(gomock.Any(), id, gomock.Nil()).
			Return(nil, errs.New("no rows")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Enrollment not found")
	})
}

func (s *AdminHandlerTestSuite) TestApproveCancel() {
	id := uuid.New()
	url := fmt.Sprintf("/admin/enrollments/%s/approve-cancel", id)

	s.Run("success: empty body approves with the system day count", func() {
		decision := &commands.CancelDecision{
			Enrollment: shared.EnrollmentSnapshot{
				ID: id, Status: "CANCELED", PayStatus: "PARTIALLY_REFUNDED", CancelStatus: "APPROVED",
			},
			Breakdown: refund.Breakdown{Refundable: 115000, EffectiveDaysUsed: 10},
		}
		s.mockCancellation.EXPECT().ApproveCancel(gomock.Any(), id, gomock.Nil()).
			Return(decision, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.CancelDecisionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(115000), response.Refundable)
		s.Equal("APPROVED", response.CancelStatus)
	})

	s.Run("success: body override is forwarded", func() {
		s.mockCancellation.EXPECT().
			ApproveCancel(gomock.Any(), id, gomock.Cond(func(v *int) bool { return v != nil && *v == 0 })).
			Return(&commands.CancelDecision{
				Enrollment: shared.EnrollmentSnapshot{ID: id, PayStatus: "REFUNDED"},
				Breakdown:  refund.Breakdown{Refundable: 150000},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"days_used_override": 0}, "")

		var response resdto.CancelDecisionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	})

	s.Run("error: 422 without an open request", func() {
		s.mockCancellation.EXPECT().ApproveCancel(gomock.Any(), id, gomock.Nil()).
			Return(nil, errs.ErrInvalidCancelState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})
}

func (s *AdminHandlerTestSuite) TestDenyCancel() {
	id := uuid.New()
	url := fmt.Sprintf("/admin/enrollments/%s/deny-cancel", id)

	s.Run("success: returns 204", func() {
		s.mockCancellation.EXPECT().DenyCancel(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for an unknown enrollment", func() {
		s.mockCancellation.EXPECT().DenyCancel(gomock.Any(), id).
			Return(errs.ErrEnrollmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Enrollment not found")
	})
}

func (s *AdminHandlerTestSuite) TestCancelEnrollment() {
	id := uuid.New()
	url := fmt.Sprintf("/admin/enrollments/%s/cancel", id)

	s.Run("success: returns 204", func() {
		s.mockCancellation.EXPECT().CancelByAdmin(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 422 when already canceled", func() {
		s.mockCancellation.EXPECT().CancelByAdmin(gomock.Any(), id).
			Return(errs.ErrAlreadyCanceled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})
}

func (s *AdminHandlerTestSuite) TestOverrideDaysUsed() {
	id := uuid.New()
	url := fmt.Sprintf("/admin/enrollments/%s/days-used", id)

	s.Run("success: stores the figure and returns 204", func() {
		s.mockCancellation.EXPECT().OverrideDaysUsed(gomock.Any(), id, 5).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"days_used": 5}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 for a negative figure", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"days_used": -2}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AdminHandlerTestSuite) TestListCancellationRequests() {
	s.Run("success: lists pending requests", func() {
		s.mockEnrollments.EXPECT().ListCancellationRequests(gomock.Any()).
			Return([]*queries.CancellationRequestItem{
				{EnrollmentID: uuid.New(), UserEmail: "member@example.com", CancelStatus: "REQ", RequestedAt: time.Now()},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/cancellations", nil, "")

		var response []resdto.CancellationRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})
}

func (s *AdminHandlerTestSuite) TestRunSweeps() {
	s.Run("success: runs every pass and reports the counts", func() {
		s.mockSweep.EXPECT().ExpireStaleHolds(gomock.Any()).Return(int64(2), nil).Times(1)
		s.mockSweep.EXPECT().ReleaseLockersForEndedLessons(gomock.Any()).Return(1, nil).Times(1)
		s.mockSweep.EXPECT().ResyncLockerUsage(gomock.Any()).Return(0, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/sweeps/run", nil, "")

		var response map[string]int64
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(2), response["expired_holds"])
		s.Equal(int64(1), response["released_lockers"])
		s.Equal(int64(0), response["corrected_rows"])
	})

	s.Run("error: 500 when a pass fails", func() {
		s.mockSweep.EXPECT().ExpireStaleHolds(gomock.Any()).
			Return(int64(0), errs.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/sweeps/run", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
