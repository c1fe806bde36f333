//go:build e2e

package enrollment_test

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"swim-academy-api/internal/handler/dto/request"
	"swim-academy-api/internal/handler/dto/response"
	"swim-academy-api/tests/common/authtest"
	"swim-academy-api/tests/common/dbtest"
	"swim-academy-api/tests/common/httptest"
	"swim-academy-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	enrollURL             = "/api/lessons/%s/enrollments"
	enrollmentURL         = "/api/enrollments/%s"
	cancelURL             = "/api/enrollments/%s/cancel"
	lessonAvailabilityURL = "/api/lessons/%s/availability"
	lockerAvailabilityURL = "/api/lockers/availability"
	notifyURL             = "/api/payments/notify"

	adminCancellationsURL = "/api/admin/cancellations"
	adminEnrollmentURL    = "/api/admin/enrollments/%s"
	refundPreviewURL      = "/api/admin/enrollments/%s/refund-preview"
	approveCancelURL      = "/api/admin/enrollments/%s/approve-cancel"
	denyCancelURL         = "/api/admin/enrollments/%s/deny-cancel"
	adminCancelURL        = "/api/admin/enrollments/%s/cancel"
	daysUsedURL           = "/api/admin/enrollments/%s/days-used"
	sweepsURL             = "/api/admin/sweeps/run"

	lessonPrice = int64(150000)
	lockerFee   = int64(30000)
)

type EnrollmentSuite struct {
	e2e.SharedSuite
}

func TestEnrollmentSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(EnrollmentSuite))
}

// notifyForm builds the form-encoded payload the gateway posts back after
// checkout.
func notifyForm(tid, orderRef string, amount int64, resultCode string) string {
	v := url.Values{}
	v.Set("tid", tid)
	v.Set("orderRef", orderRef)
	v.Set("resultCode", resultCode)
	v.Set("resultMessage", "approved")
	v.Set("amount", strconv.FormatInt(amount, 10))
	v.Set("payMethod", "CARD")
	return v.Encode()
}

func (s *EnrollmentSuite) enroll(token string, lessonID uuid.UUID, wantsLocker bool) response.EnrollmentCreatedResponse {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost,
		fmt.Sprintf(enrollURL, lessonID.String()),
		request.CreateEnrollmentRequest{WantsLocker: wantsLocker}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.EnrollmentCreatedResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

func (s *EnrollmentSuite) pay(tid, orderRef string, amount int64) {
	t := s.T()

	w := httptest.PerformFormRequest(t, s.Router, http.MethodPost, notifyURL,
		notifyForm(tid, orderRef, amount, "0000"))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}

func (s *EnrollmentSuite) getEnrollment(token string, id uuid.UUID) response.EnrollmentResponse {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet,
		fmt.Sprintf(enrollmentURL, id.String()), nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.EnrollmentResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res
}

func (s *EnrollmentSuite) lockerAvailable(category string) int {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, lockerAvailabilityURL, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var res []response.LockerAvailabilityResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	for _, item := range res {
		if item.Category == category {
			return item.Available
		}
	}
	t.Fatalf("category %s missing from availability response", category)
	return 0
}

// =============================================================================
// TestEnrollAndPay - Admission and gateway reconciliation
// =============================================================================

func (s *EnrollmentSuite) TestEnrollAndPay() {
	s.Run("Normal case: Member enrolls, pays with locker fee, locker follows", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "swimmer@example.com", "member", "MALE")
		lessonID := dbtest.CurrentMonthLesson(t, s.DB, "Morning Freestyle", 10, lessonPrice)

		created := s.enroll(token, lessonID, true)
		require.Equal(t, "APPLIED", created.Status)
		require.Equal(t, "UNPAID", created.PayStatus)
		require.Equal(t, "ENR-"+created.ID.String(), created.OrderRef)

		// The hold already occupies a seat.
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(lessonAvailabilityURL, lessonID.String()), nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var avail response.LessonAvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &avail))
		require.Equal(t, 1, avail.Occupied)
		require.Equal(t, 9, avail.Remaining)

		s.pay("tid-e2e-0001", created.OrderRef, lessonPrice+lockerFee)

		enr := s.getEnrollment(token, created.ID)
		require.Equal(t, "PAID", enr.PayStatus)
		require.True(t, enr.UsesLocker)
		require.True(t, enr.LockerAllocated)
		require.Equal(t, 99, s.lockerAvailable("MALE"))
		require.Equal(t, 100, s.lockerAvailable("FEMALE"))
	})

	s.Run("Normal case: Redelivered gateway notification converges", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "swimmer@example.com", "member", "MALE")
		lessonID := dbtest.CurrentMonthLesson(t, s.DB, "Morning Freestyle", 10, lessonPrice)

		created := s.enroll(token, lessonID, false)
		s.pay("tid-e2e-0002", created.OrderRef, lessonPrice)
		s.pay("tid-e2e-0002", created.OrderRef, lessonPrice)

		enr := s.getEnrollment(token, created.ID)
		require.Equal(t, "PAID", enr.PayStatus)
		require.False(t, enr.LockerAllocated, "bare lesson payment should not allocate a locker")
		require.Equal(t, 100, s.lockerAvailable("MALE"))
	})

	s.Run("Error case: Second active enrollment in the same month is rejected", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "greedy@example.com", "member", "FEMALE")
		firstID := dbtest.CurrentMonthLesson(t, s.DB, "Morning Freestyle", 10, lessonPrice)
		secondID := dbtest.CurrentMonthLesson(t, s.DB, "Evening Backstroke", 10, lessonPrice)

		s.enroll(token, firstID, false)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(enrollURL, secondID.String()),
			request.CreateEnrollmentRequest{}, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: Unknown order reference is refused", func() {
		t := s.T()

		w := httptest.PerformFormRequest(t, s.Router, http.MethodPost, notifyURL,
			notifyForm("tid-e2e-0003", "ENR-"+uuid.New().String(), lessonPrice, "0000"))
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "FAIL", w.Body.String())
	})

	s.Run("Error case: Gateway failure code records the attempt without paying", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "declined@example.com", "member", "MALE")
		lessonID := dbtest.CurrentMonthLesson(t, s.DB, "Morning Freestyle", 10, lessonPrice)

		created := s.enroll(token, lessonID, false)

		w := httptest.PerformFormRequest(t, s.Router, http.MethodPost, notifyURL,
			notifyForm("tid-e2e-0004", created.OrderRef, lessonPrice, "9999"))
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "OK", w.Body.String(), "declined payments are acknowledged, not retried")

		enr := s.getEnrollment(token, created.ID)
		require.Equal(t, "UNPAID", enr.PayStatus)
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		lessonID := dbtest.CurrentMonthLesson(t, s.DB, "Morning Freestyle", 10, lessonPrice)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(enrollURL, lessonID.String()),
			request.CreateEnrollmentRequest{}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestCancellation - Member cancel requests and admin decisions
// =============================================================================

func (s *EnrollmentSuite) TestCancellation() {
	s.Run("Normal case: Unpaid hold cancels immediately", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "swimmer@example.com", "member", "MALE")
		lessonID := dbtest.CurrentMonthLesson(t, s.DB, "Morning Freestyle", 10, lessonPrice)
		created := s.enroll(token, lessonID, false)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(cancelURL, created.ID.String()), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var snapshot response.EnrollmentCreatedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &snapshot))
		require.Equal(t, "CANCELED", snapshot.Status)
		require.Equal(t, "UNPAID", snapshot.PayStatus)
	})

	s.Run("Normal case: Paid enrollment opens a request and admin approves", func() {
		t := s.T()

		memberToken := authtest.CreateAndLogin(t, s.DB, s.Router, "swimmer@example.com", "member", "MALE")
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "admin", "FEMALE")
		lessonID := dbtest.CurrentMonthLesson(t, s.DB, "Morning Freestyle", 10, lessonPrice)

		created := s.enroll(memberToken, lessonID, false)
		s.pay("tid-e2e-1001", created.OrderRef, lessonPrice)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(cancelURL, created.ID.String()), nil, memberToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var snapshot response.EnrollmentCreatedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &snapshot))
		require.Equal(t, "CANCELED_REQ", snapshot.Status)
		require.Equal(t, "REFUND_REQUESTED", snapshot.PayStatus)

		// The request shows up in the admin queue.
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, adminCancellationsURL, nil, adminToken)
		require.Equal(t, http.StatusOK, lw.Code, lw.Body.String())
		var queue []*response.CancellationRequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &queue))
		require.Len(t, queue, 1)
		require.Equal(t, created.ID, queue[0].EnrollmentID)

		pw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(refundPreviewURL, created.ID.String()), nil, adminToken)
		require.Equal(t, http.StatusOK, pw.Code, pw.Body.String())
		var preview response.RefundPreviewResponse
		require.NoError(t, httptest.DecodeResponseBody(t, pw.Body, &preview))
		require.Equal(t, lessonPrice, preview.PaidLessonAmount)
		require.GreaterOrEqual(t, preview.SystemDaysUsed, 1)
		require.Greater(t, preview.Refundable, int64(0))
		require.Less(t, preview.Refundable, lessonPrice)

		aw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(approveCancelURL, created.ID.String()),
			request.ApproveCancelRequest{}, adminToken)
		require.Equal(t, http.StatusOK, aw.Code, aw.Body.String())
		var decision response.CancelDecisionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, aw.Body, &decision))
		require.Equal(t, "APPROVED", decision.CancelStatus)
		require.Equal(t, "PARTIALLY_REFUNDED", decision.PayStatus)
		require.Equal(t, preview.Refundable, decision.Refundable)
	})

	s.Run("Normal case: Approval releases the allocated locker", func() {
		t := s.T()

		memberToken := authtest.CreateAndLogin(t, s.DB, s.Router, "swimmer@example.com", "member", "MALE")
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "admin", "FEMALE")
		lessonID := dbtest.CurrentMonthLesson(t, s.DB, "Morning Freestyle", 10, lessonPrice)

		created := s.enroll(memberToken, lessonID, true)
		s.pay("tid-e2e-1002", created.OrderRef, lessonPrice+lockerFee)
		require.Equal(t, 99, s.lockerAvailable("MALE"))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(cancelURL, created.ID.String()), nil, memberToken)
		require.Equal(t, http.StatusOK, w.Code)

		aw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(approveCancelURL, created.ID.String()),
			request.ApproveCancelRequest{}, adminToken)
		require.Equal(t, http.StatusOK, aw.Code, aw.Body.String())

		require.Equal(t, 100, s.lockerAvailable("MALE"))
	})

	s.Run("Normal case: Admin denies and the enrollment stays active", func() {
		t := s.T()

		memberToken := authtest.CreateAndLogin(t, s.DB, s.Router, "swimmer@example.com", "member", "MALE")
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "admin", "FEMALE")
		lessonID := dbtest.CurrentMonthLesson(t, s.DB, "Morning Freestyle", 10, lessonPrice)

		created := s.enroll(memberToken, lessonID, false)
		s.pay("tid-e2e-1003", created.OrderRef, lessonPrice)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(cancelURL, created.ID.String()), nil, memberToken)
		require.Equal(t, http.StatusOK, w.Code)

		dw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(denyCancelURL, created.ID.String()), nil, adminToken)
		require.Equal(t, http.StatusNoContent, dw.Code, dw.Body.String())

		enr := s.getEnrollment(memberToken, created.ID)
		require.Equal(t, "APPLIED", enr.Status)
		require.Equal(t, "PAID", enr.PayStatus)
		require.Equal(t, "DENIED", enr.CancelStatus)
	})

	s.Run("Normal case: Days-used override changes the refund preview", func() {
		t := s.T()

		memberToken := authtest.CreateAndLogin(t, s.DB, s.Router, "swimmer@example.com", "member", "MALE")
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "admin", "FEMALE")
		lessonID := dbtest.CurrentMonthLesson(t, s.DB, "Morning Freestyle", 10, lessonPrice)

		created := s.enroll(memberToken, lessonID, false)
		s.pay("tid-e2e-1004", created.OrderRef, lessonPrice)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(cancelURL, created.ID.String()), nil, memberToken)
		require.Equal(t, http.StatusOK, w.Code)

		ow := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(daysUsedURL, created.ID.String()),
			request.OverrideDaysUsedRequest{DaysUsed: 2}, adminToken)
		require.Equal(t, http.StatusNoContent, ow.Code, ow.Body.String())

		pw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(refundPreviewURL, created.ID.String()), nil, adminToken)
		require.Equal(t, http.StatusOK, pw.Code)
		var preview response.RefundPreviewResponse
		require.NoError(t, httptest.DecodeResponseBody(t, pw.Body, &preview))
		require.Equal(t, 2, preview.EffectiveDaysUsed)
		require.Equal(t, lessonPrice-2*preview.DailyRate, preview.Refundable)
	})

	s.Run("Normal case: Admin cancels directly and frees the locker", func() {
		t := s.T()

		memberToken := authtest.CreateAndLogin(t, s.DB, s.Router, "swimmer@example.com", "member", "MALE")
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "admin", "FEMALE")
		lessonID := dbtest.CurrentMonthLesson(t, s.DB, "Morning Freestyle", 10, lessonPrice)

		created := s.enroll(memberToken, lessonID, true)
		s.pay("tid-e2e-1005", created.OrderRef, lessonPrice+lockerFee)
		require.Equal(t, 99, s.lockerAvailable("MALE"))

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(adminCancelURL, created.ID.String()), nil, adminToken)
		require.Equal(t, http.StatusNoContent, cw.Code, cw.Body.String())

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(adminEnrollmentURL, created.ID.String()), nil, adminToken)
		require.Equal(t, http.StatusOK, gw.Code)
		var enr response.EnrollmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &enr))
		require.Equal(t, "CANCELED_BY_ADMIN", enr.Status)
		require.False(t, enr.LockerAllocated)

		require.Equal(t, 100, s.lockerAvailable("MALE"))
	})

	s.Run("Auth test - Admin endpoints reject member tokens", func() {
		t := s.T()

		memberToken := authtest.CreateAndLogin(t, s.DB, s.Router, "swimmer@example.com", "member", "MALE")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminCancellationsURL, nil, memberToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestSweeps - Manual maintenance run
// =============================================================================

func (s *EnrollmentSuite) TestSweeps() {
	s.Run("Normal case: Maintenance run reports its counters", func() {
		t := s.T()

		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "admin", "FEMALE")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sweepsURL, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res struct {
			ExpiredHolds    int `json:"expired_holds"`
			ReleasedLockers int `json:"released_lockers"`
			CorrectedRows   int `json:"corrected_rows"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.GreaterOrEqual(t, res.ExpiredHolds, 0)
		require.GreaterOrEqual(t, res.ReleasedLockers, 0)
		require.GreaterOrEqual(t, res.CorrectedRows, 0)
	})
}
