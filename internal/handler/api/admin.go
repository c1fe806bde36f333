package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "swim-academy-api/internal/handler/dto/request"
	resdto "swim-academy-api/internal/handler/dto/response"
	"swim-academy-api/internal/pkg/errs"
	"swim-academy-api/internal/usecase/commands"
	"swim-academy-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	cancellation commands.CancellationCommands
	sweep        commands.SweepCommands
	enrollments  queries.EnrollmentQueries
	refunds      queries.RefundQueries
}

func NewAdminHandler(
	cancellation commands.CancellationCommands,
	sweep commands.SweepCommands,
	enrollments queries.EnrollmentQueries,
	refunds queries.RefundQueries,
) *AdminHandler {
	return &AdminHandler{
		cancellation: cancellation,
		sweep:        sweep,
		enrollments:  enrollments,
		refunds:      refunds,
	}
}

// @Summary List enrollments
// @Description List enrollments with optional lesson, user and pay-status filters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param lesson_id query string false "Lesson ID"
// @Param user_id query string false "User ID"
// @Param pay_status query string false "Pay status"
// @Param limit query int false "Max rows"
// @Success 200 {array} resdto.EnrollmentListResponse
// @Failure 400 {object} map[string]string
// @Router /admin/enrollments [get]
func (h *AdminHandler) ListEnrollments(c *gin.Context) {
	filter, err := parseEnrollmentFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	items, err := h.enrollments.List(c.Request.Context(), filter, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response, err := resdto.FromEnrollmentList(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get enrollment detail
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enrollment ID"
// @Success 200 {object} resdto.EnrollmentResponse
// @Failure 404 {object} map[string]string
// @Router /admin/enrollments/{id} [get]
func (h *AdminHandler) GetEnrollment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid enrollment ID format",
		})
		return
	}

	view, err := h.enrollments.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Enrollment not found",
		})
		return
	}

	response, err := resdto.FromEnrollmentView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary List cancellation requests
// @Description Pending cancellation requests awaiting an admin decision
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CancellationRequestResponse
// @Router /admin/cancellations [get]
func (h *AdminHandler) ListCancellationRequests(c *gin.Context) {
	items, err := h.enrollments.ListCancellationRequests(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response, err := resdto.FromCancellationRequests(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Preview refund
// @Description Compute the refund breakdown without committing anything
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enrollment ID"
// @Param days_used query int false "Manual days-used override"
// @Success 200 {object} resdto.RefundPreviewResponse
// @Failure 404 {object} map[string]string
// @Router /admin/enrollments/{id}/refund-preview [get]
func (h *AdminHandler) PreviewRefund(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid enrollment ID format",
		})
		return
	}

	var override *int
	if raw := c.Query("days_used"); raw != "" {
		days, convErr := strconv.Atoi(raw)
		if convErr != nil || days < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "days_used must be a non-negative integer",
			})
			return
		}
		override = &days
	}

	view, err := h.refunds.Preview(c.Request.Context(), id, override)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Enrollment not found",
		})
		return
	}

	response, err := resdto.FromRefundPreview(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Approve cancellation
// @Description Approve a cancellation request and execute the refund
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enrollment ID"
// @Param request body reqdto.ApproveCancelRequest false "Optional days-used override"
// @Success 200 {object} resdto.CancelDecisionResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/enrollments/{id}/approve-cancel [post]
func (h *AdminHandler) ApproveCancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid enrollment ID format",
		})
		return
	}

	var req reqdto.ApproveCancelRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	decision, err := h.cancellation.ApproveCancel(c.Request.Context(), id, req.DaysUsedOverride)
	if err != nil {
		h.respondCancelError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancelDecision(decision))
}

// @Summary Deny cancellation
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Enrollment ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/enrollments/{id}/deny-cancel [post]
func (h *AdminHandler) DenyCancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid enrollment ID format",
		})
		return
	}

	if err := h.cancellation.DenyCancel(c.Request.Context(), id); err != nil {
		h.respondCancelError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel enrollment
// @Description Force-cancel an enrollment regardless of member intent
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Enrollment ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/enrollments/{id}/cancel [post]
func (h *AdminHandler) CancelEnrollment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid enrollment ID format",
		})
		return
	}

	if err := h.cancellation.CancelByAdmin(c.Request.Context(), id); err != nil {
		h.respondCancelError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Override days used
// @Description Store a manual days-used figure for later refund calculation
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Enrollment ID"
// @Param request body reqdto.OverrideDaysUsedRequest true "Days used"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/enrollments/{id}/days-used [put]
func (h *AdminHandler) OverrideDaysUsed(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid enrollment ID format",
		})
		return
	}

	var req reqdto.OverrideDaysUsedRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.cancellation.OverrideDaysUsed(c.Request.Context(), id, req.DaysUsed); err != nil {
		h.respondCancelError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Run sweeps
// @Description Run the periodic maintenance passes on demand
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64
// @Router /admin/sweeps/run [post]
func (h *AdminHandler) RunSweeps(c *gin.Context) {
	ctx := c.Request.Context()

	expired, err := h.sweep.ExpireStaleHolds(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	released, err := h.sweep.ReleaseLockersForEndedLessons(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	corrected, err := h.sweep.ResyncLockerUsage(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"expired_holds":    expired,
		"released_lockers": released,
		"corrected_rows":   corrected,
	})
}

func (h *AdminHandler) respondCancelError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrEnrollmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Enrollment not found",
		})
	case errs.Is(err, errs.ErrInvalidCancelState), errs.Is(err, errs.ErrAlreadyCanceled):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Enrollment cannot be changed in its current state",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func parseEnrollmentFilter(c *gin.Context) (queries.EnrollmentFilter, error) {
	var filter queries.EnrollmentFilter

	if raw := c.Query("lesson_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, errors.New("invalid lesson_id format")
		}
		filter.LessonID = id
	}
	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, errors.New("invalid user_id format")
		}
		filter.UserID = id
	}
	filter.PayStatus = c.Query("pay_status")

	return filter, nil
}
