package api

import (
	"net/http"

	"swim-academy-api/internal/domain/locker"
	reqdto "swim-academy-api/internal/handler/dto/request"
	resdto "swim-academy-api/internal/handler/dto/response"
	"swim-academy-api/internal/handler/middleware"
	"swim-academy-api/internal/pkg/errs"
	"swim-academy-api/internal/usecase"
	"swim-academy-api/internal/usecase/commands"
	"swim-academy-api/internal/usecase/queries"
	"swim-academy-api/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EnrollmentHandler struct {
	admission    commands.AdmissionCommands
	cancellation commands.CancellationCommands
	queries      queries.EnrollmentQueries
	lockers      usecase.LockerInventoryManager
}

func NewEnrollmentHandler(
	admission commands.AdmissionCommands,
	cancellation commands.CancellationCommands,
	enrollmentQueries queries.EnrollmentQueries,
	lockers usecase.LockerInventoryManager,
) *EnrollmentHandler {
	return &EnrollmentHandler{
		admission:    admission,
		cancellation: cancellation,
		queries:      enrollmentQueries,
		lockers:      lockers,
	}
}

// @Summary Enroll in a lesson
// @Description Create an unpaid enrollment hold for the given lesson
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Param request body reqdto.CreateEnrollmentRequest true "Enrollment request"
// @Success 201 {object} resdto.EnrollmentCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /lessons/{id}/enrollments [post]
func (h *EnrollmentHandler) CreateEnrollment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	lessonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid lesson ID format",
		})
		return
	}

	var req reqdto.CreateEnrollmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	clientIP := c.ClientIP()
	var snapshot *shared.EnrollmentSnapshot
	if req.Renewal {
		snapshot, err = h.admission.CreateRenewal(c.Request.Context(), userID, lessonID, req.WantsLocker, clientIP)
	} else {
		snapshot, err = h.admission.CreateEnrollment(c.Request.Context(), userID, lessonID, clientIP)
	}
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrLessonNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Lesson not found",
			})
		case errs.Is(err, errs.ErrLessonNotOpen):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Lesson is not open for enrollment",
			})
		case errs.Is(err, errs.ErrWindowClosed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Registration window is closed",
			})
		case errs.Is(err, errs.ErrCapacityExhausted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Lesson capacity exhausted",
			})
		case errs.Is(err, errs.ErrDuplicateEnrollment):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Already enrolled in this lesson",
			})
		case errs.Is(err, errs.ErrMonthlyLimit):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Monthly enrollment limit reached",
			})
		case errs.Is(err, errs.ErrTransientConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Enrollment is contended, please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEnrollmentSnapshot(snapshot))
}

// @Summary Get own enrollments
// @Description List enrollments of the current user
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.EnrollmentListResponse
// @Failure 401 {object} map[string]string
// @Router /enrollments [get]
func (h *EnrollmentHandler) GetMyEnrollments(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.queries.ListByUser(c.Request.Context(), userID, 0)
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

// @Summary Get enrollment
// @Description Get an enrollment of the current user by ID
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enrollment ID"
// @Success 200 {object} resdto.EnrollmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /enrollments/{id} [get]
func (h *EnrollmentHandler) GetEnrollment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid enrollment ID format",
		})
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil || view.UserID != userID {
		// Missing and not-owned look the same from the outside.
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

// @Summary Request cancellation
// @Description Request cancellation of an enrollment; unpaid holds cancel immediately
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enrollment ID"
// @Success 200 {object} resdto.EnrollmentCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /enrollments/{id}/cancel [post]
func (h *EnrollmentHandler) RequestCancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid enrollment ID format",
		})
		return
	}

	snapshot, err := h.cancellation.RequestCancel(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrEnrollmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Enrollment not found",
			})
		case errs.Is(err, errs.ErrInvalidCancelState), errs.Is(err, errs.ErrAlreadyCanceled):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Enrollment cannot be canceled in its current state",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromEnrollmentSnapshot(snapshot))
}

// @Summary Lesson availability
// @Description Remaining seat count for a lesson
// @Tags lessons
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {object} resdto.LessonAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lessons/{id}/availability [get]
func (h *EnrollmentHandler) GetLessonAvailability(c *gin.Context) {
	lessonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid lesson ID format",
		})
		return
	}

	view, err := h.queries.LessonAvailability(c.Request.Context(), lessonID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Lesson not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.LessonAvailabilityResponse{
		LessonID:  view.LessonID,
		Title:     view.Title,
		Capacity:  view.Capacity,
		Occupied:  view.Occupied,
		Remaining: view.Remaining,
		Status:    view.Status,
	})
}

// @Summary Locker availability
// @Description Remaining lockers per category
// @Tags lockers
// @Produce json
// @Success 200 {array} resdto.LockerAvailabilityResponse
// @Router /lockers/availability [get]
func (h *EnrollmentHandler) GetLockerAvailability(c *gin.Context) {
	categories := []locker.Category{locker.CategoryMale, locker.CategoryFemale}
	response := make([]resdto.LockerAvailabilityResponse, 0, len(categories))
	for _, cat := range categories {
		avail, err := h.lockers.Availability(c.Request.Context(), cat)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
		response = append(response, resdto.LockerAvailabilityResponse{
			Category:  avail.Category,
			Available: avail.Available,
			Total:     avail.Total,
		})
	}
	c.JSON(http.StatusOK, response)
}
