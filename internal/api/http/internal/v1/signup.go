package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/perf-studios/waitlist-backend/internal/domain"
	"github.com/perf-studios/waitlist-backend/internal/service"
	"github.com/perf-studios/waitlist-backend/pkg/limiter"
	"github.com/perf-studios/waitlist-backend/pkg/logger"
)

func (h *Handler) initSignupsRoutes(api *gin.RouterGroup) {
	signups := api.Group("/signups")

	// Submissions are capped per IP on a rolling hour; the limiter's
	// visitor TTL must outlive the window or the budget resets early.
	perHour := h.config.Limiter.SignupsPerHour
	if perHour <= 0 {
		perHour = 5
	}
	submitLimiter := limiter.LimitRate(
		rate.Every(time.Hour/time.Duration(perHour)),
		perHour,
		2*time.Hour,
	)

	signups.POST("", submitLimiter, h.createSignup)
	signups.GET("/count", h.signupCount)
	signups.GET("/verify", h.verifyEmail)
	signups.POST("/:id/verification-token", h.generateVerificationToken)
}

type createSignupResponse struct {
	Message     string `json:"message"`
	SignupCount int64  `json:"signup_count"`
}

const signupThanksMessage = "🎉 Thank you! You're on the list. We'll notify you when we launch!"

// @Summary Join the waitlist
// @Tags Signups
// @Description Validates and stores an email-capture signup
// @Accept json
// @Produce json
// @Param input body service.SignupInput true "signup fields"
// @Success 201 {object} createSignupResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 429
// @Failure 500
// @Router /signups [post]
func (h *Handler) createSignup(c *gin.Context) {
	var input service.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		verr := domain.NewValidationError(domain.FieldViolations{
			domain.NonFieldKey: {"Invalid request body."},
		})
		validationErrorResponse(c, verr)
		return
	}

	signup, err := h.services.Signups.Create(c.Request.Context(), input)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			validationErrorResponse(c, verr)
			return
		}

		logger.Error("create signup failed", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "An error occurred. Please try again.",
		})
		return
	}

	// Display-only social proof; a failed count never fails an
	// accepted signup.
	count, err := h.services.Signups.Count(c.Request.Context())
	if err != nil {
		logger.Warn("signup count unavailable", zap.Error(err))
	}

	logger.Info("new waitlist signup", zap.String("signup_id", signup.ID.String()))

	c.JSON(http.StatusCreated, createSignupResponse{
		Message:     signupThanksMessage,
		SignupCount: count,
	})
}

type signupCountResponse struct {
	SignupCount int64 `json:"signup_count"`
}

// @Summary Signup count
// @Tags Signups
// @Description Running total of waitlist signups
// @Produce json
// @Success 200 {object} signupCountResponse
// @Failure 500
// @Router /signups/count [get]
func (h *Handler) signupCount(c *gin.Context) {
	count, err := h.services.Signups.Count(c.Request.Context())
	if err != nil {
		logger.Error("signup count failed", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, signupCountResponse{SignupCount: count})
}

type verificationTokenResponse struct {
	VerificationToken string `json:"verification_token"`
}

// @Summary Generate verification token
// @Tags Signups
// @Description Issues a fresh verification token for a signup, replacing any prior one
// @Produce json
// @Param id path string true "signup id"
// @Success 200 {object} verificationTokenResponse
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Router /signups/{id}/verification-token [post]
func (h *Handler) generateVerificationToken(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, SignupNotFoundCode)
		return
	}

	token, err := h.services.Signups.GenerateVerificationToken(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSignupNotFound) {
			errorResponse(c, http.StatusNotFound, SignupNotFoundCode)
			return
		}

		logger.Error("generate verification token failed", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, verificationTokenResponse{VerificationToken: token})
}

// @Summary Verify email
// @Tags Signups
// @Description Marks the signup holding the token as verified
// @Produce json
// @Param token query string true "verification token"
// @Success 200
// @Failure 404 {object} ErrorStruct
// @Router /signups/verify [get]
func (h *Handler) verifyEmail(c *gin.Context) {
	token := c.Query("token")

	if err := h.services.Signups.VerifyEmail(c.Request.Context(), token); err != nil {
		if errors.Is(err, service.ErrSignupNotFound) {
			errorResponse(c, http.StatusNotFound, SignupNotFoundCode)
			return
		}

		logger.Error("verify email failed", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified. Thank you!"})
}
