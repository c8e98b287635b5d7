package inbound

import (
	"github.com/seyia90/authstarter/internal/notification/usecase"
	"github.com/seyia90/authstarter/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for marketing broadcasts and per-user
// preferences.
type HTTPEndpoint struct {
	uc uc
}

// Create stores a new marketing broadcast.
// @Summary Create marketing notification
// @Description Stores a marketing broadcast for immediate or scheduled sending. Admin only.
// @Tags Notification, Broadcasts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Notification payload (timing: immediate|scheduled)"
// @Success 201 {object} router.successResponse{data=usecase.CreateOutput} "Notification created"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/notifications [post]
func (h *HTTPEndpoint) Create(r *router.Request) (any, error) {
	var req CreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	return h.uc.Create(r.Context(), usecase.CreateInput{
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		Timing:      req.Timing,
		ScheduledAt: req.ScheduledAt,
	})
}

// List returns broadcasts, paged.
// @Summary List marketing notifications
// @Description Returns a paginated list of broadcasts with an optional category filter. Admin only.
// @Tags Notification, Broadcasts
// @Security BearerAuth
// @Produce json
// @Param category query string false "Filter by category"
// @Param page query int false "Pagination page"
// @Param size query int false "Pagination size"
// @Success 200 {object} router.successResponse{data=usecase.ListOutput} "Notification list"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Router /api/v1/notifications [get]
func (h *HTTPEndpoint) List(r *router.Request) (any, error) {
	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}

	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}

	return h.uc.List(r.Context(), usecase.ListInput{
		Category: r.GetQuery("category"),
		Page:     page,
		Size:     size,
	})
}

// Schedule moves a broadcast to a future send time.
// @Summary Schedule marketing notification
// @Description Moves an unsent broadcast to a future send time. Admin only.
// @Tags Notification, Broadcasts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Notification ID"
// @Param request body ScheduleRequest true "Schedule payload"
// @Success 200 {object} router.successResponse "Notification scheduled"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "Notification not found"
// @Failure 409 {object} router.errorResponse "Notification already sent"
// @Router /api/v1/notifications/{id}/schedule [post]
func (h *HTTPEndpoint) Schedule(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req ScheduleRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Schedule(r.Context(), usecase.ScheduleInput{
		NotificationID: id,
		ScheduledAt:    req.ScheduledAt,
	}); err != nil {
		return nil, err
	}

	return ScheduleResponse{}, nil
}

// Send fires a broadcast to its opted-in subscribers.
// @Summary Send marketing notification
// @Description Delivers the broadcast to every opted-in subscriber of its category and reports success and failure counts. Admin only.
// @Tags Notification, Broadcasts
// @Security BearerAuth
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} router.successResponse{data=usecase.SendOutput} "Delivery counts"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "Notification not found"
// @Failure 409 {object} router.errorResponse "Notification already sent"
// @Router /api/v1/notifications/{id}/send [post]
func (h *HTTPEndpoint) Send(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	return h.uc.Send(r.Context(), usecase.SendInput{NotificationID: id})
}

// PreferenceGet returns the caller's marketing preference.
// @Summary Get notification preferences
// @Description Returns the caller's marketing preference, creating the opted-in promotional default on first read.
// @Tags Notification, Preferences
// @Security BearerAuth
// @Produce json
// @Success 200 {object} router.successResponse{data=usecase.PreferenceOutput} "Preference"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Router /api/v1/notification-preferences [get]
func (h *HTTPEndpoint) PreferenceGet(r *router.Request) (any, error) {
	return h.uc.PreferenceGet(r.Context())
}

// PreferenceUpdate changes the caller's opt-in state and categories.
// @Summary Update notification preferences
// @Description Changes the caller's opt-in state and subscribed categories. Opting out stamps the opt-out time.
// @Tags Notification, Preferences
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body PreferenceUpdateRequest true "Preference payload"
// @Success 200 {object} router.successResponse "Preference updated"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 422 {object} router.errorResponse "Unknown category"
// @Router /api/v1/notification-preferences [put]
func (h *HTTPEndpoint) PreferenceUpdate(r *router.Request) (any, error) {
	var req PreferenceUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PreferenceUpdate(r.Context(), usecase.PreferenceUpdateInput{
		OptedIn:    req.OptedIn,
		Categories: req.Categories,
	}); err != nil {
		return nil, err
	}

	return PreferenceUpdateResponse{}, nil
}
