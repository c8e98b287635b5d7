package inbound

import (
	"context"

	"github.com/seyia90/authstarter/internal/notification/usecase"
	"github.com/seyia90/authstarter/internal/pkg/router"
)

type uc interface {
	Create(ctx context.Context, in usecase.CreateInput) (*usecase.CreateOutput, error)
	List(ctx context.Context, in usecase.ListInput) (*usecase.ListOutput, error)
	Schedule(ctx context.Context, in usecase.ScheduleInput) error
	Send(ctx context.Context, in usecase.SendInput) (*usecase.SendOutput, error)

	PreferenceGet(ctx context.Context) (*usecase.PreferenceOutput, error)
	PreferenceUpdate(ctx context.Context, in usecase.PreferenceUpdateInput) error

	ConsumeUserRegistered(ctx context.Context, in usecase.ConsumeUserRegisteredInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Broadcast management (need authenticated & authorization)
	r.POST("/api/v1/notifications", end.Create)
	r.GET("/api/v1/notifications", end.List)
	r.POST("/api/v1/notifications/:id/schedule", end.Schedule)
	r.POST("/api/v1/notifications/:id/send", end.Send)

	// Preferences (need authenticated)
	r.GET("/api/v1/notification-preferences", end.PreferenceGet)
	r.PUT("/api/v1/notification-preferences", end.PreferenceUpdate)
}
