package service

import "kala/internal/domain/entity"

// MetricsRecorder records domain events for monitoring.
type MetricsRecorder interface {
	ApplicationSubmitted()
	ApplicationTransitioned(to entity.ApplicationStatus)
	UsernameChecked(available bool)
}

// NopMetrics discards every event.
type NopMetrics struct{}

func (NopMetrics) ApplicationSubmitted() {}
func (NopMetrics) ApplicationTransitioned(entity.ApplicationStatus) {}
func (NopMetrics) UsernameChecked(bool) {}
