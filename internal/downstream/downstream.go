// Package downstream fans a finished decision out to the systems that act on
// it: the applicant tracking system, candidate messaging, and interview
// scheduling. The concrete clients here are logging stand-ins with the same
// surface the real integrations would have.
package downstream

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/application-screener/internal/types"
)

// ATS updates the applicant tracking system with the screening outcome.
type ATS interface {
	UpdateStatus(ctx context.Context, applicationID string, status types.DecisionStatus) error
}

// Messenger delivers candidate-facing messages.
type Messenger interface {
	RequestClarification(ctx context.Context, applicationID string, missingItems []string) error
	SendRejection(ctx context.Context, applicationID, reasonCode string) error
}

// Scheduler books interview slots.
type Scheduler interface {
	ScheduleInterview(ctx context.Context, applicationID, jobID string) error
}

// Dispatcher routes one decision to the appropriate downstream calls. The ATS
// is always updated; messaging and scheduling depend on the decision status.
type Dispatcher struct {
	ATS       ATS
	Messenger Messenger
	Scheduler Scheduler
}

// NewDispatcher returns a dispatcher backed by logging stand-in clients.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		ATS:       &logATS{},
		Messenger: &logMessenger{},
		Scheduler: &logScheduler{},
	}
}

// Dispatch performs the downstream calls for a completed evaluation.
func (d *Dispatcher) Dispatch(ctx context.Context, record types.AuditRecord) error {
	appID := record.Application.ApplicationID

	if err := d.ATS.UpdateStatus(ctx, appID, record.Decision.Status); err != nil {
		return fmt.Errorf("ats update for %s: %w", appID, err)
	}

	switch record.Decision.Status {
	case types.StatusInterviewScheduled:
		if err := d.Scheduler.ScheduleInterview(ctx, appID, record.Application.JobID); err != nil {
			return fmt.Errorf("interview scheduling for %s: %w", appID, err)
		}
	case types.StatusClarificationRequired:
		if err := d.Messenger.RequestClarification(ctx, appID, record.Score.MissingItems); err != nil {
			return fmt.Errorf("clarification request for %s: %w", appID, err)
		}
	case types.StatusRejected:
		if err := d.Messenger.SendRejection(ctx, appID, record.Decision.ReasonCode); err != nil {
			return fmt.Errorf("rejection notice for %s: %w", appID, err)
		}
	}

	return nil
}

type logATS struct{}

func (*logATS) UpdateStatus(_ context.Context, applicationID string, status types.DecisionStatus) error {
	log.Printf("[ats] application %s -> %s", applicationID, status)
	return nil
}

type logMessenger struct{}

func (*logMessenger) RequestClarification(_ context.Context, applicationID string, missingItems []string) error {
	log.Printf("[messaging] clarification requested from %s: %v", applicationID, missingItems)
	return nil
}

func (*logMessenger) SendRejection(_ context.Context, applicationID, reasonCode string) error {
	log.Printf("[messaging] rejection sent to %s (%s)", applicationID, reasonCode)
	return nil
}

type logScheduler struct{}

func (*logScheduler) ScheduleInterview(_ context.Context, applicationID, jobID string) error {
	log.Printf("[scheduling] interview booked for %s on job %s", applicationID, jobID)
	return nil
}
