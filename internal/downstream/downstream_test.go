package downstream

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/application-screener/internal/types"
)

type recorder struct {
	atsStatus      types.DecisionStatus
	clarifications [][]string
	rejections     []string
	interviews     []string
}

func (r *recorder) UpdateStatus(_ context.Context, _ string, status types.DecisionStatus) error {
	r.atsStatus = status
	return nil
}

func (r *recorder) RequestClarification(_ context.Context, _ string, missing []string) error {
	r.clarifications = append(r.clarifications, missing)
	return nil
}

func (r *recorder) SendRejection(_ context.Context, _ string, reasonCode string) error {
	r.rejections = append(r.rejections, reasonCode)
	return nil
}

func (r *recorder) ScheduleInterview(_ context.Context, _ string, _ string) error {
	r.interviews = append(r.interviews, "scheduled")
	return nil
}

func newRecorded() (*Dispatcher, *recorder) {
	rec := &recorder{}
	return &Dispatcher{ATS: rec, Messenger: rec, Scheduler: rec}, rec
}

func recordWith(status types.DecisionStatus, reasonCode string, missing []string) types.AuditRecord {
	return types.AuditRecord{
		Application: types.Application{ApplicationID: "app-1", JobID: "job-1"},
		Score:       types.ScoreResult{MissingItems: missing},
		Decision:    types.Decision{Status: status, ReasonCode: reasonCode},
	}
}

func TestDispatchInterview(t *testing.T) {
	d, rec := newRecorded()
	err := d.Dispatch(context.Background(), recordWith(types.StatusInterviewScheduled, "", nil))
	require.NoError(t, err)
	assert.Equal(t, types.StatusInterviewScheduled, rec.atsStatus)
	assert.Len(t, rec.interviews, 1)
	assert.Empty(t, rec.clarifications)
	assert.Empty(t, rec.rejections)
}

func TestDispatchClarification(t *testing.T) {
	d, rec := newRecorded()
	missing := []string{types.LabelAvailability}
	err := d.Dispatch(context.Background(), recordWith(types.StatusClarificationRequired, "", missing))
	require.NoError(t, err)
	assert.Equal(t, types.StatusClarificationRequired, rec.atsStatus)
	require.Len(t, rec.clarifications, 1)
	assert.Equal(t, missing, rec.clarifications[0])
	assert.Empty(t, rec.interviews)
}

func TestDispatchRejection(t *testing.T) {
	d, rec := newRecorded()
	err := d.Dispatch(context.Background(), recordWith(types.StatusRejected, types.ReasonLowConfidence, nil))
	require.NoError(t, err)
	assert.Equal(t, types.StatusRejected, rec.atsStatus)
	require.Len(t, rec.rejections, 1)
	assert.Equal(t, types.ReasonLowConfidence, rec.rejections[0])
}

func TestNewDispatcherUsesLoggingClients(t *testing.T) {
	d := NewDispatcher()
	err := d.Dispatch(context.Background(), recordWith(types.StatusRejected, types.ReasonMissingCertification, nil))
	assert.NoError(t, err)
}
