package lead

import (
	"context"
	"fmt"
	"time"

	catalogRepo "oficio/database/repository/catalog"
	leadRepo "oficio/database/repository/lead"
	"oficio/models"
	"oficio/services/pricing"
	"oficio/services/tasks"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// reminderLeadTime is how far ahead of the appointment the reminder fires.
const reminderLeadTime = 24 * time.Hour

// statusTransitions maps each lead status to the statuses it may move to.
var statusTransitions = map[string][]string{
	models.LeadStatusPending:   {models.LeadStatusContacted, models.LeadStatusCancelled},
	models.LeadStatusContacted: {models.LeadStatusScheduled, models.LeadStatusCancelled},
	models.LeadStatusScheduled: {models.LeadStatusCompleted, models.LeadStatusCancelled},
}

// TaskEnqueuer is the slice of asynq.Client the lead service needs.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// LeadService manages the lifecycle of submitted service requests.
type LeadService interface {
	CreateLead(ctx context.Context, input models.LeadInput) (*models.Lead, error)
	GetLead(ctx context.Context, id string) (*models.Lead, error)
	ListClientLeads(ctx context.Context, clientID string) ([]models.Lead, error)
	UpdateLeadStatus(ctx context.Context, id, status string) (*models.Lead, error)
}

// DefaultLeadService implements LeadService.
type DefaultLeadService struct {
	Repo     leadRepo.LeadRepository
	Catalog  catalogRepo.CatalogRepository
	Enqueuer TaskEnqueuer
	Logger   *zap.Logger
}

// CreateLead validates the submission, snapshots the quote the client saw,
// persists the lead, and queues the appointment reminder.
func (s *DefaultLeadService) CreateLead(ctx context.Context, input models.LeadInput) (*models.Lead, error) {
	svc, err := s.Catalog.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve service for lead: %w", err)
	}

	quote := pricing.ComputeQuote(svc.MinPrice, input.FormData, input.Immediate)
	state := Validate(input.FormData, &quote, svc, input.Date)
	if !state.CanSubmit {
		return nil, &ValidationError{State: state}
	}

	now := time.Now()
	newLead := &models.Lead{
		ID:          uuid.NewString(),
		ClientID:    input.ClientID,
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		Quote:       quote,
		FormData:    input.FormData,
		Description: DeriveDescription(input.FormData),
		Immediate:   input.Immediate,
		Date:        *input.Date,
		Status:      models.LeadStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, newLead); err != nil {
		return nil, fmt.Errorf("failed to persist lead: %w", err)
	}

	s.scheduleReminder(newLead)
	return newLead, nil
}

// scheduleReminder queues the appointment reminder. Failures are logged, not
// surfaced: the lead is already committed and a missed reminder must not fail
// the submission.
func (s *DefaultLeadService) scheduleReminder(l *models.Lead) {
	fireAt := l.Date.Add(-reminderLeadTime)
	if !fireAt.After(time.Now()) {
		s.Logger.Debug("CreateLead: appointment too soon, skipping reminder", zap.String("leadID", l.ID))
		return
	}

	payload := models.ReminderPayload{
		LeadID:      l.ID,
		ClientID:    l.ClientID,
		ServiceName: l.ServiceName,
		Title:       "Tu servicio es mañana",
		Body:        fmt.Sprintf("Recuerda tu cita de %s.", l.ServiceName),
		FireDate:    fireAt.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		s.Logger.Warn("CreateLead: failed to build reminder task", zap.String("leadID", l.ID), zap.Error(err))
		return
	}
	if _, err := s.Enqueuer.Enqueue(task, opts...); err != nil {
		s.Logger.Warn("CreateLead: failed to enqueue reminder", zap.String("leadID", l.ID), zap.Error(err))
	}
}

func (s *DefaultLeadService) GetLead(ctx context.Context, id string) (*models.Lead, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultLeadService) ListClientLeads(ctx context.Context, clientID string) ([]models.Lead, error) {
	leads, err := s.Repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if leads == nil {
		leads = []models.Lead{}
	}
	return leads, nil
}

// UpdateLeadStatus moves a lead along its lifecycle, rejecting transitions
// the state machine does not allow.
func (s *DefaultLeadService) UpdateLeadStatus(ctx context.Context, id, status string) (*models.Lead, error) {
	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(current.Status, status) {
		return nil, NewStatusError(fmt.Sprintf("cannot move lead from %q to %q", current.Status, status))
	}
	if err := s.Repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	current.Status = status
	current.UpdatedAt = time.Now()
	return current, nil
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
