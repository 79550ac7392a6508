package models

// ReminderPayload is the asynq task body for an appointment reminder.
type ReminderPayload struct {
	LeadID      string `json:"leadId"`
	ClientID    string `json:"clientId"`
	ServiceName string `json:"serviceName"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	FireDate    string `json:"fireDate"`
}
