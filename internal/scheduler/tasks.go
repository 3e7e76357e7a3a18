package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskDiagnosticNotification = "notification.diagnostic"

const TaskContactNotification = "notification.contact"

const TaskPartnerNotification = "notification.partner"

type DiagnosticNotificationPayload struct {
	RequestID    string `json:"requestId"`
	TicketID     string `json:"ticketId"`
	ProblemType  string `json:"problemType"`
	City         string `json:"city"`
	Zip          string `json:"zip"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
	Urgent       bool   `json:"urgent"`
	PriceLabel   string `json:"priceLabel"`
	EtaLabel     string `json:"etaLabel"`
}

type ContactNotificationPayload struct {
	SubmissionID string `json:"submissionId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Subject      string `json:"subject"`
}

type PartnerNotificationPayload struct {
	ApplicationID string `json:"applicationId"`
	CompanyName   string `json:"companyName"`
	Email         string `json:"email"`
}

func NewDiagnosticNotificationTask(payload DiagnosticNotificationPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDiagnosticNotification, data), nil
}

func ParseDiagnosticNotificationPayload(task *asynq.Task) (DiagnosticNotificationPayload, error) {
	var payload DiagnosticNotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return DiagnosticNotificationPayload{}, err
	}
	return payload, nil
}

func NewContactNotificationTask(payload ContactNotificationPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskContactNotification, data), nil
}

func ParseContactNotificationPayload(task *asynq.Task) (ContactNotificationPayload, error) {
	var payload ContactNotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return ContactNotificationPayload{}, err
	}
	return payload, nil
}

func NewPartnerNotificationTask(payload PartnerNotificationPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPartnerNotification, data), nil
}

func ParsePartnerNotificationPayload(task *asynq.Task) (PartnerNotificationPayload, error) {
	var payload PartnerNotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return PartnerNotificationPayload{}, err
	}
	return payload, nil
}
