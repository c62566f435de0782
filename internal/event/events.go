package event

import (
	"time"

	"github.com/shopspring/decimal"
)

// Topics published by the org core.
const (
	TopicReportAdded   = "org.report_added"
	TopicTeamSupported = "org.team_supported"
	TopicBonusGranted  = "org.bonus_granted"
	TopicBonusDenied   = "org.bonus_denied"
)

// Event is the interface that all events implement.
type Event interface {
	// Topic returns the event's topic, "category.action".
	Topic() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type baseEvent struct {
	topic     string
	timestamp time.Time
}

func (e baseEvent) Topic() string        { return e.topic }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(topic string, at time.Time) baseEvent {
	return baseEvent{topic: topic, timestamp: at}
}

// ReportAddedEvent is emitted when a lead accepts a new direct report.
type ReportAddedEvent struct {
	baseEvent
	LeadID     uint64
	EmployeeID uint64
	Role       string // role of the new report
	Reports    int    // lead's report count after the add
	HeadCount  int
}

// NewReportAddedEvent creates a ReportAddedEvent.
func NewReportAddedEvent(at time.Time, leadID, employeeID uint64, role string, reports, headCount int) ReportAddedEvent {
	return ReportAddedEvent{
		baseEvent:  newBaseEvent(TopicReportAdded, at),
		LeadID:     leadID,
		EmployeeID: employeeID,
		Role:       role,
		Reports:    reports,
		HeadCount:  headCount,
	}
}

// TeamSupportedEvent is emitted when an accountant starts supporting a
// technical lead's team and its budget has been recomputed.
type TeamSupportedEvent struct {
	baseEvent
	AccountantID uint64
	LeadID       uint64
	Budget       decimal.Decimal
}

// NewTeamSupportedEvent creates a TeamSupportedEvent.
func NewTeamSupportedEvent(at time.Time, accountantID, leadID uint64, budget decimal.Decimal) TeamSupportedEvent {
	return TeamSupportedEvent{
		baseEvent:    newBaseEvent(TopicTeamSupported, at),
		AccountantID: accountantID,
		LeadID:       leadID,
		Budget:       budget,
	}
}

// BonusGrantedEvent is emitted when an accountant grants a bonus.
type BonusGrantedEvent struct {
	baseEvent
	GrantID      string
	EmployeeID   uint64
	AccountantID uint64
	ApproverID   uint64
	Amount       decimal.Decimal
}

// NewBonusGrantedEvent creates a BonusGrantedEvent.
func NewBonusGrantedEvent(at time.Time, grantID string, employeeID, accountantID, approverID uint64, amount decimal.Decimal) BonusGrantedEvent {
	return BonusGrantedEvent{
		baseEvent:    newBaseEvent(TopicBonusGranted, at),
		GrantID:      grantID,
		EmployeeID:   employeeID,
		AccountantID: accountantID,
		ApproverID:   approverID,
		Amount:       amount,
	}
}

// BonusDeniedEvent is emitted when a bonus request or approval is refused.
type BonusDeniedEvent struct {
	baseEvent
	EmployeeID uint64
	DeciderID  uint64
	Amount     decimal.Decimal
	Reason     string
}

// NewBonusDeniedEvent creates a BonusDeniedEvent.
func NewBonusDeniedEvent(at time.Time, employeeID, deciderID uint64, amount decimal.Decimal, reason string) BonusDeniedEvent {
	return BonusDeniedEvent{
		baseEvent:  newBaseEvent(TopicBonusDenied, at),
		EmployeeID: employeeID,
		DeciderID:  deciderID,
		Amount:     amount,
		Reason:     reason,
	}
}
