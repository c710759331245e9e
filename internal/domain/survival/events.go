package survival

// DomainEvent is the domain's only output channel besides state itself.
// Rejected actions surface as events, never as errors or partial mutation.
type DomainEvent struct {
	Type string `json:"type"`
	// AtMinutes is the totalMinutes timestamp the event occurred at.
	AtMinutes int64          `json:"at_minutes"`
	Payload   map[string]any `json:"payload,omitempty"`
}

const (
	EventDayRollover    = "day_rollover"
	EventTideSpawned    = "tide_spawned"
	EventRegrown        = "regrown"
	EventHarvested      = "harvested"
	EventPickedUp       = "picked_up"
	EventPlaced         = "placed"
	EventCrafted        = "crafted"
	EventAte            = "ate"
	EventActionRejected = "action_rejected"
)

func RejectedEvent(atMinutes int64, action, reason string) DomainEvent {
	return DomainEvent{
		Type:      EventActionRejected,
		AtMinutes: atMinutes,
		Payload:   map[string]any{"action": action, "reason": reason},
	}
}
