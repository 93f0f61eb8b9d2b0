package domain

type NotificationType string

const (
	TypeTimerComplete NotificationType = "timer_complete"
	TypeBreakComplete NotificationType = "break_complete"
	TypeAchievement   NotificationType = "achievement"
	TypeStreak        NotificationType = "streak"
	TypeReminder      NotificationType = "reminder"
	// TypeNotification is the generic fallback when no type is given.
	TypeNotification NotificationType = "notification"
)

const (
	ActionStartBreak = "start_break"
	ActionStartFocus = "start_focus"
	ActionContinue   = "continue"
	ActionDismiss    = "dismiss"
)

type Action struct {
	Action string `json:"action"`
	Title  string `json:"title"`
}

// Actions returns the action buttons offered for this notification type.
func (t NotificationType) Actions() []Action {
	switch t {
	case TypeTimerComplete:
		return []Action{
			{Action: ActionStartBreak, Title: "Start Break"},
			{Action: ActionContinue, Title: "Continue"},
		}
	case TypeBreakComplete:
		return []Action{
			{Action: ActionStartFocus, Title: "Start Focus"},
			{Action: ActionDismiss, Title: "Dismiss"},
		}
	}
	return nil
}

const (
	dataKeyType               = "type"
	dataKeyRequireInteraction = "requireInteraction"
	dataKeyBadge              = "badge"
)

type Payload struct {
	Type               NotificationType  `json:"type,omitempty"`
	Title              string            `json:"title"`
	Body               string            `json:"body"`
	Icon               string            `json:"icon,omitempty"`
	Badge              string            `json:"badge,omitempty"`
	RequireInteraction bool              `json:"requireInteraction,omitempty"`
	Data               map[string]string `json:"data,omitempty"`
}

// Tag groups notifications: a newer notification with the same tag replaces
// an older unacknowledged one instead of stacking.
func (p Payload) Tag() string {
	if p.Type == "" {
		return string(TypeNotification)
	}
	return string(p.Type)
}

// FlattenData builds the transport data map. The push transport carries
// string values only, so type and requireInteraction travel as strings.
func (p Payload) FlattenData() map[string]string {
	data := make(map[string]string, len(p.Data)+2)
	for k, v := range p.Data {
		data[k] = v
	}
	data[dataKeyType] = p.Tag()
	if p.RequireInteraction {
		data[dataKeyRequireInteraction] = "true"
	}
	// the notification block has no badge slot, so it rides in data
	if p.Badge != "" {
		data[dataKeyBadge] = p.Badge
	}
	return data
}

// Push is the inbound message shape seen by the background receiver.
type Push struct {
	Notification PushNotification  `json:"notification"`
	Data         map[string]string `json:"data"`
}

type PushNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon,omitempty"`
}

func (p Push) Type() NotificationType {
	if t := p.Data[dataKeyType]; t != "" {
		return NotificationType(t)
	}
	return TypeNotification
}

// RequireInteraction is an explicit opt-in: only the literal string "true"
// enables it, everything else is off.
func (p Push) RequireInteraction() bool {
	return p.Data[dataKeyRequireInteraction] == "true"
}

// Badge returns the sender-specified badge path, empty when none was sent.
func (p Push) Badge() string {
	return p.Data[dataKeyBadge]
}
