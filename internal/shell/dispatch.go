package shell

import (
	"fadel/internal/appmenu"
)

// Events emitted to the front-end
const (
	EventFileOpen        = "menu://file/open"
	EventFileOpenFromURL = "menu://file/openFromURL"
	EventFileReset       = "menu://file/reset"
	EventFileOpenRecent  = "menu://file/openRecent"
)

// EventRecentFilepaths is published by the front-end whenever its recent-files cache changes
const EventRecentFilepaths = "front-end://store/cache/recentFilepaths"

// MessagePayload is the body of every menu event
type MessagePayload struct {
	Message string `json:"message"`
}

// OpenRecentPayload is the body of EventFileOpenRecent
type OpenRecentPayload struct {
	Message string `json:"message"`
	Index   int    `json:"index"`
	Path    string `json:"path"`
}

// ActionKind classifies a menu identifier
type ActionKind int

const (
	ActionUnknown ActionKind = iota
	ActionOpen
	ActionOpenFromURL
	ActionReset
	ActionQuit
	ActionAbout
	ActionOpenRecent
)

func (k ActionKind) String() string {
	switch k {
	case ActionOpen:
		return "open"
	case ActionOpenFromURL:
		return "open_from_url"
	case ActionReset:
		return "reset"
	case ActionQuit:
		return "quit"
	case ActionAbout:
		return "about"
	case ActionOpenRecent:
		return "open_recent"
	default:
		return "unknown"
	}
}

// Action is a parsed menu identifier. Index is set for ActionOpenRecent only.
type Action struct {
	Kind  ActionKind
	Index int
}

// ParseAction maps a menu identifier to an Action
func ParseAction(id string) Action {
	switch id {
	case appmenu.IDOpen:
		return Action{Kind: ActionOpen}
	case appmenu.IDOpenFromURL:
		return Action{Kind: ActionOpenFromURL}
	case appmenu.IDReset:
		return Action{Kind: ActionReset}
	case appmenu.IDQuit:
		return Action{Kind: ActionQuit}
	case appmenu.IDAbout:
		return Action{Kind: ActionAbout}
	}

	if index, ok := appmenu.ParseRecentID(id); ok {
		return Action{Kind: ActionOpenRecent, Index: index}
	}
	return Action{Kind: ActionUnknown}
}

// Outbound is one event destined for the front-end
type Outbound struct {
	Event   string
	Payload interface{}
}

// fixedEvents holds the events whose payload does not depend on state
var fixedEvents = map[ActionKind]Outbound{
	ActionOpen:        {Event: EventFileOpen, Payload: MessagePayload{Message: "Open Dialog"}},
	ActionOpenFromURL: {Event: EventFileOpenFromURL, Payload: MessagePayload{Message: "Open Dialog"}},
	ActionReset:       {Event: EventFileReset, Payload: MessagePayload{Message: "Reset"}},
}

// outboundFor returns the event for action given the mirrored recent paths.
// ok is false when the action emits nothing.
func outboundFor(action Action, recent []string) (Outbound, bool) {
	if out, ok := fixedEvents[action.Kind]; ok {
		return out, true
	}

	if action.Kind == ActionOpenRecent && action.Index >= 0 && action.Index < len(recent) {
		return Outbound{
			Event: EventFileOpenRecent,
			Payload: OpenRecentPayload{
				Message: "Open Recent",
				Index:   action.Index,
				Path:    recent[action.Index],
			},
		}, true
	}
	return Outbound{}, false
}
