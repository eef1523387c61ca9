package game

// EventType tags both raw input events and match outcome events.
type EventType int

const (
	// Input.
	EventPointerMove EventType = iota
	EventButtonDown

	// Match outcomes.
	EventKnifeThrown
	EventKnifeReset
	EventHeadSpawned
	EventHeadKilled
	EventHairCut
	EventHeadHappy
	EventHeadGone
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventPointerMove:
		return "pointer_move"
	case EventButtonDown:
		return "button_down"
	case EventKnifeThrown:
		return "knife_thrown"
	case EventKnifeReset:
		return "knife_reset"
	case EventHeadSpawned:
		return "head_spawned"
	case EventHeadKilled:
		return "head_killed"
	case EventHairCut:
		return "hair_cut"
	case EventHeadHappy:
		return "head_happy"
	case EventHeadGone:
		return "head_gone"
	case EventGameOver:
		return "game_over"
	}
	return "unknown"
}

// Event carries a pointer position in window pixels for input events.
// For outcome events X, Y hold the court position and Slot the head slot (-1 if none).
type Event struct {
	Type EventType
	X, Y float64
	Slot int
}

type EventHandler func(Event)

// EventBus fans outcome events out to observers such as the driver's logger.
// Handlers run synchronously inside Update.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every outcome event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventKnifeThrown; t <= EventGameOver; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
