package events

import (
	"github.com/asaskevich/EventBus"

	"ando-archive/internal/logger"
)

// Bus is the application-wide event channel between the menu dispatcher
// and the front-end components. Emission is fire-and-forget: subscriber
// results are never inspected, and an event with no subscribers is
// dropped silently.
type Bus struct {
	bus EventBus.Bus
	log logger.Logger
}

func NewBus(log logger.Logger) *Bus {
	return &Bus{
		bus: EventBus.New(),
		log: log,
	}
}

// Emit broadcasts a payload-less event to all current subscribers.
func (b *Bus) Emit(name string) {
	b.log.Debug("EventBus", "emitting event", map[string]interface{}{
		"event":       name,
		"subscribers": b.bus.HasCallback(name),
	})
	b.bus.Publish(name)
}

// Subscribe registers fn for every future emission of name. The same
// function value can be passed to Unsubscribe to deregister it.
func (b *Bus) Subscribe(name string, fn func()) error {
	return b.bus.Subscribe(name, fn)
}

func (b *Bus) Unsubscribe(name string, fn func()) error {
	return b.bus.Unsubscribe(name, fn)
}
