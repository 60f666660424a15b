package menu

import "ando-archive/internal/logger"

// ActionKind tags the closed set of things a menu selection can do.
type ActionKind int

const (
	// ActionNoop is a defined entry whose selection does nothing in
	// application code.
	ActionNoop ActionKind = iota
	// ActionEmit broadcasts a named event to the front-end layer.
	ActionEmit
	// ActionExit terminates the process with status 0.
	ActionExit
)

// Action is the tagged variant a dispatch-table entry resolves to.
type Action struct {
	Kind  ActionKind
	Event string
}

// Emit returns an action that broadcasts the named event.
func Emit(event string) Action {
	return Action{Kind: ActionEmit, Event: event}
}

// Exit and Noop are the two payload-less action variants.
var (
	Exit = Action{Kind: ActionExit}
	Noop = Action{Kind: ActionNoop}
)

// Emitter broadcasts a payload-less event to the front-end layer.
type Emitter interface {
	Emit(name string)
}

// Dispatcher maps selected menu identifiers to actions. It holds no
// mutable state: the table is read-only after construction and every
// Dispatch call is independent.
type Dispatcher struct {
	table   map[string]Action
	emitter Emitter
	exit    func(code int)
	log     logger.Logger
}

// NewDispatcher wires a dispatch table to an event emitter and a
// terminate capability. The exit function is injected so tests can
// observe it instead of ending the process.
func NewDispatcher(table map[string]Action, emitter Emitter, exit func(code int), log logger.Logger) *Dispatcher {
	return &Dispatcher{
		table:   table,
		emitter: emitter,
		exit:    exit,
		log:     log,
	}
}

// Dispatch resolves id to its action and executes it synchronously.
// Unknown identifiers are ignored: menus may contain platform-injected
// items the application does not own.
func (d *Dispatcher) Dispatch(id string) {
	action, known := d.table[id]
	if !known {
		d.log.Debug("Dispatcher", "ignoring unknown menu identifier", map[string]interface{}{
			"identifier": id,
		})
		return
	}

	switch action.Kind {
	case ActionEmit:
		d.emitter.Emit(action.Event)
	case ActionExit:
		d.log.Info("Dispatcher", "quit selected, terminating", nil)
		d.exit(0)
	case ActionNoop:
	}
}
