package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ando-archive/internal/events"
	"ando-archive/internal/logger"
)

type recordingEmitter struct {
	emitted []string
}

func (r *recordingEmitter) Emit(name string) {
	r.emitted = append(r.emitted, name)
}

type exitRecorder struct {
	calls []int
}

func (e *exitRecorder) exit(code int) {
	e.calls = append(e.calls, code)
}

func newTestDispatcher() (*Dispatcher, *recordingEmitter, *exitRecorder) {
	emitter := &recordingEmitter{}
	exit := &exitRecorder{}
	return NewDispatcher(DefaultTable(), emitter, exit.exit, logger.Nop{}), emitter, exit
}

func TestDispatchTableCoversEveryActionableIdentifier(t *testing.T) {
	table := DefaultTable()
	ids := DefaultTree().ActionableIDs()

	for _, id := range ids {
		assert.Contains(t, table, id, "identifier %q has no dispatch entry", id)
	}
	// The table and the tree describe the same identifier set; a table
	// entry without a menu item is as stale as the reverse.
	assert.Len(t, table, len(ids))
}

func TestDispatchEmitsMappedEvent(t *testing.T) {
	dispatcher, emitter, exit := newTestDispatcher()

	dispatcher.Dispatch(IDNewDocument)

	assert.Equal(t, []string{events.NewDocument}, emitter.emitted)
	assert.Empty(t, exit.calls)
}

func TestDispatchIsIdempotentPerIdentifier(t *testing.T) {
	dispatcher, emitter, _ := newTestDispatcher()

	dispatcher.Dispatch(IDNewDocument)
	dispatcher.Dispatch(IDNewDocument)

	assert.Equal(t, []string{events.NewDocument, events.NewDocument}, emitter.emitted)
}

func TestDispatchIgnoresUnknownIdentifier(t *testing.T) {
	dispatcher, emitter, exit := newTestDispatcher()

	dispatcher.Dispatch("not_a_real_id")

	assert.Empty(t, emitter.emitted)
	assert.Empty(t, exit.calls)
}

func TestDispatchQuitCallsTerminateWithStatusZero(t *testing.T) {
	dispatcher, emitter, exit := newTestDispatcher()

	dispatcher.Dispatch(IDQuit)

	assert.Equal(t, []int{0}, exit.calls)
	assert.Empty(t, emitter.emitted)
}

func TestDispatchEditItemsAreDefinedNoops(t *testing.T) {
	dispatcher, emitter, exit := newTestDispatcher()

	for _, id := range []string{IDUndo, IDRedo, IDCut, IDCopy, IDPaste} {
		dispatcher.Dispatch(id)
	}

	assert.Empty(t, emitter.emitted)
	assert.Empty(t, exit.calls)
}

// Selecting "Search Documents" in the built menu must deliver exactly
// one menu_search event to a subscriber, end to end.
func TestSearchSelectionReachesSubscriber(t *testing.T) {
	bus := events.NewBus(logger.Nop{})
	exit := &exitRecorder{}
	dispatcher := NewDispatcher(DefaultTable(), bus, exit.exit, logger.Nop{})

	received := 0
	require.NoError(t, bus.Subscribe(events.Search, func() {
		received++
	}))

	mainMenu, err := Build(DefaultTree(), dispatcher.Dispatch)
	require.NoError(t, err)

	search := findItem(t, mainMenu, "Documents", "Search Documents")
	search.Action()

	assert.Equal(t, 1, received)
	assert.Empty(t, exit.calls)
}
