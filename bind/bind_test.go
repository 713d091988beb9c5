package bind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/framemesh/core"
	"github.com/hupe1980/framemesh/internal/testutil"
	"github.com/hupe1980/framemesh/scene"
	"github.com/hupe1980/framemesh/signal"
)

func TestBinder_DisposeWithSignal(t *testing.T) {
	b := NewBinder(nil)
	s := signal.New()
	d := testutil.NewDisposal()

	ticket := b.DisposeWith(d, SignalOwner(s))
	require.NotNil(t, ticket)

	s.Fire()
	assert.Equal(t, 1, d.Disposed())

	s.Fire()
	assert.Equal(t, 1, d.Disposed(), "second fire must not dispose again")
}

func TestBinder_DisposeWithPreFiredSignal(t *testing.T) {
	b := NewBinder(nil)
	s := signal.New()
	s.Fire()

	d := testutil.NewDisposal()
	ticket := b.DisposeWith(d, SignalOwner(s))

	assert.Equal(t, 1, d.Disposed(), "pre-fired signal disposes synchronously")
	assert.True(t, ticket.Spent())
}

func TestBinder_DisposeTicketCancel(t *testing.T) {
	b := NewBinder(nil)
	s := signal.New()
	d := testutil.NewDisposal()

	ticket := b.DisposeWith(d, SignalOwner(s))
	ticket.Cancel()

	s.Fire()
	assert.Equal(t, 0, d.Disposed())
}

func TestBinder_LifecycleTeardownIsLIFO(t *testing.T) {
	h := testutil.NewHost()
	b := NewBinder(nil)
	lc := h.CreateLifecycle("owner", false)

	rec := testutil.NewRecorder()
	b.DisposeWith(core.DisposeFunc(rec.Action("a")), LifecycleOwner(lc))
	b.DisposeWith(core.DisposeFunc(rec.Action("b")), LifecycleOwner(lc))

	lc.Destroy()

	assert.Equal(t, []string{"b", "a"}, rec.Log())
}

func TestBinder_DestroyWithRejectsTransformRoot(t *testing.T) {
	h := testutil.NewHost()
	b := NewBinder(nil)
	s := h.LoadScene("level1")
	owner := SignalOwner(signal.New())

	ticket, err := b.DestroyWith(s.Root(), owner)

	assert.ErrorIs(t, err, core.ErrTransformRoot)
	assert.Nil(t, ticket)
	assert.Empty(t, b.Stats(), "rejected binding must leave no state behind")
}

func TestBinder_DestroyWithRejectsDoomedObject(t *testing.T) {
	h := testutil.NewHost()
	b := NewBinder(nil)

	o := h.NewObject("enemy", nil)
	o.DeepDestroy()

	_, err := b.DestroyWith(o, SignalOwner(signal.New()))

	assert.ErrorIs(t, err, core.ErrObjectDestroyed)
}

func TestBinder_DestroyWithPromotesAndDeepDestroys(t *testing.T) {
	h := testutil.NewHost()
	b := NewBinder(nil)
	s := h.LoadScene("level1")

	o := h.NewObject("boss", s)
	sig := signal.New()

	ticket, err := b.DestroyWith(o, SignalOwner(sig))
	require.NoError(t, err)
	require.NotNil(t, ticket)

	assert.Same(t, h.DurableScene(), o.Scene(), "successful binding promotes the container")

	sig.Fire()

	assert.True(t, o.Doomed())
	assert.Nil(t, h.Find("boss"))

	h.EndFrame()
	assert.True(t, o.Destroyed())
}

func TestBinder_InterSceneRestriction(t *testing.T) {
	h := testutil.NewHost()
	b := NewBinder(nil)

	sceneA := h.LoadScene("a")
	owner := h.CreateLifecycle("owner-in-a", false)
	require.NotNil(t, owner)
	_ = sceneA

	sceneB := h.LoadScene("b")
	target := h.NewObject("target", sceneB)

	_, err := b.DestroyWith(target, LifecycleOwner(owner))
	assert.ErrorIs(t, err, core.ErrCrossScene)

	// The raw-signal escape hatch bypasses residency checking.
	_, err = b.DestroyWith(target, SignalOwner(owner.Signal()))
	assert.NoError(t, err)
}

func TestBinder_DurableOwnerCrossesScenes(t *testing.T) {
	h := testutil.NewHost()
	b := NewBinder(nil)

	owner := h.CreateLifecycle("persistent", true)

	s := h.LoadScene("level1")
	target := h.NewObject("target", s)

	_, err := b.DestroyWith(target, LifecycleOwner(owner))
	assert.NoError(t, err)
}

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Debug(msg string, args ...any) { m.Called(msg, args) }
func (m *mockLogger) Info(msg string, args ...any)  { m.Called(msg, args) }
func (m *mockLogger) Warn(msg string, args ...any)  { m.Called(msg, args) }
func (m *mockLogger) Error(msg string, args ...any) { m.Called(msg, args) }

func TestBinder_DestroyComponentWith(t *testing.T) {
	h := testutil.NewHost()

	logger := &mockLogger{}
	logger.On("Warn", mock.Anything, mock.Anything).Return()
	b := NewBinder(logger)

	o := h.NewObject("player", nil)
	c := o.AddComponent("collider")
	sig := signal.New()

	ticket, err := b.DestroyComponentWith(c, SignalOwner(sig))
	require.NoError(t, err)
	require.NotNil(t, ticket)

	logger.AssertCalled(t, "Warn", mock.Anything, mock.Anything)

	sig.Fire()

	assert.True(t, c.Removed())
	assert.False(t, o.Destroyed(), "component binding must not touch the object")
}

func TestBinder_DestroyLifecycleWith(t *testing.T) {
	h := testutil.NewHost()
	b := NewBinder(nil)

	parent := h.CreateLifecycle("parent", true)
	child := h.CreateLifecycle("child", true)

	_, err := b.DestroyLifecycleWith(child, LifecycleOwner(parent))
	require.NoError(t, err)

	parent.Destroy()

	assert.True(t, child.Destroyed())
}

func TestBinder_RejectsSceneScopedDependent(t *testing.T) {
	h := testutil.NewHost()
	b := NewBinder(nil)
	r := scene.NewRegistry(h, nil)

	s := h.LoadScene("level1")
	sceneLC, ok := r.Get(s)
	require.True(t, ok)

	owner := h.CreateLifecycle("owner", true)

	ticket, err := b.DestroyLifecycleWith(sceneLC, LifecycleOwner(owner))

	assert.ErrorIs(t, err, core.ErrSceneOwned)
	assert.Nil(t, ticket)
}

func TestBinder_SceneOwnerOwnsDependents(t *testing.T) {
	h := testutil.NewHost()
	b := NewBinder(nil)
	r := scene.NewRegistry(h, nil)

	s := h.LoadScene("level1")
	owner, ok := SceneOwner(r, s)
	require.True(t, ok)

	d := testutil.NewDisposal()
	b.DisposeWith(d, owner)

	h.UnloadScene(s)

	assert.Equal(t, 1, d.Disposed(), "scene unload tears down scene-owned lifetimes")
}

func TestBinder_SceneUnloadTearsDownMixedKindsLIFO(t *testing.T) {
	h := testutil.NewHost()
	b := NewBinder(nil)
	r := scene.NewRegistry(h, nil)

	s := h.LoadScene("level1")
	owner, ok := SceneOwner(r, s)
	require.True(t, ok)

	rec := testutil.NewRecorder()

	o := h.NewObject("prop", s)
	_, err := b.DestroyWith(o, owner)
	require.NoError(t, err)

	b.DisposeWith(core.DisposeFunc(rec.Action("disposable")), owner)

	child := h.CreateLifecycle("child", false)
	child.OnDestroy(func() { rec.Record("lifecycle") })
	_, err = b.DestroyLifecycleWith(child, owner)
	require.NoError(t, err)

	h.UnloadScene(s)

	// Last bound, first torn down.
	assert.Equal(t, []string{"lifecycle", "disposable"}, rec.Log())
	assert.True(t, child.Destroyed())
	assert.True(t, o.Doomed(), "bound object is hidden immediately")
	assert.False(t, o.Destroyed(), "finalization waits for end of frame")

	h.EndFrame()
	assert.True(t, o.Destroyed())
}

func TestBinder_SceneOwnerAbsentForUnloadedScene(t *testing.T) {
	h := testutil.NewHost()
	r := scene.NewRegistry(h, nil)

	s := h.LoadScene("level1")
	h.UnloadScene(s)

	_, ok := SceneOwner(r, s)
	assert.False(t, ok)
}

func TestBinder_ObserverAndStats(t *testing.T) {
	b := NewBinder(nil)
	s := signal.New()

	var events []Event
	b.Observe(func(ev Event) { events = append(events, ev) })

	d := testutil.NewDisposal()
	ticket := b.DisposeWith(d, SignalOwner(s))

	require.Len(t, events, 1)
	assert.Equal(t, KindDisposable, events[0].Kind)
	assert.Same(t, d, events[0].Target)
	assert.Same(t, s, events[0].Signal)
	assert.Same(t, ticket, events[0].Ticket)

	assert.Equal(t, map[Kind]int{KindDisposable: 1}, b.Stats())
}

func TestBinder_NilTargetsAreNoOps(t *testing.T) {
	b := NewBinder(nil)

	assert.Nil(t, b.DisposeWith(nil, SignalOwner(signal.New())))

	ticket, err := b.DestroyWith(nil, SignalOwner(signal.New()))
	assert.Nil(t, ticket)
	assert.NoError(t, err)

	assert.Nil(t, b.DisposeWith(testutil.NewDisposal(), Owner{}))
}
