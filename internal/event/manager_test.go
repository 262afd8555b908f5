package event

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seliware/hilite/internal/types"
)

func TestDispatch_DeliversToSubscribers(t *testing.T) {
	m := NewManager()

	var got []Event
	m.Subscribe(TypeHighlightApplied, func(e Event) bool {
		got = append(got, e)
		return false
	})

	span := types.Span{
		Start: types.Position{Line: 0, Col: 3},
		End:   types.Position{Line: 0, Col: 8},
	}
	m.Dispatch(TypeHighlightApplied, HighlightAppliedData{Key: "yellow", Span: span})

	require.Len(t, got, 1)
	data, ok := got[0].Data.(HighlightAppliedData)
	require.True(t, ok)
	require.Equal(t, "yellow", data.Key)
	require.Equal(t, span, data.Span)
}

func TestDispatch_OnlyMatchingType(t *testing.T) {
	m := NewManager()

	fired := 0
	m.Subscribe(TypeBufferSaved, func(e Event) bool {
		fired++
		return false
	})

	m.Dispatch(TypeBufferModified, BufferModifiedData{})
	require.Equal(t, 0, fired)

	m.Dispatch(TypeBufferSaved, BufferSavedData{FilePath: "x"})
	require.Equal(t, 1, fired)
}

func TestDispatch_SubscriptionOrder(t *testing.T) {
	m := NewManager()

	var order []int
	for i := 0; i < 3; i++ {
		i := i
		m.Subscribe(TypeAppQuit, func(e Event) bool {
			order = append(order, i)
			return false
		})
	}

	m.Dispatch(TypeAppQuit, nil)
	require.Equal(t, []int{0, 1, 2}, order)
}

func TestDispatch_NoSubscribers(t *testing.T) {
	m := NewManager()
	// Must not panic.
	m.Dispatch(TypeSelectionChanged, SelectionChangedData{})
}

func TestSubscribeDuringDispatch(t *testing.T) {
	m := NewManager()

	late := 0
	m.Subscribe(TypeFocusRequested, func(e Event) bool {
		m.Subscribe(TypeFocusRequested, func(e Event) bool {
			late++
			return false
		})
		return false
	})

	m.Dispatch(TypeFocusRequested, FocusRequestedData{})
	require.Equal(t, 0, late, "handlers added mid-dispatch see only later events")

	m.Dispatch(TypeFocusRequested, FocusRequestedData{})
	require.Equal(t, 1, late)
}
