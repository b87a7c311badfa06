package mdpreview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	mdpreview "github.com/sid12c/md-preview"
)

func TestEventStart_ImplementsEvent(t *testing.T) {
	t.Parallel()
	var e mdpreview.Event = mdpreview.EventStart{Kind: mdpreview.KindHeading, Level: 2}
	assert.NotNil(t, e)
}

func TestEventEnd_ImplementsEvent(t *testing.T) {
	t.Parallel()
	var e mdpreview.Event = mdpreview.EventEnd{Kind: mdpreview.KindHeading}
	assert.NotNil(t, e)
}

func TestEventText_ImplementsEvent(t *testing.T) {
	t.Parallel()
	var e mdpreview.Event = mdpreview.EventText{Text: "hello"}
	assert.NotNil(t, e)
}

func TestEventBreak_ImplementsEvent(t *testing.T) {
	t.Parallel()
	var e mdpreview.Event = mdpreview.EventBreak{}
	assert.NotNil(t, e)
}

func TestEventTypeSwitch_Exhaustive(t *testing.T) {
	t.Parallel()
	events := []mdpreview.Event{
		mdpreview.EventStart{Kind: mdpreview.KindParagraph},
		mdpreview.EventText{Text: "hello"},
		mdpreview.EventBreak{},
		mdpreview.EventEnd{Kind: mdpreview.KindParagraph},
	}
	assert.Len(t, events, 4, "update slice and switch when adding new Event types")
	for _, e := range events {
		switch e.(type) {
		case mdpreview.EventStart:
		case mdpreview.EventEnd:
		case mdpreview.EventText:
		case mdpreview.EventBreak:
		default:
			t.Fatalf("unexpected event type: %T", e)
		}
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "heading", mdpreview.KindHeading.String())
	assert.Equal(t, "tableheadercell", mdpreview.KindTableHeaderCell.String())
	assert.Equal(t, "unknown", mdpreview.Kind(-1).String())
}
