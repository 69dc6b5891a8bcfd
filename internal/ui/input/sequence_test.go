package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func feed(d *SequenceDetector, s string) (Action, bool) {
	var (
		action Action
		ok     bool
	)
	for _, r := range s {
		if a, hit := d.Feed(r); hit {
			action, ok = a, true
		}
	}
	return action, ok
}

func TestSequenceDetector(t *testing.T) {
	tests := []struct {
		name   string
		typed  string
		want   Action
		wantOK bool
	}{
		{name: "exact", typed: "idkfa", want: ActionResetState, wantOK: true},
		{name: "case insensitive", typed: "IDKfa", want: ActionResetState, wantOK: true},
		{name: "prefixed noise", typed: "zzzidkfa", want: ActionResetState, wantOK: true},
		{name: "interrupted", typed: "idkxfa"},
		{name: "partial", typed: "idkf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewSequenceDetector(map[string]Action{ResetWord: ActionResetState})
			got, ok := feed(d, tt.typed)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSequenceDetector_KeepsOnlyLastCharacters(t *testing.T) {
	d := NewSequenceDetector(map[string]Action{ResetWord: ActionResetState})
	feed(d, "abcdefgh")
	assert.Equal(t, "defgh", d.Buffer())
}

func TestSequenceDetector_ClearsAfterMatch(t *testing.T) {
	d := NewSequenceDetector(map[string]Action{ResetWord: ActionResetState})
	feed(d, "idkfa")
	assert.Empty(t, d.Buffer())
}
