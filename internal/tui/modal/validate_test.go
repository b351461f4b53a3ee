package modal

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	noop := func() tea.Cmd { return nil }

	tests := []struct {
		name  string
		props Props
		want  []error
	}{
		{
			name:  "complete",
			props: Props{OnClose: noop, Actions: []Action{{Label: "OK", OnClick: noop}}},
		},
		{
			name:  "empty actions",
			props: Props{OnClose: noop, Actions: []Action{}},
		},
		{
			name:  "missing close",
			props: Props{Actions: []Action{}},
			want:  []error{ErrNoOnClose},
		},
		{
			name:  "nil actions",
			props: Props{OnClose: noop},
			want:  []error{ErrNoActions},
		},
		{
			name:  "bad action",
			props: Props{OnClose: noop, Actions: []Action{{}}},
			want:  []error{ErrEmptyLabel, ErrNoOnClick},
		},
		{
			name:  "zero props",
			props: Props{},
			want:  []error{ErrNoOnClose, ErrNoActions},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.props.Validate()
			if len(tt.want) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.want {
				require.ErrorIs(t, err, want)
			}
		})
	}
}

func TestActionError(t *testing.T) {
	t.Parallel()

	noop := func() tea.Cmd { return nil }
	err := Props{OnClose: noop, Actions: []Action{
		{Label: "OK", OnClick: noop},
		{OnClick: noop},
	}}.Validate()

	var actionErr *ActionError
	require.True(t, errors.As(err, &actionErr))
	require.Equal(t, 1, actionErr.Index)
	require.ErrorIs(t, actionErr, ErrEmptyLabel)
	require.Equal(t, "modal: action 1: label is required", actionErr.Error())
}

func TestNew_InvalidPropsStillRender(t *testing.T) {
	t.Parallel()

	m := mounted(Props{Title: "Broken"})
	require.NotPanics(t, func() { _ = m.View() })
	require.NotNil(t, m.Tree())
}
