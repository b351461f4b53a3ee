package modal

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/modal/internal/tui/a11y"
	"github.com/mark3labs/modal/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

func TestTree_Snapshot(t *testing.T) {
	t.Parallel()

	m := mounted(Props{
		Title:   testfixtures.SnapshotTitle,
		Message: testfixtures.SnapshotMessage,
		OnClose: func() tea.Cmd { return nil },
		Actions: []Action{{Label: "OK", OnClick: func() tea.Cmd { return nil }}},
	})

	testfixtures.CompareGolden(t, testfixtures.GoldenPath("modal_snapshot.golden"), m.Tree().String())
}

func TestTree_TitleAndMessage(t *testing.T) {
	t.Parallel()

	tree := mounted(testProps(testfixtures.NewRecorder())).Tree()

	heading := tree.ByRole(a11y.RoleHeading, "Test Modal")
	require.NotNil(t, heading)
	require.Equal(t, "modal-title", heading.Attr(a11y.AttrID))
	require.Equal(t, "3", heading.Attr(a11y.AttrLevel))

	para := tree.ByText("This is a test modal message.")
	require.NotNil(t, para)
	require.Equal(t, a11y.RoleParagraph, para.Role)
	require.Equal(t, "modal-message", para.Attr(a11y.AttrID))

	popup := tree.Find(func(n *a11y.Node) bool { return n.Attr(a11y.AttrClass) == ClassPopup })
	require.NotNil(t, popup)
	require.Equal(t, "modal-title", popup.Attr(a11y.AttrLabelledBy))
	require.Equal(t, "modal-message", popup.Attr(a11y.AttrDescribedBy))
}

func TestTree_ActionsInOrder(t *testing.T) {
	t.Parallel()

	tree := mounted(testProps(testfixtures.NewRecorder())).Tree()

	group := tree.ByRole(a11y.RoleGroup, "")
	require.NotNil(t, group)
	require.Len(t, group.Children, 2)
	require.Equal(t, "Confirm", group.Children[0].Name())
	require.Equal(t, "Cancel", group.Children[1].Name())
	require.Equal(t, "modal-action-1-cancel", group.Children[1].Attr(a11y.AttrID))
}

func TestTree_EmptyDialog(t *testing.T) {
	t.Parallel()

	tree := mounted(Props{Actions: []Action{}, OnClose: func() tea.Cmd { return nil }}).Tree()

	buttons := tree.AllByRole(a11y.RoleButton)
	require.Len(t, buttons, 1)
	require.Equal(t, CloseLabel, buttons[0].Name())
	require.Nil(t, tree.ByRole(a11y.RoleHeading, ""))
	require.Nil(t, tree.ByRole(a11y.RoleParagraph, ""))

	group := tree.ByRole(a11y.RoleGroup, "")
	require.NotNil(t, group)
	require.Empty(t, group.Children)

	popup := tree.Children[0]
	require.Empty(t, popup.Attr(a11y.AttrLabelledBy))
	require.Empty(t, popup.Attr(a11y.AttrDescribedBy))
}

func TestTree_ModalAttribute(t *testing.T) {
	t.Parallel()

	for _, props := range []Props{
		testProps(testfixtures.NewRecorder()),
		{Actions: []Action{}},
		{Title: "Only a title"},
	} {
		for _, m := range []*Modal{New(props), mounted(props)} {
			tree := m.Tree()
			require.Equal(t, a11y.RoleDialog, tree.Role)
			require.Equal(t, "true", tree.Attr(a11y.AttrModal))
			require.Equal(t, "-1", tree.Attr(a11y.AttrTabIndex))
		}
	}
}

func TestTree_CloseControl(t *testing.T) {
	t.Parallel()

	tree := mounted(testProps(testfixtures.NewRecorder())).Tree()

	closeBtn := tree.ByRole(a11y.RoleButton, CloseLabel)
	require.NotNil(t, closeBtn)
	require.Equal(t, ClassClose, closeBtn.Attr(a11y.AttrClass))
	require.Len(t, closeBtn.Children, 1)
	require.Equal(t, "true", closeBtn.Children[0].Attr(a11y.AttrHidden))
}

func TestTree_Focus(t *testing.T) {
	t.Parallel()

	m := New(testProps(testfixtures.NewRecorder()))
	require.Nil(t, m.Tree().Focused())

	m.Init()
	require.Equal(t, a11y.RoleDialog, m.Tree().Focused().Role)

	m.HandleKey(tabKey)
	require.Equal(t, CloseLabel, m.Tree().Focused().Name())

	m.HandleKey(tabKey)
	require.Equal(t, "Confirm", m.Tree().Focused().Name())

	m.HandleKey(tabKey)
	m.HandleKey(tabKey)
	require.Nil(t, m.Tree().Focused())
}

func TestIDs(t *testing.T) {
	t.Parallel()

	m := New(Props{Actions: []Action{{Label: "Save & Exit"}, {Label: "!!"}}}, WithID("confirm"))
	require.Equal(t, "confirm-title", m.TitleID())
	require.Equal(t, "confirm-message", m.MessageID())
	require.Equal(t, "confirm-action-0-save-and-exit", m.ActionID(0))
	require.Equal(t, "confirm-action-1", m.ActionID(1))
	require.Empty(t, m.ActionID(2))
	require.Empty(t, m.ActionID(-1))
}
