package modal

import (
	"fmt"
	"strconv"

	"github.com/gosimple/slug"
	"github.com/mark3labs/modal/internal/tui/a11y"
	"github.com/mark3labs/modal/internal/tui/icon"
)

// TitleID returns the id of the title element.
func (m *Modal) TitleID() string { return m.id + "-title" }

// MessageID returns the id of the message element.
func (m *Modal) MessageID() string { return m.id + "-message" }

// ActionID returns the id of the action button at index i.
func (m *Modal) ActionID(i int) string {
	if i < 0 || i >= len(m.props.Actions) {
		return ""
	}
	id := fmt.Sprintf("%s-action-%d", m.id, i)
	if s := slug.Make(m.props.Actions[i].Label); s != "" {
		id += "-" + s
	}
	return id
}

// Tree returns the dialog's semantic tree. Like the rendered cells, it is
// a function of the props and the focus position.
func (m *Modal) Tree() *a11y.Node {
	root := a11y.New(a11y.RoleDialog,
		a11y.AttrModal, "true",
		a11y.AttrTabIndex, "-1",
		a11y.AttrClass, ClassModal,
	)
	markFocus(root, m.mounted && m.focus == focusRoot)

	popup := a11y.New(a11y.RoleGeneric, a11y.AttrClass, ClassPopup)
	if m.props.Title != "" {
		popup.Set(a11y.AttrLabelledBy, m.TitleID())
	}
	if m.props.Message != "" {
		popup.Set(a11y.AttrDescribedBy, m.MessageID())
	}

	closeBtn := a11y.New(a11y.RoleButton,
		a11y.AttrLabel, CloseLabel,
		a11y.AttrClass, ClassClose,
	).Append(a11y.New(a11y.RoleImg,
		a11y.AttrHidden, "true",
		a11y.AttrClass, ClassCloseIcon,
		"icon", string(icon.XMark),
	))
	markFocus(closeBtn, m.CloseFocused())
	popup.Append(closeBtn)

	if m.props.Title != "" {
		heading := a11y.New(a11y.RoleHeading,
			a11y.AttrID, m.TitleID(),
			a11y.AttrClass, ClassTitle,
			a11y.AttrLevel, strconv.Itoa(3),
		)
		heading.Text = m.props.Title
		popup.Append(heading)
	}

	if m.props.Message != "" {
		para := a11y.New(a11y.RoleParagraph,
			a11y.AttrID, m.MessageID(),
			a11y.AttrClass, ClassMessage,
		)
		para.Text = m.props.Message
		popup.Append(para)
	}

	group := a11y.New(a11y.RoleGroup, a11y.AttrClass, ClassButtons)
	for i, a := range m.props.Actions {
		btn := a11y.New(a11y.RoleButton,
			a11y.AttrID, m.ActionID(i),
			a11y.AttrClass, ClassButton,
		)
		btn.Text = a.Label
		markFocus(btn, m.FocusedAction() == i)
		group.Append(btn)
	}
	popup.Append(group)

	return root.Append(popup)
}

func markFocus(n *a11y.Node, focused bool) {
	if focused {
		n.Set(a11y.AttrFocused, "true")
	}
}
