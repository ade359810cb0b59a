// Package focus decides which widget of a terminal UI holds input focus.
//
// Every focusable widget owns a FocusFlag; containers may own a
// ContainerFlag that summarises their children. A flag carries three
// booleans: focused, and the transient gained/lost markers that are true only
// for the input pass in which focus actually moved.
//
// Input pass:
//   - The host builds a *Focus registry from its widget tree right before
//     handling a message (Container.Focus, New, Add, AddContainer). The
//     registry holds handles only; the flags stay with the widgets.
//   - HandleFocus consumes Tab/Shift+Tab style key presses and walks the
//     registry in document order, honouring each widget's Navigation.
//   - HandleMouseFocus consumes left clicks and hit-tests the registry. A
//     widget may declare several ZRect regions (for example a popup drawn
//     over its neighbours); the highest z wins, ties go to the widget
//     declared last.
//   - Both return an Outcome; Continue means the message was not consumed
//     and should be offered to the focused widget.
//
// After a dispatch returns, at most one leaf flag is focused and every
// container flag in the registry reflects its children. OnGained, OnLost and
// MatchFocus help widgets react to the transition.
package focus
