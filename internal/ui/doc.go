// Package ui contains the Bubble Tea program for the focusring demo form.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a single
//     function.
//   - Every key press or click lays the form out for the current size and
//     builds a fresh focus.Focus registry from it. Key presses go to the
//     configured focus.KeyMap, left clicks to focus.HandleMouseFocus.
//   - When the focus engine does not consume a key, the press is forwarded to
//     the focused widget. Consumed clicks are forwarded too, so the widget
//     under the pointer can act on them (pick a popup row, press a button).
//   - After a transition each widget reacts to its gained/lost flags, e.g. the
//     text inputs take or drop the cursor and the combo popup closes.
//
// Rendering:
//   - Widgets render at the areas they were given by the layout, and the
//     combo popup is composited over the rows below it at the same position
//     the registry uses for hit testing.
//   - Form actions run through the internal/ui/command bus and end the
//     program once their result arrives.
package ui
