// Package core defines the widget contract and the frame driver.
//
// The application declares a fresh widget tree every frame. Context.Run then
// drives three phases over that tree, always in the same order:
//
//  1. Layout: each widget computes a layout.Node within the space its parent
//     offers. Containers ask children for their Hints first, recurse with
//     their own resolved ID as the children's parent, and place the returned
//     nodes in their local space. The root node is then made absolute.
//  2. OnEvent: the whole input batch collected since the previous frame is
//     handed down the tree. Containers stop forwarding once a child consumes
//     it, so the innermost widget visited first wins.
//  3. Draw: widgets record primitives through Context.Paint using the
//     absolute bounds of their node.
//
// After drawing, queued callbacks run against the application state, memory
// of widgets absent from the layout is swept, and input is aged for the next
// frame.
//
// # Shared frame state
//
// Widgets reach everything shared through the *Context they are given: the
// persistent memory store, input and the focus/drag arbiter, the callback
// queue and accessor registry, the theme and the text shaper. Nothing is
// global. Memory handles and the painter are scoped borrows; release them
// before recursing into children.
//
// # Errors
//
// Programmer errors (a missing memory entry, a broken accessor path, a child
// index or ID that does not match between phases) abort the frame. Run
// recovers them, reports them through pkg/errors, discards the frame's output
// and returns the error.
package core
