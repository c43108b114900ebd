// Package editor provides the interactive Canvas surface: object/port
// placement, grouping, and the begin/end op-stack state machine described
// in the system design notes' REDESIGN FLAGS (§9) — an explicit
// {IDLE, DRAW_CONN, MOVE_CONN, DRAG_SEG, MOVE_OBJ} state machine in place
// of callback-stack reinstallation. editor owns no geometry algorithms
// itself; every structural mutation delegates to connector.Engine and
// ends at Assimilate, the commit point (§5).
package editor
