// Package statemachine is a small finite-state machine used to model
// component lifecycles (for example the carousel auto-advance timer).
//
// States and events are plain interfaces with a Name method; StringState and
// StringEvent cover the common case. Transitions are registered up front with
// functional options and looked up by [from][event]. Each transition may carry
// guards, which must all pass for the transition to be taken, and actions,
// which run in order before the state changes. A failing action aborts the
// transition and leaves the machine where it was.
//
//	const (
//		Idle      = statemachine.StringState("idle")
//		Advancing = statemachine.StringState("advancing")
//		Start     = statemachine.StringEvent("start")
//	)
//
//	sm := statemachine.MustNew(Idle,
//		statemachine.WithTransition(Idle, Advancing, Start,
//			statemachine.WithAction(scheduleTimer),
//		),
//	)
//	if err := sm.Fire(ctx, Start, nil); err != nil {
//		// statemachine.IsNoTransitionAvailableError(err), ...
//	}
//
// Listeners registered with WithListener observe every completed transition,
// which is where lifecycle logging hooks in.
//
// Machine is safe for concurrent use. Guards, actions and listeners run while
// the machine lock is held and must not call back into the same machine.
package statemachine
