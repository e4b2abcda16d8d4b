// Package sim implements the rocket pool engine and its frame protocol.
//
// The package defines the event-driven core of the simulation:
//
//   - [Engine]: owns the live rocket pool and advances it one tick per frame
//   - [Event]: tagged union of engine messages ([Frame], [PlanReady])
//   - [DrawSource]: supplies the random draws behind new flight plans
//   - [Runner]: fixed-timestep headless driver
//   - [Ensemble]: parallel seeded runs for fleet statistics
//
// # Spawn Protocol
//
// A Frame event whose pre-update pool is empty makes Dispatch report true;
// the host then requests a draw and feeds it back as a PlanReady event.
// The emptiness check runs before landed rockets are filtered out, so the
// frame that lands the last rocket does not request a replacement. The
// next frame does.
//
// # Thread Safety
//
// Engine instances are NOT thread-safe; all events must be dispatched from
// a single loop. Ensemble runs engines on separate goroutines, one engine
// per goroutine.
package sim
