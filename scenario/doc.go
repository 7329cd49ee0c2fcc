// Package scenario replays recorded gesture scenarios against a recognizer
// and checks the result.
//
// A scenario is a YAML file with recognizer options, a list of script steps
// (the same steps gesture.ScriptRunner plays) and assertions over the
// resulting trace and final state:
//
//	name: swipe_right
//	description: a fast drag to the right is one swipe plus a tap
//	steps:
//	  - action: swipe
//	    from: {x: 0, y: 0}
//	    to: {x: 200, y: 0}
//	assertions:
//	  - type: event_count
//	    event: swipe
//	    count: 1
//
// Files are checked against an embedded JSON schema before decoding. Runs use
// a ManualScheduler starting at a fixed instant, so traces are deterministic
// and can be compared with golden files under testdata/golden.
package scenario
