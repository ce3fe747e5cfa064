// Package assert holds the contract checks used across charconv. A failed check is a
// programming error and panics. Building with the charconv_noassert tag removes the checks.
package assert

// Enabled reports if assertions are compiled in.
const Enabled = enabled

// That panics with msg if cond is false and assertions are enabled.
// msg is a plain string so that callers do not allocate on the success path.
func That(cond bool, msg string) {
	if enabled && !cond {
		panic("charconv: contract violation: " + msg)
	}
}
