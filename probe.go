package ggapp

// ProbeFunc inspects the process environment and recommends a Backend.
// The second result is false when no recommendation can be made from the
// calling context (for example, off the main thread on Windows, where the
// GPU checks need that thread); a later call from a valid context may
// still decide.
//
// A probe may create short-lived native resources to test a capability,
// but must release them before returning. Under normal operation a probe
// runs at most once per process: Selector caches its answer.
type ProbeFunc func() (Backend, bool)
