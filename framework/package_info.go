// Package framework contains the low-level test harness infrastructure that is
// not specific to what is being tested. The general model is:
//
// 1. There is a test context which is similar to Go's testing.T, allowing pieces
// of test logic to be associated with a test identifier and to accumulate
// success/failure results, outside of the Go test runner.
//
// 2. Tests can be selected or excluded by regex filters supplied on the command
// line.
//
// 3. Conditions that only become true after some asynchronous activity are
// checked with a bounded polling Waiter, whose clock and poll interval can be
// replaced in tests.
//
// The domain-specific packages (webtests, resttests) build their own test APIs
// on top of this package.
package framework
