// Package testdoubles provides test doubles (spies) for the logging
// interfaces consumed by the policy wrappers:
//   - LoggerSpy: captures leveled and exception-path emissions for
//     verification
//
// These test doubles enable testing of wrapper emission behavior without
// requiring an actual logging backend.
package testdoubles
