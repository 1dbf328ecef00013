// Package processor contains the conversion pipeline for psdict. It resolves
// the input and output streams, runs the dictionary transform, and reports
// progress on stderr when verbose output is requested.
package processor
