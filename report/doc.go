// Package report turns SEIR trajectories into the figures and tables a
// reader looks at: peak infection and its timing, final compartment sizes,
// attack rate, and a side-by-side comparison of the two transmission
// policies. It only reads the *seir.Trajectory values it is given.
//
// Writers take an io.Writer so callers choose the destination (stdout, an
// HTTP response, a file they own); the package itself opens nothing.
package report
