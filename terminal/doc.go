// Package terminal hosts the flight simulation in a tcell screen.
//
// Terminals report key presses and auto-repeats but never key releases, so
// held keys are synthesized: a key stays down until no repeat arrived within
// the hold window. Upper-case letters imply the boost modifier.
//
// The App never touches simulation state. Input goes to the scheduler inbox,
// frames come back through Offer and are drawn on the render cadence.
package terminal
