// Package viz renders the wave animation in the terminal.
//
// [Model] is a bubbletea program: a TickMsg fires at the configured frame
// rate, each tick resamples the whole grid at the current simulated time
// and redraws a braille [Canvas] (surface polyline plus velocity arrows)
// next to a lipgloss stats panel. Simulated dt is independent of the
// frame rate.
package viz
