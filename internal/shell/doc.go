// Package shell owns the loaded file and the convert command state, and runs
// the load and convert flows against UI collaborators and the conversion
// controller. It has no Fyne dependency; the ui package implements its
// collaborator interfaces.
package shell
