// Package widgets holds the terminal controls qsolog composes into its
// views: named objects instantiated from layout resources (dialogs, the
// calendar) and the popup compositor that draws modal surfaces over the
// base view.
package widgets

// Object is a named widget instantiated by a layout builder. Visibility is
// the only lifecycle state an object carries; disposal is the host's
// problem.
type Object interface {
	ObjectName() string
	Kind() string
	Show()
	Visible() bool
}
