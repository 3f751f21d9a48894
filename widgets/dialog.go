package widgets

// Dialog is a named modal container. Its children are the widgets the
// layout resource declared under it; ShowAll mirrors the usual toolkit
// contract of making the dialog and everything inside it visible at once.
type Dialog struct {
	name     string
	title    string
	children []Object
	visible  bool
}

func NewDialog(name, title string, children ...Object) *Dialog {
	return &Dialog{name: name, title: title, children: children}
}

func (d *Dialog) ObjectName() string { return d.name }
func (d *Dialog) Kind() string       { return "dialog" }
func (d *Dialog) Title() string      { return d.title }
func (d *Dialog) Show()              { d.visible = true }
func (d *Dialog) Visible() bool      { return d.visible }

func (d *Dialog) Children() []Object { return d.children }

// ShowAll shows the dialog and all of its children.
func (d *Dialog) ShowAll() {
	d.Show()
	for _, child := range d.children {
		child.Show()
	}
}
