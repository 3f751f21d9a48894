// Package layout instantiates named widgets from declarative TOML
// resources, keeping view structure out of the code that uses it.
package layout

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/tansy/qsolog/widgets"
)

// Builder constructs named objects from a layout resource and hands them
// back by name. Consumers depend on this interface, not on the TOML
// implementation.
type Builder interface {
	// AddObjectsFromFile instantiates the named objects (and their
	// children) from the resource at path.
	AddObjectsFromFile(path string, names ...string) error
	// GetObject returns a previously instantiated object.
	GetObject(name string) (widgets.Object, error)
}

type objectDef struct {
	Kind     string   `toml:"kind"`
	Title    string   `toml:"title"`
	Children []string `toml:"children"`
}

type resourceFile struct {
	Object map[string]objectDef `toml:"object"`
}

// TOMLBuilder builds widgets from TOML layout files. Objects are
// registered under their declared names; building the same name twice
// returns the existing instance.
type TOMLBuilder struct {
	objects map[string]widgets.Object
}

func NewBuilder() *TOMLBuilder {
	return &TOMLBuilder{objects: make(map[string]widgets.Object)}
}

func (b *TOMLBuilder) AddObjectsFromFile(path string, names ...string) error {
	var res resourceFile
	if _, err := toml.DecodeFile(path, &res); err != nil {
		return fmt.Errorf("layout resource %s: %w", path, err)
	}
	for _, name := range names {
		if _, err := b.build(res.Object, name); err != nil {
			return fmt.Errorf("layout resource %s: %w", path, err)
		}
	}
	return nil
}

func (b *TOMLBuilder) GetObject(name string) (widgets.Object, error) {
	obj, ok := b.objects[name]
	if !ok {
		return nil, fmt.Errorf("no object named %q has been built", name)
	}
	return obj, nil
}

func (b *TOMLBuilder) build(defs map[string]objectDef, name string) (widgets.Object, error) {
	if obj, ok := b.objects[name]; ok {
		return obj, nil
	}
	def, ok := defs[name]
	if !ok {
		return nil, fmt.Errorf("object %q not defined", name)
	}
	var obj widgets.Object
	switch def.Kind {
	case "calendar":
		obj = widgets.NewCalendar(name)
	case "dialog":
		children := make([]widgets.Object, 0, len(def.Children))
		for _, childName := range def.Children {
			child, err := b.build(defs, childName)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		obj = widgets.NewDialog(name, def.Title, children...)
	default:
		return nil, fmt.Errorf("object %q has unknown kind %q", name, def.Kind)
	}
	b.objects[name] = obj
	return obj, nil
}
