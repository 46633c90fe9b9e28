package keymap

import (
	"github.com/sirupsen/logrus"

	"github.com/dshills/keychord/internal/input/chordtree"
	"github.com/dshills/keychord/internal/input/pattern"
)

// Inserter accepts pattern bindings. *chordtree.Tree satisfies it.
type Inserter interface {
	FindOrInsert(p pattern.Pattern, action string) chordtree.NodeID
}

// Register inserts bindings into target in order and returns how many
// were inserted.
func Register(target Inserter, bindings []Binding) int {
	for _, b := range bindings {
		target.FindOrInsert(b.Pattern, b.Action)
	}
	return len(bindings)
}

// Build turns documents into a fresh pattern tree. Later documents add to
// earlier ones; nothing is overridden. Errors from every document are
// collected and the valid bindings are still registered.
func Build(log *logrus.Entry, docs ...*Document) (*chordtree.Tree, []error) {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		log = logrus.NewEntry(l)
	}
	tree := chordtree.New()
	var errs []error
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		dlog := log.WithField("keymap", doc.Name)
		bindings, derrs := doc.Bindings()
		for _, err := range derrs {
			dlog.WithError(err).Warn("skipping key binding")
		}
		errs = append(errs, derrs...)
		for ci, c := range doc.Controls {
			for ki, attrs := range c.Keys {
				if unknown := attrs.Unknown(); len(unknown) > 0 {
					dlog.WithFields(logrus.Fields{
						"control": ci,
						"key":     ki,
						"ignored": unknown,
					}).Debug("ignoring unknown attributes")
				}
			}
		}
		n := Register(tree, bindings)
		dlog.WithFields(logrus.Fields{
			"bindings": n,
			"errors":   len(derrs),
		}).Debug("keymap registered")
	}
	return tree, errs
}
