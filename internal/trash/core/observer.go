package core

// Observer is notified after each entry is moved or removed so a host can
// refresh listings or re-point views whose backing file changed. The engine
// keeps no view state of its own.
type Observer interface {
	OnMoved(original, destination string)
	OnRemoved(path string)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are ignored.
type ObserverFuncs struct {
	Moved   func(original, destination string)
	Removed func(path string)
}

func (o ObserverFuncs) OnMoved(original, destination string) {
	if o.Moved != nil {
		o.Moved(original, destination)
	}
}

func (o ObserverFuncs) OnRemoved(path string) {
	if o.Removed != nil {
		o.Removed(path)
	}
}

// Observers fans a notification out to every registered observer in order
type Observers []Observer

func (obs Observers) OnMoved(original, destination string) {
	for _, o := range obs {
		o.OnMoved(original, destination)
	}
}

func (obs Observers) OnRemoved(path string) {
	for _, o := range obs {
		o.OnRemoved(path)
	}
}

// Confirmer asks for a yes/no answer before an irreversible operation.
// A false answer is a normal abort, not an error.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(prompt string) (bool, error)

func (f ConfirmFunc) Confirm(prompt string) (bool, error) {
	return f(prompt)
}

var (
	// AlwaysConfirm accepts every prompt (rm -f)
	AlwaysConfirm Confirmer = ConfirmFunc(func(string) (bool, error) { return true, nil })

	// NeverConfirm declines every prompt
	NeverConfirm Confirmer = ConfirmFunc(func(string) (bool, error) { return false, nil })
)
