package controller

import (
	"fmt"

	"github.com/rogersnm/tally/internal/filter"
)

type IntentKind int

const (
	IntentSubmitNew IntentKind = iota + 1
	IntentSubmitEdit
	IntentCancelEdit
	IntentToggleAll
	IntentSetCompleted
	IntentStartEdit
	IntentClearCompleted
	IntentDestroy
	IntentRoute
)

var intentNames = map[IntentKind]string{
	IntentSubmitNew:      "submit-new",
	IntentSubmitEdit:     "submit-edit",
	IntentCancelEdit:     "cancel-edit",
	IntentToggleAll:      "toggle-all",
	IntentSetCompleted:   "set-completed",
	IntentStartEdit:      "start-edit",
	IntentClearCompleted: "clear-completed",
	IntentDestroy:        "destroy",
	IntentRoute:          "route",
}

func (k IntentKind) String() string {
	if n, ok := intentNames[k]; ok {
		return n
	}
	return fmt.Sprintf("intent(%d)", int(k))
}

// Intent is one decoded user request. Which fields matter depends on Kind:
// Text for submits, TaskID for per-task intents, Completed for SetCompleted,
// Fragment for Route.
type Intent struct {
	Kind      IntentKind
	TaskID    int
	Text      string
	Completed bool
	Fragment  string
}

func SubmitNew(text string) Intent { return Intent{Kind: IntentSubmitNew, Text: text} }

func SubmitEdit(id int, text string) Intent {
	return Intent{Kind: IntentSubmitEdit, TaskID: id, Text: text}
}

func CancelEdit(id int) Intent { return Intent{Kind: IntentCancelEdit, TaskID: id} }

func ToggleAll() Intent { return Intent{Kind: IntentToggleAll} }

func SetCompleted(id int, completed bool) Intent {
	return Intent{Kind: IntentSetCompleted, TaskID: id, Completed: completed}
}

func StartEdit(id int) Intent { return Intent{Kind: IntentStartEdit, TaskID: id} }

func ClearCompleted() Intent { return Intent{Kind: IntentClearCompleted} }

func Destroy(id int) Intent { return Intent{Kind: IntentDestroy, TaskID: id} }

func Route(fragment string) Intent { return Intent{Kind: IntentRoute, Fragment: fragment} }

// Dispatch runs the action an intent names.
func (c *Controller) Dispatch(in Intent) error {
	c.logger.Debug("intent", "kind", in.Kind.String(), "task", in.TaskID)
	switch in.Kind {
	case IntentSubmitNew:
		_, err := c.SubmitNewTask(in.Text)
		return err
	case IntentSubmitEdit:
		return c.SubmitEdit(in.TaskID, in.Text)
	case IntentCancelEdit:
		return c.CancelEdit(in.TaskID)
	case IntentToggleAll:
		return c.ToggleAll()
	case IntentSetCompleted:
		return c.SetCompleted(in.TaskID, in.Completed)
	case IntentStartEdit:
		return c.StartEdit(in.TaskID)
	case IntentClearCompleted:
		_, err := c.ClearCompleted()
		return err
	case IntentDestroy:
		return c.Destroy(in.TaskID)
	case IntentRoute:
		c.SetFilter(filter.FromFragment(in.Fragment))
		return nil
	default:
		return fmt.Errorf("unknown intent %s", in.Kind)
	}
}
