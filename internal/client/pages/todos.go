package pages

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bod/internal/client/models"
	"github.com/dmitrijs2005/bod/internal/client/notify"
	"github.com/dmitrijs2005/bod/internal/common"
)

// TodoController adds completion toggling to the shared controller.
type TodoController struct {
	*Controller[models.Todo]
}

// Toggle flips the completion of the todo with id.
func (c *TodoController) Toggle(ctx context.Context, id int) (models.Todo, error) {
	if _, ok := c.store.Get(id); !ok {
		err := fmt.Errorf("todo %d: %w", id, common.ErrorNotFound)
		c.fail(ctx, err, "update")
		return models.Todo{}, err
	}

	updated, err := c.store.Modify(ctx, id, func(t models.Todo) models.Todo {
		t.Completed = !t.Completed
		return t
	})
	if err != nil {
		c.fail(ctx, err, "update")
		return models.Todo{}, err
	}

	state := "incomplete"
	if updated.Completed {
		state = "completed"
	}
	notify.Info(ctx, c.notify, summaryInfo, "Todo marked as "+state)
	return updated, nil
}
