package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pablasso/taskboard/internal/board"
	"github.com/pablasso/taskboard/internal/task"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a not-started task",
		Long:  "Adds a task at the end of the list. The arguments are joined with spaces to form the title.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.mutate(cmd, func(*board.Store) (board.Action, error) {
				return board.AddTask{Title: strings.Join(args, " ")}, nil
			})
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	var filterName string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the task list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := task.ParseFilter(filterName)
			if err != nil {
				return err
			}
			return a.mutate(cmd, func(*board.Store) (board.Action, error) {
				return board.SelectFilter{Filter: filter}, nil
			})
		},
	}
	cmd.Flags().StringVarP(&filterName, "filter", "f", "all", "show only: all|completed|in-progress|not-started")
	return cmd
}

func newAdvanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "advance <n>",
		Short: "Move task n to its next status",
		Long:  "Moves the task at position n (as shown by list) from Not-Started to In-progress, or from In-progress to Completed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.mutate(cmd, func(store *board.Store) (board.Action, error) {
				t, err := taskAt(store, args[0])
				if err != nil {
					return nil, err
				}
				return board.AdvanceTask{ID: t.ID}, nil
			})
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <n>",
		Aliases: []string{"delete"},
		Short:   "Delete task n",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.mutate(cmd, func(store *board.Store) (board.Action, error) {
				t, err := taskAt(store, args[0])
				if err != nil {
					return nil, err
				}
				return board.DeleteTask{ID: t.ID}, nil
			})
		},
	}
}

func newCompleteAllCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complete-all",
		Short: "Mark every task completed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.mutate(cmd, func(*board.Store) (board.Action, error) {
				return board.CompleteAll{}, nil
			})
		},
	}
}

func newClearCompletedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-completed",
		Short: "Delete every completed task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.mutate(cmd, func(*board.Store) (board.Action, error) {
				return board.ClearCompleted{}, nil
			})
		},
	}
}

// mutate opens the store, dispatches the action built by build and prints the
// refreshed list.
func (a *app) mutate(cmd *cobra.Command, build func(*board.Store) (board.Action, error)) error {
	return a.withStore(cmd, func(store *board.Store) error {
		view := attachList(store)

		action, err := build(store)
		if err != nil {
			return err
		}

		if err := store.Dispatch(cmd.Context(), action); err != nil {
			var vErr *task.ValidationError
			if errors.As(err, &vErr) {
				return errors.New(vErr.Message())
			}
			return err
		}

		view.print(cmd.OutOrStdout(), store.Tasks())
		return nil
	})
}

// taskAt resolves a 1-based position in the full list.
func taskAt(store *board.Store, arg string) (task.Task, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return task.Task{}, fmt.Errorf("invalid task number %q", arg)
	}

	tasks := store.Tasks()
	if n < 1 || n > len(tasks) {
		return task.Task{}, fmt.Errorf("no task at position %d (the list has %d)", n, len(tasks))
	}
	return tasks[n-1], nil
}
