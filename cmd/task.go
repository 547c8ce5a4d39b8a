package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var taskColor string

// taskCmd groups the task management subcommands.
var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
	Long:  `Create, list, select, and remove the tasks work sessions are attributed to.`,
}

var taskAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task, err := app.tasks.AddTask(context.Background(), args[0], taskColor)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Added task %q (%s)\n", task.Name, task.ID)
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list [filter]",
	Short: "List tasks, optionally fuzzy-filtered by name",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		filter := ""
		if len(args) > 0 {
			filter = args[0]
		}

		tasks, err := app.tasks.ListTasks(ctx, filter)
		if err != nil {
			return err
		}

		if jsonOutput {
			jsonData, err := json.MarshalIndent(tasks, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal tasks: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks. Add one with: tomato task add <name>")
			return nil
		}

		current, err := app.tasks.CurrentTask(ctx)
		if err != nil {
			return err
		}
		for _, task := range tasks {
			marker := " "
			if current != nil && current.ID == task.ID {
				marker = "*"
			}
			fmt.Printf("%s %s  %s\n", marker, task.ID, task.Name)
		}
		return nil
	},
}

var taskRmCmd = &cobra.Command{
	Use:   "rm <id|name>",
	Short: "Remove a task",
	Long: `Remove a task. Recorded sessions keep their task attribution; only
the task itself goes away.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		task, err := app.tasks.FindTask(ctx, args[0])
		if err != nil {
			return err
		}
		if err := app.tasks.DeleteTask(ctx, task.ID); err != nil {
			return err
		}
		fmt.Printf("✓ Removed task %q\n", task.Name)
		return nil
	},
}

var taskUseCmd = &cobra.Command{
	Use:   "use <id|name>",
	Short: "Select the task future sessions are attributed to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task, err := app.tasks.UseTask(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("✓ Now working on %q\n", task.Name)
		return nil
	},
}

var taskClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Deselect the current task",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.tasks.ClearTask(context.Background()); err != nil {
			return err
		}
		fmt.Println("✓ Cleared task selection")
		return nil
	},
}

func init() {
	taskAddCmd.Flags().StringVar(&taskColor, "color", "", "Hex color for the task, e.g. #4ECDC4")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskRmCmd)
	taskCmd.AddCommand(taskUseCmd)
	taskCmd.AddCommand(taskClearCmd)
}
