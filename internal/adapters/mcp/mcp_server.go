// Package mcp provides the MCP (Model Context Protocol) server implementation.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tomato-timer/tomato/internal/domain"
	"github.com/tomato-timer/tomato/internal/services"
)

// Server implements the MCP server using mark3labs/mcp-go. It exposes
// the timer engine, tasks, and statistics as tools over stdio.
type Server struct {
	server *server.MCPServer
	engine *services.TimerService
	tasks  *services.TaskService
	stats  *services.StatsService
}

// NewServer creates a new MCP server instance.
func NewServer(engine *services.TimerService, tasks *services.TaskService, stats *services.StatsService) *Server {
	s := &Server{
		engine: engine,
		tasks:  tasks,
		stats:  stats,
	}

	s.server = server.NewMCPServer(
		"tomato-timer",
		"1.0.0",
		server.WithLogging(),
	)
	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	s.server.AddTool(
		mcp.NewTool(
			"get_timer_state",
			mcp.WithDescription("Get the current timer state: mode, remaining seconds, running flag, and completed session count"),
		),
		s.handleGetTimerState,
	)

	s.server.AddTool(
		mcp.NewTool(
			"start_timer",
			mcp.WithDescription("Start or resume the countdown in the current mode"),
		),
		s.handleStartTimer,
	)

	s.server.AddTool(
		mcp.NewTool(
			"pause_timer",
			mcp.WithDescription("Pause the countdown without losing progress"),
		),
		s.handlePauseTimer,
	)

	s.server.AddTool(
		mcp.NewTool(
			"reset_timer",
			mcp.WithDescription("Reset the current mode to its full duration"),
		),
		s.handleResetTimer,
	)

	switchTool := mcp.NewTool(
		"switch_mode",
		mcp.WithDescription("Switch the timer to a different mode"),
		mcp.WithString(
			"mode",
			mcp.Required(),
			mcp.Description("Target mode: work, break, or longBreak"),
			mcp.Enum("work", "break", "longBreak"),
		),
	)
	s.server.AddTool(switchTool, s.handleSwitchMode)

	listTasksTool := mcp.NewTool(
		"list_tasks",
		mcp.WithDescription("List all tasks, optionally fuzzy-filtered by name"),
		mcp.WithString(
			"filter",
			mcp.Description("Optional fuzzy name filter"),
		),
	)
	s.server.AddTool(listTasksTool, s.handleListTasks)

	useTaskTool := mcp.NewTool(
		"use_task",
		mcp.WithDescription("Select the task future work sessions are attributed to"),
		mcp.WithString(
			"task",
			mcp.Required(),
			mcp.Description("Task id or exact name"),
		),
	)
	s.server.AddTool(useTaskTool, s.handleUseTask)

	statsTool := mcp.NewTool(
		"get_stats",
		mcp.WithDescription("Get the statistics report: totals, streaks, heatmap, distributions, and goal progress"),
		mcp.WithString(
			"period",
			mcp.Description("Period: day, week, month, quarter, half, year, or a four-digit year (default: week)"),
		),
	)
	s.server.AddTool(statsTool, s.handleGetStats)
}

// Start begins serving MCP requests via stdio.
func (s *Server) Start(ctx context.Context) error {
	return server.ServeStdio(s.server)
}

func (s *Server) handleGetTimerState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return stateResult(s.engine.Snapshot())
}

func (s *Server) handleStartTimer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.engine.Start(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to start timer: %v", err)), nil
	}
	return stateResult(state)
}

func (s *Server) handlePauseTimer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.engine.Pause(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to pause timer: %v", err)), nil
	}
	return stateResult(state)
}

func (s *Server) handleResetTimer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.engine.Reset(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to reset timer: %v", err)), nil
	}
	return stateResult(state)
}

func (s *Server) handleSwitchMode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mode, err := request.RequireString("mode")
	if err != nil {
		return mcp.NewToolResultError("mode is required: " + err.Error()), nil
	}
	state, err := s.engine.SwitchMode(ctx, domain.Mode(mode))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to switch mode: %v", err)), nil
	}
	return stateResult(state)
}

func (s *Server) handleListTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := request.GetString("filter", "")
	tasks, err := s.tasks.ListTasks(ctx, filter)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list tasks: %v", err)), nil
	}
	return jsonResult(tasks)
}

func (s *Server) handleUseTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idOrName, err := request.RequireString("task")
	if err != nil {
		return mcp.NewToolResultError("task is required: " + err.Error()), nil
	}
	task, err := s.tasks.UseTask(ctx, idOrName)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to select task: %v", err)), nil
	}
	return jsonResult(task)
}

func (s *Server) handleGetStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	period := request.GetString("period", "week")
	report, err := s.stats.Report(ctx, period)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to build report: %v", err)), nil
	}
	return jsonResult(report)
}

func stateResult(state domain.TimerState) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]interface{}{
		"mode":      string(state.Mode),
		"timeLeft":  state.TimeLeft,
		"isRunning": state.IsRunning,
		"sessions":  state.Sessions,
		"clock":     services.FormatClock(state.TimeLeft),
	})
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
