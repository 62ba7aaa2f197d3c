package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chantier-labs/avancement/internal/analysis"
	"github.com/chantier-labs/avancement/internal/breakdown"
	"github.com/chantier-labs/avancement/internal/evm"
	"github.com/chantier-labs/avancement/internal/rollup"
	"github.com/chantier-labs/avancement/internal/schedule"
)

// loadInputs reads the task and report files shared by every tool.
func loadInputs(tasksPath, reportsPath string) ([]schedule.Task, []schedule.Report, error) {
	if err := validatePaths(tasksPath, reportsPath); err != nil {
		return nil, nil, err
	}

	tasks, err := schedule.LoadTasksFile(tasksPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load tasks: %w", err)
	}

	reports, err := schedule.LoadReportsFile(reportsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load reports: %w", err)
	}

	return tasks, reports, nil
}

// handleAnalysis processes progress_analysis tool calls.
func handleAnalysis(
	_ context.Context,
	_ *mcpsdk.CallToolRequest,
	input AnalysisInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	tasks, reports, err := loadInputs(input.TasksPath, input.ReportsPath)
	if err != nil {
		return errorResult(err)
	}

	asOf, err := parseAsOf(input.AsOf)
	if err != nil {
		return errorResult(err)
	}

	var series analysis.Series
	if asOf.IsZero() {
		series, err = analysis.Compute(tasks, reports)
	} else {
		series, err = analysis.ComputeAsOf(tasks, reports, asOf)
	}

	if err != nil {
		return errorResult(fmt.Errorf("compute analysis: %w", err))
	}

	return jsonResult(series)
}

// handleEvm processes earned_value tool calls.
func handleEvm(
	_ context.Context,
	_ *mcpsdk.CallToolRequest,
	input EvmInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	tasks, reports, err := loadInputs(input.TasksPath, input.ReportsPath)
	if err != nil {
		return errorResult(err)
	}

	opts := evm.Options{OverrunFactor: input.OverrunFactor}
	if input.UnitValue > 0 {
		opts.Model = evm.NewFlatRate(input.UnitValue)
	}

	metrics, err := evm.ComputeWith(tasks, reports, opts)
	if err != nil {
		return errorResult(fmt.Errorf("compute earned value: %w", err))
	}

	return jsonResult(metrics)
}

// handleBreakdown processes discipline_breakdown tool calls.
func handleBreakdown(
	_ context.Context,
	_ *mcpsdk.CallToolRequest,
	input BreakdownInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	tasks, reports, err := loadInputs(input.TasksPath, input.ReportsPath)
	if err != nil {
		return errorResult(err)
	}

	return jsonResult(breakdown.Compute(tasks, reports))
}

// handleWeekly processes weekly_rollup tool calls.
func handleWeekly(
	_ context.Context,
	_ *mcpsdk.CallToolRequest,
	input WeeklyInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	tasks, reports, err := loadInputs(input.TasksPath, input.ReportsPath)
	if err != nil {
		return errorResult(err)
	}

	asOf, err := parseAsOf(input.AsOf)
	if err != nil {
		return errorResult(err)
	}

	var series analysis.Series
	if asOf.IsZero() {
		series, err = analysis.Compute(tasks, reports)
	} else {
		series, err = analysis.ComputeAsOf(tasks, reports, asOf)
	}

	if err != nil {
		return errorResult(fmt.Errorf("compute analysis: %w", err))
	}

	return jsonResult(rollup.Weekly(series))
}
