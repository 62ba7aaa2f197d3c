package mcp

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chantier-labs/avancement/pkg/dateutil"
)

// Tool name constants.
const (
	ToolNameAnalysis  = "progress_analysis"
	ToolNameEvm       = "earned_value"
	ToolNameBreakdown = "discipline_breakdown"
	ToolNameWeekly    = "weekly_rollup"
)

// Sentinel errors for tool input validation.
var (
	// ErrEmptyTasksPath indicates the tasks_path parameter is empty.
	ErrEmptyTasksPath = errors.New("tasks_path parameter is required and must not be empty")
	// ErrEmptyReportsPath indicates the reports_path parameter is empty.
	ErrEmptyReportsPath = errors.New("reports_path parameter is required and must not be empty")
	// ErrInvalidAsOf indicates the as_of parameter could not be parsed.
	ErrInvalidAsOf = errors.New("as_of must use the 2006-01-02 layout")
)

// Input types (JSON schemas are generated from struct tags).

// AnalysisInput is the input schema for the progress_analysis tool.
type AnalysisInput struct {
	TasksPath   string `json:"tasks_path"         jsonschema:"path to the reference schedule file (csv json yaml)"`
	ReportsPath string `json:"reports_path"       jsonschema:"path to the progress reports file (csv json yaml)"`
	AsOf        string `json:"as_of,omitempty"    jsonschema:"extend the analysis window to this date (2006-01-02)"`
}

// EvmInput is the input schema for the earned_value tool.
type EvmInput struct {
	TasksPath     string  `json:"tasks_path"               jsonschema:"path to the reference schedule file (csv json yaml)"`
	ReportsPath   string  `json:"reports_path"             jsonschema:"path to the progress reports file (csv json yaml)"`
	UnitValue     float64 `json:"unit_value,omitempty"     jsonschema:"flat cost per task (default 1000)"`
	OverrunFactor float64 `json:"overrun_factor,omitempty" jsonschema:"actual cost overrun multiplier (default 1.10)"`
}

// BreakdownInput is the input schema for the discipline_breakdown tool.
type BreakdownInput struct {
	TasksPath   string `json:"tasks_path"   jsonschema:"path to the reference schedule file (csv json yaml)"`
	ReportsPath string `json:"reports_path" jsonschema:"path to the progress reports file (csv json yaml)"`
}

// WeeklyInput is the input schema for the weekly_rollup tool.
type WeeklyInput struct {
	TasksPath   string `json:"tasks_path"      jsonschema:"path to the reference schedule file (csv json yaml)"`
	ReportsPath string `json:"reports_path"    jsonschema:"path to the progress reports file (csv json yaml)"`
	AsOf        string `json:"as_of,omitempty" jsonschema:"extend the analysis window to this date (2006-01-02)"`
}

// ToolOutput is a generic wrapper for tool results.
type ToolOutput struct {
	Data any `json:"data"`
}

// errorResult builds a CallToolResult with isError set.
func errorResult(err error) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: err.Error()},
		},
		IsError: true,
	}, ToolOutput{}, nil
}

// jsonResult builds a CallToolResult with JSON-encoded content.
func jsonResult(value any) (*mcpsdk.CallToolResult, ToolOutput, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(data)},
		},
	}, ToolOutput{Data: value}, nil
}

// validatePaths checks the common tasks/reports path parameters.
func validatePaths(tasksPath, reportsPath string) error {
	if tasksPath == "" {
		return ErrEmptyTasksPath
	}

	if reportsPath == "" {
		return ErrEmptyReportsPath
	}

	return nil
}

// parseAsOf parses the optional as_of parameter. An empty value returns the
// zero time, meaning no window extension.
func parseAsOf(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidAsOf, s)
	}

	return dateutil.Day(t), nil
}
