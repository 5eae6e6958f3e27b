// Package commands exposes the data operations by name so a UI shell can
// invoke them with JSON arguments and receive a string result.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/thenoetrevino/novi/internal/app"
	"github.com/thenoetrevino/novi/internal/models"
	"github.com/thenoetrevino/novi/internal/services/lmcp"
	"github.com/thenoetrevino/novi/internal/services/sameday"
)

// Command names
const (
	InsertStation      = "insert_station"
	AddStation         = "add_station"
	GetStations        = "get_stations"
	DeleteStation      = "delete_station"
	InsertSameDayTask  = "insert_same_day_task"
	GetAllSameDayTasks = "get_all_same_day_tasks"
	InsertLMCPTask     = "insert_lmcp_task"
	GetAllLMCPTasks    = "get_all_lmcp_tasks"
)

// Handler runs one command. args is the raw JSON argument object (may be
// empty) and the result is the string handed back to the caller.
type Handler func(ctx context.Context, args json.RawMessage) (string, error)

// Registry maps command names to handlers
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry registers every data operation against the services in a
func NewRegistry(a *app.App) *Registry {
	r := &Registry{handlers: make(map[string]Handler)}

	r.Register(InsertStation, insertStation(a))
	r.Register(AddStation, insertStation(a))
	r.Register(GetStations, getStations(a))
	r.Register(DeleteStation, deleteStation(a))
	r.Register(InsertSameDayTask, insertSameDayTask(a))
	r.Register(GetAllSameDayTasks, getAllSameDayTasks(a))
	r.Register(InsertLMCPTask, insertLMCPTask(a))
	r.Register(GetAllLMCPTasks, getAllLMCPTasks(a))

	return r
}

// Register adds or replaces the handler for name
func (r *Registry) Register(name string, h Handler) {
	r.handlers[name] = h
}

// Names returns the registered command names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Invoke runs the named command
func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) (string, error) {
	h, ok := r.handlers[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	return h(ctx, args)
}

// ============================================================================
// Argument decoding
// ============================================================================

// stationArgs accepts the key the UI sends for each station command.
// deleteStationCode is the historical name used by delete_station.
type stationArgs struct {
	StationCode       string `json:"stationCode"`
	DeleteStationCode string `json:"deleteStationCode"`
}

func (a stationArgs) code() string {
	if a.StationCode != "" {
		return a.StationCode
	}
	return a.DeleteStationCode
}

func decodeArgs(args json.RawMessage, v any) error {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	return nil
}

// DecodeTask reads a task payload sent either wrapped as {"task": {...}}
// or as the bare object
func DecodeTask(args json.RawMessage, v any) error {
	var wrapped struct {
		Task json.RawMessage `json:"task"`
	}
	if err := decodeArgs(args, &wrapped); err != nil {
		return err
	}
	if len(wrapped.Task) > 0 {
		return decodeArgs(wrapped.Task, v)
	}
	return decodeArgs(args, v)
}

// marshalList encodes a slice as a JSON array; an empty table is [] not null
func marshalList[T any](items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(data), nil
}

// ============================================================================
// Handlers
// ============================================================================

func insertStation(a *app.App) Handler {
	return func(ctx context.Context, args json.RawMessage) (string, error) {
		var in stationArgs
		if err := decodeArgs(args, &in); err != nil {
			return "", err
		}
		n, err := a.StationService.InsertStation(ctx, in.code())
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	}
}

func getStations(a *app.App) Handler {
	return func(ctx context.Context, _ json.RawMessage) (string, error) {
		stations, err := a.StationService.GetStations(ctx)
		if err != nil {
			return "", err
		}
		return marshalList(stations)
	}
}

func deleteStation(a *app.App) Handler {
	return func(ctx context.Context, args json.RawMessage) (string, error) {
		var in stationArgs
		if err := decodeArgs(args, &in); err != nil {
			return "", err
		}
		n, err := a.StationService.DeleteStation(ctx, in.code())
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	}
}

func insertSameDayTask(a *app.App) Handler {
	return func(ctx context.Context, args json.RawMessage) (string, error) {
		var task models.NewSameDayTask
		if err := DecodeTask(args, &task); err != nil {
			return "", err
		}
		if _, err := a.SameDayService.InsertSameDayTask(ctx, task); err != nil {
			return "", err
		}
		return sameday.SuccessMessage, nil
	}
}

func getAllSameDayTasks(a *app.App) Handler {
	return func(ctx context.Context, _ json.RawMessage) (string, error) {
		tasks, err := a.SameDayService.GetAllSameDayTasks(ctx)
		if err != nil {
			return "", err
		}
		return marshalList(tasks)
	}
}

func insertLMCPTask(a *app.App) Handler {
	return func(ctx context.Context, args json.RawMessage) (string, error) {
		var task models.NewLMCPTask
		if err := DecodeTask(args, &task); err != nil {
			return "", err
		}
		if _, err := a.LMCPService.InsertLMCPTask(ctx, task); err != nil {
			return "", err
		}
		return lmcp.SuccessMessage, nil
	}
}

func getAllLMCPTasks(a *app.App) Handler {
	return func(ctx context.Context, _ json.RawMessage) (string, error) {
		tasks, err := a.LMCPService.GetAllLMCPTasks(ctx)
		if err != nil {
			return "", err
		}
		return marshalList(tasks)
	}
}
