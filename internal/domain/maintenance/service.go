package maintenance

import "context"

type MaintenanceService interface {
	CreateTask(ctx context.Context, req CreateTaskRequest) (Task, error)
	GetTask(ctx context.Context, id string) (Task, error)
	ListTasks(ctx context.Context, status *TaskStatus, limit, offset int) ([]Task, error)
	ListEmployeeTasks(ctx context.Context, employeeID string, limit, offset int) ([]Task, error)
	// CompleteTask scores the task against the club's KPI config and, for
	// recurring tasks, schedules the next occurrence in the same transaction.
	CompleteTask(ctx context.Context, id string, req CompleteTaskRequest) (Task, error)
	RejectTask(ctx context.Context, id string) error
	ApproveTask(ctx context.Context, id string) error
	MonthlySummary(ctx context.Context, employeeID string, year, month int) (MonthlySummaryResponse, error)
	GetConfig(ctx context.Context) (KPIConfig, error)
	UpdateConfig(ctx context.Context, req UpdateKPIConfigRequest) (KPIConfig, error)
	// RollForwardRecurring creates the next occurrence for completed
	// recurring tasks that are missing one. Safety net for occurrences the
	// completion transaction could not create; runs on a schedule.
	RollForwardRecurring(ctx context.Context) (int, error)
}
