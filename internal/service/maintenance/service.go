package maintenance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/clubops/clubops-backend-go/internal/domain/employee"
	"github.com/clubops/clubops-backend-go/internal/domain/maintenance"
	"github.com/clubops/clubops-backend-go/internal/pkg/database"
	"github.com/clubops/clubops-backend-go/internal/pkg/validator"
	"github.com/clubops/clubops-backend-go/internal/repository/postgresql"
)

type MaintenanceServiceImpl struct {
	db           *database.DB
	taskRepo     maintenance.TaskRepository
	configRepo   maintenance.KPIConfigRepository
	employeeRepo employee.EmployeeRepository
	calculator   *KPICalculator
}

func NewMaintenanceService(
	db *database.DB,
	taskRepo maintenance.TaskRepository,
	configRepo maintenance.KPIConfigRepository,
	employeeRepo employee.EmployeeRepository,
	calculator *KPICalculator,
) maintenance.MaintenanceService {
	return &MaintenanceServiceImpl{
		db:           db,
		taskRepo:     taskRepo,
		configRepo:   configRepo,
		employeeRepo: employeeRepo,
		calculator:   calculator,
	}
}

// Helper to get club_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (clubID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	clubID, ok := claims["club_id"].(string)
	if !ok || clubID == "" {
		return "", "", fmt.Errorf("club_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return clubID, userID, nil
}

func (s *MaintenanceServiceImpl) CreateTask(ctx context.Context, req maintenance.CreateTaskRequest) (maintenance.Task, error) {
	if err := req.Validate(); err != nil {
		return maintenance.Task{}, err
	}

	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return maintenance.Task{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, clubID); err != nil {
		return maintenance.Task{}, err
	}

	dueDate, _ := req.ParseDueDate()

	return s.taskRepo.Create(ctx, maintenance.Task{
		ClubID:         clubID,
		EmployeeID:     req.EmployeeID,
		TaskType:       maintenance.TaskType(req.TaskType),
		Title:          req.Title,
		Description:    req.Description,
		Status:         maintenance.TaskStatusPending,
		DueDate:        dueDate,
		RecurrenceDays: req.RecurrenceDays,
	})
}

func (s *MaintenanceServiceImpl) GetTask(ctx context.Context, id string) (maintenance.Task, error) {
	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return maintenance.Task{}, err
	}

	return s.taskRepo.GetByID(ctx, id, clubID)
}

func (s *MaintenanceServiceImpl) ListTasks(ctx context.Context, status *maintenance.TaskStatus, limit, offset int) ([]maintenance.Task, error) {
	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return s.taskRepo.ListByClub(ctx, clubID, status, normalizeLimit(limit), offset)
}

func (s *MaintenanceServiceImpl) ListEmployeeTasks(ctx context.Context, employeeID string, limit, offset int) ([]maintenance.Task, error) {
	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID, clubID); err != nil {
		return nil, err
	}

	return s.taskRepo.ListByEmployee(ctx, employeeID, normalizeLimit(limit), offset)
}

// CompleteTask scores the task once against the club's KPI config and stores
// the outcome. For recurring tasks the next occurrence is inserted in the
// same transaction, so completion and roll-forward cannot diverge.
func (s *MaintenanceServiceImpl) CompleteTask(ctx context.Context, id string, req maintenance.CompleteTaskRequest) (maintenance.Task, error) {
	if err := req.Validate(); err != nil {
		return maintenance.Task{}, err
	}

	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return maintenance.Task{}, err
	}

	config, err := s.configRepo.Get(ctx, clubID)
	if err != nil {
		return maintenance.Task{}, err
	}

	var completed maintenance.Task
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		task, err := s.taskRepo.GetByID(txCtx, id, clubID)
		if err != nil {
			return err
		}
		if task.Status == maintenance.TaskStatusCompleted || task.Status == maintenance.TaskStatusApproved {
			return maintenance.ErrTaskAlreadyCompleted
		}

		completedAt := time.Now()
		if req.CompletedAt != "" {
			completedAt, _ = validator.IsValidDateTime(req.CompletedAt)
		}

		result := s.calculator.ComputeTaskBonus(task.TaskType, task.DueDate, completedAt, config)

		task.Status = maintenance.TaskStatusCompleted
		task.CompletedAt = &completedAt
		task.KPIPoints = result.KPIPoints
		task.AppliedKPIMultiplier = result.AppliedMultiplier
		task.BonusEarned = result.BonusEarned

		if err := s.taskRepo.Complete(txCtx, task); err != nil {
			return err
		}

		if task.RecurrenceDays > 0 {
			if err := s.rollForward(txCtx, task); err != nil {
				return err
			}
		}

		completed = task
		return nil
	})
	if err != nil {
		return maintenance.Task{}, err
	}

	return completed, nil
}

func (s *MaintenanceServiceImpl) rollForward(ctx context.Context, task maintenance.Task) error {
	_, err := s.taskRepo.Create(ctx, maintenance.Task{
		ClubID:         task.ClubID,
		EmployeeID:     task.EmployeeID,
		TaskType:       task.TaskType,
		Title:          task.Title,
		Description:    task.Description,
		Status:         maintenance.TaskStatusPending,
		DueDate:        task.DueDate.AddDate(0, 0, task.RecurrenceDays),
		RecurrenceDays: task.RecurrenceDays,
	})
	return err
}

func (s *MaintenanceServiceImpl) RejectTask(ctx context.Context, id string) error {
	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.taskRepo.Reject(ctx, id, clubID)
}

func (s *MaintenanceServiceImpl) ApproveTask(ctx context.Context, id string) error {
	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.taskRepo.Approve(ctx, id, clubID)
}

func (s *MaintenanceServiceImpl) MonthlySummary(ctx context.Context, employeeID string, year, month int) (maintenance.MonthlySummaryResponse, error) {
	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return maintenance.MonthlySummaryResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID, clubID); err != nil {
		return maintenance.MonthlySummaryResponse{}, err
	}

	config, err := s.configRepo.Get(ctx, clubID)
	if err != nil {
		return maintenance.MonthlySummaryResponse{}, err
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	stats, err := s.taskRepo.MonthlyStats(ctx, employeeID, from, to)
	if err != nil {
		return maintenance.MonthlySummaryResponse{}, err
	}

	rating := s.calculator.ComputeMonthlyRating(stats, config)

	return maintenance.MonthlySummaryResponse{
		EmployeeID:     employeeID,
		Year:           year,
		Month:          month,
		TotalTasks:     stats.TotalTasks,
		CompletedTasks: stats.CompletedTasks,
		RawBonusSum:    stats.RawBonusSum,
		MonthlyRating:  rating,
	}, nil
}

func (s *MaintenanceServiceImpl) GetConfig(ctx context.Context) (maintenance.KPIConfig, error) {
	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return maintenance.KPIConfig{}, err
	}

	return s.configRepo.Get(ctx, clubID)
}

func (s *MaintenanceServiceImpl) UpdateConfig(ctx context.Context, req maintenance.UpdateKPIConfigRequest) (maintenance.KPIConfig, error) {
	if err := req.Validate(); err != nil {
		return maintenance.KPIConfig{}, err
	}

	clubID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return maintenance.KPIConfig{}, err
	}

	config, err := s.configRepo.Get(ctx, clubID)
	if err != nil {
		return maintenance.KPIConfig{}, err
	}

	applyConfigPatch(&config, req)

	return s.configRepo.Upsert(ctx, config)
}

func applyConfigPatch(config *maintenance.KPIConfig, req maintenance.UpdateKPIConfigRequest) {
	if req.Enabled != nil {
		config.Enabled = *req.Enabled
	}
	if req.PointsPerCleaning != nil {
		config.PointsPerCleaning = *req.PointsPerCleaning
	}
	if req.PointsPerIssueResolved != nil {
		config.PointsPerIssueResolved = *req.PointsPerIssueResolved
	}
	if req.BonusPerPoint != nil {
		config.BonusPerPoint = *req.BonusPerPoint
	}
	if req.OverdueToleranceDays != nil {
		config.OverdueToleranceDays = *req.OverdueToleranceDays
	}
	if req.MinEfficiencyPercent != nil {
		config.MinEfficiencyPercent = *req.MinEfficiencyPercent
	}
	if req.TargetEfficiencyPercent != nil {
		config.TargetEfficiencyPercent = *req.TargetEfficiencyPercent
	}
	if req.OnTimeMultiplier != nil {
		config.OnTimeMultiplier = *req.OnTimeMultiplier
	}
	if req.LatePenaltyMultiplier != nil {
		config.LatePenaltyMultiplier = *req.LatePenaltyMultiplier
	}
}

// RollForwardRecurring backfills missing next occurrences of recurring
// tasks. CompleteTask already rolls forward inline; this catches tasks
// completed before recurrence was configured or whose successor was removed.
func (s *MaintenanceServiceImpl) RollForwardRecurring(ctx context.Context) (int, error) {
	tasks, err := s.taskRepo.ListCompletedRecurringWithoutSuccessor(ctx)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, task := range tasks {
		if err := s.rollForward(ctx, task); err != nil {
			return created, fmt.Errorf("roll forward task %s: %w", task.ID, err)
		}
		created++
	}

	return created, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 50
	}
	return limit
}
