package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"github.com/DarshanRT1/Hotel-Booking/internal/queue"
	"github.com/DarshanRT1/Hotel-Booking/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// MenuSheetParser reads menu rows from a spreadsheet. skipped counts rows
// that could not be read at all.
type MenuSheetParser interface {
	ParseMenuItems(ctx context.Context, spreadsheetID string) (items []*domain.MenuItem, skipped int, err error)
}

type MenuImportService struct {
	taskRepo repo.ImportTaskRepository
	catalog  *CatalogService
	parser   MenuSheetParser
	broker   queue.Broker
	logger   *zap.SugaredLogger
}

// NewMenuImportService builds the import service. Without a parser or a
// broker imports are reported as unavailable.
func NewMenuImportService(
	taskRepo repo.ImportTaskRepository,
	catalog *CatalogService,
	parser MenuSheetParser,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *MenuImportService {
	return &MenuImportService{
		taskRepo: taskRepo,
		catalog:  catalog,
		parser:   parser,
		broker:   broker,
		logger:   logger,
	}
}

func (s *MenuImportService) Enabled() bool {
	return s.parser != nil && s.broker != nil
}

func (s *MenuImportService) CreateImportTask(ctx context.Context, spreadsheetID string) (primitive.ObjectID, error) {
	if !s.Enabled() {
		return primitive.NilObjectID, fmt.Errorf("menu import: %w", domain.ErrUnavailable)
	}

	spreadsheetID = strings.TrimSpace(spreadsheetID)
	if spreadsheetID == "" {
		return primitive.NilObjectID, domain.NewValidationError("spreadsheetId", "spreadsheet id is required")
	}

	task := &domain.ImportTask{
		Status:        domain.ImportQueued,
		SpreadsheetID: spreadsheetID,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create import task: %w", err)
	}

	message, err := json.Marshal(domain.MenuImportMessage{
		TaskID:        task.ID.Hex(),
		SpreadsheetID: spreadsheetID,
	})
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := s.broker.Publish(ctx, queue.QueueMenuImport, message); err != nil {
		_ = s.taskRepo.UpdateStatus(ctx, task.ID, domain.ImportFailed, err.Error())
		return primitive.NilObjectID, fmt.Errorf("failed to publish message: %w", err)
	}

	s.logger.Infow("menu import task created", "task_id", task.ID.Hex(), "spreadsheet_id", spreadsheetID)

	return task.ID, nil
}

func (s *MenuImportService) GetTask(ctx context.Context, taskID primitive.ObjectID) (*domain.ImportTask, error) {
	return s.taskRepo.GetByID(ctx, taskID)
}

// ProcessImportTask runs one import. A returned error makes the broker
// redeliver the message.
func (s *MenuImportService) ProcessImportTask(ctx context.Context, taskID primitive.ObjectID) error {
	if s.parser == nil {
		return fmt.Errorf("menu import: %w", domain.ErrUnavailable)
	}

	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	if task.Status == domain.ImportCompleted {
		s.logger.Infow("import task already completed", "task_id", taskID.Hex())
		return nil
	}

	if err := s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportProcessing, ""); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	s.logger.Infow("processing menu import task", "task_id", taskID.Hex())

	// a redelivered task may have written items before it failed
	if task.Status != domain.ImportQueued {
		discarded, err := s.catalog.DiscardImport(ctx, taskID)
		if err != nil {
			return fmt.Errorf("failed to discard previous attempt: %w", err)
		}
		if discarded > 0 {
			s.logger.Infow("discarded items from previous attempt", "task_id", taskID.Hex(), "count", discarded)
		}
	}

	items, skipped, err := s.parser.ParseMenuItems(ctx, task.SpreadsheetID)
	if err != nil {
		s.fail(ctx, taskID, err)
		return fmt.Errorf("failed to parse menu: %w", err)
	}

	imported, rejected, err := s.catalog.Import(ctx, taskID, items)
	if err != nil {
		s.fail(ctx, taskID, err)
		return fmt.Errorf("failed to save menu items: %w", err)
	}

	if err := s.taskRepo.Complete(ctx, taskID, imported, skipped+rejected); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Infow("menu import task completed",
		"task_id", taskID.Hex(),
		"imported", imported,
		"skipped", skipped+rejected,
	)

	return nil
}

func (s *MenuImportService) fail(ctx context.Context, taskID primitive.ObjectID, cause error) {
	s.logger.Errorw("menu import failed", "task_id", taskID.Hex(), "error", cause)
	_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.ImportFailed, cause.Error())
	_ = s.taskRepo.IncrementRetryCount(ctx, taskID)
}
