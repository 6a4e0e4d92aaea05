package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"github.com/DarshanRT1/Hotel-Booking/internal/mocks"
	"github.com/DarshanRT1/Hotel-Booking/internal/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type importFixture struct {
	tasks  *mocks.ImportTaskRepository
	menu   *mocks.MenuItemRepository
	parser *mocks.MenuSheetParser
	broker *mocks.Broker
	svc    *MenuImportService
}

func newImportFixture(t *testing.T) *importFixture {
	f := &importFixture{
		tasks:  mocks.NewImportTaskRepository(t),
		menu:   mocks.NewMenuItemRepository(t),
		parser: mocks.NewMenuSheetParser(t),
		broker: mocks.NewBroker(t),
	}
	logger := zap.NewNop().Sugar()
	catalog := NewCatalogService(f.menu, nil, logger)
	f.svc = NewMenuImportService(f.tasks, catalog, f.parser, f.broker, logger)
	return f
}

func TestMenuImportService_CreateImportTask(t *testing.T) {
	ctx := context.Background()

	t.Run("queues task", func(t *testing.T) {
		f := newImportFixture(t)
		f.tasks.On("Create", ctx, mock.MatchedBy(func(task *domain.ImportTask) bool {
			return task.Status == domain.ImportQueued && task.SpreadsheetID == "sheet-1"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.ImportTask).ID = primitive.NewObjectID()
		}).Return(nil).Once()
		f.broker.On("Publish", ctx, queue.QueueMenuImport, mock.Anything).Return(nil).Once()

		id, err := f.svc.CreateImportTask(ctx, " sheet-1 ")
		require.NoError(t, err)
		assert.False(t, id.IsZero())
	})

	t.Run("publish failure marks task failed", func(t *testing.T) {
		f := newImportFixture(t)
		f.tasks.On("Create", ctx, mock.Anything).Return(nil).Once()
		f.broker.On("Publish", ctx, queue.QueueMenuImport, mock.Anything).Return(errors.New("broker down")).Once()
		f.tasks.On("UpdateStatus", ctx, mock.Anything, domain.ImportFailed, "broker down").Return(nil).Once()

		_, err := f.svc.CreateImportTask(ctx, "sheet-1")
		assert.Error(t, err)
	})

	t.Run("missing spreadsheet", func(t *testing.T) {
		f := newImportFixture(t)

		_, err := f.svc.CreateImportTask(ctx, "")
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("unavailable without parser", func(t *testing.T) {
		svc := NewMenuImportService(mocks.NewImportTaskRepository(t), nil, nil, mocks.NewBroker(t), zap.NewNop().Sugar())
		assert.False(t, svc.Enabled())

		_, err := svc.CreateImportTask(ctx, "sheet-1")
		assert.ErrorIs(t, err, domain.ErrUnavailable)
	})
}

func TestMenuImportService_ProcessImportTask(t *testing.T) {
	ctx := context.Background()
	taskID := primitive.NewObjectID()

	t.Run("imports valid rows", func(t *testing.T) {
		f := newImportFixture(t)
		f.tasks.On("GetByID", ctx, taskID).Return(&domain.ImportTask{ID: taskID, Status: domain.ImportQueued, SpreadsheetID: "sheet-1"}, nil).Once()
		f.tasks.On("UpdateStatus", ctx, taskID, domain.ImportProcessing, "").Return(nil).Once()
		f.parser.On("ParseMenuItems", ctx, "sheet-1").Return([]*domain.MenuItem{
			{Name: "Samosa", Description: "Crispy", Price: 1.5, Category: domain.CategoryAppetizer},
			{Name: "Broth", Description: "Hot", Price: 3, Category: "Soup"},
		}, 1, nil).Once()
		f.menu.On("CreateMany", ctx, mock.MatchedBy(func(items []*domain.MenuItem) bool {
			return len(items) == 1
		})).Return(nil).Once()
		f.tasks.On("Complete", ctx, taskID, 1, 2).Return(nil).Once()

		require.NoError(t, f.svc.ProcessImportTask(ctx, taskID))
	})

	t.Run("parser failure marks task failed", func(t *testing.T) {
		f := newImportFixture(t)
		f.tasks.On("GetByID", ctx, taskID).Return(&domain.ImportTask{ID: taskID, Status: domain.ImportQueued, SpreadsheetID: "sheet-1"}, nil).Once()
		f.tasks.On("UpdateStatus", ctx, taskID, domain.ImportProcessing, "").Return(nil).Once()
		f.parser.On("ParseMenuItems", ctx, "sheet-1").Return(nil, 0, errors.New("permission denied")).Once()
		f.tasks.On("UpdateStatus", ctx, taskID, domain.ImportFailed, "permission denied").Return(nil).Once()
		f.tasks.On("IncrementRetryCount", ctx, taskID).Return(nil).Once()

		assert.Error(t, f.svc.ProcessImportTask(ctx, taskID))
	})

	t.Run("redelivery after a failed completion does not duplicate items", func(t *testing.T) {
		f := newImportFixture(t)
		var stored []*domain.MenuItem
		rows := func() []*domain.MenuItem {
			return []*domain.MenuItem{
				{Name: "Samosa", Description: "Crispy", Price: 1.5, Category: domain.CategoryAppetizer},
				{Name: "Lassi", Description: "Sweet", Price: 2, Category: domain.CategoryBeverage},
			}
		}

		f.parser.On("ParseMenuItems", ctx, "sheet-1").Return(rows(), 0, nil).Once()
		f.parser.On("ParseMenuItems", ctx, "sheet-1").Return(rows(), 0, nil).Once()
		f.menu.On("CreateMany", ctx, mock.Anything).Run(func(args mock.Arguments) {
			stored = append(stored, args.Get(1).([]*domain.MenuItem)...)
		}).Return(nil).Twice()
		f.menu.On("DeleteByImportTask", ctx, taskID).Run(func(args mock.Arguments) {
			kept := stored[:0]
			for _, item := range stored {
				if item.ImportTaskID == nil || *item.ImportTaskID != taskID {
					kept = append(kept, item)
				}
			}
			stored = kept
		}).Return(int64(2), nil).Once()
		f.tasks.On("UpdateStatus", ctx, taskID, domain.ImportProcessing, "").Return(nil).Twice()

		// first delivery: items land but the task update fails
		f.tasks.On("GetByID", ctx, taskID).Return(&domain.ImportTask{ID: taskID, Status: domain.ImportQueued, SpreadsheetID: "sheet-1"}, nil).Once()
		f.tasks.On("Complete", ctx, taskID, 2, 0).Return(errors.New("write concern timeout")).Once()

		require.Error(t, f.svc.ProcessImportTask(ctx, taskID))
		require.Len(t, stored, 2)

		// redelivery sees the task still processing
		f.tasks.On("GetByID", ctx, taskID).Return(&domain.ImportTask{ID: taskID, Status: domain.ImportProcessing, SpreadsheetID: "sheet-1"}, nil).Once()
		f.tasks.On("Complete", ctx, taskID, 2, 0).Return(nil).Once()

		require.NoError(t, f.svc.ProcessImportTask(ctx, taskID))
		assert.Len(t, stored, 2)
		assert.Equal(t, "Samosa", stored[0].Name)
		assert.Equal(t, "Lassi", stored[1].Name)
	})

	t.Run("completed task is not rerun", func(t *testing.T) {
		f := newImportFixture(t)
		f.tasks.On("GetByID", ctx, taskID).Return(&domain.ImportTask{ID: taskID, Status: domain.ImportCompleted}, nil).Once()

		require.NoError(t, f.svc.ProcessImportTask(ctx, taskID))
	})
}
