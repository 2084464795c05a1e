package services

import (
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-console/internal/models"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	now    func() time.Time

	mu     sync.RWMutex
	tasks  []*models.Task
	nextID int64
}

// NewTaskService returns an empty in-memory task store. IDs start at 1.
func NewTaskService(logger zerolog.Logger) TaskService {
	return newTaskService(logger, time.Now)
}

func newTaskService(logger zerolog.Logger, now func() time.Time) *taskServiceImpl {
	return &taskServiceImpl{
		logger: logger,
		now:    now,
		nextID: 1,
	}
}

func (s *taskServiceImpl) CreateTask(params CreateTaskParams) (models.Task, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		s.logger.Warn().Msg("refused to create task with empty title")
		return models.Task{}, newEmptyTitleError()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := &models.Task{
		ID:          s.nextID,
		Title:       title,
		Description: params.Description,
		CreatedAt:   s.now(),
	}
	s.tasks = append(s.tasks, task)
	s.nextID++

	s.logger.Info().
		Int64("task_id", task.ID).
		Msg("created task")
	return *task, nil
}

func (s *taskServiceImpl) GetTask(id int64) (models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, task := s.find(id)
	if task == nil {
		s.logger.Debug().
			Int64("task_id", id).
			Msg("task not found")
		return models.Task{}, false
	}
	return *task, true
}

func (s *taskServiceImpl) ListTasks(filter string) ([]models.Task, error) {
	if filter == "" {
		filter = models.FilterAll
	}

	var match func(*models.Task) bool
	switch filter {
	case models.FilterAll:
		match = func(*models.Task) bool { return true }
	case models.FilterPending:
		match = func(t *models.Task) bool { return !t.Completed }
	case models.FilterCompleted:
		match = func(t *models.Task) bool { return t.Completed }
	default:
		s.logger.Warn().
			Str("filter", filter).
			Msg("invalid task filter")
		return nil, newInvalidFilterError()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]models.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if match(task) {
			tasks = append(tasks, *task)
		}
	}

	s.logger.Debug().
		Str("filter", filter).
		Int("count", len(tasks)).
		Msg("listed tasks")
	return tasks, nil
}

func (s *taskServiceImpl) UpdateTask(params UpdateTaskParams) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, task := s.find(params.ID)
	if task == nil {
		s.logger.Error().
			Int64("task_id", params.ID).
			Msg("task not found")
		return models.Task{}, &NotFoundError{ID: params.ID}
	}

	var title string
	if params.Title != nil {
		title = strings.TrimSpace(*params.Title)
		if title == "" {
			s.logger.Warn().
				Int64("task_id", params.ID).
				Msg("refused to set empty task title")
			return models.Task{}, newEmptyTitleError()
		}
	}

	if params.Title != nil {
		task.Title = title
	}
	if params.Description != nil {
		task.Description = *params.Description
	}
	if params.Completed != nil {
		switch {
		case *params.Completed && !task.Completed:
			completedAt := s.now()
			task.CompletedAt = &completedAt
		case !*params.Completed:
			task.CompletedAt = nil
		}
		task.Completed = *params.Completed
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Bool("completed", task.Completed).
		Msg("updated task")
	return *task, nil
}

func (s *taskServiceImpl) DeleteTask(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, task := s.find(id)
	if task == nil {
		s.logger.Warn().
			Int64("task_id", id).
			Msg("task not found")
		return false
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)

	s.logger.Info().
		Int64("task_id", id).
		Msg("deleted task")
	return true
}

// find must be called with mu held.
func (s *taskServiceImpl) find(id int64) (int, *models.Task) {
	for i, task := range s.tasks {
		if task.ID == id {
			return i, task
		}
	}
	return -1, nil
}
