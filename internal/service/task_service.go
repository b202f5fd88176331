package service

import (
	"context"
	"net/url"
	"strconv"

	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/api"
	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/domain"
)

// TaskService is the typed façade over the API client. Each operation maps
// one-to-one onto a REST call; the remote API owns all task state.
type TaskService struct {
	client *api.Client
}

func NewTaskService(client *api.Client) *TaskService {
	return &TaskService{client: client}
}

func (s *TaskService) Search(ctx context.Context, params domain.TaskSearchParams) (domain.PageResponse[domain.Task], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("size", strconv.Itoa(params.Size))
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if params.Status != "" {
		query.Set("status", params.Status)
	}
	if params.DueDateFrom != "" {
		query.Set("dueDateFrom", params.DueDateFrom)
	}
	if params.DueDateTo != "" {
		query.Set("dueDateTo", params.DueDateTo)
	}

	var page domain.PageResponse[domain.Task]
	err := s.client.Get(ctx, "tasks", query, &page)
	return page, err
}

func (s *TaskService) GetByID(ctx context.Context, id string) (domain.Task, error) {
	var task domain.Task
	err := s.client.Get(ctx, "tasks/"+id, nil, &task)
	return task, err
}

func (s *TaskService) Create(ctx context.Context, req domain.TaskRequest) (domain.Task, error) {
	var task domain.Task
	err := s.client.Post(ctx, "tasks", req, &task)
	return task, err
}

func (s *TaskService) Update(ctx context.Context, id string, req domain.TaskRequest) (domain.Task, error) {
	var task domain.Task
	err := s.client.Put(ctx, "tasks/"+id, req, &task)
	return task, err
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "tasks/"+id)
}
