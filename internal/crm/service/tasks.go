package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/vos-crm/crm/internal/crm/domain"
	"github.com/vos-crm/crm/internal/crm/store"
	"github.com/vos-crm/crm/pkg/idx"
	"github.com/vos-crm/crm/pkg/slogx"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskInput creates a task. Deadline accepts RFC 3339 or a plain date.
type TaskInput struct {
	Title      string `json:"title" validate:"required,max=200"`
	Notes      string `json:"notes" validate:"max=5000"`
	Status     string `json:"status"`
	Deadline   string `json:"deadline"`
	CustomerID string `json:"customerId"`
	AssignedTo string `json:"assignedTo"`
}

// TaskPatch changes the non-nil fields. An empty Deadline, CustomerID or
// AssignedTo clears it.
type TaskPatch struct {
	Title      *string `json:"title"`
	Notes      *string `json:"notes"`
	Status     *string `json:"status"`
	Deadline   *string `json:"deadline"`
	CustomerID *string `json:"customerId"`
	AssignedTo *string `json:"assignedTo"`
}

// TaskQuery filters the task list; empty fields do not filter.
type TaskQuery struct {
	CustomerID string
	AssignedTo string
	Status     string
}

type TaskService struct {
	Store store.Store
}

func parseDeadline(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04", time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC().Truncate(time.Millisecond)
			return &t, nil
		}
	}
	return nil, invalid("deadline must be an RFC 3339 timestamp or a YYYY-MM-DD date")
}

func parseTaskStatus(s string) (domain.TaskStatus, error) {
	st, ok := domain.ParseTaskStatus(s)
	if !ok {
		return "", invalid("status must be one of OPEN, IN_PROGRESS, DONE, CANCELED")
	}
	return st, nil
}

// checkRefs makes sure the linked customer and assignee exist.
func checkTaskRefs(ctx context.Context, st store.Store, customerID, assignedTo string) error {
	if customerID != "" {
		if _, err := st.Customers().GetCustomerByID(ctx, customerID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return invalid("customerId %q does not exist", customerID)
			}
			return err
		}
	}
	if assignedTo != "" {
		u, err := st.Users().GetUserByID(ctx, assignedTo)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return invalid("assignedTo %q does not exist", assignedTo)
			}
			return err
		}
		if !u.Role.IsStaff() {
			return invalid("tasks can only be assigned to staff")
		}
	}
	return nil
}

// setStatus moves a task to st, stamping or clearing CompletedAt.
func setStatus(t *domain.Task, st domain.TaskStatus, at time.Time) {
	if st == domain.TaskDone && t.Status != domain.TaskDone {
		t.CompletedAt = &at
	}
	if st != domain.TaskDone {
		t.CompletedAt = nil
	}
	t.Status = st
}

func (s *TaskService) List(ctx context.Context, q TaskQuery) ([]domain.Task, error) {
	f := store.TaskFilter{
		CustomerID: strings.TrimSpace(q.CustomerID),
		AssignedTo: strings.TrimSpace(q.AssignedTo),
	}
	if q.Status != "" {
		st, err := parseTaskStatus(q.Status)
		if err != nil {
			return nil, err
		}
		f.Status = st
	}
	tasks, err := s.Store.Tasks().ListTasks(ctx, f)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

func (s *TaskService) Get(ctx context.Context, id string) (domain.Task, error) {
	t, err := s.Store.Tasks().GetTaskByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Task{}, ErrTaskNotFound
	}
	return t, err
}

func (s *TaskService) Create(ctx context.Context, in TaskInput, createdBy string) (domain.Task, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.AssignedTo = strings.TrimSpace(in.AssignedTo)
	if err := validate.Struct(in); err != nil {
		return domain.Task{}, validationError(err)
	}

	status := domain.TaskOpen
	if in.Status != "" {
		st, err := parseTaskStatus(in.Status)
		if err != nil {
			return domain.Task{}, err
		}
		status = st
	}
	deadline, err := parseDeadline(in.Deadline)
	if err != nil {
		return domain.Task{}, err
	}

	ts := now()
	t := domain.Task{
		ID:         idx.NewAt(ts).String(),
		Title:      in.Title,
		Notes:      in.Notes,
		Status:     domain.TaskOpen,
		Deadline:   deadline,
		CustomerID: in.CustomerID,
		AssignedTo: in.AssignedTo,
		CreatedBy:  createdBy,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}
	setStatus(&t, status, ts)

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := checkTaskRefs(ctx, tx, t.CustomerID, t.AssignedTo); err != nil {
			return err
		}
		return tx.Tasks().CreateTask(ctx, t)
	})
	if err != nil {
		return domain.Task{}, err
	}

	slogx.FromContext(ctx).Info("task created", slog.String("task_id", t.ID))
	return t, nil
}

func (s *TaskService) Update(ctx context.Context, id string, p TaskPatch) (domain.Task, error) {
	var out domain.Task
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		t, err := tx.Tasks().GetTaskByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrTaskNotFound
			}
			return err
		}

		ts := now()
		if p.Title != nil {
			t.Title = strings.TrimSpace(*p.Title)
		}
		if p.Notes != nil {
			t.Notes = *p.Notes
		}
		if p.Deadline != nil {
			if t.Deadline, err = parseDeadline(*p.Deadline); err != nil {
				return err
			}
		}
		if p.CustomerID != nil {
			t.CustomerID = strings.TrimSpace(*p.CustomerID)
		}
		if p.AssignedTo != nil {
			t.AssignedTo = strings.TrimSpace(*p.AssignedTo)
		}
		if p.Status != nil {
			st, err := parseTaskStatus(*p.Status)
			if err != nil {
				return err
			}
			setStatus(&t, st, ts)
		}

		in := TaskInput{Title: t.Title, Notes: t.Notes}
		if err := validate.Struct(in); err != nil {
			return validationError(err)
		}
		if err := checkTaskRefs(ctx, tx, t.CustomerID, t.AssignedTo); err != nil {
			return err
		}

		t.UpdatedAt = ts
		if err := tx.Tasks().UpdateTask(ctx, t); err != nil {
			return err
		}
		out = t
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}

	slogx.FromContext(ctx).Info("task updated", slog.String("task_id", id), slog.String("status", string(out.Status)))
	return out, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := s.Store.Tasks().DeleteTask(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTaskNotFound
		}
		return err
	}
	slogx.FromContext(ctx).Info("task deleted", slog.String("task_id", id))
	return nil
}
