package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/vos-crm/crm/internal/crm/domain"
	"github.com/vos-crm/crm/internal/crm/store"
	"github.com/vos-crm/crm/pkg/idx"
	"github.com/vos-crm/crm/pkg/slogx"
)

var ErrStageInUse = errors.New("stage still has customers")

// StageInput is one entry of a full stage list replacement. Order comes
// from the list position.
type StageInput struct {
	ID    string `json:"id"`
	Name  string `json:"name" validate:"required,max=64"`
	Label string `json:"label" validate:"required,max=100"`
	Color string `json:"color" validate:"required"`
}

// BoardColumn is one kanban column.
type BoardColumn struct {
	Stage     domain.Stage
	Customers []domain.Customer
}

// Board groups every customer by stage. Customers whose status names no
// stage end up in Unassigned.
type Board struct {
	Columns    []BoardColumn
	Unassigned []domain.Customer
}

type PipelineService struct {
	Store store.Store
}

func (s *PipelineService) ListStages(ctx context.Context) ([]domain.Stage, error) {
	return s.Store.Stages().ListStages(ctx)
}

// ReplaceStages swaps the whole stage list. Dropping (or renaming) a stage
// that customers still sit in fails with ErrStageInUse.
func (s *PipelineService) ReplaceStages(ctx context.Context, in []StageInput) ([]domain.Stage, error) {
	log := slogx.FromContext(ctx)

	if len(in) == 0 {
		return nil, invalid("at least one stage is required")
	}

	next := make([]domain.Stage, 0, len(in))
	seen := make(map[string]bool, len(in))
	for i, si := range in {
		si.Name = strings.ToUpper(strings.TrimSpace(si.Name))
		si.Label = strings.TrimSpace(si.Label)
		si.Color = strings.TrimSpace(si.Color)
		if err := validate.Struct(si); err != nil {
			return nil, validationError(err)
		}
		if !domain.ValidStageName(si.Name) {
			return nil, invalid("stage name %q may only contain A-Z, 0-9 and _", si.Name)
		}
		if !domain.ValidStageColor(si.Color) {
			return nil, invalid("stage color %q must look like #RRGGBB", si.Color)
		}
		if seen[si.Name] {
			return nil, invalid("duplicate stage name %q", si.Name)
		}
		seen[si.Name] = true

		id := strings.TrimSpace(si.ID)
		if id == "" {
			id = idx.New().String()
		}
		next = append(next, domain.Stage{ID: id, Name: si.Name, Label: si.Label, Color: si.Color, Order: i + 1})
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Stages().ListStages(ctx)
		if err != nil {
			return err
		}
		for _, st := range current {
			if seen[st.Name] {
				continue
			}
			n, err := tx.Customers().CountCustomersByStatus(ctx, st.Name)
			if err != nil {
				return err
			}
			if n > 0 {
				return fmt.Errorf("%w: %s has %d customer(s)", ErrStageInUse, st.Name, n)
			}
		}
		if err := tx.Stages().ReplaceStages(ctx, next); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return invalid("duplicate stage id")
			}
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrStageInUse) && !errors.Is(err, ErrInvalidInput) {
			log.Error("failed to replace stages", slog.Any("error", err))
		}
		return nil, err
	}

	log.Info("pipeline stages replaced", slog.Int("count", len(next)))
	return next, nil
}

// Board loads every customer into its stage column, most recent activity
// first.
func (s *PipelineService) Board(ctx context.Context) (Board, error) {
	stages, err := s.Store.Stages().ListStages(ctx)
	if err != nil {
		return Board{}, err
	}

	board := Board{Columns: make([]BoardColumn, len(stages)), Unassigned: []domain.Customer{}}
	col := make(map[string]int, len(stages))
	for i, st := range stages {
		board.Columns[i] = BoardColumn{Stage: st, Customers: []domain.Customer{}}
		col[st.Name] = i
	}

	err = eachCustomerPage(ctx, s.Store, boardPageSize, func(page []domain.Customer) error {
		for _, c := range page {
			if i, ok := col[c.Status]; ok {
				board.Columns[i].Customers = append(board.Columns[i].Customers, c)
			} else {
				board.Unassigned = append(board.Unassigned, c)
			}
		}
		return nil
	})
	if err != nil {
		return Board{}, err
	}

	byActivity := func(a, b domain.Customer) int {
		if c := b.LastActivity.Compare(a.LastActivity); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	}
	for i := range board.Columns {
		slices.SortFunc(board.Columns[i].Customers, byActivity)
	}
	slices.SortFunc(board.Unassigned, byActivity)
	return board, nil
}

const boardPageSize = 500

// stageExists reports whether name is a configured stage.
func stageExists(ctx context.Context, st store.Store, name string) (bool, error) {
	stages, err := st.Stages().ListStages(ctx)
	if err != nil {
		return false, err
	}
	return slices.ContainsFunc(stages, func(s domain.Stage) bool { return s.Name == name }), nil
}

// firstStage is where new customers land when no status is given.
func firstStage(ctx context.Context, st store.Store) (string, error) {
	stages, err := st.Stages().ListStages(ctx)
	if err != nil {
		return "", err
	}
	if len(stages) == 0 {
		return "", errors.New("no pipeline stages configured")
	}
	return stages[0].Name, nil
}

// eachCustomerPage walks the customers table by id with a keyset cursor,
// holding at most size rows at a time.
func eachCustomerPage(ctx context.Context, st store.Store, size int, fn func([]domain.Customer) error) error {
	after := ""
	for {
		page, err := st.Customers().ListCustomersAfter(ctx, after, size)
		if err != nil {
			return err
		}
		if len(page) == 0 {
			return nil
		}
		if err := fn(page); err != nil {
			return err
		}
		if len(page) < size {
			return nil
		}
		after = page[len(page)-1].ID
	}
}
