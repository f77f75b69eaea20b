package crmsdk

import (
	"context"
	"net/http"
)

// Administrator operations. The server answers 403 for other roles.

// CreateInvite mails a registration link.
func (s *Session) CreateInvite(ctx context.Context, req InviteRequest) (*InviteResponse, error) {
	var resp InviteResponse
	if err := s.doJSON(ctx, http.MethodPost, "/invites", req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *Session) ListUsers(ctx context.Context) ([]User, error) {
	var list UserList
	if err := s.doJSON(ctx, http.MethodGet, "/users", nil, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (s *Session) ChangeRole(ctx context.Context, userID, role string) (*User, error) {
	var u User
	if err := s.doJSON(ctx, http.MethodPatch, "/users/"+userID+"/role", ChangeRoleRequest{Role: role}, &u, http.StatusOK); err != nil {
		return nil, err
	}
	return &u, nil
}

// ReplaceStages swaps the full pipeline stage list; order is list order.
func (s *Session) ReplaceStages(ctx context.Context, stages []StageInput) ([]Stage, error) {
	var list StageList
	if err := s.doJSON(ctx, http.MethodPut, "/pipeline/stages", stages, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Items, nil
}

// DeleteCustomer removes a customer with its documents and notes. Tasks
// stay but lose the customer link.
func (s *Session) DeleteCustomer(ctx context.Context, id string) error {
	return s.doJSON(ctx, http.MethodDelete, "/customers/"+id, nil, nil, http.StatusOK)
}
