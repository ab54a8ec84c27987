package cmd

import (
	"fmt"

	"github.com/live-labs/passvault/internal/vault"
)

// FieldPatch carries the fields the user asked to change; nil means
// keep the current value.
type FieldPatch struct {
	Website  *string
	Username *string
	Password *string
	Category *string
	Notes    *string
}

// Update overwrites the given fields of an existing entry
func Update(path, id string, patch FieldPatch) {
	s := UnlockOrExit(path)
	defer s.Lock()

	current, err := s.Get(id)
	if err != nil {
		HandleError(err)
	}

	draft := vault.Draft{
		Website:  current.Website,
		Username: current.Username,
		Password: current.Password,
		Category: current.Category,
		Notes:    current.Notes,
	}
	if patch.Website != nil {
		draft.Website = *patch.Website
	}
	if patch.Username != nil {
		draft.Username = *patch.Username
	}
	if patch.Password != nil {
		draft.Password = *patch.Password
	}
	if patch.Category != nil {
		draft.Category = *patch.Category
	}
	if patch.Notes != nil {
		draft.Notes = *patch.Notes
	}

	if err := s.Update(id, draft); err != nil {
		HandleError(err)
	}

	fmt.Printf("✓ Updated entry %s\n", id)
}
