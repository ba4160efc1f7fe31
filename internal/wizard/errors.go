package wizard

import (
	"errors"
	"fmt"
)

// ValidationError local, recoverable: the user corrects input and
// re-triggers the action. Reason is user-facing.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ErrNoIdentity no active session at submit time. The submission cannot
// proceed; nothing is retried automatically.
var ErrNoIdentity = errors.New("nenhum usuário autenticado para registrar a evolução")

// ErrBusy a submission is in flight; further triggers are refused until
// it settles.
var ErrBusy = errors.New("envio em andamento")

// PersistenceError the record-store write failed. Wizard state is
// preserved so the user can retry without re-entering data.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("falha ao salvar a evolução: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
