package services

import "main/model"

// Guard is the authorization decision for note access. It is a pure
// predicate over (caller, note); callers fetch the note first and must map
// a denial to their own error handling.
type Guard struct{}

// CanRead is true for the owner and for anyone on the share list.
func (Guard) CanRead(callerID string, note *model.Note) bool {
	if note == nil {
		return false
	}
	return note.Owner == callerID || note.IsSharedWith(callerID)
}

// CanWrite is true for the owner only. Write covers update, delete, and
// mutating the share list.
func (Guard) CanWrite(callerID string, note *model.Note) bool {
	if note == nil {
		return false
	}
	return note.Owner == callerID
}
