package board

// Session is one task-edit flow: opened from an event activation or the add
// button, closed by exactly one of Save, Cancel, or Delete. Only one session
// may be open at a time; a second open fails until the first closes.
type Session struct {
	board   *Board
	taskID  string
	pending bool
	closed  bool
}

// OpenEdit starts an edit session for an existing task. Activating an
// unlinked or dangling event resolves no task and fails with
// ErrTaskNotFound; callers surface that as "nothing to edit".
func (b *Board) OpenEdit(taskID string) (*Session, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.session != nil {
		return nil, ErrSessionOpen
	}
	if b.findTaskLocked(taskID) == nil {
		return nil, ErrTaskNotFound
	}
	s := &Session{board: b, taskID: taskID}
	b.session = s
	return s, nil
}

// OpenNew creates a pending placeholder task and starts a session editing
// it. The placeholder is discarded if the session ends without a title.
func (b *Board) OpenNew() (*Session, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.session != nil {
		return nil, ErrSessionOpen
	}
	t := b.createTaskLocked("")
	s := &Session{board: b, taskID: t.ID, pending: true}
	b.session = s
	return s, nil
}

// TaskID identifies the task under edit.
func (s *Session) TaskID() string { return s.taskID }

// Pending reports whether this session edits a placeholder awaiting its
// first title.
func (s *Session) Pending() bool { return s.pending }

// Draft returns the task's current field values for the edit form.
func (s *Session) Draft() Draft {
	b := s.board
	b.mu.Lock()
	defer b.mu.Unlock()

	if t := b.findTaskLocked(s.taskID); t != nil {
		return Draft{Title: t.Title, Description: t.Description, EstimateHours: t.EstimateHours}
	}
	return Draft{}
}

// Save commits the draft and closes the session. An empty title discards a
// pending placeholder and is a plain no-op for an established task; either
// way the session ends.
func (s *Session) Save(d Draft) error {
	if s.closed {
		return ErrSessionClosed
	}
	err := s.board.UpdateTask(s.taskID, d)
	s.close()
	return err
}

// Cancel closes the session without committing, discarding a pending
// placeholder along with any edits.
func (s *Session) Cancel() {
	if s.closed {
		return
	}
	b := s.board
	b.mu.Lock()
	if s.pending && b.findTaskLocked(s.taskID) != nil {
		b.removeTaskLocked(s.taskID)
		b.commit()
	}
	b.mu.Unlock()
	s.close()
}

// Delete removes the task under edit, cascading to its events, and closes
// the session.
func (s *Session) Delete() error {
	if s.closed {
		return ErrSessionClosed
	}
	err := s.board.DeleteTask(s.taskID)
	s.close()
	return err
}

func (s *Session) close() {
	b := s.board
	b.mu.Lock()
	if b.session == s {
		b.session = nil
	}
	b.mu.Unlock()
	s.closed = true
}
