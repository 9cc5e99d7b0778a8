package metrics

// IncrementUserRegistered increments the user registration counter
func (m *Metrics) IncrementUserRegistered() {
	if m == nil {
		return
	}
	m.safeExecute("IncrementUserRegistered", func() {
		m.UserRegisteredTotal.Inc()
	})
}

// IncrementBoardCreated increments the board creation counter
func (m *Metrics) IncrementBoardCreated() {
	if m == nil {
		return
	}
	m.safeExecute("IncrementBoardCreated", func() {
		m.BoardCreatedTotal.Inc()
	})
}

// IncrementTaskCreated increments the task creation counter
func (m *Metrics) IncrementTaskCreated() {
	if m == nil {
		return
	}
	m.safeExecute("IncrementTaskCreated", func() {
		m.TaskCreatedTotal.Inc()
	})
}

// IncrementCommentCreated increments the comment creation counter
func (m *Metrics) IncrementCommentCreated() {
	if m == nil {
		return
	}
	m.safeExecute("IncrementCommentCreated", func() {
		m.CommentCreatedTotal.Inc()
	})
}

// AddTokensExpired adds to the expired token cleanup counter
func (m *Metrics) AddTokensExpired(count int64) {
	if m == nil {
		return
	}
	m.safeExecute("AddTokensExpired", func() {
		m.TokensExpiredTotal.Add(float64(count))
	})
}

// SetUsersTotal sets the total users gauge
func (m *Metrics) SetUsersTotal(count int64) {
	if m == nil {
		return
	}
	m.safeExecute("SetUsersTotal", func() {
		m.UsersTotal.Set(float64(count))
	})
}

// SetBoardsTotal sets the total boards gauge
func (m *Metrics) SetBoardsTotal(count int64) {
	if m == nil {
		return
	}
	m.safeExecute("SetBoardsTotal", func() {
		m.BoardsTotal.Set(float64(count))
	})
}

// SetTasksTotal sets the total tasks gauge
func (m *Metrics) SetTasksTotal(count int64) {
	if m == nil {
		return
	}
	m.safeExecute("SetTasksTotal", func() {
		m.TasksTotal.Set(float64(count))
	})
}
