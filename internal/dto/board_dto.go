package dto

import "github.com/google/uuid"

// CreateBoardRequest represents the request to create a new board.
// members lists user IDs to add to the member set; the creator becomes
// the owner and is never duplicated into the member set.
type CreateBoardRequest struct {
	Title   string      `json:"title" binding:"required,max=100"`
	Members []uuid.UUID `json:"members"`
}

// UpdateBoardRequest represents a partial board update. Only provided
// fields change; members, when present, replaces the whole member set.
type UpdateBoardRequest struct {
	Title   *string      `json:"title" binding:"omitempty,max=100"`
	Members *[]uuid.UUID `json:"members"`
}

// BoardResponse is the list/create representation with task counters
type BoardResponse struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	OwnerID            uuid.UUID `json:"owner_id"`
	MemberCount        int       `json:"member_count"`
	TicketCount        int       `json:"ticket_count"`
	TasksToDoCount     int       `json:"tasks_to_do_count"`
	TasksHighPrioCount int       `json:"tasks_high_prio_count"`
}

// BoardDetailResponse embeds the member list (owner first) and tasks
type BoardDetailResponse struct {
	ID      uuid.UUID             `json:"id"`
	Title   string                `json:"title"`
	OwnerID uuid.UUID             `json:"owner_id"`
	Members []UserMinimalResponse `json:"members"`
	Tasks   []TaskResponse        `json:"tasks"`
}

// BoardUpdateResponse is returned after a partial update
type BoardUpdateResponse struct {
	ID          uuid.UUID             `json:"id"`
	Title       string                `json:"title"`
	OwnerData   UserMinimalResponse   `json:"owner_data"`
	MembersData []UserMinimalResponse `json:"members_data"`
}
