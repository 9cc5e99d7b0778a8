package domain

import "github.com/google/uuid"

// Board represents a task board owned by a single user, with an explicit
// member set. The owner is implicitly authorized for every board operation
// regardless of the member set.
type Board struct {
	BaseModel
	Title   string        `gorm:"type:varchar(100);not null" json:"title"`
	OwnerID uuid.UUID     `gorm:"type:uuid;not null;index:idx_boards_owner_id" json:"owner_id"`
	Owner   User          `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Members []BoardMember `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"members,omitempty"`
	Tasks   []Task        `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
}

// TableName specifies the table name for Board
func (Board) TableName() string {
	return "boards"
}

// BoardMember links a user to a board's member set
type BoardMember struct {
	BaseModel
	BoardID uuid.UUID `gorm:"type:uuid;not null;index:idx_board_members_board_id;uniqueIndex:uq_board_members_board_user" json:"board_id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index:idx_board_members_user_id;uniqueIndex:uq_board_members_board_user" json:"user_id"`
	User    User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for BoardMember
func (BoardMember) TableName() string {
	return "board_members"
}
