// Package domain defines the persistence models for batch chat messages,
// merge-group memberships, and the identity records used for display-name
// enrichment. These types are mapped with GORM and form the core data layer
// of the class chat service.
package domain

import "time"

// ChatMessage is a single message posted into a batch conversation.
//
// Scope semantics:
//   - MergeGroupID is computed once at insertion time from the batch's
//     membership at that instant (snapshot scoping). It never changes even if
//     the batch later joins or leaves a merge group.
//   - A message with a non-nil RecipientID is an individual message and never
//     carries a MergeGroupID: individual threads stay inside their batch.
//   - A message with a nil RecipientID is batch-wide, visible to every viewer
//     of the batch (or, when merged, of every batch in the group).
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Text: message body; the only field mutable after creation.
//   - BatchID: owning class-section identifier; indexed for retrieval.
//   - MergeGroupID: merge-group snapshot taken at creation (nullable).
//   - Sender: role tag of the author; defaults to "teacher".
//   - UserID: identifier of the sending user (nullable).
//   - RecipientID: target student for individual messages (nullable).
//   - CreatedAt: assigned at insert, immutable, the sole sort key.
//   - UpdatedAt: bumped by GORM on text edits.
//
// Deletion is permanent; there is no soft-delete column.
type ChatMessage struct {
	ID           string    `json:"id"             gorm:"type:char(36);primaryKey"`
	Text         string    `json:"text"           gorm:"type:text;not null"`
	BatchID      string    `json:"batch_id"       gorm:"type:varchar(64);not null;index:idx_batch_msgs,priority:1"`
	MergeGroupID *string   `json:"merge_group_id" gorm:"type:varchar(64);index"`
	Sender       string    `json:"sender"         gorm:"type:varchar(32);not null;default:'teacher'"`
	UserID       *string   `json:"user_id"        gorm:"type:varchar(64)"`
	RecipientID  *string   `json:"recipient_id"   gorm:"type:varchar(64);index:idx_batch_msgs,priority:2"`
	CreatedAt    time.Time `json:"created_at"     gorm:"index:idx_batch_msgs,priority:3"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the database table name for ChatMessage.
func (ChatMessage) TableName() string { return "chats" }

// BatchMergeMember relates a batch to the merge group it currently belongs
// to. Rows are owned and mutated by an external administrative process; this
// service only reads them. A batch is a member of at most one merge group at
// any instant, enforced by the unique index on BatchID.
type BatchMergeMember struct {
	ID           uint      `json:"id"             gorm:"primaryKey;autoIncrement"`
	BatchID      string    `json:"batch_id"       gorm:"type:varchar(64);not null;uniqueIndex:ux_merge_batch"`
	MergeGroupID string    `json:"merge_group_id" gorm:"type:varchar(64);not null;index"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the database table name for BatchMergeMember.
func (BatchMergeMember) TableName() string { return "batch_merge_members" }

// User is a sender identity record. Only the name fields are read by this
// service, to derive sender display names on the read path.
type User struct {
	ID       string `json:"id"        gorm:"type:varchar(64);primaryKey"`
	Name     string `json:"name"      gorm:"type:varchar(255)"`
	FullName string `json:"full_name" gorm:"type:varchar(255)"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Student is a recipient identity record for individual messages.
type Student struct {
	ID   string `json:"id"   gorm:"type:varchar(64);primaryKey"`
	Name string `json:"name" gorm:"type:varchar(255)"`
}

// TableName returns the database table name for Student.
func (Student) TableName() string { return "students" }
