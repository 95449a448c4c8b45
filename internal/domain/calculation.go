package domain

// Calculation Model. A row is either a root (starting number set, operation
// and operand null) or a derived node (parent, operation and operand set).
// Rows are append-only and never updated after creation.
type Calculation struct {
	ID             uint       `gorm:"primaryKey" json:"id"`                   // Primary key
	UserID         uint       `gorm:"not null" json:"user_id"`                // Foreign key to the creating User
	ParentID       *uint      `json:"parent_id"`                              // Foreign key to the parent Calculation, nil for roots
	StartingNumber *float64   `json:"starting_number"`                        // Seed value, set on roots only
	Operation      *Operation `gorm:"type:varchar(16)" json:"operation"`      // Arithmetic operation, nil on roots
	Operand        *float64   `json:"operand"`                                // Right-hand operand, nil on roots
	Result         float64    `gorm:"not null" json:"result"`                 // Value this node represents, fixed at creation
	CreatedAt      int64      `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}

// CalculationWithUser is a read-model row: a Calculation joined with the
// username of its creator. Not persisted.
type CalculationWithUser struct {
	Calculation
	Username string `json:"username"` // Creator's username
}

// CalculationNode is the tree view of a Calculation, built transiently on
// each read. Children are ordered by creation time.
type CalculationNode struct {
	CalculationWithUser
	Children []*CalculationNode `json:"children"` // Direct children in creation order
}
