package domain

// User Model
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`                   // Primary key
	Username  string `gorm:"unique;not null" json:"username"`        // Unique username, case-sensitive
	Password  string `gorm:"not null" json:"-"`                      // Hashed password, never serialized
	CreatedAt int64  `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
