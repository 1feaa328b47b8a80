package models

// User represents a registered customer account.
//
// IDs are sequential integers assigned by the repository on creation.
// PasswordHash holds the bcrypt digest and must never reach a client,
// hence the dropped json tag.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string `json:"name" gorm:"type:varchar(100)"`
	Email        string `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	PasswordHash string `json:"-" gorm:"type:varchar(255)"`
}

// Profile is the client-facing view of a User: name and email only.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
