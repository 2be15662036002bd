package database

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fire flag value written when an admin lets an employee go. Fired users are
// never hard-deleted.
const FireFlagValue = "isFired"

// Status flag value written when HR verifies an employee.
const StatusVerified = "verified"

// User represents a user record in the users collection. The email is the
// unique lookup key; role is one of admin, HR, Employee, or unset for a
// fresh signup. Role is authoritative only as read at authorization time.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	PhotoURL    string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role        string             `bson:"role,omitempty" json:"role,omitempty"`
	Designation string             `bson:"designation,omitempty" json:"designation,omitempty"`
	BankAccount string             `bson:"bank_account_no,omitempty" json:"bank_account_no,omitempty"`
	Salary      int64              `bson:"salary,omitempty" json:"salary,omitempty"`
	Fire        string             `bson:"fire,omitempty" json:"fire,omitempty"`
	Status      string             `bson:"status,omitempty" json:"status,omitempty"`
	Timestamp   int64              `bson:"timestamp,omitempty" json:"timestamp,omitempty"`
}

// IsFired reports whether an admin has let this user go.
func (u *User) IsFired() bool {
	return u.Fire == FireFlagValue
}

// IsVerified reports whether HR has verified this user.
func (u *User) IsVerified() bool {
	return u.Status == StatusVerified
}

// Service represents a service listing shown on the public site.
type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Price       int64              `bson:"price,omitempty" json:"price,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
}

// WorkEmployee identifies the employee who logged a work entry. Stored as an
// embedded document so entries survive profile changes.
type WorkEmployee struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

// WorkEntry represents one logged unit of employee work.
type WorkEntry struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Task     string             `bson:"task" json:"task"`
	Hours    float64            `bson:"hours" json:"hours"`
	Date     time.Time          `bson:"date" json:"date"`
	Month    string             `bson:"month,omitempty" json:"month,omitempty"`
	Employee WorkEmployee       `bson:"employee" json:"employee"`
}

// ContactMessage represents a stored contact-form submission.
type ContactMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Message   string             `bson:"message" json:"message"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
