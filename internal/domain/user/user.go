package user

// User is the identity record. Email is unique across all users.
type User struct {
	ID    int64
	Name  string
	Email string
}
