package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	Base
	Username     string   `db:"username"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Phone        *string  `db:"phone"`
	Role         UserRole `db:"role"`
	// Credits is the internal ledger balance; only the booking ledger
	// and the top-up endpoint may mutate it. Never negative.
	Credits    float64 `db:"credits"`
	IsVerified bool    `db:"is_verified"`
	IsActive   bool    `db:"is_active"`
}
