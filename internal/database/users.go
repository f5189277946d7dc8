package database

import "context"

const userColumns = "user_id, email, password_hash, name, created_at"

func scanUser(row interface{ Scan(dest ...any) error }) (User, error) {
	var u User
	err := row.Scan(&u.UserID, &u.Email, &u.PasswordHash, &u.Name, &u.CreatedAt)
	return u, err
}

// CreateUser inserts a new account and returns the stored row.
func (q *Queries) CreateUser(ctx context.Context, email, passwordHash, name string) (User, error) {
	row := q.db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, name)
		 VALUES ($1, $2, $3)
		 RETURNING `+userColumns,
		email, passwordHash, name)
	return scanUser(row)
}

// GetUserByEmail looks up an account by its unique email.
func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := q.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

// GetUserByID looks up an account by primary key.
func (q *Queries) GetUserByID(ctx context.Context, userID string) (User, error) {
	row := q.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID)
	return scanUser(row)
}

// EmailExists reports whether any account uses the given email.
func (q *Queries) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

// UpdateUserName changes the account display name.
func (q *Queries) UpdateUserName(ctx context.Context, userID, name string) error {
	_, err := q.db.Exec(ctx,
		`UPDATE users SET name = $2 WHERE user_id = $1`, userID, name)
	return err
}

// UpdateUserPassword replaces the stored credential hash.
func (q *Queries) UpdateUserPassword(ctx context.Context, userID, passwordHash string) error {
	_, err := q.db.Exec(ctx,
		`UPDATE users SET password_hash = $2 WHERE user_id = $1`, userID, passwordHash)
	return err
}

// UpdateUserEmail changes the account email.
func (q *Queries) UpdateUserEmail(ctx context.Context, userID, email string) error {
	_, err := q.db.Exec(ctx,
		`UPDATE users SET email = $2 WHERE user_id = $1`, userID, email)
	return err
}
