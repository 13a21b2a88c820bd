package entity

import "time"

// User is the aggregate root for the auth domain. Email and Password
// are valid by construction; the id is absent until the repository
// assigns one on first save. Passwords are stored as bcrypt digests.
type User struct {
	id        *UserID
	email     Email
	password  Password
	name      string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

// UserPrimitives is the flat representation exchanged with the
// persistence layer. ID is empty for unpersisted users.
type UserPrimitives struct {
	ID        string
	Email     string
	Password  string
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates an unpersisted, active user with fresh timestamps.
func NewUser(email Email, password Password, name string) *User {
	now := time.Now()
	return &User{
		email:     email,
		password:  password,
		name:      name,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}
}

// UserFromPrimitives reconstructs a persisted user verbatim. The stored
// password is a digest, so it bypasses plaintext validation.
func UserFromPrimitives(p UserPrimitives) (*User, error) {
	id, err := NewUserID(p.ID)
	if err != nil {
		return nil, err
	}
	email, err := NewEmail(p.Email)
	if err != nil {
		return nil, err
	}
	return &User{
		id:        &id,
		email:     email,
		password:  PasswordFromHash(p.Password),
		name:      p.Name,
		isActive:  p.IsActive,
		createdAt: p.CreatedAt,
		updatedAt: p.UpdatedAt,
	}, nil
}

func (u *User) ID() *UserID         { return u.id }
func (u *User) Email() Email        { return u.email }
func (u *User) Password() Password  { return u.password }
func (u *User) Name() string        { return u.name }
func (u *User) IsActive() bool      { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// UpdatePassword replaces the stored password and touches the
// updated timestamp.
func (u *User) UpdatePassword(p Password) {
	u.password = p
	u.updatedAt = time.Now()
}

func (u *User) Deactivate() {
	u.isActive = false
	u.updatedAt = time.Now()
}

func (u *User) Activate() {
	u.isActive = true
	u.updatedAt = time.Now()
}

// ToPrimitives projects the aggregate into its flat representation.
func (u *User) ToPrimitives() UserPrimitives {
	p := UserPrimitives{
		Email:     u.email.Value(),
		Password:  u.password.Value(),
		Name:      u.name,
		IsActive:  u.isActive,
		CreatedAt: u.createdAt,
		UpdatedAt: u.updatedAt,
	}
	if u.id != nil {
		p.ID = u.id.Value()
	}
	return p
}
