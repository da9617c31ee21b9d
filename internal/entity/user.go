package entity

type User struct {
	ID        int     `json:"id"`
	Username  string  `json:"username"`
	Password  string  `json:"-"` // bcrypt hash, never serialized
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Language  string  `json:"language"`
	Theme     string  `json:"theme"`
}

const (
	DefaultLanguage = "en"
	DefaultTheme    = "light"
)

// UserPatch carries the fields of a partial user update. Nil fields are left untouched.
type UserPatch struct {
	Username  *string `json:"username,omitempty"`
	Password  *string `json:"-"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Language  *string `json:"language,omitempty"`
	Theme     *string `json:"theme,omitempty"`
}

// Apply merges the patch into u.
func (p UserPatch) Apply(u *User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.FirstName != nil {
		u.FirstName = p.FirstName
	}
	if p.LastName != nil {
		u.LastName = p.LastName
	}
	if p.Email != nil {
		u.Email = p.Email
	}
	if p.Language != nil {
		u.Language = *p.Language
	}
	if p.Theme != nil {
		u.Theme = *p.Theme
	}
}
