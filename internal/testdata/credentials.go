package testdata

// Credential is a username/password pair typed into the login form
type Credential struct {
	Username string
	Password string
}

// DefaultPassword is the password shared by every SauceDemo account
const DefaultPassword = "secret_sauce"

// Named credentials
var (
	ValidUser         = Credential{Username: "standard_user", Password: DefaultPassword}
	LockedUser        = Credential{Username: "locked_out_user", Password: DefaultPassword}
	InvalidUser       = Credential{Username: "invalid_user", Password: "wrong_password"}
	WrongPasswordUser = Credential{Username: ValidUser.Username, Password: "wrong_password"}
	EmptyUsername     = Credential{Username: "", Password: DefaultPassword}
	EmptyPassword     = Credential{Username: ValidUser.Username, Password: ""}
)

// StandardUser is ValidUser under its other name.
func StandardUser() Credential {
	return ValidUser
}
