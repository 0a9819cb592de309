package scenarios

import (
	"fmt"

	"github.com/Khaerul-jpg/Automation-Testing/internal/scenario"
	"github.com/Khaerul-jpg/Automation-Testing/internal/testdata"
)

// Login returns the login feature scenarios
func Login() []scenario.Scenario {
	scenarios := []scenario.Scenario{
		{Feature: LoginFeature, Name: "valid user reaches the inventory", Run: validLogin},
	}
	for _, tc := range rejectedLogins() {
		scenarios = append(scenarios, rejectedLogin(tc.name, tc.cred, tc.kind))
	}
	return append(scenarios,
		scenario.Scenario{Feature: LoginFeature, Name: "error banner can be dismissed", Run: dismissError},
		scenario.Scenario{Feature: LoginFeature, Name: "cleared form behaves like a fresh one", Run: clearThenRetry},
	)
}

type rejected struct {
	name string
	cred testdata.Credential
	kind testdata.ErrorKind
}

func rejectedLogins() []rejected {
	return []rejected{
		{"locked out user is rejected", testdata.LockedUser, testdata.LockedUserError},
		{"unknown user is rejected", testdata.InvalidUser, testdata.InvalidCredentialsError},
		{"wrong password is rejected", testdata.WrongPasswordUser, testdata.InvalidCredentialsError},
		{"missing username is rejected", testdata.EmptyUsername, testdata.MissingUsernameError},
		{"missing password is rejected", testdata.EmptyPassword, testdata.MissingPasswordError},
	}
}

// Given I am on the login page
// When I log in as standard_user with the right password
// Then I land on the inventory page showing "Products"
func validLogin(c *scenario.Context) error {
	if err := c.Login.LoginAs(testdata.StandardUser()); err != nil {
		return err
	}

	ok, err := c.Login.IsLoginSuccessful()
	if err := scenario.Holds(ok, err, true, "login should succeed"); err != nil {
		return err
	}
	if err := scenario.Contains(c.Page.URL(), "inventory.html", "url after login"); err != nil {
		return err
	}

	title, err := c.Inventory.Title()
	if err != nil {
		return err
	}
	return scenario.Equal("Products", title, "inventory heading")
}

// Given I am on the login page
// When I log in with credentials the store refuses
// Then I stay on the login page and the banner names the reason
func rejectedLogin(name string, cred testdata.Credential, kind testdata.ErrorKind) scenario.Scenario {
	return scenario.Scenario{Feature: LoginFeature, Name: name, Run: func(c *scenario.Context) error {
		if err := c.Login.LoginAs(cred); err != nil {
			return err
		}

		banner, err := c.Login.ErrorMessage()
		if err != nil {
			return err
		}
		if err := scenario.Contains(banner, kind.Message(), fmt.Sprintf("%s banner", kind)); err != nil {
			return err
		}

		ok, err := c.Login.IsLoginSuccessful()
		if err := scenario.Holds(ok, err, false, "login should fail"); err != nil {
			return err
		}
		return scenario.True(c.Login.IsOnLoginPage(), "still on the login page")
	}}
}

// Given a visible login error
// When I dismiss it twice
// Then it is gone and the second dismissal changes nothing
func dismissError(c *scenario.Context) error {
	// No error yet: dismissing is a no-op
	if err := c.Login.CloseErrorMessage(); err != nil {
		return err
	}

	if err := c.Login.LoginAs(testdata.LockedUser); err != nil {
		return err
	}
	visible, err := c.Login.IsErrorVisible()
	if err := scenario.Holds(visible, err, true, "error shown after locked login"); err != nil {
		return err
	}

	for i := 0; i < 2; i++ {
		if err := c.Login.CloseErrorMessage(); err != nil {
			return fmt.Errorf("dismiss #%d: %w", i+1, err)
		}
		visible, err = c.Login.IsErrorVisible()
		if err := scenario.Holds(visible, err, false, fmt.Sprintf("error hidden after dismiss #%d", i+1)); err != nil {
			return err
		}
	}
	return scenario.True(c.Login.IsOnLoginPage(), "still on the login page")
}

// Given I typed wrong credentials and cleared the form
// When I log in as standard_user
// Then the login succeeds exactly as on an untouched form
func clearThenRetry(c *scenario.Context) error {
	if err := c.Login.Login(testdata.InvalidUser.Username, testdata.InvalidUser.Password); err != nil {
		return err
	}
	if err := c.Login.ClearInputs(); err != nil {
		return err
	}
	if err := c.Login.LoginAs(testdata.ValidUser); err != nil {
		return err
	}

	ok, err := c.Login.IsLoginSuccessful()
	return scenario.Holds(ok, err, true, "login after clearing should succeed")
}
