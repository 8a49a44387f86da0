package services

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"github.com/custodia-labs/userd-core/internal/core/domain"
	"github.com/custodia-labs/userd-core/internal/core/ports/driven/mocks"
	"github.com/custodia-labs/userd-core/internal/core/ports/driving"
)

const lifecycleFeature = `
Feature: account lifecycle
  Users get contiguous numeric IDs, passwords never leave the service,
  and login only succeeds with the credentials used at creation.

  Scenario: creating accounts assigns sequential IDs
    Given the service has no users
    When I create a user with email "a@b.com" password "pw" and first name "Ann"
    Then the returned user has ID 1
    And the returned user exposes no password
    When I create a user with email "c@d.com" password "pw" and first name "Cid"
    Then the returned user has ID 2

  Scenario: login issues a token only for valid credentials
    Given the service has no users
    And I create a user with email "a@b.com" password "pw" and first name "Ann"
    When I log in with email "a@b.com" and password "pw"
    Then I receive a session token
    When I log in with email "a@b.com" and password "wrong"
    Then the login is rejected

  Scenario: deleting twice reports nothing to delete
    Given the service has no users
    And I create a user with email "a@b.com" password "pw" and first name "Ann"
    When I delete user 1
    Then the deleted count is 1
    When I delete user 1
    Then the deleted count is 0
`

type lifecycleState struct {
	userSvc driving.UserService
	authSvc driving.AuthService

	lastUser  *domain.User
	lastToken string
	lastErr   error
	lastCount int64
}

func (s *lifecycleState) reset() error {
	userStore := mocks.NewMockUserStore()
	counterStore := mocks.NewMockCounterStore()
	authAdapter := mocks.NewMockAuthAdapter()
	s.userSvc = NewUserService(userStore, counterStore, authAdapter)
	s.authSvc = NewAuthService(userStore, authAdapter, 24*time.Hour)
	s.lastUser = nil
	s.lastToken = ""
	s.lastErr = nil
	s.lastCount = 0
	return nil
}

func (s *lifecycleState) createUser(email, password, firstName string) error {
	user, err := s.userSvc.Create(context.Background(), driving.CreateUserRequest{
		Email:     email,
		Password:  password,
		FirstName: firstName,
	})
	if err != nil {
		return err
	}
	s.lastUser = user
	return nil
}

func (s *lifecycleState) userHasID(id int64) error {
	if s.lastUser == nil {
		return fmt.Errorf("no user was created")
	}
	if s.lastUser.ID != id {
		return fmt.Errorf("expected ID %d, got %d", id, s.lastUser.ID)
	}
	return nil
}

func (s *lifecycleState) userExposesNoPassword() error {
	data, err := json.Marshal(s.lastUser)
	if err != nil {
		return err
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for _, key := range []string{"password", "password_hash"} {
		if _, ok := fields[key]; ok {
			return fmt.Errorf("serialized user exposes %q", key)
		}
	}
	return nil
}

func (s *lifecycleState) login(email, password string) error {
	resp, err := s.authSvc.Login(context.Background(), domain.LoginRequest{
		Email:    email,
		Password: password,
	})
	s.lastErr = err
	if err == nil {
		s.lastToken = resp.AccessToken
	}
	return nil
}

func (s *lifecycleState) receivedToken() error {
	if s.lastErr != nil {
		return fmt.Errorf("login failed: %v", s.lastErr)
	}
	if s.lastToken == "" {
		return fmt.Errorf("expected non-empty token")
	}
	return nil
}

func (s *lifecycleState) loginRejected() error {
	if s.lastErr != domain.ErrInvalidCredentials {
		return fmt.Errorf("expected ErrInvalidCredentials, got %v", s.lastErr)
	}
	return nil
}

func (s *lifecycleState) deleteUser(id int64) error {
	count, err := s.userSvc.Delete(context.Background(), id)
	if err != nil {
		return err
	}
	s.lastCount = count
	return nil
}

func (s *lifecycleState) deletedCountIs(count int64) error {
	if s.lastCount != count {
		return fmt.Errorf("expected deleted count %d, got %d", count, s.lastCount)
	}
	return nil
}

func initializeLifecycleScenario(sc *godog.ScenarioContext) {
	state := &lifecycleState{}

	sc.Step(`^the service has no users$`, state.reset)
	sc.Step(`^I create a user with email "([^"]*)" password "([^"]*)" and first name "([^"]*)"$`, state.createUser)
	sc.Step(`^the returned user has ID (\d+)$`, state.userHasID)
	sc.Step(`^the returned user exposes no password$`, state.userExposesNoPassword)
	sc.Step(`^I log in with email "([^"]*)" and password "([^"]*)"$`, state.login)
	sc.Step(`^I receive a session token$`, state.receivedToken)
	sc.Step(`^the login is rejected$`, state.loginRejected)
	sc.Step(`^I delete user (\d+)$`, state.deleteUser)
	sc.Step(`^the deleted count is (\d+)$`, state.deletedCountIs)
}

func TestAccountLifecycle(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeLifecycleScenario,
		Options: &godog.Options{
			Format:   "pretty",
			TestingT: t,
			FeatureContents: []godog.Feature{
				{Name: "account lifecycle", Contents: []byte(lifecycleFeature)},
			},
		},
	}

	if suite.Run() != 0 {
		t.Fatal("account lifecycle feature failed")
	}
}
