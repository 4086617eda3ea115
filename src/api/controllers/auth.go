package controllers

import (
	"context"
	"regexp"
	"strings"

	"portfolio-server/src/models"
	"portfolio-server/src/schemas"
	"portfolio-server/src/utils"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Signup registers a new user with a hashed credential.
func (c *Controller) Signup(ctx context.Context, req *schemas.SignupRequest) (*models.User, error) {
	validation := &utils.ValidationError{}
	if req.Username == "" {
		validation.Add("username", "username is required")
	} else if len(req.Username) < 3 || len(req.Username) > 50 {
		validation.Add("username", "username must be between 3 and 50 characters")
	}
	if req.Email == "" {
		validation.Add("email", "email is required")
	} else if !emailPattern.MatchString(req.Email) {
		validation.Add("email", "invalid email format")
	}
	if len(req.Password) < 6 {
		validation.Add("password", "password must be at least 6 characters long")
	}
	if req.FirstName == "" {
		validation.Add("firstName", "first name is required")
	}
	if req.LastName == "" {
		validation.Add("lastName", "last name is required")
	}
	if validation.HasErrors() {
		return nil, validation
	}

	existing, err := c.Users.FindByEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Email == req.Email {
			return nil, utils.Conflict("Email already registered")
		}
		return nil, utils.Conflict("Username already taken")
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}
	if err := c.Users.Create(ctx, user); err != nil {
		return nil, err
	}

	utils.LoggerFromContext(ctx).WithField("user_id", user.ID).Info("user registered")
	return user, nil
}

// Authenticate verifies the credential without leaking which half failed.
func (c *Controller) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, utils.BadRequest("Email and password are required")
	}

	user, err := c.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.CheckPassword(password) {
		return nil, utils.Unauthorized("Invalid credentials")
	}
	return user, nil
}

// GetUser loads the caller's profile.
func (c *Controller) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	user, err := c.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &utils.NotFoundError{Resource: "user"}
	}
	return user, nil
}
