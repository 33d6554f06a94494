package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/placeprep/ppclient/internal/client/api"
	"github.com/placeprep/ppclient/internal/client/models"
	"github.com/placeprep/ppclient/internal/format"
)

// Login prompts for credentials and opens a session. The backend's message
// is shown on failure; session state stays untouched then.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		printlnFn("error:", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		printlnFn("error:", err)
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		printlnFn(api.UserMessage(err, "Login failed"))
		return err
	}

	printlnFn("Login successful! Welcome,", a.session.User().Name)
	return nil
}

// Register collects profile fields and creates an account. A successful
// registration opens a session immediately, like login.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	college, err := GetSimpleText(a.reader, "College (optional)", a.out)
	if err != nil {
		return err
	}
	branch, err := GetSimpleText(a.reader, "Branch (optional)", a.out)
	if err != nil {
		return err
	}
	yearText, err := GetSimpleText(a.reader, "Graduation year (optional)", a.out)
	if err != nil {
		return err
	}
	year, _ := strconv.Atoi(yearText)

	req := models.RegisterRequest{
		Name:           name,
		Email:          email,
		Password:       password,
		College:        college,
		Branch:         branch,
		GraduationYear: year,
	}

	if err := a.session.Register(ctx, req); err != nil {
		printlnFn(api.UserMessage(err, "Registration failed"))
		return err
	}

	printlnFn("Registration successful! Welcome,", a.session.User().Name)
	return nil
}

// Logout drops the session. Purely local, so it always succeeds.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Logged out successfully")
	return nil
}

// WhoAmI prints the current profile and, for JWT tokens, the session expiry.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	u := a.session.User()
	fmt.Fprintf(a.out, "%s <%s>\n", u.Name, u.Email)
	if u.College != "" {
		fmt.Fprintf(a.out, "  %s", u.College)
		if u.Branch != "" {
			fmt.Fprintf(a.out, ", %s", u.Branch)
		}
		if u.GraduationYear != 0 {
			fmt.Fprintf(a.out, " (class of %d)", u.GraduationYear)
		}
		fmt.Fprintln(a.out)
	}
	if u.Bio != "" {
		fmt.Fprintf(a.out, "  %s\n", u.Bio)
	}
	if exp, ok := a.session.TokenExpiry(); ok {
		fmt.Fprintf(a.out, "  session valid until %s\n", format.Date(exp))
	}
	return nil
}

// UpdateProfile edits the profile in place; empty answers keep the current
// values. On failure the local user is left untouched.
func (a *App) UpdateProfile(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	u := a.session.User()

	name, err := GetOptionalText(a.reader, "Name", u.Name, a.out)
	if err != nil {
		return err
	}
	bio, err := GetOptionalText(a.reader, "Bio", u.Bio, a.out)
	if err != nil {
		return err
	}
	college, err := GetOptionalText(a.reader, "College", u.College, a.out)
	if err != nil {
		return err
	}
	branch, err := GetOptionalText(a.reader, "Branch", u.Branch, a.out)
	if err != nil {
		return err
	}
	yearText, err := GetOptionalText(a.reader, "Graduation year", strconv.Itoa(u.GraduationYear), a.out)
	if err != nil {
		return err
	}
	year, _ := strconv.Atoi(yearText)

	patch := models.ProfileUpdate{
		Name:           name,
		Bio:            bio,
		College:        college,
		Branch:         branch,
		GraduationYear: year,
	}

	if err := a.session.UpdateProfile(ctx, patch); err != nil {
		printlnFn(api.UserMessage(err, "Profile update failed"))
		return err
	}

	printlnFn("Profile updated successfully!")
	return nil
}
