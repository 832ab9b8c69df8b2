package userlog

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about recipe changes
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎨 RecipeChangeType represents the type of change made to a recipe
type RecipeChangeType int

const (
	RecipeCreated RecipeChangeType = iota
	RecipeDeleted
	RecipeActivated
	RecipeDeactivated
	RecipeApplied
)

// 🖼️ RecipeChange represents a change to a recipe
type RecipeChange struct {
	Type        RecipeChangeType
	Name        string
	Description string
	Error       error
}

// 🎯 New creates a new user logger
func New(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogRecipeChange logs a recipe change with appropriate emoji and formatting
func (u *UserLogger) LogRecipeChange(change RecipeChange) {
	var prefix, action string
	var printer *pterm.PrefixPrinter
	switch change.Type {
	case RecipeCreated:
		prefix = "✨"
		action = "Created"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: prefix})
	case RecipeDeleted:
		prefix = "🗑️"
		action = "Deleted"
		printer = pterm.Warning.WithPrefix(pterm.Prefix{Text: prefix})
	case RecipeActivated:
		prefix = "🟢"
		action = "Activated"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: prefix})
	case RecipeDeactivated:
		prefix = "⚪"
		action = "Deactivated"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: prefix})
	case RecipeApplied:
		prefix = "⟳"
		action = "Applied"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: prefix})
	}

	msg := fmt.Sprintf("%s %s", action, change.Name)
	if change.Description != "" {
		msg += fmt.Sprintf(" (%s)", change.Description)
	}

	if change.Error != nil {
		printer.Println(msg)
		pterm.Error.Println(change.Error)
		u.log.Error().Err(change.Error).Msg(msg) // Also log to zerolog for debugging
	} else {
		printer.Println(msg)
		u.log.Info().Msg(msg) // Also log to zerolog for debugging
	}
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
	} else {
		if err != nil {
			pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
			pterm.Error.Println(err)
			u.log.Error().Err(err).Msg(description)
		} else {
			pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
			u.log.Warn().Msg(description)
		}
	}
}

// 📊 LogServiceState logs the state of the background service
func (u *UserLogger) LogServiceState(running bool, description string) {
	if running {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "🟢"}).Println(description)
	} else {
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "🔴"}).Println(description)
	}
	u.log.Info().Bool("running", running).Msg(description)
}

// 📝 Info logs a plain informational line
func (u *UserLogger) Info(description string) {
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📋"}).Println(description)
	u.log.Info().Msg(description)
}
