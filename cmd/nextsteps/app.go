package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/nextsteps/nextsteps-cli/api"
	"github.com/nextsteps/nextsteps-cli/auth"
	"github.com/nextsteps/nextsteps-cli/dashboard"
	"github.com/nextsteps/nextsteps-cli/guard"
	"github.com/nextsteps/nextsteps-cli/profile"
	"github.com/nextsteps/nextsteps-cli/roadmap"
	"github.com/nextsteps/nextsteps-cli/sessions"
)

// app is the interactive shell: it prompts, dispatches to the view
// models, and renders their states. All state lives in the view
// models and the session store.
type app struct {
	client *api.Client
	store  sessions.Store
	flow   *auth.Flow
	logger zerolog.Logger
	in     *bufio.Reader
	out    io.Writer
}

func newApp(client *api.Client, store sessions.Store, logger zerolog.Logger) (*app, error) {
	flow, err := auth.NewFlow(client, store, auth.WithLogger(logger))
	if err != nil {
		return nil, errors.Wrap(err, "[newApp]")
	}
	return &app{
		client: client,
		store:  store,
		flow:   flow,
		logger: logger,
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *app) run(ctx context.Context) error {
	route := guard.RouteLogin
	if _, ok := a.store.Get(); ok {
		route = guard.RouteProfile
	}

	for {
		var next guard.Route
		var quit bool
		switch route {
		case guard.RouteLogin:
			next, quit = a.loginScreen(ctx)
		case guard.RouteRegister:
			next, quit = a.registerScreen(ctx)
		case guard.RouteProfile:
			next, quit = a.protected(route, func() (guard.Route, bool) { return a.profileScreen(ctx) })
		case guard.RouteRoadmap:
			next, quit = a.protected(route, func() (guard.Route, bool) { return a.roadmapScreen(ctx) })
		case guard.RouteDashboard:
			next, quit = a.protected(route, func() (guard.Route, bool) { return a.dashboardScreen(ctx) })
		default:
			next = guard.RouteLogin
		}
		if quit {
			return nil
		}
		route = next
	}
}

// protected runs screen behind the access guard; an absent session
// lands back on login without the screen ever executing.
func (a *app) protected(route guard.Route, screen func() (guard.Route, bool)) (guard.Route, bool) {
	var next guard.Route
	var quit bool
	redirect, _ := guard.Protect(a.store, func() error {
		next, quit = screen()
		return nil
	})
	if redirect != "" {
		a.printf("Please log in to view %s.\n", route)
		return guard.RouteLogin, false
	}
	return next, quit
}

func (a *app) loginScreen(ctx context.Context) (guard.Route, bool) {
	a.printf("\n-- Welcome to NextSteps --\n")
	a.printf("[l] login  [r] create account  [q] quit\n")
	choice, ok := a.prompt("> ")
	if !ok {
		return "", true
	}
	switch choice {
	case "r":
		return guard.RouteRegister, false
	case "q":
		return "", true
	}

	username, ok := a.prompt("Email: ")
	if !ok {
		return "", true
	}
	password, ok := a.prompt("Password: ")
	if !ok {
		return "", true
	}
	next, err := a.flow.Login(ctx, username, password)
	if err != nil {
		a.printf("%s\n", err.Error())
		return guard.RouteLogin, false
	}
	return next, false
}

func (a *app) registerScreen(ctx context.Context) (guard.Route, bool) {
	a.printf("\n-- Create Your Account --\n")
	fields := make([]string, 0, 5)
	for _, label := range []string{"First Name: ", "Surname: ", "Email: ", "Password: ", "Confirm Password: "} {
		value, ok := a.prompt(label)
		if !ok {
			return "", true
		}
		fields = append(fields, value)
	}

	next, err := a.flow.Register(ctx, fields[0], fields[1], fields[2], fields[3], fields[4])
	if err != nil {
		a.printf("%s\n", err.Error())
		return guard.RouteRegister, false
	}
	a.printf("Account created. Please log in.\n")
	return next, false
}

func (a *app) profileScreen(ctx context.Context) (guard.Route, bool) {
	vm := profile.New(a.client, a.store, profile.WithLogger(a.logger))
	state := vm.Mount(ctx)
	if state.Phase == profile.PhaseRedirecting {
		return guard.RouteLogin, false
	}
	a.renderProfile(state)
	return a.menu()
}

func (a *app) roadmapScreen(ctx context.Context) (guard.Route, bool) {
	nav := roadmap.New(a.client, a.store, roadmap.WithLogger(a.logger))
	nav.Mount(ctx)

	a.printf("\n-- Your Career Roadmap --\n")
	for {
		state := nav.State()
		a.renderRoadmap(state)
		a.printf("[g] generate  [n] next  [p] previous  [m] menu\n")
		choice, ok := a.prompt("> ")
		if !ok {
			return "", true
		}
		switch choice {
		case "g":
			a.printf("Generating your roadmap...\n")
			nav.Generate(ctx)
		case "n":
			nav.Next()
		case "p":
			nav.Previous()
		case "m":
			return a.menu()
		}
	}
}

func (a *app) dashboardScreen(ctx context.Context) (guard.Route, bool) {
	view := dashboard.New(a.client, a.store, dashboard.WithLogger(a.logger))
	state := view.Mount(ctx)
	if state.Phase == dashboard.PhaseRedirecting {
		return guard.RouteLogin, false
	}
	a.renderDashboard(state)

	if state.Phase == dashboard.PhaseReady {
		for {
			a.printf("[d] delete a roadmap  [m] menu\n")
			choice, ok := a.prompt("> ")
			if !ok {
				return "", true
			}
			if choice != "d" {
				break
			}
			id, ok := a.prompt("Roadmap id: ")
			if !ok {
				return "", true
			}
			if err := view.DeleteRoadmap(ctx, id, a.confirm); err != nil {
				a.printf("%s\n", err.Error())
				continue
			}
			a.renderDashboard(view.State())
		}
	}
	return a.menu()
}

func (a *app) menu() (guard.Route, bool) {
	a.printf("\n[1] profile  [2] roadmap  [3] dashboard  [o] logout  [q] quit\n")
	for {
		choice, ok := a.prompt("> ")
		if !ok {
			return "", true
		}
		switch choice {
		case "1":
			return guard.RouteProfile, false
		case "2":
			return guard.RouteRoadmap, false
		case "3":
			return guard.RouteDashboard, false
		case "o":
			return a.flow.Logout(), false
		case "q":
			return "", true
		}
	}
}

// confirm is the interactive yes/no gate for destructive operations.
// Closed input declines.
func (a *app) confirm(prompt string) bool {
	answer, ok := a.prompt(prompt + " [y/N] ")
	if !ok {
		return false
	}
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}

// prompt reads one line of input. ok is false once input is closed;
// every screen treats that as quit so a closed stdin cannot spin the
// run loop.
func (a *app) prompt(label string) (answer string, ok bool) {
	a.printf("%s", label)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
