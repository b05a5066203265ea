// Package tui provides the interactive Bubble Tea dashboard for fitfuel.
package tui

import (
	"context"
	"time"

	"fitfuel/internal/config"
	"fitfuel/internal/ledger"
	"fitfuel/internal/model"
	"fitfuel/internal/nutrition"
	"fitfuel/internal/store"
	"fitfuel/internal/tui/components"
	"fitfuel/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// LookupResultMsg is sent when the async nutrition lookup completes.
// IssuedFor pins the result to the day selected when the request started.
type LookupResultMsg struct {
	IssuedFor model.Day
	Meal      model.Meal
	Items     []model.FoodItem
	Err       error
}

const (
	tabToday = iota
	tabWeek
	tabSettings
)

const lookupTimeout = 15 * time.Second

// App is the root Bubble Tea model.
type App struct {
	cfg    config.Config
	sess   *ledger.Session
	client *nutrition.Client

	// UI state
	width     int
	height    int
	activeTab int
	notice    string

	// Today tab
	queryInput   textinput.Model
	queryFocused bool
	mealIdx      int
	cursor       int
	expanded     map[string]bool
	filterInput  textinput.Model
	filtering    bool

	// Delete confirmation
	confirm       *huh.Form
	confirmVal    *bool
	pendingDelete string

	// Settings tab
	goalInput   textinput.Model
	editingGoal bool
	themeIdx    int

	spinner spinner.Model
}

// NewApp creates the dashboard model with the given day already selected.
func NewApp(cfg config.Config, l *store.Ledger, day model.Day) App {
	sess := ledger.NewSession(l, cfg.Goal.DailyKcal)
	// Store errors surface as an empty ledger plus a notice; the dashboard
	// still starts.
	notice := ""
	if err := sess.SelectDate(day); err != nil {
		notice = "Could not load ledger: " + err.Error()
	}

	qi := textinput.New()
	qi.Placeholder = "e.g. '1 bowl rice and 2 eggs'..."
	qi.CharLimit = 200
	qi.Width = 46

	fi := textinput.New()
	fi.Placeholder = "Search food items..."
	fi.CharLimit = 60
	fi.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	themeIdx := 0
	for i, t := range theme.All {
		if t.Name == cfg.Appearance.Theme {
			themeIdx = i
		}
	}

	return App{
		cfg:         cfg,
		sess:        sess,
		client:      nutrition.NewClient(config.GetAPIKey(cfg), cfg.Nutrition.BaseURL),
		notice:      notice,
		queryInput:  qi,
		filterInput: fi,
		expanded:    make(map[string]bool),
		goalInput:   textinput.New(),
		themeIdx:    themeIdx,
		spinner:     sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.spinner.Tick
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case LookupResultMsg:
		return a.handleLookupResult(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Delete-confirm form consumes everything else while open.
	if a.confirm != nil {
		return a.updateConfirm(msg)
	}

	return a, nil
}

func (a App) handleLookupResult(msg LookupResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.sess.AbortLookup()
		a.notice = "Lookup failed — check your connection and API key."
		return a, nil
	}

	added, err := a.sess.FinishLookup(msg.IssuedFor, msg.Items, msg.Meal)
	if err != nil {
		a.notice = "Could not save entries: " + err.Error()
		return a, nil
	}
	// A stale result (day changed mid-flight) adds nothing; say nothing.
	if len(added) > 0 {
		a.notice = ""
		a.queryInput.SetValue("")
		a.cursor = 0
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if a.confirm != nil {
		return a.updateConfirm(msg)
	}

	if a.queryFocused {
		return a.updateQueryInput(msg)
	}
	if a.filtering {
		return a.updateFilterInput(msg)
	}
	if a.editingGoal {
		return a.updateGoalInput(msg)
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "1":
		a.activeTab = tabToday
		return a, nil
	case "2":
		a.activeTab = tabWeek
		return a, nil
	case "3":
		a.activeTab = tabSettings
		return a, nil
	case "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case "[":
		return a.shiftDay(-1)
	case "]":
		return a.shiftDay(1)
	case "t":
		return a.selectDay(model.DayOf(time.Now()))
	}

	switch a.activeTab {
	case tabToday:
		return a.handleTodayKey(key)
	case tabSettings:
		return a.handleSettingsKey(key)
	}
	return a, nil
}

func (a App) handleTodayKey(key string) (tea.Model, tea.Cmd) {
	visible := a.visibleEntries()

	switch key {
	case "i", "a":
		a.queryFocused = true
		a.queryInput.Focus()
		return a, textinput.Blink
	case "m":
		a.mealIdx = (a.mealIdx + 1) % len(model.Meals)
		return a, nil
	case "/":
		a.filtering = true
		a.filterInput.Focus()
		return a, textinput.Blink
	case "j", "down":
		if a.cursor < len(visible)-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "enter":
		if a.cursor < len(visible) {
			id := visible[a.cursor].ID
			a.expanded[id] = !a.expanded[id]
		}
		return a, nil
	case "x", "delete":
		if a.cursor < len(visible) {
			return a.openConfirm(visible[a.cursor])
		}
		return a, nil
	case "esc":
		if a.filterInput.Value() != "" {
			a.filterInput.SetValue("")
			a.cursor = 0
		}
		return a, nil
	}
	return a, nil
}

func (a App) handleSettingsKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "g":
		a.editingGoal = true
		a.goalInput = textinput.New()
		a.goalInput.Placeholder = "kcal"
		a.goalInput.CharLimit = 6
		a.goalInput.Width = 10
		a.goalInput.Focus()
		return a, textinput.Blink
	case "j", "down":
		if a.themeIdx < len(theme.All)-1 {
			a.themeIdx++
			a.applyTheme()
		}
		return a, nil
	case "k", "up":
		if a.themeIdx > 0 {
			a.themeIdx--
			a.applyTheme()
		}
		return a, nil
	}
	return a, nil
}

// applyTheme switches the active theme and persists the choice.
func (a *App) applyTheme() {
	name := theme.All[a.themeIdx].Name
	theme.SetActive(name)
	a.cfg.Appearance.Theme = name
	if err := config.Save(a.cfg); err != nil {
		a.notice = "Could not save config: " + err.Error()
	}
}

func (a App) updateQueryInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "tab":
		a.queryFocused = false
		a.queryInput.Blur()
		return a, nil
	case "enter":
		return a.submitLookup()
	}

	var cmd tea.Cmd
	a.queryInput, cmd = a.queryInput.Update(msg)
	return a, cmd
}

func (a App) updateFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.filtering = false
		a.filterInput.Blur()
		a.filterInput.SetValue("")
		a.cursor = 0
		return a, nil
	case "enter":
		a.filtering = false
		a.filterInput.Blur()
		a.cursor = 0
		return a, nil
	}

	var cmd tea.Cmd
	a.filterInput, cmd = a.filterInput.Update(msg)
	return a, cmd
}

func (a App) updateGoalInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.editingGoal = false
		return a, nil
	case "enter":
		a.editingGoal = false
		if v, ok := parseGoal(a.goalInput.Value()); ok {
			a.sess.SetGoal(v)
			a.cfg.Goal.DailyKcal = v
			if err := config.Save(a.cfg); err != nil {
				a.notice = "Could not save config: " + err.Error()
			}
		} else {
			a.notice = "Target must be a positive number."
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.goalInput, cmd = a.goalInput.Update(msg)
	return a, cmd
}

// submitLookup starts the async nutrition lookup. While one is in flight
// further submissions are no-ops, so responses can never interleave.
func (a App) submitLookup() (tea.Model, tea.Cmd) {
	query := a.queryInput.Value()
	if query == "" {
		return a, nil
	}
	if a.client == nil {
		a.notice = "No API key configured — run `fitfuel setup`."
		return a, nil
	}

	issuedFor, ok := a.sess.BeginLookup()
	if !ok {
		return a, nil
	}

	a.notice = ""
	meal := model.Meals[a.mealIdx]
	client := a.client
	return a, tea.Batch(a.spinner.Tick, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
		defer cancel()
		items, err := client.Query(ctx, query)
		return LookupResultMsg{IssuedFor: issuedFor, Meal: meal, Items: items, Err: err}
	})
}

func (a App) shiftDay(n int) (tea.Model, tea.Cmd) {
	return a.selectDay(a.sess.Day().AddDays(n))
}

func (a App) selectDay(day model.Day) (tea.Model, tea.Cmd) {
	if err := a.sess.SelectDate(day); err != nil {
		a.notice = "Could not load ledger: " + err.Error()
		return a, nil
	}
	a.cursor = 0
	a.expanded = make(map[string]bool)
	a.filterInput.SetValue("")
	return a, nil
}

func (a App) openConfirm(entry model.FoodEntry) (tea.Model, tea.Cmd) {
	v := false
	a.confirmVal = &v
	a.pendingDelete = entry.ID
	a.confirm = huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Confirm Removal").
			Description("Delete \"" + entry.Name + "\"? This cannot be undone.").
			Affirmative("Delete").
			Negative("Cancel").
			Value(a.confirmVal),
	))
	return a, a.confirm.Init()
}

func (a App) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.confirm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.confirm = f
	}

	switch a.confirm.State {
	case huh.StateCompleted:
		if *a.confirmVal {
			if _, err := a.sess.RemoveEntry(a.pendingDelete); err != nil {
				a.notice = "Could not remove entry: " + err.Error()
			}
			delete(a.expanded, a.pendingDelete)
			if n := len(a.visibleEntries()); a.cursor >= n && a.cursor > 0 {
				a.cursor = n - 1
			}
		}
		a.confirm = nil
		a.pendingDelete = ""
		return a, nil
	case huh.StateAborted:
		a.confirm = nil
		a.pendingDelete = ""
		return a, nil
	}

	return a, cmd
}

// visibleEntries applies the activity-log filter to the live sequence.
func (a App) visibleEntries() []model.FoodEntry {
	entries := a.sess.Entries()
	query := a.filterInput.Value()
	if query == "" {
		return entries
	}

	var out []model.FoodEntry
	for _, e := range entries {
		if containsFold(e.Name, query) || containsFold(string(e.Meal), query) {
			out = append(out, e)
		}
	}
	return out
}
