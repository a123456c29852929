package ui

import (
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"leadboard/pkg/api"
	"leadboard/pkg/auth"
	"leadboard/pkg/config"
	"leadboard/pkg/contacts"
	"leadboard/pkg/keymaps"
	"leadboard/pkg/logging"
)

// InputMode represents the current input mode
type InputMode int

const (
	NormalMode InputMode = iota
	SearchMode         // Mode for entering a search term
	ReminderMode       // Modal form for adding a reminder
	DetailViewMode     // Full record view for the selected contact
	HelpViewMode       // Mode for displaying help
	SignOutConfirmMode // Confirm before signing out
)

// Model represents the application state
type Model struct {
	table   table.Model
	store   *contacts.Store
	client  *api.Client
	session *auth.Provider
	logger  *logging.Logger

	width, height int
	loading       bool
	loadErr       error
	spinner       spinner.Model
	pager         paginator.Model

	// Configuration
	config config.Config
	styles config.Styles
	keyMap keymaps.KeyMap

	// View state
	searchTerm   string
	statusFilter contacts.StatusFilter
	sortConfig   contacts.SortConfig
	page         int
	expanded     map[string]bool
	view         contacts.View

	// Form state
	mode        InputMode
	searchInput textinput.Model
	dateInput   textinput.Model
	timeInput   textinput.Model
	noteInput   textinput.Model
	activeInput int

	// Reminder/detail target
	selectedID string
}

// NewModel creates a new UI model with the provided configuration
func NewModel(store *contacts.Store, client *api.Client, session *auth.Provider, cfg config.Config, styles config.Styles, logger *logging.Logger) Model {
	columns := []table.Column{
		{Title: "Name", Width: 18},
		{Title: "Email", Width: 24},
		{Title: "Phone", Width: 14},
		{Title: "Date", Width: 17},
		{Title: "Status", Width: 13},
		{Title: "Rem", Width: 4},
		{Title: "Message", Width: 34},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(cfg.PageSize),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.BorderColor)).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(styles.SelectedTextColor)).
		Background(lipgloss.Color(styles.SelectedBgColor)).
		Bold(true)
	t.SetStyles(s)

	// Initialize text inputs
	searchInput := textinput.New()
	searchInput.Placeholder = "Search by name, email or message"
	searchInput.Width = 40

	dateInput := textinput.New()
	dateInput.Placeholder = "Date (YYYY-MM-DD, required)"
	dateInput.Width = 40

	timeInput := textinput.New()
	timeInput.Placeholder = "Time (HH:MM, required)"
	timeInput.Width = 40

	noteInput := textinput.New()
	noteInput.Placeholder = "Note (optional)"
	noteInput.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.AccentColor))

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.PerPage = cfg.PageSize
	pager.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.AccentColor)).Render("•")
	pager.InactiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.BorderColor)).Render("•")

	m := Model{
		table:        t,
		store:        store,
		client:       client,
		session:      session,
		logger:       logger,
		config:       cfg,
		styles:       styles,
		keyMap:       keymaps.BuildKeyMap(cfg.KeyMap),
		loading:      true,
		spinner:      sp,
		pager:        pager,
		mode:         NormalMode,
		searchInput:  searchInput,
		dateInput:    dateInput,
		timeInput:    timeInput,
		noteInput:    noteInput,
		activeInput:  0,
		searchTerm:   "",
		statusFilter: contacts.FilterAll,
		sortConfig:   contacts.DefaultSort(), // newest submissions first
		page:         1,
		expanded:     map[string]bool{},
	}

	m.refreshView()

	return m
}

// Init starts the first load. The program only runs with a signed-in
// user, so the loader fires unconditionally here.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchContacts(m.client))
}

// resetReminderInputs clears the reminder form
func (m *Model) resetReminderInputs() {
	m.dateInput.Reset()
	m.timeInput.Reset()
	m.noteInput.Reset()

	m.activeInput = 0
	m.dateInput.Focus()
	m.timeInput.Blur()
	m.noteInput.Blur()
}
