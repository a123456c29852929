package keymaps

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyDefinition struct {
	DefaultKey string
	Help       string
}

var KeyDefinitions = map[string]KeyDefinition{
	"ShowHelp":          {"ctrl+b", "show/hide commands"},
	"QuitApp":           {"q", "quit"},
	"Refresh":           {"ctrl+r", "reload submissions"},
	"SearchContacts":    {"ctrl+f,/", "search contacts"},
	"CycleStatusFilter": {"f", "cycle status filter"},
	"CycleStatus":       {"t", "cycle contact status"},
	"AddReminder":       {"r", "add reminder"},
	"ToggleMessage":     {"m", "expand/collapse message"},
	"ShowDetail":        {"enter", "show contact detail"},
	"PrevPage":          {"left", "previous page"},
	"NextPage":          {"right", "next page"},
	"SortByName":        {"1", "sort by name"},
	"SortByEmail":       {"2", "sort by email"},
	"SortByPhone":       {"3", "sort by phone"},
	"SortByDate":        {"4", "sort by date"},
	"SortByStatus":      {"5", "sort by status"},
	"SignOut":           {"ctrl+x", "sign out"},
}

type KeyMap struct {
	ShowHelp          key.Binding
	QuitApp           key.Binding
	Refresh           key.Binding
	SearchContacts    key.Binding
	CycleStatusFilter key.Binding
	CycleStatus       key.Binding
	AddReminder       key.Binding
	ToggleMessage     key.Binding
	ShowDetail        key.Binding
	PrevPage          key.Binding
	NextPage          key.Binding
	SortByName        key.Binding
	SortByEmail       key.Binding
	SortByPhone       key.Binding
	SortByDate        key.Binding
	SortByStatus      key.Binding
	SignOut           key.Binding
}

func BuildKeyMap(configOverrides map[string]string) KeyMap {
	km := KeyMap{}
	for action, def := range KeyDefinitions {
		keyStr := def.DefaultKey
		if override, exists := configOverrides[action]; exists && override != "" {
			keyStr = override
		}

		switch action {
		case "ShowHelp":
			km.ShowHelp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "QuitApp":
			km.QuitApp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "Refresh":
			km.Refresh = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "SearchContacts":
			km.SearchContacts = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "CycleStatusFilter":
			km.CycleStatusFilter = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "CycleStatus":
			km.CycleStatus = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "AddReminder":
			km.AddReminder = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ToggleMessage":
			km.ToggleMessage = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ShowDetail":
			km.ShowDetail = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "PrevPage":
			km.PrevPage = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "NextPage":
			km.NextPage = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "SortByName":
			km.SortByName = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "SortByEmail":
			km.SortByEmail = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "SortByPhone":
			km.SortByPhone = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "SortByDate":
			km.SortByDate = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "SortByStatus":
			km.SortByStatus = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "SignOut":
			km.SignOut = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		}
	}
	return km
}

func parseKeyBinding(keyStr, defaultKey, helpText string) key.Binding {
	if keyStr == "" {
		keyStr = defaultKey
	}

	// Handle multiple keys separated by commas
	keys := strings.Split(keyStr, ",")
	for i, k := range keys {
		keys[i] = strings.TrimSpace(k)
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], helpText),
	)
}

// GetDefaultKeyMappings returns the default key mappings for configuration
func GetDefaultKeyMappings() map[string]string {
	keyMappings := make(map[string]string)
	for action, def := range KeyDefinitions {
		keyMappings[action] = def.DefaultKey
	}
	return keyMappings
}
